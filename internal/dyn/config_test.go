package dyn

import "testing"

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]string
		wantErr bool
	}{
		{
			name:  "per-platform paths",
			input: "[library]\nlinux = \"/opt/sdl3/libSDL3.so.0\"\ndarwin = \"/opt/sdl3/libSDL3.dylib\"\n",
			want: map[string]string{
				"linux":  "/opt/sdl3/libSDL3.so.0",
				"darwin": "/opt/sdl3/libSDL3.dylib",
			},
		},
		{
			name:  "empty document",
			input: "",
			want:  nil,
		},
		{
			name:    "malformed document",
			input:   "[library\nlinux = ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected parse error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseConfig: %v", err)
			}
			if len(cfg.Library) != len(tt.want) {
				t.Fatalf("got %d entries, want %d", len(cfg.Library), len(tt.want))
			}
			for k, v := range tt.want {
				if cfg.Library[k] != v {
					t.Errorf("Library[%q] = %q, want %q", k, cfg.Library[k], v)
				}
			}
		})
	}
}
