package dyn

import (
	"os"
	"runtime"

	"github.com/pelletier/go-toml/v2"
)

// Config is the optional loader configuration file. It maps a GOOS name to the
// library path to load on that platform, e.g.
//
//	[library]
//	linux  = "/opt/sdl3/lib/libSDL3.so.0"
//	darwin = "/opt/homebrew/lib/libSDL3.dylib"
type Config struct {
	Library map[string]string `toml:"library"`
}

const configEnv = "SDL3_CONFIG"
const configFile = "sdl3.toml"

// configLibraryPath returns the configured path for the current platform, or ""
// when no config file exists or it has no entry for this GOOS.
func configLibraryPath() string {
	path := os.Getenv(configEnv)
	if path == "" {
		path = configFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		diag.WithField("path", path).WithError(err).Warn("dyn: ignoring malformed config file")
		return ""
	}
	return cfg.Library[runtime.GOOS]
}

// ParseConfig decodes a loader configuration document.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
