package sdl

// SensorID identifies a sensor for the lifetime of the process. Zero is the
// invalid sentinel; IDs are never reused while the process runs.
type SensorID uint32

// Sensor is an opaque handle to an opened sensor.
type Sensor struct{ _ [0]byte }

// SensorType mirrors SDL_SensorType. The L/R variants name sensors on the
// left and right halves of split controllers.
type SensorType int32

const (
	SensorInvalid SensorType = iota - 1
	SensorUnknown
	SensorAccel
	SensorGyro
	SensorAccelL
	SensorGyroL
	SensorAccelR
	SensorGyroR
)

// StandardGravity is the accelerometer reading, in m/s2, of a device at rest.
const StandardGravity = 9.80665

var (
	fnGetSensors                       func(count *int32) *SensorID
	fnGetSensorInstanceName            func(id SensorID) string
	fnGetSensorInstanceType            func(id SensorID) SensorType
	fnGetSensorInstanceNonPortableType func(id SensorID) int32
	fnOpenSensor                       func(id SensorID) *Sensor
	fnGetSensorFromInstanceID          func(id SensorID) *Sensor
	fnGetSensorProperties              func(s *Sensor) PropertiesID
	fnGetSensorName                    func(s *Sensor) string
	fnGetSensorType                    func(s *Sensor) SensorType
	fnGetSensorNonPortableType         func(s *Sensor) int32
	fnGetSensorInstanceID              func(s *Sensor) SensorID
	fnGetSensorData                    func(s *Sensor, data *float32, numValues int32) int32
	fnCloseSensor                      func(s *Sensor)
	fnUpdateSensors                    func()
)

func registerSensorFuncs() {
	register(&fnGetSensors, "SDL_GetSensors")
	register(&fnGetSensorInstanceName, "SDL_GetSensorInstanceName")
	register(&fnGetSensorInstanceType, "SDL_GetSensorInstanceType")
	register(&fnGetSensorInstanceNonPortableType, "SDL_GetSensorInstanceNonPortableType")
	register(&fnOpenSensor, "SDL_OpenSensor")
	register(&fnGetSensorFromInstanceID, "SDL_GetSensorFromInstanceID")
	register(&fnGetSensorProperties, "SDL_GetSensorProperties")
	register(&fnGetSensorName, "SDL_GetSensorName")
	register(&fnGetSensorType, "SDL_GetSensorType")
	register(&fnGetSensorNonPortableType, "SDL_GetSensorNonPortableType")
	register(&fnGetSensorInstanceID, "SDL_GetSensorInstanceID")
	register(&fnGetSensorData, "SDL_GetSensorData")
	register(&fnCloseSensor, "SDL_CloseSensor")
	register(&fnUpdateSensors, "SDL_UpdateSensors")
}

// GetSensors returns the IDs of all attached sensors.
func GetSensors() ([]SensorID, error) {
	var count int32
	p := fnGetSensors(&count)
	if p == nil {
		return nil, fail()
	}
	return borrowedFree(p, count), nil
}

// GetSensorInstanceName returns a sensor's name without opening it.
func GetSensorInstanceName(id SensorID) string {
	return fnGetSensorInstanceName(id)
}

// GetSensorInstanceType returns a sensor's type, or SensorInvalid.
func GetSensorInstanceType(id SensorID) SensorType {
	return fnGetSensorInstanceType(id)
}

// GetSensorInstanceNonPortableType returns the platform's own type code, or
// -1.
func GetSensorInstanceNonPortableType(id SensorID) int32 {
	return fnGetSensorInstanceNonPortableType(id)
}

// OpenSensor opens a sensor for use.
func OpenSensor(id SensorID) (*Sensor, error) {
	s := fnOpenSensor(id)
	if s == nil {
		return nil, fail()
	}
	return s, nil
}

// GetSensorFromInstanceID returns the opened sensor for an ID, or nil.
func GetSensorFromInstanceID(id SensorID) *Sensor {
	return fnGetSensorFromInstanceID(id)
}

// Properties returns the sensor's property group.
func (s *Sensor) Properties() (PropertiesID, error) {
	id := fnGetSensorProperties(s)
	if id == 0 {
		return 0, fail()
	}
	return id, nil
}

// Name returns the sensor's name.
func (s *Sensor) Name() string {
	return fnGetSensorName(s)
}

// Type returns the sensor's type.
func (s *Sensor) Type() SensorType {
	return fnGetSensorType(s)
}

// NonPortableType returns the platform's own type code, or -1.
func (s *Sensor) NonPortableType() int32 {
	return fnGetSensorNonPortableType(s)
}

// InstanceID returns the sensor's ID.
func (s *Sensor) InstanceID() SensorID {
	return fnGetSensorInstanceID(s)
}

// Data fills data with the sensor's current readings.
func (s *Sensor) Data(data []float32) error {
	if len(data) == 0 {
		return SetError("empty sensor buffer")
	}
	return errorFromCode(fnGetSensorData(s, &data[0], int32(len(data))))
}

// Close releases an opened sensor.
func (s *Sensor) Close() {
	fnCloseSensor(s)
}

// UpdateSensors refreshes sensor state. The event loop does this implicitly.
func UpdateSensors() {
	fnUpdateSensors()
}
