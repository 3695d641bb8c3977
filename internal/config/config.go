// Package config handles lesson configuration loading and management.
package config

// Lesson names accepted by scene.lesson.
const (
	LessonClear    = "clear"
	LessonTriangle = "triangle"
	LessonSolar    = "solar"
	LessonPyramid  = "pyramid"
)

// Lessons lists every lesson in teaching order.
var Lessons = []string{LessonClear, LessonTriangle, LessonSolar, LessonPyramid}

// Window backends accepted by graphics.backend.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Backend    string `yaml:"backend"`
	Title      string `yaml:"title"`
}

// SceneConfig selects the lesson and tunes it.
type SceneConfig struct {
	Lesson     string       `yaml:"lesson"`
	ClearColor [4]float32   `yaml:"clear_color"`
	Bodies     []BodyConfig `yaml:"bodies"`

	// MoveStep is how far the triangle lesson moves per tick while an
	// arrow key is held, in clip-space units.
	MoveStep float32 `yaml:"move_step"`
	// FlipSeconds is the duration of the eased vertical flip.
	FlipSeconds float32 `yaml:"flip_seconds"`
	// PyramidSpin is the pyramid's spin in degrees per second.
	PyramidSpin float32 `yaml:"pyramid_spin"`
}

// BodyConfig describes one rigid body of the solar lesson. Rates are in
// degrees per second. Parent names an earlier body; empty means a root.
type BodyConfig struct {
	Name        string     `yaml:"name"`
	Parent      string     `yaml:"parent,omitempty"`
	SpinRate    float32    `yaml:"spin_rate"`
	OrbitRate   float32    `yaml:"orbit_rate"`
	OrbitRadius float32    `yaml:"orbit_radius"`
	Offset      [3]float32 `yaml:"offset,flow"`
	Scale       [3]float32 `yaml:"scale,flow"`
	Color       [4]float32 `yaml:"color,flow"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultBodies is the sun, earth and moon scenario. A child's radius,
// offset and scale are in its parent's units: the moon's radius 2 and
// scale 0.5 become 0.2 and 0.05 under the earth's 0.1. The moon also
// inherits the earth's 180 deg/s spin, so its 180 deg/s orbit turns at
// 360 deg/s in world space.
func DefaultBodies() []BodyConfig {
	return []BodyConfig{
		{
			Name:     "sun",
			SpinRate: 45,
			Scale:    [3]float32{0.2, 0.2, 1},
			Color:    [4]float32{1, 0, 0, 1},
		},
		{
			Name:        "earth",
			SpinRate:    180,
			OrbitRate:   30,
			OrbitRadius: 0.7,
			Scale:       [3]float32{0.1, 0.1, 1},
			Color:       [4]float32{0, 1, 1, 1},
		},
		{
			Name:        "moon",
			Parent:      "earth",
			SpinRate:    180,
			OrbitRate:   180,
			OrbitRadius: 2,
			Scale:       [3]float32{0.5, 0.5, 1},
			Color:       [4]float32{1, 1, 0, 1},
		},
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      700,
			Height:     700,
			Fullscreen: false,
			VSync:      true,
			Backend:    BackendSDL,
			Title:      "Raster Lessons",
		},
		Scene: SceneConfig{
			Lesson:      LessonSolar,
			ClearColor:  [4]float32{0.2, 0.3, 0.4, 1},
			Bodies:      DefaultBodies(),
			MoveStep:    0.01,
			FlipSeconds: 0.25,
			PyramidSpin: 30,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
