package config

import "flag"

// Command-line overrides. Zero values mean "not given".
var (
	flagConfig     = flag.String("config", "", "Lessons file to load instead of the standard locations")
	flagDebug      = flag.Bool("debug", false, "Log at debug level (missing uniforms, normal switches, fps)")
	flagLesson     = flag.String("lesson", "", "Lesson to run: clear, triangle, solar or pyramid")
	flagBackend    = flag.String("backend", "", "Window backend: sdl or glfw")
	flagWindowed   = flag.Bool("windowed", false, "Force a window even if the lessons file asks for fullscreen")
	flagFullscreen = flag.Bool("fullscreen", false, "Run fullscreen")
	flagWidth      = flag.Int("width", 0, "Window width in pixels")
	flagHeight     = flag.Int("height", 0, "Window height in pixels")
)

// ParseFlags reads the command line. It must run before Load.
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the -config value, or "" when it was not given.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags lays the command-line overrides over cfg.
func applyFlags(cfg *Config) {
	if *flagLesson != "" {
		cfg.Scene.Lesson = *flagLesson
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	applyWindowFlags(&cfg.Graphics)
}

// applyWindowFlags overrides the window settings. -fullscreen wins over
// -windowed when both are given.
func applyWindowFlags(g *GraphicsConfig) {
	if *flagBackend != "" {
		g.Backend = *flagBackend
	}
	if *flagWidth > 0 {
		g.Width = *flagWidth
	}
	if *flagHeight > 0 {
		g.Height = *flagHeight
	}
	switch {
	case *flagFullscreen:
		g.Fullscreen = true
	case *flagWindowed:
		g.Fullscreen = false
	}
}
