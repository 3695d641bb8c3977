package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 700 {
		t.Errorf("expected width 700, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 700 {
		t.Errorf("expected height 700, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.Backend != BackendSDL {
		t.Errorf("expected backend %q, got %q", BackendSDL, cfg.Graphics.Backend)
	}

	// Test scene defaults
	if cfg.Scene.Lesson != LessonSolar {
		t.Errorf("expected lesson %q, got %q", LessonSolar, cfg.Scene.Lesson)
	}
	if cfg.Scene.ClearColor != [4]float32{0.2, 0.3, 0.4, 1} {
		t.Errorf("unexpected clear color %v", cfg.Scene.ClearColor)
	}
	if cfg.Scene.MoveStep != 0.01 {
		t.Errorf("expected move step 0.01, got %f", cfg.Scene.MoveStep)
	}
	if len(cfg.Scene.Bodies) != 3 {
		t.Fatalf("expected 3 default bodies, got %d", len(cfg.Scene.Bodies))
	}
	if moon := cfg.Scene.Bodies[2]; moon.Parent != "earth" || moon.OrbitRadius != 2 {
		t.Errorf("unexpected moon %+v", moon)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1024
  height: 768
  fullscreen: true
  vsync: false
  backend: glfw

scene:
  lesson: triangle
  clear_color: [0, 0, 0, 1]
  move_step: 0.02
  bodies:
    - name: star
      spin_rate: 10
      scale: [0.3, 0.3, 1]
      color: [1, 1, 1, 1]
    - name: planet
      parent: star
      orbit_rate: 60
      orbit_radius: 0.5
      scale: [0.1, 0.1, 1]
      color: [0, 0, 1, 1]

logging:
  level: "debug"
  log_file: "lessons.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1024 {
		t.Errorf("expected width 1024, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Graphics.Backend != BackendGLFW {
		t.Errorf("expected backend glfw, got %s", cfg.Graphics.Backend)
	}
	// Not in the file, keeps its default
	if cfg.Graphics.Title != "Raster Lessons" {
		t.Errorf("expected default title, got %q", cfg.Graphics.Title)
	}

	if cfg.Scene.Lesson != LessonTriangle {
		t.Errorf("expected lesson triangle, got %s", cfg.Scene.Lesson)
	}
	if cfg.Scene.MoveStep != 0.02 {
		t.Errorf("expected move step 0.02, got %f", cfg.Scene.MoveStep)
	}
	if cfg.Scene.FlipSeconds != 0.25 {
		t.Errorf("expected default flip seconds, got %f", cfg.Scene.FlipSeconds)
	}

	// The file's bodies replace the defaults
	if len(cfg.Scene.Bodies) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(cfg.Scene.Bodies))
	}
	planet := cfg.Scene.Bodies[1]
	if planet.Parent != "star" || planet.OrbitRate != 60 || planet.OrbitRadius != 0.5 {
		t.Errorf("unexpected planet %+v", planet)
	}
	if planet.Color != [4]float32{0, 0, 1, 1} {
		t.Errorf("unexpected planet color %v", planet.Color)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "lessons.log" {
		t.Errorf("expected log file 'lessons.log', got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config does not validate: %v", err)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
scene:
  bodies:
    - name: sun
      orbit_raduis: 0.5
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil || !strings.Contains(err.Error(), "orbit_raduis") {
		t.Errorf("expected error naming the misspelled key, got %v", err)
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("empty file: %v", err)
	}
	if len(cfg.Scene.Bodies) != 3 {
		t.Errorf("empty file changed the bodies: %d", len(cfg.Scene.Bodies))
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, "must be positive"},
		{"unknown backend", func(c *Config) { c.Graphics.Backend = "vulkan" }, "unknown backend"},
		{"unknown lesson", func(c *Config) { c.Scene.Lesson = "teapot" }, "unknown lesson"},
		{"negative step", func(c *Config) { c.Scene.MoveStep = -1 }, "move_step"},
		{"negative flip", func(c *Config) { c.Scene.FlipSeconds = -1 }, "flip_seconds"},
		{"unnamed body", func(c *Config) { c.Scene.Bodies[0].Name = "" }, "has no name"},
		{"duplicate body", func(c *Config) { c.Scene.Bodies[1].Name = "sun" }, "duplicate body"},
		{"unknown parent", func(c *Config) { c.Scene.Bodies[2].Parent = "mars" }, "must be declared before"},
		{"forward parent", func(c *Config) { c.Scene.Bodies[0].Parent = "moon" }, "must be declared before"},
		{"self parent", func(c *Config) { c.Scene.Bodies[1].Parent = "earth" }, "must be declared before"},
		{"solar without bodies", func(c *Config) { c.Scene.Bodies = nil }, "at least one body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}

	t.Run("bodies optional outside solar", func(t *testing.T) {
		cfg := Default()
		cfg.Scene.Lesson = LessonClear
		cfg.Scene.Bodies = nil
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestLocateConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	// No lessons file anywhere
	if path := locateConfig(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile("lessons.yaml", []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := locateConfig(); path != "lessons.yaml" {
		t.Errorf("expected lessons.yaml in current directory, got %q", path)
	}

	// -config wins over the working directory
	*flagConfig = "elsewhere.yaml"
	defer func() { *flagConfig = "" }()
	if path := locateConfig(); path != "elsewhere.yaml" {
		t.Errorf("expected the -config path, got %q", path)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "lesson flag",
			setup: func() { *flagLesson = LessonPyramid },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Lesson != LessonPyramid {
					t.Errorf("expected lesson pyramid, got %s", cfg.Scene.Lesson)
				}
			},
			teardown: func() { *flagLesson = "" },
		},
		{
			name:  "backend flag",
			setup: func() { *flagBackend = BackendGLFW },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Backend != BackendGLFW {
					t.Errorf("expected backend glfw, got %s", cfg.Graphics.Backend)
				}
			},
			teardown: func() { *flagBackend = "" },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "fullscreen wins over windowed",
			setup: func() {
				*flagWindowed = true
				*flagFullscreen = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen when both flags are given")
				}
			},
			teardown: func() {
				*flagWindowed = false
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 1280
				*flagHeight = 960
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 1280 {
					t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 960 {
					t.Errorf("expected height 960, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
scene:
  lesson: clear
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	*flagLesson = LessonTriangle
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
		*flagLesson = ""
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	// Height should be from file (900) since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
	if cfg.Scene.Lesson != LessonTriangle {
		t.Errorf("expected lesson triangle from flag, got %s", cfg.Scene.Lesson)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  lesson: teapot\n"), 0644); err != nil {
		t.Fatal(err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "unknown lesson") {
		t.Errorf("expected unknown lesson error, got %v", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.Lesson = LessonPyramid
	cfg.Scene.Bodies[1].OrbitRate = 45

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() = %v", err)
	}

	loaded := &Config{}
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile() = %v", err)
	}
	if loaded.Scene.Lesson != LessonPyramid {
		t.Errorf("lesson = %q, want pyramid", loaded.Scene.Lesson)
	}
	if len(loaded.Scene.Bodies) != 3 || loaded.Scene.Bodies[1].OrbitRate != 45 {
		t.Errorf("bodies not preserved: %+v", loaded.Scene.Bodies)
	}
}
