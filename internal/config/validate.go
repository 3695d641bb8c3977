package config

import (
	"errors"
	"fmt"
	"slices"
)

// Validate checks the settings that would otherwise fail deep inside setup.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.Backend != BackendSDL && c.Graphics.Backend != BackendGLFW {
		errs = append(errs, fmt.Errorf("graphics: unknown backend %q", c.Graphics.Backend))
	}
	if !slices.Contains(Lessons, c.Scene.Lesson) {
		errs = append(errs, fmt.Errorf("scene: unknown lesson %q (have %v)", c.Scene.Lesson, Lessons))
	}
	if c.Scene.MoveStep < 0 {
		errs = append(errs, fmt.Errorf("scene: move_step %g must not be negative", c.Scene.MoveStep))
	}
	if c.Scene.FlipSeconds < 0 {
		errs = append(errs, fmt.Errorf("scene: flip_seconds %g must not be negative", c.Scene.FlipSeconds))
	}

	seen := make(map[string]bool, len(c.Scene.Bodies))
	for i, b := range c.Scene.Bodies {
		switch {
		case b.Name == "":
			errs = append(errs, fmt.Errorf("scene: body %d has no name", i))
		case seen[b.Name]:
			errs = append(errs, fmt.Errorf("scene: duplicate body %q", b.Name))
		}
		if b.Parent != "" && !seen[b.Parent] {
			errs = append(errs, fmt.Errorf("scene: body %q: parent %q must be declared before it", b.Name, b.Parent))
		}
		seen[b.Name] = true
	}

	if c.Scene.Lesson == LessonSolar && len(c.Scene.Bodies) == 0 {
		errs = append(errs, errors.New("scene: solar lesson needs at least one body"))
	}

	return errors.Join(errs...)
}
