// Package geometry builds static meshes and uploads them into a single
// batched GPU buffer (all positions, then normals, colors, texcoords).
package geometry

import (
	"errors"
	"fmt"

	"github.com/Faultbox/raster-lessons/internal/engine/gpu"
)

// Components per vertex for each attribute region.
const (
	PositionComponents = 3
	NormalComponents   = 3
	ColorComponents    = 4
	TexCoordComponents = 2
)

// Attribute locations bound by Upload.
const (
	LocPosition uint32 = iota
	LocNormal
	LocColor
	LocTexCoord
)

// ErrConfiguration is matched by every ConfigurationError.
var ErrConfiguration = errors.New("geometry configuration")

// ConfigurationError reports malformed vertex or index data.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("geometry: %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrConfiguration) match.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// Data holds one static mesh as four parallel attribute arrays plus a
// triangle-list index sequence. Vertices are duplicated across faces so
// each face can carry its own flat normal and color.
type Data struct {
	Positions []float32
	Normals   []float32
	Colors    []float32
	TexCoords []float32
	Indices   []uint16
}

// VertexCount returns the number of logical vertices.
func (d Data) VertexCount() int {
	return len(d.Positions) / PositionComponents
}

// Validate checks the per-attribute length invariants and index bounds.
func (d Data) Validate() error {
	if len(d.Positions) == 0 {
		return &ConfigurationError{Field: "positions", Reason: "empty"}
	}
	if len(d.Positions)%PositionComponents != 0 {
		return &ConfigurationError{Field: "positions", Reason: fmt.Sprintf("length %d is not a multiple of %d", len(d.Positions), PositionComponents)}
	}
	n := d.VertexCount()
	checks := []struct {
		field string
		got   int
		per   int
	}{
		{"normals", len(d.Normals), NormalComponents},
		{"colors", len(d.Colors), ColorComponents},
		{"texcoords", len(d.TexCoords), TexCoordComponents},
	}
	for _, c := range checks {
		if c.got != n*c.per {
			return &ConfigurationError{
				Field:  c.field,
				Reason: fmt.Sprintf("length %d, want %d for %d vertices", c.got, n*c.per, n),
			}
		}
	}

	if len(d.Indices) == 0 || len(d.Indices)%3 != 0 {
		return &ConfigurationError{Field: "indices", Reason: fmt.Sprintf("length %d is not a non-zero multiple of 3", len(d.Indices))}
	}
	for i, idx := range d.Indices {
		if int(idx) >= n {
			return &ConfigurationError{Field: "indices", Reason: fmt.Sprintf("index %d at %d out of range (%d vertices)", idx, i, n)}
		}
	}
	return nil
}

// Options customizes construction.
type Options struct {
	// Color, when set, overrides every vertex color.
	Color *[4]float32
}

// Layout holds the byte offsets of the four attribute regions inside the
// packed vertex buffer.
type Layout struct {
	Position int
	Normal   int
	Color    int
	TexCoord int
	Total    int
}

// ComputeLayout returns the batched region offsets for vertexCount vertices.
func ComputeLayout(vertexCount int) Layout {
	posBytes := vertexCount * PositionComponents * gpu.Float32Size
	normalBytes := vertexCount * NormalComponents * gpu.Float32Size
	colorBytes := vertexCount * ColorComponents * gpu.Float32Size
	texBytes := vertexCount * TexCoordComponents * gpu.Float32Size

	return Layout{
		Position: 0,
		Normal:   posBytes,
		Color:    posBytes + normalBytes,
		TexCoord: posBytes + normalBytes + colorBytes,
		Total:    posBytes + normalBytes + colorBytes + texBytes,
	}
}
