// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// BodyVertexShader transforms a body by u_projection * u_view * u_model.
//
//go:embed body.vert
var BodyVertexShader string

// BodyFragmentShader fills a body with u_color times the vertex color.
//
//go:embed body.frag
var BodyFragmentShader string

// ShadedVertexShader is BodyVertexShader plus a world-space normal.
//
//go:embed shaded.vert
var ShadedVertexShader string

// ShadedFragmentShader tints the vertex color by the normal's facing.
//
//go:embed shaded.frag
var ShadedFragmentShader string

// OffsetVertexShader moves a flat shape by u_dx/u_dy and flips it by u_flip.
//
//go:embed offset.vert
var OffsetVertexShader string

// OffsetFragmentShader fills with u_color.
//
//go:embed offset.frag
var OffsetFragmentShader string
