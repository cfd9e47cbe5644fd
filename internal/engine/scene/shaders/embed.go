// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// MapVertexShader is the vertex shader for the full-view map quad.
//
//go:embed map.vert
var MapVertexShader string

// MapFragmentShader samples the map texture through the ripple
// displacement field.
//
//go:embed map.frag
var MapFragmentShader string
