package ripple

// Surface holds the geometry the ripple shader is drawn on: two triangles
// covering the whole view.
type Surface struct {
	Vertices []float32 // Flat array: x, y, u, v for each of 6 vertices
}

// SurfaceStride is the byte size of one Surface vertex.
const SurfaceStride = 4 * 4

// BuildSurface creates a full-view quad in normalized device coordinates.
// Texture coordinates put (0,0) at the top-left so that u*width, v*height
// matches view-local pointer coordinates.
func BuildSurface() *Surface {
	// Order: TL, BL, BR, TL, BR, TR
	vertices := []float32{
		-1, 1, 0, 0,
		-1, -1, 0, 1,
		1, -1, 1, 1,
		-1, 1, 0, 0,
		1, -1, 1, 1,
		1, 1, 1, 0,
	}

	return &Surface{Vertices: vertices}
}

// VertexCount returns the number of vertices to draw.
func (s *Surface) VertexCount() int32 {
	return int32(len(s.Vertices) / 4)
}
