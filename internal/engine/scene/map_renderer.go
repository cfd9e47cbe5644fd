// Package scene renders the world map view: the composited day/night map
// drawn through the ripple distortion shader.
package scene

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/watchcore/internal/engine/ripple"
	"github.com/Faultbox/watchcore/internal/engine/scene/shaders"
	"github.com/Faultbox/watchcore/internal/engine/shader"
	"github.com/Faultbox/watchcore/internal/engine/texture"
	"github.com/Faultbox/watchcore/internal/logger"
)

// MapRenderer draws a full-view quad textured with the map image.
type MapRenderer struct {
	program uint32

	// Uniform locations
	locScene      int32
	locTime       int32
	locResolution int32

	locWaveOrigin    int32
	locWaveAmplitude int32
	locWaveFrequency int32
	locWaveSpeed     int32
	locWaveStart     int32
	locNumWaves      int32
	locDamping       int32
	locMinAmplitude  int32

	// Mesh
	vao         uint32
	vbo         uint32
	vertexCount int32

	// Scene texture
	texture   uint32
	texWidth  int
	texHeight int

	ripples ripple.Uniforms
}

// NewMapRenderer compiles the map shader and builds the view quad.
// Must be called with a current GL context. Panics if the shader lacks the
// scene sampler or the wave count.
func NewMapRenderer() (*MapRenderer, error) {
	mr := &MapRenderer{}

	program, err := shader.CompileProgram(shaders.MapVertexShader, shaders.MapFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("map shader: %w", err)
	}
	mr.program = program

	mr.locScene = shader.MustGetUniform(program, "uScene")
	mr.locTime = shader.GetUniform(program, "uTime")
	mr.locResolution = shader.GetUniform(program, "uResolution")

	// Ripple block
	mr.locWaveOrigin = shader.GetUniform(program, "uWaveOrigin")
	mr.locWaveAmplitude = shader.GetUniform(program, "uWaveAmplitude")
	mr.locWaveFrequency = shader.GetUniform(program, "uWaveFrequency")
	mr.locWaveSpeed = shader.GetUniform(program, "uWaveSpeed")
	mr.locWaveStart = shader.GetUniform(program, "uWaveStart")
	mr.locNumWaves = shader.MustGetUniform(program, "uNumWaves")
	mr.locDamping = shader.GetUniform(program, "uDamping")
	mr.locMinAmplitude = shader.GetUniform(program, "uMinAmplitude")

	mr.createSurface(ripple.BuildSurface())

	return mr, nil
}

func (mr *MapRenderer) createSurface(s *ripple.Surface) {
	mr.vertexCount = s.VertexCount()

	gl.GenVertexArrays(1, &mr.vao)
	gl.BindVertexArray(mr.vao)

	gl.GenBuffers(1, &mr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(s.Vertices)*4, unsafe.Pointer(&s.Vertices[0]), gl.STATIC_DRAW)

	// Position (location 0), texture coordinates (location 1)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, ripple.SurfaceStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, ripple.SurfaceStride, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// SetScene uploads src as the map texture. Images of the same size as the
// previous upload reuse the texture storage.
func (mr *MapRenderer) SetScene(src image.Image) {
	img := texture.ImageToRGBA(src)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	if mr.texture != 0 && w == mr.texWidth && h == mr.texHeight {
		gl.BindTexture(gl.TEXTURE_2D, mr.texture)
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
		return
	}

	if mr.texture == 0 {
		gl.GenTextures(1, &mr.texture)
	}
	gl.BindTexture(gl.TEXTURE_2D, mr.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	// Longitude wraps, latitude does not.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	mr.texWidth, mr.texHeight = w, h
	logger.Debug("map texture allocated",
		zap.Uint32("texture", mr.texture),
		zap.Int("width", w),
		zap.Int("height", h),
	)
}

// SetRipples stores the ripple block for the next Render.
func (mr *MapRenderer) SetRipples(u ripple.Uniforms) {
	mr.ripples = u
}

// Render draws the map. now is the ripple clock in seconds; width and
// height are the view size in pointer coordinates.
func (mr *MapRenderer) Render(now float64, width, height int) {
	if mr.texture == 0 || mr.vao == 0 {
		return
	}

	gl.UseProgram(mr.program)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, mr.texture)
	gl.Uniform1i(mr.locScene, 0)
	gl.Uniform1f(mr.locTime, float32(now))
	gl.Uniform2f(mr.locResolution, float32(width), float32(height))

	mr.uploadRipples()

	gl.BindVertexArray(mr.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, mr.vertexCount)
	gl.BindVertexArray(0)
}

// uploadRipples writes all MaxWaves slots every frame; the shader stops at
// uNumWaves.
func (mr *MapRenderer) uploadRipples() {
	u := &mr.ripples
	origins := u.Origins()
	amplitudes := u.Amplitudes()
	frequencies := u.Frequencies()
	speeds := u.Speeds()
	starts := u.StartTimes()

	gl.Uniform2fv(mr.locWaveOrigin, ripple.MaxWaves, &origins[0])
	gl.Uniform1fv(mr.locWaveAmplitude, ripple.MaxWaves, &amplitudes[0])
	gl.Uniform1fv(mr.locWaveFrequency, ripple.MaxWaves, &frequencies[0])
	gl.Uniform1fv(mr.locWaveSpeed, ripple.MaxWaves, &speeds[0])
	gl.Uniform1fv(mr.locWaveStart, ripple.MaxWaves, &starts[0])
	gl.Uniform1i(mr.locNumWaves, u.NumWaves)
	gl.Uniform1f(mr.locDamping, u.Damping)
	gl.Uniform1f(mr.locMinAmplitude, u.MinAmplitude)
}

// Destroy releases all resources.
func (mr *MapRenderer) Destroy() {
	if mr.vao != 0 {
		gl.DeleteVertexArrays(1, &mr.vao)
		mr.vao = 0
	}
	if mr.vbo != 0 {
		gl.DeleteBuffers(1, &mr.vbo)
		mr.vbo = 0
	}
	if mr.texture != 0 {
		gl.DeleteTextures(1, &mr.texture)
		mr.texture = 0
	}
	if mr.program != 0 {
		gl.DeleteProgram(mr.program)
		mr.program = 0
	}
}
