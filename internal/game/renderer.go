package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// MaxSpriteRender caps the streaming sprite VBO (in sprites, 8 floats each).
const MaxSpriteRender = MaxParticles + GridCols*GridRows

// Camera maps grid-cell world coordinates to the screen. The board camera
// is fixed on the grid center; Zoom is pixels per cell.
type Camera struct {
	X, Y float64
	Zoom float64
}

// BoardCamera frames the whole grid inside the framebuffer with a small
// margin for the HUD.
func BoardCamera(fbW, fbH int) Camera {
	zx := float64(fbW) / float64(GridCols+1)
	zy := float64(fbH) / float64(GridRows+3)
	zoom := zx
	if zy < zoom {
		zoom = zy
	}
	return Camera{
		X:    float64(GridCols) / 2,
		Y:    float64(GridRows) / 2,
		Zoom: zoom,
	}
}

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Sprite program: flat squares (board, snake, obstacles).
	spriteProg    uint32
	spriteVAO     uint32
	spriteVBO     uint32
	spUCamera     int32
	spUZoom       int32
	spUResolution int32

	// Glow (radial light) program — shares spriteVAO, additive blend only.
	glowProg        uint32
	glowUCamera     int32
	glowUZoom       int32
	glowUResolution int32

	// Box program: rotated beveled squares for power-up pickups.
	boxProg        uint32
	boxUCamera     int32
	boxUZoom       int32
	boxUResolution int32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32

	// Reusable render buffers to avoid per-frame heap allocations.
	spriteBuf []float32
	glowBuf   []float32
	boxBuf    []float32
}

func NewRenderer() (*Renderer, error) {
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}
	boxProg, err := linkProgram(spriteVertSrc, boxFragSrc)
	if err != nil {
		gl.DeleteProgram(spriteProg)
		gl.DeleteProgram(glowProg)
		return nil, fmt.Errorf("box program: %w", err)
	}

	r := &Renderer{
		spriteProg: spriteProg,
		glowProg:   glowProg,
		boxProg:    boxProg,
	}

	// Sprite VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, size, r, g, b, a, rotation).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteRender*int(stride), nil, gl.STREAM_DRAW)
	// aWorldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aRotation (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	// Sprite uniforms.
	gl.UseProgram(spriteProg)
	r.spUCamera = gl.GetUniformLocation(spriteProg, gl.Str("uCamera\x00"))
	r.spUZoom = gl.GetUniformLocation(spriteProg, gl.Str("uZoom\x00"))
	r.spUResolution = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))

	// Glow uniforms.
	gl.UseProgram(glowProg)
	r.glowUCamera = gl.GetUniformLocation(glowProg, gl.Str("uCamera\x00"))
	r.glowUZoom = gl.GetUniformLocation(glowProg, gl.Str("uZoom\x00"))
	r.glowUResolution = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))

	// Box uniforms.
	gl.UseProgram(boxProg)
	r.boxUCamera = gl.GetUniformLocation(boxProg, gl.Str("uCamera\x00"))
	r.boxUZoom = gl.GetUniformLocation(boxProg, gl.Str("uZoom\x00"))
	r.boxUResolution = gl.GetUniformLocation(boxProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)

	if err := r.initText(); err != nil {
		r.Destroy()
		return nil, err
	}
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.spriteVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.spriteVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.spriteProg, r.glowProg, r.boxProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame clears the framebuffer and primes the camera uniforms on all
// world-space programs.
func (r *Renderer) BeginFrame(cam Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	bg := Palette.Background
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.spriteProg)
	gl.Uniform2f(r.spUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.spUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.spUResolution, float32(fbW), float32(fbH))

	gl.UseProgram(r.glowProg)
	gl.Uniform2f(r.glowUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.glowUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.glowUResolution, float32(fbW), float32(fbH))

	gl.UseProgram(r.boxProg)
	gl.Uniform2f(r.boxUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.boxUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.boxUResolution, float32(fbW), float32(fbH))

	gl.BindVertexArray(r.spriteVAO)
}
