package main

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/pong/engine/assets"
	"github.com/hubastard/pong/engine/colors"
	"github.com/hubastard/pong/engine/core"
	"github.com/hubastard/pong/engine/gfx/glbackend"
	"github.com/hubastard/pong/engine/gfx/shapes"
	"github.com/hubastard/pong/engine/scene"
	"github.com/hubastard/pong/engine/scratch"
)

// Shader input slots. Must match the layout locations in sprite.vert.
const (
	attrPos    = 0
	attrOffset = 1
	attrSize   = 2
)

const ballSegments = 32

// PongLayer owns the scene state and every GPU resource that renders it:
// one program, one quad VAO drawn twice-instanced for the paddles, and one
// circle-fan VAO for the ball.
type PongLayer struct {
	game *scene.Pong

	prog     *glbackend.Program
	paddleVA *glbackend.VertexArray
	ballVA   *glbackend.VertexArray
	paddles  glbackend.Drawable
	ball     glbackend.Drawable
}

// NewPongLayer compiles the sprite program and uploads all geometry. Any
// failure here aborts startup before the render loop.
func NewPongLayer(e *core.Engine) (*PongLayer, error) {
	w, h := e.Window.FramebufferSize()
	l := &PongLayer{game: scene.New(float32(w), float32(h))}

	vs, fs, err := assets.LoadShaderPair("sprite.vert", "sprite.frag")
	if err != nil {
		return nil, err
	}
	l.prog, err = glbackend.NewProgram(vs, fs)
	if err != nil {
		return nil, err
	}
	ctx := e.Graphics.(*glbackend.Context)
	if err := ctx.WatchProgram(l.prog); err != nil {
		return nil, err
	}

	if err := l.buildPaddles(); err != nil {
		return nil, err
	}
	if err := l.buildBall(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *PongLayer) buildPaddles() error {
	verts, inds := shapes.Quad()
	va := glbackend.NewVertexArray()
	if err := va.AttachStatic(attrPos, 2, verts); err != nil {
		return err
	}
	offsets := packVec2(l.game.Left.Pos, l.game.Right.Pos)
	if err := va.AttachInstanced(attrOffset, 2, offsets, 1); err != nil {
		return err
	}
	sizes := packVec2(l.game.Left.Size, l.game.Right.Size)
	if err := va.AttachInstanced(attrSize, 2, sizes, 1); err != nil {
		return err
	}
	va.AttachIndices(inds)

	l.paddleVA = va
	l.paddles = glbackend.Drawable{
		VA:        va,
		Program:   l.prog,
		Mode:      glbackend.Triangles,
		Count:     int32(len(inds)),
		IndexType: glbackend.IndexUint32,
		Instances: 2,
	}
	return nil
}

func (l *PongLayer) buildBall() error {
	verts, inds := shapes.CircleFan(ballSegments)
	va := glbackend.NewVertexArray()
	if err := va.AttachStatic(attrPos, 2, verts); err != nil {
		return err
	}
	if err := va.AttachInstanced(attrOffset, 2, packVec2(l.game.Ball.Pos), 1); err != nil {
		return err
	}
	d := l.game.Ball.Diameter
	if err := va.AttachInstanced(attrSize, 2, []float32{d, d}, 1); err != nil {
		return err
	}
	va.AttachIndices(inds)

	l.ballVA = va
	l.ball = glbackend.Drawable{
		VA:        va,
		Program:   l.prog,
		Mode:      glbackend.Triangles,
		Count:     int32(len(inds)),
		IndexType: glbackend.IndexUint32,
		Instances: 1,
	}
	return nil
}

func packVec2(vs ...mgl32.Vec2) []float32 {
	out := make([]float32, 0, len(vs)*2)
	for _, v := range vs {
		out = append(out, v.X(), v.Y())
	}
	return out
}

func (l *PongLayer) OnAttach(e *core.Engine) {}

// OnDetach tears down GPU resources in reverse creation order: buffers and
// vertex arrays first, the program last.
func (l *PongLayer) OnDetach(e *core.Engine) {
	l.ballVA.Destroy()
	l.paddleVA.Destroy()
	l.prog.Destroy()
}

func (l *PongLayer) OnUpdate(e *core.Engine, dt float64) {
	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
	if e.Input.IsKeyDown(core.KeySpace) {
		l.game.Serve()
	}
	l.game.MoveLeft(float32(e.Input.Axis(core.KeyS, core.KeyW)), dt)
	l.game.MoveRight(float32(e.Input.Axis(core.KeyDown, core.KeyUp)), dt)
	l.game.Step(dt)
}

// OnRender uploads the instance attributes that moved this tick, then
// issues one draw call per drawable. Updates always precede draws.
func (l *PongLayer) OnRender(e *core.Engine, alpha float64) {
	scratch.Reset()

	m := scratch.Mark()
	scratch.Vec2(l.game.Left.Pos)
	scratch.Vec2(l.game.Right.Pos)
	if err := l.paddleVA.UpdateAttribute(attrOffset, 0, scratch.From(m)); err != nil {
		log.Printf("paddle offsets: %v", err)
	}

	m = scratch.Mark()
	scratch.Vec2(l.game.Ball.Pos)
	if err := l.ballVA.UpdateAttribute(attrOffset, 0, scratch.From(m)); err != nil {
		log.Printf("ball offset: %v", err)
	}

	l.prog.SetVec4("uColor", mgl32.Vec4(colors.White))
	l.paddles.Draw()
	l.prog.SetVec4("uColor", mgl32.Vec4(colors.Yellow))
	l.ball.Draw()
}

func (l *PongLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	if r, ok := ev.(core.EventResize); ok && r.W > 0 && r.H > 0 {
		l.game.Resize(float32(r.W), float32(r.H))
	}
	return false
}
