// Package scene holds the pong game state: two paddles, a ball and the
// court bounds. Pure data and rules; no GL calls, so the whole package is
// unit-testable. The game layer feeds input deltas in, steps the
// simulation, and mirrors the results into instance attribute buffers.
package scene

import "github.com/go-gl/mathgl/mgl32"

const (
	paddleMargin = 30.0  // gap between a paddle center and its wall
	paddleSpeed  = 420.0 // pixels per second
	serveSpeed   = 360.0
	hitSpeedup   = 1.05 // applied on every paddle hit
	maxSpeed     = 900.0
)

// Paddle is an axis-aligned box addressed by its center, matching the
// unit-quad geometry scaled by Size and translated by Pos at draw time.
type Paddle struct {
	Pos  mgl32.Vec2
	Size mgl32.Vec2
}

// Ball is a circle addressed by its center. Vel is zero while waiting for a
// serve.
type Ball struct {
	Pos      mgl32.Vec2
	Vel      mgl32.Vec2
	Diameter float32
}

// Pong is the whole court.
type Pong struct {
	Width, Height         float32
	Left, Right           Paddle
	Ball                  Ball
	ScoreLeft, ScoreRight int

	serveDir float32 // x direction of the next serve; flips every point
}

func New(width, height float32) *Pong {
	p := &Pong{Width: width, Height: height, serveDir: 1}
	size := mgl32.Vec2{10, 100}
	p.Left = Paddle{Pos: mgl32.Vec2{paddleMargin, height / 2}, Size: size}
	p.Right = Paddle{Pos: mgl32.Vec2{width - paddleMargin, height / 2}, Size: size}
	p.Ball = Ball{Pos: mgl32.Vec2{width / 2, height / 2}, Diameter: 20}
	return p
}

// Serving reports whether the ball is waiting on the center line.
func (p *Pong) Serving() bool { return p.Ball.Vel == (mgl32.Vec2{}) }

// Serve launches a waiting ball. No-op while a rally is running.
func (p *Pong) Serve() {
	if !p.Serving() {
		return
	}
	p.Ball.Vel = mgl32.Vec2{serveSpeed * p.serveDir, serveSpeed * 0.25}
}

// MoveLeft moves the left paddle by dir (-1, 0, +1) at paddle speed,
// clamped to the court. MoveRight is the mirror.
func (p *Pong) MoveLeft(dir float32, dt float64)  { p.movePaddle(&p.Left, dir, dt) }
func (p *Pong) MoveRight(dir float32, dt float64) { p.movePaddle(&p.Right, dir, dt) }

func (p *Pong) movePaddle(pad *Paddle, dir float32, dt float64) {
	y := pad.Pos.Y() + dir*paddleSpeed*float32(dt)
	half := pad.Size.Y() / 2
	if y < half {
		y = half
	}
	if y > p.Height-half {
		y = p.Height - half
	}
	pad.Pos = mgl32.Vec2{pad.Pos.X(), y}
}

// Step advances the ball, reflecting it off the top/bottom walls and the
// paddles, and scores when it leaves the court on either side.
func (p *Pong) Step(dt float64) {
	if p.Serving() {
		return
	}
	b := &p.Ball
	b.Pos = b.Pos.Add(b.Vel.Mul(float32(dt)))
	r := b.Diameter / 2

	// Walls.
	if b.Pos.Y()-r < 0 && b.Vel.Y() < 0 {
		b.Vel = mgl32.Vec2{b.Vel.X(), -b.Vel.Y()}
	}
	if b.Pos.Y()+r > p.Height && b.Vel.Y() > 0 {
		b.Vel = mgl32.Vec2{b.Vel.X(), -b.Vel.Y()}
	}

	// Paddles.
	if b.Vel.X() < 0 && ballHitsPaddle(*b, p.Left) {
		p.bounce(&p.Left)
	}
	if b.Vel.X() > 0 && ballHitsPaddle(*b, p.Right) {
		p.bounce(&p.Right)
	}

	// Goals.
	if b.Pos.X()+r < 0 {
		p.ScoreRight++
		p.resetBall()
	}
	if b.Pos.X()-r > p.Width {
		p.ScoreLeft++
		p.resetBall()
	}
}

// ballHitsPaddle is an axis-aligned overlap test between the ball's
// bounding box and the paddle.
func ballHitsPaddle(b Ball, pad Paddle) bool {
	r := b.Diameter / 2
	hw, hh := pad.Size.X()/2, pad.Size.Y()/2
	return b.Pos.X()+r > pad.Pos.X()-hw &&
		b.Pos.X()-r < pad.Pos.X()+hw &&
		b.Pos.Y()+r > pad.Pos.Y()-hh &&
		b.Pos.Y()-r < pad.Pos.Y()+hh
}

// bounce reverses the ball's x velocity, steers y by where the paddle was
// struck, and speeds the rally up a notch.
func (p *Pong) bounce(pad *Paddle) {
	b := &p.Ball
	speed := b.Vel.Len() * hitSpeedup
	if speed > maxSpeed {
		speed = maxSpeed
	}
	intercept := (b.Pos.Y() - pad.Pos.Y()) / (pad.Size.Y() / 2) // -1..1 across the face
	dirX := float32(1)
	if b.Vel.X() > 0 {
		dirX = -1
	}
	dir := mgl32.Vec2{dirX, intercept * 0.8}.Normalize()
	b.Vel = dir.Mul(speed)
}

func (p *Pong) resetBall() {
	p.serveDir = -p.serveDir
	p.Ball.Pos = mgl32.Vec2{p.Width / 2, p.Height / 2}
	p.Ball.Vel = mgl32.Vec2{}
}

// Resize adjusts the court to new pixel dimensions: paddles snap back to
// their wall margins, and everything is clamped inside the new bounds.
func (p *Pong) Resize(width, height float32) {
	p.Width, p.Height = width, height
	p.Left.Pos = mgl32.Vec2{paddleMargin, clamp(p.Left.Pos.Y(), p.Left.Size.Y()/2, height-p.Left.Size.Y()/2)}
	p.Right.Pos = mgl32.Vec2{width - paddleMargin, clamp(p.Right.Pos.Y(), p.Right.Size.Y()/2, height-p.Right.Size.Y()/2)}
	r := p.Ball.Diameter / 2
	p.Ball.Pos = mgl32.Vec2{clamp(p.Ball.Pos.X(), r, width-r), clamp(p.Ball.Pos.Y(), r, height-r)}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
