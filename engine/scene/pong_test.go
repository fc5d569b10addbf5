package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCourt() *Pong { return New(800, 600) }

func TestNewCentersEverything(t *testing.T) {
	p := newCourt()
	assert.Equal(t, float32(300), p.Left.Pos.Y())
	assert.Equal(t, float32(300), p.Right.Pos.Y())
	assert.Equal(t, mgl32.Vec2{400, 300}, p.Ball.Pos)
	assert.True(t, p.Serving())
}

func TestPaddleClampsToCourt(t *testing.T) {
	p := newCourt()
	for i := 0; i < 600; i++ {
		p.MoveLeft(1, 1.0/60)
	}
	assert.Equal(t, p.Height-p.Left.Size.Y()/2, p.Left.Pos.Y())

	for i := 0; i < 600; i++ {
		p.MoveLeft(-1, 1.0/60)
	}
	assert.Equal(t, p.Left.Size.Y()/2, p.Left.Pos.Y())
}

func TestServeLaunchesOnce(t *testing.T) {
	p := newCourt()
	p.Serve()
	require.False(t, p.Serving())
	v := p.Ball.Vel
	p.Serve() // rally running; must not relaunch
	assert.Equal(t, v, p.Ball.Vel)
}

func TestStepIsInertWhileServing(t *testing.T) {
	p := newCourt()
	p.Step(1.0 / 60)
	assert.Equal(t, mgl32.Vec2{400, 300}, p.Ball.Pos)
}

func TestWallBounce(t *testing.T) {
	p := newCourt()
	p.Ball.Pos = mgl32.Vec2{400, 8}
	p.Ball.Vel = mgl32.Vec2{0, -200}
	p.Step(1.0 / 60)
	assert.Positive(t, p.Ball.Vel.Y(), "bounced off the bottom wall")

	p.Ball.Pos = mgl32.Vec2{400, 595}
	p.Ball.Vel = mgl32.Vec2{0, 200}
	p.Step(1.0 / 60)
	assert.Negative(t, p.Ball.Vel.Y(), "bounced off the top wall")
}

func TestPaddleBounceReversesAndSpeedsUp(t *testing.T) {
	p := newCourt()
	p.Ball.Pos = mgl32.Vec2{p.Left.Pos.X() + 12, p.Left.Pos.Y()}
	p.Ball.Vel = mgl32.Vec2{-300, 0}
	before := p.Ball.Vel.Len()

	p.Step(1.0 / 60)
	assert.Positive(t, p.Ball.Vel.X(), "reflected off the left paddle")
	assert.Greater(t, p.Ball.Vel.Len(), before, "rally speeds up on every hit")
}

func TestBounceSteersByIntercept(t *testing.T) {
	p := newCourt()
	// Strike the upper half of the paddle face: the ball deflects upward.
	p.Ball.Pos = mgl32.Vec2{p.Left.Pos.X() + 12, p.Left.Pos.Y() + 30}
	p.Ball.Vel = mgl32.Vec2{-300, 0}
	p.Step(1.0 / 60)
	assert.Positive(t, p.Ball.Vel.Y())
}

func TestScoringResetsTheBall(t *testing.T) {
	p := newCourt()
	p.Ball.Pos = mgl32.Vec2{-30, 300}
	p.Ball.Vel = mgl32.Vec2{-400, 0}
	p.Step(1.0 / 60)

	assert.Equal(t, 1, p.ScoreRight)
	assert.Equal(t, 0, p.ScoreLeft)
	assert.Equal(t, mgl32.Vec2{400, 300}, p.Ball.Pos)
	assert.True(t, p.Serving())
}

func TestServeAlternatesAfterEachPoint(t *testing.T) {
	p := newCourt()
	first := p.serveDir
	p.Ball.Pos = mgl32.Vec2{850, 300}
	p.Ball.Vel = mgl32.Vec2{400, 0}
	p.Step(1.0 / 60)
	require.Equal(t, 1, p.ScoreLeft)
	assert.Equal(t, -first, p.serveDir)
}

func TestResizeKeepsEverythingInBounds(t *testing.T) {
	p := newCourt()
	p.MoveLeft(1, 10) // drive the paddle to the top edge
	p.Resize(1024, 200)

	assert.Equal(t, float32(1024-30), p.Right.Pos.X())
	assert.LessOrEqual(t, p.Left.Pos.Y()+p.Left.Size.Y()/2, p.Height)
	assert.LessOrEqual(t, p.Ball.Pos.Y()+p.Ball.Diameter/2, p.Height)
}

func TestBallHitsPaddle(t *testing.T) {
	pad := Paddle{Pos: mgl32.Vec2{30, 300}, Size: mgl32.Vec2{10, 100}}
	hit := Ball{Pos: mgl32.Vec2{38, 310}, Diameter: 20}
	miss := Ball{Pos: mgl32.Vec2{38, 380}, Diameter: 20}
	assert.True(t, ballHitsPaddle(hit, pad))
	assert.False(t, ballHitsPaddle(miss, pad))
}
