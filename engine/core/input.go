package core

type Input struct {
	keys           map[Key]bool
	mouseX, mouseY float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	}
}

func (in *Input) IsKeyDown(k Key) bool      { return in.keys[k] }
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }

// Axis returns -1, 0 or +1 from a pair of opposing keys, the usual shape
// for paddle movement.
func (in *Input) Axis(negative, positive Key) float64 {
	var v float64
	if in.IsKeyDown(negative) {
		v -= 1
	}
	if in.IsKeyDown(positive) {
		v += 1
	}
	return v
}
