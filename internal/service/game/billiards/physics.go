package billiards

import "math"

const (
	Width      = 800.0
	Height     = 400.0
	BallRadius = 10.0
	Friction   = 0.985
	WallBounce = 0.7
	MinSpeed   = 0.1

	CueBall     = 0
	ObjectBalls = 15
)

type Ball struct {
	ID     int     `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
	Potted bool    `json:"potted"`
}

type Point struct {
	X, Y float64
}

var Pockets = [6]Point{
	{0, 0}, {Width / 2, 0}, {Width, 0},
	{0, Height}, {Width / 2, Height}, {Width, Height},
}

// EventKind is what happened to a ball during simulation.
type EventKind int

const (
	EventPot EventKind = iota
	EventScratch
)

type Event struct {
	Kind EventKind
	Ball int
}

// Table holds the cue ball at index 0 followed by the object balls.
type Table struct {
	Balls []Ball `json:"balls"`
}

func cueSpot() (float64, float64) {
	return Width * 0.25, Height / 2
}

// Rack lays out the fifteen object balls in a triangle and spots the cue.
func Rack() *Table {
	t := &Table{Balls: make([]Ball, 0, ObjectBalls+1)}
	x, y := cueSpot()
	t.Balls = append(t.Balls, Ball{ID: CueBall, X: x, Y: y})

	cx, cy := Width*0.7, Height/2
	spacing := BallRadius * 2.1
	id := 1
	for row := 0; row < 5; row++ {
		for col := 0; col <= row; col++ {
			t.Balls = append(t.Balls, Ball{
				ID: id,
				X:  cx + float64(row)*spacing*0.86,
				Y:  cy - float64(row)*spacing/2 + float64(col)*spacing,
			})
			id++
		}
	}
	return t
}

// Remaining counts object balls still on the table.
func (t *Table) Remaining() int {
	n := 0
	for _, b := range t.Balls[1:] {
		if !b.Potted {
			n++
		}
	}
	return n
}

// Strike sets the cue ball moving along angle (radians) with the given
// strength in units per step.
func (t *Table) Strike(angle, strength float64) {
	cue := &t.Balls[CueBall]
	cue.VX = math.Cos(angle) * strength
	cue.VY = math.Sin(angle) * strength
}

// Step advances one frame: move with friction, bounce off cushions, drop
// into pockets, then resolve ball contacts. It reports whether anything
// is still moving.
func (t *Table) Step() (bool, []Event) {
	var (
		moving bool
		events []Event
	)

	for i := range t.Balls {
		b := &t.Balls[i]
		if b.Potted {
			continue
		}

		b.X += b.VX
		b.Y += b.VY
		b.VX *= Friction
		b.VY *= Friction
		if math.Abs(b.VX) < MinSpeed {
			b.VX = 0
		}
		if math.Abs(b.VY) < MinSpeed {
			b.VY = 0
		}
		if b.VX != 0 || b.VY != 0 {
			moving = true
		}

		if b.X-BallRadius < 0 || b.X+BallRadius > Width {
			b.VX *= -WallBounce
			b.X = clampWall(b.X, Width)
		}
		if b.Y-BallRadius < 0 || b.Y+BallRadius > Height {
			b.VY *= -WallBounce
			b.Y = clampWall(b.Y, Height)
		}

		for _, p := range Pockets {
			if math.Hypot(b.X-p.X, b.Y-p.Y) >= BallRadius*2 {
				continue
			}
			b.VX, b.VY = 0, 0
			if b.ID == CueBall {
				b.X, b.Y = cueSpot()
				events = append(events, Event{Kind: EventScratch, Ball: b.ID})
			} else {
				b.Potted = true
				events = append(events, Event{Kind: EventPot, Ball: b.ID})
			}
			break
		}
	}

	for i := range t.Balls {
		for j := i + 1; j < len(t.Balls); j++ {
			b1, b2 := &t.Balls[i], &t.Balls[j]
			if b1.Potted || b2.Potted {
				continue
			}
			dx, dy := b2.X-b1.X, b2.Y-b1.Y
			if math.Hypot(dx, dy) >= BallRadius*2 {
				continue
			}
			angle := math.Atan2(dy, dx)
			tx := b1.X + math.Cos(angle)*BallRadius*2
			ty := b1.Y + math.Sin(angle)*BallRadius*2
			ax, ay := (tx-b2.X)*0.5, (ty-b2.Y)*0.5
			b1.VX -= ax
			b1.VY -= ay
			b2.VX += ax
			b2.VY += ay
			moving = true
		}
	}

	return moving, events
}

// Simulate steps until the table is still or maxSteps is reached.
func (t *Table) Simulate(maxSteps int) []Event {
	var events []Event
	for i := 0; i < maxSteps; i++ {
		moving, ev := t.Step()
		events = append(events, ev...)
		if !moving {
			break
		}
	}
	for i := range t.Balls {
		t.Balls[i].VX, t.Balls[i].VY = 0, 0
	}
	return events
}

func clampWall(v, limit float64) float64 {
	if v < BallRadius {
		return BallRadius
	}
	return limit - BallRadius
}
