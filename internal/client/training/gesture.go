package training

// Outcome is what a finished pointer gesture means for the current card.
type Outcome int

const (
	// SpringBack returns the card to rest without an action.
	SpringBack Outcome = iota
	Flip
	Know
	DontKnow
)

func (o Outcome) String() string {
	switch o {
	case Flip:
		return "flip"
	case Know:
		return "know"
	case DontKnow:
		return "dont-know"
	}
	return "spring-back"
}

// Gesture tracks a horizontal drag on a card. Distances are in pixels.
type Gesture struct {
	swipe  float64
	tap    float64
	startX float64
	dx     float64
	active bool
}

// NewGesture creates a gesture where a release beyond swipe commits an
// answer and a release within tap flips the card.
func NewGesture(swipe, tap float64) *Gesture {
	return &Gesture{swipe: swipe, tap: tap}
}

// Down starts a drag at x.
func (g *Gesture) Down(x float64) {
	g.startX = x
	g.dx = 0
	g.active = true
}

// Move updates the drag offset. It is ignored without a preceding Down.
func (g *Gesture) Move(x float64) {
	if g.active {
		g.dx = x - g.startX
	}
}

// Up ends the drag: right past the swipe threshold is Know, left is
// DontKnow, a barely moved pointer is a Flip, anything else springs back.
func (g *Gesture) Up() Outcome {
	if !g.active {
		return SpringBack
	}
	dx := g.dx
	g.Reset()

	switch {
	case dx > g.swipe:
		return Know
	case dx < -g.swipe:
		return DontKnow
	case dx > -g.tap && dx < g.tap:
		return Flip
	}
	return SpringBack
}

// Offset is the current drag distance, for rendering the card.
func (g *Gesture) Offset() float64 { return g.dx }

// Active reports whether a drag is in progress.
func (g *Gesture) Active() bool { return g.active }

// Reset abandons the drag.
func (g *Gesture) Reset() {
	g.dx = 0
	g.active = false
}
