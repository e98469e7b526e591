package material

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PatternKind selects how a pattern node turns a point into a color
type PatternKind int

const (
	PatternSolid PatternKind = iota
	PatternStripe
	PatternGradient
	PatternRing
	PatternChecker
)

var patternKindNames = map[PatternKind]string{
	PatternSolid:    "solid",
	PatternStripe:   "stripe",
	PatternGradient: "gradient",
	PatternRing:     "ring",
	PatternChecker:  "checker",
}

func (k PatternKind) String() string {
	if name, ok := patternKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PatternKind(%d)", int(k))
}

// ObjectSpace converts world-space points into the local space of the
// object a pattern is painted on.
type ObjectSpace interface {
	WorldToObject(worldPoint core.Tuple) core.Tuple
}

// Pattern is a node in a pattern tree. Solid nodes are leaves; the other
// kinds alternate or blend between two child patterns, each of which is
// sampled through its own transform. A child belongs to exactly one parent.
type Pattern struct {
	Kind  PatternKind
	Color core.Color // Solid only
	A, B  *Pattern   // Children for every kind except Solid

	transform core.Matrix
	inverse   core.Matrix
}

// NewPattern creates a pattern of the given kind over two child patterns
func NewPattern(kind PatternKind, a, b *Pattern) *Pattern {
	return &Pattern{
		Kind:      kind,
		A:         a,
		B:         b,
		transform: core.Identity(),
		inverse:   core.Identity(),
	}
}

// NewSolidPattern creates a constant-color leaf
func NewSolidPattern(color core.Color) *Pattern {
	p := NewPattern(PatternSolid, nil, nil)
	p.Color = color
	return p
}

// NewStripePattern alternates a and b along x
func NewStripePattern(a, b core.Color) *Pattern {
	return NewPattern(PatternStripe, NewSolidPattern(a), NewSolidPattern(b))
}

// NewGradientPattern blends from a to b across each unit of x
func NewGradientPattern(a, b core.Color) *Pattern {
	return NewPattern(PatternGradient, NewSolidPattern(a), NewSolidPattern(b))
}

// NewRingPattern alternates a and b in concentric rings in the xz plane
func NewRingPattern(a, b core.Color) *Pattern {
	return NewPattern(PatternRing, NewSolidPattern(a), NewSolidPattern(b))
}

// NewCheckerPattern alternates a and b in unit cubes
func NewCheckerPattern(a, b core.Color) *Pattern {
	return NewPattern(PatternChecker, NewSolidPattern(a), NewSolidPattern(b))
}

// Transform returns the pattern's transform
func (p *Pattern) Transform() core.Matrix {
	return p.transform
}

// SetTransform sets the pattern transform, rejecting matrices that cannot be inverted
func (p *Pattern) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("pattern transform: %w", err)
	}
	p.transform = m
	p.inverse = inv
	return nil
}

// At evaluates the pattern at a point already in this pattern's space
func (p *Pattern) At(point core.Tuple) core.Color {
	switch p.Kind {
	case PatternSolid:
		return p.Color
	case PatternStripe:
		if isEven(math.Floor(point.X)) {
			return p.A.sample(point)
		}
		return p.B.sample(point)
	case PatternGradient:
		a := p.A.sample(point)
		b := p.B.sample(point)
		fraction := point.X - math.Floor(point.X)
		return a.Add(b.Subtract(a).Multiply(fraction))
	case PatternRing:
		if isEven(math.Floor(math.Sqrt(point.X*point.X + point.Z*point.Z))) {
			return p.A.sample(point)
		}
		return p.B.sample(point)
	case PatternChecker:
		if isEven(math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)) {
			return p.A.sample(point)
		}
		return p.B.sample(point)
	default:
		return core.Black
	}
}

// AtShape evaluates the pattern at a world-space point on obj
func (p *Pattern) AtShape(obj ObjectSpace, worldPoint core.Tuple) core.Color {
	return p.sample(obj.WorldToObject(worldPoint))
}

// sample maps a point from the parent's space into this node's space and evaluates it
func (p *Pattern) sample(point core.Tuple) core.Color {
	return p.At(p.inverse.MultiplyTuple(point))
}

func isEven(v float64) bool {
	return math.Mod(v, 2) == 0
}
