package model

import (
	"strconv"
	"strings"
)

// ApproxPi is the pi approximation circles use unless told otherwise.
const ApproxPi = 3.14

// MaxAreaPrecision caps the decimals DescribeArea prints; float64 carries
// no more than about 17 significant digits.
const MaxAreaPrecision = 15

// ShapeKind enumerates the closed set of shape variants.
type ShapeKind int

const (
	KindCircle ShapeKind = iota + 1
	KindRectangle
)

func (k ShapeKind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	default:
		return "unknown"
	}
}

// Shape is the abstract type. Callers hold a Shape and never need to know
// which variant they have to compute its area.
type Shape interface {
	Kind() ShapeKind
	Area() float64
}

// Circle is a Shape defined by its radius.
type Circle struct {
	Radius float64
	Pi     float64
}

// NewCircle returns a circle that uses ApproxPi.
func NewCircle(radius float64) Circle {
	return Circle{Radius: radius, Pi: ApproxPi}
}

// WithPi returns a copy of c using another approximation of pi.
func (c Circle) WithPi(pi float64) Circle {
	c.Pi = pi
	return c
}

func (c Circle) Kind() ShapeKind { return KindCircle }

func (c Circle) Area() float64 {
	return c.Pi * c.Radius * c.Radius
}

// Rectangle is a Shape defined by length and width.
type Rectangle struct {
	Length float64
	Width  float64
}

// NewRectangle returns a rectangle with the given sides.
func NewRectangle(length, width float64) Rectangle {
	return Rectangle{Length: length, Width: width}
}

func (r Rectangle) Kind() ShapeKind { return KindRectangle }

func (r Rectangle) Area() float64 {
	return r.Length * r.Width
}

// DescribeArea renders "Area: <value>" with the area rounded to precision
// decimals (at most MaxAreaPrecision) and trailing zeros dropped. A negative
// precision prints the shortest exact representation.
func DescribeArea(s Shape, precision int) string {
	return "Area: " + formatArea(s.Area(), precision)
}

func formatArea(v float64, precision int) string {
	if precision > MaxAreaPrecision {
		precision = MaxAreaPrecision
	}
	out := strconv.FormatFloat(v, 'f', precision, 64)
	if precision > 0 && strings.Contains(out, ".") {
		out = strings.TrimRight(out, "0")
		out = strings.TrimSuffix(out, ".")
	}
	return out
}
