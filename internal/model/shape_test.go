package model_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"oopcheatsheet/internal/model"
	"oopcheatsheet/internal/model/mocks"
)

func TestShape_Area(t *testing.T) {
	tests := []struct {
		name  string
		shape model.Shape
		kind  model.ShapeKind
		want  float64
	}{
		{name: "circle approx pi", shape: model.NewCircle(3), kind: model.KindCircle, want: 28.26},
		{name: "circle math.Pi", shape: model.NewCircle(3).WithPi(math.Pi), kind: model.KindCircle, want: math.Pi * 9},
		{name: "zero radius", shape: model.NewCircle(0), kind: model.KindCircle, want: 0},
		{name: "rectangle", shape: model.NewRectangle(4, 5), kind: model.KindRectangle, want: 20},
		{name: "fractional rectangle", shape: model.NewRectangle(1.5, 2), kind: model.KindRectangle, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.shape.Area(), 1e-9)
			assert.Equal(t, tt.kind, tt.shape.Kind())
		})
	}
}

func TestShapeKind_String(t *testing.T) {
	assert.Equal(t, "circle", model.KindCircle.String())
	assert.Equal(t, "rectangle", model.KindRectangle.String())
	assert.Equal(t, "unknown", model.ShapeKind(0).String())
}

func TestDescribeArea(t *testing.T) {
	tests := []struct {
		name      string
		shape     model.Shape
		precision int
		want      string
	}{
		{name: "circle rounded", shape: model.NewCircle(3), precision: 2, want: "Area: 28.26"},
		{name: "rectangle drops zeros", shape: model.NewRectangle(4, 5), precision: 2, want: "Area: 20"},
		{name: "math.Pi four places", shape: model.NewCircle(3).WithPi(math.Pi), precision: 4, want: "Area: 28.2743"},
		{name: "zero precision", shape: model.NewCircle(3).WithPi(math.Pi), precision: 0, want: "Area: 28"},
		{name: "negative precision is shortest", shape: model.NewRectangle(1.5, 2), precision: -1, want: "Area: 3"},
		{name: "huge precision is capped", shape: model.NewRectangle(4, 5), precision: 400, want: "Area: 20"},
		{name: "capped precision keeps digits", shape: model.NewRectangle(0.1, 1), precision: 400, want: "Area: 0.1"},
		{name: "negative area", shape: model.NewRectangle(-4, 5), precision: 2, want: "Area: -20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.DescribeArea(tt.shape, tt.precision))
		})
	}
}

func TestDescribeArea_LargeArea(t *testing.T) {
	got := model.DescribeArea(model.NewRectangle(1e307, 10), 2)

	assert.NotContains(t, got, "Inf")
	assert.NotContains(t, got, "NaN")
	assert.True(t, strings.HasPrefix(got, "Area: 1000000000000000"), got)
	assert.NotContains(t, got, ".")
}

func TestDescribeArea_UsesInterface(t *testing.T) {
	s := new(mocks.MockShape)
	s.On("Area").Return(12.3456).Once()

	assert.Equal(t, "Area: 12.35", model.DescribeArea(s, 2))
	s.AssertExpectations(t)
}
