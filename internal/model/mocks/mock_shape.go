package mocks

import (
	"oopcheatsheet/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockShape struct {
	mock.Mock
}

func (m *MockShape) Kind() model.ShapeKind {
	args := m.Called()
	return args.Get(0).(model.ShapeKind)
}

func (m *MockShape) Area() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}
