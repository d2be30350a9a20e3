package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockCheatsheet struct {
	mock.Mock
}

func (m *MockCheatsheet) Sections() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockCheatsheet) Run(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockCheatsheet) RunSection(ctx context.Context, w io.Writer, name string) error {
	args := m.Called(ctx, w, name)
	return args.Error(0)
}

func (m *MockCheatsheet) RunSections(ctx context.Context, w io.Writer, names ...string) error {
	args := m.Called(ctx, w, names)
	return args.Error(0)
}
