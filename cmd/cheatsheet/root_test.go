package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"oopcheatsheet/internal/service"
	"oopcheatsheet/internal/service/mocks"
)

func execute(t *testing.T, cs service.Cheatsheet, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(cs)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmd(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		setupMock func(m *mocks.MockCheatsheet)
		wantOut   string
		wantErr   string
	}{
		{
			name: "no flags runs everything",
			args: nil,
			setupMock: func(m *mocks.MockCheatsheet) {
				m.On("Run", mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name: "section flags are passed in order",
			args: []string{"-s", "static", "--section", "objects"},
			setupMock: func(m *mocks.MockCheatsheet) {
				m.On("RunSections", mock.Anything, mock.Anything, []string{"static", "objects"}).Return(nil)
			},
		},
		{
			name: "service error is returned",
			args: []string{"-s", "nope"},
			setupMock: func(m *mocks.MockCheatsheet) {
				m.On("RunSections", mock.Anything, mock.Anything, []string{"nope"}).
					Return(service.ErrUnknownSection)
			},
			wantErr: "unknown section",
		},
		{
			name: "sections subcommand lists names",
			args: []string{"sections"},
			setupMock: func(m *mocks.MockCheatsheet) {
				m.On("Sections").Return([]string{"objects", "static"})
			},
			wantOut: "objects\nstatic\n",
		},
		{
			name:      "positional args are rejected",
			args:      []string{"extra"},
			setupMock: func(m *mocks.MockCheatsheet) {},
			wantErr:   "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(mocks.MockCheatsheet)
			tt.setupMock(m)

			out, err := execute(t, m, tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantOut, out)
			}
			m.AssertExpectations(t)
		})
	}
}

func TestRootCmd_RealCheatsheet(t *testing.T) {
	cs := service.NewCheatsheet(nil, nil, service.DefaultOptions())

	out, err := execute(t, cs, "-s", "polymorphism")
	require.NoError(t, err)
	assert.Equal(t, "Area: 28.26\nArea: 20\n", out)

	_, err = execute(t, cs, "-s", "missing")
	assert.True(t, errors.Is(err, service.ErrUnknownSection))
}
