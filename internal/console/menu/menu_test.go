package menu

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-membership/internal/console/prompt"
)

type HandlerMock struct {
	mock.Mock
}

func (m *HandlerMock) Handle(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestMenu_Run(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		setupMocks func(reg, login, analytics *HandlerMock)
		wantOut    []string
		wantErr    string
	}{
		{
			name:  "dispatches and exits",
			input: "1\n2\n3\n0\n",
			setupMocks: func(reg, login, analytics *HandlerMock) {
				reg.On("Handle", mock.Anything).Return(nil).Once()
				login.On("Handle", mock.Anything).Return(nil).Once()
				analytics.On("Handle", mock.Anything).Return(nil).Once()
			},
			wantOut: []string{"--- USER'S GYM MEMBERSHIP ---", "[0] Exit", "Exiting the program."},
		},
		{
			name:       "invalid choices",
			input:      "9\nabc\n0\n",
			setupMocks: func(_, _, _ *HandlerMock) {},
			wantOut:    []string{"Invalid choice. Please try again.", "Exiting the program."},
		},
		{
			name:       "end of input exits",
			input:      "",
			setupMocks: func(_, _, _ *HandlerMock) {},
			wantOut:    []string{"Exiting the program."},
		},
		{
			name:  "handler hits end of input",
			input: "1\n",
			setupMocks: func(reg, _, _ *HandlerMock) {
				reg.On("Handle", mock.Anything).Return(io.EOF).Once()
			},
			wantOut: []string{"Exiting the program."},
		},
		{
			name:  "handler error stops the loop",
			input: "2\n0\n",
			setupMocks: func(_, login, _ *HandlerMock) {
				login.On("Handle", mock.Anything).Return(errors.New("stdin closed")).Once()
			},
			wantErr: "stdin closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, login, analytics := new(HandlerMock), new(HandlerMock), new(HandlerMock)
			tt.setupMocks(reg, login, analytics)
			var out bytes.Buffer
			m := New(newNoopLogger(), prompt.New(strings.NewReader(tt.input), &out), reg, login, analytics)

			err := m.Run(context.Background())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			for _, s := range tt.wantOut {
				assert.Contains(t, out.String(), s)
			}
			reg.AssertExpectations(t)
			login.AssertExpectations(t)
			analytics.AssertExpectations(t)
		})
	}
}

func TestMenu_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	h := new(HandlerMock)
	m := New(newNoopLogger(), prompt.New(strings.NewReader("1\n"), &out), h, h, h)

	require.NoError(t, m.Run(ctx))
	assert.Empty(t, out.String())
	h.AssertNotCalled(t, "Handle", mock.Anything)
}
