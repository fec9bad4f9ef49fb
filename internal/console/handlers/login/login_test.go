package login

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-membership/internal/console/prompt"
	"github.com/magabrotheeeer/gym-membership/internal/models"
	"github.com/magabrotheeeer/gym-membership/internal/services/membership"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Login(ctx context.Context, name, username string) (models.User, error) {
	args := m.Called(ctx, name, username)
	return args.Get(0).(models.User), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestLoginHandler_Handle(t *testing.T) {
	alice := models.User{
		Name:             "Alice Tan",
		Username:         "alicet",
		SubscriptionType: models.TierStandard,
		Billing:          models.BillingInfo{ModeOfPayment: "CARD", Email: "alice@x.com", ContactNumber: "555-1111"},
	}

	tests := []struct {
		name       string
		input      string
		setupMocks func(s *ServiceMock)
		wantOut    []string
		notOut     []string
		wantErr    error
	}{
		{
			name:  "found user prints payslip",
			input: "Alice Tan\nalicet\n",
			setupMocks: func(s *ServiceMock) {
				s.On("Login", mock.Anything, "Alice Tan", "alicet").Return(alice, nil).Once()
			},
			wantOut: []string{
				"--- LOGIN/VERIFY USER ---",
				"--- PRINT PAYSLIP ---",
				"Username: alicet",
				"Customer's Name: Alice Tan",
				"Type: Standard",
				"Email Address: alice@x.com",
				"--- LOG OUT USER ---",
			},
			notOut: []string{"User not found"},
		},
		{
			name:  "unknown user",
			input: "Alice Tan\nwrong\n",
			setupMocks: func(s *ServiceMock) {
				s.On("Login", mock.Anything, "Alice Tan", "wrong").
					Return(models.User{}, membership.ErrNotFound).Once()
			},
			wantOut: []string{"User not found. Please try again."},
			notOut:  []string{"PRINT PAYSLIP"},
		},
		{
			name:       "input ends before username",
			input:      "Alice Tan\n",
			setupMocks: func(_ *ServiceMock) {},
			wantErr:    io.EOF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMocks(svc)
			var out bytes.Buffer
			h := New(newNoopLogger(), svc, prompt.New(strings.NewReader(tt.input), &out))

			err := h.Handle(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, s := range tt.wantOut {
				assert.Contains(t, out.String(), s)
			}
			for _, s := range tt.notOut {
				assert.NotContains(t, out.String(), s)
			}
			svc.AssertExpectations(t)
		})
	}
}
