// Package register реализует консольную регистрацию участника.
package register

import (
	"context"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/gym-membership/internal/console/prompt"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
	"github.com/magabrotheeeer/gym-membership/internal/models"
	"github.com/magabrotheeeer/gym-membership/internal/services/membership"
)

type Handler struct {
	log *slog.Logger
	svc Service
	p   *prompt.Prompt
}

func New(log *slog.Logger, svc Service, p *prompt.Prompt) *Handler {
	return &Handler{
		log: log,
		svc: svc,
		p:   p,
	}
}

// Handle запрашивает данные участника и сохраняет его.
// Возвращает только ошибки ввода; ошибки сохранения выводятся пользователю.
func (h *Handler) Handle(ctx context.Context) error {
	const op = "handlers.register"
	log := h.log.With(slog.String("op", op))

	var req membership.RegisterRequest
	var err error

	h.p.Println("--- REGISTER USER ---")
	if req.Name, err = h.p.Line("Enter Customer's Name: "); err != nil {
		return err
	}
	if req.Username, err = h.p.Token("Select a Username: "); err != nil {
		return err
	}

	h.p.Println("--- Subscription Type ---")
	choice, _, err := h.p.Int("[1] Basic\n[2] Standard\n[3] Premium\nChoose: ")
	if err != nil {
		return err
	}
	var defaulted bool
	if req.SubscriptionType, defaulted = h.svc.NormalizeTier(models.Tier(choice)); defaulted {
		h.p.Println("Invalid choice, setting to Basic by default.")
	}

	h.p.Println("--- Billing Information ---")
	if req.Billing.ModeOfPayment, err = h.p.Line("Mode of Payment (CASH/CARD): "); err != nil {
		return err
	}
	if req.Billing.Email, err = h.p.Line("Email Address: "); err != nil {
		return err
	}
	if req.Billing.ContactNumber, err = h.p.Line("Contact Number: "); err != nil {
		return err
	}

	if _, err = h.svc.Register(ctx, req); err != nil {
		log.Error("registration failed", sl.Err(err))
		if errors.Is(err, membership.ErrEmptyName) {
			h.p.Println("Registration failed: name and username must not be empty.")
			return nil
		}
		h.p.Println("Registration failed: unable to save the user.")
		return nil
	}

	h.p.Println("Registration complete!")
	return nil
}
