// Package login реализует консольный вход участника и печать его сводки.
package login

import (
	"context"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/gym-membership/internal/console/handlers/payslip"
	"github.com/magabrotheeeer/gym-membership/internal/console/prompt"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
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

// Handle делает одну попытку входа. При успехе печатает сводку
// по найденному участнику.
func (h *Handler) Handle(ctx context.Context) error {
	const op = "handlers.login"

	h.p.Println("--- LOGIN/VERIFY USER ---")
	name, err := h.p.Line("Enter Customer's Name: ")
	if err != nil {
		return err
	}
	username, err := h.p.Token("Enter Username: ")
	if err != nil {
		return err
	}

	user, err := h.svc.Login(ctx, name, username)
	if err != nil {
		if !errors.Is(err, membership.ErrNotFound) {
			h.log.Error("login failed", slog.String("op", op), sl.Err(err))
		}
		h.p.Println("User not found. Please try again.")
		return nil
	}

	return payslip.Print(h.p, user)
}
