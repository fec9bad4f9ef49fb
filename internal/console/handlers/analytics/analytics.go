// Package analytics реализует просмотр всех участников администратором по PIN.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

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

// Handle запрашивает PIN и при совпадении печатает всех участников
// с числовым кодом абонемента. Одна попытка на вызов.
func (h *Handler) Handle(ctx context.Context) error {
	const op = "handlers.analytics"

	pin, err := h.p.Token("Enter Admin PIN to view Analytics: ")
	if err != nil {
		return err
	}

	users, err := h.svc.AdminMembers(ctx, pin)
	if err != nil {
		if !errors.Is(err, membership.ErrAuthDenied) {
			h.log.Error("admin view failed", slog.String("op", op), sl.Err(err))
		}
		h.p.Println("Invalid PIN. Access Denied.")
		return nil
	}

	var b strings.Builder
	b.WriteString("--- ADMIN'S DATABASE/ANALYTICS ---\n")
	fmt.Fprintf(&b, "Active Users: %d\n", len(users))
	for _, u := range users {
		fmt.Fprintf(&b, "Name: %s, Username: %s\n", u.Name, u.Username)
		fmt.Fprintf(&b, "Subscription Type: %d\n", int(u.SubscriptionType))
		fmt.Fprintf(&b, "Billing Email: %s, Contact: %s\n", u.Billing.Email, u.Billing.ContactNumber)
	}
	if _, err = io.WriteString(h.p, b.String()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
