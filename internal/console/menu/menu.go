// Package menu реализует главный цикл консоли: Register / Login / Analytics / Exit.
package menu

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/magabrotheeeer/gym-membership/internal/console/prompt"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
)

// Handler — одна операция меню.
type Handler interface {
	Handle(ctx context.Context) error
}

type Menu struct {
	log       *slog.Logger
	p         *prompt.Prompt
	register  Handler
	login     Handler
	analytics Handler
}

func New(log *slog.Logger, p *prompt.Prompt, register, login, analytics Handler) *Menu {
	return &Menu{
		log:       log,
		p:         p,
		register:  register,
		login:     login,
		analytics: analytics,
	}
}

// Run показывает меню до выбора Exit, конца ввода или отмены ctx.
// Каждая операция выполняется до конца перед следующим показом меню.
func (m *Menu) Run(ctx context.Context) error {
	const op = "menu.Run"
	log := m.log.With(slog.String("op", op))

	for ctx.Err() == nil {
		m.p.Println("--- USER'S GYM MEMBERSHIP ---")
		m.p.Println("[1] Register User\n[2] Login User\n[3] Analytics\n[0] Exit")
		choice, ok, err := m.p.Int("Enter your choice: ")
		if err != nil {
			return m.stop(err)
		}
		if !ok {
			m.p.Println("Invalid choice. Please try again.")
			continue
		}

		var h Handler
		switch choice {
		case 1:
			h = m.register
		case 2:
			h = m.login
		case 3:
			h = m.analytics
		case 0:
			m.p.Println("Exiting the program.")
			return nil
		default:
			m.p.Println("Invalid choice. Please try again.")
			continue
		}

		if err = h.Handle(ctx); err != nil {
			log.Error("operation aborted", slog.Int("choice", choice), sl.Err(err))
			return m.stop(err)
		}
	}
	return nil
}

// stop завершает цикл: конец ввода равносилен выходу.
func (m *Menu) stop(err error) error {
	if errors.Is(err, io.EOF) {
		m.p.Println()
		m.p.Println("Exiting the program.")
		return nil
	}
	return err
}
