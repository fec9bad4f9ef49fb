// Package sl содержит вспомогательные функции для работы с логгером slog.
// Основная цель — единообразно формировать структурированные поля лога
// для ошибок и участников.
package sl

import (
	"log/slog"

	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// Err возвращает slog.Attr с ключом "error" и текстом ошибки.
//
// Пример:
//
//	log.Error("failed to append user", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// User возвращает группу "user" с идентифицирующими полями участника.
// Платёжные данные в лог не попадают.
func User(u models.User) slog.Attr {
	return slog.Group("user",
		slog.String("name", u.Name),
		slog.String("username", u.Username),
		slog.Int("tier", int(u.SubscriptionType)),
	)
}
