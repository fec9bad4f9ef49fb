package login

import (
	"context"

	"github.com/magabrotheeeer/gym-membership/internal/models"
)

type Service interface {
	Login(ctx context.Context, name, username string) (models.User, error)
}
