package analytics

import (
	"context"

	"github.com/magabrotheeeer/gym-membership/internal/models"
)

type Service interface {
	AdminMembers(ctx context.Context, pin string) ([]models.User, error)
}
