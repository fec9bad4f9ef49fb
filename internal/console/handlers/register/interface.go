package register

import (
	"context"

	"github.com/magabrotheeeer/gym-membership/internal/models"
	"github.com/magabrotheeeer/gym-membership/internal/services/membership"
)

type Service interface {
	NormalizeTier(tier models.Tier) (models.Tier, bool)
	Register(ctx context.Context, req membership.RegisterRequest) (membership.RegisterResult, error)
}
