// Package membership содержит бизнес-логику консоли участников спортзала:
// регистрацию с выбором абонемента, вход по имени и username
// и доступ администратора к списку участников по PIN.
package membership

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/gym-membership/internal/lib/secret"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
	"github.com/magabrotheeeer/gym-membership/internal/metrics"
	"github.com/magabrotheeeer/gym-membership/internal/models"
	"github.com/magabrotheeeer/gym-membership/internal/storage"
)

var (
	// ErrNotFound — участник не найден.
	ErrNotFound = storage.ErrNotFound
	// ErrAuthDenied — неверный PIN администратора.
	ErrAuthDenied = errors.New("access denied")
	// ErrEmptyName — пустое имя или username при регистрации.
	ErrEmptyName = errors.New("name and username must not be empty")
)

// UserRepository описывает контракт хранилища участников.
type UserRepository interface {
	// Append сохраняет участника в конец списка.
	Append(user models.User) error
	// FindExact возвращает первого участника с совпадающими name и username.
	FindExact(name, username string) (models.User, error)
	// Count возвращает количество участников.
	Count() int
	// Snapshot возвращает копию списка участников.
	Snapshot() []models.User
}

// EventPublisher публикует события о новых участниках.
type EventPublisher interface {
	PublishRegistered(ctx context.Context, user models.User) error
}

// RegisterRequest — данные новой регистрации.
type RegisterRequest struct {
	Name             string      `validate:"required"`
	Username         string      `validate:"required"`
	SubscriptionType models.Tier `validate:"oneof=1 2 3"`
	Billing          models.BillingInfo
}

// RegisterResult — результат регистрации.
// TierDefaulted выставляется, если выбранный абонемент был заменён на Basic.
type RegisterResult struct {
	User          models.User
	TierDefaulted bool
}

// Service реализует операции над участниками.
type Service struct {
	users        UserRepository
	events       EventPublisher
	metrics      *metrics.Metrics
	validate     *validator.Validate
	adminPINHash string
	log          *slog.Logger
}

// New создает новый экземпляр Service. events может быть nil,
// тогда события не публикуются. adminPINHash — bcrypt‑хэш PIN администратора.
func New(users UserRepository, events EventPublisher, m *metrics.Metrics, adminPINHash string, log *slog.Logger) *Service {
	s := &Service{
		users:        users,
		events:       events,
		metrics:      m,
		validate:     validator.New(),
		adminPINHash: adminPINHash,
		log:          log,
	}
	m.SetMembers(users.Count())
	return s
}

// NormalizeTier возвращает tier без изменений, если он допустим,
// иначе TierBasic и true.
func (s *Service) NormalizeTier(tier models.Tier) (models.Tier, bool) {
	if err := s.validate.Var(tier, "oneof=1 2 3"); err != nil {
		return models.TierBasic, true
	}
	return tier, false
}

// Register сохраняет нового участника. Недопустимый абонемент заменяется на Basic,
// пустые имя или username отклоняются. Дубликаты не проверяются.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (RegisterResult, error) {
	const op = "membership.Register"
	log := s.log.With(slog.String("op", op))

	var res RegisterResult
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return RegisterResult{}, fmt.Errorf("%s: %w", op, err)
		}
		for _, fe := range verrs {
			switch fe.Field() {
			case "SubscriptionType":
				req.SubscriptionType, res.TierDefaulted = s.NormalizeTier(req.SubscriptionType)
			default:
				log.Warn("registration rejected", slog.String("field", fe.Field()), slog.String("tag", fe.Tag()))
				return RegisterResult{}, fmt.Errorf("%s: %w", op, ErrEmptyName)
			}
		}
	}
	if res.TierDefaulted {
		log.Warn("invalid subscription choice, defaulting to basic")
	}

	user := models.User{
		Name:             req.Name,
		Username:         req.Username,
		SubscriptionType: req.SubscriptionType,
		Billing:          req.Billing,
	}
	if err := s.users.Append(user); err != nil {
		log.Error("failed to save user", sl.Err(err))
		return RegisterResult{}, fmt.Errorf("%s: %w", op, err)
	}
	res.User = user

	s.metrics.ObserveRegistration(user.SubscriptionType, res.TierDefaulted)
	s.metrics.SetMembers(s.users.Count())
	log.Info("user registered", sl.User(user))

	if s.events != nil {
		if err := s.events.PublishRegistered(ctx, user); err != nil {
			log.Warn("failed to publish registration event", sl.Err(err))
		}
	}
	return res, nil
}

// Login ищет участника по точному совпадению name и username.
func (s *Service) Login(_ context.Context, name, username string) (models.User, error) {
	const op = "membership.Login"

	user, err := s.users.FindExact(name, username)
	if err != nil {
		s.metrics.ObserveLogin(false)
		s.log.Info("login failed", slog.String("op", op), slog.String("username", username))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	s.metrics.ObserveLogin(true)
	s.log.Info("login succeeded", slog.String("op", op), slog.String("username", username))
	return user, nil
}

// AdminMembers проверяет PIN и возвращает список всех участников.
func (s *Service) AdminMembers(_ context.Context, pin string) ([]models.User, error) {
	const op = "membership.AdminMembers"

	if err := secret.Compare(s.adminPINHash, pin); err != nil {
		s.metrics.ObserveAdminAccess(false)
		s.log.Warn("admin access denied", slog.String("op", op))
		if errors.Is(err, secret.ErrMismatch) {
			return nil, fmt.Errorf("%s: %w", op, ErrAuthDenied)
		}
		return nil, fmt.Errorf("%s: %w: %w", op, ErrAuthDenied, err)
	}
	s.metrics.ObserveAdminAccess(true)
	s.log.Info("admin access granted", slog.String("op", op))
	return s.users.Snapshot(), nil
}

// Count возвращает количество участников.
func (s *Service) Count() int {
	return s.users.Count()
}
