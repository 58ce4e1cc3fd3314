package user

import (
	"context"

	"github.com/rs/zerolog"
)

// Repository defines persistence operations needed by the service.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (int64, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}

// Service exposes user profile operations. It is a direct pass-through
// to the repository; no business rules apply.
type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With().Str("component", "user-service").Logger(),
	}
}

// Create inserts a user row and returns the generated id.
func (s *Service) Create(ctx context.Context, params CreateParams) (int64, error) {
	return s.repo.Create(ctx, params)
}

// GetByID looks a user up by primary key.
func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}
