package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "reel-server/reel-api/internal/domain/user"
	"reel-server/reel-api/internal/infrastructure/database/entities"
	"reel-server/reel-api/internal/utils/platformerrors"
)

// Repository handles user row persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, params domain.CreateParams) (int64, error) {
	entity := entities.User{
		Name:    params.Name,
		Email:   params.Email,
		Country: params.Country,
	}
	err := r.db.WithContext(ctx).Create(&entity).Error
	if err != nil {
		return 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create user",
			err,
			"d4f1b3a8-2e6c-4b5a-9d8e-7f0a1b2c3d4e",
		)
	}
	return entity.ID, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var entity entities.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"user not found",
				err,
				"a1b2c3d4-5e6f-4a7b-8c9d-0e1f2a3b4c5d",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to get user by id",
			err,
			"b2c3d4e5-6f7a-4b8c-9d0e-1f2a3b4c5d6e",
		)
	}
	user := mapEntity(entity)
	return &user, nil
}

func mapEntity(entity entities.User) domain.User {
	return domain.User{
		ID:      entity.ID,
		Name:    entity.Name,
		Email:   entity.Email,
		Country: entity.Country,
	}
}
