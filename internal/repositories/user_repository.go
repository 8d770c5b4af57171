package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindActiveByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.UserStatus) error
	HardDelete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindActiveByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).
		Where("email = ? AND status = ?", email, db_models.UserStatusActive).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile writes only the columns the service allow-listed.
func (r *userRepository) UpdateProfile(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *userRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.UserStatus) error {
	res := r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HardDelete removes the user and everything they own in one transaction.
// Requests and reviews left on their plans by other users go too, since
// the plans they point at disappear.
func (r *userRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var planIDs []uuid.UUID
		if err := tx.Model(&db_models.TravelPlan{}).
			Where("user_id = ?", id).
			Pluck("id", &planIDs).Error; err != nil {
			return err
		}
		if len(planIDs) > 0 {
			if err := tx.Delete(&db_models.TripJoinRequest{}, "travel_plan_id IN ?", planIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&db_models.Review{}, "travel_plan_id IN ?", planIDs).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&db_models.TripJoinRequest{}, "user_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&db_models.Review{}, "user_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&db_models.Payment{}, "user_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&db_models.TravelPlan{}, "user_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&db_models.User{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
