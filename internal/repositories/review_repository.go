package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
)

type ReviewRepository interface {
	Insert(ctx context.Context, review *db_models.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Review, error)
	FindByUserAndPlan(ctx context.Context, userID, planID uuid.UUID) (*db_models.Review, error)
	ListByPlan(ctx context.Context, planID uuid.UUID) ([]db_models.Review, error)
	// UpdateOwned patches the review only when authorID matches the stored
	// author; it reports false otherwise.
	UpdateOwned(ctx context.Context, id, authorID uuid.UUID, updates map[string]interface{}) (bool, error)
	DeleteOwned(ctx context.Context, id, authorID uuid.UUID) (bool, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Insert(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByUserAndPlan(ctx context.Context, userID, planID uuid.UUID) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND travel_plan_id = ?", userID, planID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListByPlan(ctx context.Context, planID uuid.UUID) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("travel_plan_id = ?", planID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) UpdateOwned(ctx context.Context, id, authorID uuid.UUID, updates map[string]interface{}) (bool, error) {
	if len(updates) == 0 {
		return true, nil
	}
	res := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Where("id = ? AND user_id = ?", id, authorID).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *reviewRepository) DeleteOwned(ctx context.Context, id, authorID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Delete(&db_models.Review{}, "id = ? AND user_id = ?", id, authorID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
