package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "tripmate/internal/models/db_models"
)

// StatisticsRepository backs the admin-facing application snapshot.
type StatisticsRepository interface {
	CountActiveUsers(ctx context.Context) (int64, error)
	CountTravelPlans(ctx context.Context) (int64, error)
	CountAcceptedJoinRequests(ctx context.Context) (int64, error)
	CountDistinctCountries(ctx context.Context) (int64, error)
	SampleProfileImages(ctx context.Context, limit int) ([]string, error)
}

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

func (r *statisticsRepository) CountActiveUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.User{}).
		Where("status = ?", dbm.UserStatusActive).
		Count(&n).Error
	return n, err
}

func (r *statisticsRepository) CountTravelPlans(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.TravelPlan{}).Count(&n).Error
	return n, err
}

func (r *statisticsRepository) CountAcceptedJoinRequests(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.TripJoinRequest{}).
		Where("status = ?", dbm.JoinRequestAccepted).
		Count(&n).Error
	return n, err
}

func (r *statisticsRepository) CountDistinctCountries(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.TravelPlan{}).
		Distinct("country").
		Count(&n).Error
	return n, err
}

func (r *statisticsRepository) SampleProfileImages(ctx context.Context, limit int) ([]string, error) {
	var images []string
	err := r.db.WithContext(ctx).
		Model(&dbm.User{}).
		Where("status = ? AND profile_image IS NOT NULL", dbm.UserStatusActive).
		Order("created_at DESC").
		Limit(limit).
		Pluck("profile_image", &images).Error
	return images, err
}
