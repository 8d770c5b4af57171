package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tripmate/internal/models/db_models"
)

// DashboardRepository serves the per-user dashboard snapshot. Counts
// are scoped to one user; nothing here mutates state.
type DashboardRepository interface {
	CountPlansByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	CountReviewsByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	CountPaymentsByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	ListUpcomingPlans(ctx context.Context, userID uuid.UUID, nowUnix int64) ([]dbm.TravelPlan, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountPlansByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.TravelPlan{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountReviewsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Review{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountPaymentsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Payment{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) ListUpcomingPlans(ctx context.Context, userID uuid.UUID, nowUnix int64) ([]dbm.TravelPlan, error) {
	var plans []dbm.TravelPlan
	err := r.db.WithContext(ctx).
		Preload("JoinRequests").
		Where("user_id = ? AND start_date >= ?", userID, nowUnix).
		Order("start_date ASC").
		Find(&plans).Error
	return plans, err
}
