package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
)

type TravelPlanRepository interface {
	Insert(ctx context.Context, plan *db_models.TravelPlan) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.TravelPlan, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.TravelPlan, int64, error)
	Match(ctx context.Context, q request_models.MatchTravelPlansQuery) ([]db_models.TravelPlan, int64, error)
	UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type travelPlanRepository struct {
	db *gorm.DB
}

func NewTravelPlanRepository(db *gorm.DB) TravelPlanRepository {
	return &travelPlanRepository{db: db}
}

func (r *travelPlanRepository) Insert(ctx context.Context, plan *db_models.TravelPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *travelPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.TravelPlan, error) {
	var plan db_models.TravelPlan
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Reviews").
		Preload("Reviews.User").
		Preload("JoinRequests").
		First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *travelPlanRepository) List(ctx context.Context, page, pageSize int) ([]db_models.TravelPlan, int64, error) {
	var plans []db_models.TravelPlan
	var total int64

	if err := r.db.WithContext(ctx).Model(&db_models.TravelPlan{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Reviews").
		Preload("Reviews.User").
		Preload("JoinRequests").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, total, err
}

func (r *travelPlanRepository) Match(ctx context.Context, q request_models.MatchTravelPlansQuery) ([]db_models.TravelPlan, int64, error) {
	tx := r.db.WithContext(ctx).Model(&db_models.TravelPlan{})

	if q.Destination != "" {
		tx = tx.Where("destination = ?", q.Destination)
	}
	if q.Country != "" {
		tx = tx.Where("country = ?", q.Country)
	}
	if q.TravelType != "" {
		tx = tx.Where("travel_type = ?", q.TravelType)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("title ILIKE ? OR destination ILIKE ? OR country ILIKE ? OR description ILIKE ?",
			pattern, pattern, pattern, pattern)
	}
	if len(q.Interests) > 0 {
		tx = tx.Where("user_id IN (?)",
			r.db.Model(&db_models.User{}).
				Select("id").
				Where("interests && ?", pq.StringArray(q.Interests)))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var plans []db_models.TravelPlan
	err := tx.
		Preload("User").
		Preload("Reviews").
		Preload("Reviews.User").
		Preload("JoinRequests").
		Limit(q.PageSize).
		Offset((q.Page - 1) * q.PageSize).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, total, err
}

func (r *travelPlanRepository) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&db_models.TravelPlan{}).
		Where("id = ?", id).
		Updates(updates).Error
}


func (r *travelPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.TravelPlan{}, "id = ?", id).Error
}
