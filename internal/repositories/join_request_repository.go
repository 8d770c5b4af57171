package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
)

type JoinRequestRepository interface {
	Insert(ctx context.Context, req *db_models.TripJoinRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.TripJoinRequest, error)
	FindByUserAndPlan(ctx context.Context, userID, planID uuid.UUID) (*db_models.TripJoinRequest, error)
	// TransitionFromPending flips a PENDING request to the given terminal
	// status; it reports false when the request was already resolved (or
	// resolved concurrently by a racing call).
	TransitionFromPending(ctx context.Context, id uuid.UUID, status db_models.JoinRequestStatus) (bool, error)
	ListForPlanOwner(ctx context.Context, ownerID uuid.UUID, status db_models.JoinRequestStatus) ([]db_models.TripJoinRequest, error)
}

type joinRequestRepository struct {
	db *gorm.DB
}

func NewJoinRequestRepository(db *gorm.DB) JoinRequestRepository {
	return &joinRequestRepository{db: db}
}

func (r *joinRequestRepository) Insert(ctx context.Context, req *db_models.TripJoinRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *joinRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.TripJoinRequest, error) {
	var req db_models.TripJoinRequest
	err := r.db.WithContext(ctx).
		Preload("TravelPlan").
		First(&req, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *joinRequestRepository) FindByUserAndPlan(ctx context.Context, userID, planID uuid.UUID) (*db_models.TripJoinRequest, error) {
	var req db_models.TripJoinRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND travel_plan_id = ?", userID, planID).
		First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *joinRequestRepository) TransitionFromPending(ctx context.Context, id uuid.UUID, status db_models.JoinRequestStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.TripJoinRequest{}).
		Where("id = ? AND status = ?", id, db_models.JoinRequestPending).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *joinRequestRepository) ListForPlanOwner(ctx context.Context, ownerID uuid.UUID, status db_models.JoinRequestStatus) ([]db_models.TripJoinRequest, error) {
	var reqs []db_models.TripJoinRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("TravelPlan").
		Where("status = ?", status).
		Where("travel_plan_id IN (?)",
			r.db.Model(&db_models.TravelPlan{}).
				Select("id").
				Where("user_id = ?", ownerID)).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}
