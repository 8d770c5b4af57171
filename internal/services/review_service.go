package services

import (
	"context"

	"github.com/google/uuid"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	resp "tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type ReviewServiceInterface interface {
	CreateReview(ctx context.Context, travelPlanID string, userEmail string, req request_models.CreateReviewRequest) (*resp.ReviewItem, error)
	UpdateReview(ctx context.Context, reviewID string, userEmail string, patch request_models.UpdateReviewRequest) error
	DeleteReview(ctx context.Context, reviewID string, userEmail string) error
	GetReviewsByPlan(ctx context.Context, travelPlanID string, viewerEmail string) (*resp.PlanReviewsResponse, error)
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	planRepo   repositories.TravelPlanRepository
	userRepo   repositories.UserRepository
	now        func() int64
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	planRepo repositories.TravelPlanRepository,
	userRepo repositories.UserRepository,
) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo: reviewRepo,
		planRepo:   planRepo,
		userRepo:   userRepo,
		now:        utils.NowUnixSeconds,
	}
}

func (s *ReviewService) CreateReview(ctx context.Context, travelPlanID string, userEmail string, req request_models.CreateReviewRequest) (*resp.ReviewItem, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, utils.ErrInvalidRating
	}

	planID, err := uuid.Parse(travelPlanID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	// Reviews open only once the trip's end date is strictly in the past.
	if plan.EndDate >= s.now() {
		return nil, utils.ErrTripNotCompleted
	}

	user, err := s.userRepo.FindActiveByEmail(ctx, userEmail)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	existing, err := s.reviewRepo.FindByUserAndPlan(ctx, user.ID, plan.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrDuplicateReview
	}

	review := &db_models.Review{
		UserID:       user.ID,
		TravelPlanID: plan.ID,
		Rating:       req.Rating,
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := s.reviewRepo.Insert(ctx, review); err != nil {
		return nil, utils.ErrDatabaseError
	}

	item := reviewItem(review, user, true)
	return &item, nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, reviewID string, userEmail string, patch request_models.UpdateReviewRequest) error {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return utils.ErrInvalidInput
	}
	if patch.Rating != nil && (*patch.Rating < 1 || *patch.Rating > 5) {
		return utils.ErrInvalidRating
	}

	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if review == nil {
		return utils.ErrReviewNotFound
	}

	user, err := s.userRepo.FindActiveByEmail(ctx, userEmail)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	updates := map[string]interface{}{}
	if patch.Rating != nil {
		updates["rating"] = *patch.Rating
	}
	if patch.Comment != nil {
		updates["comment"] = *patch.Comment
	}

	// The author guard lives in the WHERE clause, so a racing delete or
	// a non-author caller both surface as zero rows.
	updated, err := s.reviewRepo.UpdateOwned(ctx, id, user.ID, updates)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !updated {
		return utils.ErrNotReviewAuthor
	}
	return nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, reviewID string, userEmail string) error {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if review == nil {
		return utils.ErrReviewNotFound
	}

	user, err := s.userRepo.FindActiveByEmail(ctx, userEmail)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	deleted, err := s.reviewRepo.DeleteOwned(ctx, id, user.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrNotReviewAuthor
	}
	return nil
}

func (s *ReviewService) GetReviewsByPlan(ctx context.Context, travelPlanID string, viewerEmail string) (*resp.PlanReviewsResponse, error) {
	planID, err := uuid.Parse(travelPlanID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	reviews, err := s.reviewRepo.ListByPlan(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := &resp.PlanReviewsResponse{
		Reviews: make([]resp.ReviewItem, 0, len(reviews)),
	}

	var sum int
	for i := range reviews {
		r := &reviews[i]
		isOwn := viewerEmail != "" && r.User.Email == viewerEmail
		out.Reviews = append(out.Reviews, reviewItem(r, &r.User, isOwn))
		sum += r.Rating
	}

	if len(reviews) > 0 {
		avg := float64(sum) / float64(len(reviews))
		out.AverageRating = &avg
	}
	return out, nil
}

func reviewItem(r *db_models.Review, author *db_models.User, isOwn bool) resp.ReviewItem {
	return resp.ReviewItem{
		ID:        r.ID.String(),
		Rating:    r.Rating,
		Comment:   r.Comment,
		Author:    toPublicProfile(author),
		IsOwn:     isOwn,
		CreatedAt: utils.FromUnixSeconds(r.CreatedAt),
	}
}
