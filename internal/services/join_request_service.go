package services

import (
	"context"

	"github.com/google/uuid"

	"tripmate/internal/models/db_models"
	resp "tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type JoinRequestServiceInterface interface {
	SendJoinRequest(ctx context.Context, requesterEmail string, travelPlanID string) (*resp.JoinRequestDetail, error)
	UpdateJoinRequestStatus(ctx context.Context, requestID string, actorEmail string, newStatus string) (*resp.JoinRequestDetail, error)
}

type JoinRequestService struct {
	joinRequestRepo repositories.JoinRequestRepository
	planRepo        repositories.TravelPlanRepository
	userRepo        repositories.UserRepository
}

func NewJoinRequestService(
	joinRequestRepo repositories.JoinRequestRepository,
	planRepo repositories.TravelPlanRepository,
	userRepo repositories.UserRepository,
) JoinRequestServiceInterface {
	return &JoinRequestService{
		joinRequestRepo: joinRequestRepo,
		planRepo:        planRepo,
		userRepo:        userRepo,
	}
}

func (s *JoinRequestService) SendJoinRequest(ctx context.Context, requesterEmail string, travelPlanID string) (*resp.JoinRequestDetail, error) {
	planID, err := uuid.Parse(travelPlanID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	requester, err := s.userRepo.FindActiveByEmail(ctx, requesterEmail)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if requester == nil {
		return nil, utils.ErrUserNotFound
	}

	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	if plan.UserID == requester.ID {
		return nil, utils.ErrOwnPlanJoinRequest
	}

	// One request per (user, plan) pair, in any status.
	existing, err := s.joinRequestRepo.FindByUserAndPlan(ctx, requester.ID, plan.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrDuplicateJoinRequest
	}

	request := &db_models.TripJoinRequest{
		UserID:       requester.ID,
		TravelPlanID: plan.ID,
		Status:       db_models.JoinRequestPending,
	}
	if err := s.joinRequestRepo.Insert(ctx, request); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return joinRequestDetail(request, requester, plan), nil
}

// UpdateJoinRequestStatus moves a PENDING request to ACCEPTED or
// REJECTED. Only the plan owner may decide, and a request that already
// reached a terminal state stays there; the conditional update in the
// store keeps two racing decisions from both winning.
func (s *JoinRequestService) UpdateJoinRequestStatus(ctx context.Context, requestID string, actorEmail string, newStatus string) (*resp.JoinRequestDetail, error) {
	id, err := uuid.Parse(requestID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	status := db_models.JoinRequestStatus(newStatus)
	if status != db_models.JoinRequestAccepted && status != db_models.JoinRequestRejected {
		return nil, utils.ErrInvalidInput
	}

	request, err := s.joinRequestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if request == nil {
		return nil, utils.ErrJoinRequestNotFound
	}

	actor, err := s.userRepo.FindActiveByEmail(ctx, actorEmail)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if actor == nil {
		return nil, utils.ErrUserNotFound
	}
	if request.TravelPlan.UserID != actor.ID {
		return nil, utils.ErrNotPlanOwner
	}

	transitioned, err := s.joinRequestRepo.TransitionFromPending(ctx, id, status)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !transitioned {
		return nil, utils.ErrRequestAlreadyResolved
	}

	request.Status = status

	requester, err := s.userRepo.FindByID(ctx, request.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return joinRequestDetail(request, requester, &request.TravelPlan), nil
}

func joinRequestDetail(req *db_models.TripJoinRequest, requester *db_models.User, plan *db_models.TravelPlan) *resp.JoinRequestDetail {
	return &resp.JoinRequestDetail{
		ID:        req.ID.String(),
		Status:    string(req.Status),
		Requester: toPublicProfile(requester),
		Plan:      toPlanSummary(plan),
		CreatedAt: utils.FromUnixSeconds(req.CreatedAt),
	}
}
