package services

import (
	"context"

	"tripmate/internal/models/db_models"
	resp "tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type DashboardServiceInterface interface {
	GetDashboardStats(ctx context.Context, userEmail string) (*resp.DashboardStats, error)
}

type DashboardService struct {
	dashboardRepo   repositories.DashboardRepository
	joinRequestRepo repositories.JoinRequestRepository
	userRepo        repositories.UserRepository
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepository,
	joinRequestRepo repositories.JoinRequestRepository,
	userRepo repositories.UserRepository,
) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepo:   dashboardRepo,
		joinRequestRepo: joinRequestRepo,
		userRepo:        userRepo,
	}
}

// GetDashboardStats recomputes the full snapshot from the store on
// every call; nothing is cached and nothing is written.
func (s *DashboardService) GetDashboardStats(ctx context.Context, userEmail string) (*resp.DashboardStats, error) {
	user, err := s.userRepo.FindActiveByEmail(ctx, userEmail)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	totalPlans, err := s.dashboardRepo.CountPlansByUser(ctx, user.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	totalReviews, err := s.dashboardRepo.CountReviewsByUser(ctx, user.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	totalPayments, err := s.dashboardRepo.CountPaymentsByUser(ctx, user.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	pending, err := s.joinRequestRepo.ListForPlanOwner(ctx, user.ID, db_models.JoinRequestPending)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	accepted, err := s.joinRequestRepo.ListForPlanOwner(ctx, user.ID, db_models.JoinRequestAccepted)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	upcoming, err := s.dashboardRepo.ListUpcomingPlans(ctx, user.ID, utils.NowUnixSeconds())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	stats := &resp.DashboardStats{
		TotalTravelPlans:     totalPlans,
		TotalReviews:         totalReviews,
		TotalPayments:        totalPayments,
		IncomingJoinRequests: enrichJoinRequests(pending),
		AcceptedMatches:      enrichJoinRequests(accepted),
		UpcomingTrips:        make([]resp.UpcomingTrip, 0, len(upcoming)),
	}

	for i := range upcoming {
		plan := &upcoming[i]
		stats.UpcomingTrips = append(stats.UpcomingTrips, resp.UpcomingTrip{
			PlanSummary:  toPlanSummary(plan),
			JoinRequests: toJoinRequestRefs(plan.JoinRequests),
		})
	}

	return stats, nil
}

func enrichJoinRequests(reqs []db_models.TripJoinRequest) []resp.JoinRequestDetail {
	out := make([]resp.JoinRequestDetail, 0, len(reqs))
	for i := range reqs {
		r := &reqs[i]
		out = append(out, *joinRequestDetail(r, &r.User, &r.TravelPlan))
	}
	return out
}
