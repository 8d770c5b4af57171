package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	resp "tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type TravelPlanServiceInterface interface {
	CreateTravelPlan(ctx context.Context, ownerEmail string, req request_models.CreateTravelPlanRequest) (*resp.PlanDetail, error)
	GetTravelPlanByID(ctx context.Context, id string, viewerEmail string) (*resp.PlanDetail, error)
	ListTravelPlans(ctx context.Context, page, pageSize int) (*resp.PlanListResponse, error)
	MatchTravelPlans(ctx context.Context, q request_models.MatchTravelPlansQuery) (*resp.PlanListResponse, error)
	UpdateTravelPlan(ctx context.Context, id string, actorEmail string, patch request_models.UpdateTravelPlanRequest) (*resp.PlanDetail, error)
	DeleteTravelPlan(ctx context.Context, id string, actorEmail string) error
}

type TravelPlanService struct {
	planRepo repositories.TravelPlanRepository
	userRepo repositories.UserRepository
}

func NewTravelPlanService(
	planRepo repositories.TravelPlanRepository,
	userRepo repositories.UserRepository,
) TravelPlanServiceInterface {
	return &TravelPlanService{planRepo: planRepo, userRepo: userRepo}
}

func (s *TravelPlanService) CreateTravelPlan(ctx context.Context, ownerEmail string, req request_models.CreateTravelPlanRequest) (*resp.PlanDetail, error) {
	owner, err := s.userRepo.FindActiveByEmail(ctx, ownerEmail)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if owner == nil {
		return nil, utils.ErrUserNotFound
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if !start.Before(end) {
		return nil, utils.ErrInvalidDateRange
	}

	visibility := true
	if req.Visibility != nil {
		visibility = *req.Visibility
	}

	plan := &db_models.TravelPlan{
		UserID:      owner.ID,
		Title:       req.Title,
		Destination: req.Destination,
		Country:     req.Country,
		Description: req.Description,
		TravelType:  req.TravelType,
		StartDate:   start.Unix(),
		EndDate:     end.Unix(),
		BudgetMinor: req.BudgetMinor,
		Visibility:  visibility,
		Photos:      req.Photos,
	}
	if err := s.planRepo.Insert(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}

	plan.User = *owner
	detail := planDetail(plan, ownerEmail)
	return &detail, nil
}

func (s *TravelPlanService) GetTravelPlanByID(ctx context.Context, id string, viewerEmail string) (*resp.PlanDetail, error) {
	planID, err := uuid.Parse(id)
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

	detail := planDetail(plan, viewerEmail)
	return &detail, nil
}

func (s *TravelPlanService) ListTravelPlans(ctx context.Context, page, pageSize int) (*resp.PlanListResponse, error) {
	page, pageSize, err := normalizePaging(page, pageSize)
	if err != nil {
		return nil, err
	}

	plans, total, err := s.planRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return planList(plans, total, page, pageSize), nil
}

func (s *TravelPlanService) MatchTravelPlans(ctx context.Context, q request_models.MatchTravelPlansQuery) (*resp.PlanListResponse, error) {
	page, pageSize, err := normalizePaging(q.Page, q.PageSize)
	if err != nil {
		return nil, err
	}
	q.Page, q.PageSize = page, pageSize

	plans, total, err := s.planRepo.Match(ctx, q)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return planList(plans, total, page, pageSize), nil
}

// UpdateTravelPlan patches allow-listed fields only; the owner or an
// admin-role actor may mutate the plan.
func (s *TravelPlanService) UpdateTravelPlan(ctx context.Context, id string, actorEmail string, patch request_models.UpdateTravelPlanRequest) (*resp.PlanDetail, error) {
	planID, err := uuid.Parse(id)
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

	if _, err := s.authorizePlanMutation(ctx, plan, actorEmail); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Destination != nil {
		updates["destination"] = *patch.Destination
	}
	if patch.Country != nil {
		updates["country"] = *patch.Country
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.TravelType != nil {
		updates["travel_type"] = *patch.TravelType
	}
	if patch.BudgetMinor != nil {
		updates["budget_minor"] = *patch.BudgetMinor
	}
	if patch.Visibility != nil {
		updates["visibility"] = *patch.Visibility
	}

	start, end := plan.StartDate, plan.EndDate
	if patch.StartDate != nil {
		t, err := utils.ParseDate(*patch.StartDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		start = t.Unix()
		updates["start_date"] = start
	}
	if patch.EndDate != nil {
		t, err := utils.ParseDate(*patch.EndDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		end = t.Unix()
		updates["end_date"] = end
	}
	if start >= end {
		return nil, utils.ErrInvalidDateRange
	}

	if len(patch.AddPhotos) > 0 || len(patch.DeletePhotos) > 0 {
		updates["photos"] = patchPhotos(plan.Photos, patch.AddPhotos, patch.DeletePhotos)
	}

	if err := s.planRepo.UpdateFields(ctx, planID, updates); err != nil {
		return nil, utils.ErrDatabaseError
	}

	updated, err := s.planRepo.FindByID(ctx, planID)
	if err != nil || updated == nil {
		return nil, utils.ErrDatabaseError
	}
	detail := planDetail(updated, actorEmail)
	return &detail, nil
}

func (s *TravelPlanService) DeleteTravelPlan(ctx context.Context, id string, actorEmail string) error {
	planID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrInvalidInput
	}

	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil {
		return utils.ErrPlanNotFound
	}

	if _, err := s.authorizePlanMutation(ctx, plan, actorEmail); err != nil {
		return err
	}

	if err := s.planRepo.Delete(ctx, planID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TravelPlanService) authorizePlanMutation(ctx context.Context, plan *db_models.TravelPlan, actorEmail string) (*db_models.User, error) {
	actor, err := s.userRepo.FindActiveByEmail(ctx, actorEmail)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if actor == nil {
		return nil, utils.ErrUserNotFound
	}
	if plan.UserID != actor.ID &&
		actor.Role != db_models.RoleAdmin &&
		actor.Role != db_models.RoleSuperAdmin {
		return nil, utils.ErrNotPlanOwner
	}
	return actor, nil
}

func normalizePaging(page, pageSize int) (int, int, error) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = 20
	}
	if page < 1 {
		return 0, 0, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return 0, 0, utils.ErrInvalidPageSize
	}
	return page, pageSize, nil
}

func patchPhotos(current pq.StringArray, add, remove []string) pq.StringArray {
	removed := make(map[string]bool, len(remove))
	for _, p := range remove {
		removed[p] = true
	}

	out := make(pq.StringArray, 0, len(current)+len(add))
	for _, p := range current {
		if !removed[p] {
			out = append(out, p)
		}
	}
	return append(out, add...)
}

func planDetail(p *db_models.TravelPlan, viewerEmail string) resp.PlanDetail {
	reviews := make([]resp.ReviewItem, 0, len(p.Reviews))
	for i := range p.Reviews {
		r := &p.Reviews[i]
		isOwn := viewerEmail != "" && r.User.Email == viewerEmail
		reviews = append(reviews, reviewItem(r, &r.User, isOwn))
	}

	return resp.PlanDetail{
		PlanSummary: toPlanSummary(p),
		Description: p.Description,
		TravelType:  p.TravelType,
		BudgetMinor: p.BudgetMinor,
		Visibility:  p.Visibility,
		Photos:      p.Photos,
		Owner:       toPublicProfile(&p.User),
		Reviews:     reviews,
		Requests:    toJoinRequestRefs(p.JoinRequests),
		CreatedAt:   utils.FromUnixSeconds(p.CreatedAt),
	}
}

func planList(plans []db_models.TravelPlan, total int64, page, pageSize int) *resp.PlanListResponse {
	out := &resp.PlanListResponse{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Plans:    make([]resp.PlanDetail, 0, len(plans)),
	}
	for i := range plans {
		out.Plans = append(out.Plans, planDetail(&plans[i], ""))
	}
	return out
}
