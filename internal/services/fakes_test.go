package services

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
)

var errNotFound = gorm.ErrRecordNotFound

// In-memory repository stand-ins. They mirror the conditional-update
// semantics of the real store (author guards, PENDING-only
// transitions) so the services are exercised against the same rules.

type fakeUserRepo struct {
	users map[uuid.UUID]*db_models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*db_models.User{}}
}

func (f *fakeUserRepo) add(u *db_models.User) *db_models.User {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Status == "" {
		u.Status = db_models.UserStatusActive
	}
	if u.Role == "" {
		u.Role = db_models.RoleUser
	}
	f.users[u.ID] = u
	return u
}

func (f *fakeUserRepo) Insert(_ context.Context, user *db_models.User) error {
	f.add(user)
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindActiveByEmail(_ context.Context, email string) (*db_models.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.Status == db_models.UserStatusActive {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) HardDelete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.users[id]; !ok {
		return errNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id uuid.UUID, updates map[string]interface{}) error {
	u, ok := f.users[id]
	if !ok {
		return nil
	}
	for k, v := range updates {
		switch k {
		case "name":
			u.Name = v.(string)
		case "bio":
			u.Bio = v.(string)
		case "country":
			u.Country = v.(string)
		case "city":
			u.City = v.(string)
		case "interests":
			u.Interests = v.(pq.StringArray)
		case "visited_countries":
			u.VisitedCountries = v.(pq.StringArray)
		case "profile_image":
			img := v.(string)
			u.ProfileImage = &img
		}
	}
	return nil
}

func (f *fakeUserRepo) UpdateStatus(_ context.Context, id uuid.UUID, status db_models.UserStatus) error {
	u, ok := f.users[id]
	if !ok {
		return errNotFound
	}
	u.Status = status
	return nil
}

type fakePlanRepo struct {
	plans map[uuid.UUID]*db_models.TravelPlan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[uuid.UUID]*db_models.TravelPlan{}}
}

func (f *fakePlanRepo) add(p *db_models.TravelPlan) *db_models.TravelPlan {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.plans[p.ID] = p
	return p
}

func (f *fakePlanRepo) Insert(_ context.Context, plan *db_models.TravelPlan) error {
	f.add(plan)
	return nil
}

func (f *fakePlanRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.TravelPlan, error) {
	return f.plans[id], nil
}

func (f *fakePlanRepo) List(_ context.Context, page, pageSize int) ([]db_models.TravelPlan, int64, error) {
	all := f.sorted()
	start := (page - 1) * pageSize
	if start >= len(all) {
		return nil, int64(len(all)), nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

func (f *fakePlanRepo) Match(_ context.Context, q request_models.MatchTravelPlansQuery) ([]db_models.TravelPlan, int64, error) {
	var out []db_models.TravelPlan
	for _, p := range f.sorted() {
		if q.Country != "" && p.Country != q.Country {
			continue
		}
		if q.Destination != "" && p.Destination != q.Destination {
			continue
		}
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (f *fakePlanRepo) UpdateFields(_ context.Context, id uuid.UUID, updates map[string]interface{}) error {
	p, ok := f.plans[id]
	if !ok {
		return nil
	}
	for k, v := range updates {
		switch k {
		case "title":
			p.Title = v.(string)
		case "destination":
			p.Destination = v.(string)
		case "country":
			p.Country = v.(string)
		case "description":
			p.Description = v.(string)
		case "travel_type":
			p.TravelType = v.(string)
		case "budget_minor":
			p.BudgetMinor = v.(int64)
		case "visibility":
			p.Visibility = v.(bool)
		case "start_date":
			p.StartDate = v.(int64)
		case "end_date":
			p.EndDate = v.(int64)
		case "photos":
			p.Photos = v.(pq.StringArray)
		}
	}
	return nil
}


func (f *fakePlanRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.plans, id)
	return nil
}

func (f *fakePlanRepo) sorted() []db_models.TravelPlan {
	out := make([]db_models.TravelPlan, 0, len(f.plans))
	for _, p := range f.plans {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out
}

type fakeJoinRequestRepo struct {
	requests map[uuid.UUID]*db_models.TripJoinRequest
	plans    *fakePlanRepo
	users    *fakeUserRepo
}

func newFakeJoinRequestRepo(plans *fakePlanRepo, users *fakeUserRepo) *fakeJoinRequestRepo {
	return &fakeJoinRequestRepo{
		requests: map[uuid.UUID]*db_models.TripJoinRequest{},
		plans:    plans,
		users:    users,
	}
}

func (f *fakeJoinRequestRepo) Insert(_ context.Context, req *db_models.TripJoinRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	f.requests[req.ID] = req
	return nil
}

func (f *fakeJoinRequestRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.TripJoinRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, nil
	}
	if plan, ok := f.plans.plans[req.TravelPlanID]; ok {
		req.TravelPlan = *plan
	}
	return req, nil
}

func (f *fakeJoinRequestRepo) FindByUserAndPlan(_ context.Context, userID, planID uuid.UUID) (*db_models.TripJoinRequest, error) {
	for _, r := range f.requests {
		if r.UserID == userID && r.TravelPlanID == planID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeJoinRequestRepo) TransitionFromPending(_ context.Context, id uuid.UUID, status db_models.JoinRequestStatus) (bool, error) {
	req, ok := f.requests[id]
	if !ok || req.Status != db_models.JoinRequestPending {
		return false, nil
	}
	req.Status = status
	return true, nil
}

func (f *fakeJoinRequestRepo) ListForPlanOwner(_ context.Context, ownerID uuid.UUID, status db_models.JoinRequestStatus) ([]db_models.TripJoinRequest, error) {
	var out []db_models.TripJoinRequest
	for _, r := range f.requests {
		plan, ok := f.plans.plans[r.TravelPlanID]
		if !ok || plan.UserID != ownerID || r.Status != status {
			continue
		}
		cp := *r
		cp.TravelPlan = *plan
		if u, ok := f.users.users[r.UserID]; ok {
			cp.User = *u
		}
		out = append(out, cp)
	}
	return out, nil
}

type fakeReviewRepo struct {
	reviews map[uuid.UUID]*db_models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[uuid.UUID]*db_models.Review{}}
}

func (f *fakeReviewRepo) Insert(_ context.Context, review *db_models.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Review, error) {
	return f.reviews[id], nil
}

func (f *fakeReviewRepo) FindByUserAndPlan(_ context.Context, userID, planID uuid.UUID) (*db_models.Review, error) {
	for _, r := range f.reviews {
		if r.UserID == userID && r.TravelPlanID == planID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) ListByPlan(_ context.Context, planID uuid.UUID) ([]db_models.Review, error) {
	var out []db_models.Review
	for _, r := range f.reviews {
		if r.TravelPlanID == planID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (f *fakeReviewRepo) UpdateOwned(_ context.Context, id, authorID uuid.UUID, updates map[string]interface{}) (bool, error) {
	r, ok := f.reviews[id]
	if !ok || r.UserID != authorID {
		return false, nil
	}
	if v, ok := updates["rating"]; ok {
		r.Rating = v.(int)
	}
	if v, ok := updates["comment"]; ok {
		r.Comment = v.(string)
	}
	return true, nil
}

func (f *fakeReviewRepo) DeleteOwned(_ context.Context, id, authorID uuid.UUID) (bool, error) {
	r, ok := f.reviews[id]
	if !ok || r.UserID != authorID {
		return false, nil
	}
	delete(f.reviews, id)
	return true, nil
}

type fakeDashboardRepo struct {
	plans    *fakePlanRepo
	reviews  *fakeReviewRepo
	payments *fakePaymentRepo
}

func (f *fakeDashboardRepo) CountPlansByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range f.plans.plans {
		if p.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeDashboardRepo) CountReviewsByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, r := range f.reviews.reviews {
		if r.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeDashboardRepo) CountPaymentsByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range f.payments.payments {
		if p.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeDashboardRepo) ListUpcomingPlans(_ context.Context, userID uuid.UUID, nowUnix int64) ([]db_models.TravelPlan, error) {
	var out []db_models.TravelPlan
	for _, p := range f.plans.plans {
		if p.UserID == userID && p.StartDate >= nowUnix {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate < out[j].StartDate })
	return out, nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*db_models.Payment
	users    *fakeUserRepo
}

func newFakePaymentRepo(users *fakeUserRepo) *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[uuid.UUID]*db_models.Payment{}, users: users}
}

func (f *fakePaymentRepo) add(p *db_models.Payment) *db_models.Payment {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = db_models.PaymentStatusPending
	}
	f.payments[p.ID] = p
	return p
}

func (f *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Payment, error) {
	return f.payments[id], nil
}

func (f *fakePaymentRepo) FindByGatewayEventID(_ context.Context, eventID string) (*db_models.Payment, error) {
	for _, p := range f.payments {
		if p.GatewayEventID != nil && *p.GatewayEventID == eventID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) MarkSucceeded(_ context.Context, paymentID, userID uuid.UUID, eventID string, payload datatypes.JSON, markVerified bool) error {
	p, ok := f.payments[paymentID]
	if !ok {
		return errNotFound
	}
	p.Status = db_models.PaymentStatusSuccess
	p.GatewayEventID = &eventID
	p.GatewayData = payload
	if markVerified {
		if u, ok := f.users.users[userID]; ok {
			u.IsVerified = true
		}
	}
	return nil
}

type fakeAdminRepo struct {
	admins map[uuid.UUID]*db_models.Admin
	users  *fakeUserRepo
}

func newFakeAdminRepo(users *fakeUserRepo) *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[uuid.UUID]*db_models.Admin{}, users: users}
}

func (f *fakeAdminRepo) CreateWithUser(_ context.Context, user *db_models.User, admin *db_models.Admin) error {
	f.users.add(user)
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	f.admins[admin.ID] = admin
	return nil
}

func (f *fakeAdminRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Admin, error) {
	a, ok := f.admins[id]
	if !ok || a.IsDeleted {
		return nil, nil
	}
	return a, nil
}

func (f *fakeAdminRepo) List(_ context.Context, page, pageSize int) ([]db_models.Admin, int64, error) {
	var all []db_models.Admin
	for _, a := range f.admins {
		if !a.IsDeleted {
			all = append(all, *a)
		}
	}
	return all, int64(len(all)), nil
}

func (f *fakeAdminRepo) UpdateFields(_ context.Context, id uuid.UUID, updates map[string]interface{}) error {
	a, ok := f.admins[id]
	if !ok || a.IsDeleted {
		return errNotFound
	}
	if v, ok := updates["name"]; ok {
		a.Name = v.(string)
	}
	if v, ok := updates["contact_number"]; ok {
		a.ContactNumber = v.(string)
	}
	if v, ok := updates["profile_photo"]; ok {
		photo := v.(string)
		a.ProfilePhoto = &photo
	}
	return nil
}

func (f *fakeAdminRepo) DeleteWithUser(_ context.Context, id uuid.UUID) (*db_models.Admin, error) {
	a, ok := f.admins[id]
	if !ok || a.IsDeleted {
		return nil, nil
	}
	delete(f.admins, id)
	for uid, u := range f.users.users {
		if u.Email == a.Email {
			delete(f.users.users, uid)
		}
	}
	return a, nil
}

func (f *fakeAdminRepo) SoftDeleteWithUser(_ context.Context, id uuid.UUID) (*db_models.Admin, error) {
	a, ok := f.admins[id]
	if !ok || a.IsDeleted {
		return nil, nil
	}
	a.IsDeleted = true
	for _, u := range f.users.users {
		if u.Email == a.Email {
			u.Status = db_models.UserStatusDeleted
		}
	}
	return a, nil
}

type fakeStatsRepo struct {
	activeUsers   int64
	plans         int64
	accepted      int64
	countries     int64
	profileImages []string
}

func (f *fakeStatsRepo) CountActiveUsers(_ context.Context) (int64, error)        { return f.activeUsers, nil }
func (f *fakeStatsRepo) CountTravelPlans(_ context.Context) (int64, error)        { return f.plans, nil }
func (f *fakeStatsRepo) CountAcceptedJoinRequests(_ context.Context) (int64, error) {
	return f.accepted, nil
}
func (f *fakeStatsRepo) CountDistinctCountries(_ context.Context) (int64, error) { return f.countries, nil }
func (f *fakeStatsRepo) SampleProfileImages(_ context.Context, limit int) ([]string, error) {
	if limit < len(f.profileImages) {
		return f.profileImages[:limit], nil
	}
	return f.profileImages, nil
}

type fakeUploader struct {
	url string
	err error
}

func (f *fakeUploader) UploadBase64Image(_ context.Context, _ string, _ string) (string, error) {
	return f.url, f.err
}
