package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/db_models"
	"tripmate/pkg/utils"
)

func newJoinRequestFixture() (*fakeUserRepo, *fakePlanRepo, *fakeJoinRequestRepo, JoinRequestServiceInterface) {
	users := newFakeUserRepo()
	plans := newFakePlanRepo()
	requests := newFakeJoinRequestRepo(plans, users)
	svc := NewJoinRequestService(requests, plans, users)
	return users, plans, requests, svc
}

func seedOwnerAndPlan(users *fakeUserRepo, plans *fakePlanRepo) (*db_models.User, *db_models.TravelPlan) {
	owner := users.add(&db_models.User{Name: "Owner", Email: "owner@example.com"})
	start := time.Now().Add(30 * 24 * time.Hour).Unix()
	plan := plans.add(&db_models.TravelPlan{
		UserID:      owner.ID,
		Title:       "Trekking in Patagonia",
		Destination: "El Chalten",
		Country:     "Argentina",
		StartDate:   start,
		EndDate:     start + 14*24*3600,
	})
	return owner, plan
}

func TestSendJoinRequest(t *testing.T) {
	users, plans, _, svc := newJoinRequestFixture()
	_, plan := seedOwnerAndPlan(users, plans)
	users.add(&db_models.User{Name: "Traveler", Email: "traveler@example.com"})

	detail, err := svc.SendJoinRequest(context.Background(), "traveler@example.com", plan.ID.String())
	require.NoError(t, err)
	assert.Equal(t, string(db_models.JoinRequestPending), detail.Status)
	assert.Equal(t, "traveler@example.com", detail.Requester.Email)
	assert.Equal(t, plan.ID.String(), detail.Plan.ID)
}

func TestSendJoinRequestOwnPlan(t *testing.T) {
	users, plans, _, svc := newJoinRequestFixture()
	owner, plan := seedOwnerAndPlan(users, plans)

	_, err := svc.SendJoinRequest(context.Background(), owner.Email, plan.ID.String())
	assert.ErrorIs(t, err, utils.ErrOwnPlanJoinRequest)
}

func TestSendJoinRequestDuplicate(t *testing.T) {
	users, plans, requests, svc := newJoinRequestFixture()
	_, plan := seedOwnerAndPlan(users, plans)
	traveler := users.add(&db_models.User{Name: "Traveler", Email: "traveler@example.com"})

	// A resolved request still blocks a new one for the same pair.
	require.NoError(t, requests.Insert(context.Background(), &db_models.TripJoinRequest{
		UserID:       traveler.ID,
		TravelPlanID: plan.ID,
		Status:       db_models.JoinRequestRejected,
	}))

	_, err := svc.SendJoinRequest(context.Background(), traveler.Email, plan.ID.String())
	assert.ErrorIs(t, err, utils.ErrDuplicateJoinRequest)
}

func TestSendJoinRequestPlanNotFound(t *testing.T) {
	users, _, _, svc := newJoinRequestFixture()
	users.add(&db_models.User{Name: "Traveler", Email: "traveler@example.com"})

	_, err := svc.SendJoinRequest(context.Background(), "traveler@example.com", uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestSendJoinRequestBadPlanID(t *testing.T) {
	_, _, _, svc := newJoinRequestFixture()

	_, err := svc.SendJoinRequest(context.Background(), "traveler@example.com", "not-a-uuid")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestUpdateJoinRequestStatusAccept(t *testing.T) {
	users, plans, requests, svc := newJoinRequestFixture()
	owner, plan := seedOwnerAndPlan(users, plans)
	traveler := users.add(&db_models.User{Name: "Traveler", Email: "traveler@example.com"})

	req := &db_models.TripJoinRequest{
		UserID:       traveler.ID,
		TravelPlanID: plan.ID,
		Status:       db_models.JoinRequestPending,
	}
	require.NoError(t, requests.Insert(context.Background(), req))

	detail, err := svc.UpdateJoinRequestStatus(context.Background(), req.ID.String(), owner.Email, "ACCEPTED")
	require.NoError(t, err)
	assert.Equal(t, "ACCEPTED", detail.Status)
	assert.Equal(t, traveler.Email, detail.Requester.Email)

	// A second decision on the same request must not flip it back.
	_, err = svc.UpdateJoinRequestStatus(context.Background(), req.ID.String(), owner.Email, "REJECTED")
	assert.ErrorIs(t, err, utils.ErrRequestAlreadyResolved)
	assert.Equal(t, db_models.JoinRequestAccepted, requests.requests[req.ID].Status)
}

func TestUpdateJoinRequestStatusNotOwner(t *testing.T) {
	users, plans, requests, svc := newJoinRequestFixture()
	_, plan := seedOwnerAndPlan(users, plans)
	traveler := users.add(&db_models.User{Name: "Traveler", Email: "traveler@example.com"})
	stranger := users.add(&db_models.User{Name: "Stranger", Email: "stranger@example.com"})

	req := &db_models.TripJoinRequest{
		UserID:       traveler.ID,
		TravelPlanID: plan.ID,
		Status:       db_models.JoinRequestPending,
	}
	require.NoError(t, requests.Insert(context.Background(), req))

	_, err := svc.UpdateJoinRequestStatus(context.Background(), req.ID.String(), stranger.Email, "ACCEPTED")
	assert.ErrorIs(t, err, utils.ErrNotPlanOwner)
	assert.Equal(t, db_models.JoinRequestPending, requests.requests[req.ID].Status)
}

func TestUpdateJoinRequestStatusRejectsNonTerminal(t *testing.T) {
	users, plans, requests, svc := newJoinRequestFixture()
	owner, plan := seedOwnerAndPlan(users, plans)
	traveler := users.add(&db_models.User{Name: "Traveler", Email: "traveler@example.com"})

	req := &db_models.TripJoinRequest{
		UserID:       traveler.ID,
		TravelPlanID: plan.ID,
		Status:       db_models.JoinRequestPending,
	}
	require.NoError(t, requests.Insert(context.Background(), req))

	_, err := svc.UpdateJoinRequestStatus(context.Background(), req.ID.String(), owner.Email, "PENDING")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
