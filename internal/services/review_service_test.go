package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/pkg/utils"
)

type reviewFixture struct {
	users   *fakeUserRepo
	plans   *fakePlanRepo
	reviews *fakeReviewRepo
	svc     *ReviewService
	now     int64
}

func newReviewFixture() *reviewFixture {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC).Unix()
	f := &reviewFixture{
		users:   newFakeUserRepo(),
		plans:   newFakePlanRepo(),
		reviews: newFakeReviewRepo(),
		now:     now,
	}
	f.svc = &ReviewService{
		reviewRepo: f.reviews,
		planRepo:   f.plans,
		userRepo:   f.users,
		now:        func() int64 { return now },
	}
	return f
}

// endedPlan returns a plan whose trip finished the given number of days
// before the fixture clock. Negative days means it ends in the future.
func (f *reviewFixture) endedPlan(owner *db_models.User, daysAgo int) *db_models.TravelPlan {
	end := f.now - int64(daysAgo)*24*3600
	return f.plans.add(&db_models.TravelPlan{
		UserID:    owner.ID,
		Title:     "City break",
		StartDate: end - 7*24*3600,
		EndDate:   end,
	})
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestCreateReviewAfterTripEnds(t *testing.T) {
	f := newReviewFixture()
	owner := f.users.add(&db_models.User{Name: "Owner", Email: "owner@example.com"})
	reviewer := f.users.add(&db_models.User{Name: "Reviewer", Email: "reviewer@example.com"})
	plan := f.endedPlan(owner, 1)

	item, err := f.svc.CreateReview(context.Background(), plan.ID.String(), reviewer.Email,
		request_models.CreateReviewRequest{Rating: 5, Comment: strPtr("great trip")})
	require.NoError(t, err)
	assert.Equal(t, 5, item.Rating)
	assert.Equal(t, "great trip", item.Comment)
	assert.True(t, item.IsOwn)
}

func TestCreateReviewBeforeTripEnds(t *testing.T) {
	f := newReviewFixture()
	owner := f.users.add(&db_models.User{Name: "Owner", Email: "owner@example.com"})
	reviewer := f.users.add(&db_models.User{Name: "Reviewer", Email: "reviewer@example.com"})
	plan := f.endedPlan(owner, -1)

	_, err := f.svc.CreateReview(context.Background(), plan.ID.String(), reviewer.Email,
		request_models.CreateReviewRequest{Rating: 4})
	assert.ErrorIs(t, err, utils.ErrTripNotCompleted)
}

func TestCreateReviewRatingBounds(t *testing.T) {
	f := newReviewFixture()
	owner := f.users.add(&db_models.User{Name: "Owner", Email: "owner@example.com"})
	reviewer := f.users.add(&db_models.User{Name: "Reviewer", Email: "reviewer@example.com"})
	plan := f.endedPlan(owner, 1)

	for _, rating := range []int{0, 6, -1} {
		_, err := f.svc.CreateReview(context.Background(), plan.ID.String(), reviewer.Email,
			request_models.CreateReviewRequest{Rating: rating})
		assert.ErrorIs(t, err, utils.ErrInvalidRating, "rating %d", rating)
	}

	_, err := f.svc.CreateReview(context.Background(), plan.ID.String(), reviewer.Email,
		request_models.CreateReviewRequest{Rating: 1})
	assert.NoError(t, err)
}

func TestCreateReviewDuplicate(t *testing.T) {
	f := newReviewFixture()
	owner := f.users.add(&db_models.User{Name: "Owner", Email: "owner@example.com"})
	reviewer := f.users.add(&db_models.User{Name: "Reviewer", Email: "reviewer@example.com"})
	plan := f.endedPlan(owner, 1)

	_, err := f.svc.CreateReview(context.Background(), plan.ID.String(), reviewer.Email,
		request_models.CreateReviewRequest{Rating: 4})
	require.NoError(t, err)

	_, err = f.svc.CreateReview(context.Background(), plan.ID.String(), reviewer.Email,
		request_models.CreateReviewRequest{Rating: 2})
	assert.ErrorIs(t, err, utils.ErrDuplicateReview)
}

func TestUpdateReviewOnlyAuthor(t *testing.T) {
	f := newReviewFixture()
	owner := f.users.add(&db_models.User{Name: "Owner", Email: "owner@example.com"})
	author := f.users.add(&db_models.User{Name: "Author", Email: "author@example.com"})
	other := f.users.add(&db_models.User{Name: "Other", Email: "other@example.com"})
	plan := f.endedPlan(owner, 1)

	review := &db_models.Review{UserID: author.ID, TravelPlanID: plan.ID, Rating: 3}
	require.NoError(t, f.reviews.Insert(context.Background(), review))

	err := f.svc.UpdateReview(context.Background(), review.ID.String(), other.Email,
		request_models.UpdateReviewRequest{Rating: intPtr(1)})
	assert.ErrorIs(t, err, utils.ErrNotReviewAuthor)
	assert.Equal(t, 3, f.reviews.reviews[review.ID].Rating)

	err = f.svc.UpdateReview(context.Background(), review.ID.String(), author.Email,
		request_models.UpdateReviewRequest{Rating: intPtr(5), Comment: strPtr("revised")})
	require.NoError(t, err)
	assert.Equal(t, 5, f.reviews.reviews[review.ID].Rating)
	assert.Equal(t, "revised", f.reviews.reviews[review.ID].Comment)
}

func TestDeleteReviewOnlyAuthor(t *testing.T) {
	f := newReviewFixture()
	owner := f.users.add(&db_models.User{Name: "Owner", Email: "owner@example.com"})
	author := f.users.add(&db_models.User{Name: "Author", Email: "author@example.com"})
	other := f.users.add(&db_models.User{Name: "Other", Email: "other@example.com"})
	plan := f.endedPlan(owner, 1)

	review := &db_models.Review{UserID: author.ID, TravelPlanID: plan.ID, Rating: 3}
	require.NoError(t, f.reviews.Insert(context.Background(), review))

	err := f.svc.DeleteReview(context.Background(), review.ID.String(), other.Email)
	assert.ErrorIs(t, err, utils.ErrNotReviewAuthor)

	err = f.svc.DeleteReview(context.Background(), review.ID.String(), author.Email)
	require.NoError(t, err)
	assert.Empty(t, f.reviews.reviews)
}

func TestGetReviewsByPlanAverage(t *testing.T) {
	f := newReviewFixture()
	owner := f.users.add(&db_models.User{Name: "Owner", Email: "owner@example.com"})
	alice := f.users.add(&db_models.User{Name: "Alice", Email: "alice@example.com"})
	bob := f.users.add(&db_models.User{Name: "Bob", Email: "bob@example.com"})
	plan := f.endedPlan(owner, 1)

	require.NoError(t, f.reviews.Insert(context.Background(),
		&db_models.Review{UserID: alice.ID, TravelPlanID: plan.ID, Rating: 3, User: *alice}))
	require.NoError(t, f.reviews.Insert(context.Background(),
		&db_models.Review{UserID: bob.ID, TravelPlanID: plan.ID, Rating: 5, User: *bob}))

	out, err := f.svc.GetReviewsByPlan(context.Background(), plan.ID.String(), alice.Email)
	require.NoError(t, err)
	require.NotNil(t, out.AverageRating)
	assert.InDelta(t, 4.0, *out.AverageRating, 1e-9)
	assert.Len(t, out.Reviews, 2)

	for _, item := range out.Reviews {
		assert.Equal(t, item.Author.Email == alice.Email, item.IsOwn)
	}
}

func TestGetReviewsByPlanEmpty(t *testing.T) {
	f := newReviewFixture()
	owner := f.users.add(&db_models.User{Name: "Owner", Email: "owner@example.com"})
	plan := f.endedPlan(owner, 1)

	out, err := f.svc.GetReviewsByPlan(context.Background(), plan.ID.String(), "")
	require.NoError(t, err)
	assert.Nil(t, out.AverageRating)
	assert.Empty(t, out.Reviews)
}
