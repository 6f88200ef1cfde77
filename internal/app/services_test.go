package app

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarstream/internal/common"
	"scholarstream/internal/domain/application"
	"scholarstream/internal/domain/payment"
	"scholarstream/internal/domain/scholarship"
	"scholarstream/internal/domain/store"
	"scholarstream/internal/repository/memory"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestUserServiceDuplicateEmail(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, store.Document{"email": "ann@example.com", "name": "Ann"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = svc.Create(ctx, store.Document{"email": "ann@example.com", "name": "Other"})
		require.Error(t, err)
		assert.True(t, common.Is(err, common.CodeConflict))
	}
	assert.Equal(t, 1, repo.Count())

	doc, err := svc.Get(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann", doc["name"])
}

func TestUserServiceSetRoleWithoutRoleClearsIt(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository())
	ctx := context.Background()
	_, err := svc.Create(ctx, store.Document{"email": "ann@example.com", "role": "admin"})
	require.NoError(t, err)

	res, err := svc.SetRole(ctx, "ann@example.com", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)
	assert.Equal(t, int64(1), res.ModifiedCount)

	doc, err := svc.Get(ctx, "ann@example.com")
	require.NoError(t, err)
	role, ok := doc["role"]
	assert.True(t, ok)
	assert.Nil(t, role)

	res, err = svc.SetRole(ctx, "nobody@example.com", "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.MatchedCount)
}

func TestScholarshipServiceCreateStampsCreatedAt(t *testing.T) {
	svc := NewScholarshipService(memory.NewScholarshipRepository())
	svc.clock = fixedClock
	ctx := context.Background()

	input := store.Document{"scholarshipName": "Fulbright", "applicationFees": "25", "_id": "spoofed"}
	created, err := svc.Create(ctx, input)
	require.NoError(t, err)

	doc, err := svc.Get(ctx, created.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, store.Document{
		"_id":             created.InsertedID,
		"scholarshipName": "Fulbright",
		"applicationFees": "25",
		"createdAt":       fixedNow,
	}, doc)
	assert.Equal(t, "spoofed", input["_id"])
}

func TestScholarshipServiceUpdateUnknownIsNotFound(t *testing.T) {
	repo := memory.NewScholarshipRepository()
	svc := NewScholarshipService(repo)
	ctx := context.Background()
	_, err := svc.Create(ctx, store.Document{"scholarshipName": "Chevening"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, common.NewID(), store.Document{"scholarshipName": "Changed"})
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeNotFound))

	items, err := svc.List(ctx, scholarship.Filter{}, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Chevening", items[0]["scholarshipName"])
}

func TestScholarshipServiceEmptyUpdate(t *testing.T) {
	svc := NewScholarshipService(memory.NewScholarshipRepository())
	ctx := context.Background()
	created, err := svc.Create(ctx, store.Document{"scholarshipName": "Chevening"})
	require.NoError(t, err)

	res, err := svc.Update(ctx, created.InsertedID, store.Document{"_id": "x"})
	require.NoError(t, err)
	assert.Equal(t, &store.UpdateResult{Acknowledged: true, MatchedCount: 1}, res)

	_, err = svc.Update(ctx, common.NewID(), store.Document{})
	assert.True(t, common.Is(err, common.CodeNotFound))
}

func fees(items []store.Document) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item["applicationFees"])
	}
	return out
}

func TestSortByApplicationFees(t *testing.T) {
	newItems := func() []store.Document {
		return []store.Document{
			{"applicationFees": "100"},
			{"applicationFees": 20.5},
			{"applicationFees": "free"},
			{"applicationFees": int32(75)},
			{"applicationFees": "20.5"},
			{"applicationFees": "5"},
		}
	}

	asc := newItems()
	SortByApplicationFees(asc, scholarship.OrderAscending)
	assert.Equal(t, []any{"5", 20.5, "20.5", int32(75), "100", "free"}, fees(asc))

	desc := newItems()
	SortByApplicationFees(desc, scholarship.OrderDescending)
	assert.Equal(t, []any{"100", int32(75), 20.5, "20.5", "5", "free"}, fees(desc))

	unchanged := newItems()
	SortByApplicationFees(unchanged, "newest")
	assert.Equal(t, fees(newItems()), fees(unchanged))
}

func TestApplicationServiceRequiresKeys(t *testing.T) {
	repo := memory.NewApplicationRepository()
	svc := NewApplicationService(repo, NewValidator())
	ctx := context.Background()

	valid := ApplicationInput{ScholarshipID: "s1", UserID: "u1", UserEmail: "ann@example.com"}
	cases := map[string]func(ApplicationInput) ApplicationInput{
		"scholarshipId": func(in ApplicationInput) ApplicationInput { in.ScholarshipID = ""; return in },
		"userId":        func(in ApplicationInput) ApplicationInput { in.UserID = nil; return in },
		"userEmail":     func(in ApplicationInput) ApplicationInput { in.UserEmail = false; return in },
		"zero userId":   func(in ApplicationInput) ApplicationInput { in.UserID = 0.0; return in },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			_, err := svc.Create(ctx, mutate(valid))
			require.Error(t, err)
			var appErr *common.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, common.CodeValidation, appErr.Code)
			assert.Equal(t, "Invalid application data", appErr.Message)
			assert.NotEmpty(t, appErr.Fields)
		})
	}
	assert.Equal(t, 0, repo.Count())
}

func TestApplicationServiceDefaults(t *testing.T) {
	repo := memory.NewApplicationRepository()
	svc := NewApplicationService(repo, NewValidator())
	svc.clock = fixedClock
	ctx := context.Background()

	_, err := svc.Create(ctx, ApplicationInput{ScholarshipID: "s1", UserID: "u1", UserEmail: "ann@example.com", ApplicationFees: 30.0})
	require.NoError(t, err)
	_, err = svc.Create(ctx, ApplicationInput{ScholarshipID: "s2", UserID: "u1", UserEmail: "ann@example.com", PaymentStatus: "PAID"})
	require.NoError(t, err)

	items, err := svc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, application.StatusPending, items[0].ApplicationStatus)
	assert.Equal(t, application.PaymentUnpaid, items[0].PaymentStatus)
	assert.Equal(t, fixedNow, items[0].ApplicationDate)
	assert.Equal(t, "", items[0].Feedback)
	assert.Equal(t, 30.0, items[0].ApplicationFees)
	assert.Equal(t, "PAID", items[1].PaymentStatus)
}

func TestApplicationServiceKeepsValuesAsSent(t *testing.T) {
	repo := memory.NewApplicationRepository()
	svc := NewApplicationService(repo, NewValidator())
	ctx := context.Background()

	_, err := svc.Create(ctx, ApplicationInput{ScholarshipID: "s1", UserID: 42.0, UserEmail: "ann@example.com", PaymentStatus: ""})
	require.NoError(t, err)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 42.0, items[0].UserID)
	assert.Equal(t, application.PaymentUnpaid, items[0].PaymentStatus)
	assert.Nil(t, items[0].ScholarshipName)

	byUser, err := svc.ListByUser(ctx, "42")
	require.NoError(t, err)
	assert.Empty(t, byUser)
}

func TestApplicationServiceEmptyUpdateClearsApplicant(t *testing.T) {
	svc := NewApplicationService(memory.NewApplicationRepository(), NewValidator())
	ctx := context.Background()
	created, err := svc.Create(ctx, ApplicationInput{ScholarshipID: "s1", UserID: "u1", UserName: "Ann", UserEmail: "ann@example.com"})
	require.NoError(t, err)

	res, err := svc.UpdateApplicant(ctx, created.InsertedID, application.ApplicantUpdate{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)

	items, err := svc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].UserName)
	assert.Nil(t, items[0].UserEmail)

	res, err = svc.UpdateApplicant(ctx, common.NewID(), application.ApplicantUpdate{UserName: "Ann"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.MatchedCount)
}

func TestReviewServiceMapsRatingAndComment(t *testing.T) {
	repo := memory.NewReviewRepository()
	svc := NewReviewService(repo)
	svc.clock = fixedClock
	ctx := context.Background()

	created, err := svc.Create(ctx, ReviewInput{UserID: "u1", Rating: 4.0, Comment: "Helpful staff"})
	require.NoError(t, err)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 4.0, items[0].RatingPoint)
	assert.Equal(t, "Helpful staff", items[0].ReviewComment)
	assert.Equal(t, fixedNow, items[0].ReviewDate)

	later := fixedNow.Add(48 * time.Hour)
	svc.clock = func() time.Time { return later }
	res, err := svc.Update(ctx, created.InsertedID, nil, "Updated")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)

	items, err = svc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, items[0].RatingPoint)
	assert.Equal(t, "Updated", items[0].ReviewComment)
	assert.Equal(t, later, items[0].ReviewDate)
}

type fakeGateway struct {
	requests []payment.IntentRequest
	err      error
}

func (g *fakeGateway) CreateIntent(_ context.Context, req payment.IntentRequest) (*payment.Intent, error) {
	g.requests = append(g.requests, req)
	if g.err != nil {
		return nil, g.err
	}
	return &payment.Intent{ID: "pi_1", ClientSecret: "pi_1_secret_xyz"}, nil
}

func TestPaymentServiceCreateIntent(t *testing.T) {
	for name, amount := range map[string]any{"number": 10.0, "string": "10", "decimal": decimal.NewFromInt(10)} {
		t.Run(name, func(t *testing.T) {
			gateway := &fakeGateway{}
			svc := NewPaymentService(gateway, "usd")

			secret, err := svc.CreateIntent(context.Background(), amount)
			require.NoError(t, err)
			assert.Equal(t, "pi_1_secret_xyz", secret)
			require.Len(t, gateway.requests, 1)
			assert.Equal(t, payment.IntentRequest{Amount: 1000, Currency: "usd", PaymentMethodTypes: []string{"card"}}, gateway.requests[0])
		})
	}
}

func TestPaymentServiceMissingAmount(t *testing.T) {
	for _, amount := range []any{nil, 0.0, "", false} {
		gateway := &fakeGateway{}
		svc := NewPaymentService(gateway, "usd")

		_, err := svc.CreateIntent(context.Background(), amount)
		var appErr *common.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, common.CodeValidation, appErr.Code)
		assert.Equal(t, "Amount is required", appErr.Message)
		assert.Empty(t, gateway.requests)
	}
}

func TestPaymentServiceUnchargeableAmount(t *testing.T) {
	for _, amount := range []any{"ten", "12.345", 0.001, true, map[string]any{"value": 10.0}} {
		gateway := &fakeGateway{}
		svc := NewPaymentService(gateway, "usd")

		_, err := svc.CreateIntent(context.Background(), amount)
		require.Error(t, err)
		assert.True(t, common.Is(err, common.CodeUpstream), "amount %v", amount)
		assert.Empty(t, gateway.requests)
	}
}

func TestPaymentServiceGatewayFailure(t *testing.T) {
	svc := NewPaymentService(&fakeGateway{err: errors.New("card network unavailable")}, "usd")

	_, err := svc.CreateIntent(context.Background(), 10.0)
	var appErr *common.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.CodeUpstream, appErr.Code)
	assert.Equal(t, "card network unavailable", appErr.Message)
}

func TestMinorUnits(t *testing.T) {
	for amount, want := range map[any]int64{10.0: 1000, "19.99": 1999, " 7.5 ": 750, -5.0: -500, int32(3): 300} {
		got, err := MinorUnits(amount)
		require.NoError(t, err)
		assert.Equal(t, want, got, "amount %v", amount)
	}

	_, err := MinorUnits("10.005")
	assert.True(t, common.Is(err, common.CodeUpstream))
	_, err = MinorUnits("1e30")
	assert.True(t, common.Is(err, common.CodeUpstream))
}

func TestIsPresent(t *testing.T) {
	for _, value := range []any{"a", 1.0, -1, true, map[string]any{}, []any{}, "0"} {
		assert.True(t, isPresent(value), "%#v", value)
	}
	var nilMap map[string]any
	for _, value := range []any{nil, "", 0.0, 0, false, math.NaN(), nilMap} {
		assert.False(t, isPresent(value), "%#v", value)
	}
}
