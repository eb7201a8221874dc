package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zoomboom/internal/model"
	"zoomboom/internal/repository"
	repoMocks "zoomboom/internal/repository/mocks"
	"zoomboom/internal/validation"
)

func newTestRiderService(t *testing.T, repo *repoMocks.MockRiderRepository) *riderService {
	t.Helper()
	s := NewRiderService(repo, newCoverage(t), newValidator(t)).(*riderService)
	s.now = func() time.Time { return fixedNow }
	s.newID = func() string { return "rider-1" }
	return s
}

func validApplication() model.RiderApplication {
	return model.RiderApplication{
		FullName:    "Rahim Uddin",
		Email:       member.Email,
		Phone:       "01712345678",
		NID:         "1234567890",
		Region:      "Dhaka",
		District:    "Gazipur",
		License:     "DK-12345",
		BikeDetails: "Honda CB150",
		BikeReg:     "DHAKA-METRO-LA-1234",
		Bio:         "Five years delivering around Tongi.",
		RiderImage:  "https://img.example.com/rahim.jpg",
	}
}

func TestRiderService_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("stored as pending", func(t *testing.T) {
		mRepo := new(repoMocks.MockRiderRepository)
		mRepo.On("Create", ctx, mock.MatchedBy(func(r *model.Rider) bool {
			return r.ID == "rider-1" && r.Status == model.RiderStatusPending && r.Role == model.RoleUser && r.AppliedAt.Equal(fixedNow)
		})).Return(&model.Rider{ID: "rider-1", Status: model.RiderStatusPending}, nil)

		r, err := newTestRiderService(t, mRepo).Apply(ctx, member, validApplication())

		require.NoError(t, err)
		assert.Equal(t, "rider-1", r.ID)
		mRepo.AssertExpectations(t)
	})

	t.Run("second application", func(t *testing.T) {
		mRepo := new(repoMocks.MockRiderRepository)
		mRepo.On("Create", ctx, mock.Anything).Return(nil, repository.ErrDuplicate)

		_, err := newTestRiderService(t, mRepo).Apply(ctx, member, validApplication())

		assert.ErrorIs(t, err, ErrApplicationExists)
	})

	failures := []struct {
		name  string
		actor model.Actor
		edit  func(a *model.RiderApplication)
		field string
	}{
		{"bad phone", member, func(a *model.RiderApplication) { a.Phone = "01212345678" }, "phone"},
		{"short nid", member, func(a *model.RiderApplication) { a.NID = "123" }, "nid"},
		{"short bio", member, func(a *model.RiderApplication) { a.Bio = "hi" }, "bio"},
		{"image not a url", member, func(a *model.RiderApplication) { a.RiderImage = "rahim.jpg" }, "riderImage"},
		{"applying for someone else", stranger, func(a *model.RiderApplication) {}, "email"},
		{"district outside region", member, func(a *model.RiderApplication) { a.District = "Sylhet" }, "district"},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockRiderRepository)
			app := validApplication()
			tt.edit(&app)

			_, err := newTestRiderService(t, mRepo).Apply(ctx, tt.actor, app)

			var verr *validation.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestRiderService_List(t *testing.T) {
	ctx := context.Background()

	mRepo := new(repoMocks.MockRiderRepository)
	mRepo.On("List", ctx, repository.RiderFilter{Status: model.RiderStatusPending, Search: "rahim"}).
		Return([]model.Rider{{ID: "rider-1"}}, nil)
	s := newTestRiderService(t, mRepo)

	items, err := s.List(ctx, RiderQuery{Status: model.RiderStatusPending, Search: "rahim"})
	assert.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = s.List(ctx, RiderQuery{Status: "retired"})
	var verr *validation.Error
	assert.ErrorAs(t, err, &verr)

	mRepo.AssertExpectations(t)
}

func TestRiderService_ChangeStatus(t *testing.T) {
	ctx := context.Background()
	rider := model.RoleRider
	user := model.RoleUser

	tests := []struct {
		name     string
		from     model.RiderStatus
		to       model.RiderStatus
		wantRole *model.Role
		wantErr  error
	}{
		{name: "approve", from: model.RiderStatusPending, to: model.RiderStatusVerified, wantRole: &rider},
		{name: "reject", from: model.RiderStatusPending, to: model.RiderStatusRejected},
		{name: "deactivate", from: model.RiderStatusVerified, to: model.RiderStatusDeactivated, wantRole: &user},
		{name: "reactivate", from: model.RiderStatusDeactivated, to: model.RiderStatusVerified, wantRole: &rider},
		{name: "rejected is final", from: model.RiderStatusRejected, to: model.RiderStatusVerified, wantErr: ErrInvalidTransition},
		{name: "pending cannot be deactivated", from: model.RiderStatusPending, to: model.RiderStatusDeactivated, wantErr: ErrInvalidTransition},
		{name: "no-op move", from: model.RiderStatusVerified, to: model.RiderStatusVerified, wantErr: ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockRiderRepository)
			mRepo.On("FindByID", ctx, "rider-1").Return(&model.Rider{ID: "rider-1", Status: tt.from}, nil)
			if tt.wantErr == nil {
				mRepo.On("ChangeStatus", ctx, "rider-1", repository.StatusChange{
					From: tt.from,
					To:   tt.to,
					Role: tt.wantRole,
					At:   fixedNow,
				}).Return(int64(1), nil)
			}

			n, err := newTestRiderService(t, mRepo).ChangeStatus(ctx, "rider-1", tt.to)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), n)
			}
			mRepo.AssertExpectations(t)
		})
	}

	t.Run("concurrent review", func(t *testing.T) {
		mRepo := new(repoMocks.MockRiderRepository)
		mRepo.On("FindByID", ctx, "rider-1").Return(&model.Rider{ID: "rider-1", Status: model.RiderStatusPending}, nil)
		mRepo.On("ChangeStatus", ctx, "rider-1", mock.Anything).Return(int64(0), nil)

		_, err := newTestRiderService(t, mRepo).ChangeStatus(ctx, "rider-1", model.RiderStatusVerified)

		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown rider", func(t *testing.T) {
		mRepo := new(repoMocks.MockRiderRepository)
		mRepo.On("FindByID", ctx, "ghost").Return(nil, sql.ErrNoRows)

		_, err := newTestRiderService(t, mRepo).ChangeStatus(ctx, "ghost", model.RiderStatusVerified)

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := newTestRiderService(t, new(repoMocks.MockRiderRepository)).ChangeStatus(ctx, "rider-1", "promoted")
		var verr *validation.Error
		assert.ErrorAs(t, err, &verr)
	})
}
