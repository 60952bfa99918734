package impl

import (
	"context"
	"testing"

	"lifelink/internal/domain/entity"
	domainerrors "lifelink/internal/domain/errors"
	"lifelink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProfileService(t *testing.T) (usecase.ProfileUsecase, *testStore) {
	st := newTestStore(t)

	srv := NewProfileService(ProfileServiceParams{
		TxManager:   st.txManager,
		UserRepo:    st.userRepo,
		ProfileRepo: st.profileRepo,
		Logger:      newDiscardLogger(),
	})

	return srv, st
}

func validDetails() entity.ProfileDetails {
	return entity.ProfileDetails{
		Name:                 "Jane Doe",
		EmergencyContact:     "+1 555 123 4567",
		EmergencyContactName: "John Doe",
		BloodGroup:           "O+",
		Allergies:            "Penicillin",
		MedicalConditions:    "Asthma",
		CustomMessage:        "Inhaler in left pocket",
	}
}

func TestProfileService_SaveProfile_LinksUnusedCode(t *testing.T) {
	srv, st := createTestProfileService(t)
	ctx := context.Background()
	owner := st.seedUser(t, "owner@example.com")
	st.seedCode(t, "LL-AB12CD34", entity.CodeStatusUnused)

	profile, err := srv.SaveProfile(ctx, owner.ID, usecase.SaveProfileInput{Code: "LL-AB12CD34", Details: validDetails()})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, profile.ID)
	assert.True(t, profile.IsActive)
	assert.Equal(t, "LL-AB12CD34", profile.QRCode)
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.False(t, profile.CreatedAt.IsZero())

	code, err := st.qrCodeRepo.FindByCode(ctx, "LL-AB12CD34")
	require.NoError(t, err)
	assert.Equal(t, entity.CodeStatusLinked, code.Status)
	require.NotNil(t, code.LinkedUserID)
	assert.Equal(t, owner.ID, *code.LinkedUserID)
	require.NotNil(t, code.EmergencyInfoID)
	assert.Equal(t, profile.ID, *code.EmergencyInfoID)

	user, err := st.userRepo.FindByID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"LL-AB12CD34"}, user.QRCodes)
}

func TestProfileService_SaveProfile_OverwritesInPlace(t *testing.T) {
	srv, st := createTestProfileService(t)
	ctx := context.Background()
	owner := st.seedUser(t, "owner@example.com")
	st.seedCode(t, "LL-AB12CD34", entity.CodeStatusUnused)

	first, err := srv.SaveProfile(ctx, owner.ID, usecase.SaveProfileInput{Code: "LL-AB12CD34", Details: validDetails()})
	require.NoError(t, err)

	updated := validDetails()
	updated.Name = "Jane Smith"
	updated.BloodGroup = ""
	second, err := srv.SaveProfile(ctx, owner.ID, usecase.SaveProfileInput{Code: "LL-AB12CD34", Details: updated})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.CreatedAt.Equal(second.CreatedAt))
	assert.Equal(t, "Jane Smith", second.Name)
	assert.Empty(t, second.BloodGroup)

	all, err := st.profileRepo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	user, err := st.userRepo.FindByID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"LL-AB12CD34"}, user.QRCodes)
}

func TestProfileService_SaveProfile_Rejections(t *testing.T) {
	srv, st := createTestProfileService(t)
	ctx := context.Background()
	owner := st.seedUser(t, "owner@example.com")
	other := st.seedUser(t, "other@example.com")
	st.seedCode(t, "LL-SOLD0000", entity.CodeStatusSold)
	st.seedCode(t, "LL-OWNED000", entity.CodeStatusUnused)

	_, err := srv.SaveProfile(ctx, owner.ID, usecase.SaveProfileInput{Code: "LL-OWNED000", Details: validDetails()})
	require.NoError(t, err)

	t.Run("unknown code", func(t *testing.T) {
		_, err := srv.SaveProfile(ctx, owner.ID, usecase.SaveProfileInput{Code: "LL-MISSING0", Details: validDetails()})
		requireAppError(t, err, domainerrors.ErrQRCodeNotFound)
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		_, err := srv.SaveProfile(ctx, owner.ID, usecase.SaveProfileInput{Code: "ll-owned000", Details: validDetails()})
		requireAppError(t, err, domainerrors.ErrQRCodeNotFound)
	})

	t.Run("sold code", func(t *testing.T) {
		_, err := srv.SaveProfile(ctx, owner.ID, usecase.SaveProfileInput{Code: "LL-SOLD0000", Details: validDetails()})
		requireAppError(t, err, domainerrors.ErrQRCodeNotLinkable)
	})

	t.Run("code linked to another user", func(t *testing.T) {
		_, err := srv.SaveProfile(ctx, other.ID, usecase.SaveProfileInput{Code: "LL-OWNED000", Details: validDetails()})
		requireAppError(t, err, domainerrors.ErrForbidden)

		profile, err := st.profileRepo.FindActiveByCode(ctx, "LL-OWNED000")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", profile.Name)
	})
}

func TestProfileService_SaveProfile_Validation(t *testing.T) {
	srv, st := createTestProfileService(t)
	owner := st.seedUser(t, "owner@example.com")
	st.seedCode(t, "LL-AB12CD34", entity.CodeStatusUnused)

	tests := []struct {
		name   string
		mutate func(*entity.ProfileDetails)
	}{
		{"missing name", func(d *entity.ProfileDetails) { d.Name = "  " }},
		{"missing contact", func(d *entity.ProfileDetails) { d.EmergencyContact = "" }},
		{"missing contact name", func(d *entity.ProfileDetails) { d.EmergencyContactName = "" }},
		{"unknown blood group", func(d *entity.ProfileDetails) { d.BloodGroup = "C+" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := validDetails()
			tt.mutate(&details)

			_, err := srv.SaveProfile(context.Background(), owner.ID, usecase.SaveProfileInput{Code: "LL-AB12CD34", Details: details})
			requireAppError(t, err, domainerrors.ErrValidationFailed)
		})
	}

	code, err := st.qrCodeRepo.FindByCode(context.Background(), "LL-AB12CD34")
	require.NoError(t, err)
	assert.Equal(t, entity.CodeStatusUnused, code.Status)
}

func TestProfileService_ListAndGetMyProfiles(t *testing.T) {
	srv, st := createTestProfileService(t)
	ctx := context.Background()
	owner := st.seedUser(t, "owner@example.com")
	other := st.seedUser(t, "other@example.com")
	for _, c := range []string{"LL-FIRST000", "LL-SECOND00", "LL-OTHER000"} {
		st.seedCode(t, c, entity.CodeStatusUnused)
	}

	for _, c := range []string{"LL-FIRST000", "LL-SECOND00"} {
		_, err := srv.SaveProfile(ctx, owner.ID, usecase.SaveProfileInput{Code: c, Details: validDetails()})
		require.NoError(t, err)
	}
	_, err := srv.SaveProfile(ctx, other.ID, usecase.SaveProfileInput{Code: "LL-OTHER000", Details: validDetails()})
	require.NoError(t, err)

	profiles, err := srv.ListMyProfiles(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "LL-FIRST000", profiles[0].QRCode)
	assert.Equal(t, "LL-SECOND00", profiles[1].QRCode)

	profile, err := srv.GetMyProfile(ctx, owner.ID, "LL-SECOND00")
	require.NoError(t, err)
	assert.Equal(t, "LL-SECOND00", profile.QRCode)

	_, err = srv.GetMyProfile(ctx, owner.ID, "LL-OTHER000")
	requireAppError(t, err, domainerrors.ErrProfileNotFound)

	empty, err := srv.ListMyProfiles(ctx, st.seedUser(t, "new@example.com").ID)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = srv.ListMyProfiles(ctx, uuid.New())
	requireAppError(t, err, domainerrors.ErrUserNotFound)
}
