package handler

import (
	"net/http"
	"testing"
	"time"

	domainerrors "lifelink/internal/domain/errors"
	mockUsecase "lifelink/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEmergencyHandler_Resolve(t *testing.T) {
	resolve := func(t *testing.T, uc *mockUsecase.MockResolverUsecase, code string) *testRequest {
		h := NewEmergencyHandler(EmergencyHandlerParams{ResolverUC: uc, Logger: newTestLogger()})

		return &testRequest{
			method:  http.MethodGet,
			path:    "/emergency/" + code,
			params:  map[string]string{"code": code},
			handler: h.Resolve,
		}
	}

	t.Run("serves the public view", func(t *testing.T) {
		uc := mockUsecase.NewMockResolverUsecase(t)
		profile := sampleProfile("LL-00000001")
		scanned := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
		profile.LastScanned = &scanned
		uc.EXPECT().Resolve(mock.Anything, "LL-00000001").Return(profile, nil).Once()

		rec := serve(t, *resolve(t, uc, "LL-00000001"))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		var got emergencyResponse
		decodeData(t, rec, &got)
		assert.Equal(t, "Ana Silva", got.Name)
		assert.Equal(t, "Rui Silva", got.EmergencyContactName)
		require.NotNil(t, got.LastScanned)
		assert.True(t, scanned.Equal(*got.LastScanned))
		assert.NotContains(t, rec.Body.String(), profile.ID.String())
	})

	t.Run("unknown code", func(t *testing.T) {
		uc := mockUsecase.NewMockResolverUsecase(t)
		uc.EXPECT().Resolve(mock.Anything, "LL-DOESNOTX").Return(nil, domainerrors.ErrQRCodeNotFound).Once()

		rec := serve(t, *resolve(t, uc, "LL-DOESNOTX"))

		requireErrorCode(t, rec, http.StatusNotFound, "QR_CODE_NOT_FOUND")
	})

	t.Run("code without a profile", func(t *testing.T) {
		uc := mockUsecase.NewMockResolverUsecase(t)
		uc.EXPECT().Resolve(mock.Anything, "LL-00000002").Return(nil, domainerrors.ErrProfileNotFound).Once()

		rec := serve(t, *resolve(t, uc, "LL-00000002"))

		requireErrorCode(t, rec, http.StatusNotFound, "PROFILE_NOT_LINKED")
	})
}
