package handler

import (
	"log/slog"
	"net/http"

	"lifelink/internal/delivery/api/response"
	"lifelink/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EmergencyHandlerParams holds dependencies for EmergencyHandler, injected by Fx.
type EmergencyHandlerParams struct {
	fx.In

	ResolverUC usecase.ResolverUsecase
	Logger     *slog.Logger
}

// EmergencyHandler serves the public scan endpoint.
type EmergencyHandler struct {
	resolverUC usecase.ResolverUsecase
	logger     *slog.Logger
}

// NewEmergencyHandler is the constructor for EmergencyHandler.
func NewEmergencyHandler(params EmergencyHandlerParams) *EmergencyHandler {
	return &EmergencyHandler{
		resolverUC: params.ResolverUC,
		logger:     params.Logger,
	}
}

// Resolve looks up the profile behind a scanned code. No authentication.
func (h *EmergencyHandler) Resolve(c echo.Context) error {
	profile, err := h.resolverUC.Resolve(c.Request().Context(), c.Param("code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return response.Success(c, http.StatusOK, newEmergencyResponse(profile))
}
