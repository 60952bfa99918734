package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"lifelink/internal/delivery/api/response"
	deliverycontext "lifelink/internal/delivery/context"
	"lifelink/internal/usecase"
	"lifelink/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const snapshotFilename = "lifelink-snapshot.json"

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	CodeUC     usecase.CodeUsecase
	SnapshotUC usecase.SnapshotUsecase
	Logger     *slog.Logger
}

// AdminHandler serves code issuance, reporting and snapshot endpoints.
type AdminHandler struct {
	codeUC     usecase.CodeUsecase
	snapshotUC usecase.SnapshotUsecase
	logger     *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		codeUC:     params.CodeUC,
		snapshotUC: params.SnapshotUC,
		logger:     params.Logger,
	}
}

// GetStats returns dashboard totals.
func (h *AdminHandler) GetStats(c echo.Context) error {
	stats, err := h.codeUC.GetStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// ListCodes returns one page of codes, optionally filtered by status.
func (h *AdminHandler) ListCodes(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return response.BindingError(c, "INVALID_INPUT", "page must be a positive integer")
		}
		page = parsed
	}

	result, err := h.codeUC.ListCodes(c.Request().Context(), usecase.ListCodesInput{
		Status: c.QueryParam("status"),
		Page:   page,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, codePageResponse{
		Codes:      newCodeResponses(result.Codes),
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	})
}

// IssueCodes mints one code, or count codes when a body is given.
func (h *AdminHandler) IssueCodes(c echo.Context) error {
	var req issueCodesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid issue input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	count := req.Count
	if count == 0 {
		count = 1
	}

	codes, err := h.codeUC.IssueCodes(c.Request().Context(), count)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newCodeResponses(codes))
}

// RenderCodePNG returns the printable QR image for a code.
func (h *AdminHandler) RenderCodePNG(c echo.Context) error {
	png, err := h.codeUC.RenderCodePNG(c.Request().Context(), c.Param("code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}

// ExportSnapshot downloads every collection as one JSON document.
func (h *AdminHandler) ExportSnapshot(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.snapshotUC.Export(c.Request().Context(), &buf); err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Snapshot exported",
		slog.String("size", util.FormatBytes(int64(buf.Len()))),
	)

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+snapshotFilename+`"`)

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, buf.Bytes())
}

// ImportSnapshot upserts every record of an uploaded snapshot.
func (h *AdminHandler) ImportSnapshot(c echo.Context) error {
	result, err := h.snapshotUC.Import(c.Request().Context(), c.Request().Body)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Snapshot imported",
		slog.Int("users", result.Users),
		slog.Int("profiles", result.Profiles),
		slog.Int("codes", result.Codes),
	)

	return response.Success(c, http.StatusOK, result)
}
