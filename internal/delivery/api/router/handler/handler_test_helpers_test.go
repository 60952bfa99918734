package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "lifelink/internal/delivery/api/middleware"
	"lifelink/internal/delivery/api/validator"
	"lifelink/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(newTestLogger()).HandleHTTPError

	return e
}

// testRequest describes one handler invocation.
type testRequest struct {
	method  string
	path    string
	body    string
	params  map[string]string
	query   string
	userID  uuid.UUID
	roles   entity.Roles
	handler func(echo.Context) error
}

// serve runs the handler and routes a returned error through the echo error handler.
func serve(t *testing.T, tr testRequest) *httptest.ResponseRecorder {
	t.Helper()

	e := newTestEcho()

	target := tr.path
	if tr.query != "" {
		target += "?" + tr.query
	}

	var body io.Reader
	if tr.body != "" {
		body = strings.NewReader(tr.body)
	}

	req := httptest.NewRequest(tr.method, target, body)
	if tr.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if len(tr.params) > 0 {
		names := make([]string, 0, len(tr.params))
		values := make([]string, 0, len(tr.params))
		for k, v := range tr.params {
			names = append(names, k)
			values = append(values, v)
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}

	if tr.userID != uuid.Nil {
		c.Set("userID", tr.userID)
		c.Set("roles", tr.roles)
	}

	if err := tr.handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}

// envelope mirrors the JSON response body.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	env := decodeEnvelope(t, rec)
	require.Nil(t, env.Error, rec.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	require.Equal(t, code, env.Error.Code)
}
