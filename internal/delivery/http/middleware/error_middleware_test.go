package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger/internal/delivery/http/response"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/errors"
)

func handleError(t *testing.T, err error) (int, response.Response) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestHandleHTTPError_ConflictRendersAsFail(t *testing.T) {
	code, body := handleError(t, domainerrors.ErrCompanyAlreadyAdhered.WrapMessage("adhere failed"))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, response.StatusFail, body.Status)
	assert.Equal(t, "A company with this CUIT already exists", body.Message)
}

func TestHandleHTTPError_AuthenticationRendersAsFail(t *testing.T) {
	code, body := handleError(t, domainerrors.ErrInvalidCredentials.WrapMessage("login failed"))

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, response.StatusFail, body.Status)
	assert.Equal(t, "Invalid username or password", body.Message)
}

func TestHandleHTTPError_DatabaseErrorRendersAsError(t *testing.T) {
	code, body := handleError(t, domainerrors.NewDatabaseExecuteError(errors.New("boom"), "insert failed"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, response.StatusError, body.Status)
}

func TestHandleHTTPError_UnmatchedRouteRendersAsFail(t *testing.T) {
	code, body := handleError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, response.StatusFail, body.Status)
}

func TestHandleHTTPError_UnknownErrorRendersAsInternal(t *testing.T) {
	code, body := handleError(t, errors.New("something unexpected"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, response.StatusError, body.Status)
	assert.Equal(t, "Internal server error", body.Message)
}

func TestHandleHTTPError_WrappedAppErrorKeepsStatus(t *testing.T) {
	wrapped := errors.Wrap(domainerrors.ErrForbidden.WrapMessage("role user is not allowed"), "middleware")

	code, body := handleError(t, wrapped)

	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, response.StatusFail, body.Status)
}
