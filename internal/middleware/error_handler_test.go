package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "funds-mover/internal/errors"
	"funds-mover/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo     *echo.Echo
	registry *prometheus.Registry
	handler  *ErrorHandler
	logs     *bytes.Buffer
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	logger, buf := newTestLogger()
	s.logs = buf
	s.registry = prometheus.NewRegistry()
	s.handler = NewErrorHandler(logger, s.registry)
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = s.handler.Handle
}

func (s *ErrorHandlerTestSuite) handle(err error) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	s.handler.Handle(err, c)
	return rec
}

func (s *ErrorHandlerTestSuite) decode(rec *httptest.ResponseRecorder) apierrors.ErrorResponse {
	var response apierrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError() {
	rec := s.handle(echo.NewHTTPError(http.StatusNotFound, "Resource not found"))

	s.Equal(http.StatusNotFound, rec.Code)

	response := s.decode(rec)
	s.Equal("SYSTEM_007", response.Error.Code)
	s.Equal("Resource not found", response.Error.Message)
	s.Equal("test-trace-id", response.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestMethodNotAllowed() {
	rec := s.handle(echo.ErrMethodNotAllowed)

	s.Equal(http.StatusMethodNotAllowed, rec.Code)
	s.Equal("VALIDATION_001", s.decode(rec).Error.Code)
}

func (s *ErrorHandlerTestSuite) TestGenericErrorHidesCause() {
	rec := s.handle(errors.New("disk on fire"))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", s.decode(rec).Error.Code)
	s.NotContains(rec.Body.String(), "disk on fire")
	s.Contains(s.logs.String(), "disk on fire")
	s.Contains(s.logs.String(), `"level":"ERROR"`)
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	err := validation.GetValidator().Struct(struct {
		Pin string `json:"pin" validate:"required,pin"`
	}{Pin: "12"})
	s.Require().Error(err)

	rec := s.handle(err)

	s.Equal(http.StatusBadRequest, rec.Code)

	response := s.decode(rec)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal([]string{"pin: must be exactly 4 digits"}, response.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsLeftAlone() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	s.Require().NoError(c.String(http.StatusOK, "done"))

	s.handler.Handle(errors.New("late failure"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("done", rec.Body.String())
}

func (s *ErrorHandlerTestSuite) TestCountsErrors() {
	s.handle(echo.ErrNotFound)
	s.handle(echo.ErrNotFound)

	s.Equal(float64(2), testutil.ToFloat64(s.handler.errorsTotal.WithLabelValues("SYSTEM_007", "", "404")))
}

func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode() {
	testCases := map[int]apierrors.ErrorCode{
		http.StatusBadRequest:          apierrors.ValidationGeneral,
		http.StatusNotFound:            apierrors.SystemNotFound,
		http.StatusTooManyRequests:     apierrors.SystemRateLimitExceeded,
		http.StatusInternalServerError: apierrors.SystemInternalError,
		http.StatusServiceUnavailable:  apierrors.SystemServiceUnavailable,
		http.StatusTeapot:              apierrors.SystemUnexpectedError,
	}

	for status, code := range testCases {
		s.Equal(code, mapHTTPStatusToErrorCode(status), "status %d", status)
	}
}
