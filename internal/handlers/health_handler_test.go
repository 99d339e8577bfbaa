package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"funds-mover/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	testCases := []struct {
		name       string
		storeErr   error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "healthy store",
			wantStatus: http.StatusOK,
			wantBody:   `"status":"healthy"`,
		},
		{
			name:       "unreachable store",
			storeErr:   errors.New("connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "SYSTEM_003",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ledger := service_mocks.NewMockLedgerServiceInterface(ctrl)
			ledger.EXPECT().HealthCheck().Return(tc.storeErr)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			logger, logs := newTestLogger()
			handler := NewHealthCheckHandler(ledger, logger)
			require.NoError(t, handler.HealthCheck(c))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantBody)
			assert.NotContains(t, rec.Body.String(), "connection refused")
			if tc.storeErr != nil {
				assert.Contains(t, logs.String(), `"msg":"health check failed"`)
				assert.Contains(t, logs.String(), "connection refused")
			} else {
				assert.Empty(t, logs.String())
			}
		})
	}
}
