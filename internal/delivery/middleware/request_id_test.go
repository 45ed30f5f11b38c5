package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "adcopy/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "reuses client id", incoming: "req-123"},
		{name: "generates id when missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID, echoID string
			var hasLogger bool
			mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			err := mw.Process(func(c echo.Context) error {
				ctx := c.Request().Context()
				ctxID = deliverycontext.GetRequestIDFromContext(ctx)
				echoID = deliverycontext.GetRequestID(c)
				hasLogger = deliverycontext.GetLoggerOrDefault(ctx, nil) != nil
				return nil
			})(c)

			require.NoError(t, err)
			require.NotEmpty(t, ctxID)
			assert.Equal(t, ctxID, echoID)
			assert.Equal(t, ctxID, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.True(t, hasLogger)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, ctxID)
			}
		})
	}
}
