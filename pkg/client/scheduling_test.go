package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/v1/bookings/proration", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"preview":"333.33","units":3}}`))
	})
	mux.HandleFunc("/api/v1/payments/validate", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set(requestIDHeader, "0b5c3b1e-7d1e-4c8e-9a53-3f1f0f3f6a10")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":"VALIDATION_ERROR","message":"Payment validation failed","details":{"errors":[{"field":"paymentIntentId","message":"paymentIntentId is required for stripe payments"}]}}`))
	})
	mux.HandleFunc("/api/v1/delivery-slots/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down\n"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSchedulingClient_Success(t *testing.T) {
	srv := newTestServer(t)
	c := NewSchedulingClient(srv.URL)

	var out struct {
		Preview string `json:"preview"`
		Units   int    `json:"units"`
	}
	err := c.ProrateBooking(context.Background(), map[string]any{"total": 1000, "units": 3}, &out)
	require.NoError(t, err)
	assert.Equal(t, "333.33", out.Preview)
	assert.Equal(t, 3, out.Units)
}

func TestSchedulingClient_ValidationError(t *testing.T) {
	srv := newTestServer(t)
	c := NewSchedulingClient(srv.URL)

	err := c.ValidatePayment(context.Background(), map[string]any{"provider": "stripe"}, nil)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
	require.Len(t, apiErr.Fields, 1)
	assert.Equal(t, "paymentIntentId", apiErr.Fields[0].Field)
	assert.NotEmpty(t, apiErr.RequestID)
	assert.Contains(t, apiErr.Error(), "paymentIntentId: ")
}

func TestSchedulingClient_NonJSONError(t *testing.T) {
	srv := newTestServer(t)
	c := NewSchedulingClient(srv.URL)

	err := c.DeliverySlotStatus(context.Background(), map[string]any{}, nil)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream down", apiErr.Message)
}

func TestWaitForHealthy(t *testing.T) {
	srv := newTestServer(t)
	assert.NoError(t, NewHttpClient(srv.URL).WaitForHealthy(context.Background(), time.Second))

	dead := NewHttpClient("http://127.0.0.1:1")
	assert.Error(t, dead.WaitForHealthy(context.Background(), 100*time.Millisecond))
}
