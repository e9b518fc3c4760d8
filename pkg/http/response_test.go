package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "slotkeeper/pkg/errors"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation error",
			err:        apperrors.Validation("Booking validation failed", nil, map[string]any{"errors": []string{"x"}}),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apperrors.CodeValidation,
		},
		{
			name:       "invalid input",
			err:        apperrors.InvalidInput("bad"),
			wantStatus: http.StatusBadRequest,
			wantCode:   apperrors.CodeInvalidInput,
		},
		{
			name:       "plain error is hidden",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apperrors.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			require.NoError(t, WriteError(rec, tt.err))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body apperrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Units int `json:"units"`
	}

	tests := []struct {
		name     string
		body     string
		wantErr  bool
		wantCode int
	}{
		{name: "valid", body: `{"units": 3}`},
		{name: "empty", body: ``, wantErr: true, wantCode: http.StatusBadRequest},
		{name: "malformed", body: `{"units":`, wantErr: true, wantCode: http.StatusBadRequest},
		{name: "unknown field", body: `{"units": 3, "extra": true}`, wantErr: true, wantCode: http.StatusBadRequest},
		{name: "trailing document", body: `{"units": 3}{"units": 4}`, wantErr: true, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var dst payload
			err := DecodeJSON(req, &dst)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, 3, dst.Units)
				return
			}

			require.Error(t, err)
			appErr := apperrors.AsAppError(err)
			assert.Equal(t, tt.wantCode, appErr.StatusCode())
		})
	}
}

func TestDecodeJSON_TooLarge(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"units": 123456789}`))
	req.Body = http.MaxBytesReader(rec, req.Body, 4)

	var dst struct {
		Units int `json:"units"`
	}
	err := DecodeJSON(req, &dst)
	require.Error(t, err)
	assert.Equal(t, http.StatusRequestEntityTooLarge, apperrors.AsAppError(err).StatusCode())
}
