package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adgenhq/adgen/internal/database"
	"github.com/adgenhq/adgen/internal/domain"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "validation", err: fmt.Errorf("%w: bad color", domain.ErrValidation), status: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("%w: campaign 7", domain.ErrNotFound), status: http.StatusNotFound},
		{name: "database not found", err: fmt.Errorf("%w: brand", database.ErrNotFound), status: http.StatusNotFound},
		{name: "conflict", err: fmt.Errorf("%w: already running", domain.ErrConflict), status: http.StatusConflict},
		{name: "bad id", err: errBadID, status: http.StatusBadRequest},
		{name: "unknown", err: errors.New("disk on fire"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/brands/1", nil)

			WriteError(rec, req, tt.err, nil)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tt.status == http.StatusInternalServerError {
				// Internal detail never leaks to the client.
				assert.Equal(t, "internal server error", body.Error)
			} else {
				assert.Equal(t, tt.err.Error(), body.Error)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := ParseID(raw)
		require.Error(t, err, raw)
	}
}
