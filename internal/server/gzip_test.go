package server

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebasr/clinic-service/internal/models"
)

func TestGzipDecompression(t *testing.T) {
	tests := []struct {
		name     string
		compress bool
	}{
		{name: "Uncompressed request should work", compress: false},
		{name: "Gzip compressed request should work", compress: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestDeps()
			var captured *models.TreatmentRecord
			deps.treatments.CreateFunc = func(_ context.Context, r *models.TreatmentRecord) error {
				captured = r
				return nil
			}
			router := New(deps.Dependencies)

			payload, err := json.Marshal(map[string]interface{}{
				"name": "Ann", "sex": "F", "age": 30, "treat": "filling", "med": "none", "price": 500,
			})
			require.NoError(t, err)

			var body io.Reader = bytes.NewBuffer(payload)
			if tt.compress {
				var buf bytes.Buffer
				gz := gzip.NewWriter(&buf)
				_, err := gz.Write(payload)
				require.NoError(t, err)
				require.NoError(t, gz.Close())
				body = &buf
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/treatments", body)
			req.Header.Set("Content-Type", "application/json")
			if tt.compress {
				req.Header.Set("Content-Encoding", "gzip")
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
			require.NotNil(t, captured)
			assert.Equal(t, "Ann", captured.Name)
		})
	}
}

func TestGzipResponseCompression(t *testing.T) {
	deps := newTestDeps()
	router := New(deps.Dependencies)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	gz, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	decoded, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Contains(t, string(decoded), "All appointments fetched successfully")
}

func TestGzipInvalidData(t *testing.T) {
	router := New(newTestDeps().Dependencies)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/treatments", bytes.NewBufferString("not gzip data"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
