package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feybrew/cauldron/internal/handler"
)

type stubPool struct {
	pingErr error
}

func (p *stubPool) Ping(ctx context.Context) error { return p.pingErr }

func (p *stubPool) Close() {}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.HandleHealthz()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handler.ProbeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Empty(t, resp.Checks)
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Database reachable", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		rec := httptest.NewRecorder()
		handler.HandleReadyz(&stubPool{})(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp handler.ProbeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "ok", resp.Checks["database"])
	})

	t.Run("Database down", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		rec := httptest.NewRecorder()
		handler.HandleReadyz(&stubPool{pingErr: errors.New("dial refused")})(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp handler.ProbeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "unavailable", resp.Status)
		assert.Equal(t, "unreachable", resp.Checks["database"])
	})
}
