// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for route registration

package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/code-sentinel/services/review/engine"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter() *gin.Engine {
	router := gin.New()
	SetupRoutes(router, engine.NewGenerator(), nil)
	return router
}

func TestSetupRoutes_ProbeEndpoints(t *testing.T) {
	router := newRouter()

	tests := []struct {
		path string
		key  string
		want string
	}{
		{"/", "message", "Code-Sentinel API is running"},
		{"/health", "status", "healthy"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", tt.path, nil)
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.want, body[tt.key])
		})
	}
}

func TestSetupRoutes_ReviewEndToEnd(t *testing.T) {
	router := newRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/review",
		bytes.NewBufferString(`{"code": "x=1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Len(t, body["findings"], 3)
}

func TestSetupRoutes_MetricsEndpoint(t *testing.T) {
	router := newRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/metrics", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
