/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplewatch/simplewatch/pkg/logger"
	"github.com/simplewatch/simplewatch/pkg/models"
)

func TestCreateService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/services", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.ServiceCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "storefront", req.Name)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Service{ID: 42, Name: req.Name, IsActive: true})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "secret", logger.NewTestLogger())

	service, err := c.CreateService(context.Background(), &models.ServiceCreateRequest{Name: "storefront"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), service.ID)
	assert.True(t, service.IsActive)
}

func TestCreateMonitor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/monitors", r.URL.Path)

		var req models.MonitorCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "website", req.MonitorType)
		assert.Equal(t, 5, req.IntervalMinutes)

		_ = json.NewEncoder(w).Encode(models.Monitor{
			ID:          7,
			ServiceID:   req.ServiceID,
			MonitorType: req.MonitorType,
			Config:      req.Config,
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", logger.NewTestLogger())

	monitor, err := c.CreateMonitor(context.Background(), &models.MonitorCreateRequest{
		ServiceID:       3,
		MonitorType:     "website",
		Config:          map[string]interface{}{"url": "https://example.com"},
		IntervalMinutes: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), monitor.ID)
	assert.Equal(t, "https://example.com", monitor.Config["url"])
}

func TestUpdateMonitor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/monitors/7", r.URL.Path)

		_ = json.NewEncoder(w).Encode(models.Monitor{ID: 7, IntervalMinutes: 30})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", logger.NewTestLogger())

	interval := 30
	monitor, err := c.UpdateMonitor(context.Background(), 7, &models.MonitorUpdateRequest{
		Config:          map[string]interface{}{"url": "https://example.com/v2"},
		IntervalMinutes: &interval,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, monitor.IntervalMinutes)
}

// Server error details must survive to the caller verbatim; the UI
// shows them without rewording.
func TestServerDetailSurfacesVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail": "Service with this name already exists"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", logger.NewTestLogger())

	_, err := c.CreateService(context.Background(), &models.ServiceCreateRequest{Name: "dup"})
	require.ErrorIs(t, err, errOperationFailed)
	assert.Contains(t, err.Error(), "Service with this name already exists")
}

func TestServerDetailFallbacks(t *testing.T) {
	assert.Equal(t, "boom", serverDetail([]byte("boom"), 500), "non-JSON bodies pass through raw")
	assert.Equal(t, "server returned status 502", serverDetail(nil, 502))
	assert.Equal(t, "nope", serverDetail([]byte(`{"detail": "nope"}`), 400))
}

func TestBaseURLTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/services/3", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.Service{ID: 3})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/", "", logger.NewTestLogger())

	service, err := c.GetService(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), service.ID)
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", logger.NewTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetMonitor(ctx, 1)
	require.Error(t, err)
}
