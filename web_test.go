/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanReadableSize(t *testing.T) {
	assert.Equal(t, "0 B", humanReadableSize(0))
	assert.Equal(t, "999 B", humanReadableSize(999))
	assert.Equal(t, "1.0 kB", humanReadableSize(1000))
	assert.Equal(t, "1.5 MB", humanReadableSize(1_500_000))
}

func TestRealIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1:5555", realIP(r))

	r.Header.Set("X-Real-IP", "192.0.2.7")
	assert.Equal(t, "192.0.2.7:5555", realIP(r))

	r.Header.Set("CF-Connecting-IP", "2001:db8::1")
	assert.Equal(t, "[2001:db8::1]:5555", realIP(r))

	r.Header.Set("CF-Connecting-IP", "not-an-ip")
	assert.Equal(t, "10.0.0.1:5555", realIP(r))
}

func TestOptionalRoutes(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.seed = 1
	cfg.prefix = "/games"

	engine, err := loadEngine(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mux, gm := newRouter(ctx, cfg, engine, make(chan error, 8))
	defer gm.shutdown()

	get := func(path string) int {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		return w.Code
	}

	assert.Equal(t, http.StatusNotFound, get("/games/metrics"))
	assert.Equal(t, http.StatusNotFound, get("/games/pprof/heap"))
	assert.Equal(t, http.StatusOK, get("/games/healthz"))
	assert.Equal(t, http.StatusNotFound, get("/healthz"))
	assert.Equal(t, http.StatusTemporaryRedirect, get("/games/guess"))

	cfg.metrics = true
	cfg.profile = true

	mux, gm = newRouter(ctx, cfg, engine, make(chan error, 8))
	defer gm.shutdown()

	assert.Equal(t, http.StatusOK, get("/games/metrics"))
	assert.Equal(t, http.StatusOK, get("/games/pprof/heap"))
}

func TestSecurityHeaders(t *testing.T) {
	cfg := newTestConfig(t)

	w := httptest.NewRecorder()
	securityHeaders(cfg, w)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))

	cfg.tlsCert, cfg.tlsKey = "cert.pem", "key.pem"
	w = httptest.NewRecorder()
	securityHeaders(cfg, w)
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
}
