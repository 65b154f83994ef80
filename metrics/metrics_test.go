package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstancesDoNotCollide(t *testing.T) {
	a, b := New(), New()
	a.CacheLookup(true)
	assert.Equal(t, 1.0, testutil.ToFloat64(a.CacheHits))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.CacheHits))
}

func TestObserveRender(t *testing.T) {
	m := New()
	m.ObserveRender("home", ResultOK, 3*time.Millisecond)
	m.ObserveRender("home", ResultOK, 4*time.Millisecond)
	m.ObserveRender("page", ResultNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Renders.WithLabelValues("home", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Renders.WithLabelValues("page", ResultNotFound)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RenderDuration))
}

func TestCacheLookup(t *testing.T) {
	m := New()
	m.CacheLookup(false)
	m.CacheLookup(false)
	m.CacheLookup(true)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHits))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheMisses))
}

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	m := New()

	r := mux.NewRouter()
	r.Use(m.Middleware)
	r.HandleFunc("/preview/{slug}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, slug := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/preview/"+slug, nil))
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/preview/{slug}", "GET", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPRequests))
}

func TestHandler(t *testing.T) {
	m := New()
	m.CacheLookup(true)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "storefront_preview_cache_hits_total 1"))
	assert.True(t, strings.Contains(string(body), "go_goroutines"))
}
