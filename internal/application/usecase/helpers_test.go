package usecase

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"courseadmin/internal/client"
	"courseadmin/internal/domain"
	"courseadmin/internal/infrastructure/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// fakeAPI stands in for the upstream REST API.
type fakeAPI struct {
	mu      sync.Mutex
	routes  map[string]http.HandlerFunc
	hits    map[string]int
	queries map[string]url.Values
	bodies  map[string]string
}

func newFakeAPI(t *testing.T) (*fakeAPI, *client.API) {
	t.Helper()
	f := &fakeAPI{
		routes:  map[string]http.HandlerFunc{},
		hits:    map[string]int{},
		queries: map[string]url.Values{},
		bodies:  map[string]string{},
	}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, client.NewAPI(client.New(srv.URL, 5*time.Second, zerolog.Nop()))
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.hits[key]++
	f.queries[key] = r.URL.Query()
	f.bodies[key] = string(body)
	h, ok := f.routes[key]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"not found"}`)
		return
	}
	h(w, r)
}

func (f *fakeAPI) handle(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func (f *fakeAPI) handleFunc(method, path string, h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = h
}

func (f *fakeAPI) count(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[method+" "+path]
}

func (f *fakeAPI) query(method, path string) url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[method+" "+path]
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func newQueryCache(t *testing.T) *cache.QueryCache {
	_, rdb := newRedis(t)
	return cache.NewQueryCache(rdb, time.Minute)
}

type memoryAudit struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
	err     error
}

func (m *memoryAudit) Create(_ context.Context, e *domain.AuditEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, *e)
	return nil
}

func (m *memoryAudit) List(_ context.Context, f domain.AuditFilter) ([]domain.AuditEntry, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.AuditEntry
	for _, e := range m.entries {
		if f.Resource != "" && e.Resource != f.Resource {
			continue
		}
		out = append(out, e)
	}
	total := int64(len(out))
	if f.Offset >= len(out) {
		return nil, total, nil
	}
	end := f.Offset + f.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[f.Offset:end], total, nil
}

var testSession = domain.Session{
	ID:    "sid",
	Admin: domain.Admin{ID: "admin-1", Email: "root@example.com", Role: "admin"},
	Token: "upstream-token",
}
