package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/playlens/playlens/internal/auth"
	"github.com/playlens/playlens/internal/platform/logger"
	"github.com/playlens/playlens/internal/playfab"
)

// fakeUpstream is an httptest stand-in for the title API. Tests register a
// handler per upstream path; unregistered paths fail the test.
type fakeUpstream struct {
	t      *testing.T
	srv    *httptest.Server
	routes map[string]http.HandlerFunc
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	t.Helper()
	f := &fakeUpstream{t: t, routes: map[string]http.HandlerFunc{}}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := f.routes[r.URL.Path]; ok {
			h(w, r)
			return
		}
		f.t.Errorf("unexpected upstream call: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeUpstream) handle(path string, h http.HandlerFunc) { f.routes[path] = h }

// handleData registers a handler replying {code:200, status:"OK", data: data}.
func (f *fakeUpstream) handleData(path string, data interface{}) {
	f.handle(path, func(w http.ResponseWriter, r *http.Request) {
		writeUpstreamOK(w, data)
	})
}

// handleError registers a handler replying an upstream error body.
func (f *fakeUpstream) handleError(path string, status int, errorName, message string) {
	f.handle(path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code":         status,
			"status":       http.StatusText(status),
			"error":        errorName,
			"errorCode":    1000,
			"errorMessage": message,
		})
	})
}

// stubAuth registers working token and account-info endpoints so accessors
// that resolve identities can proceed.
func (f *fakeUpstream) stubAuth(entityID string) {
	f.handleData("/Authentication/GetEntityToken", map[string]interface{}{
		"EntityToken": "test-token",
		"Entity":      map[string]string{"Id": "title-entity", "Type": "title"},
	})
	f.handleData("/Admin/GetUserAccountInfo", map[string]interface{}{
		"UserInfo": map[string]interface{}{
			"TitleInfo": map[string]interface{}{
				"TitlePlayerAccount": map[string]string{"Id": entityID},
			},
		},
	})
}

func (f *fakeUpstream) client() *playfab.Client {
	return playfab.New(f.srv.URL, "test-secret", 5*time.Second)
}

func (f *fakeUpstream) gateway() *auth.Gateway {
	return auth.New(f.client(), logger.New("test"), time.Hour, 5*time.Minute)
}

func writeUpstreamOK(w http.ResponseWriter, data interface{}) {
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":   200,
		"status": "OK",
		"data":   data,
	})
}
