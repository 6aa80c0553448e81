package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/playlens/playlens/internal/model"
	"github.com/playlens/playlens/internal/platform/logger"
	"github.com/playlens/playlens/internal/playfab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) (*Gateway, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := playfab.New(srv.URL, "test-secret", 5*time.Second)
	return New(client, logger.New("test"), time.Hour, 5*time.Minute), srv
}

func tokenResponse(token string) map[string]interface{} {
	return map[string]interface{}{
		"code":   200,
		"status": "OK",
		"data": map[string]interface{}{
			"EntityToken": token,
			"Entity":      map[string]string{"Id": "title-entity", "Type": "title"},
		},
	}
}

func TestGetTitleTokenCachesWithinWindow(t *testing.T) {
	var calls atomic.Int32
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_ = json.NewEncoder(w).Encode(tokenResponse("tok-1"))
	})

	t0 := time.Now()
	g.now = func() time.Time { return t0 }

	first, err := g.GetTitleToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", first.EntityToken)
	require.EqualValues(t, 1, calls.Load())

	// At T0+50min the context is still inside the window: no refresh.
	g.now = func() time.Time { return t0.Add(50 * time.Minute) }
	cached, err := g.GetTitleToken(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, cached)
	assert.EqualValues(t, 1, calls.Load())

	// At T0+56min the 5-minute buffer has been crossed: refresh.
	g.now = func() time.Time { return t0.Add(56 * time.Minute) }
	refreshed, err := g.GetTitleToken(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, first, refreshed)
	assert.EqualValues(t, 2, calls.Load())
}

func TestGetTitleTokenUpstreamErrorIncludesDetail(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 401, "status": "Unauthorized",
			"error": "NotAuthenticated", "errorCode": 1074,
			"errorMessage": "invalid secret key",
		})
	})

	_, err := g.GetTitleToken(context.Background())
	require.Error(t, err)
	var authErr *model.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, authErr.Error(), "invalid secret key")
}

func TestGetTitleTokenRejectsEmptyToken(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(tokenResponse(""))
	})

	_, err := g.GetTitleToken(context.Background())
	var authErr *model.AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestResolvePlayerEntityID(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 200, "status": "OK",
			"data": map[string]interface{}{
				"UserInfo": map[string]interface{}{
					"TitleInfo": map[string]interface{}{
						"TitlePlayerAccount": map[string]string{"Id": "entity-42"},
					},
				},
			},
		})
	})

	id, err := g.ResolvePlayerEntityID(context.Background(), "ABCDEF0123456789")
	require.NoError(t, err)
	assert.Equal(t, "entity-42", id)
}

func TestResolvePlayerEntityIDMissingAccount(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 200, "status": "OK",
			"data": map[string]interface{}{"UserInfo": map[string]interface{}{}},
		})
	})

	_, err := g.ResolvePlayerEntityID(context.Background(), "ABCDEF0123456789")
	var idErr *model.IdentityError
	require.ErrorAs(t, err, &idErr)
	assert.Equal(t, "ABCDEF0123456789", idErr.PlayerID)
}

func TestResolvePlayerEntityIDUpstreamError(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 500, "status": "InternalServerError",
			"error": "ServiceUnavailable", "errorMessage": "upstream exploded",
		})
	})

	_, err := g.ResolvePlayerEntityID(context.Background(), "ABCDEF0123456789")
	var idErr *model.IdentityError
	require.ErrorAs(t, err, &idErr)
	assert.Contains(t, idErr.Error(), "upstream exploded")
}
