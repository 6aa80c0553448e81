// Package auth obtains and caches the title-level credential and resolves
// public player ids to upstream entity ids.
package auth

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/playlens/playlens/internal/model"
	"github.com/playlens/playlens/internal/playfab"
	"github.com/rs/zerolog"
)

// Gateway holds the single process-wide mutable piece of state: the cached
// title AuthContext. The slot is replaced atomically; concurrent redundant
// refreshes are tolerated (last write wins).
type Gateway struct {
	client *playfab.Client
	log    zerolog.Logger

	validity      time.Duration
	refreshBuffer time.Duration

	cached atomic.Pointer[model.AuthContext]

	// now is swapped in tests to steer the staleness check.
	now func() time.Time
}

// New creates a Gateway. Tokens are assumed valid for validity and refreshed
// refreshBuffer before that window closes.
func New(client *playfab.Client, log zerolog.Logger, validity, refreshBuffer time.Duration) *Gateway {
	return &Gateway{
		client:        client,
		log:           log,
		validity:      validity,
		refreshBuffer: refreshBuffer,
		now:           time.Now,
	}
}

// GetTitleToken returns the cached context while it is comfortably inside its
// validity window, otherwise acquires a fresh one and replaces the slot.
func (g *Gateway) GetTitleToken(ctx context.Context) (*model.AuthContext, error) {
	if cached := g.cached.Load(); cached != nil {
		if g.now().Before(cached.AcquiredAt.Add(g.validity - g.refreshBuffer)) {
			return cached, nil
		}
	}

	res, err := g.client.GetEntityToken(ctx)
	if err != nil {
		return nil, &model.AuthError{Detail: err.Error()}
	}

	fresh := &model.AuthContext{
		EntityToken: res.EntityToken,
		EntityID:    res.EntityID,
		EntityType:  res.EntityType,
		AcquiredAt:  g.now(),
	}
	g.cached.Store(fresh)
	g.log.Debug().Str("entity_id", fresh.EntityID).Msg("title token refreshed")
	return fresh, nil
}

// HealthPing verifies the upstream credential path by ensuring a usable title
// token, reusing the cache when it is still fresh.
func (g *Gateway) HealthPing(ctx context.Context) error {
	_, err := g.GetTitleToken(ctx)
	return err
}

// ResolvePlayerEntityID maps a public player id to the title-scoped entity id.
// Resolution is per-request; results are not cached.
func (g *Gateway) ResolvePlayerEntityID(ctx context.Context, playerID string) (string, error) {
	entityID, err := g.client.GetTitlePlayerAccountID(ctx, playerID)
	if err != nil {
		return "", &model.IdentityError{PlayerID: playerID, Detail: err.Error()}
	}
	if entityID == "" {
		return "", &model.IdentityError{PlayerID: playerID, Detail: "account info carried no title player account"}
	}
	return entityID, nil
}
