package services

import (
	"context"
	"sort"

	"github.com/playlens/playlens/internal/auth"
	"github.com/playlens/playlens/internal/model"
	"github.com/playlens/playlens/internal/playfab"
	"github.com/rs/zerolog"
)

// ObjectService lists a player's arbitrary JSON objects. Same leniency policy
// as the file accessor: an upstream listing error yields an empty collection.
type ObjectService struct {
	client  *playfab.Client
	gateway *auth.Gateway
	log     zerolog.Logger
}

func NewObjectService(client *playfab.Client, gateway *auth.Gateway, log zerolog.Logger) *ObjectService {
	return &ObjectService{client: client, gateway: gateway, log: log}
}

// ListObjects resolves the entity id and fetches the object set with
// pass-through (unescaped) payloads.
func (s *ObjectService) ListObjects(ctx context.Context, playerID string) (*model.ObjectCollection, error) {
	entityID, err := s.gateway.ResolvePlayerEntityID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	authCtx, err := s.gateway.GetTitleToken(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.client.GetObjects(ctx, entityID, authCtx.EntityToken)
	if err != nil {
		s.log.Warn().Err(err).Str("player_id", playerID).Msg("object listing failed, returning empty collection")
		return model.NewObjectCollection(playerID, nil, 0), nil
	}

	objects := make([]model.ObjectRecord, 0, len(res.Objects))
	for name, obj := range res.Objects {
		objectName := obj.ObjectName
		if objectName == "" {
			objectName = name
		}
		objects = append(objects, model.ObjectRecord{
			ObjectName: objectName,
			Data:       obj.DataObject,
			// The objects API does not report modification time.
			LastModified: nil,
		})
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].ObjectName < objects[j].ObjectName })

	return model.NewObjectCollection(playerID, objects, res.ProfileVersion), nil
}
