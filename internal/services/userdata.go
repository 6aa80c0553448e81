package services

import (
	"context"
	"errors"

	"github.com/playlens/playlens/internal/model"
	"github.com/playlens/playlens/internal/playfab"
)

// UserDataService fetches a player's key/value store. Unlike the file and
// object accessors it propagates upstream failures: callers must be able to
// tell "no data" apart from "fetch failed".
type UserDataService struct {
	client *playfab.Client
}

func NewUserDataService(client *playfab.Client) *UserDataService {
	return &UserDataService{client: client}
}

// GetUserData fetches all keys, or only the requested subset when keys is
// non-empty. A missing data container maps to model.ErrNotFound.
func (s *UserDataService) GetUserData(ctx context.Context, playerID string, keys []string) (*model.UserDataSnapshot, error) {
	res, err := s.client.GetUserData(ctx, playerID, keys)
	if err != nil {
		var apiErr *playfab.APIError
		if errors.As(err, &apiErr) && apiErr.IsAccountNotFound() {
			return nil, model.ErrNotFound
		}
		return nil, &model.UpstreamError{Op: "user data fetch", Detail: err.Error()}
	}
	if res == nil || res.Data == nil {
		return nil, model.ErrNotFound
	}

	snapshot := &model.UserDataSnapshot{
		PlayerID:    playerID,
		Data:        make(map[string]model.UserDataRecord, len(res.Data)),
		DataVersion: res.DataVersion,
	}
	for key, v := range res.Data {
		var perm *uint
		if v.Permission != nil {
			p := permissionLevel(*v.Permission)
			perm = &p
		}
		snapshot.Data[key] = model.UserDataRecord{
			Key:         key,
			Value:       v.Value,
			LastUpdated: v.LastUpdated,
			Permission:  perm,
		}
	}
	return snapshot, nil
}

// permissionLevel maps the upstream permission tag to its numeric level.
func permissionLevel(p string) uint {
	if p == "Public" {
		return 1
	}
	return 0
}
