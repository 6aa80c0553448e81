// Package playfab is a thin resty client for the upstream title API. It knows
// the wire contracts and auth headers; failure policy belongs to the callers.
package playfab

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// TitlePlayerEntityType tags resolved entity ids on data-plane calls.
const TitlePlayerEntityType = "title_player_account"

// APIError is a structured upstream failure (non-2xx or explicit error body).
type APIError struct {
	HTTPStatus   int
	ErrorName    string
	ErrorMessage string
}

func (e *APIError) Error() string {
	if e.ErrorMessage != "" {
		return fmt.Sprintf("%s (%s)", e.ErrorMessage, e.ErrorName)
	}
	return fmt.Sprintf("upstream status %d", e.HTTPStatus)
}

// IsAccountNotFound reports whether the upstream rejected the call because the
// referenced player account does not exist.
func (e *APIError) IsAccountNotFound() bool {
	switch e.ErrorName {
	case "AccountNotFound", "PlayerNotFound", "UserNotFound":
		return true
	}
	return e.HTTPStatus == http.StatusNotFound
}

// EntityTokenResult is the outcome of a token acquisition.
type EntityTokenResult struct {
	EntityToken string
	EntityID    string
	EntityType  string
}

// Client issues calls against one title's upstream endpoint.
type Client struct {
	http      *resty.Client
	secretKey string
}

// New creates a Client for the given base URL and secret key. All calls share
// the one timeout; per-call contexts add cancellation on top.
func New(baseURL, secretKey string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &Client{http: c, secretKey: secretKey}
}

// post issues one upstream call and decodes the success body into out.
// A non-2xx response is decoded into an *APIError.
func (c *Client) post(ctx context.Context, path, authHeader, authValue string, body, out interface{}) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(authHeader, authValue).
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("upstream request %s: %w", path, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		var eb errorBody
		apiErr := &APIError{HTTPStatus: resp.StatusCode()}
		if jsonErr := json.Unmarshal(resp.Body(), &eb); jsonErr == nil {
			apiErr.ErrorName = eb.ErrorName
			apiErr.ErrorMessage = eb.ErrorMessage
		}
		return apiErr
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) postAdmin(ctx context.Context, path string, body, out interface{}) error {
	return c.post(ctx, path, "X-SecretKey", c.secretKey, body, out)
}

// GetEntityToken acquires a title-level entity token.
func (c *Client) GetEntityToken(ctx context.Context) (*EntityTokenResult, error) {
	var out getEntityTokenResponse
	if err := c.postAdmin(ctx, "/Authentication/GetEntityToken", &getEntityTokenRequest{}, &out); err != nil {
		return nil, err
	}
	if out.Data.EntityToken == "" {
		return nil, &APIError{HTTPStatus: http.StatusOK, ErrorMessage: "response contained no entity token"}
	}
	return &EntityTokenResult{
		EntityToken: out.Data.EntityToken,
		EntityID:    out.Data.Entity.ID,
		EntityType:  out.Data.Entity.Type,
	}, nil
}

// GetTitlePlayerAccountID looks up account info for a public player id and
// returns the title-scoped entity id, empty when upstream has no mapping.
func (c *Client) GetTitlePlayerAccountID(ctx context.Context, playFabID string) (string, error) {
	var out getUserAccountInfoResponse
	req := getUserAccountInfoRequest{PlayFabID: playFabID}
	if err := c.postAdmin(ctx, "/Admin/GetUserAccountInfo", &req, &out); err != nil {
		return "", err
	}
	acct := out.Data.UserInfo.TitleInfo.TitlePlayerAccount
	if acct == nil {
		return "", nil
	}
	return acct.ID, nil
}

// GetAllSegments enumerates the title's player segments.
func (c *Client) GetAllSegments(ctx context.Context) ([]Segment, error) {
	var out getAllSegmentsResponse
	if err := c.postAdmin(ctx, "/Admin/GetAllSegments", struct{}{}, &out); err != nil {
		return nil, err
	}
	return out.Data.Segments, nil
}

// GetPlayersInSegment lists segment members, capped at maxBatchSize.
func (c *Client) GetPlayersInSegment(ctx context.Context, segmentID string, maxBatchSize int) ([]SegmentPlayerProfile, error) {
	var out getPlayersInSegmentResponse
	req := getPlayersInSegmentRequest{SegmentID: segmentID, MaxBatchSize: maxBatchSize}
	if err := c.postAdmin(ctx, "/Admin/GetPlayersInSegment", &req, &out); err != nil {
		return nil, err
	}
	return out.Data.PlayerProfiles, nil
}

// GetPlayerProfile fetches a full profile with every projection enabled.
// Returns nil when the profile is absent from an otherwise successful reply.
func (c *Client) GetPlayerProfile(ctx context.Context, playFabID string) (*PlayerProfileModel, error) {
	var out getPlayerProfileResponse
	req := getPlayerProfileRequest{
		PlayFabID: playFabID,
		ProfileConstraints: playerProfileViewFlags{
			ShowDisplayName:    true,
			ShowCreated:        true,
			ShowLastLogin:      true,
			ShowStatistics:     true,
			ShowLinkedAccounts: true,
		},
	}
	if err := c.postAdmin(ctx, "/Server/GetPlayerProfile", &req, &out); err != nil {
		return nil, err
	}
	return out.Data.PlayerProfile, nil
}

// GetUserData fetches the player's key/value container, optionally filtered to
// the given keys.
func (c *Client) GetUserData(ctx context.Context, playFabID string, keys []string) (*UserDataResult, error) {
	var out getUserDataResponse
	req := getUserDataRequest{PlayFabID: playFabID, Keys: keys}
	if err := c.postAdmin(ctx, "/Admin/GetUserData", &req, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// GetFiles lists file metadata for a resolved entity, authenticated with the
// title entity token.
func (c *Client) GetFiles(ctx context.Context, entityID, entityToken string) (map[string]FileMetadataWire, error) {
	var out getFilesResponse
	req := getFilesRequest{Entity: entityKey{ID: entityID, Type: TitlePlayerEntityType}}
	if err := c.post(ctx, "/Data/GetFiles", "X-EntityToken", entityToken, &req, &out); err != nil {
		return nil, err
	}
	return out.Data.Metadata, nil
}

// GetObjects lists the entity's objects without pre-escaping their payloads.
func (c *Client) GetObjects(ctx context.Context, entityID, entityToken string) (*ObjectsResult, error) {
	var out getObjectsResponse
	req := getObjectsRequest{
		Entity:       entityKey{ID: entityID, Type: TitlePlayerEntityType},
		EscapeObject: false,
	}
	if err := c.post(ctx, "/Data/GetObjects", "X-EntityToken", entityToken, &req, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// FetchURL retrieves raw bytes from a signed download URL. The URL is
// pre-authenticated, so no auth header is attached.
func (c *Client) FetchURL(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &APIError{HTTPStatus: resp.StatusCode()}
	}
	return resp.Body(), nil
}
