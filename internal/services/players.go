package services

import (
	"context"
	"errors"
	"strings"

	"github.com/playlens/playlens/internal/model"
	"github.com/playlens/playlens/internal/playfab"
	"github.com/rs/zerolog"
)

// PlayerService is the player directory: it lists players by scanning
// upstream segments and fetches single profiles.
type PlayerService struct {
	client       *playfab.Client
	log          zerolog.Logger
	segmentBatch int
}

func NewPlayerService(client *playfab.Client, log zerolog.Logger, segmentBatch int) *PlayerService {
	return &PlayerService{client: client, log: log, segmentBatch: segmentBatch}
}

// ListPlayers enumerates every segment, deduplicates members by player id
// (first occurrence wins), applies the filter in-memory and paginates the
// result. A failed segment-membership fetch skips that segment; a failed
// segment listing is fatal.
func (s *PlayerService) ListPlayers(ctx context.Context, filter model.PlayerFilter) (*model.PaginatedPlayers, error) {
	segments, err := s.client.GetAllSegments(ctx)
	if err != nil {
		return nil, &model.UpstreamError{Op: "segment listing", Detail: err.Error()}
	}

	var matched []model.PlayerSummary
	seen := make(map[string]struct{})

	for _, seg := range segments {
		if seg.ID == "" {
			continue
		}
		profiles, err := s.client.GetPlayersInSegment(ctx, seg.ID, s.segmentBatch)
		if err != nil {
			// Best-effort directory: a broken segment is skipped, not fatal.
			s.log.Warn().Err(err).Str("segment_id", seg.ID).Msg("segment membership fetch failed, skipping")
			continue
		}
		for _, p := range profiles {
			if p.PlayerID == "" {
				continue
			}
			if _, dup := seen[p.PlayerID]; dup {
				continue
			}
			seen[p.PlayerID] = struct{}{}
			summary := toPlayerSummary(p)
			if matchesFilter(summary, filter) {
				matched = append(matched, summary)
			}
		}
	}

	if len(matched) == 0 {
		return model.NewPaginatedPlayers(nil, 0, filter.PageNumber, filter.PageSize), nil
	}

	total := len(matched)
	start := (filter.PageNumber - 1) * filter.PageSize
	if start > total {
		start = total
	}
	end := start + filter.PageSize
	if end > total {
		end = total
	}
	return model.NewPaginatedPlayers(matched[start:end], total, filter.PageNumber, filter.PageSize), nil
}

// GetPlayer fetches one full profile. Upstream "no such account" and an empty
// profile in a successful reply both surface as model.ErrNotFound.
func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (*model.PlayerProfile, error) {
	profile, err := s.client.GetPlayerProfile(ctx, playerID)
	if err != nil {
		var apiErr *playfab.APIError
		if errors.As(err, &apiErr) && apiErr.IsAccountNotFound() {
			return nil, model.ErrNotFound
		}
		return nil, &model.UpstreamError{Op: "profile fetch", Detail: err.Error()}
	}
	if profile == nil {
		return nil, model.ErrNotFound
	}
	return toPlayerProfile(profile), nil
}

func toPlayerSummary(p playfab.SegmentPlayerProfile) model.PlayerSummary {
	return model.PlayerSummary{
		PlayerID:            p.PlayerID,
		DisplayName:         p.DisplayName,
		LastLogin:           p.LastLogin,
		TotalValueUSD:       p.TotalValueUSD,
		LinkedAccountsCount: len(p.LinkedAccounts),
		StatisticsCount:     len(p.Statistics),
	}
}

func toPlayerProfile(p *playfab.PlayerProfileModel) *model.PlayerProfile {
	linked := make([]string, 0, len(p.LinkedAccounts))
	for _, la := range p.LinkedAccounts {
		linked = append(linked, la.Platform)
	}
	stats := make(map[string]interface{}, len(p.Statistics))
	for _, st := range p.Statistics {
		stats[st.Name] = st.Value
	}
	return &model.PlayerProfile{
		PlayerID:       p.PlayerID,
		DisplayName:    p.DisplayName,
		Created:        p.Created,
		LastLogin:      p.LastLogin,
		TotalValueUSD:  p.TotalValueUSD,
		LinkedAccounts: linked,
		Statistics:     stats,
	}
}

// matchesFilter applies the in-memory directory filter: case-insensitive
// substring match on id/display name, inclusive bounds on last login. Players
// without a last login are excluded once either bound is set.
func matchesFilter(p model.PlayerSummary, f model.PlayerFilter) bool {
	if f.SearchTerm != "" {
		term := strings.ToLower(f.SearchTerm)
		idMatch := strings.Contains(strings.ToLower(p.PlayerID), term)
		nameMatch := p.DisplayName != nil && strings.Contains(strings.ToLower(*p.DisplayName), term)
		if !idMatch && !nameMatch {
			return false
		}
	}
	if f.LastLoginAfter != nil {
		if p.LastLogin == nil || p.LastLogin.Before(*f.LastLoginAfter) {
			return false
		}
	}
	if f.LastLoginBefore != nil {
		if p.LastLogin == nil || p.LastLogin.After(*f.LastLoginBefore) {
			return false
		}
	}
	return true
}
