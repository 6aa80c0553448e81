package services

import (
	"context"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/playlens/playlens/internal/model"
	"github.com/rs/zerolog"
)

// AnalyticsService composes the profile, user-data, file and object accessors
// into one snapshot per player.
type AnalyticsService struct {
	players  *PlayerService
	userData *UserDataService
	files    *FileService
	objects  *ObjectService
	log      zerolog.Logger

	// now is swapped in tests to pin the derived day counts.
	now func() time.Time
}

func NewAnalyticsService(players *PlayerService, userData *UserDataService, files *FileService, objects *ObjectService, log zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{
		players:  players,
		userData: userData,
		files:    files,
		objects:  objects,
		log:      log,
		now:      time.Now,
	}
}

// GetAnalytics fans out the four sub-fetches concurrently and merges whatever
// settled successfully. The profile is the mandatory anchor: if it fails or is
// absent the snapshot carries only an error indicator. The user-data, file and
// object branches are optional enrichments; a failed branch leaves its section
// zero-valued without affecting the others.
func (s *AnalyticsService) GetAnalytics(ctx context.Context, playerID string) (*model.AnalyticsSnapshot, error) {
	var (
		wg sync.WaitGroup

		profile    *model.PlayerProfile
		profileErr error
		userData   *model.UserDataSnapshot
		files      *model.FileCollection
		objects    *model.ObjectCollection
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		profile, profileErr = s.players.GetPlayer(ctx, playerID)
	}()
	go func() {
		defer wg.Done()
		ud, err := s.userData.GetUserData(ctx, playerID, nil)
		if err != nil {
			s.log.Warn().Err(err).Str("player_id", playerID).Msg("user data unavailable for analytics")
			return
		}
		userData = ud
	}()
	go func() {
		defer wg.Done()
		fc, err := s.files.ListFiles(ctx, playerID)
		if err != nil {
			s.log.Warn().Err(err).Str("player_id", playerID).Msg("files unavailable for analytics")
			return
		}
		files = fc
	}()
	go func() {
		defer wg.Done()
		oc, err := s.objects.ListObjects(ctx, playerID)
		if err != nil {
			s.log.Warn().Err(err).Str("player_id", playerID).Msg("objects unavailable for analytics")
			return
		}
		objects = oc
	}()
	wg.Wait()

	snapshot := &model.AnalyticsSnapshot{
		PlayerID:          playerID,
		LinkedAccounts:    []string{},
		Statistics:        map[string]interface{}{},
		UserDataKeys:      []string{},
		FileTypeHistogram: map[string]int{},
		ObjectNames:       []string{},
	}

	if profileErr != nil {
		if profileErr == model.ErrNotFound {
			snapshot.Error = "player not found"
		} else {
			snapshot.Error = profileErr.Error()
		}
		return snapshot, nil
	}

	snapshot.DisplayName = "N/A"
	if profile.DisplayName != nil {
		snapshot.DisplayName = *profile.DisplayName
	}
	snapshot.Created = profile.Created
	snapshot.LastLogin = profile.LastLogin
	if profile.TotalValueUSD != nil {
		snapshot.TotalValueUSD = *profile.TotalValueUSD
	}
	if profile.LinkedAccounts != nil {
		snapshot.LinkedAccounts = profile.LinkedAccounts
	}
	if profile.Statistics != nil {
		snapshot.Statistics = profile.Statistics
	}
	snapshot.AccountAgeDays = daysSince(s.now(), profile.Created)
	snapshot.DaysSinceLastLogin = daysSince(s.now(), profile.LastLogin)

	if userData != nil {
		snapshot.UserDataKeyCount = len(userData.Data)
		snapshot.UserDataKeys = sortedKeys(userData.Data)
	}

	if files != nil {
		snapshot.FileCount = files.TotalFiles
		snapshot.TotalFileSizeBytes = files.TotalSizeBytes
		for _, f := range files.Files {
			ext := strings.ToLower(path.Ext(f.FileName))
			snapshot.FileTypeHistogram[ext]++
		}
	}

	if objects != nil {
		snapshot.ObjectCount = objects.TotalObjects
		snapshot.ProfileVersion = objects.ProfileVersion
		for _, o := range objects.Objects {
			snapshot.ObjectNames = append(snapshot.ObjectNames, o.ObjectName)
		}
	}

	return snapshot, nil
}

// daysSince returns whole days between now and t, 0 when t is absent.
func daysSince(now time.Time, t *time.Time) int {
	if t == nil {
		return 0
	}
	d := now.Sub(*t)
	if d < 0 {
		return 0
	}
	return int(d.Hours() / 24)
}

func sortedKeys(m map[string]model.UserDataRecord) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
