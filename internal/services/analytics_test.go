package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/playlens/playlens/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyticsService(up *fakeUpstream) *AnalyticsService {
	log := logger.New("test")
	client := up.client()
	gateway := up.gateway()
	players := NewPlayerService(client, log, 1000)
	userData := NewUserDataService(client)
	files := NewFileService(client, gateway, log)
	objects := NewObjectService(client, gateway, log)
	return NewAnalyticsService(players, userData, files, objects, log)
}

func stubHealthyProfile(up *fakeUpstream, created, lastLogin time.Time) {
	up.handleData("/Server/GetPlayerProfile", map[string]interface{}{
		"PlayerProfile": map[string]interface{}{
			"PlayerId":              "ABCDEF0123456789",
			"DisplayName":           "alpha",
			"Created":               created.Format(time.RFC3339),
			"LastLogin":             lastLogin.Format(time.RFC3339),
			"TotalValueToDateInUSD": 100,
			"LinkedAccounts":        []map[string]string{{"Platform": "Steam"}},
			"Statistics":            []map[string]interface{}{{"Name": "wins", "Value": 5}},
		},
	})
}

func TestGetAnalyticsMergesAllSections(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	created := now.AddDate(0, 0, -100)
	lastLogin := now.AddDate(0, 0, -3)

	up := newFakeUpstream(t)
	up.stubAuth("entity-1")
	stubHealthyProfile(up, created, lastLogin)
	up.handleData("/Admin/GetUserData", map[string]interface{}{
		"Data": map[string]interface{}{
			"level": map[string]interface{}{"Value": "42"},
			"xp":    map[string]interface{}{"Value": "9000"},
		},
		"DataVersion": 2,
	})
	stubFiles(up, map[string][]byte{
		"scores.csv": []byte("a,b\n1,2\n"),
		"extra.csv":  []byte("x\n"),
		"save.bin":   {0x01, 0x02},
	})
	up.handleData("/Data/GetObjects", map[string]interface{}{
		"Objects": map[string]interface{}{
			"loadout": map[string]interface{}{"ObjectName": "loadout", "DataObject": map[string]interface{}{}},
		},
		"ProfileVersion": 5,
	})

	svc := newAnalyticsService(up)
	svc.now = func() time.Time { return now }

	snap, err := svc.GetAnalytics(context.Background(), "ABCDEF0123456789")
	require.NoError(t, err)
	assert.Empty(t, snap.Error)

	assert.Equal(t, "alpha", snap.DisplayName)
	assert.Equal(t, 100, snap.TotalValueUSD)
	assert.Equal(t, 100, snap.AccountAgeDays)
	assert.Equal(t, 3, snap.DaysSinceLastLogin)

	assert.Equal(t, 2, snap.UserDataKeyCount)
	assert.Equal(t, []string{"level", "xp"}, snap.UserDataKeys)

	assert.Equal(t, 3, snap.FileCount)
	assert.Equal(t, map[string]int{".csv": 2, ".bin": 1}, snap.FileTypeHistogram)

	assert.Equal(t, 1, snap.ObjectCount)
	assert.Equal(t, 5, snap.ProfileVersion)
	assert.Equal(t, []string{"loadout"}, snap.ObjectNames)
}

func TestGetAnalyticsToleratesUserDataFailure(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	up := newFakeUpstream(t)
	up.stubAuth("entity-1")
	stubHealthyProfile(up, now.AddDate(0, 0, -10), now.AddDate(0, 0, -1))
	up.handleError("/Admin/GetUserData", http.StatusInternalServerError, "ServiceUnavailable", "data store down")
	stubFiles(up, map[string][]byte{"save.bin": {0x01}})
	up.handleData("/Data/GetObjects", map[string]interface{}{
		"Objects":        map[string]interface{}{"o1": map[string]interface{}{"ObjectName": "o1"}},
		"ProfileVersion": 1,
	})

	svc := newAnalyticsService(up)
	svc.now = func() time.Time { return now }

	snap, err := svc.GetAnalytics(context.Background(), "ABCDEF0123456789")
	require.NoError(t, err, "an optional branch failure must not fail the aggregate")
	assert.Empty(t, snap.Error)

	// Profile, files and objects still contribute.
	assert.Equal(t, "alpha", snap.DisplayName)
	assert.Equal(t, 1, snap.FileCount)
	assert.Equal(t, 1, snap.ObjectCount)

	// The user-data section stays zero-valued, not null and not an error.
	assert.Equal(t, 0, snap.UserDataKeyCount)
	assert.NotNil(t, snap.UserDataKeys)
	assert.Empty(t, snap.UserDataKeys)
}

func TestGetAnalyticsProfileIsMandatoryAnchor(t *testing.T) {
	up := newFakeUpstream(t)
	up.stubAuth("entity-1")
	up.handleError("/Server/GetPlayerProfile", http.StatusBadRequest, "AccountNotFound", "no such player")
	up.handleData("/Admin/GetUserData", map[string]interface{}{
		"Data":        map[string]interface{}{"k": map[string]interface{}{"Value": "v"}},
		"DataVersion": 1,
	})
	stubFiles(up, map[string][]byte{"save.bin": {0x01}})
	up.handleData("/Data/GetObjects", map[string]interface{}{"ProfileVersion": 1})

	snap, err := newAnalyticsService(up).GetAnalytics(context.Background(), "ABCDEF0123456789")
	require.NoError(t, err)
	assert.Equal(t, "player not found", snap.Error)

	// No partial profile fields leak through.
	assert.Empty(t, snap.DisplayName)
	assert.Equal(t, 0, snap.FileCount)
	assert.Equal(t, 0, snap.UserDataKeyCount)
	assert.Equal(t, 0, snap.ObjectCount)
}

func TestGetAnalyticsMissingTimestampsYieldZeroDays(t *testing.T) {
	up := newFakeUpstream(t)
	up.stubAuth("entity-1")
	up.handleData("/Server/GetPlayerProfile", map[string]interface{}{
		"PlayerProfile": map[string]interface{}{"PlayerId": "ABCDEF0123456789"},
	})
	up.handleData("/Admin/GetUserData", map[string]interface{}{"DataVersion": 0})
	up.handleData("/Data/GetFiles", map[string]interface{}{"Metadata": map[string]interface{}{}})
	up.handleData("/Data/GetObjects", map[string]interface{}{"ProfileVersion": 0})

	snap, err := newAnalyticsService(up).GetAnalytics(context.Background(), "ABCDEF0123456789")
	require.NoError(t, err)
	assert.Equal(t, 0, snap.AccountAgeDays)
	assert.Equal(t, 0, snap.DaysSinceLastLogin)
	assert.Equal(t, "N/A", snap.DisplayName)
}
