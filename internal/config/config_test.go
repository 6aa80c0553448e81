package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaultsDerivesBaseURL(t *testing.T) {
	cfg := NewForTesting()
	assert.Equal(t, "https://TESTTITLE.playfabapi.com", cfg.UpstreamBaseURL)
}

func TestResolveDefaultsKeepsOverride(t *testing.T) {
	cfg := NewForTesting()
	cfg.UpstreamBaseURL = "http://localhost:9999"
	require.NoError(t, cfg.ResolveDefaults())
	assert.Equal(t, "http://localhost:9999", cfg.UpstreamBaseURL)
}

func TestResolveDefaultsRequiresCredentials(t *testing.T) {
	cfg := NewForTesting()
	cfg.TitleID = ""
	assert.Error(t, cfg.ResolveDefaults())

	cfg = NewForTesting()
	cfg.SecretKey = ""
	assert.Error(t, cfg.ResolveDefaults())
}

func TestResolveDefaultsValidatesRanges(t *testing.T) {
	cfg := NewForTesting()
	cfg.SegmentBatchSize = 0
	assert.Error(t, cfg.ResolveDefaults())

	cfg = NewForTesting()
	cfg.SegmentBatchSize = 20000
	assert.Error(t, cfg.ResolveDefaults())

	cfg = NewForTesting()
	cfg.TokenRefreshBufferSeconds = cfg.TokenValiditySeconds
	assert.Error(t, cfg.ResolveDefaults())
}

func TestGetHTTPAddr(t *testing.T) {
	cfg := NewForTesting()
	assert.Equal(t, ":8080", cfg.GetHTTPAddr())
}
