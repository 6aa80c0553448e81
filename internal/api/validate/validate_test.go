package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerID(t *testing.T) {
	assert.NoError(t, PlayerID("ABCDEF0123456789"))
	assert.NoError(t, PlayerID("abcdef12"))
	assert.Error(t, PlayerID(""))
	assert.Error(t, PlayerID("not-hex!"))
	assert.Error(t, PlayerID("0123456789ABCDEF0123456789ABCDEF00")) // 34 chars
}

func TestPageNumber(t *testing.T) {
	n, err := PageNumber("")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = PageNumber("3")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = PageNumber("0")
	assert.Error(t, err)
	_, err = PageNumber("abc")
	assert.Error(t, err)
}

func TestPageSize(t *testing.T) {
	n, err := PageSize("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, n)

	n, err = PageSize("50")
	require.NoError(t, err)
	assert.Equal(t, 50, n)

	_, err = PageSize("0")
	assert.Error(t, err)
	_, err = PageSize("101")
	assert.Error(t, err)
}

func TestTimestamp(t *testing.T) {
	ts, err := Timestamp("lastLoginAfter", "")
	require.NoError(t, err)
	assert.Nil(t, ts)

	ts, err = Timestamp("lastLoginAfter", "2026-08-01T00:00:00Z")
	require.NoError(t, err)
	require.NotNil(t, ts)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), ts.UTC())

	_, err = Timestamp("lastLoginAfter", "08/01/2026")
	assert.Error(t, err)
}
