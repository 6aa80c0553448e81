package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedPlayersInvariants(t *testing.T) {
	cases := []struct {
		name        string
		totalCount  int
		pageNumber  int
		pageSize    int
		wantPages   int
		wantNext    bool
		wantPrev    bool
	}{
		{"empty", 0, 1, 20, 0, false, false},
		{"single partial page", 5, 1, 20, 1, false, false},
		{"exact multiple", 40, 1, 20, 2, true, false},
		{"middle page", 100, 3, 10, 10, true, true},
		{"last page", 100, 10, 10, 10, false, true},
		{"remainder rounds up", 101, 1, 10, 11, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaginatedPlayers(nil, tc.totalCount, tc.pageNumber, tc.pageSize)
			assert.Equal(t, tc.wantPages, p.TotalPages)
			assert.Equal(t, tc.wantNext, p.HasNextPage)
			assert.Equal(t, tc.wantPrev, p.HasPreviousPage)
			assert.NotNil(t, p.Items)
		})
	}
}

func TestNewFileCollectionDerivedTotals(t *testing.T) {
	files := []FileMetadata{
		{FileName: "a.csv", SizeBytes: 100},
		{FileName: "b.json", SizeBytes: 250},
		{FileName: "c.bin", SizeBytes: 7},
	}
	c := NewFileCollection("ABC123", files)
	assert.Equal(t, 3, c.TotalFiles)
	assert.Equal(t, int64(357), c.TotalSizeBytes)
}

func TestNewFileCollectionEmpty(t *testing.T) {
	c := NewFileCollection("ABC123", nil)
	assert.Equal(t, 0, c.TotalFiles)
	assert.Equal(t, int64(0), c.TotalSizeBytes)
	assert.NotNil(t, c.Files)
}

func TestNewObjectCollectionDerivedTotal(t *testing.T) {
	c := NewObjectCollection("ABC123", []ObjectRecord{{ObjectName: "loadout"}}, 4)
	assert.Equal(t, 1, c.TotalObjects)
	assert.Equal(t, 4, c.ProfileVersion)

	empty := NewObjectCollection("ABC123", nil, 0)
	assert.Equal(t, 0, empty.TotalObjects)
	assert.NotNil(t, empty.Objects)
}
