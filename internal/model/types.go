package model

import "time"

// AuthContext is an immutable title-level credential snapshot. It is never
// mutated after creation; refreshes replace the whole value.
type AuthContext struct {
	EntityToken string
	EntityID    string
	EntityType  string
	AcquiredAt  time.Time
}

// PlayerProfile is a full player snapshot fetched fresh per request.
type PlayerProfile struct {
	PlayerID       string                 `json:"playerId"`
	DisplayName    *string                `json:"displayName,omitempty"`
	Created        *time.Time             `json:"created,omitempty"`
	LastLogin      *time.Time             `json:"lastLogin,omitempty"`
	TotalValueUSD  *int                   `json:"totalValueToDateInUSD,omitempty"`
	LinkedAccounts []string               `json:"linkedAccounts"`
	Statistics     map[string]interface{} `json:"statistics"`
}

// PlayerSummary is the list-view projection of a profile: counts instead of
// the full linked-account and statistic lists.
type PlayerSummary struct {
	PlayerID            string     `json:"playerId"`
	DisplayName         *string    `json:"displayName,omitempty"`
	LastLogin           *time.Time `json:"lastLogin,omitempty"`
	TotalValueUSD       *int       `json:"totalValueToDateInUSD,omitempty"`
	LinkedAccountsCount int        `json:"linkedAccountsCount"`
	StatisticsCount     int        `json:"statisticsCount"`
}

// UserDataRecord is a single key/value entry from the player's data store.
type UserDataRecord struct {
	Key         string     `json:"key"`
	Value       string     `json:"value"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
	Permission  *uint      `json:"permission,omitempty"`
}

// UserDataSnapshot carries all (or a key-filtered subset of) records for one
// player plus the upstream data version counter.
type UserDataSnapshot struct {
	PlayerID    string                    `json:"playerId"`
	Data        map[string]UserDataRecord `json:"data"`
	DataVersion uint                      `json:"dataVersion"`
}

// FileMetadata describes one uploaded player file.
type FileMetadata struct {
	FileName     string    `json:"fileName"`
	SizeBytes    int64     `json:"fileSize"`
	LastModified time.Time `json:"lastModified"`
	ContentType  string    `json:"contentType"`
	DownloadURL  string    `json:"downloadUrl,omitempty"`
}

// FileCollection lists a player's files. TotalFiles and TotalSizeBytes are
// derived from Files; use NewFileCollection so they never drift.
type FileCollection struct {
	PlayerID       string         `json:"playerId"`
	Files          []FileMetadata `json:"files"`
	TotalFiles     int            `json:"totalFiles"`
	TotalSizeBytes int64          `json:"totalSizeBytes"`
}

// NewFileCollection builds a collection with the derived totals computed from
// the file list. A nil list yields a valid empty collection.
func NewFileCollection(playerID string, files []FileMetadata) *FileCollection {
	if files == nil {
		files = []FileMetadata{}
	}
	var total int64
	for _, f := range files {
		total += f.SizeBytes
	}
	return &FileCollection{
		PlayerID:       playerID,
		Files:          files,
		TotalFiles:     len(files),
		TotalSizeBytes: total,
	}
}

// FileAnalysis is the CSV sniff result for one file. Non-CSV content keeps
// RowCount 0 and Headers empty while still reporting size and content type.
type FileAnalysis struct {
	FileName    string                 `json:"fileName"`
	SizeBytes   int64                  `json:"fileSize"`
	ContentType string                 `json:"contentType"`
	RowCount    int                    `json:"rowCount"`
	Headers     []string               `json:"headers"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// ObjectRecord is one arbitrary JSON object attached to a player. The objects
// API does not report modification time, so LastModified stays nil.
type ObjectRecord struct {
	ObjectName   string      `json:"objectName"`
	Data         interface{} `json:"objectData"`
	LastModified *time.Time  `json:"lastModified,omitempty"`
}

// ObjectCollection lists a player's objects with the upstream snapshot version.
type ObjectCollection struct {
	PlayerID       string         `json:"playerId"`
	Objects        []ObjectRecord `json:"objects"`
	TotalObjects   int            `json:"totalObjects"`
	ProfileVersion int            `json:"profileVersion"`
}

// NewObjectCollection derives TotalObjects from the object list.
func NewObjectCollection(playerID string, objects []ObjectRecord, profileVersion int) *ObjectCollection {
	if objects == nil {
		objects = []ObjectRecord{}
	}
	return &ObjectCollection{
		PlayerID:       playerID,
		Objects:        objects,
		TotalObjects:   len(objects),
		ProfileVersion: profileVersion,
	}
}

// AnalyticsSnapshot merges the profile with user data, files and objects for
// one player. Optional sections are zero-valued (never null) when their fetch
// failed; Error is set only when the anchor profile fetch itself failed.
type AnalyticsSnapshot struct {
	PlayerID           string                 `json:"playerId"`
	DisplayName        string                 `json:"displayName"`
	Created            *time.Time             `json:"created,omitempty"`
	LastLogin          *time.Time             `json:"lastLogin,omitempty"`
	TotalValueUSD      int                    `json:"totalValueToDateInUSD"`
	LinkedAccounts     []string               `json:"linkedAccounts"`
	Statistics         map[string]interface{} `json:"statistics"`
	AccountAgeDays     int                    `json:"accountAgeDays"`
	DaysSinceLastLogin int                    `json:"daysSinceLastLogin"`

	UserDataKeyCount int      `json:"userDataKeyCount"`
	UserDataKeys     []string `json:"userDataKeys"`

	FileCount          int            `json:"fileCount"`
	TotalFileSizeBytes int64          `json:"totalFileSizeBytes"`
	FileTypeHistogram  map[string]int `json:"fileTypes"`

	ObjectCount    int      `json:"objectCount"`
	ProfileVersion int      `json:"profileVersion"`
	ObjectNames    []string `json:"objectNames"`

	Error string `json:"error,omitempty"`
}

// PlayerFilter captures the list-view query.
type PlayerFilter struct {
	SearchTerm      string
	LastLoginAfter  *time.Time
	LastLoginBefore *time.Time
	PageNumber      int
	PageSize        int
}

// PaginatedPlayers is one page of the player directory.
type PaginatedPlayers struct {
	Items           []PlayerSummary `json:"items"`
	TotalCount      int             `json:"totalCount"`
	PageNumber      int             `json:"pageNumber"`
	PageSize        int             `json:"pageSize"`
	TotalPages      int             `json:"totalPages"`
	HasNextPage     bool            `json:"hasNextPage"`
	HasPreviousPage bool            `json:"hasPreviousPage"`
}

// NewPaginatedPlayers computes the page arithmetic:
// TotalPages == ceil(TotalCount/PageSize), HasNextPage == PageNumber < TotalPages,
// HasPreviousPage == PageNumber > 1.
func NewPaginatedPlayers(items []PlayerSummary, totalCount, pageNumber, pageSize int) *PaginatedPlayers {
	if items == nil {
		items = []PlayerSummary{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}
	return &PaginatedPlayers{
		Items:           items,
		TotalCount:      totalCount,
		PageNumber:      pageNumber,
		PageSize:        pageSize,
		TotalPages:      totalPages,
		HasNextPage:     pageNumber < totalPages,
		HasPreviousPage: pageNumber > 1,
	}
}
