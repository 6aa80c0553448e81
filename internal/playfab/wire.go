package playfab

import "time"

// Wire-level request/response shapes for the upstream title API. Every call is
// a POST returning {code, status, data} on success or
// {code, status, error, errorCode, errorMessage} on failure.

type errorBody struct {
	Code         int    `json:"code"`
	Status       string `json:"status"`
	ErrorName    string `json:"error"`
	ErrorCode    int    `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// /Authentication/GetEntityToken

type getEntityTokenRequest struct{}

type getEntityTokenResponse struct {
	Data struct {
		EntityToken string `json:"EntityToken"`
		Entity      struct {
			ID   string `json:"Id"`
			Type string `json:"Type"`
		} `json:"Entity"`
		TokenExpiration *time.Time `json:"TokenExpiration"`
	} `json:"data"`
}

// /Admin/GetUserAccountInfo

type getUserAccountInfoRequest struct {
	PlayFabID string `json:"PlayFabId"`
}

type getUserAccountInfoResponse struct {
	Data struct {
		UserInfo struct {
			TitleInfo struct {
				TitlePlayerAccount *struct {
					ID string `json:"Id"`
				} `json:"TitlePlayerAccount"`
			} `json:"TitleInfo"`
		} `json:"UserInfo"`
	} `json:"data"`
}

// /Admin/GetAllSegments

type getAllSegmentsResponse struct {
	Data struct {
		Segments []Segment `json:"Segments"`
	} `json:"data"`
}

// Segment is an upstream-defined named grouping of players.
type Segment struct {
	ID   string `json:"Id"`
	Name string `json:"Name"`
}

// /Admin/GetPlayersInSegment

type getPlayersInSegmentRequest struct {
	SegmentID    string `json:"SegmentId"`
	MaxBatchSize int    `json:"MaxBatchSize"`
}

type getPlayersInSegmentResponse struct {
	Data struct {
		PlayerProfiles []SegmentPlayerProfile `json:"PlayerProfiles"`
	} `json:"data"`
}

// SegmentPlayerProfile is the abbreviated profile returned by segment
// membership listing.
type SegmentPlayerProfile struct {
	PlayerID       string     `json:"PlayerId"`
	DisplayName    *string    `json:"DisplayName"`
	LastLogin      *time.Time `json:"LastLogin"`
	TotalValueUSD  *int       `json:"TotalValueToDateInUSD"`
	LinkedAccounts []struct {
		Platform string `json:"Platform"`
	} `json:"LinkedAccounts"`
	Statistics []struct {
		Name  string `json:"Name"`
		Value int    `json:"Value"`
	} `json:"Statistics"`
}

// /Server/GetPlayerProfile

type getPlayerProfileRequest struct {
	PlayFabID          string                 `json:"PlayFabId"`
	ProfileConstraints playerProfileViewFlags `json:"ProfileConstraints"`
}

type playerProfileViewFlags struct {
	ShowDisplayName    bool `json:"ShowDisplayName"`
	ShowCreated        bool `json:"ShowCreated"`
	ShowLastLogin      bool `json:"ShowLastLogin"`
	ShowStatistics     bool `json:"ShowStatistics"`
	ShowLinkedAccounts bool `json:"ShowLinkedAccounts"`
}

type getPlayerProfileResponse struct {
	Data struct {
		PlayerProfile *PlayerProfileModel `json:"PlayerProfile"`
	} `json:"data"`
}

// PlayerProfileModel is the full profile projection.
type PlayerProfileModel struct {
	PlayerID       string     `json:"PlayerId"`
	DisplayName    *string    `json:"DisplayName"`
	Created        *time.Time `json:"Created"`
	LastLogin      *time.Time `json:"LastLogin"`
	TotalValueUSD  *int       `json:"TotalValueToDateInUSD"`
	LinkedAccounts []struct {
		Platform string `json:"Platform"`
	} `json:"LinkedAccounts"`
	Statistics []struct {
		Name  string `json:"Name"`
		Value int    `json:"Value"`
	} `json:"Statistics"`
}

// /Admin/GetUserData

type getUserDataRequest struct {
	PlayFabID string   `json:"PlayFabId"`
	Keys      []string `json:"Keys,omitempty"`
}

// UserDataResult carries the raw key/value container and its version counter.
type UserDataResult struct {
	Data        map[string]UserDataValue `json:"Data"`
	DataVersion uint                     `json:"DataVersion"`
}

type getUserDataResponse struct {
	Data UserDataResult `json:"data"`
}

// UserDataValue is one stored value with bookkeeping fields.
type UserDataValue struct {
	Value       string     `json:"Value"`
	LastUpdated *time.Time `json:"LastUpdated"`
	Permission  *string    `json:"Permission"`
}

// /Data/GetFiles

type entityKey struct {
	ID   string `json:"Id"`
	Type string `json:"Type"`
}

type getFilesRequest struct {
	Entity entityKey `json:"Entity"`
}

type getFilesResponse struct {
	Data struct {
		Metadata map[string]FileMetadataWire `json:"Metadata"`
	} `json:"data"`
}

// FileMetadataWire is the per-file entry of the files listing.
type FileMetadataWire struct {
	FileName     string    `json:"FileName"`
	Size         int64     `json:"Size"`
	LastModified time.Time `json:"LastModified"`
	DownloadURL  string    `json:"DownloadUrl"`
	Checksum     string    `json:"Checksum"`
}

// /Data/GetObjects

type getObjectsRequest struct {
	Entity       entityKey `json:"Entity"`
	EscapeObject bool      `json:"EscapeObject"`
}

// ObjectsResult is the object listing plus its snapshot revision.
type ObjectsResult struct {
	Objects        map[string]ObjectWire `json:"Objects"`
	ProfileVersion int                   `json:"ProfileVersion"`
}

type getObjectsResponse struct {
	Data ObjectsResult `json:"data"`
}

// ObjectWire is one stored object; DataObject is arbitrary JSON.
type ObjectWire struct {
	ObjectName string      `json:"ObjectName"`
	DataObject interface{} `json:"DataObject"`
}
