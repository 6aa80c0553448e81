package services

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/playlens/playlens/internal/auth"
	"github.com/playlens/playlens/internal/model"
	"github.com/playlens/playlens/internal/playfab"
	"github.com/rs/zerolog"
)

const defaultContentType = "application/octet-stream"

// FileService lists, downloads and sniffs player files. Listing is lenient:
// an upstream error yields an empty collection, never a visible failure.
type FileService struct {
	client  *playfab.Client
	gateway *auth.Gateway
	log     zerolog.Logger
}

func NewFileService(client *playfab.Client, gateway *auth.Gateway, log zerolog.Logger) *FileService {
	return &FileService{client: client, gateway: gateway, log: log}
}

// ListFiles resolves the entity id and lists file metadata. Identity
// resolution failure is fatal, but a failed file listing maps to an empty
// collection: files being unavailable is treated as "no files".
func (s *FileService) ListFiles(ctx context.Context, playerID string) (*model.FileCollection, error) {
	entityID, err := s.gateway.ResolvePlayerEntityID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	authCtx, err := s.gateway.GetTitleToken(ctx)
	if err != nil {
		return nil, err
	}

	metadata, err := s.client.GetFiles(ctx, entityID, authCtx.EntityToken)
	if err != nil {
		s.log.Warn().Err(err).Str("player_id", playerID).Msg("file listing failed, returning empty collection")
		return model.NewFileCollection(playerID, nil), nil
	}

	files := make([]model.FileMetadata, 0, len(metadata))
	for name, fm := range metadata {
		fileName := fm.FileName
		if fileName == "" {
			fileName = name
		}
		files = append(files, model.FileMetadata{
			FileName:     fileName,
			SizeBytes:    fm.Size,
			LastModified: fm.LastModified,
			ContentType:  defaultContentType,
			DownloadURL:  fm.DownloadURL,
		})
	}
	// Metadata arrives as a map; keep the listing order deterministic.
	sort.Slice(files, func(i, j int) bool { return files[i].FileName < files[j].FileName })

	return model.NewFileCollection(playerID, files), nil
}

// DownloadFile re-lists the player's files, locates the named entry and
// fetches its bytes from the signed URL. A missing entry, a missing URL or a
// transport error during retrieval all surface as model.ErrNotFound.
func (s *FileService) DownloadFile(ctx context.Context, playerID, fileName string) ([]byte, *model.FileMetadata, error) {
	collection, err := s.ListFiles(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}
	file := findFile(collection, fileName)
	if file == nil || file.DownloadURL == "" {
		return nil, nil, model.ErrNotFound
	}

	content, err := s.client.FetchURL(ctx, file.DownloadURL)
	if err != nil {
		s.log.Warn().Err(err).Str("file", fileName).Msg("file retrieval failed")
		return nil, nil, model.ErrNotFound
	}
	return content, file, nil
}

// AnalyzeFile downloads the file and, when its name or content type indicates
// CSV, sniffs headers and row count. Other content reports size and type with
// zero rows.
func (s *FileService) AnalyzeFile(ctx context.Context, playerID, fileName string) (*model.FileAnalysis, error) {
	content, file, err := s.DownloadFile(ctx, playerID, fileName)
	if err != nil {
		return nil, err
	}

	analysis := &model.FileAnalysis{
		FileName:    fileName,
		SizeBytes:   file.SizeBytes,
		ContentType: file.ContentType,
		Headers:     []string{},
		Metadata:    map[string]interface{}{},
	}

	if !isCSV(fileName, file.ContentType) {
		return analysis, nil
	}

	if !utf8.Valid(content) {
		return nil, &model.UpstreamError{Op: "file analysis", Detail: "file content is not valid UTF-8"}
	}

	lines := nonEmptyLines(string(content))
	analysis.RowCount = 0
	if len(lines) > 1 {
		analysis.RowCount = len(lines) - 1
	}
	if len(lines) > 0 {
		for _, h := range strings.Split(lines[0], ",") {
			analysis.Headers = append(analysis.Headers, strings.TrimSpace(h))
		}
	}
	analysis.Metadata["totalLines"] = len(lines)
	analysis.Metadata["hasHeaders"] = len(lines) > 0

	return analysis, nil
}

func findFile(c *model.FileCollection, fileName string) *model.FileMetadata {
	for i := range c.Files {
		if c.Files[i].FileName == fileName {
			return &c.Files[i]
		}
	}
	return nil
}

func isCSV(fileName, contentType string) bool {
	return strings.HasSuffix(strings.ToLower(fileName), ".csv") ||
		strings.Contains(strings.ToLower(contentType), "csv")
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
