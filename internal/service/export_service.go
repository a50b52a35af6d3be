package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/storage"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrExportFailed: the log was built but could not be written to object storage.
var ErrExportFailed = errors.New("failed to export log")

// LogExport locates an exported log object.
type LogExport struct {
	ObjectKey   string `json:"key"`
	DownloadURL string `json:"url"`
}

// exportDocument is the JSON body written to object storage.
type exportDocument struct {
	ID         string            `json:"_id"`
	Username   string            `json:"username"`
	From       string            `json:"from"`
	To         string            `json:"to"`
	Count      int64             `json:"count"`
	Log        []domain.LogEntry `json:"log"`
	ExportedAt time.Time         `json:"exportedAt"`
}

type ExportService interface {
	ExportLog(ctx context.Context, userID primitive.ObjectID, filter domain.LogFilter) (*LogExport, error)
}

// exportService implements the ExportService interface.
type exportService struct {
	logs        LogService
	fileStorage storage.FileStorage
	urlExpiry   time.Duration
	now         func() time.Time
}

// NewExportService creates a new instance of exportService. A nil
// fileStorage yields a service that reports ErrExportDisabled.
func NewExportService(logs LogService, fileStorage storage.FileStorage, urlExpiry time.Duration, now func() time.Time) ExportService {
	if now == nil {
		now = time.Now
	}
	return &exportService{
		logs:        logs,
		fileStorage: fileStorage,
		urlExpiry:   urlExpiry,
		now:         now,
	}
}

// ExportLog writes the user's filtered log to object storage as JSON and
// returns a presigned download URL for it.
func (s *exportService) ExportLog(ctx context.Context, userID primitive.ObjectID, filter domain.LogFilter) (*LogExport, error) {
	if s.fileStorage == nil {
		return nil, ErrExportDisabled
	}

	userLog, err := s.logs.GetUserLog(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(exportDocument{
		ID:         userLog.User.ID.Hex(),
		Username:   userLog.User.Username,
		From:       userLog.Window.From.Format(domain.ISODateLayout),
		To:         userLog.Window.To.Format(domain.ISODateLayout),
		Count:      userLog.Count,
		Log:        userLog.Log,
		ExportedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %v", ErrExportFailed, err)
	}

	objectKey := path.Join("exports", userID.Hex(), uuid.NewString()+".json")
	if err := s.fileStorage.PutObject(ctx, objectKey, "application/json", body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, s.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return &LogExport{ObjectKey: objectKey, DownloadURL: url}, nil
}
