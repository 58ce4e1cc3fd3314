package video

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"reel-server/reel-api/internal/config"
	"reel-server/reel-api/internal/infrastructure/metrics"
	"reel-server/reel-api/internal/utils/platformerrors"
	"reel-server/reel-api/utils/videokey"
)

// Placeholder values recorded with every upload. Transcoding is out of
// scope, so these are never derived from the actual file.
var (
	placeholderFormats     = []string{"mp4", "avi"}
	placeholderResolutions = []string{"720p", "1080p"}
)

// Repository defines persistence operations needed by the service.
type Repository interface {
	Create(ctx context.Context, v *Video) error
	GetByVideoID(ctx context.Context, videoID string) (*Video, error)
	List(ctx context.Context) ([]*Video, error)
}

// Storage defines object store operations.
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

// Service orchestrates video upload and retrieval.
type Service struct {
	cfg     *config.Config
	repo    Repository
	storage Storage
	log     zerolog.Logger
}

func NewService(cfg *config.Config, repo Repository, storage Storage, log zerolog.Logger) *Service {
	return &Service{
		cfg:     cfg,
		repo:    repo,
		storage: storage,
		log:     log.With().Str("component", "video-service").Logger(),
	}
}

// Upload writes the raw bytes to the object store under a generated key,
// then records the metadata document. When the metadata write fails the
// just-written object is deleted so no orphan is left behind.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (*Video, error) {
	if len(req.Data) == 0 {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"no video file uploaded",
			nil,
			"3f6a8c1d-9e2b-4f7a-8d5c-0b1e2f3a4c5d",
		)
	}
	if int64(len(req.Data)) > s.cfg.MaxVideoBytes {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			fmt.Sprintf("video exceeds max size of %d bytes", s.cfg.MaxVideoBytes),
			nil,
			"5d0c2e4f-7a9b-4c1d-8e3f-6a5b4c3d2e1f",
		)
	}

	contentType := mimetype.Detect(req.Data).String()
	key := videokey.New(req.Filename)

	if err := s.storage.Upload(ctx, key, bytes.NewReader(req.Data), int64(len(req.Data)), contentType); err != nil {
		metrics.RecordUpload(contentType, "error", 0)
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeExternal,
			"failed to upload video to storage",
			err,
			"8e1f3a5c-2d4b-4e6f-9a7c-1b2d3e4f5a6b",
		)
	}

	v := &Video{
		VideoID:     key,
		Title:       req.Title,
		Description: req.Description,
		Format:      placeholderFormats,
		Resolutions: placeholderResolutions,
		UploadedAt:  time.Now().UTC(),
		UserID:      req.UserID,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.log.Error().Err(delErr).Str("key", key).Msg("failed to delete orphaned object after metadata write failure")
		}
		metrics.RecordUpload(contentType, "error", 0)
		return nil, err
	}

	metrics.RecordUpload(contentType, "success", int64(len(req.Data)))
	return v, nil
}

// Get returns the metadata record and a presigned playback URL. The URL
// is generated whether or not the underlying object still exists.
func (s *Service) Get(ctx context.Context, videoID string) (*Video, string, error) {
	v, err := s.repo.GetByVideoID(ctx, videoID)
	if err != nil {
		return nil, "", err
	}

	playbackURL, err := s.storage.PresignGet(ctx, v.VideoID, s.cfg.S3PresignTTL)
	if err != nil {
		return nil, "", platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeExternal,
			"failed to generate playback url",
			err,
			"6c2e4f5a-8b7d-4e9f-0a1b-3c4d5e6f7a8b",
		)
	}
	return v, playbackURL, nil
}

// List fetches every metadata record and presigns a playback URL for
// each, one at a time. There is no pagination.
func (s *Service) List(ctx context.Context) ([]ListItem, error) {
	videos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]ListItem, 0, len(videos))
	for _, v := range videos {
		playbackURL, err := s.storage.PresignGet(ctx, v.VideoID, s.cfg.S3PresignTTL)
		if err != nil {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerDomain,
				platformerrors.ErrorTypeExternal,
				"failed to generate playback url",
				err,
				"9d3e5f6a-0b1c-4d2e-8f7a-5b6c7d8e9f0a",
			)
		}
		items = append(items, ListItem{Video: v, PlaybackURL: playbackURL})
	}
	return items, nil
}
