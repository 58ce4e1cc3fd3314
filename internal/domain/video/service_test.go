package video

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reel-server/reel-api/internal/config"
	"reel-server/reel-api/internal/utils/platformerrors"
	"reel-server/reel-api/utils/videokey"
)

type fakeRepo struct {
	CreateFunc       func(ctx context.Context, v *Video) error
	GetByVideoIDFunc func(ctx context.Context, videoID string) (*Video, error)
	ListFunc         func(ctx context.Context) ([]*Video, error)
}

func (f *fakeRepo) Create(ctx context.Context, v *Video) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, v)
	}
	return nil
}

func (f *fakeRepo) GetByVideoID(ctx context.Context, videoID string) (*Video, error) {
	if f.GetByVideoIDFunc != nil {
		return f.GetByVideoIDFunc(ctx, videoID)
	}
	return nil, nil
}

func (f *fakeRepo) List(ctx context.Context) ([]*Video, error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	return nil, nil
}

type fakeStorage struct {
	uploads    []string
	deletes    []string
	presigned  []string
	uploadErr  error
	presignTTL time.Duration
}

func (f *fakeStorage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.uploads = append(f.uploads, key)
	return nil
}

func (f *fakeStorage) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	f.presigned = append(f.presigned, key)
	f.presignTTL = ttl
	return "https://reelapp.s3.amazonaws.com/" + key + "?X-Amz-Expires=3600", nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		MaxVideoBytes: 1 << 20,
		S3PresignTTL:  time.Hour,
	}
}

func TestServiceUpload(t *testing.T) {
	var created *Video
	repo := &fakeRepo{
		CreateFunc: func(ctx context.Context, v *Video) error {
			created = v
			return nil
		},
	}
	store := &fakeStorage{}
	svc := NewService(testConfig(), repo, store, zerolog.Nop())

	v, err := svc.Upload(context.Background(), UploadRequest{
		Title:    "my reel",
		UserID:   "7",
		Filename: "clip.mp4",
		Data:     []byte("fake video bytes"),
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.True(t, strings.HasSuffix(v.VideoID, "_clip.mp4"), "key %q", v.VideoID)
	_, err = videokey.Timestamp(v.VideoID)
	assert.NoError(t, err, "key should embed a parseable timestamp")

	require.Len(t, store.uploads, 1)
	assert.Equal(t, v.VideoID, store.uploads[0], "metadata key must match the object key")
	assert.Equal(t, created.VideoID, v.VideoID)

	assert.Equal(t, []string{"mp4", "avi"}, v.Format)
	assert.Equal(t, []string{"720p", "1080p"}, v.Resolutions)
	assert.WithinDuration(t, time.Now().UTC(), v.UploadedAt, time.Minute)
	assert.Empty(t, store.deletes)
}

func TestServiceUploadEmptyPayload(t *testing.T) {
	store := &fakeStorage{}
	svc := NewService(testConfig(), &fakeRepo{}, store, zerolog.Nop())

	_, err := svc.Upload(context.Background(), UploadRequest{Filename: "clip.mp4"})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	assert.Empty(t, store.uploads, "no storage write on rejected upload")
}

func TestServiceUploadTooLarge(t *testing.T) {
	cfg := testConfig()
	cfg.MaxVideoBytes = 4
	store := &fakeStorage{}
	svc := NewService(cfg, &fakeRepo{}, store, zerolog.Nop())

	_, err := svc.Upload(context.Background(), UploadRequest{
		Filename: "clip.mp4",
		Data:     []byte("too large"),
	})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	assert.Empty(t, store.uploads)
}

func TestServiceUploadCompensatesFailedMetadataWrite(t *testing.T) {
	repoErr := platformerrors.NewError(context.Background(), platformerrors.LayerRepository,
		platformerrors.ErrorTypeDatabaseError, "failed to create video metadata", errors.New("mongo down"), "")
	repo := &fakeRepo{
		CreateFunc: func(ctx context.Context, v *Video) error {
			return repoErr
		},
	}
	store := &fakeStorage{}
	svc := NewService(testConfig(), repo, store, zerolog.Nop())

	_, err := svc.Upload(context.Background(), UploadRequest{
		Filename: "clip.mp4",
		Data:     []byte("fake video bytes"),
	})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeDatabaseError))

	require.Len(t, store.uploads, 1)
	require.Len(t, store.deletes, 1)
	assert.Equal(t, store.uploads[0], store.deletes[0], "compensating delete must target the uploaded key")
}

func TestServiceUploadStorageFailure(t *testing.T) {
	repoCalled := false
	repo := &fakeRepo{
		CreateFunc: func(ctx context.Context, v *Video) error {
			repoCalled = true
			return nil
		},
	}
	store := &fakeStorage{uploadErr: errors.New("connection reset")}
	svc := NewService(testConfig(), repo, store, zerolog.Nop())

	_, err := svc.Upload(context.Background(), UploadRequest{
		Filename: "clip.mp4",
		Data:     []byte("fake video bytes"),
	})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal))
	assert.False(t, repoCalled, "no metadata write after a failed object write")
}

func TestServiceGet(t *testing.T) {
	repo := &fakeRepo{
		GetByVideoIDFunc: func(ctx context.Context, videoID string) (*Video, error) {
			return &Video{VideoID: videoID, Title: "my reel"}, nil
		},
	}
	store := &fakeStorage{}
	svc := NewService(testConfig(), repo, store, zerolog.Nop())

	v, playbackURL, err := svc.Get(context.Background(), "123_clip.mp4")
	require.NoError(t, err)
	assert.Equal(t, "123_clip.mp4", v.VideoID)
	assert.Contains(t, playbackURL, "123_clip.mp4")
	assert.Equal(t, time.Hour, store.presignTTL)
}

func TestServiceGetNotFound(t *testing.T) {
	repo := &fakeRepo{
		GetByVideoIDFunc: func(ctx context.Context, videoID string) (*Video, error) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound, "video not found", nil, "")
		},
	}
	store := &fakeStorage{}
	svc := NewService(testConfig(), repo, store, zerolog.Nop())

	_, _, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
	assert.Empty(t, store.presigned, "no presign for a missing record")
}

func TestServiceListEmpty(t *testing.T) {
	repo := &fakeRepo{
		ListFunc: func(ctx context.Context) ([]*Video, error) {
			return nil, nil
		},
	}
	store := &fakeStorage{}
	svc := NewService(testConfig(), repo, store, zerolog.Nop())

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Empty(t, store.presigned)
}

func TestServiceListPresignsEveryRecord(t *testing.T) {
	repo := &fakeRepo{
		ListFunc: func(ctx context.Context) ([]*Video, error) {
			return []*Video{
				{VideoID: "1_a.mp4"},
				{VideoID: "2_b.mp4"},
			}, nil
		},
	}
	store := &fakeStorage{}
	svc := NewService(testConfig(), repo, store, zerolog.Nop())

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, []string{"1_a.mp4", "2_b.mp4"}, store.presigned)
	assert.Equal(t, "1_a.mp4", items[0].Video.VideoID)
	assert.Contains(t, items[1].PlaybackURL, "2_b.mp4")
}
