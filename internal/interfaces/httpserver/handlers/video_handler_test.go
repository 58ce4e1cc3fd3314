package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"reel-server/reel-api/internal/domain/video"
	"reel-server/reel-api/internal/interfaces/httpserver/handlers"
	"reel-server/reel-api/internal/utils/platformerrors"
)

// MockVideoService is a mock implementation of handlers.VideoService.
type MockVideoService struct {
	UploadFunc func(ctx context.Context, req video.UploadRequest) (*video.Video, error)
	GetFunc    func(ctx context.Context, videoID string) (*video.Video, string, error)
	ListFunc   func(ctx context.Context) ([]video.ListItem, error)
}

func (m *MockVideoService) Upload(ctx context.Context, req video.UploadRequest) (*video.Video, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockVideoService) Get(ctx context.Context, videoID string) (*video.Video, string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, videoID)
	}
	return nil, "", nil
}

func (m *MockVideoService) List(ctx context.Context) ([]video.ListItem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func setupVideoTestRouter(handler *handlers.VideoHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/upload", handler.Upload)
	r.GET("/video/:id", handler.Get)
	r.GET("/videos", handler.List)
	return r
}

func multipartUpload(t *testing.T, fields map[string]string, fileField, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, writer.FormDataContentType()
}

func TestVideoHandler_Upload(t *testing.T) {
	mockService := &MockVideoService{
		UploadFunc: func(ctx context.Context, req video.UploadRequest) (*video.Video, error) {
			if req.Title != "my reel" {
				t.Errorf("Expected title 'my reel', got %q", req.Title)
			}
			if req.Filename != "clip.mp4" {
				t.Errorf("Expected filename 'clip.mp4', got %q", req.Filename)
			}
			if string(req.Data) != "fake video bytes" {
				t.Errorf("Unexpected payload %q", req.Data)
			}
			return &video.Video{VideoID: "123_clip.mp4"}, nil
		},
	}

	handler := handlers.NewVideoHandler(mockService, zerolog.Nop())
	router := setupVideoTestRouter(handler)

	body, contentType := multipartUpload(t, map[string]string{
		"title":       "my reel",
		"description": "first upload",
		"userId":      "7",
	}, "video", "clip.mp4", []byte("fake video bytes"))

	req, _ := http.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Body.String() != "Upload Success" {
		t.Errorf("Expected plain 'Upload Success', got %q", w.Body.String())
	}
}

func TestVideoHandler_UploadMissingFile(t *testing.T) {
	called := false
	mockService := &MockVideoService{
		UploadFunc: func(ctx context.Context, req video.UploadRequest) (*video.Video, error) {
			called = true
			return nil, nil
		},
	}

	handler := handlers.NewVideoHandler(mockService, zerolog.Nop())
	router := setupVideoTestRouter(handler)

	body, contentType := multipartUpload(t, map[string]string{"title": "no file"}, "", "", nil)

	req, _ := http.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	if called {
		t.Error("Service should not be called without a file")
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["message"] != "No video file uploaded" {
		t.Errorf("Unexpected message %v", response["message"])
	}
}

func TestVideoHandler_UploadStorageFailure(t *testing.T) {
	mockService := &MockVideoService{
		UploadFunc: func(ctx context.Context, req video.UploadRequest) (*video.Video, error) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
				platformerrors.ErrorTypeExternal, "failed to upload video to storage",
				context.DeadlineExceeded, "")
		},
	}

	handler := handlers.NewVideoHandler(mockService, zerolog.Nop())
	router := setupVideoTestRouter(handler)

	body, contentType := multipartUpload(t, nil, "video", "clip.mp4", []byte("bytes"))

	req, _ := http.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["message"] != "Error uploading video" {
		t.Errorf("Unexpected message %v", response["message"])
	}
	if response["error"] == nil || response["error"] == "" {
		t.Error("Expected underlying error to be echoed")
	}
}

func TestVideoHandler_Get(t *testing.T) {
	uploadedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	mockService := &MockVideoService{
		GetFunc: func(ctx context.Context, videoID string) (*video.Video, string, error) {
			return &video.Video{
				VideoID:     videoID,
				Title:       "my reel",
				Format:      []string{"mp4", "avi"},
				Resolutions: []string{"720p", "1080p"},
				UploadedAt:  uploadedAt,
				UserID:      "7",
			}, "https://reelapp.s3.amazonaws.com/" + videoID + "?X-Amz-Signature=abc", nil
		},
	}

	handler := handlers.NewVideoHandler(mockService, zerolog.Nop())
	router := setupVideoTestRouter(handler)

	req, _ := http.NewRequest("GET", "/video/123_clip.mp4", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Video       map[string]interface{} `json:"video"`
		PlaybackURL string                 `json:"playbackUrl"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Video["videoId"] != "123_clip.mp4" {
		t.Errorf("Expected videoId '123_clip.mp4', got %v", response.Video["videoId"])
	}
	if response.PlaybackURL == "" {
		t.Error("Expected playbackUrl to be set")
	}
}

func TestVideoHandler_GetNotFound(t *testing.T) {
	mockService := &MockVideoService{
		GetFunc: func(ctx context.Context, videoID string) (*video.Video, string, error) {
			return nil, "", platformerrors.NewError(ctx, platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound, "video not found", nil, "")
		},
	}

	handler := handlers.NewVideoHandler(mockService, zerolog.Nop())
	router := setupVideoTestRouter(handler)

	req, _ := http.NewRequest("GET", "/video/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["message"] != "Video not found" {
		t.Errorf("Unexpected message %v", response["message"])
	}
}

func TestVideoHandler_ListEmpty(t *testing.T) {
	mockService := &MockVideoService{
		ListFunc: func(ctx context.Context) ([]video.ListItem, error) {
			return []video.ListItem{}, nil
		},
	}

	handler := handlers.NewVideoHandler(mockService, zerolog.Nop())
	router := setupVideoTestRouter(handler)

	req, _ := http.NewRequest("GET", "/videos", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["message"] != "Video list is empty. Please upload some videos" {
		t.Errorf("Unexpected message %v", response["message"])
	}
	if _, present := response["videos"]; present {
		t.Error("Empty listing must not carry a videos field")
	}
}

func TestVideoHandler_List(t *testing.T) {
	mockService := &MockVideoService{
		ListFunc: func(ctx context.Context) ([]video.ListItem, error) {
			return []video.ListItem{
				{
					Video:       &video.Video{VideoID: "1_a.mp4", Title: "a"},
					PlaybackURL: "https://reelapp.s3.amazonaws.com/1_a.mp4?sig=1",
				},
				{
					Video:       &video.Video{VideoID: "2_b.mp4", Title: "b"},
					PlaybackURL: "https://reelapp.s3.amazonaws.com/2_b.mp4?sig=2",
				},
			}, nil
		},
	}

	handler := handlers.NewVideoHandler(mockService, zerolog.Nop())
	router := setupVideoTestRouter(handler)

	req, _ := http.NewRequest("GET", "/videos", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Videos []struct {
			Video       map[string]interface{} `json:"video"`
			PlaybackURL string                 `json:"playbackUrl"`
		} `json:"videos"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Message != "success" {
		t.Errorf("Expected message 'success', got %q", response.Message)
	}
	if len(response.Videos) != 2 {
		t.Fatalf("Expected 2 videos, got %d", len(response.Videos))
	}
	if response.Videos[0].Video["videoId"] != "1_a.mp4" {
		t.Errorf("Unexpected first videoId %v", response.Videos[0].Video["videoId"])
	}
}
