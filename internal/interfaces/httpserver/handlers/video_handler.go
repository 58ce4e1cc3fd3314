package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"reel-server/reel-api/internal/domain/video"
	"reel-server/reel-api/internal/interfaces/httpserver/responses"
)

// VideoService defines the domain operations the handler needs.
type VideoService interface {
	Upload(ctx context.Context, req video.UploadRequest) (*video.Video, error)
	Get(ctx context.Context, videoID string) (*video.Video, string, error)
	List(ctx context.Context) ([]video.ListItem, error)
}

// VideoHandler exposes video upload and playback endpoints.
type VideoHandler struct {
	service VideoService
	log     zerolog.Logger
}

func NewVideoHandler(service VideoService, log zerolog.Logger) *VideoHandler {
	return &VideoHandler{
		service: service,
		log:     log.With().Str("component", "video-handler").Logger(),
	}
}

// Upload godoc
// @Summary      Upload video
// @Description  Stores the raw bytes in the object store and records metadata.
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      plain
// @Param        video        formData  file    true   "Video file"
// @Param        title        formData  string  false  "Title"
// @Param        description  formData  string  false  "Description"
// @Param        userId       formData  string  false  "Owning user id"
// @Success      200  {string}  string  "Upload Success"
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /upload [post]
func (h *VideoHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{Message: "No video file uploaded"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.log.Error().Err(err).Msg("read upload failed")
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Message: "Error uploading video",
			Error:   err.Error(),
		})
		return
	}

	req := video.UploadRequest{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		UserID:      c.PostForm("userId"),
		Filename:    header.Filename,
		Data:        data,
	}

	v, err := h.service.Upload(c.Request.Context(), req)
	if err != nil {
		h.log.Error().Err(err).Msg("upload failed")
		responses.HandleError(c, err, responses.ErrorMessages{
			Failure: "Error uploading video",
			Echo:    true,
		})
		return
	}

	h.log.Info().Str("video_id", v.VideoID).Int("bytes", len(data)).Msg("video uploaded")
	c.String(http.StatusOK, "Upload Success")
}

// Get godoc
// @Summary      Fetch video
// @Description  Returns the metadata record and a presigned playback URL.
// @Tags         videos
// @Produce      json
// @Param        id   path      string  true  "Video id (storage key)"
// @Success      200  {object}  responses.VideoResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /video/{id} [get]
func (h *VideoHandler) Get(c *gin.Context) {
	id := c.Param("id")

	v, playbackURL, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Str("video_id", id).Msg("fetch video failed")
		responses.HandleError(c, err, responses.ErrorMessages{
			NotFound: "Video not found",
			Failure:  "Error retrieving video",
			Echo:     true,
		})
		return
	}

	c.JSON(http.StatusOK, responses.BuildVideoResponse(v, playbackURL))
}

// List godoc
// @Summary      List videos
// @Description  Returns every metadata record paired with a playback URL.
// @Tags         videos
// @Produce      json
// @Success      200  {object}  responses.VideoListResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list videos failed")
		responses.HandleError(c, err, responses.ErrorMessages{
			Failure: "Error retrieving video",
			Echo:    true,
		})
		return
	}

	if len(items) == 0 {
		c.JSON(http.StatusOK, responses.MessageResponse{
			Message: "Video list is empty. Please upload some videos",
		})
		return
	}

	c.JSON(http.StatusOK, responses.BuildVideoListResponse(items))
}
