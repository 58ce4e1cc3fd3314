package responses

import (
	"reel-server/reel-api/internal/domain/video"
)

// VideoResponse pairs a metadata record with its playback URL.
type VideoResponse struct {
	Video       *video.Video `json:"video"`
	PlaybackURL string       `json:"playbackUrl"`
}

// BuildVideoResponse creates response from domain object
func BuildVideoResponse(v *video.Video, playbackURL string) *VideoResponse {
	return &VideoResponse{
		Video:       v,
		PlaybackURL: playbackURL,
	}
}

// VideoListResponse represents a populated listing.
type VideoListResponse struct {
	Videos  []VideoResponse `json:"videos"`
	Message string          `json:"message"`
}

// BuildVideoListResponse creates the listing response
func BuildVideoListResponse(items []video.ListItem) *VideoListResponse {
	videos := make([]VideoResponse, 0, len(items))
	for _, item := range items {
		videos = append(videos, VideoResponse{
			Video:       item.Video,
			PlaybackURL: item.PlaybackURL,
		})
	}
	return &VideoListResponse{
		Videos:  videos,
		Message: "success",
	}
}

// MessageResponse is the empty-state listing body. The shape diverges
// from the populated case on purpose; callers rely on it.
type MessageResponse struct {
	Message string `json:"message"`
}
