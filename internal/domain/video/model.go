package video

import "time"

// Video represents stored video metadata. VideoID doubles as the
// object-store key the raw bytes live under.
type Video struct {
	VideoID     string    `json:"videoId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Format      []string  `json:"format"`
	Resolutions []string  `json:"resolutions"`
	UploadedAt  time.Time `json:"uploadedAt"`
	UserID      string    `json:"userId"`
}

// UploadRequest carries one multipart upload through the service.
type UploadRequest struct {
	Title       string
	Description string
	UserID      string
	Filename    string
	Data        []byte
}

// ListItem pairs a metadata record with its playback URL.
type ListItem struct {
	Video       *Video
	PlaybackURL string
}
