package model

import "time"

// Video lifecycle states.
const (
	StatusDraft      = "draft"
	StatusProcessing = "processing"
	StatusPublished  = "published"
	StatusFailed     = "failed"
)

// Video is a generated video record. Created in "processing" state by the
// orchestrator; the render/upload step transitions it to "published" or "failed".
type Video struct {
	ID             int        `json:"id"`
	UserID         int        `json:"userId"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Tags           []string   `json:"tags,omitempty"`
	ThumbnailURL   *string    `json:"thumbnailUrl,omitempty"`
	VideoURL       *string    `json:"videoUrl,omitempty"`
	YouTubeVideoID *string    `json:"youtubeVideoId,omitempty"`
	Status         string     `json:"status"`
	Category       string     `json:"category"`
	TrendScore     int        `json:"trendScore"`
	PublishedAt    *time.Time `json:"publishedAt,omitempty"`
	ScheduledFor   *time.Time `json:"scheduledFor,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// NewVideo is the insert payload for a video record.
type NewVideo struct {
	UserID       int
	Title        string
	Description  string
	Tags         []string
	ThumbnailURL *string
	VideoURL     *string
	Status       string
	Category     string
	TrendScore   int
	ScheduledFor *time.Time
}

// VideoPatch is a partial update; nil fields are left unchanged.
type VideoPatch struct {
	Title          *string
	Description    *string
	Tags           []string
	ThumbnailURL   *string
	VideoURL       *string
	YouTubeVideoID *string
	Status         *string
	TrendScore     *int
	PublishedAt    *time.Time
	ScheduledFor   *time.Time
}

// GenerateVideoRequest is the API request body for POST /api/videos/generate.
// TopicID carries either a synthetic topic id or the topic title.
type GenerateVideoRequest struct {
	UserID   int    `json:"userId"`
	TopicID  string `json:"topicId"`
	Category string `json:"category"`
}

// VideoJobResponse is the API response after starting video generation.
type VideoJobResponse struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// VideoContent is the payload produced by the content-generation collaborator.
// Script is consumed by the (out-of-scope) render step and not persisted.
type VideoContent struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Script      string   `json:"script"`
	Tags        []string `json:"tags"`
}
