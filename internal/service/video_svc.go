package service

import (
	"context"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/maituanhoang070/ytcreatorapp/internal/apperr"
	"github.com/maituanhoang070/ytcreatorapp/internal/model"
	"github.com/maituanhoang070/ytcreatorapp/internal/store"
)

// ContentGenerator is the external collaborator that writes video
// title/description/script/tags for a topic.
type ContentGenerator interface {
	GenerateVideoContent(ctx context.Context, topic, category, channelDescription string) (*model.VideoContent, error)
}

// Uploader publishes a finished video and returns its YouTube video id.
type Uploader interface {
	Upload(ctx context.Context, accessToken string, content model.VideoContent) (string, error)
}

// VideoService turns a selected trend topic into a new video record.
type VideoService struct {
	store     store.Store
	generator ContentGenerator
	uploader  Uploader
	fallbacks prometheus.Counter
}

// NewVideoService creates a VideoService. fallbacks may be nil.
func NewVideoService(st store.Store, gen ContentGenerator, up Uploader, fallbacks prometheus.Counter) *VideoService {
	return &VideoService{store: st, generator: gen, uploader: up, fallbacks: fallbacks}
}

// Generate resolves the user's channel settings and the category's trend,
// locates the requested topic, generates content for it, and persists a new
// video in "processing" state. Any missing prerequisite is a NotFound error
// and leaves the store untouched; generator failures degrade to the
// deterministic fallback content.
func (s *VideoService) Generate(ctx context.Context, userID int, topicID, category string) (*model.Video, error) {
	settings, err := s.store.GetChannelSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	trends, err := s.store.ListTrends(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(trends) == 0 {
		return nil, apperr.NotFound("Trend data not found")
	}

	topic := findTopic(trends[0].Topics, topicID)
	if topic == nil {
		return nil, apperr.NotFound("Selected topic not found")
	}

	content, err := s.generator.GenerateVideoContent(ctx, topic.Title, category, settings.ChannelDescription)
	if err != nil {
		log.Printf("videos: content generation failed for %q, using fallback: %v", topic.Title, err)
		if s.fallbacks != nil {
			s.fallbacks.Inc()
		}
		content = FallbackVideoContent(topic.Title, category)
	}

	return s.store.CreateVideo(ctx, model.NewVideo{
		UserID:      userID,
		Title:       content.Title,
		Description: content.Description,
		Tags:        content.Tags,
		Status:      model.StatusProcessing,
		Category:    category,
		TrendScore:  topic.Score,
	})
}

// findTopic locates a topic by synthetic id or by title. Both branches are
// exercised: ids come from future UI payloads, titles from the current one.
func findTopic(topics []model.TrendTopic, topicID string) *model.TrendTopic {
	for i := range topics {
		if topics[i].ID != "" && topics[i].ID == topicID {
			return &topics[i]
		}
		if topics[i].Title == topicID {
			return &topics[i]
		}
	}
	return nil
}

// List returns a user's videos ordered by creation time descending.
func (s *VideoService) List(ctx context.Context, userID int) ([]model.Video, error) {
	return s.store.ListVideos(ctx, userID)
}

// Publish runs the mock upload for a processing video and transitions it to
// "published", or to "failed" when the upload errors. The resulting record is
// returned either way.
func (s *VideoService) Publish(ctx context.Context, videoID int) (*model.Video, error) {
	video, err := s.store.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video.Status != model.StatusProcessing {
		return nil, apperr.Validation("Video is not awaiting processing")
	}

	var accessToken string
	if user, err := s.store.GetUser(ctx, video.UserID); err == nil && user.YouTubeAccessToken != nil {
		accessToken = *user.YouTubeAccessToken
	}

	content := model.VideoContent{
		Title:       video.Title,
		Description: video.Description,
		Tags:        video.Tags,
	}

	ytID, err := s.uploader.Upload(ctx, accessToken, content)
	if err != nil {
		log.Printf("videos: upload failed for video %d: %v", videoID, err)
		failed := model.StatusFailed
		return s.store.UpdateVideo(ctx, videoID, model.VideoPatch{Status: &failed})
	}

	now := time.Now()
	published := model.StatusPublished
	return s.store.UpdateVideo(ctx, videoID, model.VideoPatch{
		Status:         &published,
		YouTubeVideoID: &ytID,
		PublishedAt:    &now,
	})
}
