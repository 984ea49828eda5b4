package service

import (
	"context"
	"errors"
	"testing"

	"github.com/maituanhoang070/ytcreatorapp/internal/apperr"
	"github.com/maituanhoang070/ytcreatorapp/internal/model"
	"github.com/maituanhoang070/ytcreatorapp/internal/store"
)

// fakeGenerator returns canned video content or an error.
type fakeGenerator struct {
	content *model.VideoContent
	err     error
}

func (f *fakeGenerator) GenerateVideoContent(_ context.Context, topic, _, _ string) (*model.VideoContent, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.content != nil {
		return f.content, nil
	}
	return &model.VideoContent{Title: "Generated: " + topic, Description: "d", Tags: []string{"t"}}, nil
}

// fakeUploader returns a fixed id or an error.
type fakeUploader struct {
	id  string
	err error
}

func (f *fakeUploader) Upload(_ context.Context, _ string, _ model.VideoContent) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.id, nil
}

func seedUserWithTrend(t *testing.T, st *store.MemStore) (userID int, topics []model.TrendTopic) {
	t.Helper()
	ctx := context.Background()

	u, err := st.CreateUser(ctx, model.NewUser{Username: "alice", Email: "a@example.com", PasswordHash: "x"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := st.CreateChannelSettings(ctx, model.NewChannelSettings{
		UserID: u.ID, ChannelName: "Alice Plays", ChannelCategory: "gaming",
		ChannelDescription: "indie game reviews", ContentTypes: []string{"longform"},
		TargetLanguage: "english",
	}); err != nil {
		t.Fatalf("CreateChannelSettings: %v", err)
	}

	topics = []model.TrendTopic{
		{ID: "topic-1", Title: "Top indie games of the year", Score: 91},
		{Title: "Speedrunning for beginners", Score: 77},
	}
	if _, err := st.CreateTrend(ctx, model.NewTrend{
		Category: "gaming", Keywords: []string{"indie"}, Topics: topics, Score: 100,
	}); err != nil {
		t.Fatalf("CreateTrend: %v", err)
	}
	return u.ID, topics
}

func TestVideoService_GenerateByTopicID(t *testing.T) {
	st := store.NewMemStore()
	userID, topics := seedUserWithTrend(t, st)
	svc := NewVideoService(st, &fakeGenerator{}, &fakeUploader{id: "yt-x"}, nil)

	video, err := svc.Generate(context.Background(), userID, "topic-1", "gaming")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if video.Status != model.StatusProcessing {
		t.Errorf("Status = %q, want processing", video.Status)
	}
	if video.TrendScore != topics[0].Score {
		t.Errorf("TrendScore = %d, want %d", video.TrendScore, topics[0].Score)
	}
	if video.Title != "Generated: Top indie games of the year" {
		t.Errorf("Title = %q", video.Title)
	}
}

func TestVideoService_GenerateByTopicTitle(t *testing.T) {
	st := store.NewMemStore()
	userID, topics := seedUserWithTrend(t, st)
	svc := NewVideoService(st, &fakeGenerator{}, &fakeUploader{id: "yt-x"}, nil)

	video, err := svc.Generate(context.Background(), userID, "Speedrunning for beginners", "gaming")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if video.TrendScore != topics[1].Score {
		t.Errorf("TrendScore = %d, want %d (title-matched topic)", video.TrendScore, topics[1].Score)
	}
}

func TestVideoService_GenerateUnknownUserLeavesStoreUntouched(t *testing.T) {
	st := store.NewMemStore()
	seedUserWithTrend(t, st)
	svc := NewVideoService(st, &fakeGenerator{}, &fakeUploader{id: "yt-x"}, nil)

	_, err := svc.Generate(context.Background(), 99, "topic-1", "gaming")
	if !apperr.IsNotFound(err) {
		t.Fatalf("err = %v, want not-found", err)
	}
	if n := st.CountVideos(); n != 0 {
		t.Errorf("videos stored = %d, want 0 after failed generate", n)
	}
}

func TestVideoService_GenerateUnknownTopic(t *testing.T) {
	st := store.NewMemStore()
	userID, _ := seedUserWithTrend(t, st)
	svc := NewVideoService(st, &fakeGenerator{}, &fakeUploader{id: "yt-x"}, nil)

	_, err := svc.Generate(context.Background(), userID, "no-such-topic", "gaming")
	if !apperr.IsNotFound(err) {
		t.Fatalf("err = %v, want not-found", err)
	}
	if n := st.CountVideos(); n != 0 {
		t.Errorf("videos stored = %d, want 0", n)
	}
}

func TestVideoService_GenerateMissingTrendData(t *testing.T) {
	st := store.NewMemStore()
	userID, _ := seedUserWithTrend(t, st)
	svc := NewVideoService(st, &fakeGenerator{}, &fakeUploader{id: "yt-x"}, nil)

	// Settings exist but no trend was ever created for this category.
	_, err := svc.Generate(context.Background(), userID, "topic-1", "cooking")
	if !apperr.IsNotFound(err) {
		t.Fatalf("err = %v, want not-found", err)
	}
}

func TestVideoService_GenerateFallsBackOnGeneratorError(t *testing.T) {
	st := store.NewMemStore()
	userID, _ := seedUserWithTrend(t, st)
	svc := NewVideoService(st, &fakeGenerator{err: errors.New("timeout")}, &fakeUploader{id: "yt-x"}, nil)

	video, err := svc.Generate(context.Background(), userID, "topic-1", "gaming")
	if err != nil {
		t.Fatalf("Generate: %v (generator errors must degrade, not fail)", err)
	}
	if video.Title == "" || video.Status != model.StatusProcessing {
		t.Errorf("fallback video incomplete: %+v", video)
	}
}

func TestVideoService_PublishTransitionsToPublished(t *testing.T) {
	st := store.NewMemStore()
	userID, _ := seedUserWithTrend(t, st)
	svc := NewVideoService(st, &fakeGenerator{}, &fakeUploader{id: "yt-abc"}, nil)
	ctx := context.Background()

	video, _ := svc.Generate(ctx, userID, "topic-1", "gaming")

	published, err := svc.Publish(ctx, video.ID)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if published.Status != model.StatusPublished {
		t.Errorf("Status = %q, want published", published.Status)
	}
	if published.YouTubeVideoID == nil || *published.YouTubeVideoID != "yt-abc" {
		t.Errorf("YouTubeVideoID = %v, want yt-abc", published.YouTubeVideoID)
	}
	if published.PublishedAt == nil {
		t.Errorf("PublishedAt not set")
	}
}

func TestVideoService_PublishFailedUpload(t *testing.T) {
	st := store.NewMemStore()
	userID, _ := seedUserWithTrend(t, st)
	svc := NewVideoService(st, &fakeGenerator{}, &fakeUploader{err: errors.New("quota")}, nil)
	ctx := context.Background()

	video, _ := svc.Generate(ctx, userID, "topic-1", "gaming")

	failed, err := svc.Publish(ctx, video.ID)
	if err != nil {
		t.Fatalf("Publish: %v (upload errors transition the record, not the call)", err)
	}
	if failed.Status != model.StatusFailed {
		t.Errorf("Status = %q, want failed", failed.Status)
	}
}

func TestVideoService_PublishRejectsNonProcessing(t *testing.T) {
	st := store.NewMemStore()
	userID, _ := seedUserWithTrend(t, st)
	svc := NewVideoService(st, &fakeGenerator{}, &fakeUploader{id: "yt-x"}, nil)
	ctx := context.Background()

	video, _ := svc.Generate(ctx, userID, "topic-1", "gaming")
	svc.Publish(ctx, video.ID)

	_, err := svc.Publish(ctx, video.ID)
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("second publish err = %v, want validation error", err)
	}
}

func TestVideoService_ListOnlyOwnVideos(t *testing.T) {
	st := store.NewMemStore()
	userID, _ := seedUserWithTrend(t, st)
	svc := NewVideoService(st, &fakeGenerator{}, &fakeUploader{id: "yt-x"}, nil)
	ctx := context.Background()

	svc.Generate(ctx, userID, "topic-1", "gaming")
	st.CreateVideo(ctx, model.NewVideo{UserID: 42, Title: "other", Status: model.StatusDraft})

	videos, err := svc.List(ctx, userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(videos) != 1 {
		t.Errorf("len = %d, want 1", len(videos))
	}
}
