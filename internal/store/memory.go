package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/maituanhoang070/ytcreatorapp/internal/apperr"
	"github.com/maituanhoang070/ytcreatorapp/internal/model"
)

// MemStore is the in-memory Store implementation. Data is lost on restart.
// Fiber serves requests on concurrent goroutines, so all access goes through
// a single RWMutex.
type MemStore struct {
	mu sync.RWMutex

	users    map[int]model.User
	settings map[int]model.ChannelSettings
	videos   map[int]model.Video
	trends   map[int]model.Trend

	userSeq    int
	settingSeq int
	videoSeq   int
	trendSeq   int
}

// NewMemStore creates an empty in-memory store with all counters at 1.
func NewMemStore() *MemStore {
	return &MemStore{
		users:    make(map[int]model.User),
		settings: make(map[int]model.ChannelSettings),
		videos:   make(map[int]model.Video),
		trends:   make(map[int]model.Trend),
	}
}

// CreateUser assigns the next user id and stores the record with empty
// OAuth credentials.
func (s *MemStore) CreateUser(_ context.Context, u model.NewUser) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userSeq++
	user := model.User{
		ID:           s.userSeq,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    time.Now(),
	}
	s.users[user.ID] = user
	return &user, nil
}

// GetUser returns a user by id.
func (s *MemStore) GetUser(_ context.Context, id int) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	return &u, nil
}

// GetUserByUsername returns the user with the given username.
func (s *MemStore) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, apperr.NotFound("User not found")
}

// GetUserByEmail returns the user with the given email.
func (s *MemStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, apperr.NotFound("User not found")
}

// UpdateUserYouTubeCredentials stores the OAuth credential bundle on a user.
func (s *MemStore) UpdateUserYouTubeCredentials(_ context.Context, id int, creds model.YouTubeCredentials) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	u.YouTubeAccessToken = &creds.AccessToken
	u.YouTubeRefreshToken = &creds.RefreshToken
	u.YouTubeChannelID = &creds.ChannelID
	u.YouTubeChannelName = &creds.ChannelName
	s.users[id] = u
	return &u, nil
}

// CreateChannelSettings stores a new settings row with isActive=true.
func (s *MemStore) CreateChannelSettings(_ context.Context, in model.NewChannelSettings) (*model.ChannelSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settingSeq++
	settings := model.ChannelSettings{
		ID:                 s.settingSeq,
		UserID:             in.UserID,
		ChannelName:        in.ChannelName,
		ChannelCategory:    in.ChannelCategory,
		ChannelDescription: in.ChannelDescription,
		ContentTypes:       append([]string(nil), in.ContentTypes...),
		TargetLanguage:     in.TargetLanguage,
		TargetAgeGroup:     in.TargetAgeGroup,
		YouTubeChannelLink: in.YouTubeChannelLink,
		IsActive:           true,
		CreatedAt:          time.Now(),
	}
	s.settings[settings.ID] = settings
	return &settings, nil
}

// GetChannelSettings returns the first settings row for a user. The model does
// not prevent multiple rows per user; lowest id wins for determinism.
func (s *MemStore) GetChannelSettings(_ context.Context, userID int) (*model.ChannelSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *model.ChannelSettings
	for id := range s.settings {
		cs := s.settings[id]
		if cs.UserID != userID {
			continue
		}
		if found == nil || cs.ID < found.ID {
			found = &cs
		}
	}
	if found == nil {
		return nil, apperr.NotFound("Channel settings not found")
	}
	return found, nil
}

// UpdateChannelSettings merges a partial update into an existing settings row.
func (s *MemStore) UpdateChannelSettings(_ context.Context, id int, patch model.ChannelSettingsPatch) (*model.ChannelSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs, ok := s.settings[id]
	if !ok {
		return nil, apperr.NotFound("Channel settings not found")
	}
	if patch.ChannelName != nil {
		cs.ChannelName = *patch.ChannelName
	}
	if patch.ChannelCategory != nil {
		cs.ChannelCategory = *patch.ChannelCategory
	}
	if patch.ChannelDescription != nil {
		cs.ChannelDescription = *patch.ChannelDescription
	}
	if patch.ContentTypes != nil {
		cs.ContentTypes = append([]string(nil), patch.ContentTypes...)
	}
	if patch.TargetLanguage != nil {
		cs.TargetLanguage = *patch.TargetLanguage
	}
	if patch.TargetAgeGroup != nil {
		cs.TargetAgeGroup = patch.TargetAgeGroup
	}
	if patch.YouTubeChannelLink != nil {
		cs.YouTubeChannelLink = patch.YouTubeChannelLink
	}
	if patch.IsActive != nil {
		cs.IsActive = *patch.IsActive
	}
	s.settings[id] = cs
	return &cs, nil
}

// CreateVideo assigns the next video id and stores the record.
func (s *MemStore) CreateVideo(_ context.Context, in model.NewVideo) (*model.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.videoSeq++
	video := model.Video{
		ID:           s.videoSeq,
		UserID:       in.UserID,
		Title:        in.Title,
		Description:  in.Description,
		Tags:         append([]string(nil), in.Tags...),
		ThumbnailURL: in.ThumbnailURL,
		VideoURL:     in.VideoURL,
		Status:       in.Status,
		Category:     in.Category,
		TrendScore:   in.TrendScore,
		ScheduledFor: in.ScheduledFor,
		CreatedAt:    time.Now(),
	}
	s.videos[video.ID] = video
	return &video, nil
}

// GetVideo returns a video by id.
func (s *MemStore) GetVideo(_ context.Context, id int) (*model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.videos[id]
	if !ok {
		return nil, apperr.NotFound("Video not found")
	}
	return &v, nil
}

// ListVideos returns a user's videos ordered by creation time descending.
// Ties break on id descending so back-to-back creates stay ordered.
func (s *MemStore) ListVideos(_ context.Context, userID int) ([]model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	videos := make([]model.Video, 0)
	for _, v := range s.videos {
		if v.UserID == userID {
			videos = append(videos, v)
		}
	}
	sort.Slice(videos, func(i, j int) bool {
		if !videos[i].CreatedAt.Equal(videos[j].CreatedAt) {
			return videos[i].CreatedAt.After(videos[j].CreatedAt)
		}
		return videos[i].ID > videos[j].ID
	})
	return videos, nil
}

// UpdateVideo merges a partial update into an existing video.
func (s *MemStore) UpdateVideo(_ context.Context, id int, patch model.VideoPatch) (*model.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.videos[id]
	if !ok {
		return nil, apperr.NotFound("Video not found")
	}
	if patch.Title != nil {
		v.Title = *patch.Title
	}
	if patch.Description != nil {
		v.Description = *patch.Description
	}
	if patch.Tags != nil {
		v.Tags = append([]string(nil), patch.Tags...)
	}
	if patch.ThumbnailURL != nil {
		v.ThumbnailURL = patch.ThumbnailURL
	}
	if patch.VideoURL != nil {
		v.VideoURL = patch.VideoURL
	}
	if patch.YouTubeVideoID != nil {
		v.YouTubeVideoID = patch.YouTubeVideoID
	}
	if patch.Status != nil {
		v.Status = *patch.Status
	}
	if patch.TrendScore != nil {
		v.TrendScore = *patch.TrendScore
	}
	if patch.PublishedAt != nil {
		v.PublishedAt = patch.PublishedAt
	}
	if patch.ScheduledFor != nil {
		v.ScheduledFor = patch.ScheduledFor
	}
	s.videos[id] = v
	return &v, nil
}

// DeleteVideo removes a video and reports whether it existed. The id is
// never reassigned.
func (s *MemStore) DeleteVideo(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.videos[id]
	if ok {
		delete(s.videos, id)
	}
	return ok, nil
}

// CreateTrend assigns the next trend id and stores the record.
func (s *MemStore) CreateTrend(_ context.Context, in model.NewTrend) (*model.Trend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trendSeq++
	trend := model.Trend{
		ID:        s.trendSeq,
		Category:  in.Category,
		Keywords:  append([]string(nil), in.Keywords...),
		Topics:    append([]model.TrendTopic(nil), in.Topics...),
		Score:     in.Score,
		CreatedAt: time.Now(),
	}
	s.trends[trend.ID] = trend
	return &trend, nil
}

// ListTrends returns all trends for a category sorted by score descending.
func (s *MemStore) ListTrends(_ context.Context, category string) ([]model.Trend, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trends := make([]model.Trend, 0)
	for _, t := range s.trends {
		if t.Category == category {
			trends = append(trends, t)
		}
	}
	sort.Slice(trends, func(i, j int) bool {
		return trends[i].Score > trends[j].Score
	})
	return trends, nil
}

// CountVideos returns the total number of stored videos (all users).
func (s *MemStore) CountVideos() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.videos)
}

// CountUsers returns the total number of stored users.
func (s *MemStore) CountUsers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
