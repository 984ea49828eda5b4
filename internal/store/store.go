// Package store holds the four entity collections (users, channel settings,
// videos, trends) behind a single interface. MemStore is the demo default;
// PostgresStore backs the same schema with a durable relational store.
package store

import (
	"context"

	"github.com/maituanhoang070/ytcreatorapp/internal/model"
)

// Store is the record store contract. Identifiers are unique and monotonically
// increasing per entity type, assigned by the store, and never reused.
// Lookups for absent records return a NotFound error from apperr.
type Store interface {
	// Users
	CreateUser(ctx context.Context, u model.NewUser) (*model.User, error)
	GetUser(ctx context.Context, id int) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUserYouTubeCredentials(ctx context.Context, id int, creds model.YouTubeCredentials) (*model.User, error)

	// Channel settings
	CreateChannelSettings(ctx context.Context, s model.NewChannelSettings) (*model.ChannelSettings, error)
	GetChannelSettings(ctx context.Context, userID int) (*model.ChannelSettings, error)
	UpdateChannelSettings(ctx context.Context, id int, patch model.ChannelSettingsPatch) (*model.ChannelSettings, error)

	// Videos
	CreateVideo(ctx context.Context, v model.NewVideo) (*model.Video, error)
	GetVideo(ctx context.Context, id int) (*model.Video, error)
	ListVideos(ctx context.Context, userID int) ([]model.Video, error)
	UpdateVideo(ctx context.Context, id int, patch model.VideoPatch) (*model.Video, error)
	DeleteVideo(ctx context.Context, id int) (bool, error)

	// Trends
	CreateTrend(ctx context.Context, t model.NewTrend) (*model.Trend, error)
	ListTrends(ctx context.Context, category string) ([]model.Trend, error)
}
