package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maituanhoang070/ytcreatorapp/internal/apperr"
	"github.com/maituanhoang070/ytcreatorapp/internal/model"
)

// uniqueViolation is the Postgres error code for duplicate key violations.
const uniqueViolation = "23505"

const schemaDDL = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	youtube_access_token TEXT,
	youtube_refresh_token TEXT,
	youtube_channel_id TEXT,
	youtube_channel_name TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS channel_settings (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL REFERENCES users(id),
	channel_name TEXT NOT NULL,
	channel_category TEXT NOT NULL,
	channel_description TEXT NOT NULL,
	content_types TEXT[] NOT NULL,
	target_language TEXT NOT NULL DEFAULT 'vietnamese',
	target_age_group TEXT,
	youtube_channel_link TEXT,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS videos (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL REFERENCES users(id),
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	tags TEXT[],
	thumbnail_url TEXT,
	video_url TEXT,
	youtube_video_id TEXT,
	status TEXT NOT NULL DEFAULT 'draft',
	category TEXT NOT NULL,
	trend_score INTEGER NOT NULL DEFAULT 0,
	published_at TIMESTAMPTZ,
	scheduled_for TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_videos_user_created ON videos (user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS trends (
	id SERIAL PRIMARY KEY,
	category TEXT NOT NULL,
	keywords TEXT[] NOT NULL,
	topics JSONB NOT NULL,
	score INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_trends_category ON trends (category, score DESC);
`

// PostgresStore backs the Store contract with the relational schema the
// in-memory store mirrors. Selected when DATABASE_URL is configured.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates the store and applies the schema idempotently.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Pool returns the underlying connection pool (for health checks and metrics).
func (s *PostgresStore) Pool() *pgxpool.Pool {
	return s.pool
}

const userColumns = `id, username, password_hash, email, youtube_access_token,
	youtube_refresh_token, youtube_channel_id, youtube_channel_name, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.YouTubeAccessToken,
		&u.YouTubeRefreshToken, &u.YouTubeChannelID, &u.YouTubeChannelName, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts a new user with empty OAuth credentials.
func (s *PostgresStore) CreateUser(ctx context.Context, u model.NewUser) (*model.User, error) {
	query := `
		INSERT INTO users (username, password_hash, email)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns

	user, err := scanUser(s.pool.QueryRow(ctx, query, u.Username, u.PasswordHash, u.Email))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperr.Conflict("Username or email already in use")
		}
		return nil, err
	}
	return user, nil
}

// GetUser returns a user by id.
func (s *PostgresStore) GetUser(ctx context.Context, id int) (*model.User, error) {
	return scanUser(s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// GetUserByUsername returns the user with the given username.
func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return scanUser(s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

// GetUserByEmail returns the user with the given email.
func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return scanUser(s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// UpdateUserYouTubeCredentials stores the OAuth credential bundle on a user.
func (s *PostgresStore) UpdateUserYouTubeCredentials(ctx context.Context, id int, creds model.YouTubeCredentials) (*model.User, error) {
	query := `
		UPDATE users
		SET youtube_access_token = $2, youtube_refresh_token = $3,
		    youtube_channel_id = $4, youtube_channel_name = $5
		WHERE id = $1
		RETURNING ` + userColumns

	return scanUser(s.pool.QueryRow(ctx, query,
		id, creds.AccessToken, creds.RefreshToken, creds.ChannelID, creds.ChannelName))
}

const settingsColumns = `id, user_id, channel_name, channel_category, channel_description,
	content_types, target_language, target_age_group, youtube_channel_link, is_active, created_at`

func scanSettings(row pgx.Row) (*model.ChannelSettings, error) {
	var cs model.ChannelSettings
	err := row.Scan(
		&cs.ID, &cs.UserID, &cs.ChannelName, &cs.ChannelCategory, &cs.ChannelDescription,
		&cs.ContentTypes, &cs.TargetLanguage, &cs.TargetAgeGroup, &cs.YouTubeChannelLink,
		&cs.IsActive, &cs.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Channel settings not found")
	}
	if err != nil {
		return nil, err
	}
	return &cs, nil
}

// CreateChannelSettings inserts a settings row with is_active=true.
func (s *PostgresStore) CreateChannelSettings(ctx context.Context, in model.NewChannelSettings) (*model.ChannelSettings, error) {
	query := `
		INSERT INTO channel_settings
			(user_id, channel_name, channel_category, channel_description,
			 content_types, target_language, target_age_group, youtube_channel_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + settingsColumns

	return scanSettings(s.pool.QueryRow(ctx, query,
		in.UserID, in.ChannelName, in.ChannelCategory, in.ChannelDescription,
		in.ContentTypes, in.TargetLanguage, in.TargetAgeGroup, in.YouTubeChannelLink))
}

// GetChannelSettings returns the first settings row for a user (lowest id).
func (s *PostgresStore) GetChannelSettings(ctx context.Context, userID int) (*model.ChannelSettings, error) {
	query := `SELECT ` + settingsColumns + ` FROM channel_settings WHERE user_id = $1 ORDER BY id LIMIT 1`
	return scanSettings(s.pool.QueryRow(ctx, query, userID))
}

// UpdateChannelSettings merges a partial update into an existing settings row.
func (s *PostgresStore) UpdateChannelSettings(ctx context.Context, id int, patch model.ChannelSettingsPatch) (*model.ChannelSettings, error) {
	query := `
		UPDATE channel_settings
		SET channel_name = COALESCE($2, channel_name),
		    channel_category = COALESCE($3, channel_category),
		    channel_description = COALESCE($4, channel_description),
		    content_types = COALESCE($5, content_types),
		    target_language = COALESCE($6, target_language),
		    target_age_group = COALESCE($7, target_age_group),
		    youtube_channel_link = COALESCE($8, youtube_channel_link),
		    is_active = COALESCE($9, is_active)
		WHERE id = $1
		RETURNING ` + settingsColumns

	return scanSettings(s.pool.QueryRow(ctx, query,
		id, patch.ChannelName, patch.ChannelCategory, patch.ChannelDescription,
		patch.ContentTypes, patch.TargetLanguage, patch.TargetAgeGroup,
		patch.YouTubeChannelLink, patch.IsActive))
}

const videoColumns = `id, user_id, title, description, tags, thumbnail_url, video_url,
	youtube_video_id, status, category, trend_score, published_at, scheduled_for, created_at`

func scanVideo(row pgx.Row) (*model.Video, error) {
	var v model.Video
	err := row.Scan(
		&v.ID, &v.UserID, &v.Title, &v.Description, &v.Tags, &v.ThumbnailURL, &v.VideoURL,
		&v.YouTubeVideoID, &v.Status, &v.Category, &v.TrendScore,
		&v.PublishedAt, &v.ScheduledFor, &v.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Video not found")
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateVideo inserts a new video record.
func (s *PostgresStore) CreateVideo(ctx context.Context, in model.NewVideo) (*model.Video, error) {
	query := `
		INSERT INTO videos
			(user_id, title, description, tags, thumbnail_url, video_url,
			 status, category, trend_score, scheduled_for)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + videoColumns

	return scanVideo(s.pool.QueryRow(ctx, query,
		in.UserID, in.Title, in.Description, in.Tags, in.ThumbnailURL, in.VideoURL,
		in.Status, in.Category, in.TrendScore, in.ScheduledFor))
}

// GetVideo returns a video by id.
func (s *PostgresStore) GetVideo(ctx context.Context, id int) (*model.Video, error) {
	return scanVideo(s.pool.QueryRow(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = $1`, id))
}

// ListVideos returns a user's videos ordered by creation time descending.
func (s *PostgresStore) ListVideos(ctx context.Context, userID int) ([]model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE user_id = $1 ORDER BY created_at DESC, id DESC`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := make([]model.Video, 0)
	for rows.Next() {
		var v model.Video
		err := rows.Scan(
			&v.ID, &v.UserID, &v.Title, &v.Description, &v.Tags, &v.ThumbnailURL, &v.VideoURL,
			&v.YouTubeVideoID, &v.Status, &v.Category, &v.TrendScore,
			&v.PublishedAt, &v.ScheduledFor, &v.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// UpdateVideo merges a partial update into an existing video.
func (s *PostgresStore) UpdateVideo(ctx context.Context, id int, patch model.VideoPatch) (*model.Video, error) {
	query := `
		UPDATE videos
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    tags = COALESCE($4, tags),
		    thumbnail_url = COALESCE($5, thumbnail_url),
		    video_url = COALESCE($6, video_url),
		    youtube_video_id = COALESCE($7, youtube_video_id),
		    status = COALESCE($8, status),
		    trend_score = COALESCE($9, trend_score),
		    published_at = COALESCE($10, published_at),
		    scheduled_for = COALESCE($11, scheduled_for)
		WHERE id = $1
		RETURNING ` + videoColumns

	return scanVideo(s.pool.QueryRow(ctx, query,
		id, patch.Title, patch.Description, patch.Tags, patch.ThumbnailURL, patch.VideoURL,
		patch.YouTubeVideoID, patch.Status, patch.TrendScore, patch.PublishedAt, patch.ScheduledFor))
}

// DeleteVideo removes a video and reports whether a row was deleted.
func (s *PostgresStore) DeleteVideo(ctx context.Context, id int) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// CreateTrend inserts a new trend record with its topics as JSONB.
func (s *PostgresStore) CreateTrend(ctx context.Context, in model.NewTrend) (*model.Trend, error) {
	topics, err := json.Marshal(in.Topics)
	if err != nil {
		return nil, fmt.Errorf("encode topics: %w", err)
	}

	query := `
		INSERT INTO trends (category, keywords, topics, score)
		VALUES ($1, $2, $3, $4)
		RETURNING id, category, keywords, topics, score, created_at`

	return scanTrend(s.pool.QueryRow(ctx, query, in.Category, in.Keywords, topics, in.Score))
}

// ListTrends returns all trends for a category sorted by score descending.
func (s *PostgresStore) ListTrends(ctx context.Context, category string) ([]model.Trend, error) {
	query := `
		SELECT id, category, keywords, topics, score, created_at
		FROM trends
		WHERE category = $1
		ORDER BY score DESC`

	rows, err := s.pool.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trends := make([]model.Trend, 0)
	for rows.Next() {
		var t model.Trend
		var topics []byte
		if err := rows.Scan(&t.ID, &t.Category, &t.Keywords, &topics, &t.Score, &t.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(topics, &t.Topics); err != nil {
			return nil, fmt.Errorf("decode topics: %w", err)
		}
		trends = append(trends, t)
	}
	return trends, rows.Err()
}

func scanTrend(row pgx.Row) (*model.Trend, error) {
	var t model.Trend
	var topics []byte
	err := row.Scan(&t.ID, &t.Category, &t.Keywords, &topics, &t.Score, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Trend data not found")
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(topics, &t.Topics); err != nil {
		return nil, fmt.Errorf("decode topics: %w", err)
	}
	return &t, nil
}
