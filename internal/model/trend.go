package model

import "time"

// Trend is a cached set of keyword/topic suggestions for a content category.
// Created lazily on the first request per category and never updated.
type Trend struct {
	ID        int          `json:"id"`
	Category  string       `json:"category"`
	Keywords  []string     `json:"keywords"`
	Topics    []TrendTopic `json:"topics"`
	Score     int          `json:"score"`
	CreatedAt time.Time    `json:"createdAt"`
}

// TrendTopic is one candidate video idea with a popularity score (0-100).
// ID is optional: generated topics carry only a title, while future UI
// payloads may attach synthetic ids.
type TrendTopic struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Score       int    `json:"score"`
}

// NewTrend is the insert payload for a trend record.
type NewTrend struct {
	Category string
	Keywords []string
	Topics   []TrendTopic
	Score    int
}

// TrendAnalysis is the payload produced by the trend-analysis collaborator.
type TrendAnalysis struct {
	Keywords []string     `json:"keywords"`
	Topics   []TrendTopic `json:"topics"`
}
