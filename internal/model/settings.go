package model

import "time"

// DefaultTargetLanguage is applied when the setup form omits a language.
const DefaultTargetLanguage = "vietnamese"

// ChannelSettings is a user's declared content profile: category, description
// and target audience. One row per user in practice; lookups take the first match.
type ChannelSettings struct {
	ID                 int       `json:"id"`
	UserID             int       `json:"userId"`
	ChannelName        string    `json:"channelName"`
	ChannelCategory    string    `json:"channelCategory"`
	ChannelDescription string    `json:"channelDescription"`
	ContentTypes       []string  `json:"contentTypes"`
	TargetLanguage     string    `json:"targetLanguage"`
	TargetAgeGroup     *string   `json:"targetAgeGroup,omitempty"`
	YouTubeChannelLink *string   `json:"youtubeChannelLink,omitempty"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
}

// NewChannelSettings is the insert payload for channel settings.
type NewChannelSettings struct {
	UserID             int      `json:"userId"`
	ChannelName        string   `json:"channelName"`
	ChannelCategory    string   `json:"channelCategory"`
	ChannelDescription string   `json:"channelDescription"`
	ContentTypes       []string `json:"contentTypes"`
	TargetLanguage     string   `json:"targetLanguage"`
	TargetAgeGroup     *string  `json:"targetAgeGroup,omitempty"`
	YouTubeChannelLink *string  `json:"youtubeChannelLink,omitempty"`
}

// ChannelSettingsPatch is a partial update; nil fields are left unchanged.
type ChannelSettingsPatch struct {
	ChannelName        *string  `json:"channelName,omitempty"`
	ChannelCategory    *string  `json:"channelCategory,omitempty"`
	ChannelDescription *string  `json:"channelDescription,omitempty"`
	ContentTypes       []string `json:"contentTypes,omitempty"`
	TargetLanguage     *string  `json:"targetLanguage,omitempty"`
	TargetAgeGroup     *string  `json:"targetAgeGroup,omitempty"`
	YouTubeChannelLink *string  `json:"youtubeChannelLink,omitempty"`
	IsActive           *bool    `json:"isActive,omitempty"`
}
