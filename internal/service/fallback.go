package service

import (
	"fmt"

	"github.com/maituanhoang070/ytcreatorapp/internal/model"
)

// Deterministic fallbacks used when an AI collaborator is unavailable.
// Callers always receive usable data; the degrade is logged and counted,
// never silent.

// FallbackTrendAnalysis builds synthetic keyword/topic suggestions from the
// raw category string.
func FallbackTrendAnalysis(category string) *model.TrendAnalysis {
	return &model.TrendAnalysis{
		Keywords: []string{
			category + "_trends",
			category + "_ideas",
			category + "_highlights",
		},
		Topics: []model.TrendTopic{
			{
				Title:       fmt.Sprintf("Hottest %s trends right now", category),
				Description: fmt.Sprintf("A roundup of the %s trends everyone is talking about", category),
				Score:       95,
			},
			{
				Title:       fmt.Sprintf("Top 10 most loved %s picks", category),
				Description: fmt.Sprintf("The ten %s favorites viewers keep coming back to", category),
				Score:       87,
			},
			{
				Title:       fmt.Sprintf("Secrets to success in %s", category),
				Description: fmt.Sprintf("Practical tips for getting ahead in %s", category),
				Score:       82,
			},
		},
	}
}

// FallbackVideoContent builds synthetic video content from the raw topic and
// category strings.
func FallbackVideoContent(topic, category string) *model.VideoContent {
	return &model.VideoContent{
		Title:       fmt.Sprintf("Video about %s", topic),
		Description: fmt.Sprintf("A video about %s in the %s category", topic, category),
		Script: fmt.Sprintf(
			"Hello everyone, today we are exploring %s.\n\n"+
				"It is one of the most interesting subjects in %s right now.\n\n"+
				"Subscribe to the channel for more videos like this one!",
			topic, category),
		Tags: []string{category, topic, "YouTube", "video", "content", "viral", "trending"},
	}
}
