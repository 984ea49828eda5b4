package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUserSummary_ChannelNameAlwaysSerialized(t *testing.T) {
	u := User{ID: 1, Username: "alice", Email: "alice@example.com"}

	b, err := json.Marshal(u.Summary())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(b), `"youtubeChannelName":null`) {
		t.Errorf("unlinked summary = %s, want youtubeChannelName present as null", b)
	}

	name := "Alice Vlogs"
	u.YouTubeChannelName = &name
	b, _ = json.Marshal(u.Summary())
	if !strings.Contains(string(b), `"youtubeChannelName":"Alice Vlogs"`) {
		t.Errorf("linked summary = %s, want channel name", b)
	}
}

func TestUser_SecretsNeverSerialized(t *testing.T) {
	at, rt := "access", "refresh"
	u := User{
		ID: 1, Username: "alice", Email: "a@example.com", PasswordHash: "hash",
		YouTubeAccessToken: &at, YouTubeRefreshToken: &rt,
	}

	b, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, secret := range []string{"hash", "access", "refresh"} {
		if strings.Contains(string(b), secret) {
			t.Errorf("serialized user %s leaks %q", b, secret)
		}
	}
}
