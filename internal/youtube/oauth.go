// Package youtube is the OAuth bridge to Google: it builds the authorization
// URL, exchanges a code for tokens, and resolves the authenticated account's
// channel. The redirect URI is derived from PUBLIC_BASE_URL, never hardcoded.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/maituanhoang070/ytcreatorapp/internal/apperr"
	"github.com/maituanhoang070/ytcreatorapp/internal/model"
)

// CallbackPath is the GET route the provider redirects back to.
const CallbackPath = "/youtube-callback"

const defaultChannelInfoURL = "https://www.googleapis.com/youtube/v3/channels?part=snippet&mine=true"

var googleEndpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.google.com/o/oauth2/auth",
	TokenURL: "https://oauth2.googleapis.com/token",
}

var scopes = []string{
	"https://www.googleapis.com/auth/youtube",
	"https://www.googleapis.com/auth/youtube.upload",
	"https://www.googleapis.com/auth/youtube.readonly",
}

// OAuthBridge performs the authorization-code flow against Google and the
// channel lookup against the YouTube Data API.
type OAuthBridge struct {
	conf           *oauth2.Config
	httpClient     *http.Client
	channelInfoURL string
}

// NewOAuthBridge builds a bridge whose redirect URI is publicBaseURL + CallbackPath.
func NewOAuthBridge(clientID, clientSecret, publicBaseURL string) *OAuthBridge {
	return &OAuthBridge{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  strings.TrimRight(publicBaseURL, "/") + CallbackPath,
			Scopes:       scopes,
			Endpoint:     googleEndpoint,
		},
		httpClient:     &http.Client{Timeout: 15 * time.Second},
		channelInfoURL: defaultChannelInfoURL,
	}
}

// AuthURL returns the provider authorization URL with offline access and
// forced consent, so a refresh token is always issued.
func (b *OAuthBridge) AuthURL() string {
	return b.conf.AuthCodeURL("",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange trades an authorization code for tokens and resolves the account's
// channel. Provider HTTP failures surface as ExternalServiceError; an account
// without a channel surfaces as NotFound.
func (b *OAuthBridge) Exchange(ctx context.Context, code string) (model.YouTubeCredentials, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, b.httpClient)

	tok, err := b.conf.Exchange(ctx, code)
	if err != nil {
		return model.YouTubeCredentials{}, apperr.External("Failed to exchange code for token", err)
	}

	channelID, channelName, err := b.channelInfo(ctx, tok.AccessToken)
	if err != nil {
		return model.YouTubeCredentials{}, err
	}

	return model.YouTubeCredentials{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ChannelID:    channelID,
		ChannelName:  channelName,
	}, nil
}

func (b *OAuthBridge) channelInfo(ctx context.Context, accessToken string) (string, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.channelInfoURL, nil)
	if err != nil {
		return "", "", apperr.External("Failed to build channel info request", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return "", "", apperr.External("Failed to get channel info", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", "", apperr.External(
			fmt.Sprintf("Failed to get channel info: HTTP %d: %s", resp.StatusCode, string(body)), nil)
	}

	var payload struct {
		Items []struct {
			ID      string `json:"id"`
			Snippet struct {
				Title string `json:"title"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", "", apperr.External("Failed to parse channel info", err)
	}
	if len(payload.Items) == 0 {
		return "", "", apperr.NotFound("No YouTube channel found for this user")
	}
	return payload.Items[0].ID, payload.Items[0].Snippet.Title, nil
}

// Upload is the mock upload step: the real render/upload pipeline is a future
// async job, so this returns a synthetic YouTube video id immediately.
func (b *OAuthBridge) Upload(_ context.Context, _ string, _ model.VideoContent) (string, error) {
	return randomVideoID(), nil
}

func randomVideoID() string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	buf := make([]byte, 8)
	for i := range buf {
		buf[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return "yt-" + string(buf)
}
