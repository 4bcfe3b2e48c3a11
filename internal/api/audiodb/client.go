package audiodb

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"tunescout/internal/shared"
)

// 1. Constants and types
const (
	defaultBaseURL   = "https://www.theaudiodb.com/api/v1/json/2"
	defaultUserAgent = shared.UserAgent
	defaultTimeout   = 15 * time.Second
	maxErrorBody     = 200
)

// Endpoint paths relative to the base URL
const (
	pathSearchArtist = "search.php"
	pathTopTracks    = "track-top10.php"
	pathSearchTrack  = "searchtrack.php"
	pathMostLoved    = "mostloved.php"
	pathAlbum        = "album.php"
)

// Config holds configuration for the TheAudioDB client
type Config struct {
	BaseURL    string        `json:"base_url"`
	UserAgent  string        `json:"user_agent"`
	Timeout    time.Duration `json:"timeout"`
	RateLimit  time.Duration `json:"rate_limit"` // 0 disables throttling
	BurstLimit int           `json:"burst_limit"`
	Debug      bool          `json:"debug"`
}

// Client is a thin TheAudioDB client returning raw records
type Client struct {
	httpClient  *http.Client
	config      Config
	rateLimiter *rate.Limiter
}

// 2. Constructor and configuration

// DefaultConfig returns the public endpoint with throttling disabled
func DefaultConfig() Config {
	return Config{
		BaseURL:    defaultBaseURL,
		UserAgent:  defaultUserAgent,
		Timeout:    defaultTimeout,
		BurstLimit: 1,
	}
}

// NewClient creates a client with default configuration
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a client with custom configuration
func NewClientWithConfig(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	config.BaseURL = strings.TrimSuffix(config.BaseURL, "/")
	if config.UserAgent == "" {
		config.UserAgent = defaultUserAgent
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config:      config,
		rateLimiter: newLimiter(config),
	}
}

func newLimiter(config Config) *rate.Limiter {
	if config.RateLimit <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := config.BurstLimit
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Every(config.RateLimit), burst)
}

// GetConfig returns the current client configuration
func (c *Client) GetConfig() Config {
	return c.config
}

// 3. Core HTTP methods (private)

// get issues a GET against path with the given query and returns the body of a 200 response
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := fmt.Sprintf("%s/%s", c.config.BaseURL, path)
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	if c.config.Debug {
		shared.ColorMuted.Printf("DEBUG: GET %s\n", reqURL)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			return nil, &shared.HTTPError{
				StatusCode: http.StatusGatewayTimeout,
				Status:     "Gateway Timeout",
				Message:    err.Error(),
			}
		}
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		message := string(body)
		if len(message) > maxErrorBody {
			message = message[:maxErrorBody] + "..."
		}
		return nil, &shared.HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    message,
		}
	}

	// The provider answers an empty body for some unknown lookups
	if len(strings.TrimSpace(string(body))) == 0 {
		return []byte("{}"), nil
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid %s response json", path)
	}
	return body, nil
}

// 4. Public API methods

// SearchArtists searches artists by name
func (c *Client) SearchArtists(ctx context.Context, name string) ([]shared.Record, error) {
	body, err := c.get(ctx, pathSearchArtist, url.Values{"s": {name}})
	if err != nil {
		return nil, fmt.Errorf("failed to search artists %q: %w", name, err)
	}
	return shared.RecordsFromJSON(body, "artists"), nil
}

// TopTracks fetches the top ten track records of an artist
func (c *Client) TopTracks(ctx context.Context, artist string) ([]shared.Record, error) {
	body, err := c.get(ctx, pathTopTracks, url.Values{"s": {artist}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top tracks for %q: %w", artist, err)
	}
	return shared.RecordsFromJSON(body, "track"), nil
}

// SearchTrack searches tracks scoped by artist and title
func (c *Client) SearchTrack(ctx context.Context, artist, title string) ([]shared.Record, error) {
	body, err := c.get(ctx, pathSearchTrack, url.Values{"s": {artist}, "t": {title}})
	if err != nil {
		return nil, fmt.Errorf("failed to search track %q by %q: %w", title, artist, err)
	}
	return shared.RecordsFromJSON(body, "track"), nil
}

// SearchTrackByTitle searches tracks by title alone
func (c *Client) SearchTrackByTitle(ctx context.Context, title string) ([]shared.Record, error) {
	body, err := c.get(ctx, pathSearchTrack, url.Values{"t": {title}})
	if err != nil {
		return nil, fmt.Errorf("failed to search title %q: %w", title, err)
	}
	return shared.RecordsFromJSON(body, "track"), nil
}

// MostLoved fetches the curated most loved tracks
func (c *Client) MostLoved(ctx context.Context) ([]shared.Record, error) {
	body, err := c.get(ctx, pathMostLoved, url.Values{"format": {"track"}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch most loved tracks: %w", err)
	}
	if loved := gjson.GetBytes(body, "loved"); loved.IsArray() {
		return shared.RecordsFromResult(loved), nil
	}
	return shared.RecordsFromJSON(body, "track"), nil
}

// AlbumYear looks an album up and returns its release year, "" when the album has none
func (c *Client) AlbumYear(ctx context.Context, albumID string) (string, error) {
	if albumID == "" {
		return "", fmt.Errorf("album ID cannot be empty")
	}

	body, err := c.get(ctx, pathAlbum, url.Values{"m": {albumID}})
	if err != nil {
		return "", fmt.Errorf("failed to fetch album %s: %w", albumID, err)
	}

	albums := shared.RecordsFromJSON(body, "album")
	if len(albums) == 0 {
		return "", nil
	}
	year, _ := albums[0].First(shared.FieldYearReleased, shared.FieldYear)
	return year, nil
}
