package rawg

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"playsift/internal/infrastructure/ratelimit"
)

const (
	defaultBaseURL = "https://api.rawg.io/api"

	// PageSize is the largest page RAWG returns.
	PageSize = 20

	requestInterval = 250 * time.Millisecond
)

// Client is a thin RAWG API client. Every request takes a token from the
// pacing bucket first, keeping a fixed delay between upstream calls.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	bucket     *ratelimit.TokenBucket
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		bucket:     ratelimit.NewTokenBucket(1, 1, requestInterval),
	}
}

type ListedGame struct {
	ID              int64   `json:"id"`
	Slug            string  `json:"slug"`
	Name            string  `json:"name"`
	BackgroundImage string  `json:"background_image"`
	Released        string  `json:"released"`
	Rating          float64 `json:"rating"`
	Metacritic      *int    `json:"metacritic"`
	Playtime        int     `json:"playtime"`
	Platforms       []struct {
		Platform struct {
			Name string `json:"name"`
		} `json:"platform"`
	} `json:"platforms"`
	Genres []struct {
		Name string `json:"name"`
	} `json:"genres"`
	Tags []struct {
		Slug string `json:"slug"`
	} `json:"tags"`
}

type GameDetails struct {
	Description    string `json:"description"`
	DescriptionRaw string `json:"description_raw"`
}

type listResponse struct {
	Results []ListedGame `json:"results"`
}

// ListGames fetches one page of well-rated games, best rated first.
func (c *Client) ListGames(ctx context.Context, page, pageSize int) ([]ListedGame, error) {
	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))
	query.Set("ordering", "-rating")
	query.Set("metacritic", "70,100")

	var result listResponse
	if err := c.get(ctx, "/games", query, &result); err != nil {
		return nil, err
	}

	return result.Results, nil
}

// GameDetails fetches the long-form description for a single game.
func (c *Client) GameDetails(ctx context.Context, id int64) (*GameDetails, error) {
	query := url.Values{}
	query.Set("key", c.apiKey)

	var details GameDetails
	if err := c.get(ctx, fmt.Sprintf("/games/%d", id), query, &details); err != nil {
		return nil, err
	}

	return &details, nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	c.bucket.Take()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build RAWG request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("RAWG request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("RAWG API error: %d %s", resp.StatusCode, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode RAWG response: %v", err)
	}

	return nil
}
