// Package youtube implements the search capability on top of the YouTube Data API v3.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shua-cli/shua/constant"
	"github.com/shua-cli/shua/network"
	"github.com/shua-cli/shua/util"
)

// ErrSearchFault wraps any transport, status or decode failure of a single request.
var ErrSearchFault = errors.New("youtube search fault")

const defaultMaxResults = 5

// Client queries the Data API. The zero value uses the shared network client and the public endpoint.
type Client struct {
	HTTP       *http.Client
	BaseURL    string
	MaxResults int
}

// New returns a Client requesting maxResults items per search.
func New(maxResults int) *Client {
	return &Client{MaxResults: maxResults}
}

type channelsResponse struct {
	Items []struct {
		ID string `json:"id"`
	} `json:"items"`
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
	} `json:"items"`
}

// ChannelID looks up the id of the channel owning handle. An empty id with a nil error means no such channel.
func (c *Client) ChannelID(ctx context.Context, handle, apiKey string) (string, error) {
	q := url.Values{}
	q.Set("part", "id")
	q.Set("forHandle", strings.TrimPrefix(handle, "@"))
	if apiKey != "" {
		q.Set("key", apiKey)
	}

	var resp channelsResponse
	if err := c.get(ctx, "/channels", q, &resp); err != nil {
		return "", fmt.Errorf("channel %s: %w", handle, err)
	}

	if len(resp.Items) == 0 {
		return "", nil
	}
	return resp.Items[0].ID, nil
}

// TopVideo returns the id of the first video matching query, optionally restricted to channelID.
// An empty apiKey issues the request anonymously. An empty id with a nil error means no match.
func (c *Client) TopVideo(ctx context.Context, query, channelID, apiKey string) (string, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("q", query)
	q.Set("type", "video")
	q.Set("maxResults", strconv.Itoa(c.maxResults()))
	if channelID != "" {
		q.Set("channelId", channelID)
	}
	if apiKey != "" {
		q.Set("key", apiKey)
	}

	var resp searchResponse
	if err := c.get(ctx, "/search", q, &resp); err != nil {
		return "", fmt.Errorf("search %q: %w", query, err)
	}

	for _, item := range resp.Items {
		if item.ID.VideoID != "" {
			return item.ID.VideoID, nil
		}
	}
	return "", nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, target any) error {
	endpoint := c.baseURL() + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %w", ErrSearchFault, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSearchFault, err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrSearchFault, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: decode: %w", ErrSearchFault, err)
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return network.Client
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return strings.TrimSuffix(c.BaseURL, "/")
	}
	return constant.YouTubeAPIBase
}

func (c *Client) maxResults() int {
	if c.MaxResults > 0 {
		return c.MaxResults
	}
	return defaultMaxResults
}
