// Package resolver finds the upload of a selected episode by walking a fixed ladder of search strategies,
// from the most precise (channel-scoped, keyed) to the least (anonymous, tagged), and returning the first match.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/samber/mo"
	"github.com/shua-cli/shua/constant"
	"github.com/shua-cli/shua/log"
	"github.com/shua-cli/shua/selection"
)

// ErrNotFound is returned once every strategy came back without a match.
var ErrNotFound = errors.New("video not found")

// Searcher is the search capability the strategies are expressed against.
// Both lookups return an empty string with a nil error when nothing matched.
type Searcher interface {
	ChannelID(ctx context.Context, handle, apiKey string) (string, error)
	TopVideo(ctx context.Context, query, channelID, apiKey string) (string, error)
}

// VideoReference identifies a resolved upload.
type VideoReference struct {
	VideoID string
}

// SearchQuery is one concrete request issued by a strategy.
type SearchQuery struct {
	Title          string
	ChannelScope   mo.Option[string]
	UseCredentials bool
}

// Config carries everything a Resolver reads from the environment.
type Config struct {
	APIKey        string
	ChannelHandle string
	Tag           string
	Timeout       time.Duration

	// channels memoizes handle lookups for the life of the process, empty results included.
	channels *cache.Cache
}

// NewConfig returns a Config with an empty channel cache.
func NewConfig(apiKey, channelHandle, tag string, timeout time.Duration) *Config {
	return &Config{
		APIKey:        apiKey,
		ChannelHandle: channelHandle,
		Tag:           tag,
		Timeout:       timeout,
		channels:      cache.New(cache.NoExpiration, 0),
	}
}

// HasCredentials reports whether keyed strategies are available.
func (c *Config) HasCredentials() bool {
	return c.APIKey != ""
}

// Resolver resolves selections to uploads.
type Resolver struct {
	cfg    *Config
	search Searcher
}

// New returns a Resolver searching through s.
func New(cfg *Config, s Searcher) *Resolver {
	if cfg.channels == nil {
		cfg.channels = cache.New(cache.NoExpiration, 0)
	}
	return &Resolver{cfg: cfg, search: s}
}

// Title renders the upload title of sel.
func Title(sel selection.Selection) string {
	return fmt.Sprintf(constant.TitleTemplate, sel.Season, sel.Episode)
}

// NotFoundError is ErrNotFound with a manual search link for the user.
type NotFoundError struct {
	Title     string
	SearchURL string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("ვიდეო ვერ მოიძებნა, სცადე აქ: %s", e.SearchURL)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// SearchURL is the results page a user can open when resolution fails.
func SearchURL(title string) string {
	return constant.YouTubeResultsURL + url.QueryEscape(title+" "+constant.YouTubeResultsHint)
}

// Resolve returns the first match of the strategy ladder.
func (r *Resolver) Resolve(ctx context.Context, sel selection.Selection) (VideoReference, error) {
	ref, _, err := r.Trace(ctx, sel)
	return ref, err
}

// Trace is Resolve that also returns every attempt made, in order.
func (r *Resolver) Trace(ctx context.Context, sel selection.Selection) (VideoReference, []Attempt, error) {
	title := Title(sel)
	attempts := make([]Attempt, 0, 3)

	for _, strategy := range []Strategy{ChannelScoped, Keyed, Anonymous} {
		attempt := r.attempt(ctx, strategy, title)
		attempts = append(attempts, attempt)
		attempt.log()

		if attempt.Outcome == Matched {
			return attempt.Ref, attempts, nil
		}
	}

	return VideoReference{}, attempts, &NotFoundError{Title: title, SearchURL: SearchURL(title)}
}

func (r *Resolver) attempt(ctx context.Context, strategy Strategy, title string) Attempt {
	query, ok := r.query(ctx, strategy, title)
	if !ok {
		return Attempt{Strategy: strategy, Query: query, Outcome: Skipped}
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	apiKey := ""
	if query.UseCredentials {
		apiKey = r.cfg.APIKey
	}

	id, err := r.search.TopVideo(ctx, query.Title, query.ChannelScope.OrEmpty(), apiKey)
	switch {
	case err != nil:
		return Attempt{Strategy: strategy, Query: query, Outcome: Faulted, Err: err}
	case id == "":
		return Attempt{Strategy: strategy, Query: query, Outcome: Empty}
	default:
		return Attempt{Strategy: strategy, Query: query, Outcome: Matched, Ref: VideoReference{VideoID: id}}
	}
}

// query builds the request of strategy, or reports that the strategy cannot run.
func (r *Resolver) query(ctx context.Context, strategy Strategy, title string) (SearchQuery, bool) {
	switch strategy {
	case ChannelScoped:
		q := SearchQuery{Title: title, ChannelScope: mo.None[string](), UseCredentials: true}
		if !r.cfg.HasCredentials() {
			return q, false
		}
		id := r.channelID(ctx)
		if id == "" {
			return q, false
		}
		q.ChannelScope = mo.Some(id)
		return q, true
	case Keyed:
		return SearchQuery{Title: title, ChannelScope: mo.None[string](), UseCredentials: true}, r.cfg.HasCredentials()
	default:
		q := title
		if r.cfg.Tag != "" {
			q = title + " " + r.cfg.Tag
		}
		return SearchQuery{Title: q, ChannelScope: mo.None[string](), UseCredentials: false}, true
	}
}

// channelID resolves the configured handle at most once per process.
// A failed lookup is remembered as empty, so later resolutions skip the scoped strategy too.
func (r *Resolver) channelID(ctx context.Context) string {
	handle := r.cfg.ChannelHandle
	if handle == "" {
		return ""
	}

	if cached, found := r.cfg.channels.Get(handle); found {
		if id, ok := cached.(string); ok {
			return id
		}
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	id, err := r.search.ChannelID(ctx, handle, r.cfg.APIKey)
	if err != nil {
		log.WithFields(map[string]any{"handle": handle, "error": err}).Warn("channel lookup failed, searching without channel scope")
		id = ""
	}

	r.cfg.channels.Set(handle, id, cache.NoExpiration)
	return id
}

func (r *Resolver) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.cfg.Timeout)
}
