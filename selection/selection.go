// Package selection turns optional season/episode overrides into a validated pair,
// drawing the omitted parts at random.
package selection

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/samber/mo"
	"github.com/shua-cli/shua/show"
)

var (
	// ErrInvalidSeason is wrapped by a RangeError for a season outside the table.
	ErrInvalidSeason = errors.New("invalid season")
	// ErrInvalidEpisode is wrapped by a RangeError for an episode outside the chosen season.
	ErrInvalidEpisode = errors.New("invalid episode")
)

// Selection is a validated season/episode pair.
type Selection struct {
	Season  int
	Episode int
}

func (s Selection) String() string {
	return fmt.Sprintf("S%02dE%02d", s.Season, s.Episode)
}

// RangeError reports an out-of-range season or episode with a message fit for the user.
type RangeError struct {
	Kind    error
	Season  int
	Episode int
	Max     int
	Name    string
}

func (e *RangeError) Error() string {
	if e.Kind == ErrInvalidSeason {
		return fmt.Sprintf("მხოლოდ %s %s სეზონის ჩათვლით დევს კონსისტენტურად იუთუბზე", rangeStart, rangeEnd)
	}
	return fmt.Sprintf("%s სეზონში %d სერია არაა, მხოლოდ %d სერიაა", e.Name, e.Episode, e.Max)
}

func (e *RangeError) Unwrap() error {
	return e.Kind
}

const (
	rangeStart = "პირველიდან"
	rangeEnd   = "მეათე"
)

// Source is the randomness used to fill omitted values. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Resolver fills and validates selections.
type Resolver struct {
	rnd Source
}

// New returns a Resolver drawing from src, or from the global generator when src is nil.
func New(src Source) *Resolver {
	if src == nil {
		src = globalSource{}
	}
	return &Resolver{rnd: src}
}

// Resolve fixes the season first, then the episode, since the episode range depends on the season.
// Supplied values are validated as given and never clamped or redrawn.
func (r *Resolver) Resolve(season, episode mo.Option[int]) (Selection, error) {
	s := season.OrElse(0)
	if season.IsAbsent() {
		s = show.First + r.rnd.IntN(show.Last-show.First+1)
	}

	if !show.Known(s) {
		return Selection{}, &RangeError{Kind: ErrInvalidSeason, Season: s, Episode: episode.OrElse(0)}
	}

	// Known seasons always have a bound and a name.
	maxEpisode, _ := show.MaxEpisode(s)
	name, _ := show.DisplayName(s)

	e := episode.OrElse(0)
	if episode.IsAbsent() {
		e = 1 + r.rnd.IntN(maxEpisode)
	}

	if e < 1 || e > maxEpisode {
		return Selection{}, &RangeError{Kind: ErrInvalidEpisode, Season: s, Episode: e, Max: maxEpisode, Name: name}
	}

	return Selection{Season: s, Episode: e}, nil
}
