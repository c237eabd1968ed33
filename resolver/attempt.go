package resolver

import (
	"github.com/shua-cli/shua/log"
)

// Strategy is one rung of the search ladder.
type Strategy int

const (
	// ChannelScoped searches the title within the official channel, with the API key.
	ChannelScoped Strategy = iota + 1
	// Keyed searches the title across YouTube, with the API key.
	Keyed
	// Anonymous searches the tagged title without any credential.
	Anonymous
)

func (s Strategy) String() string {
	switch s {
	case ChannelScoped:
		return "channel-scoped"
	case Keyed:
		return "keyed"
	case Anonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Outcome classifies a single attempt. Empty and Faulted drive the same fallback
// but stay distinct so faults can be reported.
type Outcome int

const (
	Matched Outcome = iota + 1
	Empty
	Faulted
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case Empty:
		return "empty"
	case Faulted:
		return "faulted"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Attempt records what one strategy did.
type Attempt struct {
	Strategy Strategy
	Query    SearchQuery
	Outcome  Outcome
	Ref      VideoReference
	Err      error
}

func (a Attempt) log() {
	entry := log.WithFields(map[string]any{
		"strategy": a.Strategy.String(),
		"outcome":  a.Outcome.String(),
		"query":    a.Query.Title,
	})

	switch a.Outcome {
	case Faulted:
		entry.WithField("error", a.Err).Warn("search attempt failed")
	case Matched:
		entry.WithField("video", a.Ref.VideoID).Info("search attempt matched")
	default:
		entry.Debug("search attempt yielded nothing")
	}
}
