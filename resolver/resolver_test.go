package resolver

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shua-cli/shua/selection"
	. "github.com/smartystreets/goconvey/convey"
)

type call struct {
	Query     string
	ChannelID string
	APIKey    string
}

type result struct {
	id  string
	err error
}

// fakeSearcher answers TopVideo by channel scope and credential mode.
type fakeSearcher struct {
	channelID    string
	channelErr   error
	channelCalls int

	scoped, keyed, anonymous result
	calls                    []call
}

func (f *fakeSearcher) ChannelID(_ context.Context, _, _ string) (string, error) {
	f.channelCalls++
	return f.channelID, f.channelErr
}

func (f *fakeSearcher) TopVideo(_ context.Context, query, channelID, apiKey string) (string, error) {
	f.calls = append(f.calls, call{Query: query, ChannelID: channelID, APIKey: apiKey})
	switch {
	case channelID != "":
		return f.scoped.id, f.scoped.err
	case apiKey != "":
		return f.keyed.id, f.keyed.err
	default:
		return f.anonymous.id, f.anonymous.err
	}
}

// hangingSearcher blocks every keyed search until its context is done.
type hangingSearcher struct{}

func (hangingSearcher) ChannelID(context.Context, string, string) (string, error) {
	return "UC123", nil
}

func (hangingSearcher) TopVideo(ctx context.Context, _, _, apiKey string) (string, error) {
	if apiKey == "" {
		return "anonymous", nil
	}
	<-ctx.Done()
	return "", ctx.Err()
}

type step struct {
	Strategy string
	Outcome  string
}

func steps(attempts []Attempt) []step {
	out := make([]step, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, step{Strategy: a.Strategy.String(), Outcome: a.Outcome.String()})
	}
	return out
}

var sel = selection.Selection{Season: 2, Episode: 7}

func keyedConfig() *Config {
	return NewConfig("secret", "@TVIMEDI", "TVIMEDI", time.Second)
}

func TestTitle(t *testing.T) {
	Convey("Title", t, func() {
		So(Title(sel), ShouldEqual, "შუა ქალაქში - სეზონი 2, სერია 7")
	})
}

func TestResolve(t *testing.T) {
	Convey("Given a configured API key", t, func() {
		search := &fakeSearcher{channelID: "UC123"}
		r := New(keyedConfig(), search)

		Convey("A channel-scoped match wins without further attempts", func() {
			search.scoped = result{id: "scoped"}

			ref, attempts, err := r.Trace(context.Background(), sel)
			So(err, ShouldBeNil)
			So(ref.VideoID, ShouldEqual, "scoped")
			So(search.calls, ShouldResemble, []call{{Query: Title(sel), ChannelID: "UC123", APIKey: "secret"}})
			So(cmp.Diff([]step{{"channel-scoped", "matched"}}, steps(attempts)), ShouldBeEmpty)
		})

		Convey("The keyed search runs when the scoped one is empty", func() {
			search.keyed = result{id: "keyed"}

			ref, err := r.Resolve(context.Background(), sel)
			So(err, ShouldBeNil)
			So(ref.VideoID, ShouldEqual, "keyed")
			So(len(search.calls), ShouldEqual, 2)
		})

		Convey("The anonymous tagged search is the last resort", func() {
			search.anonymous = result{id: "anon"}

			ref, attempts, err := r.Trace(context.Background(), sel)
			So(err, ShouldBeNil)
			So(ref.VideoID, ShouldEqual, "anon")
			So(search.calls[2], ShouldResemble, call{Query: Title(sel) + " TVIMEDI"})
			So(cmp.Diff([]step{
				{"channel-scoped", "empty"},
				{"keyed", "empty"},
				{"anonymous", "matched"},
			}, steps(attempts)), ShouldBeEmpty)
		})

		Convey("Faults are recorded and fall through to the next strategy", func() {
			search.scoped = result{err: errors.New("timeout")}
			search.keyed = result{err: errors.New("403")}
			search.anonymous = result{id: "anon"}

			ref, attempts, err := r.Trace(context.Background(), sel)
			So(err, ShouldBeNil)
			So(ref.VideoID, ShouldEqual, "anon")
			So(attempts[0].Outcome, ShouldEqual, Faulted)
			So(attempts[0].Err, ShouldNotBeNil)
			So(attempts[1].Outcome, ShouldEqual, Faulted)
		})

		Convey("Exhausting every strategy fails with a search link", func() {
			ref, attempts, err := r.Trace(context.Background(), sel)
			So(ref, ShouldResemble, VideoReference{})
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			So(len(attempts), ShouldEqual, 3)

			var notFound *NotFoundError
			So(errors.As(err, &notFound), ShouldBeTrue)
			So(notFound.SearchURL, ShouldStartWith, "https://www.youtube.com/results?search_query=")
			So(err.Error(), ShouldContainSubstring, notFound.SearchURL)
		})

		Convey("The channel id is looked up once per process", func() {
			_, _ = r.Resolve(context.Background(), sel)
			_, _ = r.Resolve(context.Background(), sel)
			So(search.channelCalls, ShouldEqual, 1)
		})
	})

	Convey("Given searches that never answer", t, func() {
		r := New(NewConfig("secret", "@TVIMEDI", "TVIMEDI", 10*time.Millisecond), hangingSearcher{})

		Convey("Each attempt is cut off by the timeout and the ladder continues", func() {
			ref, attempts, err := r.Trace(context.Background(), sel)
			So(err, ShouldBeNil)
			So(ref.VideoID, ShouldEqual, "anonymous")
			So(cmp.Diff([]step{{"channel-scoped", "faulted"}, {"keyed", "faulted"}, {"anonymous", "matched"}}, steps(attempts)), ShouldBeEmpty)
			So(errors.Is(attempts[0].Err, context.DeadlineExceeded), ShouldBeTrue)
			So(errors.Is(attempts[1].Err, context.DeadlineExceeded), ShouldBeTrue)
		})
	})

	Convey("Given a failing channel lookup", t, func() {
		search := &fakeSearcher{channelErr: errors.New("quota"), keyed: result{id: "keyed"}}
		r := New(keyedConfig(), search)

		Convey("The scoped strategy is skipped and the keyed one still runs", func() {
			ref, attempts, err := r.Trace(context.Background(), sel)
			So(err, ShouldBeNil)
			So(ref.VideoID, ShouldEqual, "keyed")
			So(cmp.Diff([]step{{"channel-scoped", "skipped"}, {"keyed", "matched"}}, steps(attempts)), ShouldBeEmpty)
		})

		Convey("The failure is remembered", func() {
			_, _ = r.Resolve(context.Background(), sel)
			_, _ = r.Resolve(context.Background(), sel)
			So(search.channelCalls, ShouldEqual, 1)
		})
	})

	Convey("Given no API key", t, func() {
		search := &fakeSearcher{channelID: "UC123", anonymous: result{id: "anon"}}
		r := New(NewConfig("", "@TVIMEDI", "TVIMEDI", time.Second), search)

		Convey("Only the anonymous strategy runs", func() {
			ref, attempts, err := r.Trace(context.Background(), sel)
			So(err, ShouldBeNil)
			So(ref.VideoID, ShouldEqual, "anon")
			So(search.channelCalls, ShouldEqual, 0)
			So(len(search.calls), ShouldEqual, 1)
			So(search.calls[0].APIKey, ShouldBeEmpty)
			So(strings.HasSuffix(search.calls[0].Query, " TVIMEDI"), ShouldBeTrue)
			So(cmp.Diff([]step{
				{"channel-scoped", "skipped"},
				{"keyed", "skipped"},
				{"anonymous", "matched"},
			}, steps(attempts)), ShouldBeEmpty)
		})

		Convey("An empty anonymous search is not found", func() {
			search.anonymous = result{}
			_, err := r.Resolve(context.Background(), sel)
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})
	})

	Convey("Given a zero Config", t, func() {
		search := &fakeSearcher{anonymous: result{id: "anon"}}
		r := New(&Config{}, search)

		Convey("The untagged title is searched anonymously", func() {
			ref, err := r.Resolve(context.Background(), sel)
			So(err, ShouldBeNil)
			So(ref.VideoID, ShouldEqual, "anon")
			So(search.calls[0].Query, ShouldEqual, Title(sel))
		})
	})
}

func TestSearchURL(t *testing.T) {
	Convey("SearchURL", t, func() {
		u := SearchURL("title")
		So(u, ShouldEqual, "https://www.youtube.com/results?search_query=title+channel+TVIMEDI")
	})
}
