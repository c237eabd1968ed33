package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	yt "github.com/kkdai/youtube/v2"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return &Client{HTTP: server.Client(), BaseURL: server.URL, MaxResults: 5}, server
}

func TestChannelID(t *testing.T) {
	Convey("ChannelID", t, func() {
		var (
			got  url.Values
			path string
		)
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			got = r.URL.Query()
			path = r.URL.Path
			fmt.Fprint(w, `{"items":[{"id":"UC123"}]}`)
		})
		defer server.Close()

		Convey("Should strip the handle prefix and pass the key", func() {
			id, err := client.ChannelID(context.Background(), "@TVIMEDI", "secret")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "UC123")
			So(got.Get("forHandle"), ShouldEqual, "TVIMEDI")
			So(got.Get("key"), ShouldEqual, "secret")
			So(got.Get("part"), ShouldEqual, "id")
			So(path, ShouldEqual, "/channels")
		})
	})

	Convey("ChannelID with no items", t, func() {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"items":[]}`)
		})
		defer server.Close()

		id, err := client.ChannelID(context.Background(), "@TVIMEDI", "secret")
		So(err, ShouldBeNil)
		So(id, ShouldBeEmpty)
	})
}

func TestTopVideo(t *testing.T) {
	Convey("TopVideo", t, func() {
		var got url.Values
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			got = r.URL.Query()
			fmt.Fprint(w, `{"items":[{"id":{"videoId":"vid42"},"snippet":{"title":"t"}},{"id":{"videoId":"other"}}]}`)
		})
		defer server.Close()

		Convey("Should return the first match scoped to the channel", func() {
			id, err := client.TopVideo(context.Background(), "title", "UC123", "secret")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "vid42")
			So(got.Get("q"), ShouldEqual, "title")
			So(got.Get("type"), ShouldEqual, "video")
			So(got.Get("maxResults"), ShouldEqual, "5")
			So(got.Get("channelId"), ShouldEqual, "UC123")
			So(got.Get("key"), ShouldEqual, "secret")
		})

		Convey("Should omit the key and scope for anonymous searches", func() {
			_, err := client.TopVideo(context.Background(), "title TVIMEDI", "", "")
			So(err, ShouldBeNil)
			So(got.Has("key"), ShouldBeFalse)
			So(got.Has("channelId"), ShouldBeFalse)
		})
	})

	Convey("TopVideo faults", t, func() {
		Convey("Should wrap non-200 responses", func() {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			})
			defer server.Close()

			_, err := client.TopVideo(context.Background(), "title", "", "")
			So(errors.Is(err, ErrSearchFault), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "403")
		})

		Convey("Should wrap malformed bodies", func() {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"items":`)
			})
			defer server.Close()

			_, err := client.TopVideo(context.Background(), "title", "", "key")
			So(errors.Is(err, ErrSearchFault), ShouldBeTrue)
		})

		Convey("Should wrap timeouts", func() {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(200 * time.Millisecond)
			})
			defer server.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()

			_, err := client.TopVideo(ctx, "title", "", "key")
			So(errors.Is(err, ErrSearchFault), ShouldBeTrue)
		})

		Convey("Should report no match for items without a video id", func() {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"items":[{"id":{"kind":"youtube#channel"}}]}`)
			})
			defer server.Close()

			id, err := client.TopVideo(context.Background(), "title", "", "key")
			So(err, ShouldBeNil)
			So(id, ShouldBeEmpty)
		})
	})
}

func TestBestProgressive(t *testing.T) {
	Convey("bestProgressive", t, func() {
		Convey("Should prefer the tallest format with audio", func() {
			formats := yt.FormatList{
				{ItagNo: 1, Height: 1080, AudioChannels: 0},
				{ItagNo: 2, Height: 360, AudioChannels: 2},
				{ItagNo: 3, Height: 720, AudioChannels: 2},
				{ItagNo: 4, Height: 0, AudioChannels: 2},
			}
			So(bestProgressive(formats).ItagNo, ShouldEqual, 3)
		})

		Convey("Should return nil without progressive formats", func() {
			So(bestProgressive(yt.FormatList{{ItagNo: 1, Height: 720}}), ShouldBeNil)
		})
	})
}
