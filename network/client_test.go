package network

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClient(t *testing.T) {
	Convey("Client", t, func() {
		var agent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			agent = r.Header.Get("User-Agent")
		}))
		defer server.Close()

		Convey("Should leave deadlines to the request context", func() {
			So(Client.Timeout, ShouldEqual, time.Duration(0))
			So(Client.Transport.(*userAgentTransport).base.(*http.Transport).ResponseHeaderTimeout, ShouldEqual, time.Duration(0))
		})

		Convey("Should identify itself", func() {
			resp, err := Client.Get(server.URL)
			So(err, ShouldBeNil)
			_ = resp.Body.Close()
			So(agent, ShouldStartWith, "shua/")
		})
	})
}
