// Package network provides the HTTP client shared by every outbound request.
package network

import (
	"net/http"
	"time"

	"github.com/shua-cli/shua/constant"
)

// Timeout bounds requests that do not bring their own deadline, such as stream extraction.
// Search requests are bounded by the context deadline of their attempt only.
const Timeout = 10 * time.Second

// Client is the shared HTTP client. It sets no deadline of its own.
var Client = &http.Client{
	Transport: &userAgentTransport{base: newTransport()},
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	return t
}

type userAgentTransport struct {
	base http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", constant.UserAgent)
	}
	return t.base.RoundTrip(req)
}
