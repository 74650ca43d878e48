package catalog

import (
	"net"
	"net/http"
	"time"
)

const DefaultConnectTimeout = 10 * time.Second

// NewHTTPClient returns a client whose dialer gives up after connectTimeout.
// There is no overall request deadline; use the request context for that.
// Redirects are not followed: a 3xx reaches the caller as-is.
func NewHTTPClient(connectTimeout time.Duration) *http.Client {
	if connectTimeout <= 0 {
		connectTimeout = DefaultConnectTimeout
	}

	dialer := &net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: 30 * time.Second,
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext

	return &http.Client{
		Transport:     transport,
		CheckRedirect: noRedirect,
	}
}

func noRedirect(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
}
