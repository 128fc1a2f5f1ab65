// Package whttp is a small wrapper around retryablehttp used by every
// network-facing package in pinmap.
package whttp

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	stdlog "log"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-retryablehttp"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:83.0) Gecko/20100101 Firefox/83.0"

type Header struct {
	Name  string
	Value string
}

type Request struct {
	Method  string
	URL     string
	Body    string
	Headers []Header
}

type Response struct {
	StatusCode int
	Body       string
}

var defaultClient = newClient()

func newClient() *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.Logger = stdlog.New(io.Discard, "", 0)
	c.RetryMax = 3
	return c
}

// GetDefaultClient returns the shared client so callers can tweak
// transport settings.
func GetDefaultClient() *retryablehttp.Client {
	return defaultClient
}

// SetupProxy routes all requests on the default client through the given
// HTTP proxy. TLS verification is disabled so intercepting proxies work.
func SetupProxy(proxy string) error {
	proxyURL, err := url.Parse(proxy)
	if err != nil {
		return fmt.Errorf("invalid proxy URL: %w", err)
	}
	defaultClient.HTTPClient.Transport = &http.Transport{
		Proxy:           http.ProxyURL(proxyURL),
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
	return nil
}

// Send performs the request and reads the full body. A nil client uses the
// shared default client.
func Send(ctx context.Context, wReq *Request, client *retryablehttp.Client) (*Response, error) {
	if client == nil {
		client = defaultClient
	}

	var rawBody []byte
	if wReq.Body != "" {
		rawBody = []byte(wReq.Body)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, wReq.Method, wReq.URL, rawBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en")

	for _, h := range wReq.Headers {
		req.Header.Add(h.Name, h.Value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       string(bodyBytes),
	}, nil
}
