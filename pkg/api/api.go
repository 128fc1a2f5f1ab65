// Package api is the client for the travel-map pins backend.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/travelmap/pinmap/pkg/pin"
	"github.com/travelmap/pinmap/pkg/whttp"
)

const (
	pinsPath     = "/api/pins"
	loginPath    = "/api/users/login"
	registerPath = "/api/users/register"
)

// Client talks to one backend instance. A nil HTTP client means the shared
// whttp default client.
type Client struct {
	BaseURL string
	HTTP    *retryablehttp.Client
}

func New(baseURL string) *Client {
	return &Client{BaseURL: baseURL}
}

// CreatePinRequest is the POST /api/pins body.
type CreatePinRequest struct {
	Username string  `json:"username"`
	Title    string  `json:"title"`
	Desc     string  `json:"desc"`
	Rating   int     `json:"rating"`
	Lat      float64 `json:"lat"`
	Long     float64 `json:"long"`
}

// ListPins fetches the full pin collection in backend order.
func (c *Client) ListPins(ctx context.Context) ([]pin.Pin, error) {
	res, err := whttp.Send(ctx, &whttp.Request{
		Method: http.MethodGet,
		URL:    c.BaseURL + pinsPath,
	}, c.HTTP)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing pins failed with status code: %d", res.StatusCode)
	}

	var pins []pin.Pin
	for _, r := range gjson.Parse(res.Body).Array() {
		pins = append(pins, pinFromJSON(r))
	}
	return pins, nil
}

// CreatePin submits a new pin and returns the created record with the
// backend-assigned id and timestamp.
func (c *Client) CreatePin(ctx context.Context, req CreatePinRequest) (pin.Pin, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return pin.Pin{}, err
	}

	res, err := whttp.Send(ctx, &whttp.Request{
		Method: http.MethodPost,
		URL:    c.BaseURL + pinsPath,
		Body:   string(payload),
		Headers: []whttp.Header{
			{Name: "Content-Type", Value: "application/json"},
		},
	}, c.HTTP)
	if err != nil {
		return pin.Pin{}, err
	}

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		return pin.Pin{}, fmt.Errorf("creating pin failed with status code: %d", res.StatusCode)
	}

	return pinFromJSON(gjson.Parse(res.Body)), nil
}

// Login exchanges credentials for the canonical username recorded by the
// backend.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	res, err := whttp.Send(ctx, &whttp.Request{
		Method: http.MethodPost,
		URL:    c.BaseURL + loginPath,
		Body:   string(payload),
		Headers: []whttp.Header{
			{Name: "Content-Type", Value: "application/json"},
		},
	}, c.HTTP)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login failed with status code: %d", res.StatusCode)
	}

	name := gjson.Get(res.Body, "username").String()
	if name == "" {
		return "", fmt.Errorf("invalid login response: username not found")
	}
	return name, nil
}

// Register creates a new account. It does not log the user in.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}

	res, err := whttp.Send(ctx, &whttp.Request{
		Method: http.MethodPost,
		URL:    c.BaseURL + registerPath,
		Body:   string(payload),
		Headers: []whttp.Header{
			{Name: "Content-Type", Value: "application/json"},
		},
	}, c.HTTP)
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		return fmt.Errorf("registration failed with status code: %d", res.StatusCode)
	}
	return nil
}

func pinFromJSON(r gjson.Result) pin.Pin {
	return pin.Pin{
		ID:        r.Get("_id").String(),
		Username:  r.Get("username").String(),
		Title:     r.Get("title").String(),
		Desc:      r.Get("desc").String(),
		Rating:    int(r.Get("rating").Int()),
		Lat:       r.Get("lat").Float(),
		Long:      r.Get("long").Float(),
		CreatedAt: r.Get("createdAt").String(),
	}
}
