package geo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/paulmach/orb"
	"github.com/tidwall/gjson"

	"github.com/travelmap/pinmap/pkg/whttp"
)

const ipAPIEndpoint = "http://ip-api.com/json"

// IPLocator estimates the device position from its public IP address.
// It is the closest thing a terminal client has to browser geolocation.
type IPLocator struct {
	Endpoint string
}

func NewIPLocator() *IPLocator {
	return &IPLocator{Endpoint: ipAPIEndpoint}
}

func (l *IPLocator) Locate(ctx context.Context) (orb.Point, error) {
	res, err := whttp.Send(ctx, &whttp.Request{
		Method: http.MethodGet,
		URL:    l.Endpoint,
	}, nil)
	if err != nil {
		return orb.Point{}, err
	}

	if res.StatusCode != http.StatusOK {
		return orb.Point{}, fmt.Errorf("ip geolocation failed with status code: %d", res.StatusCode)
	}

	if status := gjson.Get(res.Body, "status").String(); status != "success" {
		return orb.Point{}, fmt.Errorf("ip geolocation failed: %s", gjson.Get(res.Body, "message").String())
	}

	return orb.Point{
		gjson.Get(res.Body, "lon").Float(),
		gjson.Get(res.Body, "lat").Float(),
	}, nil
}
