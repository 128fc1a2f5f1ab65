// Package geo resolves the initial map viewport from a device location
// capability, falling back to a fixed default when none is available.
package geo

import (
	"context"

	"github.com/paulmach/orb"

	"github.com/travelmap/pinmap/internal/utils"
)

// DefaultZoom is the zoom level every freshly resolved viewport starts at.
const DefaultZoom = 7

// Viewport is the map camera state: a center point (lon, lat) and a zoom
// level. It is recomputed each session and never persisted.
type Viewport struct {
	Center orb.Point
	Zoom   float64
}

func (v Viewport) Long() float64 { return v.Center.Lon() }
func (v Viewport) Lat() float64  { return v.Center.Lat() }

// Fallback is the deterministic default viewport used whenever the device
// location cannot be determined.
func Fallback() Viewport {
	return Viewport{Center: orb.Point{48, 17}, Zoom: DefaultZoom}
}

// Locator is a single-shot device location capability.
type Locator interface {
	Locate(ctx context.Context) (orb.Point, error)
}

// Resolve turns a locator result into the initial viewport. A nil locator
// (capability absent) or any locator error yields the fallback viewport;
// Resolve itself never fails.
func Resolve(ctx context.Context, locator Locator) Viewport {
	if locator == nil {
		utils.Log.Debug("no location capability available, using fallback viewport")
		return Fallback()
	}

	point, err := locator.Locate(ctx)
	if err != nil {
		utils.Log.WithError(err).Debug("location lookup failed, using fallback viewport")
		return Fallback()
	}

	return Viewport{Center: point, Zoom: DefaultZoom}
}
