package geo

import (
	"context"
	"errors"
	"testing"

	"github.com/paulmach/orb"
)

type fakeLocator struct {
	point orb.Point
	err   error
}

func (f fakeLocator) Locate(ctx context.Context) (orb.Point, error) {
	return f.point, f.err
}

func TestResolveOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		locator Locator
		expect  Viewport
	}{
		{
			name:    "success uses reported coordinates",
			locator: fakeLocator{point: orb.Point{13.4, 52.5}},
			expect:  Viewport{Center: orb.Point{13.4, 52.5}, Zoom: 7},
		},
		{
			name:    "locator error falls back",
			locator: fakeLocator{err: errors.New("permission denied")},
			expect:  Viewport{Center: orb.Point{48, 17}, Zoom: 7},
		},
		{
			name:    "absent capability falls back",
			locator: nil,
			expect:  Viewport{Center: orb.Point{48, 17}, Zoom: 7},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(context.Background(), tc.locator)
			if got != tc.expect {
				t.Fatalf("unexpected viewport.\nwant: %#v\ngot:  %#v", tc.expect, got)
			}
		})
	}
}

func TestViewportAccessors(t *testing.T) {
	v := Viewport{Center: orb.Point{48, 17}, Zoom: 7}
	if v.Long() != 48 || v.Lat() != 17 {
		t.Fatalf("accessors returned (%v, %v), want (48, 17)", v.Long(), v.Lat())
	}
}
