package cmd

import (
	"fmt"

	"github.com/travelmap/pinmap/internal/utils"
	"github.com/travelmap/pinmap/pkg/geo"
	"github.com/travelmap/pinmap/pkg/pin"
)

// terminalRenderer is the headless stand-in for the map widget: viewport
// moves are logged, login prompts are printed.
type terminalRenderer struct{}

func (terminalRenderer) SetViewport(v geo.Viewport, smooth bool) {
	utils.Log.WithField("center", pin.FormatCoords(v.Lat(), v.Long())).
		WithField("zoom", v.Zoom).
		Debug("viewport changed")
}

func (terminalRenderer) PromptLogin() {
	fmt.Println("Please login to add your review (run `pinmap login`).")
}
