package pin

const (
	// ColorMine marks pins authored by the current user, ColorOthers
	// everything else.
	ColorMine   = "blue"
	ColorOthers = "red"
)

// MarkerColor picks the marker color for a pin given the current user.
// Anonymous sessions never own pins.
func MarkerColor(p Pin, currentUser string) string {
	if currentUser != "" && p.Username == currentUser {
		return ColorMine
	}
	return ColorOthers
}

// MarkerSize scales the marker with the zoom level.
func MarkerSize(zoom float64) float64 {
	return zoom * 7
}

// MarkerOffset keeps the marker tip anchored on the pin's coordinate as the
// marker grows with zoom.
func MarkerOffset(zoom float64) float64 {
	return -zoom * 3.5
}
