package pin

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// PrintPins prints one line per pin, columns selected by outputFlags and
// joined with delimiter. Pins owned by currentUser are colored like their
// map markers.
func PrintPins(pins []Pin, currentUser, outputFlags, delimiter string) {
	for _, p := range pins {
		line := createLine(p, outputFlags, delimiter)
		if len(line) == 0 {
			continue
		}
		if MarkerColor(p, currentUser) == ColorMine {
			line = "\033[34m" + line + "\033[0m"
		}
		fmt.Println(line)
	}
}

func createLine(p Pin, outputFlags, delimiter string) string {
	var line string

	for _, f := range outputFlags {
		switch f {
		case 'i':
			line += p.ID + delimiter
		case 't':
			line += p.Title + delimiter
		case 'u':
			line += p.Username + delimiter
		case 'r':
			line += strconv.Itoa(p.Rating) + delimiter
		case 'c':
			line += FormatCoords(p.Lat, p.Long) + delimiter
		case 'd':
			line += p.Desc + delimiter
		case 'a':
			line += p.CreatedAt + delimiter
		default:
			log.Fatal("Invalid print flag")
		}
	}
	return strings.TrimSuffix(line, delimiter)
}

// FormatCoords renders a latitude/longitude pair the way the pins command
// and log lines display locations.
func FormatCoords(lat, long float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(long, 'f', -1, 64)
}
