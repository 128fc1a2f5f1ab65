// Package pin holds the pin record types shared across pinmap.
package pin

import "fmt"

const (
	MinRating = 0
	MaxRating = 5
)

// Pin is a single geotagged place review. The id and creation timestamp are
// assigned by the backend; a Pin is never mutated once it exists.
type Pin struct {
	ID        string  `json:"_id"`
	Username  string  `json:"username"`
	Title     string  `json:"title"`
	Desc      string  `json:"desc"`
	Rating    int     `json:"rating"`
	Lat       float64 `json:"lat"`
	Long      float64 `json:"long"`
	CreatedAt string  `json:"createdAt"`
}

// Draft is an unsaved pin being authored at a fixed location. The location
// comes from the double-click that opened the form and never changes; the
// remaining fields are filled in by the user.
type Draft struct {
	Lat    float64
	Long   float64
	Title  string
	Desc   string
	Rating int
}

// NewDraft starts a draft at the given location with empty fields and the
// default rating of 0.
func NewDraft(lat, long float64) *Draft {
	return &Draft{Lat: lat, Long: long}
}

func (d *Draft) SetTitle(title string) {
	d.Title = title
}

func (d *Draft) SetDesc(desc string) {
	d.Desc = desc
}

// SetRating rejects values outside [0,5]; the form widget offers exactly
// those choices, so anything else is a caller bug.
func (d *Draft) SetRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating must be between %d and %d, got %d", MinRating, MaxRating, rating)
	}
	d.Rating = rating
	return nil
}
