// Package pinstore holds the in-memory pin collection for a session.
package pinstore

import (
	"context"

	"github.com/travelmap/pinmap/internal/utils"
	"github.com/travelmap/pinmap/pkg/pin"
)

// Lister fetches the full pin collection from the backend.
type Lister interface {
	ListPins(ctx context.Context) ([]pin.Pin, error)
}

// Store is the sole owner of pin records in the client. It is filled once by
// Load and only ever grows through Append; pins are never edited or removed.
type Store struct {
	lister Lister
	pins   []pin.Pin
}

func New(lister Lister) *Store {
	return &Store{lister: lister}
}

// Load fetches all pins. On failure the store stays empty and the error is
// logged; the map simply shows no pins until the next load.
func (s *Store) Load(ctx context.Context) {
	pins, err := s.lister.ListPins(ctx)
	if err != nil {
		utils.Log.WithError(err).Warn("failed to load pins")
		return
	}
	s.pins = pins
	utils.Log.WithField("count", len(pins)).Debug("loaded pins")
}

// Append adds a newly created pin to the end of the collection.
func (s *Store) Append(p pin.Pin) {
	s.pins = append(s.pins, p)
}

// Pins returns the collection in insertion order.
func (s *Store) Pins() []pin.Pin {
	return s.pins
}

// Find looks a pin up by id.
func (s *Store) Find(id string) (pin.Pin, bool) {
	for _, p := range s.pins {
		if p.ID == id {
			return p, true
		}
	}
	return pin.Pin{}, false
}

func (s *Store) Len() int {
	return len(s.pins)
}
