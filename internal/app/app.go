// Package app is the interaction core of the pinmap client: it keeps the
// viewport, the pin collection, the selected-pin popup and the in-progress
// draft consistent as events come in from the map surface.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/travelmap/pinmap/internal/utils"
	"github.com/travelmap/pinmap/pkg/api"
	"github.com/travelmap/pinmap/pkg/geo"
	"github.com/travelmap/pinmap/pkg/pin"
	"github.com/travelmap/pinmap/pkg/pinstore"
	"github.com/travelmap/pinmap/pkg/session"
)

var (
	// ErrUnauthenticated is returned when an anonymous user tries to
	// submit a pin. No network call is made in that case.
	ErrUnauthenticated = errors.New("please login to add your review")

	// ErrNoDraft is returned when Submit runs without an open draft.
	ErrNoDraft = errors.New("no draft pin to submit")

	// ErrSubmitPending rejects a second submission while one is already
	// in flight.
	ErrSubmitPending = errors.New("a submission is already in progress")
)

// Creator is the slice of the REST API the submission flow needs.
type Creator interface {
	CreatePin(ctx context.Context, req api.CreatePinRequest) (pin.Pin, error)
}

// Renderer is the map-rendering collaborator. The app pushes viewport
// changes to it and asks it to prompt for login when an anonymous user
// tries to submit.
type Renderer interface {
	SetViewport(v geo.Viewport, smooth bool)
	PromptLogin()
}

// NopRenderer satisfies Renderer for headless use.
type NopRenderer struct{}

func (NopRenderer) SetViewport(geo.Viewport, bool) {}
func (NopRenderer) PromptLogin()                   {}

// App owns the client-side interaction state. All methods are meant to be
// called from a single event loop; nothing here is safe for concurrent use.
type App struct {
	creator  Creator
	pins     *pinstore.Store
	auth     *session.Auth
	renderer Renderer

	viewport   geo.Viewport
	selected   string
	draft      *pin.Draft
	submitting bool
}

func New(creator Creator, pins *pinstore.Store, auth *session.Auth, renderer Renderer) *App {
	if renderer == nil {
		renderer = NopRenderer{}
	}
	return &App{
		creator:  creator,
		pins:     pins,
		auth:     auth,
		renderer: renderer,
		viewport: geo.Fallback(),
	}
}

// Start restores the persisted session, resolves the initial viewport and
// loads the pin collection. Viewport resolution and the pin load are
// independent; neither failure is fatal.
func (a *App) Start(ctx context.Context, locator geo.Locator) {
	a.auth.Restore(ctx)
	a.viewport = geo.Resolve(ctx, locator)
	a.renderer.SetViewport(a.viewport, false)
	a.pins.Load(ctx)
}

func (a *App) Viewport() geo.Viewport {
	return a.viewport
}

// SetViewport replaces the whole viewport, as happens on free-form pan and
// zoom of the map surface.
func (a *App) SetViewport(v geo.Viewport) {
	a.viewport = v
}

// SelectMarker opens the popup for a pin and re-centers the map on it,
// keeping the current zoom level. An open draft is left alone.
func (a *App) SelectMarker(p pin.Pin) {
	a.selected = p.ID
	a.viewport = geo.Viewport{
		Center: orb.Point{p.Long, p.Lat},
		Zoom:   a.viewport.Zoom,
	}
	a.renderer.SetViewport(a.viewport, true)
}

// Selected resolves the open popup's pin, if any. The selection is only an
// id; the record always comes from the store.
func (a *App) Selected() (pin.Pin, bool) {
	if a.selected == "" {
		return pin.Pin{}, false
	}
	return a.pins.Find(a.selected)
}

// ClosePopup clears the selection.
func (a *App) ClosePopup() {
	a.selected = ""
}

// BeginDraft opens a new-pin form at the double-clicked location. Any
// previous draft is discarded; the selection popup is left alone.
func (a *App) BeginDraft(lat, long float64) *pin.Draft {
	a.draft = pin.NewDraft(lat, long)
	return a.draft
}

func (a *App) Draft() *pin.Draft {
	return a.draft
}

// CancelDraft dismisses the form without submitting.
func (a *App) CancelDraft() {
	a.draft = nil
}

// Submit validates the draft against the current session and sends it to
// the backend. Anonymous users are bounced to the login prompt before any
// network call. On failure the draft stays open so the user can retry; on
// success the created pin is appended to the store and the draft cleared.
func (a *App) Submit(ctx context.Context) (pin.Pin, error) {
	if a.submitting {
		return pin.Pin{}, ErrSubmitPending
	}

	sess := a.auth.Current()
	if sess.Anonymous() {
		a.renderer.PromptLogin()
		return pin.Pin{}, ErrUnauthenticated
	}

	if a.draft == nil {
		return pin.Pin{}, ErrNoDraft
	}

	a.submitting = true
	defer func() { a.submitting = false }()

	created, err := a.creator.CreatePin(ctx, api.CreatePinRequest{
		Username: sess.Username,
		Title:    a.draft.Title,
		Desc:     a.draft.Desc,
		Rating:   a.draft.Rating,
		Lat:      a.draft.Lat,
		Long:     a.draft.Long,
	})
	if err != nil {
		return pin.Pin{}, fmt.Errorf("creating pin: %w", err)
	}

	a.pins.Append(created)
	a.draft = nil
	utils.Log.WithField("id", created.ID).Debug("pin created")
	return created, nil
}

// MarkerColor styles a marker for the current session.
func (a *App) MarkerColor(p pin.Pin) string {
	return pin.MarkerColor(p, a.auth.Current().Username)
}

// MarkerSize scales markers with the current zoom level.
func (a *App) MarkerSize() float64 {
	return pin.MarkerSize(a.viewport.Zoom)
}
