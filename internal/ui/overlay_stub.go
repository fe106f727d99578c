//go:build !ebiten

package ui

import "torus-ca/internal/session"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(*session.Session, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// ShowGrid is always false in headless builds.
func (o *Overlay) ShowGrid() bool { return false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, int, int) {}
