//go:build !ebiten

package ui

// Status is a no-op placeholder for headless builds.
type Status struct{}

// NewStatus constructs the placeholder.
func NewStatus() *Status { return &Status{} }

// Toggle is a no-op in headless builds.
func (s *Status) Toggle() {}

// Draw is a no-op in headless builds.
func (s *Status) Draw(any, string, uint64, bool) {}
