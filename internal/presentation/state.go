// Package presentation holds the screen-facing view models of the user directory.
// Each view model is a small state machine (idle, loading, loaded, error) driven
// by a use case and observed through synchronous callbacks.
package presentation

import "time"

// ViewStatus represents the lifecycle status of a view model.
type ViewStatus string

const (
	ViewStatus_Idle    ViewStatus = "idle"
	ViewStatus_Loading ViewStatus = "loading"
	ViewStatus_Loaded  ViewStatus = "loaded"
	ViewStatus_Error   ViewStatus = "error"
)

// ViewState is an immutable snapshot of a view model.
type ViewState[T any] struct {
	Status ViewStatus
	// Data holds the last loaded value. It is kept while reloading and cleared on error.
	Data T
	// Message is the user-facing error text when Status is ViewStatus_Error.
	Message   string
	UpdatedAt time.Time
}

// Observer receives every state transition of a view model.
type Observer[T any] func(ViewState[T])
