package dialog

import "errors"

var (
	// ErrCapacityExceeded is returned when a show-request asks for more buttons than the pool holds.
	ErrCapacityExceeded = errors.New("button pool capacity exceeded")

	// ErrNotConfigured is returned when no panel widget has been wired into the manager.
	ErrNotConfigured = errors.New("modal panel not configured")

	// ErrDialogOpen is returned when Show is called while a dialog is already open.
	ErrDialogOpen = errors.New("a dialog is already open")

	// ErrSlotInactive is returned when pressing a slot that holds no button.
	ErrSlotInactive = errors.New("slot is not active")
)
