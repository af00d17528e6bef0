// Package types holds the messages exchanged between the form's terminal
// host and the commands it starts.
package types

// ToastMsg asks the host to show a transient notification
type ToastMsg struct {
	Message string
	Details string
	Icon    string
	IsError bool
}

// FocusMode identifies what currently owns keyboard focus
type FocusMode int

const (
	// FocusRow means a row input has focus
	FocusRow FocusMode = iota
	// FocusClearButton means the clear-all button has focus
	FocusClearButton
)
