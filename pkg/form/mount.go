package form

// RowContainer is the mounting point for rows.
// The container owns the rendered inputs and reports keystrokes and value
// changes back through the registered listeners.
type RowContainer interface {
	// Append mounts a row after all existing rows.
	Append(row *Row)

	// RemoveAll unmounts every row.
	RemoveAll()

	// Focus moves input focus to the row. Rows the container no longer
	// holds must be ignored.
	Focus(row *Row)

	// OnKey registers a key listener.
	OnKey(listener KeyListener)

	// OnInput registers an input listener.
	OnInput(listener InputListener)
}

// PreviewDisplay is the mounting point for the preview text.
type PreviewDisplay interface {
	SetText(text string)
}

// ClearTrigger is the clear-all control.
type ClearTrigger interface {
	OnClick(listener ClickListener)
}
