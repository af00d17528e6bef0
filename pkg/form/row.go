package form

import "fmt"

// Row is a single labeled text-entry slot in the form.
// Rows are created by the Controller and handed to the RowContainer for mounting.
type Row struct {
	id        int
	label     string
	value     string
	transient bool
	mounted   bool
}

func newRow(id int, prefix string) *Row {
	return &Row{
		id:        id,
		label:     fmt.Sprintf("%s %d", prefix, id),
		transient: true,
	}
}

// ID returns the row's sequential identifier (1-based).
func (r *Row) ID() int {
	return r.id
}

// ElementID returns the identifier used to address the row's input, e.g. "input-3".
func (r *Row) ElementID() string {
	return fmt.Sprintf("input-%d", r.id)
}

// Label returns the display label, e.g. "Место 3".
func (r *Row) Label() string {
	return r.label
}

// Placeholder returns the input placeholder. It is identical to the label.
func (r *Row) Placeholder() string {
	return r.label
}

// Value returns the current value as typed, untrimmed.
func (r *Row) Value() string {
	return r.value
}

// Transient reports whether the row still carries its entry-animation marker.
func (r *Row) Transient() bool {
	return r.transient
}

// Mounted reports whether the row is still part of the form.
// Rows dropped by a clear stay unmounted forever.
func (r *Row) Mounted() bool {
	return r.mounted
}
