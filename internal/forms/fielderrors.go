// Package forms holds the client-local draft state for create/edit flows:
// field values staged before submission, synchronous validation, and the
// bounded image attachment set used by product drafts.
package forms

// FieldErrors maps a field name to a human-readable validation message.
// It is recomputed in full on every submit attempt and cleared per field
// the moment that field is edited.
type FieldErrors map[string]string

func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Clear removes the message for one field, if present.
func (e FieldErrors) Clear(field string) {
	delete(e, field)
}
