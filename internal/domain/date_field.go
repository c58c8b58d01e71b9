package domain

import (
	"strings"
	"time"
)

// FieldState is the state of the green card date input field.
type FieldState string

// Date field states.
const (
	FieldEmpty       FieldState = "empty"
	FieldPartialText FieldState = "partial_text"
	FieldValidDate   FieldState = "valid_date"
	FieldInvalidText FieldState = "invalid_text"
)

// Field-level validation messages.
const (
	MsgDateFormat     = "Please enter a valid date (MM/DD/YYYY)."
	MsgDateRequired   = "Please enter a valid date."
	MsgDateOutOfRange = "Please select a date between 01/01/1900 and today."
)

// DateField is the form state behind the green card date input. Typed text and
// calendar-picker selections both converge on it. Transitions are pure and
// return the next state; the receiver is never modified.
//
// When State is FieldValidDate, Display is the MM/DD/YYYY rendering of Value
// and Value lies within [01/01/1900, today].
type DateField struct {
	State   FieldState `json:"state"`
	Display string     `json:"display"`
	Value   *time.Time `json:"value,omitempty"`
	Error   string     `json:"error,omitempty"`
}

// NewDateField returns an empty field.
func NewDateField() DateField {
	return DateField{State: FieldEmpty}
}

// Type applies a keystroke: raw is the full text of the input after the edit.
// Errors are never raised while typing; a valid parse clears an earlier one.
func (f DateField) Type(raw string, today time.Time) DateField {
	display := FormatInputDate(raw)
	if display == "" {
		return DateField{State: FieldEmpty, Error: f.Error}
	}
	if len(display) >= ParseThreshold {
		if d, ok := TryParseDisplayDate(display, today); ok {
			return validField(d)
		}
	}
	return DateField{State: FieldPartialText, Display: display, Error: f.Error}
}

// Blur forces a parse of the current text when the input loses focus.
func (f DateField) Blur(today time.Time) DateField {
	if strings.TrimSpace(f.Display) == "" {
		return NewDateField()
	}
	if d, ok := TryParseDisplayDate(f.Display, today); ok {
		return validField(d)
	}
	return DateField{State: FieldInvalidText, Display: f.Display, Error: MsgDateFormat}
}

// Submit re-validates the field before a calculation. Unlike Blur, a blank
// field is an error because a date is required.
func (f DateField) Submit(today time.Time) DateField {
	next := f.Blur(today)
	if next.State == FieldEmpty {
		next.Error = MsgDateRequired
	}
	return next
}

// Select applies a calendar-picker selection, bypassing text parsing.
// Out-of-range selections leave the field unchanged apart from the error.
func (f DateField) Select(date time.Time, today time.Time) DateField {
	d := StartOfDay(date.In(today.Location()))
	if !InGreenCardRange(d, today) {
		f.Error = MsgDateOutOfRange
		return f
	}
	return validField(d)
}

// Clear resets the field, as when the picker selection is removed.
func (f DateField) Clear() DateField {
	return NewDateField()
}

// Restore rebuilds a field that arrived from a client. A ValidDate state is
// re-derived from its display text, Value is dropped from every other state and
// unknown states fall back to Empty or PartialText.
func (f DateField) Restore(today time.Time) DateField {
	switch f.State {
	case FieldValidDate:
		return f.Blur(today)
	case FieldPartialText, FieldInvalidText:
		return DateField{State: f.State, Display: f.Display, Error: f.Error}
	}
	if f.Display == "" {
		return DateField{State: FieldEmpty, Error: f.Error}
	}
	return DateField{State: FieldPartialText, Display: f.Display, Error: f.Error}
}

// Valid reports whether the field holds a usable date.
func (f DateField) Valid() bool {
	return f.State == FieldValidDate && f.Value != nil
}

func validField(d time.Time) DateField {
	return DateField{State: FieldValidDate, Display: FormatDisplayDate(d), Value: &d}
}
