package validator

// Field names the reservation field a rejection refers to.
type Field string

const (
	FieldDate      Field = "date"
	FieldTime      Field = "time"
	FieldPartySize Field = "party_size"
	FieldName      Field = "name"
	FieldPhone     Field = "phone"
)

// Code classifies a rejection.
type Code string

const (
	CodeFormat       Code = "format"
	CodeClosedDay    Code = "closed_day"
	CodePastDate     Code = "past_date"
	CodeTooFarAhead  Code = "too_far_ahead"
	CodePastTime     Code = "past_time"
	CodeOutsideHours Code = "outside_hours"
	CodeInterval     Code = "interval"
	CodeNotPositive  Code = "not_positive"
	CodeTooLarge     Code = "too_large"
	CodeEmpty        Code = "empty"
)

// Error is a rejected field value. Reason is meant for the user.
type Error struct {
	Field  Field
	Code   Code
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

func reject(field Field, code Code, reason string) *Error {
	return &Error{Field: field, Code: code, Reason: reason}
}
