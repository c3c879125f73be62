package domain

import "errors"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrMalformedSource = errors.New("malformed sleep export")
	ErrShapeMismatch   = errors.New("sleep levels do not align with records")
	ErrMissingDate     = errors.New("dateOfSleep is missing")
	ErrInvalidDate     = errors.New("dateOfSleep is not a valid date")
	ErrInvalidField    = errors.New("field has an unexpected value")
	ErrUnknownColumn   = errors.New("unknown column")
	ErrNoData          = errors.New("no plottable data")
)
