package rates

import (
	"errors"
	"fmt"
)

var (
	ErrTransport     = errors.New("transport error")
	ErrParse         = errors.New("parse error")
	ErrNotFound      = errors.New("no exchange rate found")
	ErrIO            = errors.New("io error")
	ErrEmptyCurrency = errors.New("currency code is required")

	ErrMalformedDocument = fmt.Errorf("%w: malformed xml document", ErrParse)
	ErrMissingParent     = fmt.Errorf("%w: currencyCode element has no parent", ErrParse)
	ErrMissingRate       = fmt.Errorf("%w: rateNew element not found next to currencyCode", ErrParse)
	ErrMissingRateText   = fmt.Errorf("%w: rateNew element has no text", ErrParse)
)

// PeriodError reports the period a run stopped at.
type PeriodError struct {
	Period Period
	Err    error
}

func (e *PeriodError) Error() string {
	return fmt.Sprintf("%s: %v", e.Period, e.Err)
}

func (e *PeriodError) Unwrap() error {
	return e.Err
}
