package rates

import (
	"fmt"
	"time"
)

const (
	periodLayout = "2006-01"
	labelLayout  = "01/2006"
)

type (
	Period struct {
		Month time.Month
		Year  int
	}

	RateRecord struct {
		Date     string
		Rate     string
		Currency string
	}

	RunRequest struct {
		Currency   string
		Year       uint16
		FiscalYear bool
	}
)

func (p Period) firstDay() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// String formats the period as YYYY-MM.
func (p Period) String() string {
	return p.firstDay().Format(periodLayout)
}

// Label formats the period as MM/YYYY, the form used in output rows.
func (p Period) Label() string {
	return p.firstDay().Format(labelLayout)
}

func NewRunRequest(currency string, year uint16, fiscalYear bool) (RunRequest, error) {
	if currency == "" {
		return RunRequest{}, ErrEmptyCurrency
	}

	return RunRequest{
		Currency:   currency,
		Year:       year,
		FiscalYear: fiscalYear,
	}, nil
}

// OutputName is the base name of the file a run is written to. The year is
// the one requested, even for fiscal years that end in the next one.
func OutputName(req RunRequest) string {
	return fmt.Sprintf("exchange-rates-%s-%d", req.Currency, req.Year)
}
