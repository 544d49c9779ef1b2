package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	rates "github.com/malusev998/tariff-rates"
)

const averagePrecision = 6

var ErrNothingToSummarize = errors.New("no rates to summarize")

type Summary struct {
	Count   int
	Min     decimal.Decimal
	Max     decimal.Decimal
	Average decimal.Decimal
}

// Summarize computes statistics over the rates of a run. It is only used for
// reporting; records are written with their rates untouched.
func Summarize(records []rates.RateRecord) (Summary, error) {
	if len(records) == 0 {
		return Summary{}, ErrNothingToSummarize
	}

	values := make([]decimal.Decimal, 0, len(records))

	for _, record := range records {
		value, err := decimal.NewFromString(record.Rate)
		if err != nil {
			return Summary{}, fmt.Errorf("rate %q of %s is not a decimal: %w", record.Rate, record.Date, err)
		}

		values = append(values, value)
	}

	sum := decimal.Sum(values[0], values[1:]...)

	return Summary{
		Count:   len(values),
		Min:     decimal.Min(values[0], values[1:]...),
		Max:     decimal.Max(values[0], values[1:]...),
		Average: sum.DivRound(decimal.NewFromInt(int64(len(values))), averagePrecision),
	}, nil
}
