package rates

import "time"

const fiscalYearStart = time.April

// Periods returns the twelve months to query for a year, January to December,
// or April to March of the following year when fiscalYear is set.
func Periods(year int, fiscalYear bool) []Period {
	start := time.January

	if fiscalYear {
		start = fiscalYearStart
	}

	periods := make([]Period, 0, 12)

	for i := 0; i < 12; i++ {
		month := int(start) + i
		y := year

		if month > 12 {
			month -= 12
			y++
		}

		periods = append(periods, Period{Month: time.Month(month), Year: y})
	}

	return periods
}
