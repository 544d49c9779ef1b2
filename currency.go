package rates

type (
	// Fetcher resolves the exchange rate of a single currency for one period.
	Fetcher interface {
		Fetch(period Period, currency string) (RateRecord, error)
	}
)
