package fetchers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	rates "github.com/malusev998/tariff-rates"
)

type TradeTariffFetcher struct {
	Ctx    context.Context
	URL    string
	Client *http.Client
}

// MonthlyURL is the address of the monthly rates document for period.
func (f TradeTariffFetcher) MonthlyURL(period rates.Period) string {
	url := f.URL

	if url == "" {
		url = TradeTariffURL
	}

	return fmt.Sprintf("%s/monthly_xml_%s.xml", strings.TrimRight(url, "/"), period)
}

func (f TradeTariffFetcher) download(period rates.Period) ([]byte, error) {
	ctx := f.Ctx

	if ctx == nil {
		ctx = context.Background()
	}

	client := f.Client

	if client == nil {
		client = http.DefaultClient
	}

	req, err := getData(ctx, f.MonthlyURL(period))

	if err != nil {
		return nil, fmt.Errorf("%w: %w", rates.ErrTransport, err)
	}

	res, err := client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", rates.ErrTransport, err)
	}

	defer res.Body.Close()

	if err := handleHTTPStatusCodeError(res); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(res.Body)

	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %w", rates.ErrTransport, err)
	}

	return body, nil
}

func (f TradeTariffFetcher) Fetch(period rates.Period, currency string) (rates.RateRecord, error) {
	body, err := f.download(period)

	if err != nil {
		return rates.RateRecord{}, err
	}

	rate, err := ExtractRate(body, currency)

	if errors.Is(err, rates.ErrNotFound) {
		return rates.RateRecord{}, fmt.Errorf("%w for %s", err, currency)
	}

	if err != nil {
		return rates.RateRecord{}, err
	}

	return rates.RateRecord{
		Date:     period.Label(),
		Rate:     rate,
		Currency: currency,
	}, nil
}
