package fetchers

import (
	"context"
	"fmt"
	"net/http"

	rates "github.com/malusev998/tariff-rates"
)

const (
	TradeTariffURL = "https://www.trade-tariff.service.gov.uk/api/v2/exchange_rates/files"
)

var (
	ErrClient  = fmt.Errorf("%w: client error", rates.ErrTransport)
	ErrServer  = fmt.Errorf("%w: server error", rates.ErrTransport)
	ErrUnknown = fmt.Errorf("%w: unknown error", rates.ErrTransport)
)

func getData(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "application/xml")

	return req, nil
}

func handleHTTPStatusCodeError(res *http.Response) error {
	if res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	switch {
	case res.StatusCode >= http.StatusBadRequest && res.StatusCode < http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrClient, res.Status)
	case res.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrServer, res.Status)
	default:
		return fmt.Errorf("%w: %s", ErrUnknown, res.Status)
	}
}
