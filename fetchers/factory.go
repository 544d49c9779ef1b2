package fetchers

import (
	"context"
	"net/http"

	rates "github.com/malusev998/tariff-rates"
)

type (
	BaseConfig struct {
		Ctx context.Context
		URL string
	}
	TradeTariffConfig struct {
		BaseConfig
		Client *http.Client
	}
)

func NewRateFetcher(provider rates.Provider, config interface{}) rates.Fetcher {
	switch provider {
	case rates.TradeTariffProvider:
		c, _ := config.(TradeTariffConfig)

		return TradeTariffFetcher{
			Ctx:    c.Ctx,
			URL:    c.URL,
			Client: c.Client,
		}
	}

	return nil
}
