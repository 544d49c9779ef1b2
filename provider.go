package rates

import (
	"fmt"
	"strings"
)

type Provider string

const (
	TradeTariffProvider Provider = "TradeTariff"
)

func ConvertToProvidersFromStringSlice(strings []string) ([]Provider, error) {
	providers := make([]Provider, 0, len(strings))

	for _, str := range strings {
		provider, err := ConvertToProviderFromString(str)
		if err != nil {
			return nil, err
		}

		providers = append(providers, provider)
	}

	return providers, nil
}

func ConvertToProviderFromString(str string) (Provider, error) {
	switch strings.ToLower(str) {
	case "tradetariff", "trade-tariff", "hmrc":
		return TradeTariffProvider, nil
	}

	return "", fmt.Errorf("value %s is not valid Provider", str)
}
