package rates_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	rates "github.com/malusev998/tariff-rates"
)

func TestConvertToProvidersFromStringSlice(t *testing.T) {
	assert := require.New(t)

	values := []struct {
		value    []string
		expected interface{}
		err      error
	}{
		{[]string{"tradetariff", "HMRC"}, []rates.Provider{rates.TradeTariffProvider, rates.TradeTariffProvider}, nil},
		{[]string{"not-valid-value"}, []rates.Provider(nil), errors.New("value not-valid-value is not valid Provider")},
	}
	for _, value := range values {
		providers, err := rates.ConvertToProvidersFromStringSlice(value.value)
		assert.Equal(value.expected, providers)
		assert.Equal(value.err, err)
	}
}

func TestConvertToProviderFromString(t *testing.T) {
	assert := require.New(t)
	values := []struct {
		value    string
		expected interface{}
		err      error
	}{
		{"tradetariff", rates.TradeTariffProvider, nil},
		{"Trade-Tariff", rates.TradeTariffProvider, nil},
		{"", rates.Provider(""), errors.New("value  is not valid Provider")},
		{"not-valid-value", rates.Provider(""), errors.New("value not-valid-value is not valid Provider")},
	}

	for _, value := range values {
		provider, err := rates.ConvertToProviderFromString(value.value)
		assert.Equal(value.expected, provider)
		assert.Equal(value.err, err)
	}
}
