package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	rates "github.com/malusev998/tariff-rates"
)

type (
	Provider   string
	BaseConfig struct {
		Cxt     context.Context
		Migrate bool
	}
	FileConfig struct {
		Dir string
	}
	MySQLConfig struct {
		BaseConfig
		ConnectionString string
		TableName        string
		IDGenerator      IDGenerator
	}
	MongoDBConfig struct {
		BaseConfig
		ConnectionString string
		Database         string
		Collection       string
	}
)

const (
	CSV     Provider = "csv"
	XLSX    Provider = "xlsx"
	MySQL   Provider = "mysql"
	MongoDB Provider = "mongodb"
)

var (
	ErrStorageNotFound = errors.New("storage is not found")
	ErrInvalidConfig   = errors.New("invalid storage config")
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
	case "csv":
		return CSV, nil
	case "xlsx", "excel":
		return XLSX, nil
	case "mysql":
		return MySQL, nil
	case "mongodb", "mongo":
		return MongoDB, nil
	}

	return "", fmt.Errorf("value %s is not valid Provider", str)
}

func NewStorage(provider Provider, config interface{}) (rates.Storage, error) {
	switch provider {
	case CSV, XLSX:
		c, ok := config.(FileConfig)
		if !ok {
			return nil, fmt.Errorf("%w for %s", ErrInvalidConfig, provider)
		}

		if provider == XLSX {
			return NewXLSXStorage(c), nil
		}

		return NewCSVStorage(c), nil
	case MySQL:
		c, ok := config.(MySQLConfig)
		if !ok {
			return nil, fmt.Errorf("%w for %s", ErrInvalidConfig, provider)
		}

		return NewMySQLStorage(c)
	case MongoDB:
		c, ok := config.(MongoDBConfig)
		if !ok {
			return nil, fmt.Errorf("%w for %s", ErrInvalidConfig, provider)
		}

		return NewMongoStorage(c)
	}

	return nil, ErrStorageNotFound
}
