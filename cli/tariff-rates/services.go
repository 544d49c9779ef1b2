package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	rates "github.com/malusev998/tariff-rates"
	"github.com/malusev998/tariff-rates/fetchers"
	"github.com/malusev998/tariff-rates/services"
	"github.com/malusev998/tariff-rates/storage"
)

func createStorages(config *Config) ([]rates.Storage, error) {
	storages := make([]rates.Storage, 0, len(config.Storage))
	for _, s := range config.Storage {
		c, ok := config.StorageConfig[s]
		if !ok {
			closeStorages(storages)
			return nil, fmt.Errorf("storage %s does not exist", s)
		}

		st, err := storage.NewStorage(s, c)

		if err != nil {
			closeStorages(storages)
			return nil, fmt.Errorf("error while creating %s storage: %w", s, err)
		}

		storages = append(storages, st)
	}

	return storages, nil
}

func closeStorages(storages []rates.Storage) {
	for _, st := range storages {
		_ = st.Close()
	}
}

func newService(ctx context.Context, logger logrus.FieldLogger) (rates.Service, error) {
	config, err := getConfig(ctx)
	if err != nil {
		return nil, err
	}

	fetcher := fetchers.NewRateFetcher(config.Fetcher, config.FetcherConfig)
	if fetcher == nil {
		return nil, fmt.Errorf("fetcher %s does not exist", config.Fetcher)
	}

	storages, err := createStorages(config)
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"fetcher":  config.Fetcher,
		"storages": config.Storage,
	}).Debug("service configured")

	return services.Service{
		Fetcher: fetcher,
		Storage: storages,
		Logger:  logger,
	}, nil
}
