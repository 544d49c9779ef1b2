package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"

	rates "github.com/malusev998/tariff-rates"
	"github.com/malusev998/tariff-rates/fetchers"
	"github.com/malusev998/tariff-rates/storage"
)

type (
	StorageConfig map[storage.Provider]interface{}
	Config        struct {
		Fetcher       rates.Provider
		FetcherConfig interface{}
		Storage       []storage.Provider
		StorageConfig StorageConfig
	}
)

func setDefaults() {
	viper.SetDefault("fetcher", string(rates.TradeTariffProvider))
	viper.SetDefault("endpoint", fetchers.TradeTariffURL)
	viper.SetDefault("storage", []string{string(storage.CSV)})
	viper.SetDefault("databases.mysql.table", "exchange_rates")
	viper.SetDefault("databases.mongo.collection", "exchange_rates")
}

// Database keys are read one by one so that TARIFF_RATES_DATABASES_* variables
// override single values of the config file.
func getMysqlDSN() string {
	mysqlDriverConfig := mysql.NewConfig()
	mysqlDriverConfig.User = viper.GetString("databases.mysql.user")
	mysqlDriverConfig.Passwd = viper.GetString("databases.mysql.password")
	mysqlDriverConfig.Addr = viper.GetString("databases.mysql.addr")
	mysqlDriverConfig.Net = "tcp"
	mysqlDriverConfig.DBName = viper.GetString("databases.mysql.db")

	return mysqlDriverConfig.FormatDSN()
}

func outputDir() (string, error) {
	if dir := viper.GetString("output"); dir != "" {
		return dir, nil
	}

	return os.Getwd()
}

func getConfig(ctx context.Context) (*Config, error) {
	setDefaults()

	fetcher, err := rates.ConvertToProviderFromString(viper.GetString("fetcher"))
	if err != nil {
		return nil, err
	}

	storages, err := storage.ConvertToProvidersFromStringSlice(viper.GetStringSlice("storage"))
	if err != nil {
		return nil, err
	}

	dir, err := outputDir()
	if err != nil {
		return nil, fmt.Errorf("error while resolving output directory: %w", err)
	}

	storageBaseConfig := storage.BaseConfig{
		Cxt:     ctx,
		Migrate: viper.GetBool("migrate"),
	}

	return &Config{
		Fetcher: fetcher,
		FetcherConfig: fetchers.TradeTariffConfig{
			BaseConfig: fetchers.BaseConfig{
				Ctx: ctx,
				URL: viper.GetString("endpoint"),
			},
		},
		Storage: storages,
		StorageConfig: StorageConfig{
			storage.CSV:  storage.FileConfig{Dir: dir},
			storage.XLSX: storage.FileConfig{Dir: dir},
			storage.MySQL: storage.MySQLConfig{
				BaseConfig:       storageBaseConfig,
				ConnectionString: getMysqlDSN(),
				TableName:        viper.GetString("databases.mysql.table"),
			},
			storage.MongoDB: storage.MongoDBConfig{
				BaseConfig:       storageBaseConfig,
				ConnectionString: viper.GetString("databases.mongo.uri"),
				Database:         viper.GetString("databases.mongo.db"),
				Collection:       viper.GetString("databases.mongo.collection"),
			},
		},
	}, nil
}
