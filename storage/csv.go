package storage

import (
	"encoding/csv"
	"io"

	rates "github.com/malusev998/tariff-rates"
)

var csvHeader = []string{"Date", "Rate", "Currency"}

type csvStorage struct {
	config FileConfig
}

func NewCSVStorage(config FileConfig) rates.FileStorage {
	return csvStorage{config: config}
}

// WriteCSV writes the records to path with a Date,Rate,Currency header. The
// file is replaced only when every row was written.
func WriteCSV(path string, records []rates.RateRecord) error {
	return writeFile(path, func(w io.Writer) error {
		writer := csv.NewWriter(w)

		if err := writer.Write(csvHeader); err != nil {
			return err
		}

		for _, record := range records {
			if err := writer.Write([]string{record.Date, record.Rate, record.Currency}); err != nil {
				return err
			}
		}

		writer.Flush()

		return writer.Error()
	})
}

func (c csvStorage) Store(req rates.RunRequest, records []rates.RateRecord) (string, error) {
	path := outputPath(c.config, req, "")

	if err := WriteCSV(path, records); err != nil {
		return "", err
	}

	return path, nil
}

func (c csvStorage) Remove(location string) error {
	return removeFile(location)
}

func (c csvStorage) GetStorageProviderName() string {
	return string(CSV)
}

func (c csvStorage) Close() error {
	return nil
}
