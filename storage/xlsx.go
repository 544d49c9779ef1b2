package storage

import (
	"io"

	"github.com/xuri/excelize/v2"

	rates "github.com/malusev998/tariff-rates"
)

const xlsxSheet = "Rates"

type xlsxStorage struct {
	config FileConfig
}

func NewXLSXStorage(config FileConfig) rates.FileStorage {
	return xlsxStorage{config: config}
}

func buildWorkbook(records []rates.RateRecord) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), xlsxSheet); err != nil {
		_ = f.Close()
		return nil, err
	}

	header := make([]interface{}, 0, len(csvHeader))
	for _, h := range csvHeader {
		header = append(header, h)
	}

	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		_ = f.Close()
		return nil, err
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			_ = f.Close()
			return nil, err
		}

		// Rates stay text cells so the spreadsheet shows them as published.
		row := []interface{}{record.Date, record.Rate, record.Currency}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return f, nil
}

func (x xlsxStorage) Store(req rates.RunRequest, records []rates.RateRecord) (string, error) {
	path := outputPath(x.config, req, ".xlsx")

	err := writeFile(path, func(w io.Writer) error {
		f, err := buildWorkbook(records)
		if err != nil {
			return err
		}

		defer f.Close()

		_, err = f.WriteTo(w)

		return err
	})

	if err != nil {
		return "", err
	}

	return path, nil
}

func (x xlsxStorage) Remove(location string) error {
	return removeFile(location)
}

func (x xlsxStorage) GetStorageProviderName() string {
	return string(XLSX)
}

func (x xlsxStorage) Close() error {
	return nil
}
