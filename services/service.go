package services

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	rates "github.com/malusev998/tariff-rates"
)

var ErrNoStorageProvided = errors.New("no storage provided")

type Service struct {
	Fetcher rates.Fetcher
	Storage []rates.Storage
	Logger  logrus.FieldLogger
}

func (s Service) logger() logrus.FieldLogger {
	if s.Logger == nil {
		return logrus.StandardLogger()
	}

	return s.Logger
}

// Collect fetches every period of req in order and stops at the first one
// that does not yield a rate.
func (s Service) Collect(req rates.RunRequest) ([]rates.RateRecord, error) {
	periods := rates.Periods(int(req.Year), req.FiscalYear)
	records := make([]rates.RateRecord, 0, len(periods))

	for _, period := range periods {
		logger := s.logger().WithFields(logrus.Fields{
			"currency": req.Currency,
			"period":   period.String(),
		})

		logger.Debug("fetching exchange rate")

		record, err := s.Fetcher.Fetch(period, req.Currency)

		if err != nil {
			return nil, &rates.PeriodError{Period: period, Err: err}
		}

		logger.WithField("rate", record.Rate).Debug("exchange rate found")
		records = append(records, record)
	}

	return records, nil
}

func saveToStorage(
	wg *sync.WaitGroup,
	req rates.RunRequest,
	records []rates.RateRecord,
	data map[string]string,
	storage rates.Storage,
	errorChannel chan<- error,
	mutex sync.Locker,
) {
	defer wg.Done()
	location, err := storage.Store(req, records)

	if err != nil {
		errorChannel <- err
		return
	}

	mutex.Lock()
	data[storage.GetStorageProviderName()] = location
	mutex.Unlock()
}

// store hands records to every storage at once and collects their locations
// into data.
func store(storages []rates.Storage, req rates.RunRequest, records []rates.RateRecord, data map[string]string) error {
	var wg sync.WaitGroup
	mutex := &sync.Mutex{}
	errorChannel := make(chan error, len(storages))

	wg.Add(len(storages))
	for _, storage := range storages {
		go saveToStorage(&wg, req, records, data, storage, errorChannel, mutex)
	}

	wg.Wait()
	close(errorChannel)

	if err, more := <-errorChannel; more {
		return err
	}

	return nil
}

func splitStorages(storages []rates.Storage) (archives []rates.Storage, files []rates.Storage) {
	for _, storage := range storages {
		if _, ok := storage.(rates.FileStorage); ok {
			files = append(files, storage)
		} else {
			archives = append(archives, storage)
		}
	}

	return archives, files
}

// removeFiles takes back the files of a run that did not complete.
func (s Service) removeFiles(files []rates.Storage, data map[string]string) {
	for _, storage := range files {
		location, ok := data[storage.GetStorageProviderName()]
		if !ok {
			continue
		}

		if err := storage.(rates.FileStorage).Remove(location); err != nil {
			s.logger().WithError(err).WithField("location", location).Warn("file of a failed run was not removed")
		}
	}
}

// Run collects every period of req and stores the records. Files are
// written only after every other storage succeeded, and are removed again
// when one of them fails, so a failed run leaves no file behind.
func (s Service) Run(req rates.RunRequest) (map[string]string, error) {
	if len(s.Storage) == 0 {
		return nil, ErrNoStorageProvided
	}

	records, err := s.Collect(req)
	if err != nil {
		return nil, err
	}

	s.logSummary(records)

	archives, files := splitStorages(s.Storage)
	data := make(map[string]string, len(s.Storage))

	if err := store(archives, req, records, data); err != nil {
		return nil, err
	}

	if err := store(files, req, records, data); err != nil {
		s.removeFiles(files, data)
		return nil, err
	}

	for storage, location := range data {
		s.logger().WithFields(logrus.Fields{
			"storage":  storage,
			"location": location,
		}).Info("exchange rates written")
	}

	return data, nil
}

func (s Service) logSummary(records []rates.RateRecord) {
	summary, err := Summarize(records)

	if err != nil {
		s.logger().WithError(err).Warn("rates could not be summarized")
		return
	}

	s.logger().WithFields(logrus.Fields{
		"months":  summary.Count,
		"min":     summary.Min.String(),
		"max":     summary.Max.String(),
		"average": summary.Average.String(),
	}).Info("exchange rates collected")
}

// Close releases every storage and returns the first error encountered.
func (s Service) Close() error {
	var first error

	for _, storage := range s.Storage {
		if err := storage.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}
