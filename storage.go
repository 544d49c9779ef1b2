package rates

type (
	Storage interface {
		Store(req RunRequest, records []RateRecord) (string, error)
		GetStorageProviderName() string
		Close() error
	}

	// FileStorage is a Storage that writes to the local filesystem. Remove
	// takes back a file it stored when another storage of the run failed.
	FileStorage interface {
		Storage
		Remove(location string) error
	}
)
