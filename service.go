package rates

type (
	// Service runs a whole request: every period is fetched before anything
	// is stored. The result maps storage names to where the rates ended up.
	Service interface {
		Run(req RunRequest) (map[string]string, error)
		Close() error
	}
)
