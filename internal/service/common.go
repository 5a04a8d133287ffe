package service

import "time"

const defaultHeapSampleInterval = 5 * time.Second

type (
	dataSourceConfig struct {
		sourcePath string
		interval   time.Duration
	}

	ConfigOption func(cfg *dataSourceConfig)
)

func WithSampleInterval(interval time.Duration) ConfigOption {
	return func(cfg *dataSourceConfig) {
		if interval > 0 {
			cfg.interval = interval
		}
	}
}
