package cmd

import "time"

// Config carries the runtime settings of the service. DBHost selects the
// storage backend: when it is empty, orders live in memory alongside the
// cart; otherwise orders are stored in Postgres.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	TrackingInterval time.Duration
	PaymentDelay     time.Duration
	PreferencesPath  string
}

// UsesPostgres reports whether orders are stored in Postgres.
func (c Config) UsesPostgres() bool {
	return c.DBHost != ""
}
