package configs

import "time"

// Redis configures the latest-sample cache.
type Redis struct {
	// Addr is host:port of the server. Empty disables the cache.
	Addr     string        `env:"ADDRESS"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	TTL      time.Duration `env:"TTL" envDefault:"10m"`
}

// Enabled reports whether a server is configured.
func (c Redis) Enabled() bool { return c.Addr != "" }
