package configs

import "time"

// Simulation configures the background ticker and history reads.
type Simulation struct {
	// Enabled starts the ticker in the serve command.
	Enabled bool `env:"ENABLED" envDefault:"true"`
	// TickInterval is the time between two samples of an active campaign.
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"5s"`
	// Concurrency bounds how many campaigns are simulated at once.
	Concurrency int `env:"CONCURRENCY" envDefault:"4"`
	// HistoryLimit is the default number of samples returned by history reads.
	HistoryLimit int `env:"HISTORY_LIMIT" envDefault:"100"`
}
