package configs

// Kafka configures the data point stream.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"simulation.datapoints"`
}

// Enabled reports whether at least one broker is configured.
func (c Kafka) Enabled() bool { return len(c.Brokers) > 0 }
