package configs

// Stripe configures the premium subscription checkout. Billing is disabled
// while SecretKey is empty.
type Stripe struct {
	SecretKey     string `env:"SECRET_KEY"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
	// PriceID is the recurring price of the premium tier.
	PriceID    string `env:"PRICE_ID"`
	SuccessURL string `env:"SUCCESS_URL" envDefault:"http://localhost:5173/subscription?status=success"`
	CancelURL  string `env:"CANCEL_URL" envDefault:"http://localhost:5173/subscription?status=cancel"`
}

func (c Stripe) Enabled() bool { return c.SecretKey != "" }
