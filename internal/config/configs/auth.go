package configs

// Auth configures the authentication stub. Every API request is served as
// UserID.
type Auth struct {
	UserID int64 `env:"USER_ID" envDefault:"1"`
}
