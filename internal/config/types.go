package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string `envconfig:"DB_NAME" default:"scoreline.db"`
	MigrationsDir string `envconfig:"MIGRATIONS_DIR" default:"./migrations"`
	Port          string `envconfig:"PORT" default:"8080"`
	ProjectID     string `envconfig:"GCP_PROJECT"`
	Slack         SlackConfig
	Turso         TursoConfig
	Clock         ClockConfig
	// RandomSeed makes tosses and draws reproducible when non-zero.
	RandomSeed uint64 `envconfig:"RANDOM_SEED"`
	// AllowedOrigins feeds the CORS handler.
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
}
type SlackConfig struct {
	Token         string `envconfig:"SLACK_BOT_TOKEN"`
	ChannelID     string `envconfig:"SLACK_CHANNEL_ID"`
	SigningSecret string `envconfig:"SLACK_SIGNING_SECRET"`
}
type TursoConfig struct {
	PrimaryURL string `envconfig:"TURSO_PRIMARY_URL"`
	AuthToken  string `envconfig:"TURSO_AUTH_TOKEN"`
}
type ClockConfig struct {
	Enabled bool `envconfig:"CLOCK_ENABLED" default:"true"`
}
