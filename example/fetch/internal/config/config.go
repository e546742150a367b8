package config

const (
	// OpenTelemetry configuration
	ServiceName    = "ruxios-fetch-example"
	ServiceVersion = "0.1.0"

	// Default dotenv file read when --env is used
	DefaultEnvFile = ".env"

	// Header carrying the generated request id
	RequestIDHeader = "X-Request-Id"
)
