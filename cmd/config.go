package cmd

// Config carries the process configuration loaded from the environment.
// RabbitURL is optional: when empty, the external event feed is disabled and
// lifecycle events reach connected clients over WebSocket only.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	RabbitURL  string
}
