package cmd

// Config carries the runtime settings of the courier service, read from the
// environment by the entry point.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	NatsURL    string

	// OtpLength is the number of trailing task-id characters used as the
	// one-time password for OTP-confirmed tasks.
	OtpLength int

	// MovementSchedule is the six-field cron expression of the courier
	// movement job.
	MovementSchedule string

	// MovementStepFraction is the share of the remaining distance a courier
	// covers per movement tick, in (0, 1].
	MovementStepFraction float64
}
