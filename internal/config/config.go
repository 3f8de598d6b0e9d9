package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// CORS
	AllowedOrigins []string

	// Booking rules
	BookingOpenTime         string
	BookingCloseTime        string
	BookingSpecialCloseTime string
	BookingSlotInterval     time.Duration
	BookingExcludedDays     []string
	BookingSpecialDays      []string

	// Simulated backend delay for booking/submission confirmation
	SubmitDelay time.Duration

	// Submissions
	SubmissionMaxFileSize int64

	// Logging
	LogLevel string
}

func Load() *Config {
	// Load .env file in development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// CORS
		AllowedOrigins: parseStringSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		// Booking rules
		BookingOpenTime:         getEnv("BOOKING_OPEN_TIME", "09:00"),
		BookingCloseTime:        getEnv("BOOKING_CLOSE_TIME", "17:00"),
		BookingSpecialCloseTime: getEnv("BOOKING_SPECIAL_CLOSE_TIME", "15:00"),
		BookingSlotInterval:     parseDuration(getEnv("BOOKING_SLOT_INTERVAL", "60m"), 60*time.Minute),
		BookingExcludedDays:     parseStringSlice(getEnv("BOOKING_EXCLUDED_DAYS", "Sunday")),
		BookingSpecialDays:      parseStringSlice(getEnv("BOOKING_SPECIAL_DAYS", "Friday")),

		// Simulated backend delay
		SubmitDelay: parseDuration(getEnv("SUBMIT_DELAY", "1200ms"), 1200*time.Millisecond),

		// Submissions
		SubmissionMaxFileSize: parseInt64(getEnv("SUBMISSION_MAX_FILE_SIZE", "10485760"), 10*1024*1024),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseDuration(s string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return defaultValue
	}
	return d
}

func parseInt64(s string, defaultValue int64) int64 {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func parseStringSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
