package config

import (
	"os"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Session token
	JWTSecret string
	JWTExpiry time.Duration

	// Quote upstream
	QuoteAPIURL  string
	QuoteTimeout time.Duration

	// Server
	Port        string
	AppEnv      string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "mini_productivity"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// 365 days, the session lifetime the clients expect
		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "8760h"), 8760*time.Hour),

		QuoteAPIURL:  getEnv("QUOTE_API_URL", "https://zenquotes.io/api/random"),
		QuoteTimeout: parseDuration(getEnv("QUOTE_TIMEOUT", "10s"), 10*time.Second),

		Port:   getEnv("PORT", "5000"),
		AppEnv: getEnv("APP_ENV", "development"),
		CORSOrigins: getEnv("CORS_ORIGINS",
			"http://localhost:5173, http://localhost:5174, http://localhost:5175, https://mini-productivity-client-463j.vercel.app"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// IsProduction controls cookie attributes: Secure + SameSite=None in
// production, SameSite=Strict everywhere else.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
