package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Record store backends
const (
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Notification dispatchers
const (
	NotifierSupabase = "supabase"
	NotifierSMTP     = "smtp"
	NotifierLog      = "log"
)

type Config struct {
	Port     string
	LogLevel string
	// Record store
	RecordStore string
	DBUrl       string
	SQLitePath  string
	// Supabase (edge functions + JWT verification)
	SupabaseUrl          string
	SupabaseKey          string
	SupabaseJWTSecret    string
	NotificationFunction string
	// Notification dispatcher selection
	Notifier string
	// SMTP Configuration (Brevo)
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string // Verified sender email (different from SMTP login)
	ContactEmailTo string
	// CORS
	AllowedOrigins []string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
	RateLimitGlobalThreshold  int
	// Audit log
	ServiceName string
	Environment string
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments inject the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		LogLevel:   strings.ToLower(getEnv("LOG_LEVEL", "info")),
		DBUrl:      getEnv("DATABASE_URL", ""),
		SQLitePath: getEnv("SQLITE_PATH", "data/contact.db"),
		// Trailing slash would produce .co//functions
		SupabaseUrl:          strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseKey:          getEnv("SUPABASE_KEY", getEnv("SUPABASE_ANON_KEY", "")),
		SupabaseJWTSecret:    getEnv("SUPABASE_JWT_SECRET", ""),
		NotificationFunction: getEnv("NOTIFICATION_FUNCTION", "send-contact-notification"),
		// SMTP Configuration
		SMTPHost:       getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:  getEnv("SMTP_FROM_EMAIL", ""),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", ""),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:8080"}),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 600),
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5),
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		ServiceName:               getEnv("SERVICE_NAME", "portfolio-backend"),
		Environment:               getEnv("APP_ENV", "development"),
	}

	cfg.RecordStore = strings.ToLower(getEnv("RECORD_STORE", ""))
	if cfg.RecordStore == "" {
		if cfg.DBUrl != "" {
			cfg.RecordStore = StorePostgres
		} else {
			cfg.RecordStore = StoreSQLite
		}
	}

	cfg.Notifier = strings.ToLower(getEnv("NOTIFIER", ""))
	if cfg.Notifier == "" {
		cfg.Notifier = cfg.defaultNotifier()
	}

	if cfg.RecordStore == StorePostgres && cfg.DBUrl == "" {
		log.Println("WARNING: RECORD_STORE=postgres but DATABASE_URL is missing. Application may fail to connect.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	if cfg.Notifier == NotifierLog {
		log.Println("WARNING: no notification dispatcher configured. New messages will only be logged.")
	}

	return cfg, nil
}

func (c *Config) defaultNotifier() string {
	switch {
	case c.SupabaseConfigured():
		return NotifierSupabase
	case c.SMTPConfigured():
		return NotifierSMTP
	default:
		return NotifierLog
	}
}

// SupabaseConfigured reports whether edge functions can be invoked.
func (c *Config) SupabaseConfigured() bool {
	return c.SupabaseUrl != "" && c.SupabaseKey != ""
}

// SMTPConfigured reports whether the SMTP dispatcher has credentials and a recipient.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUsername != "" && c.SMTPPassword != "" && c.ContactEmailTo != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping empty entries
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimRight(strings.TrimSpace(part), "/"); part != "" {
			out = append(out, part)
		}
	}
	return out
}
