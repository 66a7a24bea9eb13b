package config

import (
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	JWTSecret      string
	APIKey         string
	Port           string
	AllowedOrigins string
	MetricsEnabled bool
	// NineSiteFormula is "durnin" or "parillo".
	NineSiteFormula string
	CalcRateLimit   int
	CalcRateWindow  time.Duration
	// TrustProxy keys rate limits by X-Forwarded-For. Set only behind a
	// proxy that overwrites the header.
	TrustProxy bool
}

// Load reads the environment, after merging an optional .env file.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env: %v", err)
	}

	return &Config{
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "3306"),
		DBUser:          getEnv("DB_USER", "bodytest"),
		DBPassword:      getEnv("DB_PASSWORD", "bodytest_pass"),
		DBName:          getEnv("DB_NAME", "bodytest"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		APIKey:          getEnv("API_KEY", ""),
		Port:            getEnv("PORT", "8080"),
		AllowedOrigins:  getEnv("ALLOWED_ORIGINS", "*"),
		MetricsEnabled:  getBool("METRICS_ENABLED", true),
		NineSiteFormula: strings.ToLower(getEnv("NINE_SITE_FORMULA", "durnin")),
		CalcRateLimit:   getInt("CALC_RATE_LIMIT", 60),
		CalcRateWindow:  getDuration("CALC_RATE_WINDOW", time.Minute),
		TrustProxy:      getBool("TRUST_PROXY", false),
	}
}

func (c *Config) DSN() string {
	m := mysql.NewConfig()
	m.User = c.DBUser
	m.Passwd = c.DBPassword
	m.Net = "tcp"
	m.Addr = net.JoinHostPort(c.DBHost, c.DBPort)
	m.DBName = c.DBName
	m.ParseTime = true
	m.Params = map[string]string{"charset": "utf8mb4"}
	return m.FormatDSN()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
