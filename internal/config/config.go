package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	HTTPAddr    string
	DataDir     string
	DBPath      string
	KeyPrefix   string

	APIURL         string
	HTTPTimeoutSec int
	TLSSkipVerify  bool
	TLSCAFile      string
	TLSCertFile    string
	TLSKeyFile     string

	AccountName  string
	AccountEmail string
	PlanName     string
	PlanCredits  int

	ToastSeconds int
	TUILogFile   string

	ContactRatePerMinute int
	ContactBurst         int
}

func FromEnv() Config {
	dataDir := stringOrDefault("DANDI_DATA_DIR", "/data")
	dbPath := stringOrDefault("DANDI_DB_PATH", filepath.Join(dataDir, "dandi", "keys.sqlite"))

	return Config{
		Environment: stringOrDefault("DANDI_ENV", "development"),
		HTTPAddr:    stringOrDefault("DANDI_HTTP_ADDR", ":8080"),
		DataDir:     dataDir,
		DBPath:      dbPath,
		KeyPrefix:   stringOrDefault("DANDI_KEY_PREFIX", "dandi-"),

		APIURL:         stringOrDefault("DANDI_API_URL", "http://localhost:8080"),
		HTTPTimeoutSec: nonNegativeIntOrDefault("DANDI_HTTP_TIMEOUT_SECONDS", 0),
		TLSSkipVerify:  boolOrDefault("DANDI_TLS_SKIP_VERIFY", false),
		TLSCAFile:      strings.TrimSpace(os.Getenv("DANDI_TLS_CA_FILE")),
		TLSCertFile:    strings.TrimSpace(os.Getenv("DANDI_TLS_CERT_FILE")),
		TLSKeyFile:     strings.TrimSpace(os.Getenv("DANDI_TLS_KEY_FILE")),

		AccountName:  stringOrDefault("DANDI_ACCOUNT_NAME", "Personal"),
		AccountEmail: stringOrDefault("DANDI_ACCOUNT_EMAIL", "you@example.com"),
		PlanName:     stringOrDefault("DANDI_PLAN_NAME", "Researcher"),
		PlanCredits:  intOrDefault("DANDI_PLAN_CREDITS", 1000),

		ToastSeconds: intOrDefault("DANDI_TOAST_SECONDS", 3),
		TUILogFile:   strings.TrimSpace(os.Getenv("DANDI_TUI_LOG_FILE")),

		ContactRatePerMinute: intOrDefault("DANDI_CONTACT_RATE_PER_MINUTE", 6),
		ContactBurst:         intOrDefault("DANDI_CONTACT_BURST", 3),
	}
}

// LoadDotEnv exports the variables in each existing file without overriding
// the process environment. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

func stringOrDefault(name, fallback string) string {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	return value
}

func intOrDefault(name string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return fallback
	}
	return parsed
}

// nonNegativeIntOrDefault accepts 0 as an explicit value.
func nonNegativeIntOrDefault(name string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}

func boolOrDefault(name string, fallback bool) bool {
	value := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	switch value {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
