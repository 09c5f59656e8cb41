package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fantacalcio/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                 string
	ServiceName            string
	ServiceVersion         string
	HTTPAddr               string
	ReadTimeout            time.Duration
	WriteTimeout           time.Duration
	DBPath                 string
	DBMaxOpenConns         int
	DBBusyTimeout          time.Duration
	DBAutoMigrate          bool
	DefaultTeamBudget      int64
	UploadMaxBytes         int64
	StatsTopN              int
	CORSAllowedOrigins     []string
	RateLimitEnabled       bool
	RateLimitRPS           float64
	RateLimitBurst         int
	SwaggerEnabled         bool
	PprofEnabled           bool
	PprofAddr              string
	UptraceEnabled         bool
	UptraceDSN             string
	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration
	LogLevel               logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := parsePositiveDuration("APP_READ_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	// Uploads and backup downloads can be large; keep the write timeout generous.
	writeTimeout, err := parsePositiveDuration("APP_WRITE_TIMEOUT", "60s")
	if err != nil {
		return Config{}, err
	}

	dbPath := strings.TrimSpace(getEnv("DB_PATH", "./data/fantacalcio.db"))
	dbMaxOpenConns, err := getEnvAsInt("DB_MAX_OPEN_CONNS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_MAX_OPEN_CONNS: %w", err)
	}
	if dbMaxOpenConns < 1 {
		return Config{}, fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 1")
	}
	dbBusyTimeout, err := parsePositiveDuration("DB_BUSY_TIMEOUT", "5s")
	if err != nil {
		return Config{}, err
	}
	dbAutoMigrate, err := strconv.ParseBool(getEnv("DB_AUTO_MIGRATE", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_AUTO_MIGRATE: %w", err)
	}

	defaultTeamBudget, err := getEnvAsInt("DEFAULT_TEAM_BUDGET", 500)
	if err != nil {
		return Config{}, fmt.Errorf("parse DEFAULT_TEAM_BUDGET: %w", err)
	}
	if defaultTeamBudget <= 0 {
		return Config{}, fmt.Errorf("DEFAULT_TEAM_BUDGET must be > 0")
	}
	uploadMaxBytes, err := getEnvAsInt("UPLOAD_MAX_BYTES", 10<<20)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPLOAD_MAX_BYTES: %w", err)
	}
	if uploadMaxBytes <= 0 {
		return Config{}, fmt.Errorf("UPLOAD_MAX_BYTES must be > 0")
	}
	statsTopN, err := getEnvAsInt("STATS_TOP_N", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_TOP_N: %w", err)
	}
	if statsTopN < 1 {
		return Config{}, fmt.Errorf("STATS_TOP_N must be >= 1")
	}

	rateLimitEnabled, err := strconv.ParseBool(getEnv("RATE_LIMIT_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_ENABLED: %w", err)
	}
	rateLimitRPS, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "20"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_RPS: %w", err)
	}
	rateLimitBurst, err := getEnvAsInt("RATE_LIMIT_BURST", 40)
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_BURST: %w", err)
	}
	if rateLimitEnabled && (rateLimitRPS <= 0 || rateLimitBurst < 1) {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS must be > 0 and RATE_LIMIT_BURST >= 1 when RATE_LIMIT_ENABLED=true")
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := parsePositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	serviceName := getEnv("APP_SERVICE_NAME", "fantacalcio-api")

	return Config{
		AppEnv:                 appEnv,
		ServiceName:            serviceName,
		ServiceVersion:         getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:               getEnv("APP_HTTP_ADDR", ":3001"),
		ReadTimeout:            readTimeout,
		WriteTimeout:           writeTimeout,
		DBPath:                 dbPath,
		DBMaxOpenConns:         dbMaxOpenConns,
		DBBusyTimeout:          dbBusyTimeout,
		DBAutoMigrate:          dbAutoMigrate,
		DefaultTeamBudget:      int64(defaultTeamBudget),
		UploadMaxBytes:         int64(uploadMaxBytes),
		StatsTopN:              statsTopN,
		CORSAllowedOrigins:     splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		RateLimitEnabled:       rateLimitEnabled,
		RateLimitRPS:           rateLimitRPS,
		RateLimitBurst:         rateLimitBurst,
		SwaggerEnabled:         swaggerEnabled,
		PprofEnabled:           pprofEnabled,
		PprofAddr:              pprofAddr,
		UptraceEnabled:         uptraceEnabled,
		UptraceDSN:             uptraceDSN,
		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: pyroscopeServerAddress,
		PyroscopeAppName:       getEnv("PYROSCOPE_APP_NAME", serviceName),
		PyroscopeAuthToken:     strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:    pyroscopeUploadRate,
		LogLevel:               logging.ParseLevel(strings.TrimSpace(getEnv("APP_LOG_LEVEL", "info"))),
	}, nil
}

func parsePositiveDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return d, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
