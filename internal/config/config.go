package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultValidatorURL is where a validator listens for transaction processors
	// in the stock docker-compose network.
	DefaultValidatorURL = "tcp://validator:4004"

	defaultAppName        = "simplewallet-sim"
	defaultPort           = "8080"
	defaultLogLevel       = "info"
	defaultShutdownDelay  = 10 * time.Second
	defaultIdempotencyTTL = 24 * time.Hour
	defaultMaxQueueSize   = 100

	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Processor captures the transaction processor configuration.
type Processor struct {
	ValidatorURL string
	LogLevel     string
	MaxQueueSize int
	ThreadCount  int
}

// LoadProcessor reads the environment and then the command line
// "[options] [connect_string]". Usage is written to output when the
// arguments ask for help or are invalid; flag.ErrHelp is returned for
// -h/--help.
func LoadProcessor(args []string, output io.Writer) (Processor, error) {
	cfg := Processor{
		ValidatorURL: getEnv("VALIDATOR_URL", DefaultValidatorURL),
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
	}

	var err error
	if cfg.MaxQueueSize, err = intEnv("MAX_QUEUE_SIZE", defaultMaxQueueSize); err != nil {
		return Processor{}, err
	}
	if cfg.ThreadCount, err = intEnv("THREAD_COUNT", 0); err != nil {
		return Processor{}, err
	}

	fs := flag.NewFlagSet("simplewallet-tp", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() { Usage(output) }
	if err := fs.Parse(args); err != nil {
		return Processor{}, err
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		cfg.ValidatorURL = rest[0]
	default:
		fmt.Fprintf(output, "Invalid command line argument: %s\n", rest[0])
		Usage(output)
		return Processor{}, fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}

	return cfg, nil
}

// Usage prints the processor command line help.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "Usage")
	fmt.Fprintln(w, "simplewallet-tp [options] [connect_string]")
	fmt.Fprintln(w, "  -h, --help - print this message")
	fmt.Fprintln(w, "  connect_string - connect string to validator in format tcp://host:port")
	fmt.Fprintf(w, "                   (default %s)\n", DefaultValidatorURL)
}

// Simulator captures the local simulator's runtime configuration loaded from
// environment variables.
type Simulator struct {
	AppName        string
	Port           string
	LogLevel       string
	DatabaseURL    string
	RedisURL       string
	StateBackend   string
	ShutdownPeriod time.Duration
	IdempotencyTTL time.Duration
}

// LoadSimulator reads configuration values from the environment.
func LoadSimulator() (Simulator, error) {
	cfg := Simulator{
		AppName:     getEnv("APP_NAME", defaultAppName),
		Port:        getEnv("PORT", defaultPort),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
	}

	var err error
	if cfg.ShutdownPeriod, err = durationEnv("SHUTDOWN_TIMEOUT", defaultShutdownDelay); err != nil {
		return Simulator{}, err
	}
	if cfg.IdempotencyTTL, err = durationEnv("IDEMPOTENCY_TTL", defaultIdempotencyTTL); err != nil {
		return Simulator{}, err
	}

	cfg.StateBackend = strings.ToLower(os.Getenv("STATE_BACKEND"))
	if cfg.StateBackend == "" {
		switch {
		case cfg.DatabaseURL != "":
			cfg.StateBackend = BackendPostgres
		case cfg.RedisURL != "":
			cfg.StateBackend = BackendRedis
		default:
			cfg.StateBackend = BackendMemory
		}
	}

	switch cfg.StateBackend {
	case BackendMemory:
	case BackendRedis:
		if cfg.RedisURL == "" {
			return Simulator{}, fmt.Errorf("REDIS_URL must be set when STATE_BACKEND=%s", BackendRedis)
		}
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return Simulator{}, fmt.Errorf("DATABASE_URL must be set when STATE_BACKEND=%s", BackendPostgres)
		}
	default:
		return Simulator{}, fmt.Errorf("invalid STATE_BACKEND %q", cfg.StateBackend)
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Simulator) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// durationEnv reads NAME_SECONDS as whole seconds, falling back to NAME as a
// Go duration string.
func durationEnv(name string, fallback time.Duration) (time.Duration, error) {
	if v := os.Getenv(name + "_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s_SECONDS: %w", name, err)
		}
		return time.Duration(seconds) * time.Second, nil
	}
	if v := os.Getenv(name); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", name, err)
		}
		return d, nil
	}
	return fallback, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return n, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
