// Package config loads the tracker settings from the environment. Variables
// are read with the TXTRACKER_ prefix after an optional .env file was loaded.
// DEV_ETH_RPC and MAX_RPC_ATTEMPTS are accepted as fallbacks for the RPC
// endpoint and the reconnect cap.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/pkfire13/Tx-tracking/internal/pkg/telemetry"
	"github.com/pkfire13/Tx-tracking/internal/pkg/validator"
)

// Prefix is prepended to every variable name.
const Prefix = "TXTRACKER"

const (
	fallbackRPCEndpoint          = "DEV_ETH_RPC"
	fallbackMaxReconnectAttempts = "MAX_RPC_ATTEMPTS"
)

type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// Network names the checkpoint and idempotency keys.
	Network        string `envconfig:"NETWORK" default:"ethereum" validate:"required"`
	Chain          string `envconfig:"CHAIN" default:"ethereum" validate:"oneof=solana near ethereum"`
	CurrencySymbol string `envconfig:"CURRENCY_SYMBOL" default:"ETH" validate:"required"`
	NativeDecimals uint8  `envconfig:"NATIVE_DECIMALS" default:"18"`

	RPCEndpoint      string        `envconfig:"RPC_ENDPOINT" validate:"required,rpcendpoint"`
	RPCTimeout       time.Duration `envconfig:"RPC_TIMEOUT" default:"10s" validate:"gt=0"`
	RPCRetryAttempts uint          `envconfig:"RPC_RETRY_ATTEMPTS" default:"3" validate:"min=1"`
	RPCRetryDelay    time.Duration `envconfig:"RPC_RETRY_DELAY" default:"500ms"`
	RPCRateLimit     float64       `envconfig:"RPC_RATE_LIMIT" default:"25" validate:"gte=0"`
	RPCRateBurst     int           `envconfig:"RPC_RATE_BURST" default:"25" validate:"min=1"`

	MaxReconnectAttempts int           `envconfig:"MAX_RECONNECT_ATTEMPTS" default:"5" validate:"gte=0"`
	ReconnectBackoff     time.Duration `envconfig:"RECONNECT_BACKOFF" default:"500ms" validate:"gt=0"`
	ReconnectMaxBackoff  time.Duration `envconfig:"RECONNECT_MAX_BACKOFF" default:"30s" validate:"gtefield=ReconnectBackoff"`
	BlockQueueSize       int           `envconfig:"BLOCK_QUEUE_SIZE" default:"16" validate:"min=1"`
	PollInterval         time.Duration `envconfig:"POLL_INTERVAL" default:"12s" validate:"gt=0"`
	BlockClaimTTL        time.Duration `envconfig:"BLOCK_CLAIM_TTL" default:"5m" validate:"gt=0"`

	// SwapSelectors replaces the built-in swap/multicall selector set when set.
	SwapSelectors []string `envconfig:"SWAP_SELECTORS" validate:"dive,hexselector"`

	// FixedTokenDecimals scales every token amount by the same decimals
	// instead of querying decimals(). Negative disables it.
	FixedTokenDecimals int           `envconfig:"FIXED_TOKEN_DECIMALS" default:"-1" validate:"gte=-1,lte=77"`
	TokenMetadataTTL   time.Duration `envconfig:"TOKEN_METADATA_TTL" default:"10m" validate:"gt=0"`

	RedisAddr     string `envconfig:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`

	KafkaBrokers      []string      `envconfig:"KAFKA_BROKERS" validate:"dive,hostname_port"`
	KafkaTopic        string        `envconfig:"KAFKA_TOPIC" default:"balance-changes" validate:"required_with=KafkaBrokers"`
	KafkaWriteTimeout time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"5s" validate:"gt=0"`
	KafkaMaxAttempts  int           `envconfig:"KAFKA_MAX_ATTEMPTS" default:"3" validate:"min=1"`

	TelemetryExporter string `envconfig:"TELEMETRY_EXPORTER" default:"none" validate:"oneof=none otlp prometheus"`
	MetricsAddr       string `envconfig:"METRICS_ADDR" default:":9464"`
}

// Load reads envFiles (".env" when none is given) and the environment into a
// validated Config. Missing env files are ignored. Variables already set in
// the environment are not overridden by the files.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.applyFallbacks(); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func isSet(name string) bool {
	_, ok := os.LookupEnv(Prefix + "_" + name)
	return ok
}

func (c *Config) applyFallbacks() error {
	if v, ok := os.LookupEnv(fallbackRPCEndpoint); ok && !isSet("RPC_ENDPOINT") {
		c.RPCEndpoint = v
	}

	if v, ok := os.LookupEnv(fallbackMaxReconnectAttempts); ok && !isSet("MAX_RECONNECT_ATTEMPTS") {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", fallbackMaxReconnectAttempts, err)
		}

		c.MaxReconnectAttempts = n
	}

	return nil
}

// SupportsSubscriptions reports whether the endpoint is a websocket, which is
// required for eth_subscribe. Other endpoints are polled.
func (c Config) SupportsSubscriptions() bool {
	u, err := url.Parse(c.RPCEndpoint)
	if err != nil {
		return false
	}

	return u.Scheme == "ws" || u.Scheme == "wss"
}

// FixedDecimals returns the fixed token decimals and whether they are enabled.
func (c Config) FixedDecimals() (uint8, bool) {
	if c.FixedTokenDecimals < 0 {
		return 0, false
	}

	return uint8(c.FixedTokenDecimals), true
}

func (c Config) Exporter() telemetry.Exporter {
	return telemetry.Exporter(c.TelemetryExporter)
}
