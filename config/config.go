package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Chain      ChainConfig      `mapstructure:"chain"`
	Relay      RelayConfig      `mapstructure:"relay"`
	Tax        TaxConfig        `mapstructure:"tax"`
	Allocation AllocationConfig `mapstructure:"allocation"`
	Worker     WorkerConfig     `mapstructure:"worker"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// ChainConfig describes the target chain RPC endpoint. All on-chain calls
// run under RequestTimeout so a hung RPC never stalls a worker loop.
type ChainConfig struct {
	RPCURL         string            `mapstructure:"rpc_url"`
	ChainID        int64             `mapstructure:"chain_id"`
	RequestTimeout time.Duration     `mapstructure:"request_timeout"`
	TokenAddresses map[string]string `mapstructure:"token_addresses"` // currency symbol -> ERC-20 contract
	TokenDecimals  map[string]int32  `mapstructure:"token_decimals"`  // currency symbol -> ERC-20 decimals
}

// DecimalsFor returns the configured decimals for a currency, falling
// back to the ERC-20 default of 18.
func (c ChainConfig) DecimalsFor(currency string) int32 {
	if d, ok := c.TokenDecimals[currency]; ok {
		return d
	}
	return 18
}

// RelayConfig configures transaction execution. Mode "direct" signs and
// submits with the engine's own key; "sponsored" wraps calls into a
// user operation funded by a third-party paymaster through a bundler.
type RelayConfig struct {
	Mode           string        `mapstructure:"mode"` // direct, sponsored
	BundlerURL     string        `mapstructure:"bundler_url"`
	EntryPoint     string        `mapstructure:"entry_point"`
	Paymaster      string        `mapstructure:"paymaster"`
	SigningKey     string        `mapstructure:"signing_key"` // hex-encoded private key
	MaxRetries     int           `mapstructure:"max_retries"`
	RetryBaseDelay time.Duration `mapstructure:"retry_base_delay"`
	NonceTTL       time.Duration `mapstructure:"nonce_ttl"`
}

// TaxConfig drives the withholding rule engine. Percentages are decimal
// strings to avoid float drift in config parsing.
type TaxConfig struct {
	DefaultPct          string            `mapstructure:"default_pct"`
	CountryPct          map[string]string `mapstructure:"country_pct"`
	SupportedCurrencies []string          `mapstructure:"supported_currencies"`
}

// AllocationConfig holds the default bucket percentages applied when a
// user has no stored allocation state yet.
type AllocationConfig struct {
	TaxPct       string `mapstructure:"tax_pct"`
	LiquidityPct string `mapstructure:"liquidity_pct"`
	YieldPct     string `mapstructure:"yield_pct"`
}

// WorkerConfig scopes the reconciliation worker. The worker is triggered
// by an external scheduler; WalletTimeout bounds each wallet's work.
// SweepConfirmTimeout is how long a submitted sweep may stay unconfirmed
// on-chain before the worker treats it as dropped and resubmits.
type WorkerConfig struct {
	WalletTimeout       time.Duration `mapstructure:"wallet_timeout"`
	LiabilityTTL        time.Duration `mapstructure:"liability_ttl"`
	SweepConfirmTimeout time.Duration `mapstructure:"sweep_confirm_timeout"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	Expiry    time.Duration `mapstructure:"expiry"`
	Issuer    string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: TAE_ (Treasury Automation Engine).
// Nested keys use underscore: TAE_DATABASE_HOST, TAE_RELAY_BUNDLER_URL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "treasury_engine")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("chain.rpc_url", "http://localhost:8545")
	v.SetDefault("chain.chain_id", 8453)
	v.SetDefault("chain.request_timeout", "15s")
	v.SetDefault("relay.mode", "sponsored")
	v.SetDefault("relay.bundler_url", "")
	v.SetDefault("relay.entry_point", "")
	v.SetDefault("relay.paymaster", "")
	v.SetDefault("relay.signing_key", "")
	v.SetDefault("relay.max_retries", 3)
	v.SetDefault("relay.retry_base_delay", "2s")
	v.SetDefault("relay.nonce_ttl", "10m")
	v.SetDefault("tax.default_pct", "10")
	v.SetDefault("tax.supported_currencies", []string{"USDC", "USDT", "DAI"})
	v.SetDefault("allocation.tax_pct", "25")
	v.SetDefault("allocation.liquidity_pct", "35")
	v.SetDefault("allocation.yield_pct", "40")
	v.SetDefault("worker.wallet_timeout", "30s")
	v.SetDefault("worker.liability_ttl", "30s")
	v.SetDefault("worker.sweep_confirm_timeout", "10m")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.expiry", "24h")
	v.SetDefault("auth.issuer", "treasury-engine")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: TAE_DATABASE_HOST -> database.host
	v.SetEnvPrefix("TAE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
