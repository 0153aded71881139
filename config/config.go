package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Wallet provider kinds.
const (
	ProviderNone   = "none"
	ProviderStatic = "static"
	ProviderRPC    = "rpc"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Contract  ContractConfig  `mapstructure:"contract"`
	Wallet    WalletConfig    `mapstructure:"wallet"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// ContractConfig describes the simulated FundMe contract.
type ContractConfig struct {
	OwnerAddress   string `mapstructure:"owner_address"`
	InitialBalance string `mapstructure:"initial_balance"`
	EthUSDPrice    string `mapstructure:"eth_usd_price"`
}

// WalletConfig selects where connect requests get their accounts from.
type WalletConfig struct {
	Provider string        `mapstructure:"provider"` // none, static, rpc
	RPCURL   string        `mapstructure:"rpc_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Accounts []string      `mapstructure:"accounts"` // static provider only
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
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
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// RateLimitConfig holds per-group request limits for the intent endpoints.
type RateLimitConfig struct {
	ReadLimit  int64         `mapstructure:"read_limit"`
	WriteLimit int64         `mapstructure:"write_limit"`
	Window     time.Duration `mapstructure:"window"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: FUNDME_.
// Nested keys use underscore: FUNDME_CONTRACT_OWNER_ADDRESS, FUNDME_WALLET_RPC_URL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("contract.owner_address", "0xYourOwnerAddress")
	v.SetDefault("contract.initial_balance", "0.42")
	v.SetDefault("contract.eth_usd_price", "3200")
	v.SetDefault("wallet.provider", ProviderNone)
	v.SetDefault("wallet.rpc_url", "")
	v.SetDefault("wallet.timeout", "10s")
	v.SetDefault("wallet.accounts", []string{})
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "fundme")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("ratelimit.read_limit", 120)
	v.SetDefault("ratelimit.write_limit", 30)
	v.SetDefault("ratelimit.window", "1m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// FUNDME_CONTRACT_OWNER_ADDRESS -> contract.owner_address
	v.SetEnvPrefix("FUNDME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the values the simulator cannot run without.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Contract.OwnerAddress) == "" {
		errs = append(errs, errors.New("contract.owner_address is required"))
	}
	if bal, err := decimal.NewFromString(c.Contract.InitialBalance); err != nil {
		errs = append(errs, fmt.Errorf("contract.initial_balance: %w", err))
	} else if bal.IsNegative() {
		errs = append(errs, errors.New("contract.initial_balance must not be negative"))
	}
	if _, err := decimal.NewFromString(c.Contract.EthUSDPrice); err != nil {
		errs = append(errs, fmt.Errorf("contract.eth_usd_price: %w", err))
	}

	switch c.Wallet.Provider {
	case ProviderNone, ProviderStatic:
	case ProviderRPC:
		if c.Wallet.RPCURL == "" {
			errs = append(errs, errors.New("wallet.rpc_url is required for the rpc provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown wallet.provider %q", c.Wallet.Provider))
	}

	return errors.Join(errs...)
}
