package internal

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the Lootvault configuration
type Config struct {
	// Database configuration
	Database struct {
		Path string `mapstructure:"path"` // Path to the SQLite store file
	} `mapstructure:"database"`

	// Ledger configuration
	Ledger struct {
		// Strategy selects the balance mutation strategy:
		// "atomic" routes credits/debits through the store's atomic add,
		// "naive" reproduces the observed read-modify-write behavior and can
		// lose updates across concurrent instances.
		Strategy string `mapstructure:"strategy"`
	} `mapstructure:"ledger"`

	// Sync configuration for cross-instance change signals
	Sync struct {
		Enabled   bool   `mapstructure:"enabled"`
		ServerURL string `mapstructure:"server_url"` // NATS server URL
		Subject   string `mapstructure:"subject"`    // change-signal subject
	} `mapstructure:"sync"`

	// Backend configuration for the optional remote storefront service
	Backend struct {
		URL string `mapstructure:"url"` // empty disables remote catalog refresh
	} `mapstructure:"backend"`

	// Catalog overrides; when empty the compiled-in price tables are used
	Catalog []CatalogItemConfig `mapstructure:"catalog"`

	// Directory for log files
	LogDir string `mapstructure:"log_dir"`

	// Debug mode
	Debug bool `mapstructure:"debug"`
}

// CatalogItemConfig represents one configured catalog entry
type CatalogItemConfig struct {
	ID          string  `mapstructure:"id"`
	Name        string  `mapstructure:"name"`
	Kind        string  `mapstructure:"kind"` // currency, bundle, skin, event
	Game        string  `mapstructure:"game"`
	UnitAmount  int64   `mapstructure:"unit_amount"`
	BonusAmount int64   `mapstructure:"bonus_amount"`
	UnitPrice   float64 `mapstructure:"unit_price"`
	CostCoins   int64   `mapstructure:"cost_coins"`
	Stock       int64   `mapstructure:"stock"`
}

// LoadConfig loads the configuration from various sources
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaultConfig(v)

	// Read configuration from file if provided
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		// Look for config in the current directory and in the user config dir
		v.AddConfigPath(".")
		v.AddConfigPath(DefaultConfigPath)
		v.SetConfigName("config")
		v.SetConfigType("json")
	}

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if the config file doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Override with environment variables prefixed with LOOTVAULT_
	v.SetEnvPrefix("LOOTVAULT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Parse the configuration
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaultConfig sets default configuration values
func setDefaultConfig(v *viper.Viper) {
	// Database defaults
	v.SetDefault("database.path", filepath.Join(".", "data", "lootvault.db"))

	// Ledger defaults to the hardened atomic strategy
	v.SetDefault("ledger.strategy", "atomic")

	// Sync defaults
	v.SetDefault("sync.enabled", false)
	v.SetDefault("sync.server_url", "nats://127.0.0.1:4222")
	v.SetDefault("sync.subject", "lootvault.store.changed")

	// Logging defaults
	v.SetDefault("log_dir", "logs")
	v.SetDefault("debug", false)
}
