package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultAddr: solo loopback, el API es para la interfaz local.
const DefaultAddr = "127.0.0.1:8080"

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type Config struct {
	AppName string        `mapstructure:"app_name"`
	Addr    string        `mapstructure:"addr"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

type StorageConfig struct {
	Backend string `mapstructure:"backend"` // json | sqlite | memory
	Path    string `mapstructure:"path"`    // vacío = default del backend
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SetDefaults deja en v los valores por defecto.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "shelter-pet-tracker")
	v.SetDefault("storage.backend", BackendJSON)
	v.SetDefault("storage.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// legacyEnv: clave de viper seguida de las variables que la alimentan.
var legacyEnv = [][]string{
	{"log.level", "SHELTER_LOG_LEVEL", "LOG_LEVEL"},
	{"log.format", "SHELTER_LOG_FORMAT", "LOG_FORMAT"},
	{"app_name", "SHELTER_APP_NAME", "APP_NAME"},
	{"port", "SHELTER_PORT", "PORT"},
	{"addr", "SHELTER_ADDR"},
}

// Load arma la configuración con esta precedencia (mayor a menor):
// flags ya ligados a v, env SHELTER_*, env heredados (PORT, LOG_LEVEL, LOG_FORMAT, APP_NAME),
// archivo (configFile o ./shelter.yaml si existe), defaults.
func Load(v *viper.Viper, configFile string) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix("SHELTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// nombres de env que ya usaba el servicio
	for _, b := range legacyEnv {
		if err := v.BindEnv(b...); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", b[0], err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("shelter")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	// PORT solo define el puerto; se escucha en loopback salvo que addr diga otra cosa
	if strings.TrimSpace(cfg.Addr) == "" {
		cfg.Addr = DefaultAddr
		if port := strings.TrimSpace(v.GetString("port")); port != "" {
			cfg.Addr = "127.0.0.1:" + port
		}
	}

	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("invalid storage.backend %q (want json, sqlite or memory)", c.Storage.Backend)
	}
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("addr must not be empty")
	}
	return nil
}
