package config

import (
	"errors"
	"log"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Transport string `mapstructure:"transport"`
		Port      string `mapstructure:"port"`
	} `mapstructure:"server"`
	Storage struct {
		DataDir string `mapstructure:"data_dir"`
		DBFile  string `mapstructure:"db_file"`
	} `mapstructure:"storage"`
	Log struct {
		Env string `mapstructure:"env"`
	} `mapstructure:"log"`
}

// DBPath is the SQLite file the store opens.
func (c Config) DBPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.DBFile)
}

// LoadConfig reads .env, an optional config.yaml in dir and LINKEDIN_* environment
// variables, in increasing priority.
func LoadConfig(dir string) (cfg Config, err error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil {
		log.Println("note: .env file not found, using environment only")
	}

	v := viper.New()
	v.SetDefault("server.transport", "stdio")
	v.SetDefault("server.port", "8081")
	v.SetDefault("storage.data_dir", "./data")
	v.SetDefault("storage.db_file", "linkedin.db")
	v.SetDefault("log.env", "development")

	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, err
		}
	}

	v.SetEnvPrefix("linkedin")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("server.transport", "LINKEDIN_TRANSPORT")
	v.BindEnv("server.port", "LINKEDIN_PORT")
	v.BindEnv("storage.data_dir", "LINKEDIN_DATA_DIR")
	v.BindEnv("storage.db_file", "LINKEDIN_DB_FILE")
	v.BindEnv("log.env", "LINKEDIN_LOG_ENV")

	err = v.Unmarshal(&cfg)
	return
}
