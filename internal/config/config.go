package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port        string `mapstructure:"port"`
		MetricsPort string `mapstructure:"metrics_port"`
		StaticDir   string `mapstructure:"static_dir"`
		LogLevel    string `mapstructure:"log_level"`
	} `mapstructure:"server"`
	Upstream struct {
		ListURL        string `mapstructure:"list_url"`
		CreateURL      string `mapstructure:"create_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"upstream"`
	Channels struct {
		File string `mapstructure:"file"`
	} `mapstructure:"channels"`
}

func Load() *Config {
	viper.SetEnvPrefix("PANEL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Register keys
	viper.BindEnv("server.port")
	viper.BindEnv("server.metrics_port")
	viper.BindEnv("server.static_dir")
	viper.BindEnv("server.log_level")
	viper.BindEnv("upstream.list_url")
	viper.BindEnv("upstream.create_url")
	viper.BindEnv("upstream.timeout_seconds")
	viper.BindEnv("channels.file")

	// Defaults
	viper.SetDefault("server.port", ":3000")
	viper.SetDefault("server.metrics_port", ":9091")
	viper.SetDefault("server.static_dir", "./public")
	viper.SetDefault("server.log_level", "info")
	viper.SetDefault("upstream.list_url", "https://admin.aztv.az/api/program/list")
	viper.SetDefault("upstream.create_url", "https://admin.aztv.az/api/program/create")
	viper.SetDefault("upstream.timeout_seconds", 30)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: Config error: %s", err)
		} else {
			log.Println("Info: config.yaml not found, using Environment Variables only.")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}

	return &cfg
}
