package bootstrap

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort        string `mapstructure:"SERVER_PORT"`
	ApiVersion        string `mapstructure:"API_VERSION"`
	MongoUri          string `mapstructure:"MONGO_URI"`
	MongoDatabase     string `mapstructure:"MONGO_DATABASE"`
	RedisUrl          string `mapstructure:"REDIS_URL"`
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`
	IsLocalCors       bool   `mapstructure:"LOCAL_CORS"`
	BotGrpcAddr       string `mapstructure:"BOT_GRPC_ADDR"`
	BotGrpcPort       string `mapstructure:"BOT_GRPC_PORT"`
	RemoteBots        string `mapstructure:"REMOTE_BOTS"`
	DefaultBoardSize  int    `mapstructure:"DEFAULT_BOARD_SIZE"`
}

var defaults = map[string]any{
	"SERVER_PORT":         "4000",
	"API_VERSION":         "v1",
	"MONGO_URI":           "",
	"MONGO_DATABASE":      "yovi2c_db",
	"REDIS_URL":           "",
	"SESSION_TTL_MINUTES": 120,
	"LOCAL_CORS":          true,
	"BOT_GRPC_ADDR":       "",
	"BOT_GRPC_PORT":       "8082",
	"REMOTE_BOTS":         "",
	"DEFAULT_BOARD_SIZE":  8,
}

// Setup reads cfgPath if it exists; environment variables override the file.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !isMissingFile(err) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func isMissingFile(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// RemoteBotIDs splits REMOTE_BOTS into bot ids.
func (c *Config) RemoteBotIDs() []string {
	ids := make([]string, 0)
	for _, id := range strings.Split(c.RemoteBots, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
