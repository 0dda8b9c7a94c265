package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"likability/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.SetDefault("likability.maxScore", 100)
	viper.SetDefault("likability.initialScore", 20)

	viper.BindEnv("logger.level", "LIK_LOG_LEVEL")
	viper.BindEnv("persistence.dir", "LIK_DATA_DIR")
	viper.BindEnv("persistence.saveInterval", "LIK_SAVE_INTERVAL")
	viper.BindEnv("cache.enabled", "LIK_CACHE_ENABLED")
	viper.BindEnv("cache.size", "LIK_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "LikabilityLedger"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode
	conf.Payouts = structures.DefaultPayoutTable()
	conf.Levels = structures.DefaultLevelTable()

	return &conf, nil
}
