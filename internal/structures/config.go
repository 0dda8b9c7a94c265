package structures

import "time"

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type LikabilityConfig struct {
	MaxScore     int      `yaml:"maxScore" validate:"required|min:1"`
	InitialScore int      `yaml:"initialScore" validate:"min:0"`
	AdminList    []string `yaml:"adminList"`
}

type Persistence struct {
	Dir          string        `yaml:"dir" validate:"required|unixPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
	Compress     bool          `yaml:"compress"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	Likability  LikabilityConfig `yaml:"likability"`
	Persistence Persistence      `yaml:"persistence"`
	Logger      LoggerConfig     `yaml:"logger"`
	Cache       CacheConfig      `yaml:"cache"`
	Metrics     MetricsConfig    `yaml:"metrics"`

	// Payouts and Levels carry the built-in tables. An embedding host may
	// replace them before the services are constructed; they are not read
	// from the config file.
	Payouts []PayoutRange
	Levels  []LevelRange
}
