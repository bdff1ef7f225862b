package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultBaseURL         = "https://api.mobygames.com/v1/"
	DefaultRequestInterval = 2 * time.Second
	DefaultPageSize        = 100
	DefaultTimeout         = 30
)

// Config 全局配置结构体（匹配 config/config.yaml，文件可不存在）
type Config struct {
	Moby   MobyConfig   `mapstructure:"moby"`   // MobyGames API 配置
	Export ExportConfig `mapstructure:"export"` // 导出配置
	Log    LogConfig    `mapstructure:"log"`    // 日志配置
}

// MobyConfig MobyGames API 配置
type MobyConfig struct {
	BaseURL         string        `mapstructure:"base_url"`         // API基础地址
	APIKey          string        `mapstructure:"api_key"`          // 仅由环境变量 MOBY_API_KEY 填充
	KeyFile         string        `mapstructure:"key_file"`         // API key 文件（默认 mobyapikey.txt）
	Timeout         int           `mapstructure:"timeout"`          // 请求超时（秒）
	Proxy           string        `mapstructure:"proxy"`            // 代理地址
	RequestInterval time.Duration `mapstructure:"request_interval"` // 每次请求前的固定等待
	PageSize        int           `mapstructure:"page_size"`        // 每页游戏数
}

// ExportConfig 导出文件配置
type ExportConfig struct {
	OutputDir string `mapstructure:"output_dir"` // 输出目录
	UseCRLF   bool   `mapstructure:"use_crlf"`   // 行尾使用 \r\n
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `mapstructure:"level"` // logrus 级别：debug/info/warn/error
}

// flagKeys 命令行参数 → 配置项
var flagKeys = map[string]string{
	"out":       "export.output_dir",
	"log-level": "log.level",
}

// LoadConfig 加载配置：默认值 < config/config.yaml < .env/环境变量 < 命令行参数
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	// 1. 加载 .env（若存在）
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	// 2. 读取 config.yaml（CLI 场景下文件可不存在）
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	// 3. 绑定命令行参数
	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("绑定参数%s失败: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 4. 敏感字段：用 env 覆盖（优先级 env > yaml）
	overrideFromEnv(&cfg)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("moby.base_url", DefaultBaseURL)
	v.SetDefault("moby.key_file", DefaultKeyFile)
	v.SetDefault("moby.timeout", DefaultTimeout)
	v.SetDefault("moby.request_interval", DefaultRequestInterval)
	v.SetDefault("moby.page_size", DefaultPageSize)
	v.SetDefault("export.output_dir", ".")
	v.SetDefault("export.use_crlf", false)
	v.SetDefault("log.level", "warn")
}

// overrideFromEnv 用环境变量覆盖敏感配置
func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("MOBY_API_KEY"); v != "" {
		cfg.Moby.APIKey = v
	}
	if v := os.Getenv("MOBY_PROXY"); v != "" {
		cfg.Moby.Proxy = v
	}
	if v := os.Getenv("MOBY_BASE_URL"); v != "" {
		cfg.Moby.BaseURL = v
	}
}
