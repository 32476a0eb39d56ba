package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Server ServerConfig `mapstructure:"server"`
	Sheet  SheetConfig  `mapstructure:"sheet"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Sync   SyncConfig   `mapstructure:"sync"`
}

// AppConfig 应用基础配置
type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// SheetConfig 远程表格数据源配置
type SheetConfig struct {
	Endpoint    string        `mapstructure:"endpoint"`     // 表格 API 地址（Apps Script exec URL）
	Timeout     time.Duration `mapstructure:"timeout"`      // 单次请求超时
	CountryCode string        `mapstructure:"country_code"` // WhatsApp 链接使用的国际区号
}

// RedisConfig Redis 配置（本地缓存）
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SyncConfig 同步调度配置
type SyncConfig struct {
	Interval  time.Duration `mapstructure:"interval"`  // 定时拉取间隔
	Staleness time.Duration `mapstructure:"staleness"` // 最小陈旧阈值（距上次成功同步小于该值则跳过）
}

// Load 从配置文件加载配置
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	// 兼容性处理：缺省值
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Sheet.Timeout <= 0 {
		cfg.Sheet.Timeout = 10 * time.Second
	}
	if cfg.Sheet.CountryCode == "" {
		cfg.Sheet.CountryCode = "20"
	}
	if cfg.Sync.Interval <= 0 {
		cfg.Sync.Interval = 45 * time.Second
	}
	if cfg.Sync.Staleness <= 0 {
		cfg.Sync.Staleness = 15 * time.Second
	}

	return &cfg, nil
}

// LoadDefault 加载默认配置文件路径
func LoadDefault() (*Config, error) {
	return Load("config/config.yaml")
}

// Validate 验证配置完整性
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}
	if c.Sheet.Endpoint == "" {
		return fmt.Errorf("sheet.endpoint is required")
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required")
	}
	if c.Sync.Staleness > c.Sync.Interval {
		return fmt.Errorf("sync.staleness must not exceed sync.interval")
	}
	return nil
}
