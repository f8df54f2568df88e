package monobank

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL = "https://api.monobank.ua"
	DefaultTimeout = 1000 * time.Millisecond
)

// Config 描述客户端连接参数与凭据。
type Config struct {
	BaseURL string        `yaml:"baseURL" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
	// Token 为 personal 模式的 X-Token。
	Token string `yaml:"token"`
	// KeyID 与 PrivateKey 用于 corporate 模式；PrivateKey 可以是 PEM 文本或文件路径。
	KeyID      string `yaml:"keyId"`
	PrivateKey string `yaml:"privateKey"`
	// RateLimit 为客户端每秒请求上限，0 表示不限速。
	RateLimit float64 `yaml:"rateLimit" validate:"gte=0"`
	RateBurst int     `yaml:"rateBurst" validate:"gte=0"`
}

// DefaultConfig 返回官方 API 地址与 1s 超时。
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// LoadConfigFromEnv 在默认值之上应用 MONOBANK_* 环境变量。
func LoadConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.OverrideFromEnv()
	return cfg
}

// OverrideFromEnv 用已设置的环境变量覆盖对应字段。
func (c *Config) OverrideFromEnv() {
	if v := os.Getenv("MONOBANK_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if d := readTimeout("MONOBANK_TIMEOUT"); d > 0 {
		c.Timeout = d
	}
	if v := os.Getenv("MONOBANK_TOKEN"); v != "" {
		c.Token = v
	}
	if v := os.Getenv("MONOBANK_KEY_ID"); v != "" {
		c.KeyID = v
	}
	if v := os.Getenv("MONOBANK_PRIVATE_KEY"); v != "" {
		c.PrivateKey = v
	}
	if v := readFloat("MONOBANK_RATE_LIMIT"); v > 0 {
		c.RateLimit = v
	}
	if v := readInt("MONOBANK_RATE_BURST"); v > 0 {
		c.RateBurst = v
	}
}

// LoadConfigFile 读取 YAML 配置，缺省字段沿用 DefaultConfig。
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	var file struct {
		BaseURL    string  `yaml:"baseURL"`
		Timeout    string  `yaml:"timeout"`
		Token      string  `yaml:"token"`
		KeyID      string  `yaml:"keyId"`
		PrivateKey string  `yaml:"privateKey"`
		RateLimit  float64 `yaml:"rateLimit"`
		RateBurst  int     `yaml:"rateBurst"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if file.BaseURL != "" {
		cfg.BaseURL = file.BaseURL
	}
	if file.Timeout != "" {
		d, err := parseTimeout(file.Timeout)
		if err != nil {
			return cfg, fmt.Errorf("parse config %s: timeout: %w", path, err)
		}
		cfg.Timeout = d
	}
	cfg.Token = file.Token
	cfg.KeyID = file.KeyID
	cfg.PrivateKey = file.PrivateKey
	cfg.RateLimit = file.RateLimit
	cfg.RateBurst = file.RateBurst
	return cfg, nil
}

var validate = validator.New()

// Validate 校验通用字段；凭据由具体客户端构造函数检查。
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid monobank config: %w", err)
	}
	return nil
}

// parseTimeout 接受 Go duration（"1500ms"）或毫秒整数（"1500"）。
func parseTimeout(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(value)
}

func readTimeout(key string) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return 0
	}
	d, err := parseTimeout(value)
	if err != nil {
		return 0
	}
	return d
}

func readInt(key string) int {
	value := os.Getenv(key)
	if value == "" {
		return 0
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return v
}

func readFloat(key string) float64 {
	value := os.Getenv(key)
	if value == "" {
		return 0
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return v
}
