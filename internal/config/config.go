package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port string `mapstructure:"port"`

	// Site layout
	ContentDir   string `mapstructure:"content_dir"`
	StaticDir    string `mapstructure:"static_dir"`
	PublicDir    string `mapstructure:"public_dir"`
	TemplatePath string `mapstructure:"template_path"`

	// Rendering
	Renderer string   `mapstructure:"renderer"` // "core" or "commonmark"
	Ignore   []string `mapstructure:"ignore"`   // doublestar globs, relative to ContentDir

	// Clean removes PublicDir before every build. Without it, pages whose
	// bytes did not change are left untouched.
	Clean bool `mapstructure:"clean"`

	// Build pool
	WorkerCount  int `mapstructure:"worker_count"`
	MaxQueueSize int `mapstructure:"max_queue_size"`

	// HTTP
	APIKey         string `mapstructure:"api_key"` // empty disables auth on build endpoints
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`

	// Job state
	JobTTL time.Duration `mapstructure:"job_ttl"`
}

// EnvPrefix is prepended to every environment variable, e.g. MDSITE_PORT.
const EnvPrefix = "MDSITE"

// New returns a viper instance with defaults, environment binding and the
// optional mdsite.yaml config file search path.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName("mdsite")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8090")
	v.SetDefault("content_dir", "content")
	v.SetDefault("static_dir", "static")
	v.SetDefault("public_dir", "public")
	v.SetDefault("template_path", "template.html")
	v.SetDefault("renderer", "core")
	v.SetDefault("ignore", []string{})
	v.SetDefault("clean", true)
	v.SetDefault("worker_count", 4)
	v.SetDefault("max_queue_size", 16)
	v.SetDefault("api_key", "")
	v.SetDefault("max_upload_bytes", 1<<20) // 1MB
	v.SetDefault("job_ttl", time.Hour)
	return v
}

// Load reads the config file if present and decodes v into a Config.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 16
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 1 << 20
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.Renderer == "" {
		cfg.Renderer = "core"
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.ContentDir == "" {
		return fmt.Errorf("content_dir is required")
	}
	if c.PublicDir == "" {
		return fmt.Errorf("public_dir is required")
	}
	if c.TemplatePath == "" {
		return fmt.Errorf("template_path is required")
	}
	// A clean build removes PublicDir, so it must not hold the sources.
	if err := checkDisjoint("public_dir", c.PublicDir, "content_dir", c.ContentDir); err != nil {
		return err
	}
	if c.StaticDir != "" {
		if err := checkDisjoint("public_dir", c.PublicDir, "static_dir", c.StaticDir); err != nil {
			return err
		}
	}
	switch c.Renderer {
	case "core", "commonmark":
	default:
		return fmt.Errorf("unknown renderer %q (want core or commonmark)", c.Renderer)
	}
	return nil
}

// checkDisjoint fails when one directory is the other or lies inside it.
func checkDisjoint(aKey, a, bKey, b string) error {
	absA, err := filepath.Abs(a)
	if err != nil {
		return fmt.Errorf("%s: %w", aKey, err)
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return fmt.Errorf("%s: %w", bKey, err)
	}
	switch {
	case absA == absB:
		return fmt.Errorf("%s must differ from %s", aKey, bKey)
	case within(absA, absB):
		return fmt.Errorf("%s must not be inside %s", aKey, bKey)
	case within(absB, absA):
		return fmt.Errorf("%s must not contain %s", aKey, bKey)
	}
	return nil
}

// within reports whether path lies below dir. Both must be absolute.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
