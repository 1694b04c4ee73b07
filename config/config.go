package config

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pipekit/pipekit/errors"
	"github.com/pipekit/pipekit/logger"
	"github.com/pipekit/pipekit/validation"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "PIPEKIT"

// Demo holds settings shared by the demo commands.
type Demo struct {
	// Dataset is the path of the comment dataset file.
	Dataset string `json:"dataset" mapstructure:"dataset"`
	// LikesThreshold is the minimum likes used by threshold filters.
	LikesThreshold int `json:"likes_threshold" mapstructure:"likes_threshold" validate:"min=0"`

	Generator Generator     `json:"generator" mapstructure:"generator"`
	Log       logger.Config `json:"log" mapstructure:"log"`
}

// Generator holds dataset generation settings.
type Generator struct {
	Count         int     `json:"count" mapstructure:"count" validate:"min=1"`
	Posts         int     `json:"posts" mapstructure:"posts" validate:"min=1"`
	PositiveRatio float64 `json:"positive_ratio" mapstructure:"positive_ratio" validate:"min=0,max=1"`
	MaxLikes      int     `json:"max_likes" mapstructure:"max_likes" validate:"min=1"`
	Seed          int64   `json:"seed" mapstructure:"seed"`
}

// ApplyDefaults fills zero-valued fields.
func (d *Demo) ApplyDefaults() {
	if d.Dataset == "" {
		d.Dataset = "data/comments.json"
	}
	if d.LikesThreshold == 0 {
		d.LikesThreshold = 10
	}
	if d.Generator.Count == 0 {
		d.Generator.Count = 1000
	}
	if d.Generator.Posts == 0 {
		d.Generator.Posts = 50
	}
	if d.Generator.PositiveRatio == 0 {
		d.Generator.PositiveRatio = 0.7
	}
	if d.Generator.MaxLikes == 0 {
		d.Generator.MaxLikes = 200
	}
	d.Log.ApplyDefaults()
}

// Load reads configuration from an optional file, a local .env file, and
// PIPEKIT_-prefixed environment variables. path may be empty, in which case
// pipekit.yaml in the working directory is used when present.
func Load(path string) (*Demo, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, errors.DatasetIO(".env", err)
		}
	}

	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.DatasetIO(path, err)
		}
	} else {
		v.SetConfigName("pipekit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !stderrors.As(err, &notFound) {
				return nil, errors.DatasetFormat("pipekit.yaml", err)
			}
		}
	}

	bindEnvOverrides(v)

	cfg := &Demo{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.DatasetFormat(v.ConfigFileUsed(), err)
	}
	cfg.ApplyDefaults()
	if err := validation.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bindEnvOverrides copies PIPEKIT_-prefixed environment variables into
// viper. Unmarshal only reads keys viper already holds, so each override is
// set explicitly; env values therefore take precedence over file values.
func bindEnvOverrides(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], EnvPrefix+"_") {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(pair[0], EnvPrefix+"_"))
		for _, variant := range envKeyVariants(key) {
			v.Set(variant, pair[1])
		}
	}
}

// envKeyVariants expands an underscore-separated key into the nested forms
// it could address:
//
//	LIKES_THRESHOLD  -> likes_threshold, likes.threshold
//	GENERATOR_COUNT  -> generator_count, generator.count
//	LOG_NO_COLOR     -> log_no_color, log.no_color, log.no.color
func envKeyVariants(key string) []string {
	parts := strings.Split(key, "_")
	seen := map[string]bool{key: true}
	variants := []string{key}
	add := func(variant string) {
		if !seen[variant] {
			seen[variant] = true
			variants = append(variants, variant)
		}
	}
	for i := 1; i < len(parts); i++ {
		add(strings.Join(parts[:i], ".") + "." + strings.Join(parts[i:], "_"))
	}
	add(strings.ReplaceAll(key, "_", "."))
	return variants
}
