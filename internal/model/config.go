package model

import "time"

// Config holds all tunable settings
type Config struct {
	Sieves      SieveConfig       `yaml:"sieves" mapstructure:"sieves"`
	Classifier  ClassifierConfig  `yaml:"classifier" mapstructure:"classifier"`
	Evaluation  EvaluationConfig  `yaml:"evaluation" mapstructure:"evaluation"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// SieveConfig tunes the rule-based precedence sieves
type SieveConfig struct {
	ReichenbachWindow int `yaml:"reichenbach_window" mapstructure:"reichenbach_window"` // Max sentence distance for tense comparison
	CueWindow         int `yaml:"cue_window" mapstructure:"cue_window"`                 // Tokens scanned at sentence start for discourse cues
}

// ClassifierConfig controls the feature-based precedence classifier
type ClassifierConfig struct {
	ModelPath           string  `yaml:"model_path" mapstructure:"model_path"`
	Margin              float64 `yaml:"margin" mapstructure:"margin"` // Required score lead over "None"
	MaxSentenceDistance int     `yaml:"max_sentence_distance" mapstructure:"max_sentence_distance"`
	Epochs              int     `yaml:"epochs" mapstructure:"epochs"`
	Seed                int64   `yaml:"seed" mapstructure:"seed"`
}

// EvaluationConfig controls scoring
type EvaluationConfig struct {
	Smoothing float64 `yaml:"smoothing" mapstructure:"smoothing"`
}

// ConcurrencyConfig controls parallel pipeline evaluation
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// CacheConfig controls caching of parsed corpora
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// OutputConfig controls report output
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Sieves: SieveConfig{
			ReichenbachWindow: 1,
			CueWindow:         4,
		},
		Classifier: ClassifierConfig{
			Margin:              0.5,
			MaxSentenceDistance: 1,
			Epochs:              10,
			Seed:                42,
		},
		Evaluation: EvaluationConfig{
			Smoothing: 1e-5,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".precedence-cache",
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   7 * 24 * time.Hour,
		},
	}
}
