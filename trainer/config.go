package trainer

import "fmt"
import "os"

import "github.com/pelletier/go-toml/v2"

// Config holds the training hyperparameters. Zero values fall back to
// DefaultConfig via LoadConfig.
type Config struct {
	Epochs          int     `toml:"epochs"`
	BatchSize       int     `toml:"batch_size"`
	LearningRate    float32 `toml:"learning_rate"`
	Optimizer       string  `toml:"optimizer"` // adam or sgd
	Momentum        float32 `toml:"momentum"`  // sgd only
	ValidationSplit float64 `toml:"validation_split"`
	Significance    byte    `toml:"significance"`    // evaluation sampling confidence, percent
	TargetAccuracy  int     `toml:"target_accuracy"` // stop once validation accuracy reaches this percent
	Seed            int64   `toml:"seed"`
}

// DefaultConfig mirrors the reference training run: 50 epochs, Adam,
// a fifth of the records held out for validation.
func DefaultConfig() Config {
	return Config{
		Epochs:          50,
		BatchSize:       32,
		LearningRate:    0.001,
		Optimizer:       "adam",
		Momentum:        0.9,
		ValidationSplit: 0.2,
		Significance:    95,
		TargetAccuracy:  100,
		Seed:            1,
	}
}

// LoadConfig reads a TOML hyperparameter file over the defaults. An empty
// path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	var cfg = DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
