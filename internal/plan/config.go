// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/paper-coder/pkg/types"
)

// EnvPrefix prefixes environment overrides, e.g.
// PAPER_CODER_TRAINING_LEARNING_RATE.
const EnvPrefix = "PAPER_CODER"

// Config keys.
const (
	keyLearningRate    = "training.learning_rate"
	keyBatchSize       = "training.batch_size"
	keyEpochs          = "training.epochs"
	keyNWaySampling    = "evaluation.n_way_sampling"
	keyEvaluationModel = "evaluation.evaluation_model"
)

// LoadConfig reads the configuration file at path. It never fails: a
// missing or unparsable file, an absent key, or a value that cannot be
// coerced falls back to the default for that field alone. An empty path
// skips the file and uses defaults plus environment overrides.
func LoadConfig(path string, logger *zap.Logger) types.Config {
	if logger == nil {
		logger = zap.NewNop()
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if filepath.Ext(path) == "" {
			v.SetConfigType("yaml")
		}
		if err := v.ReadInConfig(); err != nil {
			logger.Warn("failed to load configuration file, using defaults",
				zap.String("path", path), zap.Error(err))
		} else {
			logger.Debug("using config file", zap.String("path", v.ConfigFileUsed()))
		}
	}

	cfg := types.Config{
		Training: types.TrainingConfig{
			LearningRate: stringKey(v, keyLearningRate, types.DefaultLearningRate, logger),
			BatchSize:    stringKey(v, keyBatchSize, types.DefaultBatchSize, logger),
			Epochs:       stringKey(v, keyEpochs, types.DefaultEpochs, logger),
		},
		Evaluation: types.EvaluationConfig{
			NWaySampling:    intKey(v, keyNWaySampling, types.DefaultNWaySampling, logger),
			EvaluationModel: stringKey(v, keyEvaluationModel, types.DefaultEvaluationModel, logger),
		},
	}

	logger.Info("configuration loaded",
		zap.String("learning_rate", cfg.Training.LearningRate),
		zap.String("batch_size", cfg.Training.BatchSize),
		zap.String("epochs", cfg.Training.Epochs),
		zap.Int("n_way_sampling", cfg.Evaluation.NWaySampling),
		zap.String("evaluation_model", cfg.Evaluation.EvaluationModel),
	)
	return cfg
}

// stringKey returns the string form of key, or def when the key is unset
// or not a scalar.
func stringKey(v *viper.Viper, key, def string, logger *zap.Logger) string {
	raw := v.Get(key)
	if raw == nil {
		return def
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		logger.Warn("config value is not a string, using default",
			zap.String("key", key), zap.Any("value", raw), zap.String("default", def))
		return def
	}
	return s
}

// intKey returns key coerced to an int, or def when the key is unset or
// cannot be coerced.
func intKey(v *viper.Viper, key string, def int, logger *zap.Logger) int {
	raw := v.Get(key)
	if raw == nil {
		return def
	}
	n, err := cast.ToIntE(raw)
	if err != nil {
		logger.Warn("config value is not an integer, using default",
			zap.String("key", key), zap.Any("value", raw), zap.Int("default", def))
		return def
	}
	return n
}
