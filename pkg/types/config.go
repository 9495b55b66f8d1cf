// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Default configuration values used when a field is missing or unreadable.
const (
	DefaultLearningRate    = "0.001"
	DefaultBatchSize       = "32"
	DefaultEpochs          = "10"
	DefaultNWaySampling    = 8
	DefaultEvaluationModel = "o3-mini-high"
)

// TrainingConfig holds the training hyperparameters injected into
// generated templates. Values are kept as strings because they are only
// ever substituted into text.
type TrainingConfig struct {
	// LearningRate is the optimizer learning rate (default "0.001").
	LearningRate string `json:"learning_rate" yaml:"learning_rate" mapstructure:"learning_rate"`

	// BatchSize is the training batch size (default "32").
	BatchSize string `json:"batch_size" yaml:"batch_size" mapstructure:"batch_size"`

	// Epochs is the number of training epochs (default "10").
	Epochs string `json:"epochs" yaml:"epochs" mapstructure:"epochs"`
}

// EvaluationConfig holds settings for the evaluation stage.
type EvaluationConfig struct {
	// NWaySampling is how many times each score is sampled and averaged
	// (default 8).
	NWaySampling int `json:"n_way_sampling" yaml:"n_way_sampling" mapstructure:"n_way_sampling"`

	// EvaluationModel names the model reported with the scores
	// (default "o3-mini-high").
	EvaluationModel string `json:"evaluation_model" yaml:"evaluation_model" mapstructure:"evaluation_model"`
}

// Config groups the training and evaluation settings for a pipeline run.
type Config struct {
	Training   TrainingConfig   `json:"training" yaml:"training" mapstructure:"training"`
	Evaluation EvaluationConfig `json:"evaluation" yaml:"evaluation" mapstructure:"evaluation"`
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() Config {
	return Config{
		Training: TrainingConfig{
			LearningRate: DefaultLearningRate,
			BatchSize:    DefaultBatchSize,
			Epochs:       DefaultEpochs,
		},
		Evaluation: EvaluationConfig{
			NWaySampling:    DefaultNWaySampling,
			EvaluationModel: DefaultEvaluationModel,
		},
	}
}

// IsZero reports whether no field of the config is set.
func (c Config) IsZero() bool {
	return c == Config{}
}
