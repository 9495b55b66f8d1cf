// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ModuleSpec is the static description of one module of the target
// repository.
type ModuleSpec struct {
	// Functionality describes what the module does.
	Functionality string `json:"functionality" yaml:"functionality"`

	// ExpectedInputs lists what the module consumes.
	ExpectedInputs []string `json:"expected_inputs" yaml:"expected_inputs"`

	// ExpectedOutputs lists what the module produces.
	ExpectedOutputs []string `json:"expected_outputs" yaml:"expected_outputs"`

	// Dependencies names the modules that must precede this one.
	Dependencies []string `json:"dependencies" yaml:"dependencies"`
}

// ModuleAnalysis is a ModuleSpec bound to a module name.
type ModuleAnalysis struct {
	Name       string `json:"file_name" yaml:"file_name"`
	ModuleSpec `yaml:",inline"`
}

// GoldStandardKey is the reserved Repository key whose presence enables
// reference-based scoring.
const GoldStandardKey = "gold_standard"

// Repository maps a module name to its generated source text.
type Repository map[string]string
