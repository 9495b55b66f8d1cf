// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"github.com/pdiddy/paper-coder/internal/plan"
	"github.com/pdiddy/paper-coder/pkg/types"
)

// emptyFunctionality describes a module with no entry in moduleSpecs.
const emptyFunctionality = "No specific functionality defined."

// moduleSpecs is the static specification table, keyed by module name.
var moduleSpecs = map[string]types.ModuleSpec{
	plan.ModulePaperParser: {
		Functionality: "Parses the input paper JSON and produces a structured Paper with fields: " +
			"paper_id, title, abstract, body_text, figures, and ref_entries.",
		ExpectedInputs:  []string{"Raw paper JSON"},
		ExpectedOutputs: []string{"Structured Paper"},
		Dependencies:    []string{},
	},
	plan.ModulePlanner: {
		Functionality: "Generates an overall plan, architecture design (including file list, class diagram, " +
			"and sequence diagram), and configuration details from the structured Paper.",
		ExpectedInputs: []string{"Structured Paper (from paper_parser.go)"},
		ExpectedOutputs: []string{
			"Overall plan",
			"Architecture design (file list, class diagram, sequence diagram)",
			"Configuration details",
		},
		Dependencies: []string{plan.ModulePaperParser},
	},
	plan.ModuleAnalyzer: {
		Functionality: "Analyzes the planner's output to produce detailed file-level specifications, including module " +
			"responsibilities, input/output contracts, and inter-module dependency relations.",
		ExpectedInputs:  []string{"Plan containing overall plan, architecture design, and configuration details"},
		ExpectedOutputs: []string{"List of file-level analyses for each module"},
		Dependencies:    []string{plan.ModulePlanner},
	},
	plan.ModuleCodeGenerator: {
		Functionality: "Generates modular, dependency-aware code templates for each file based on the overall plan and " +
			"the detailed analysis produced by the analyzer.",
		ExpectedInputs:  []string{"Overall plan", "Detailed file-level analysis from the analyzer"},
		ExpectedOutputs: []string{"Map of generated code files (file name to source)"},
		Dependencies:    []string{plan.ModulePlanner, plan.ModuleAnalyzer},
	},
	plan.ModuleEvaluation: {
		Functionality: "Evaluates the generated code repository using reference-based and reference-free metrics as defined " +
			"in the experimental setup.",
		ExpectedInputs:  []string{"Generated repository (from code_generator.go)"},
		ExpectedOutputs: []string{"Evaluation metrics"},
		Dependencies:    []string{plan.ModuleCodeGenerator},
	},
	plan.ModuleMain: {
		Functionality: "Orchestrates the entire pipeline by sequentially invoking the parsing, planning, analysis, " +
			"code generation, and evaluation modules.",
		ExpectedInputs:  []string{"Configuration details and outputs from all modules"},
		ExpectedOutputs: []string{"Final code repository and evaluation metrics"},
		Dependencies: []string{
			plan.ModulePaperParser, plan.ModulePlanner, plan.ModuleAnalyzer,
			plan.ModuleCodeGenerator, plan.ModuleEvaluation,
		},
	},
}

// Spec returns a copy of the table entry for name and whether it exists.
func Spec(name string) (types.ModuleSpec, bool) {
	s, ok := moduleSpecs[name]
	if !ok {
		return types.ModuleSpec{}, false
	}
	return copySpec(s), true
}

func emptySpec() types.ModuleSpec {
	return types.ModuleSpec{
		Functionality:   emptyFunctionality,
		ExpectedInputs:  []string{},
		ExpectedOutputs: []string{},
		Dependencies:    []string{},
	}
}

func copySpec(s types.ModuleSpec) types.ModuleSpec {
	return types.ModuleSpec{
		Functionality:   s.Functionality,
		ExpectedInputs:  append([]string{}, s.ExpectedInputs...),
		ExpectedOutputs: append([]string{}, s.ExpectedOutputs...),
		Dependencies:    append([]string{}, s.Dependencies...),
	}
}
