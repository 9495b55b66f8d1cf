// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import "github.com/pdiddy/paper-coder/pkg/types"

// Module names of the target repository.
const (
	ModulePaperParser   = "paper_parser.go"
	ModulePlanner       = "planner.go"
	ModuleAnalyzer      = "analyzer.go"
	ModuleCodeGenerator = "code_generator.go"
	ModuleEvaluation    = "evaluation.go"
	ModuleMain          = "main.go"
)

// ModuleNames returns the fixed module list in dependency order: each
// module comes after every module it depends on.
func ModuleNames() []string {
	return []string{
		ModulePaperParser,
		ModulePlanner,
		ModuleAnalyzer,
		ModuleCodeGenerator,
		ModuleEvaluation,
		ModuleMain,
	}
}

const classDiagram = `classDiagram
    class Pipeline {
        +Run(opts Options) (*Result, error)
    }
    class PaperParser {
        +Parse(raw map[string]any) (*Paper, error)
    }
    class Planner {
        +BuildPlan(paper *Paper) Plan
        +BuildArchitecture() Architecture
        +LoadConfig(path string) Config
    }
    class Analyzer {
        +Analyze(arch Architecture) ([]ModuleAnalysis, error)
    }
    class Generator {
        +NewGenerator(analyses []ModuleAnalysis, cfg *Config) (*Generator, error)
        +Generate() (Repository, error)
    }
    class Evaluator {
        +NewEvaluator(repo Repository, cfg Config) (*Evaluator, error)
        +Evaluate() EvaluationResult
    }
    Pipeline --> PaperParser
    Pipeline --> Planner
    Pipeline --> Analyzer
    Pipeline --> Generator
    Pipeline --> Evaluator
`

const sequenceDiagram = `sequenceDiagram
    participant M as Pipeline
    participant PP as PaperParser
    participant PL as Planner
    participant AN as Analyzer
    participant CG as Generator
    participant EV as Evaluator
    M->>PP: load paper JSON and call Parse()
    PP-->>M: return structured Paper
    M->>PL: pass Paper; call BuildPlan()
    PL-->>M: return overall plan
    M->>PL: call BuildArchitecture()
    PL-->>M: return module list, class diagram, and sequence diagram
    M->>PL: call LoadConfig()
    PL-->>M: return configuration
    M->>AN: pass Architecture; call Analyze()
    AN-->>M: return module analyses
    M->>CG: pass analyses and Config; call Generate()
    CG-->>M: return generated repository
    M->>EV: pass repository and Config; call Evaluate()
    EV-->>M: return evaluation result
`

// BuildArchitecture returns the fixed architecture. It does not depend on
// the paper.
func BuildArchitecture() types.Architecture {
	return types.Architecture{
		ModuleNames:     ModuleNames(),
		ClassDiagram:    classDiagram,
		SequenceDiagram: sequenceDiagram,
	}
}
