// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package codegen

import (
	"embed"
	"text/template"

	"github.com/pdiddy/paper-coder/internal/plan"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// templates holds every module template, keyed by file name.
var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// templateKind selects the template body for a module.
type templateKind int

const (
	kindGeneric templateKind = iota
	kindImplemented
	kindEvaluation
	kindMain
	kindSelf
)

// files maps each kind to its template file.
var files = map[templateKind]string{
	kindGeneric:     "generic.tmpl",
	kindImplemented: "implemented.tmpl",
	kindEvaluation:  "evaluation.tmpl",
	kindMain:        "main.tmpl",
	kindSelf:        "code_generator.tmpl",
}

func (k templateKind) String() string {
	switch k {
	case kindImplemented:
		return "implemented"
	case kindEvaluation:
		return "evaluation"
	case kindMain:
		return "main"
	case kindSelf:
		return "self"
	default:
		return "generic"
	}
}

// kindFor returns the template kind for a module name. Matching is exact.
func kindFor(name string) templateKind {
	switch name {
	case plan.ModulePaperParser, plan.ModulePlanner, plan.ModuleAnalyzer:
		return kindImplemented
	case plan.ModuleEvaluation:
		return kindEvaluation
	case plan.ModuleMain:
		return kindMain
	case plan.ModuleCodeGenerator:
		return kindSelf
	default:
		return kindGeneric
	}
}
