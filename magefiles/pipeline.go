// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/pdiddy/paper-coder/internal/pipeline"
)

// outputDir receives generated repositories from the Run target.
const outputDir = "output"

// Init writes a default config.yaml and a sample paper.json into the
// working directory if they are missing.
func Init() error {
	created, err := pipeline.InitWorkspace(".")
	if err != nil {
		return err
	}
	for _, path := range created {
		fmt.Println("  ", path)
	}
	fmt.Println("Workspace initialized.")
	return nil
}

// Run builds the CLI and runs the pipeline on paper.json, exporting the
// generated repository into output/.
func Run() error {
	mg.SerialDeps(Init, Build)
	return sh.RunV(filepath.Join(binDir, binName),
		"--paper", pipeline.DefaultPaperFile,
		"--config", pipeline.DefaultConfigFile,
		"--output-dir", outputDir,
	)
}

// Plan builds the CLI and prints the plan for paper.json.
func Plan() error {
	mg.SerialDeps(Init, Build)
	return sh.RunV(filepath.Join(binDir, binName), "plan",
		"--paper", pipeline.DefaultPaperFile,
		"--config", pipeline.DefaultConfigFile,
	)
}
