package cmd

import "github.com/samwightt/gqlscaffold/internal/generator"

type NormalizedInfo struct {
	Input string `json:"input"`
	Mode  string `json:"mode"`
	Name  string `json:"name"`
	Null  bool   `json:"null"`
}

type PlanInfo struct {
	*generator.Plan
	Warnings []generator.Warning `json:"warnings,omitempty"`
	Ruby     string              `json:"ruby"`
	SDL      string              `json:"sdl,omitempty"`
}
