package main

import (
	"fmt"

	"github.com/osse101/ProjectLife_Go/internal/validation"
)

type ValidatePlanCommand struct{}

func (c *ValidatePlanCommand) Name() string {
	return "validate-plan"
}

func (c *ValidatePlanCommand) Description() string {
	return "Check plan JSON files against the plan schema <file>..."
}

func (c *ValidatePlanCommand) Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one plan file required")
	}

	PrintHeader("Validating plans")

	failed := 0
	v := validation.Default()
	for _, path := range args {
		if err := v.ValidateFile(path, validation.SchemaPlan); err != nil {
			PrintError("%s: %v", path, err)
			failed++
			continue
		}
		PrintSuccess("%s", path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d plans invalid", failed, len(args))
	}
	return nil
}
