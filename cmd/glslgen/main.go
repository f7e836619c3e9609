// Command glslgen writes GLSL source for the built-in shader templates.
//
// Usage:
//
//	glslgen [--config file] [--log-level level] <command>
//
// Examples:
//
//	glslgen list                          # List templates
//	glslgen emit solid                    # Emit for the configured target
//	glslgen emit blur --target 120        # Emit for GLSL 1.20
//	glslgen emit blur --bind TAPS=9       # Override a placeholder
//	glslgen variants tonemap --write      # Write every target to the resource dir
package main

import (
	"os"

	"github.com/gogpu/glslgen/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.PrintErrorMessage("glslgen", err)
		os.Exit(1)
	}
}
