// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

// Command gen-schema writes the JSON Schema of each API request body.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gatekeeper/gatekeeper/internal/api"
)

func main() {
	schemas, err := api.GenerateSchemas()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating schemas: %v\n", err)
		os.Exit(1)
	}

	outDir := "schemas"
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
		os.Exit(1)
	}

	for _, name := range slices.Sorted(maps.Keys(schemas)) {
		outPath := filepath.Join(outDir, strings.ToLower(strings.TrimSuffix(name, "Request"))+".schema.json")
		if err := os.WriteFile(outPath, schemas[name], 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Generated %s\n", outPath)
	}
}
