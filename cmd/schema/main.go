package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/luvbee/discovery/pkg/config"
)

func main() {
	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	if outputPath == "-" {
		if err := writeSchema(os.Stdout); err != nil {
			log.Fatalf("failed to write schema: %v", err)
		}
		return
	}

	f, err := os.Create(outputPath) //nolint:gosec // output path comes from go:generate
	if err != nil {
		log.Fatalf("failed to create schema file: %v", err)
	}
	if err := writeSchema(f); err != nil {
		_ = f.Close()
		log.Fatalf("failed to write schema: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("failed to close schema file: %v", err)
	}
	fmt.Printf("config schema written to %s\n", outputPath)
}

// writeSchema reflects the config struct and writes indented json schema to w
func writeSchema(w io.Writer) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	return nil
}
