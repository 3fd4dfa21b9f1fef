package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/gemarc/feedback/pkg/config"
)

func main() {
	schema := config.GenerateSchema()
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal schema: %v", err)
	}

	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	if err := os.WriteFile(outputPath, append(data, '\n'), 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		log.Fatalf("failed to write schema file: %v", err)
	}

	fmt.Printf("Schema written to %s, sections: %v\n", outputPath, config.SchemaSections(schema))
}
