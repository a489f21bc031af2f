// Command schema regenerates the JSON schema for the service configuration.
// It is invoked from pkg/config via go:generate and the output is embedded
// there to verify loaded configs.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/umputun/chow/pkg/config"
)

func main() {
	out := "schema.json"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	schema := jsonschema.Reflect(&config.Config{})
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("marshal schema: %v", err)
	}

	if err := os.WriteFile(out, data, 0o600); err != nil {
		log.Fatalf("write %s: %v", out, err)
	}

	fmt.Printf("schema written to %s\n", out)
}
