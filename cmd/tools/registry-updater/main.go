// cmd/tools/registry-updater/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"supplychain-assistant/internal/models"
	"supplychain-assistant/pkg/registry"
)

const defaultRegistryPath = "configs/capability-registry.json"

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	// Export command flags
	exportPath := exportCmd.String("path", defaultRegistryPath, "Destination file")
	exportFormat := exportCmd.String("format", "json", "Output format (json, yaml)")

	// Update command flags
	updatePath := updateCmd.String("path", defaultRegistryPath, "Path to registry file")
	intent := updateCmd.String("intent", "", "Intent of the capability to update (e.g., trailer-lookup)")
	field := updateCmd.String("field", "", "Field to update (displayName, description, category, tags)")
	value := updateCmd.String("value", "", "New value for the field (tags are comma separated)")

	// Validate command flags
	validatePath := validateCmd.String("path", defaultRegistryPath, "Path to registry file")

	if len(os.Args) < 2 {
		help(os.Stdout)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		if err := exportRegistry(registry.Default(), *exportPath, *exportFormat); err != nil {
			fmt.Printf("Error exporting registry: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported built-in registry to %s\n", *exportPath)

	case "update":
		updateCmd.Parse(os.Args[2:])
		if *intent == "" || *field == "" || *value == "" {
			fmt.Println("Error: intent, field, and value are required for update.")
			updateCmd.Usage()
			os.Exit(1)
		}
		if err := updateCapability(*updatePath, models.Intent(*intent), *field, *value); err != nil {
			fmt.Printf("Error updating capability: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Updated capability %s, field %s to %s\n", *intent, *field, *value)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		reg, err := validateRegistry(*validatePath)
		if err != nil {
			fmt.Printf("Registry validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Registry validation passed. Found %d capabilities and %d role profiles.\n", len(reg.Capabilities), len(reg.Roles))

	case "help":
		fallthrough
	default:
		help(os.Stdout)
	}
}

func exportRegistry(reg *registry.CapabilityRegistry, path, format string) error {
	if err := reg.Validate(); err != nil {
		return fmt.Errorf("built-in registry invalid: %w", err)
	}

	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(reg, "", "  ")
	case "yaml":
		data, err = marshalYAML(reg)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}
	return writeFile(path, append(data, '\n'))
}

// marshalYAML goes through JSON first so the YAML keys match the JSON ones.
func marshalYAML(reg *registry.CapabilityRegistry) ([]byte, error) {
	raw, err := json.Marshal(reg)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

func updateCapability(path string, intent models.Intent, field, value string) error {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	found := false
	for i := range reg.Capabilities {
		if reg.Capabilities[i].Intent != intent {
			continue
		}
		found = true
		switch field {
		case "displayName":
			reg.Capabilities[i].DisplayName = value
		case "description":
			reg.Capabilities[i].Description = value
		case "category":
			reg.Capabilities[i].Category = value
		case "tags":
			reg.Capabilities[i].Tags = splitList(value)
		default:
			return fmt.Errorf("unknown field: %s", field)
		}
		break
	}

	if !found {
		return fmt.Errorf("capability for intent %s not found", intent)
	}

	reg.LastUpdated = time.Now().Format("2006-01-02")
	if err := reg.Validate(); err != nil {
		return fmt.Errorf("updated registry invalid: %w", err)
	}
	return reg.Save(path)
}

func validateRegistry(path string) (*registry.CapabilityRegistry, error) {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func writeFile(path string, data []byte) error {
	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	return nil
}

func help(w io.Writer) {
	fmt.Fprint(w, `
Usage: registry-updater <command> [flags]

Commands:
  export   Write the built-in capability registry to a file
  update   Update a field of one capability
  validate Validate a registry file
  help     Show this help message

Examples:
  registry-updater export -path configs/capability-registry.json
  registry-updater export -path /tmp/registry.yaml -format yaml
  registry-updater update -intent trailer-lookup -field tags -value "yard,inbound"
  registry-updater validate -path configs/capability-registry.json

Use 'registry-updater <command> -h' for more information about a command.
`)
}
