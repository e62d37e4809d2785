package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gork-labs/oneof/pkg/openapi"
)

func newGenerateCommand() *cobra.Command {
	var config GenerateConfig

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate schema components from a union manifest",
		RunE: func(_ *cobra.Command, _ []string) error {
			return Generate(&config)
		},
	}

	cmd.Flags().StringVar(&config.ManifestPath, "config", "oneof.yml", "Path to the union manifest file")
	cmd.Flags().StringVar(&config.OutputPath, "output", "-", "Path to output file or '-' for stdout")
	cmd.Flags().StringVar(&config.Format, "format", "json", "Output format: json or yaml")

	return cmd
}

// GenerateConfig holds configuration for schema generation.
type GenerateConfig struct {
	ManifestPath string
	OutputPath   string
	Format       string
}

// Generate parses the manifest, derives every declared union and writes the
// resulting components document.
func Generate(config *GenerateConfig) error {
	data, err := os.ReadFile(filepath.Clean(config.ManifestPath))
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	manifest, err := ParseManifest(data)
	if err != nil {
		return err
	}

	doc, err := manifest.Build()
	if err != nil {
		return err
	}

	return writeOutput(doc, config)
}

func writeOutput(doc *openapi.Document, config *GenerateConfig) error {
	if config.OutputPath == "-" {
		return writeDocument(os.Stdout, config.Format, doc)
	}

	f, err := os.Create(config.OutputPath) // #nosec G304
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return writeDocument(f, config.Format, doc)
}

func writeDocument(w io.Writer, format string, doc *openapi.Document) error {
	switch format {
	case "json":
		return openapi.WriteJSON(w, doc)
	case "yaml", "yml":
		return openapi.WriteYAML(w, doc)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
