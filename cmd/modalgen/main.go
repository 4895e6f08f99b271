package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/interactkit/modalgen/pkg/manifest"
	"github.com/interactkit/modalgen/pkg/preview"
	"github.com/interactkit/modalgen/pkg/schemagen"
)

const manifestEnvVar = "MODALGEN_MANIFEST"

func main() {
	// A .env in the working directory may provide MODALGEN_MANIFEST; its
	// absence is not an error.
	_ = godotenv.Load()

	if err := executeRootCmd(); err != nil {
		if errors.Is(err, preview.ErrAborted) {
			log.Warn("preview aborted")
			os.Exit(130)
		}
		log.Fatal(err)
	}
}

func executeRootCmd() error {
	rootCmd := &cobra.Command{
		Use:           "modalgen",
		Short:         "Lint, preview, and generate modal dialog manifests.",
		Long:          "Modalgen works with declarative modal dialog manifests: it validates them, previews them in the terminal, and generates them from OpenAPI operations.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(lintCmd(), previewCmd(), genCmd())
	return rootCmd.ExecuteContext(context.Background())
}

func lintCmd() *cobra.Command {
	var sanitize bool

	cmd := &cobra.Command{
		Use:   "lint <manifest...>",
		Short: "Validate manifest files.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := argsOrEnvManifest(args)
			if len(paths) == 0 {
				return fmt.Errorf("no manifest given (pass a path or set %s)", manifestEnvVar)
			}
			failed := 0
			for _, path := range paths {
				store, err := loadManifest(path, sanitize)
				if err != nil {
					failed++
					log.Error("invalid manifest", "file", path, "err", err)
					continue
				}
				log.Info("manifest ok", "file", path, "modals", strings.Join(store.IDs(), ", "))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d manifests failed validation", failed, len(paths))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&sanitize, "sanitize", false, "strip HTML markup from display text before validating")
	return cmd
}

func previewCmd() *cobra.Command {
	var (
		modalID  string
		asJSON   bool
		sanitize bool
	)

	cmd := &cobra.Command{
		Use:   "preview [manifest]",
		Short: "Fill a modal in the terminal and print the submission.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := argsOrEnvManifest(args)
			if len(paths) == 0 {
				return fmt.Errorf("no manifest given (pass a path or set %s)", manifestEnvVar)
			}
			store, err := loadManifest(paths[0], sanitize)
			if err != nil {
				return err
			}

			id := modalID
			if id == "" {
				ids := store.IDs()
				if len(ids) != 1 {
					return fmt.Errorf("manifest defines %d modals, pick one with --modal (%s)", len(ids), strings.Join(ids, ", "))
				}
				id = ids[0]
			}
			m, ok := store.Modal(id)
			if !ok {
				return fmt.Errorf("modal %q not found in %s", id, paths[0])
			}

			data, err := preview.Run(cmd.Context(), m)
			if err != nil {
				return err
			}

			if asJSON {
				out, err := json.MarshalIndent(data, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}
			for _, res := range data.Responses {
				fmt.Printf("%s: %q\n", res.CustomID, res.Value)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&modalID, "modal", "", "modal id to preview (required when the manifest defines several)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the submission as JSON")
	cmd.Flags().BoolVar(&sanitize, "sanitize", false, "strip HTML markup from display text before validating")
	return cmd
}

func genCmd() *cobra.Command {
	var (
		source    string
		operation string
		output    string
		threshold int
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a modal manifest from an OpenAPI operation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(source)
			if err != nil {
				return fmt.Errorf("read %s: %w", source, err)
			}

			builder := schemagen.New(schemagen.WithParagraphThreshold(threshold))
			m, err := builder.Build(cmd.Context(), raw, operation)
			if err != nil {
				return err
			}

			doc := manifest.Document{Modals: map[string]manifest.ModalConfig{
				operation: manifest.ConfigFromModal(m),
			}}
			out, err := yaml.Marshal(doc)
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Print(string(out))
				return nil
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			log.Info("manifest written", "file", output, "modal", operation)
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "OpenAPI document path")
	cmd.Flags().StringVar(&operation, "operation", "", "operationId to derive the modal from")
	cmd.Flags().StringVar(&output, "output", "", "output file (stdout if empty)")
	cmd.Flags().IntVar(&threshold, "threshold", schemagen.DefaultParagraphThreshold, "max_length above which fields become paragraphs")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("operation")
	return cmd
}

func argsOrEnvManifest(args []string) []string {
	if len(args) > 0 {
		return args
	}
	if fromEnv := strings.TrimSpace(os.Getenv(manifestEnvVar)); fromEnv != "" {
		return []string{fromEnv}
	}
	return nil
}

func loadManifest(path string, sanitize bool) (*manifest.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var opts []manifest.LoadOption
	if sanitize {
		opts = append(opts, manifest.WithSanitizer())
	}
	store, err := manifest.Load(data, opts...)
	if err != nil {
		return nil, err
	}
	return store, nil
}
