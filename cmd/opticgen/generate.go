package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/authcorp/optics/internal/codegen"
	"github.com/authcorp/optics/internal/config"
	"github.com/authcorp/optics/internal/scan"
)

type generateFlags struct {
	file       string
	configPath string
	types      []string
	pkg        string
	output     string
	unexported bool
	dryRun     bool
}

func newGenerateCmd() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate optics for a Go file",
		Long: `Generate a lens for every field of the file's struct types and a prism for
every variant of its sealed interfaces. Without --file the file named by
$GOFILE is used, as set by go generate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags)
		},
	}

	addGenerateFlags(cmd, flags)
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print the generated code instead of writing it")
	return cmd
}

func addGenerateFlags(cmd *cobra.Command, flags *generateFlags) {
	cmd.Flags().StringVarP(&flags.file, "file", "f", os.Getenv("GOFILE"), "Go source file to scan")
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "YAML or JSON configuration file")
	cmd.Flags().StringSliceVarP(&flags.types, "types", "t", nil, "Only generate optics for these types")
	cmd.Flags().StringVar(&flags.pkg, "package", "", "Import path of the optics package")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default <file>"+config.Defaults()[config.KeyOutputSuffix].(string)+")")
	cmd.Flags().BoolVar(&flags.unexported, "unexported", false, "Include unexported types and fields")
}

func loadOptions(cmd *cobra.Command, flags *generateFlags) (config.Options, error) {
	cfg := config.New()
	if flags.configPath != "" {
		if err := cfg.LoadFile(flags.configPath); err != nil {
			return config.Options{}, err
		}
	}
	cfg.LoadEnv(config.EnvPrefix)

	if cmd.Flags().Changed("types") {
		cfg.Set(config.KeyTypes, flags.types)
	}
	if cmd.Flags().Changed("package") {
		cfg.Set(config.KeyPackage, flags.pkg)
	}
	if cmd.Flags().Changed("unexported") {
		cfg.Set(config.KeyIncludeUnexported, flags.unexported)
	}

	logger.Debug("resolved configuration", zap.Any("settings", cfg.All()))
	if err := cfg.Validate(config.KeyPackage, config.KeyOutputSuffix); err != nil {
		return config.Options{}, err
	}
	return cfg.Options()
}

func runGenerate(cmd *cobra.Command, flags *generateFlags) error {
	if flags.file == "" {
		return errors.New("no input file: pass --file or run from go generate")
	}

	opts, err := loadOptions(cmd, flags)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	scanner := scan.New(logger, scan.WithUnexported(opts.IncludeUnexported))
	file, err := scanner.ScanFile(flags.file, nil)
	if err != nil {
		return err
	}
	file, err = file.Select(opts)
	if err != nil {
		return err
	}

	gen := codegen.New(opts, logger)
	output := flags.output
	if output == "" {
		output = gen.OutputPath(flags.file)
	}

	src, err := gen.Generate(file, output)
	if err != nil {
		return err
	}

	if flags.dryRun {
		_, err := cmd.OutOrStdout().Write(src)
		return err
	}

	if err := os.WriteFile(output, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	logger.Info("wrote optics",
		zap.String("input", flags.file),
		zap.String("output", output),
		zap.Int("structs", len(file.Structs)),
		zap.Int("sums", len(file.Sums)),
	)
	return nil
}
