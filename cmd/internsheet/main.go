// Package main provides the CLI entry point for internsheet.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mhakala/internsheet/pkg/internsheet"
	"github.com/mhakala/internsheet/pkg/internsheet/output"
	"github.com/mhakala/internsheet/pkg/internsheet/report"
)

var (
	templatePath string
	outputPath   string
	pretty       bool
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "internsheet [input.xlsx|input.zip ...]",
		Short: "Consolidate student internship hours from advising workbooks",
		Long: `internsheet extracts student identifiers and internship completion hours
from standardized advising workbooks. Inputs may be individual .xlsx files
or zip bundles of them; results are consolidated into a single report with
one row per student and one column per internship code.`,
		Args: cobra.MinimumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&templatePath, "template", "t", "", "Template YAML file (default: built-in layout)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Consolidated xlsx report path (default: JSON to stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cobra.OnInitialize(initConfig)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetConfigName("internsheet")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "internsheet"))
	}

	viper.SetEnvPrefix("INTERNSHEET")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Flags win over config file and environment.
	if templatePath == "" {
		templatePath = viper.GetString("template")
	}
	if outputPath == "" {
		outputPath = viper.GetString("output")
	}

	tpl := internsheet.DefaultTemplate()
	if templatePath != "" {
		var err error
		tpl, err = internsheet.LoadTemplate(templatePath)
		if err != nil {
			return err
		}
	}

	sources := make([]internsheet.Source, 0, len(args))
	for _, arg := range args {
		f, err := os.Open(arg)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		sources = append(sources, internsheet.Source{Name: filepath.Base(arg), Reader: f})
	}

	res, err := internsheet.Run(sources, tpl, logger)
	if err != nil {
		return err
	}

	logger.Info("batch complete",
		"discovered", res.Total(),
		"processed", res.Succeeded(),
		"failed", res.Failed(),
	)

	if outputPath != "" {
		if err := report.Write(outputPath, res, tpl); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		logger.Info("report written", "path", outputPath)
		return nil
	}

	jsonData, err := output.ToJSON(res, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Println(string(jsonData))
	return nil
}
