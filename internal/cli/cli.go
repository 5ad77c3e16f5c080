package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/apperror"
	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/config"
	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/importer"
	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/logger"
	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/storage"
)

// UsageError reports a malformed command line.
type UsageError struct {
	Message string
}

func (e UsageError) Error() string {
	return e.Message
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Usage returns the help text.
func Usage() string {
	return strings.Join([]string{
		titleStyle.Render("LinkedIn Data Importer"),
		"",
		"Usage:",
		"  linkedin-import [-data-dir DIR] [-config-dir DIR] <command> [arg]",
		"",
		"Commands:",
		"  template [output]        Create a template file to fill in by hand (.json or .yaml)",
		"  json [file]              Import from a JSON/YAML file (default: <data-dir>/my-data.json)",
		"  linkedin-export <path>   Import from an official LinkedIn data export folder",
		"  help                     Show this help",
		"",
		"Data sources:",
		"  1. Official LinkedIn export (Settings > Data privacy > Get a copy of your data)",
		"  2. Manual JSON or YAML (create from template)",
		"  3. Browser-scraped JSON in the same shape as the template",
	}, "\n")
}

// Run executes one importer command.
func Run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("linkedin-import", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configDir := fs.String("config-dir", ".", "Directory holding .env and config.yaml")
	dataDir := fs.String("data-dir", "", "Directory holding the SQLite database (overrides config)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stdout, Usage())
			return nil
		}
		return UsageError{Message: err.Error()}
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *dataDir != "" {
		cfg.Storage.DataDir = *dataDir
	}

	rest := fs.Args()
	command := "help"
	if len(rest) > 0 {
		command = rest[0]
	}
	arg := ""
	if len(rest) > 1 {
		arg = rest[1]
	}

	switch command {
	case "template":
		return runTemplate(cfg, arg, stdout)
	case "json":
		return withImporter(cfg, func(im *importer.Importer) error {
			return runJSON(ctx, im, cfg, arg, stdout)
		})
	case "linkedin-export":
		if arg == "" {
			return UsageError{Message: "please provide the path to your LinkedIn export folder"}
		}
		return withImporter(cfg, func(im *importer.Importer) error {
			return runExport(ctx, im, arg, stdout)
		})
	case "help", "-h", "--help":
		fmt.Fprintln(stdout, Usage())
		return nil
	default:
		return UsageError{Message: fmt.Sprintf("unknown command %q", command)}
	}
}

// withImporter opens the store for the duration of fn.
func withImporter(cfg config.Config, fn func(im *importer.Importer) error) error {
	log := logger.NewZapLogger(cfg.Log.Env)
	defer log.Sync()

	store, err := storage.Open(cfg.DBPath())
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(importer.New(store, log))
}

func runTemplate(cfg config.Config, output string, stdout io.Writer) error {
	if output == "" {
		output = filepath.Join(cfg.Storage.DataDir, "template.json")
	}
	if err := importer.WriteTemplate(output); err != nil {
		return err
	}
	fmt.Fprintln(stdout, successStyle.Render("Template created at: "+output))
	fmt.Fprintln(stdout, mutedStyle.Render(strings.Join([]string{
		"Next steps:",
		"1. Edit the template file with your data",
		"2. Save it as my-data.json",
		"3. Run: linkedin-import json",
	}, "\n")))
	return nil
}

func runJSON(ctx context.Context, im *importer.Importer, cfg config.Config, path string, stdout io.Writer) error {
	if path == "" {
		path = filepath.Join(cfg.Storage.DataDir, "my-data.json")
	}
	report, err := im.ImportManual(ctx, path)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return fmt.Errorf("JSON file not found: %s (create one with: linkedin-import template)", path)
		}
		return err
	}
	printReport(stdout, "JSON data imported successfully!", report)
	return nil
}

func runExport(ctx context.Context, im *importer.Importer, dir string, stdout io.Writer) error {
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("export folder not found: %s (download and extract your LinkedIn data export first)", dir)
	}
	report, err := im.ImportExport(ctx, dir)
	if err != nil {
		return err
	}
	printReport(stdout, "LinkedIn export imported successfully!", report)
	return nil
}

func printReport(w io.Writer, headline string, report *importer.Report) {
	fmt.Fprintln(w, successStyle.Render(headline))
	for _, written := range report.Written {
		fmt.Fprintf(w, "  %-15s %d\n", written.Entity, written.Count)
	}
	if len(report.Skipped) > 0 {
		fmt.Fprintln(w, mutedStyle.Render("  skipped: "+strings.Join(report.Skipped, ", ")))
	}
	for _, warning := range report.Warnings {
		fmt.Fprintln(w, mutedStyle.Render("  defaulted: "+warning))
	}
}
