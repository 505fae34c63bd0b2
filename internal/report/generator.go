package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/IvanShishkin/collider/internal/config"
	"github.com/IvanShishkin/collider/pkg/models"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

// ErrUnknownFormat is returned for report formats with no renderer
var ErrUnknownFormat = errors.New("unknown report format")

// Canonical format names
const (
	FormatLua      = "lua"
	FormatText     = "txt"
	FormatHTML     = "html"
	FormatMarkdown = "md"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// formatAliases maps accepted names to canonical ones
var formatAliases = map[string]string{
	"lua":      FormatLua,
	"txt":      FormatText,
	"text":     FormatText,
	"html":     FormatHTML,
	"md":       FormatMarkdown,
	"markdown": FormatMarkdown,
	"json":     FormatJSON,
	"yaml":     FormatYAML,
	"yml":      FormatYAML,
}

// NormalizeFormat returns the canonical name for format
func NormalizeFormat(format string) (string, error) {
	f, ok := formatAliases[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	return f, nil
}

// FormatDuration formats duration to a human-readable string with max 2 decimal places
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	} else if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	} else if d < time.Hour {
		mins := int(d.Minutes())
		secs := d.Seconds() - float64(mins*60)
		return fmt.Sprintf("%dm%.2fs", mins, secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) - hours*60
	secs := d.Seconds() - float64(hours*3600) - float64(mins*60)
	return fmt.Sprintf("%dh%dm%.2fs", hours, mins, secs)
}

// Generator generates scan reports in various formats
type Generator struct {
	config *config.Config
	logger *zap.Logger
	out    io.Writer
	color  bool
	now    func() time.Time
}

// NewGenerator creates a new report generator
func NewGenerator(cfg *config.Config, logger *zap.Logger) (*Generator, error) {
	if cfg.ReportFormat != "" {
		if _, err := NormalizeFormat(cfg.ReportFormat); err != nil {
			return nil, err
		}
	}

	return &Generator{
		config: cfg,
		logger: logger,
		out:    os.Stdout,
		color:  isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
		now:    time.Now,
	}, nil
}

// SetOutput redirects the console summary; color is disabled for non-terminal writers
func (g *Generator) SetOutput(w io.Writer) {
	g.out = w
	if f, ok := w.(*os.File); ok {
		g.color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		return
	}
	g.color = false
}

// DefaultFileName returns the report name used when no output file is configured
func DefaultFileName(format string, at time.Time) string {
	return fmt.Sprintf("COLLIDER-REPORT-%s.%s", at.Format("20060102-150405"), format)
}

// Generate renders results in the configured format and writes the report.
// With no format the summary is printed to the console and the returned path is empty.
// A failed write leaves results untouched.
func (g *Generator) Generate(results *models.ScanResults) (string, error) {
	if g.config.ReportFormat == "" {
		g.PrintConsole(results)
		return "", nil
	}

	format, err := NormalizeFormat(g.config.ReportFormat)
	if err != nil {
		return "", err
	}

	now := g.now()
	outputFile := g.config.OutputFile
	if outputFile == "" {
		outputFile = DefaultFileName(format, now)
	}

	g.logger.Info("Generating report",
		zap.String("format", format),
		zap.String("output", outputFile))

	data, err := Render(format, NewDocument(results, now))
	if err != nil {
		return "", fmt.Errorf("failed to generate %s report: %w", format, err)
	}

	if err := LockAndWrite(outputFile, data); err != nil {
		return "", fmt.Errorf("failed to write %s report: %w", format, err)
	}

	absPath, err := filepath.Abs(outputFile)
	if err != nil {
		absPath = outputFile
	}
	results.ReportPath = absPath
	return absPath, nil
}

// Render produces the report bytes for a canonical or aliased format
func Render(format string, doc *Document) ([]byte, error) {
	f, err := NormalizeFormat(format)
	if err != nil {
		return nil, err
	}

	switch f {
	case FormatLua, FormatText:
		return renderText(doc), nil
	case FormatHTML:
		return renderHTML(doc), nil
	case FormatMarkdown:
		return renderMarkdown(doc), nil
	case FormatJSON:
		return renderJSON(doc)
	case FormatYAML:
		return renderYAML(doc)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}
