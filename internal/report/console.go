package report

import (
	"fmt"
	"strings"

	"github.com/IvanShishkin/collider/pkg/models"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

const consoleRule = "───────────────────────────────────────────────────────────────"

// PrintConsole prints the scan summary and every collision group
func (g *Generator) PrintConsole(results *models.ScanResults) {
	bold := color.New(color.Bold)
	title := color.New(color.Bold, color.FgCyan)
	gray := color.New(color.FgHiBlack)
	red := color.New(color.Bold, color.FgRed)
	yellow := color.New(color.FgYellow)
	green := color.New(color.Bold, color.FgGreen)
	for _, c := range []*color.Color{bold, title, gray, red, yellow, green} {
		if g.color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	w := g.out
	doc := NewDocument(results, g.now())

	fmt.Fprintln(w)
	title.Fprintln(w, "SCAN COMPLETE")
	fmt.Fprintln(w)

	// Stats
	gray.Fprint(w, "  Path:      ")
	fmt.Fprintln(w, results.ScanPath)
	gray.Fprint(w, "  Searched:  ")
	fmt.Fprintln(w, doc.SearchedText())
	gray.Fprint(w, "  Ignored:   ")
	fmt.Fprintln(w, doc.IgnoredText())
	gray.Fprint(w, "  Files:     ")
	fmt.Fprintf(w, "%s visited, %s matched, %s hashed (%s)\n",
		humanize.Comma(int64(results.TotalFiles)),
		humanize.Comma(int64(results.MatchedFiles)),
		humanize.Comma(int64(results.HashedFiles)),
		humanize.Bytes(uint64(results.BytesHashed)))
	if results.SkippedFiles > 0 {
		gray.Fprint(w, "  Skipped:   ")
		yellow.Fprintf(w, "%d unreadable\n", results.SkippedFiles)
	}
	gray.Fprint(w, "  Duration:  ")
	fmt.Fprintln(w, FormatDuration(results.Duration))
	fmt.Fprintln(w)

	if !doc.HasCollisions() {
		green.Fprintln(w, "  ✓ No collisions or duplicates found")
		fmt.Fprintln(w)
		return
	}

	gray.Fprintln(w, consoleRule)
	for _, section := range doc.Sections {
		fmt.Fprintln(w)
		bold.Fprintf(w, "  --- %s ---\n", SectionTitle(section.Extension))

		for _, grp := range section.Conflicts {
			red.Fprintf(w, "\n  CONFLICT  ")
			bold.Fprintf(w, "%s", grp.Filename)
			gray.Fprintf(w, " (%d versions)\n", grp.DistinctHashes)
			printConsoleRows(g, gray, grp.Rows)
		}
		for _, grp := range section.Duplicates {
			yellow.Fprintf(w, "\n  DUPLICATE ")
			bold.Fprintf(w, "%s\n", grp.Filename)
			printConsoleRows(g, gray, grp.Rows)
		}
	}
	fmt.Fprintln(w)
	gray.Fprintln(w, consoleRule)
	fmt.Fprintln(w)

	// Totals
	gray.Fprint(w, "  Total Critical Conflicts:   ")
	red.Fprintln(w, doc.TotalConflicts)
	gray.Fprint(w, "  Total Redundant Duplicates: ")
	yellow.Fprintln(w, doc.TotalDuplicates)
	fmt.Fprintln(w)
}

func printConsoleRows(g *Generator, gray *color.Color, rows []Row) {
	for _, row := range rows {
		fmt.Fprintf(g.out, "      %-25s ", row.Resource)
		fmt.Fprint(g.out, row.RelativePath)
		gray.Fprintf(g.out, "  %s\n", strings.TrimSpace(row.Size))
	}
}
