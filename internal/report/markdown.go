package report

import (
	"fmt"
	"strings"
)

// escapeMarkdownCell keeps table cells on one row
func escapeMarkdownCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// renderMarkdown renders a Markdown report
func renderMarkdown(doc *Document) []byte {
	var sb strings.Builder

	// Header
	sb.WriteString("# Collider Map Collision Report\n\n")

	// Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Parameter | Value |\n")
	sb.WriteString("|-----------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Scan Time | %s |\n", doc.GeneratedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("| Target Directory | `%s` |\n", escapeMarkdownCell(doc.TargetDirectory)))
	sb.WriteString(fmt.Sprintf("| File Patterns Searched | %s |\n", escapeMarkdownCell(doc.SearchedText())))
	sb.WriteString(fmt.Sprintf("| File Patterns Ignored | %s |\n", escapeMarkdownCell(doc.IgnoredText())))
	if r := doc.Results; r != nil {
		sb.WriteString(fmt.Sprintf("| Files Matched | %d |\n", r.MatchedFiles))
		sb.WriteString(fmt.Sprintf("| Files Hashed | %d |\n", r.HashedFiles))
		if r.SkippedFiles > 0 {
			sb.WriteString(fmt.Sprintf("| Unreadable Files Skipped | %d |\n", r.SkippedFiles))
		}
		sb.WriteString(fmt.Sprintf("| Duration | %s |\n", FormatDuration(r.Duration)))
	}
	sb.WriteString(fmt.Sprintf("| **Critical Conflicts** | **%d** |\n", doc.TotalConflicts))
	sb.WriteString(fmt.Sprintf("| **Redundant Duplicates** | **%d** |\n", doc.TotalDuplicates))
	sb.WriteString("\n")

	if !doc.HasCollisions() {
		sb.WriteString("> No collisions or duplicates found.\n")
		return []byte(sb.String())
	}

	for _, section := range doc.Sections {
		sb.WriteString(fmt.Sprintf("## %s\n\n", SectionTitle(section.Extension)))

		if len(section.Conflicts) > 0 {
			sb.WriteString("### Critical Conflicts\n\n")
			sb.WriteString("_Same name, different content._\n\n")
			writeMarkdownTable(&sb, section.Conflicts)
		}
		if len(section.Duplicates) > 0 {
			sb.WriteString("### Redundant Duplicates\n\n")
			sb.WriteString("_Same name, identical content._\n\n")
			writeMarkdownTable(&sb, section.Duplicates)
		}
	}

	return []byte(sb.String())
}

func writeMarkdownTable(sb *strings.Builder, groups []Group) {
	sb.WriteString("| File | Resource | Path | Size |\n")
	sb.WriteString("|------|----------|------|------|\n")
	for _, g := range groups {
		for _, row := range g.Rows {
			label := ""
			if row.Representative {
				label = fmt.Sprintf("**%s**", escapeMarkdownCell(row.Label))
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | `%s` | %s |\n",
				label,
				escapeMarkdownCell(row.Resource),
				escapeMarkdownCell(row.RelativePath),
				row.Size))
		}
	}
	sb.WriteString("\n")
}
