package report

import (
	"fmt"
	"strings"
)

const (
	textBanner    = "-- ###################################################"
	textSeparator = "--" + "########################################################################################################################" + "--"
)

// renderText renders the comment-prefixed structured text report.
// Every line is a Lua comment so the file can sit inside a resource tree.
func renderText(doc *Document) []byte {
	var sb strings.Builder

	// Header
	sb.WriteString(textBanner + "\n")
	sb.WriteString("-- #         COLLIDER MAP COLLISION REPORT (LUA)     #\n")
	sb.WriteString(textBanner + "\n")
	sb.WriteString(fmt.Sprintf("-- Scan Time: %s\n", doc.GeneratedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("-- Target Directory: %s\n", doc.TargetDirectory))
	sb.WriteString(fmt.Sprintf("-- File Patterns Searched: %s\n", doc.SearchedText()))
	sb.WriteString(fmt.Sprintf("-- File Patterns Ignored: %s\n", doc.IgnoredText()))
	sb.WriteString("\n")

	if !doc.HasCollisions() {
		sb.WriteString("-- No collisions or duplicates found.\n")
	}

	for i, section := range doc.Sections {
		if i > 0 {
			sb.WriteString(textSeparator + "\n")
		}
		sb.WriteString(fmt.Sprintf("-- --- %s ---\n", SectionTitle(section.Extension)))

		if len(section.Conflicts) > 0 {
			sb.WriteString(" -- [CRITICAL CONFLICTS] (Same Name, Different Content)\n")
			writeTextGroups(&sb, section.Conflicts)
		}
		if len(section.Duplicates) > 0 {
			sb.WriteString(" -- [Redundant Duplicates] (Same Name, Identical Content)\n")
			writeTextGroups(&sb, section.Duplicates)
		}
	}

	// Summary
	sb.WriteString("\n")
	sb.WriteString("-- --- Final Summary ---\n")
	sb.WriteString(fmt.Sprintf("-- Total Critical Conflicts Found: %d\n", doc.TotalConflicts))
	sb.WriteString(fmt.Sprintf("-- Total Redundant Duplicates Found: %d\n", doc.TotalDuplicates))
	if r := doc.Results; r != nil && r.SkippedFiles > 0 {
		sb.WriteString(fmt.Sprintf("-- Unreadable Files Skipped: %d\n", r.SkippedFiles))
	}
	sb.WriteString(textBanner + "\n")

	return []byte(sb.String())
}

func writeTextGroups(sb *strings.Builder, groups []Group) {
	for _, g := range groups {
		sb.WriteString(fmt.Sprintf("  -- - File: %s\n", g.Filename))
		for _, row := range g.Rows {
			sb.WriteString(fmt.Sprintf("    -- - Resource: %-25s Path: %s\n", row.Resource, row.RelativePath))
		}
	}
}
