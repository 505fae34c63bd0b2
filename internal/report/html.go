package report

import (
	"fmt"
	"html"
	"strings"
)

// escapeJSString escapes a string for safe use in JavaScript
func escapeJSString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "'", "\\'")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	return s
}

const htmlStyle = `
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #1e1e1e; color: #d4d4d4; margin: 0; padding: 20px; }
        .container { max-width: 1400px; margin: 0 auto; }
        .header { text-align: center; margin-bottom: 40px; }
        .header h1 { color: #4ec9b0; font-size: 2.4em; }
        .header p { color: #9d9d9d; margin: 4px 0; }
        .summary { display: flex; justify-content: space-around; background-color: #333333; padding: 20px; border-radius: 8px; margin-bottom: 40px; }
        .summary div { padding: 0 20px; text-align: center; }
        .conflict-count { font-size: 1.8em; font-weight: bold; color: #f44747; }
        .duplicate-count { font-size: 1.8em; font-weight: bold; color: #ffeb95; }
        h2 { border-bottom: 2px solid #3c3c3c; padding-bottom: 10px; margin-top: 50px; color: #569cd6; }
        h3 { color: #dcdcaa; margin-top: 35px; }
        .report-section { background-color: #2d2d30; padding: 30px; border-radius: 8px; margin-bottom: 40px; }
        table { width: 100%; border-collapse: separate; border-spacing: 0 10px; margin-top: 20px; }
        th, td { padding: 16px; text-align: left; word-break: break-word; }
        th { background-color: #3c3c3c; font-weight: 600; text-transform: uppercase; }
        tr { background-color: #252526; }
        tr:hover { background-color: #3a3a3d; }
        .conflict-type { background-color: #3a1a1a; border-left: 5px solid #f44747; padding: 15px; margin: 20px 0; font-weight: bold; color: #f44747; }
        .duplicate-type { background-color: #3a3a1a; border-left: 5px solid #ffeb95; padding: 15px; margin: 20px 0; font-weight: bold; color: #ffeb95; }
        .resolution-status { text-align: center; width: 60px; }
        .resolution-box { display: none; }
        .resolution-status label { display: inline-block; width: 24px; height: 24px; line-height: 24px; border-radius: 4px; cursor: pointer; font-weight: bold; background-color: #3c3c3c; }
        .resolution-box + label::before { content: '\2717'; color: #f44747; }
        .resolution-box:checked + label::before { content: '\2713'; color: #4ec9b0; }
        .copy-btn { background-color: #569cd6; color: white; border: none; padding: 8px 12px; cursor: pointer; border-radius: 4px; }
        .copy-btn:hover { background-color: #4c8cd2; }
        .filename { font-weight: bold; }
        .hash { font-family: monospace; color: #9d9d9d; }
`

const htmlScript = `
        function copyDir(dir) {
            if (navigator.clipboard && window.isSecureContext) {
                navigator.clipboard.writeText(dir).then(() => {
                    alert('Copied directory path to clipboard: ' + dir);
                }).catch(() => {
                    alert('Failed to copy. Directory path: ' + dir);
                });
                return;
            }
            const area = document.createElement('textarea');
            area.value = dir;
            document.body.appendChild(area);
            area.select();
            try {
                document.execCommand('copy');
                alert('Copied directory path to clipboard: ' + dir);
            } catch (err) {
                alert('Failed to copy. Directory path: ' + dir);
            }
            document.body.removeChild(area);
        }
`

// renderHTML renders the interactive HTML report
func renderHTML(doc *Document) []byte {
	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Collider Map Collision Report</title>
    <style>`)
	sb.WriteString(htmlStyle)
	sb.WriteString(`    </style>
</head>
<body>
<div class="container">
`)

	// Header
	sb.WriteString(`    <div class="header">
        <h1>Collider Map Collision Report</h1>
`)
	sb.WriteString(fmt.Sprintf("        <p>Scan Time: %s</p>\n", doc.GeneratedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("        <p>Target Directory: %s</p>\n", html.EscapeString(doc.TargetDirectory)))
	sb.WriteString(fmt.Sprintf("        <p>File Patterns Searched: %s</p>\n", html.EscapeString(doc.SearchedText())))
	sb.WriteString(fmt.Sprintf("        <p>File Patterns Ignored: %s</p>\n", html.EscapeString(doc.IgnoredText())))
	sb.WriteString("    </div>\n")

	// Summary
	sb.WriteString(fmt.Sprintf(`    <div class="summary">
        <div>Total Critical Conflicts: <span class="conflict-count">%d</span></div>
        <div>Total Redundant Duplicates: <span class="duplicate-count">%d</span></div>
    </div>
`, doc.TotalConflicts, doc.TotalDuplicates))

	sb.WriteString(`    <div class="report-section">
        <h2>Detailed Report</h2>
`)

	if !doc.HasCollisions() {
		sb.WriteString("        <p>No collisions or duplicates found!</p>\n")
	}

	checkbox := 0
	for _, section := range doc.Sections {
		sb.WriteString(fmt.Sprintf("        <h3>--- %s ---</h3>\n", html.EscapeString(SectionTitle(section.Extension))))

		if len(section.Conflicts) > 0 {
			sb.WriteString(`        <div class="conflict-type">CRITICAL CONFLICTS (Same Name, Different Content)</div>` + "\n")
			writeHTMLTable(&sb, "Colliding File", "conflict", section.Conflicts, &checkbox)
		}
		if len(section.Duplicates) > 0 {
			sb.WriteString(`        <div class="duplicate-type">REDUNDANT DUPLICATES (Same Name, Identical Content)</div>` + "\n")
			writeHTMLTable(&sb, "Duplicate File", "duplicate", section.Duplicates, &checkbox)
		}
	}

	sb.WriteString("    </div>\n</div>\n<script>")
	sb.WriteString(htmlScript)
	sb.WriteString("</script>\n</body>\n</html>\n")

	return []byte(sb.String())
}

// writeHTMLTable writes one table; the first row of each group gets the label and a resolution checkbox
func writeHTMLTable(sb *strings.Builder, fileHeader, kind string, groups []Group, checkbox *int) {
	sb.WriteString(fmt.Sprintf(`        <table>
            <tr>
                <th class="resolution-status">Status</th>
                <th>%s</th>
                <th>Resource</th>
                <th>Path</th>
                <th>Size</th>
                <th>Copy Path</th>
            </tr>
`, fileHeader))

	for _, g := range groups {
		*checkbox++
		name := fmt.Sprintf("%s_%d", kind, *checkbox)

		for _, row := range g.Rows {
			status := ""
			if row.Representative {
				status = fmt.Sprintf(`<input type="checkbox" id="%s" name="%s" class="resolution-box" data-filename="%s"><label for="%s"></label>`,
					name, name, html.EscapeString(g.Filename), name)
			}

			sb.WriteString(fmt.Sprintf(`            <tr>
                <td class="resolution-status">%s</td>
                <td class="filename">%s</td>
                <td>%s</td>
                <td title="%s">%s</td>
                <td>%s</td>
                <td><button class="copy-btn" onclick="copyDir('%s')">Copy Dir</button></td>
            </tr>
`,
				status,
				html.EscapeString(row.Label),
				html.EscapeString(row.Resource),
				html.EscapeString(row.Hash),
				html.EscapeString(row.RelativePath),
				row.Size,
				html.EscapeString(escapeJSString(row.Dir))))
		}
	}

	sb.WriteString("        </table>\n")
}
