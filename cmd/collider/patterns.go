package main

import (
	"fmt"

	"github.com/IvanShishkin/collider/internal/patterns"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#569CD6"))

	patternStyle = lipgloss.NewStyle().
			Width(18).
			Foreground(lipgloss.Color("#4EC9B0"))

	descriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	markStyle = lipgloss.NewStyle().
			Width(4).
			Foreground(lipgloss.Color("208"))
)

// patternsCmd lists the pattern catalog
func patternsCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the selectable file types",
		Long:  `Display the pattern catalog used by the interactive selector. Recommended entries are marked with *.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := patterns.LoadCatalog(catalogPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, "  "+headerStyle.Render("FILE TYPES"))
			fmt.Fprintln(out)
			for _, e := range catalog.Entries() {
				mark := ""
				if e.Recommended {
					mark = "*"
				}
				fmt.Fprintln(out, "  "+lipgloss.JoinHorizontal(lipgloss.Top,
					markStyle.Render(mark),
					patternStyle.Render(e.Pattern),
					descriptionStyle.Render(e.Description)))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "  "+descriptionStyle.Render(fmt.Sprintf("%s means light maps are scanned; unselected it excludes %s",
				patterns.LightMapKey, patterns.LightMapsIgnored)))
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML file with the pattern catalog")
	return cmd
}
