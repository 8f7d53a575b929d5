package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/assets"
)

// presetsCmd lists the built-in strand presets
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in strand presets",
	RunE:  runPresets,
}

var presetNameStyle = lipgloss.NewStyle().Bold(true).Width(16)

func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

func runPresets(cmd *cobra.Command, args []string) error {
	presets, err := assets.Presets()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range presets {
		s := p.Strands
		fmt.Fprintf(out, "%s %s%s%s  gravity %.1f  drag %.2f  stiffness %.2f  wind %.2f  %dx%d\n",
			presetNameStyle.Render(p.Name),
			swatch(s.ColorA), swatch(s.ColorB), swatch(s.ColorC),
			s.Gravity, s.Drag, s.Stiffness, s.WindForce,
			s.StrandCount, s.SegmentsPerStrand)
	}
	return nil
}
