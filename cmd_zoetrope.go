package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/assets"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/export"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/zoetrope"
)

var (
	zoeConfigPath string
	zoeOutput     string
)

// zoetropeCmd is the parent command for layout tooling
var zoetropeCmd = &cobra.Command{
	Use:   "zoetrope",
	Short: "Export or inspect zoetrope frame layouts",
	Long: `Work with zoetrope layouts without rendering them.

Available subcommands:
  export  - Write the frame descriptors as JSON
  inspect - Print the laid out frames and the frame mesh`,
}

// zoetropeExportCmd writes frame descriptors for fabrication
var zoetropeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the frame descriptors as JSON",
	Long: `Write one descriptor per frame as an indented JSON array.

Use -o - to write to standard output.`,
	RunE: runZoetropeExport,
}

// zoetropeInspectCmd prints the layout
var zoetropeInspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the laid out frames and the frame mesh",
	RunE:  runZoetropeInspect,
}

func init() {
	zoetropeCmd.PersistentFlags().StringVarP(&zoeConfigPath, "config", "c", "", "zoetrope config file (.toml, .yaml or .yml)")
	zoetropeExportCmd.Flags().StringVarP(&zoeOutput, "output", "o", export.DefaultFileName, "output path, - for stdout")

	zoetropeCmd.AddCommand(zoetropeExportCmd)
	zoetropeCmd.AddCommand(zoetropeInspectCmd)
}

func loadZoetropeConfig() (zoetrope.Config, error) {
	if zoeConfigPath == "" {
		return zoetrope.DefaultConfig(), nil
	}
	return assets.LoadZoetropeConfig(zoeConfigPath)
}

func runZoetropeExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadZoetropeConfig()
	if err != nil {
		return err
	}

	if zoeOutput == "-" {
		if err := export.Write(cmd.OutOrStdout(), cfg); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	}

	path, err := export.WriteFile(zoeOutput, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", cfg.Normalize().FrameCount(), path)
	return nil
}

var (
	inspectTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFCC"))
	inspectLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Width(14)
	inspectHeadStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

func runZoetropeInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadZoetropeConfig()
	if err != nil {
		return err
	}
	cfg = cfg.Normalize()

	mesh, err := zoetrope.GenerateMesh(cfg.Shape, cfg.Morph)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, inspectTitleStyle.Render("zoetrope"))
	fmt.Fprintln(out, inspectLabelStyle.Render("frames")+fmt.Sprint(cfg.FrameCount()))
	fmt.Fprintln(out, inspectLabelStyle.Render("distribution")+cfg.Distribution.String())
	fmt.Fprintln(out, inspectLabelStyle.Render("shape")+cfg.Shape.String())
	fmt.Fprintln(out, inspectLabelStyle.Render("palette")+cfg.Palette.String())
	fmt.Fprintln(out, inspectLabelStyle.Render("mesh")+
		fmt.Sprintf("%s (%d vertices, %d indices)", mesh.Name, mesh.VertexCount(), mesh.IndexCount()))
	fmt.Fprintln(out)

	fmt.Fprintln(out, inspectHeadStyle.Render(fmt.Sprintf("%5s %9s %5s %26s %8s %8s %8s",
		"frame", "angle", "layer", "position", "scale", "yaw", "roll")))
	for _, f := range zoetrope.Layout(cfg) {
		pos := fmt.Sprintf("(%.3f, %.3f, %.3f)", f.Position.X, f.Position.Y, f.Position.Z)
		fmt.Fprintf(out, "%5d %9.2f %5d %26s %8.4f %8.4f %8.4f\n",
			f.Index, f.Angle, f.Layer, pos, f.Scale, f.Yaw, f.Roll)
	}
	return nil
}
