package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-teaching-renderer/pkg/scene"
)

// ListScenes prints the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	if err := writeSceneTable(&buf); err != nil {
		return err
	}
	logger.Noticef("built-in scenes\n%s", buf.String())
	return nil
}

func writeSceneTable(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description", "Meshes", "Triangles", "Primitives", "Lights", "Bounds"})

	for _, info := range scene.List() {
		s, err := scene.Create(info.Name)
		if err != nil {
			return err
		}

		triangles := 0
		for _, mesh := range s.Meshes() {
			triangles += mesh.TriangleCount()
		}

		table.Append([]string{
			info.Name,
			info.Description,
			fmt.Sprintf("%d", len(s.Meshes())),
			fmt.Sprintf("%d", triangles),
			fmt.Sprintf("%d", s.PrimitiveCount()),
			fmt.Sprintf("%d", len(s.Lights())),
			formatBounds(s),
		})
	}

	table.Render()
	return nil
}

// formatBounds describes the extent of the ray-traceable geometry
func formatBounds(s *scene.Scene) string {
	extent, ok := s.Extent()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("(%.1f, %.1f, %.1f) .. (%.1f, %.1f, %.1f)",
		extent.Min.X, extent.Min.Y, extent.Min.Z,
		extent.Max.X, extent.Max.Y, extent.Max.Z)
}
