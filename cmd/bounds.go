package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ShowBounds prints the bounding box of every top-level object along with
// statistics for the scene BVH.
func ShowBounds(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Type", "X", "Y", "Z"})
	for idx, obj := range sc.Objects {
		box := obj.BoundingBox()
		table.Append([]string{
			fmt.Sprintf("%d", idx),
			obj.Type,
			fmtInterval(box.X),
			fmtInterval(box.Y),
			fmtInterval(box.Z),
		})
	}
	sceneBox := sc.BoundingBox()
	table.SetFooter([]string{"", "Scene", fmtInterval(sceneBox.X), fmtInterval(sceneBox.Y), fmtInterval(sceneBox.Z)})
	table.Render()

	stats := sc.BVH.Stats()
	bvhTable := tablewriter.NewWriter(&buf)
	bvhTable.SetAutoFormatHeaders(false)
	bvhTable.SetAlignment(tablewriter.ALIGN_LEFT)
	bvhTable.SetHeader([]string{"BVH", "Value"})
	bvhTable.Append([]string{"Nodes", fmt.Sprintf("%d", stats.TotalNodes)})
	bvhTable.Append([]string{"Leaves", fmt.Sprintf("%d", stats.LeafNodes)})
	bvhTable.Append([]string{"Max depth", fmt.Sprintf("%d", stats.MaxDepth)})
	bvhTable.Append([]string{"Objects", fmt.Sprintf("%d", stats.TotalObjects)})
	bvhTable.Render()

	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}
