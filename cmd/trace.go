package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-raytracing-kernel/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
	"golang.org/x/xerrors"
)

// TraceRays loads a scene and prints the closest hit for each probe ray.
func TraceRays(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	logger.Noticef("tracing %d probe rays against %d objects", len(sc.Probes), len(sc.Objects))

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Ray", "Interval", "Hit", "T", "Point", "Normal", "Face", "UV", "Material", "Color"})

	results, err := sc.TraceAll(ctx.Int("workers"))
	if err != nil {
		return err
	}

	var hits int
	for _, result := range results {
		probe, rec := result.Probe, result.Record
		if !result.Hit {
			table.Append([]string{probe.Name, fmtInterval(probe.Interval), "miss", "", "", "", "", "", "", ""})
			continue
		}
		hits++

		face := "back"
		if rec.FrontFace {
			face = "front"
		}

		matName, color := "?", ""
		if mat, ok := rec.Material.(*scene.Material); ok {
			matName = mat.Name
			color = fmtVec(mat.Color(rec))
		}

		table.Append([]string{
			probe.Name,
			fmtInterval(probe.Interval),
			"hit",
			fmtFloat(rec.T),
			fmtVec(rec.Point),
			fmtVec(rec.Normal),
			face,
			fmt.Sprintf("(%.3f, %.3f)", rec.U, rec.V),
			matName,
			color,
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "", "", "", "Hits", fmt.Sprintf("%d/%d", hits, len(sc.Probes))})

	table.Render()
	fmt.Fprint(ctx.App.Writer, buf.String())

	return nil
}

func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	if ctx.NArg() != 1 {
		return nil, xerrors.New("expected exactly one scene file argument")
	}

	sceneFile := ctx.Args().First()
	logger.Infof("loading scene: %s", sceneFile)
	return scene.Load(sceneFile)
}
