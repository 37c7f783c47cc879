package cmd

import (
	"bytes"
	"fmt"
	"math/rand"

	"github.com/df07/go-raytracing-kernel/pkg/core"
	"github.com/df07/go-raytracing-kernel/pkg/texture"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
	"golang.org/x/xerrors"
)

// NoiseGrid prints lattice noise sampled on a square grid.
func NoiseGrid(ctx *cli.Context) error {
	setupLogging(ctx)

	size := ctx.Int("size")
	if size <= 0 {
		return xerrors.Errorf("grid size must be positive, got %d", size)
	}
	step, z := ctx.Float64("step"), ctx.Float64("z")
	seed := int64(ctx.Int("seed"))

	logger.Infof("sampling %dx%d noise grid (seed %d, step %v, z %v)", size, size, seed, step, z)
	noise := texture.NewPerlin(rand.New(rand.NewSource(seed)))

	header := make([]string, size+1)
	header[0] = "y \\ x"
	for col := 0; col < size; col++ {
		header[col+1] = fmtFloat(float64(col) * step)
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(header)
	for row := 0; row < size; row++ {
		y := float64(row) * step
		line := make([]string, size+1)
		line[0] = fmtFloat(y)
		for col := 0; col < size; col++ {
			value := noise.Noise(core.NewVec3(float64(col)*step, y, z))
			line[col+1] = fmt.Sprintf("%.3f", value)
		}
		table.Append(line)
	}
	table.Render()

	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}
