// Package cmd implements the command line tools for inspecting scenes with the
// geometry kernel.
package cmd

import "github.com/urfave/cli"

// NewApp builds the command line application.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "rtkernel"
	app.Usage = "trace probe rays and inspect bounds of YAML scenes"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "trace",
			Usage: "trace the probe rays of a scene",
			Description: `
Load a YAML scene, build a BVH over its objects and report the closest hit
for every probe ray declared under "rays".`,
			ArgsUsage: "scene.yaml",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "workers, w",
					Value: 0,
					Usage: "number of tracing workers (0 = one per cpu)",
				},
			},
			Action: TraceRays,
		},
		{
			Name:        "bounds",
			Usage:       "show object bounding boxes and BVH statistics",
			Description: `Load a YAML scene and list the bounding box of every top-level object.`,
			ArgsUsage:   "scene.yaml",
			Action:      ShowBounds,
		},
		{
			Name:        "noise",
			Usage:       "sample lattice noise on a grid",
			Description: `Print a size x size grid of noise values on a plane of constant z.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "seed",
					Value: 0,
					Usage: "random seed for the noise tables",
				},
				cli.IntFlag{
					Name:  "size",
					Value: 8,
					Usage: "grid points per side",
				},
				cli.Float64Flag{
					Name:  "step",
					Value: 0.25,
					Usage: "distance between grid points",
				},
				cli.Float64Flag{
					Name:  "z",
					Value: 0,
					Usage: "z coordinate of the sampled plane",
				},
			},
			Action: NoiseGrid,
		},
	}

	return app
}
