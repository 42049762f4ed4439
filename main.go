package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-teaching-renderer/cmd"
	"github.com/df07/go-teaching-renderer/pkg/log"
)

func frameFlags(extra ...cli.Flag) []cli.Flag {
	flags := []cli.Flag{
		cli.StringFlag{
			Name:  "scene, s",
			Value: "spheres",
			Usage: "built-in scene name (see the scenes command)",
		},
		cli.IntFlag{
			Name:  "width",
			Value: 640,
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 480,
			Usage: "frame height",
		},
		cli.Float64Flag{
			Name:  "ambient",
			Value: 0.01,
			Usage: "ambient light factor",
		},
		cli.StringFlag{
			Name:  "out, o",
			Value: "frame.png",
			Usage: "image filename for the rendered frame (.png, .bmp, .tif)",
		},
	}
	return append(flags, extra...)
}

func newApp() *cli.App {
	// The default version flag claims -v, which is the verbosity flag here
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "teaching-renderer"
	app.Usage = "render scenes with a ray tracer or a scan-line rasterizer"
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
			Name:  "raytrace",
			Usage: "render a frame with the ray tracer",
			Description: `
Cast primary rays through every pixel, shade the closest hit with Phong
lighting from every light and test shadows against the scene primitives.`,
			Flags: frameFlags(
				cli.IntFlag{
					Name:  "spp",
					Value: 1,
					Usage: "samples per pixel, rounded down to a square grid",
				},
			),
			Action: cmd.Raytrace,
		},
		{
			Name:  "rasterize",
			Usage: "render a frame with the scan-line rasterizer",
			Description: `
Light mesh vertices, project them to the screen and fill triangles with
perspective-correct color interpolation and a depth buffer.`,
			Flags: frameFlags(
				cli.BoolFlag{
					Name:  "painter",
					Usage: "disable the depth buffer and draw triangles back to front",
				},
			),
			Action: cmd.Rasterize,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.New("teaching-renderer").Error(err)
		os.Exit(1)
	}
}
