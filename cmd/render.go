package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-teaching-renderer/pkg/loaders"
	"github.com/df07/go-teaching-renderer/pkg/renderer"
	"github.com/df07/go-teaching-renderer/pkg/scene"
)

// frameOptions are the flags shared by the render commands
type frameOptions struct {
	Scene   string
	Width   int
	Height  int
	Ambient float64
	Out     string
}

func frameOptionsFrom(ctx *cli.Context) (frameOptions, error) {
	opts := frameOptions{
		Scene:   ctx.String("scene"),
		Width:   ctx.Int("width"),
		Height:  ctx.Int("height"),
		Ambient: ctx.Float64("ambient"),
		Out:     ctx.String("out"),
	}

	if opts.Width <= 0 || opts.Height <= 0 {
		return opts, fmt.Errorf("invalid frame size %dx%d", opts.Width, opts.Height)
	}
	if opts.Ambient < 0 {
		return opts, errors.New("ambient factor must not be negative")
	}
	if _, err := loaders.FormatForPath(opts.Out); err != nil {
		return opts, err
	}
	return opts, nil
}

// createScene builds the named scene with a camera matching the frame shape
func createScene(name string, width, height int) (*scene.Scene, error) {
	s, err := scene.Create(name, scene.CameraConfig{Aspect: float64(width) / float64(height)})
	if err != nil {
		return nil, err
	}
	logger.Infof("scene %q: %d meshes, %d primitives, %d lights",
		s.Name, len(s.Meshes()), s.PrimitiveCount(), len(s.Lights()))
	return s, nil
}

// renderFrame draws s with r into a new canvas
func renderFrame(r renderer.Renderer, s renderer.Scene, width, height int) (*renderer.Canvas, error) {
	canvas := renderer.NewCanvas(width, height)
	if err := r.Render(canvas, s); err != nil {
		return nil, fmt.Errorf("render failed: %w", err)
	}
	return canvas, nil
}

func saveFrame(path string, canvas *renderer.Canvas) error {
	if err := loaders.SaveImage(path, canvas.ToRGBA()); err != nil {
		return err
	}
	logger.Noticef("frame saved to %s (average luminance %.4f)", path, renderer.AverageLuminance(canvas))
	return nil
}

// Raytrace renders a still frame with the ray tracer.
func Raytrace(ctx *cli.Context) error {
	setupLogging(ctx)

	opts, err := frameOptionsFrom(ctx)
	if err != nil {
		return err
	}
	s, err := createScene(opts.Scene, opts.Width, opts.Height)
	if err != nil {
		return err
	}

	rt := renderer.NewRaytracer(renderer.DefaultRaytracerConfig())
	rt.SetConfig(renderer.RaytracerConfig{
		SamplesPerPixel: ctx.Int("spp"),
		Ambient:         opts.Ambient,
	})

	canvas, err := renderFrame(rt, s, opts.Width, opts.Height)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	writeRaytracerStats(&buf, rt.Stats(), rt.Config().SamplesPerPixel)
	logger.Noticef("frame statistics\n%s", buf.String())

	return saveFrame(opts.Out, canvas)
}

// Rasterize renders a still frame with the scan-line rasterizer.
func Rasterize(ctx *cli.Context) error {
	setupLogging(ctx)

	opts, err := frameOptionsFrom(ctx)
	if err != nil {
		return err
	}
	s, err := createScene(opts.Scene, opts.Width, opts.Height)
	if err != nil {
		return err
	}

	r := renderer.NewRasterizer(renderer.RasterizerConfig{
		Ambient:   opts.Ambient,
		DepthTest: !ctx.Bool("painter"),
	})
	if ctx.Bool("painter") {
		logger.Notice("depth test disabled, sorting triangles back to front")
	}

	canvas, err := renderFrame(r, s, opts.Width, opts.Height)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	writeRasterizerStats(&buf, r.Stats())
	logger.Noticef("frame statistics\n%s", buf.String())

	return saveFrame(opts.Out, canvas)
}

func writeRaytracerStats(w io.Writer, stats renderer.RaytracerStats, samplesPerPixel int) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pixels", "Samples/pixel", "Primary rays", "Hits", "Hit ratio", "Lights"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Pixels),
		fmt.Sprintf("%d", samplesPerPixel),
		fmt.Sprintf("%d", stats.PrimaryRays),
		fmt.Sprintf("%d", stats.Hits),
		fmt.Sprintf("%02.1f %%", 100*stats.HitRatio()),
		fmt.Sprintf("%d", stats.Lights),
	})
	table.SetFooter([]string{"", "", "", "", "TOTAL", stats.Elapsed.String()})
	table.Render()
}

func writeRasterizerStats(w io.Writer, stats renderer.RasterizerStats) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Meshes", "Triangles", "Culled", "Fragments", "Depth rejected", "Written"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Meshes),
		fmt.Sprintf("%d", stats.Triangles),
		fmt.Sprintf("%d", stats.CulledTriangles),
		fmt.Sprintf("%d", stats.Fragments),
		fmt.Sprintf("%d", stats.DepthRejected),
		fmt.Sprintf("%d", stats.PixelsWritten),
	})
	table.SetFooter([]string{"", "", "", "", "TOTAL", stats.Elapsed.String()})
	table.Render()
}
