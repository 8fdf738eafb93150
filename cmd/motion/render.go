package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/phanxgames/motion"
	"github.com/phanxgames/motion/render"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	out         string
	fps         int
	width       int
	height      int
	supersample int
	workers     int
	background  string
	label       string
}

func newRenderCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render <script.yaml>",
		Short: "Render a script to numbered PNG frames",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := runRender(cmd, args[0], f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d frames to %s\n", n, f.out)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&f.out, "out", "o", "frames", "Output directory")
	flags.IntVar(&f.fps, "fps", 0, "Frame rate (default: the script's, else 30)")
	flags.IntVar(&f.width, "width", 854, "Frame width in pixels")
	flags.IntVar(&f.height, "height", 480, "Frame height in pixels")
	flags.IntVar(&f.supersample, "supersample", 1, "Render at this multiple and scale down")
	flags.IntVar(&f.workers, "workers", 0, "Parallel PNG encoders (default: GOMAXPROCS)")
	flags.StringVar(&f.background, "background", "black", "Background color (name or #hex)")
	flags.StringVar(&f.label, "label", "", "File name prefix (default: script name)")
	return cmd
}

func runRender(cmd *cobra.Command, path string, f renderFlags) (int, error) {
	sc, err := loadScript(path)
	if err != nil {
		return 0, err
	}
	bg, err := motion.ParseColor(f.background)
	if err != nil {
		return 0, fmt.Errorf("background: %w", err)
	}
	runner, err := motion.NewScriptRunner(sc, motion.SceneConfig{FPS: f.fps})
	if err != nil {
		return 0, err
	}
	label := f.label
	if label == "" {
		label = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	w, err := render.NewFrameWriter(cmd.Context(), f.out, label, f.workers)
	if err != nil {
		return 0, err
	}

	r := render.NewRenderer(render.Options{
		Width:       f.width,
		Height:      f.height,
		Background:  &bg,
		Supersample: f.supersample,
	})
	scene := runner.Scene()
	scene.OnFrame = func(fr motion.Frame) error {
		return w.Write(fr.Index, r.Render(fr.Root))
	}

	start := time.Now()
	slog.Info("Rendering", "script", path, "fps", scene.FPS(), "size", fmt.Sprintf("%dx%d", f.width, f.height))
	runErr := runner.Run()
	closeErr := w.Close()
	if runErr != nil {
		return w.Written(), runErr
	}
	if closeErr != nil {
		return w.Written(), closeErr
	}
	slog.Debug("Render finished", "frames", w.Written(), "seconds", scene.Time(), "elapsed", time.Since(start))
	return w.Written(), nil
}
