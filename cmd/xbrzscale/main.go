// Command xbrzscale is a thin PNG-in/PNG-out wrapper around the xbrz core,
// demonstrating the pixel-format adapter contract of package xbrz: it owns
// decoding, encoding and file I/O, none of which the core touches.
package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixelscale/xbrz"
)

var (
	factor    int
	inputPath string
	output    string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "xbrzscale",
	Short: "Enlarge a PNG image with the xBRZ pixel-art upscaler",
	RunE:  runScale,
}

func init() {
	rootCmd.Flags().IntVar(&factor, "factor", 2, "enlargement factor, 1-6")
	rootCmd.Flags().StringVar(&inputPath, "in", "", "input PNG path")
	rootCmd.Flags().StringVar(&output, "out", "", "output PNG path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	_ = rootCmd.MarkFlagRequired("in")
	_ = rootCmd.MarkFlagRequired("out")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("xbrzscale failed", "error", err)
		os.Exit(1)
	}
}

func runScale(cmd *cobra.Command, args []string) error {
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	src, width, height, err := readPNG(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	slog.Info("scaling image", "width", width, "height", height, "factor", factor)

	dst, err := xbrz.Scale(src, width, height, factor)
	if err != nil {
		return fmt.Errorf("scaling: %w", err)
	}

	if err := writePNG(output, dst, width*factor, height*factor); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	slog.Info("wrote output", "path", output)
	return nil
}

func readPNG(path string) (rgba []byte, width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, 0, 0, err
	}

	b := img.Bounds()
	nrgba := image.NewNRGBA(b)
	draw.Draw(nrgba, b, img, b.Min, draw.Src)

	width, height = b.Dx(), b.Dy()
	out := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		copy(out[y*width*4:(y+1)*width*4], nrgba.Pix[y*nrgba.Stride:y*nrgba.Stride+width*4])
	}

	return out, width, height, nil
}

func writePNG(path string, rgba []byte, width, height int) error {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, rgba)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
