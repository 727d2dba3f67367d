// Command convolve applies a kernel filter to image files.
//
// Usage:
//
//	convolve -in photo.png -out blurred.png -filter gaussian-blur -sigma 2 -size 7
//	convolve -in scan.tiff -out edges.png -filter edges -gray
//	convolve -in a.bmp -out b.bmp -filter convolution -kernel "1,2,1;2,4,2;1,2,1"
//	convolve -filter sharpen-ex -out-dir sharp -j 4 shots/*.jpg
//	convolve -preset emboss.yaml -resize 640x480 -in a.webp -out b.png
//
// With more than one input, files are filtered concurrently and written to
// -out-dir under their own names.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/convolve"
)

func main() {
	var cfg config
	flag.StringVar(&cfg.in, "in", "", "input image (png, jpeg, bmp, tiff, webp)")
	flag.StringVar(&cfg.out, "out", "out.png", "output image; format from extension")
	flag.StringVar(&cfg.outDir, "out-dir", "", "output directory for batch mode")
	flag.IntVar(&cfg.jobs, "j", 0, "files filtered concurrently in batch mode; 0 uses GOMAXPROCS")
	flag.StringVar(&cfg.filter, "filter", "gaussian-blur", "filter: "+strings.Join(filterNames(), ", "))
	flag.Float64Var(&cfg.sigma, "sigma", convolve.DefaultSigma, "Gaussian sigma for gaussian-blur and sharpen-ex")
	flag.IntVar(&cfg.size, "size", convolve.DefaultSize, "Gaussian kernel size for gaussian-blur and sharpen-ex")
	flag.StringVar(&cfg.kernel, "kernel", "", `kernel rows for convolution and correlation, e.g. "0,-1,0;-1,5,-1;0,-1,0"`)
	flag.IntVar(&cfg.divisor, "divisor", 0, "explicit divisor; 0 uses the kernel sum")
	flag.BoolVar(&cfg.fixedEdges, "fixed-edges", false, "divide border pixels by the configured divisor")
	flag.StringVar(&cfg.region, "region", "", "processing region x,y,w,h; default whole image")
	flag.BoolVar(&cfg.gray, "gray", false, "convert to 8-bit grayscale before filtering")
	flag.StringVar(&cfg.resize, "resize", "", "resize to WxH before filtering")
	flag.StringVar(&cfg.preset, "preset", "", "YAML or TOML filter preset; explicit flags win")
	flag.IntVar(&cfg.quality, "quality", 90, "JPEG quality (1-100)")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging to stderr")
	flag.Parse()
	cfg.extra = flag.Args()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if err := applyPreset(&cfg, set); err != nil {
		log.Fatalf("convolve: %v", err)
	}

	if cfg.verbose {
		convolve.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(cfg); err != nil {
		log.Fatalf("convolve: %v", err)
	}
}

func run(cfg config) error {
	inputs := cfg.inputs()
	if len(inputs) == 0 {
		return errNoInput
	}

	if _, _, err := parseSize(cfg.resize); err != nil {
		return err
	}

	f, err := buildFilter(cfg)
	if err != nil {
		return err
	}

	if len(inputs) == 1 && cfg.outDir == "" {
		return process(f, cfg, inputs[0], cfg.out)
	}
	return runBatch(f, cfg, inputs)
}

// process filters one file.
func process(f convolve.Filter, cfg config, in, out string) error {
	img, err := convolve.LoadImage(in)
	if err != nil {
		return err
	}
	if w, h, _ := parseSize(cfg.resize); w > 0 {
		if img, err = resize(img, w, h); err != nil {
			return err
		}
	}
	if cfg.gray {
		if img, err = img.Convert(convolve.FormatGray8); err != nil {
			return err
		}
	}

	r, err := parseRegion(cfg.region, img.Width(), img.Height())
	if err != nil {
		return err
	}
	if err := f.ApplyInPlaceRegion(img, r); err != nil {
		return err
	}

	if err := img.Save(out, cfg.quality); err != nil {
		return err
	}

	log.Printf("%s: %s %s %dx%d -> %s", cfg.filter, in, img.Format(), img.Width(), img.Height(), out)
	return nil
}
