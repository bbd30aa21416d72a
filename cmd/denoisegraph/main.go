package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/avdenoise"
	"github.com/xaionaro-go/avdenoise/host/lavfi"
	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
	"github.com/xaionaro-go/observability"
	"github.com/xaionaro-go/typing"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s [flags] <quickdenoise|detailmask>\n", os.Args[0])
		pflag.PrintDefaults()
	}

	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	netPprofAddr := pflag.String("net-pprof-listen-addr", "", "an address to listen for incoming net/pprof connections")
	formatName := pflag.String("format", "yuv420p", "pixel format of the probed input")
	width := pflag.Int("width", 1920, "width of the probed input")
	height := pflag.Int("height", 1080, "height of the probed input")
	numFrames := pflag.Int("frames", 1000, "declared frame count of the probed input")
	chromaModeName := pflag.String("chroma-mode", avdenoise.ChromaModeKNLMeansCL.String(), "chroma denoiser of quickdenoise (knlm, tnlm, dft, smd)")
	sigma := pflag.Float64("sigma", avdenoise.DefaultSigma, "BM3D denoising strength of quickdenoise")
	sbSize := pflag.Int("sbsize", 8, "DFT block size when the chroma mode is dft")
	blurSigma := pflag.Float64("blur-sigma", 0, "pre-blur strength of detailmask, 0 disables the pre-blur")
	radius := pflag.Int("radius", 0, "range mask radius of detailmask, 0 means the default")
	pflag.Parse()
	if len(pflag.Args()) != 1 {
		pflag.Usage()
		os.Exit(1)
	}

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	if *netPprofAddr != "" {
		observability.Go(ctx, func() { l.Error(http.ListenAndServe(*netPprofAddr, nil)) })
	}

	format, err := parseFormat(*formatName, *width, *height)
	if err != nil {
		l.Fatal(err)
	}

	core := lavfi.NewCore()
	src, err := core.NewSourceClip(ctx, format, *numFrames)
	if err != nil {
		l.Fatal(err)
	}

	var result plugin.Clip
	switch op := pflag.Arg(0); op {
	case "quickdenoise":
		params := avdenoise.QuickDenoiseParams{Sigma: *sigma}
		var err error
		params.ChromaMode, err = avdenoise.ParseChromaMode(*chromaModeName)
		if err != nil {
			l.Fatal(err)
		}
		if params.ChromaMode == avdenoise.ChromaModeDFTTest {
			params.Options = types.FilterOptions{{Key: "sbsize", Value: *sbSize}}
		}
		result, err = avdenoise.QuickDenoise(ctx, core, src, params)
		if err != nil {
			l.Fatal(err)
		}
	case "detailmask":
		params := avdenoise.DetailMaskParams{Radius: *radius}
		if *blurSigma > 0 {
			params.Sigma = typing.Opt(*blurSigma)
		}
		var err error
		result, err = avdenoise.DetailMask(ctx, core, src, params)
		if err != nil {
			l.Fatal(err)
		}
	default:
		pflag.Usage()
		os.Exit(1)
	}

	graph, err := lavfi.Compile(ctx, result.(*lavfi.Clip))
	if err != nil {
		l.Fatal(err)
	}

	for _, source := range graph.Sources {
		name, err := lavfi.PixelFormatName(source.VideoFormat)
		if err != nil {
			l.Fatal(err)
		}
		fmt.Printf("# input [%s]: %s, %dx%d, %d frames\n",
			source.Label, name, source.VideoFormat.Width, source.VideoFormat.Height, source.NumFrames())
	}
	fmt.Println(graph.Content)
}
