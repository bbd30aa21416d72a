package lavfi

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/asticode/go-astiav"
	"github.com/asticode/go-astikit"
	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/facebookincubator/go-belt/tool/experimental/errmon"
	"github.com/xaionaro-go/avdenoise/helpers/closuresignaler"
	"github.com/xaionaro-go/avdenoise/logger"
	"github.com/xaionaro-go/observability"
	"github.com/xaionaro-go/unsafetools"
	"github.com/xaionaro-go/xcontext"
	"github.com/xaionaro-go/xsync"
	"go.uber.org/atomic"
)

// RunnerConfig parameterizes the execution of a compiled graph.
type RunnerConfig struct {
	TimeBase          astiav.Rational
	SampleAspectRatio *astiav.Rational
}

// Runner owns the libavfilter incarnation of one compiled graph: a buffer
// source per source clip and a buffer sink on the chain output. Frames go
// in through SendInputFrame (or the Serve pump) and come out of the sink.
type Runner struct {
	*closuresignaler.ClosureSignaler

	Graph      *Graph
	Config     RunnerConfig
	SourceCtxs map[string]*astiav.BuffersrcFilterContext
	SinkCtx    *astiav.BuffersinkFilterContext

	FramesIn  atomic.Uint64
	FramesOut atomic.Uint64

	filterGraph *astiav.FilterGraph
	locker      xsync.Mutex
	closer      *astikit.Closer
	closeOnce   sync.Once
}

// NewRunner configures the graph in libavfilter. The time base defaults
// to 1/25 when the config leaves it zero, and the sample aspect ratio to
// square pixels.
func NewRunner(
	ctx context.Context,
	graph *Graph,
	cfg RunnerConfig,
) (_ret *Runner, _err error) {
	logger.Debugf(ctx, "NewRunner(ctx, %q, %#+v)", graph, cfg)
	defer func() { logger.Debugf(ctx, "/NewRunner(ctx, %q): %v", graph, _err) }()
	if len(graph.Sources) == 0 {
		return nil, fmt.Errorf("the graph has no source clips")
	}

	r := &Runner{
		ClosureSignaler: closuresignaler.New(),
		Graph:           graph,
		Config:          cfg,
		SourceCtxs:      map[string]*astiav.BuffersrcFilterContext{},
		closer:          astikit.NewCloser(),
	}

	r.filterGraph = astiav.AllocFilterGraph()
	if r.filterGraph == nil {
		return nil, fmt.Errorf("unable to allocate a filter graph")
	}
	r.closer.Add(r.filterGraph.Free)
	defer func() {
		if _err != nil {
			_ = r.closer.Close()
		}
	}()

	srcFilter := astiav.FindFilterByName("buffer")
	sinkFilter := astiav.FindFilterByName("buffersink")
	if srcFilter == nil || sinkFilter == nil {
		return nil, fmt.Errorf("unable to find the buffer or buffersink filter")
	}

	timeBase := cfg.TimeBase
	if timeBase.Num() == 0 {
		timeBase = astiav.NewRational(1, 25)
	}
	sampleAspectRatio := astiav.NewRational(1, 1)
	if cfg.SampleAspectRatio != nil {
		sampleAspectRatio = *cfg.SampleAspectRatio
	}

	var outputs *astiav.FilterInOut
	defer func() {
		if outputs != nil {
			outputs.Free()
		}
	}()
	for idx := len(graph.Sources) - 1; idx >= 0; idx-- {
		src := graph.Sources[idx]
		pixelFormat, err := PixelFormat(src.VideoFormat)
		if err != nil {
			return nil, fmt.Errorf("unable to resolve the pixel format of '%s': %w", src, err)
		}

		srcCtx, err := r.filterGraph.NewBuffersrcFilterContext(srcFilter, src.Label)
		if err != nil {
			return nil, fmt.Errorf("unable to create a buffer source for '%s': %w", src, err)
		}
		params := astiav.AllocBuffersrcFilterContextParameters()
		params.SetWidth(src.VideoFormat.Width)
		params.SetHeight(src.VideoFormat.Height)
		params.SetPixelFormat(pixelFormat)
		params.SetTimeBase(timeBase)
		params.SetSampleAspectRatio(sampleAspectRatio)
		err = srcCtx.SetParameters(params)
		params.Free()
		if err != nil {
			return nil, fmt.Errorf("unable to set the buffer source parameters for '%s': %w", src, err)
		}
		if err := srcCtx.Initialize(nil); err != nil {
			return nil, fmt.Errorf("unable to initialize the buffer source for '%s': %w", src, err)
		}

		entry := astiav.AllocFilterInOut()
		entry.SetName(src.Label)
		entry.SetFilterContext(srcCtx.FilterContext())
		entry.SetPadIdx(0)
		entry.SetNext(outputs)
		outputs = entry

		r.SourceCtxs[src.Label] = srcCtx
	}

	sinkCtx, err := r.filterGraph.NewBuffersinkFilterContext(sinkFilter, "sink")
	if err != nil {
		return nil, fmt.Errorf("unable to create the buffer sink: %w", err)
	}
	r.SinkCtx = sinkCtx

	inputs := astiav.AllocFilterInOut()
	defer inputs.Free()
	inputs.SetName(sinkPadLabel)
	inputs.SetFilterContext(sinkCtx.FilterContext())
	inputs.SetPadIdx(0)
	inputs.SetNext(nil)

	if err := r.filterGraph.Parse(graph.Content, inputs, outputs); err != nil {
		return nil, fmt.Errorf("unable to parse the filter graph %q: %w", graph.Content, err)
	}
	if err := r.filterGraph.Configure(); err != nil {
		return nil, fmt.Errorf("unable to configure the filter graph %q: %w", graph.Content, err)
	}

	if logger.FromCtx(ctx).Level() >= logger.LevelTrace {
		logger.Tracef(ctx, "filter_graph: %s", spew.Sdump(unsafetools.FieldByNameInValue(reflect.ValueOf(r.filterGraph), "c").Elem().Elem().Interface()))
	}
	return r, nil
}

func (r *Runner) String() string {
	return fmt.Sprintf("Runner(%s)", r.Graph.Sink)
}

// SendInputFrame pushes one frame into the named buffer source. An empty
// source name is allowed when the graph has exactly one source. The frame
// is kept referenced, the caller still owns it.
func (r *Runner) SendInputFrame(
	ctx context.Context,
	source string,
	frame *astiav.Frame,
) (_err error) {
	logger.Tracef(ctx, "SendInputFrame(ctx, '%s')", source)
	defer func() { logger.Tracef(ctx, "/SendInputFrame(ctx, '%s'): %v", source, _err) }()
	return xsync.DoR1(ctx, &r.locker, func() error {
		if r.IsClosed() {
			return fmt.Errorf("the runner is closed")
		}
		srcCtx, err := r.sourceCtx(source)
		if err != nil {
			return err
		}
		if err := srcCtx.AddFrame(frame, astiav.NewBuffersrcFlags(astiav.BuffersrcFlagKeepRef)); err != nil {
			return fmt.Errorf("unable to add the frame to '%s': %w", source, err)
		}
		r.FramesIn.Inc()
		return nil
	})
}

// Flush signals end-of-stream to every buffer source.
func (r *Runner) Flush(ctx context.Context) (_err error) {
	logger.Tracef(ctx, "Flush(ctx)")
	defer func() { logger.Tracef(ctx, "/Flush(ctx): %v", _err) }()
	return xsync.DoR1(ctx, &r.locker, func() error {
		if r.IsClosed() {
			return fmt.Errorf("the runner is closed")
		}
		var errs []error
		for label, srcCtx := range r.SourceCtxs {
			if err := srcCtx.AddFrame(nil, astiav.NewBuffersrcFlags()); err != nil {
				errs = append(errs, fmt.Errorf("unable to flush '%s': %w", label, err))
			}
		}
		return errors.Join(errs...)
	})
}

// ReceiveOutputFrame pulls one frame from the buffer sink into the given
// frame. The error is astiav.ErrEagain when the graph needs more input
// and astiav.ErrEof after a flush drained everything.
func (r *Runner) ReceiveOutputFrame(
	ctx context.Context,
	frame *astiav.Frame,
) (_err error) {
	logger.Tracef(ctx, "ReceiveOutputFrame(ctx)")
	defer func() { logger.Tracef(ctx, "/ReceiveOutputFrame(ctx): %v", _err) }()
	return xsync.DoR1(ctx, &r.locker, func() error {
		if r.IsClosed() {
			return fmt.Errorf("the runner is closed")
		}
		if err := r.SinkCtx.GetFrame(frame, astiav.NewBuffersinkFlags()); err != nil {
			return err
		}
		r.FramesOut.Inc()
		return nil
	})
}

func (r *Runner) sourceCtx(source string) (*astiav.BuffersrcFilterContext, error) {
	if source == "" {
		if len(r.SourceCtxs) != 1 {
			return nil, fmt.Errorf("the graph has %d sources, the source name is required", len(r.SourceCtxs))
		}
		for _, srcCtx := range r.SourceCtxs {
			return srcCtx, nil
		}
	}
	srcCtx, ok := r.SourceCtxs[source]
	if !ok {
		return nil, fmt.Errorf("unknown source '%s'", source)
	}
	return srcCtx, nil
}

// InputFrame is one unit of work for the Serve pump.
type InputFrame struct {
	// Source is the source clip label; empty selects the only source.
	Source string
	Frame  *astiav.Frame
}

// Serve pumps frames through the graph in a background goroutine until
// the input channel closes or the context is cancelled. The returned
// frames come from the pool, the receiver hands them back with
// ReleaseFrame; the error channel closes when the pump is done.
func (r *Runner) Serve(
	ctx context.Context,
	inputCh <-chan InputFrame,
) (<-chan *astiav.Frame, <-chan error) {
	logger.Debugf(ctx, "Serve[%s]", r)
	outputCh := make(chan *astiav.Frame, 1)
	errCh := make(chan error, 1)
	observability.Go(ctx, func(ctx context.Context) {
		defer logger.Debugf(ctx, "/Serve[%s]", r)
		defer close(errCh)
		defer close(outputCh)
		err := r.serve(ctx, inputCh, outputCh)
		errmon.ObserveErrorCtx(ctx, err)
		if err != nil {
			errCh <- err
		}
	})
	return outputCh, errCh
}

func (r *Runner) serve(
	ctx context.Context,
	inputCh <-chan InputFrame,
	outputCh chan<- *astiav.Frame,
) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.CloseChan():
			return nil
		case input, ok := <-inputCh:
			if !ok {
				if err := r.Flush(ctx); err != nil {
					return err
				}
				return r.drain(ctx, outputCh)
			}
			if err := r.SendInputFrame(ctx, input.Source, input.Frame); err != nil {
				return err
			}
			if err := r.drain(ctx, outputCh); err != nil {
				return err
			}
		}
	}
}

func (r *Runner) drain(
	ctx context.Context,
	outputCh chan<- *astiav.Frame,
) error {
	for {
		frame := getFrame()
		err := r.ReceiveOutputFrame(ctx, frame)
		if err != nil {
			ReleaseFrame(frame)
			if errors.Is(err, astiav.ErrEagain) || errors.Is(err, astiav.ErrEof) {
				return nil
			}
			return fmt.Errorf("unable to receive an output frame: %w", err)
		}
		select {
		case <-ctx.Done():
			ReleaseFrame(frame)
			return ctx.Err()
		case outputCh <- frame:
		}
	}
}

func (r *Runner) Close(ctx context.Context) (_err error) {
	ctx = xcontext.DetachDone(ctx)
	logger.Debugf(ctx, "Close[%s]", r)
	defer func() { logger.Debugf(ctx, "/Close[%s]: %v", r, _err) }()
	r.ClosureSignaler.Close(ctx)
	var err error
	r.closeOnce.Do(func() {
		logger.Debugf(ctx, "processed %s input frames, %s output frames",
			humanize.Comma(int64(r.FramesIn.Load())),
			humanize.Comma(int64(r.FramesOut.Load())),
		)
		err = xsync.DoR1(ctx, &r.locker, func() error {
			return r.closer.Close()
		})
	})
	return err
}
