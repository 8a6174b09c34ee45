package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/flavioheleno/dmd"
)

// Runner sends script steps through a link, one frame per step.
type Runner struct {
	link    *dmd.Link
	limiter *rate.Limiter
	log     *zap.Logger
	metrics *Metrics
}

// NewRunner returns a runner writing to link. framesPerSecond of 0 disables
// pacing. m may be nil.
func NewRunner(link *dmd.Link, pacing PacingConfig, log *zap.Logger, m *Metrics) *Runner {
	r := &Runner{link: link, log: log, metrics: m}
	if pacing.FramesPerSecond > 0 {
		burst := pacing.Burst
		if burst <= 0 {
			burst = 1
		}
		r.limiter = rate.NewLimiter(rate.Limit(pacing.FramesPerSecond), burst)
	}
	return r
}

type compiledStep struct {
	op    dmd.Opcode
	frame dmd.Frame
	delay time.Duration
}

// compile encodes every step up front so an invalid script sends nothing.
func (r *Runner) compile(steps []Step) ([]compiledStep, error) {
	out := make([]compiledStep, 0, len(steps))
	for i, s := range steps {
		cmd, err := s.Command(r.link.Profile())
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		f, err := r.link.Encode(cmd)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, s.Op, err)
		}
		d, err := s.delay()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		out = append(out, compiledStep{op: cmd.Opcode(), frame: f, delay: d})
	}
	return out, nil
}

// Run executes the script. Passes stop at the first write error or when ctx
// is done.
func (r *Runner) Run(ctx context.Context, sc *Script) error {
	steps, err := r.compile(sc.Steps)
	if err != nil {
		return err
	}
	profile := r.link.Profile().Name()

	for pass := 0; sc.Repeat < 0 || pass <= sc.Repeat; pass++ {
		for i, s := range steps {
			if r.limiter != nil {
				if err := r.limiter.Wait(ctx); err != nil {
					return err
				}
			} else if err := ctx.Err(); err != nil {
				return err
			}

			err := r.link.Write(s.frame)
			r.count(profile, s.op, err)
			if err != nil {
				r.log.Error("write frame",
					zap.Int("step", i),
					zap.Stringer("opcode", s.op),
					zap.Error(err))
				return fmt.Errorf("step %d: %w", i, err)
			}
			r.log.Debug("frame sent",
				zap.Int("step", i),
				zap.Stringer("opcode", s.op),
				zap.Stringer("frame", s.frame))

			if s.delay > 0 {
				if err := sleep(ctx, s.delay); err != nil {
					return err
				}
			}
		}
		if r.metrics != nil {
			r.metrics.Passes.Inc()
		}
	}
	return nil
}

func (r *Runner) count(profile string, op dmd.Opcode, err error) {
	if r.metrics == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.metrics.Frames.WithLabelValues(profile, op.String(), result).Inc()
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
