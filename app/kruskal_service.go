// Package app wires the computation engine to its thin I/O surfaces.
package app

import (
	"context"
	"io"

	"gokruskal/adapters/stats/kwallis"
	"gokruskal/domain/kruskal"
	"gokruskal/internal"
	"gokruskal/internal/report"
)

// KruskalService runs the test pipeline and, when requested, renders the
// console report. The engine itself stays free of any display concern.
type KruskalService struct {
	logger *internal.Logger
	out    io.Writer
}

// NewKruskalService creates a service writing reports to out.
func NewKruskalService(logger *internal.Logger, out io.Writer) *KruskalService {
	return &KruskalService{logger: logger, out: out}
}

// Execute validates and analyzes the samples. A nil opts means the documented
// defaults (Display enabled). The returned bundle is identical whether or not
// the report is emitted.
func (s *KruskalService) Execute(ctx context.Context, samples []kruskal.Sample, opts *kruskal.Options) (*kruskal.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts == nil {
		defaults := kruskal.DefaultOptions()
		opts = &defaults
	}

	result, err := kwallis.Run(samples)
	if err != nil {
		s.logger.Error("kruskal-wallis run failed: %v", err)
		return nil, err
	}

	s.logger.Debug("kruskal-wallis run complete: N=%d k=%d H=%.6f", result.N, result.K, result.H)

	if opts.Display {
		report.Render(s.out, result)
	}

	return result, nil
}
