package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mikey-austin/showcase/internal/dispatch"
	"github.com/mikey-austin/showcase/internal/ports"
	"github.com/mikey-austin/showcase/internal/worker"
	"github.com/mikey-austin/showcase/pkg/vprint"
)

// Service runs the demos and captures what they print.
type Service struct {
	Logger *zap.Logger
	IDGen  ports.IDGen
	Config Config
}

// Variadic prints three single values and then one variadic call.
func (s Service) Variadic(ctx context.Context) (DemoResult, error) {
	var out Transcript
	p := s.printer()
	for _, v := range []any{11, 110.189, "maa"} {
		if err := p.Line(&out, v); err != nil {
			return DemoResult{}, WrapError(ExitRuntime, "print value", err)
		}
	}
	if err := p.Print(&out, 10, 20.24, "text"); err != nil {
		return DemoResult{}, WrapError(ExitRuntime, "print values", err)
	}
	return s.finish(DemoVariadic, &out), nil
}

// PrintValues runs a single variadic print over args.
func (s Service) PrintValues(ctx context.Context, args []any) (DemoResult, error) {
	var out Transcript
	if err := s.printer().Print(&out, args...); err != nil {
		return DemoResult{}, WrapError(ExitRuntime, "print values", err)
	}
	return s.finish(DemoPrint, &out), nil
}

// Dispatch contrasts static and dynamic method resolution.
func (s Service) Dispatch(ctx context.Context) (DemoResult, error) {
	var out Transcript
	dispatch.Demo(&out)
	return s.finish(DemoDispatch, &out), nil
}

// All runs every demo. With parallel set the demos run concurrently, each
// into its own transcript; results are always returned in the same order.
func (s Service) All(ctx context.Context, parallel bool) (AllResult, error) {
	demos := []struct {
		name string
		run  func(context.Context) (DemoResult, error)
	}{
		{DemoVariadic, s.Variadic},
		{DemoDispatch, s.Dispatch},
		{DemoThreads, s.Threads},
	}
	results := make([]DemoResult, len(demos))

	if !parallel {
		for i, demo := range demos {
			res, err := demo.run(ctx)
			if err != nil {
				return AllResult{}, err
			}
			results[i] = res
		}
		return AllResult{Demos: results}, nil
	}

	runners := make([]worker.Runner, len(demos))
	for i, demo := range demos {
		runners[i] = worker.Runner{
			Name: demo.name,
			Run: func(ctx context.Context) error {
				res, err := demo.run(ctx)
				if err != nil {
					return err
				}
				results[i] = res
				return nil
			},
		}
	}
	group := worker.Group{Logger: s.logger()}
	if err := group.Run(ctx, runners); err != nil {
		return AllResult{}, WrapError(ExitRuntime, "run demos", err)
	}
	return AllResult{Demos: results}, nil
}

func (s Service) printer() vprint.Printer {
	return vprint.Printer{Digits: s.Config.Digits}
}

func (s Service) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s Service) finish(name string, out *Transcript) DemoResult {
	lines := out.Lines()
	s.logger().Info("demo finished", zap.String("demo", name), zap.Int("lines", len(lines)))
	return DemoResult{Name: name, Lines: lines}
}

func tagged(p vprint.Printer, v any) string {
	return fmt.Sprintf(":%s", p.Render(v))
}
