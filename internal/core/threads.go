package core

import (
	"context"
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/mikey-austin/showcase/internal/pipeline"
	"github.com/mikey-austin/showcase/internal/worker"
	"github.com/mikey-austin/showcase/pkg/vprint"
)

// Record is the bundle handed to the record worker.
type Record struct {
	ID   int
	Name string
}

// Series is the bundle handed to the series worker.
type Series []float64

// Clone returns an independent copy.
func (s Series) Clone() Series {
	return slices.Clone(s)
}

// Threads spawns the record worker and then the series worker, joining each
// before moving on.
func (s Service) Threads(ctx context.Context) (DemoResult, error) {
	var out Transcript
	p := s.printer()
	cfg := s.Config.Threads
	opts := worker.Options{
		Logger: s.logger().With(zap.String("demo", DemoThreads)),
		IDGen:  s.IDGen,
	}

	rec := worker.Spawn(ctx, opts, "record", func(_ context.Context, r Record) {
		runRecord(&out, p, r)
	}, Record{ID: cfg.RecordID, Name: cfg.RecordName})
	rec.Join()

	series := worker.Spawn(ctx, opts, "series", func(_ context.Context, values Series) {
		runSeries(&out, p, values, cfg)
	}, Series(cfg.Series))
	series.Join()

	return s.finish(DemoThreads, &out), nil
}

func runRecord(out *Transcript, p vprint.Printer, r Record) {
	out.Println(tagged(p, "worker running"))
	out.Println("ID:", p.Render(r.ID))
	out.Println("Name:", r.Name)

	out.Println(tagged(p, "test"))
	out.Println(tagged(p, fmt.Sprintf("ID1: %s", p.Render(r.ID))))
	out.Println(tagged(p, "Name1: "+r.Name))
}

func runSeries(out *Transcript, p vprint.Printer, values Series, cfg ThreadsConfig) {
	out.Println("worker running")
	for _, v := range values {
		out.Println(p.Render(v))
	}

	doubled := pipeline.Take(pipeline.Map(pipeline.Of(values), func(v float64) float64 { return v * 2 }), cfg.DoubleTake)
	powers := pipeline.Take(pipeline.Map(pipeline.Of(values), func(v float64) float64 { return math.Pow(v, v) }), cfg.PowerTake)

	pipeline.Each(doubled, func(v float64) {
		out.Println("vec2:" + p.Render(v))
	})
	pipeline.Each(powers, func(v float64) {
		out.Println("vec3:" + p.Render(v))
		out.Println(tagged(p, v))
	})

	out.Println(tagged(p, "vec3 printing with foreach"))
	list := pipeline.Take(powers, cfg.ListTake)
	out.Println(tagged(p, "list printing"))
	pipeline.Each(list, func(v float64) {
		out.Println(tagged(p, v))
	})
}
