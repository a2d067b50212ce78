package fetch

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Aggregator runs the selected built-in providers and the loaded plugins of
// a pass concurrently and gathers what they produce.
type Aggregator struct {
	providers map[FieldKind]ProviderFunc
	workers   int
	logger    *zap.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithLogger sets the logger used to report providers that panicked.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Aggregator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithWorkers bounds the number of providers running at once.
// Zero or less runs every provider in its own goroutine.
func WithWorkers(n int) Option {
	return func(a *Aggregator) {
		a.workers = n
	}
}

// NewAggregator creates an Aggregator over the given built-in providers.
// A FieldKind without a provider is never collected, even when selected.
func NewAggregator(providers map[FieldKind]ProviderFunc, opts ...Option) *Aggregator {
	a := &Aggregator{
		providers: providers,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// result is what a single task hands to the collector. plugin is the
// discovery index of the source, or -1 for a built-in.
type result struct {
	kind   FieldKind
	plugin int
	text   string
}

// Collect invokes every selected built-in provider and every source exactly
// once, waits for all of them, and returns the non-empty results.
//
// Tasks never touch the ResultSet: they send their result to a buffered
// channel that is drained by a single collector once every task returned.
// A task that panics sends nothing.
func (a *Aggregator) Collect(ctx context.Context, sel Selection, sources []Source) ResultSet {
	var g errgroup.Group
	if a.workers > 0 {
		g.SetLimit(a.workers)
	}
	results := make(chan result, len(a.providers)+len(sources))

	for _, kind := range Fields {
		fn, ok := a.providers[kind]
		if !sel[kind] || !ok || fn == nil {
			continue
		}
		g.Go(func() error {
			a.run(kind.String(), results, func() result {
				return result{kind: kind, plugin: -1, text: fn(ctx)}
			})
			return nil
		})
	}

	for i, src := range sources {
		if src == nil {
			continue
		}
		g.Go(func() error {
			a.run(src.Name(), results, func() result {
				return result{plugin: i, text: src.Output()}
			})
			return nil
		})
	}

	_ = g.Wait()
	close(results)

	rs := ResultSet{Fields: make(map[FieldKind]string)}
	byIndex := make([]string, len(sources))
	for r := range results {
		if r.text == "" {
			continue
		}
		if r.plugin >= 0 {
			byIndex[r.plugin] = r.text
			continue
		}
		rs.Fields[r.kind] = r.text
	}
	for _, text := range byIndex {
		if text != "" {
			rs.Plugins = append(rs.Plugins, text)
		}
	}
	return rs
}

// run executes task and forwards its result, dropping it if task panics.
func (a *Aggregator) run(name string, out chan<- result, task func() result) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Debug("provider aborted",
				zap.String("provider", name),
				zap.String("panic", fmt.Sprint(r)))
		}
	}()
	out <- task()
}
