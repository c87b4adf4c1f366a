package usecase

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/cup-tournament/internal/platform/logging"
)

type writeStep struct {
	name string
	run  func(ctx context.Context) error
}

// writePlan runs a named list of store calls in order and remembers how far it got.
// Nothing is rolled back; a failure returns a *WriteError naming the failed step and
// the steps already committed.
type writePlan struct {
	operation string
	steps     []writeStep
	completed []string
	keys      map[string]string
	logger    *logging.Logger
}

func newWritePlan(operation string, logger *logging.Logger) *writePlan {
	if logger == nil {
		logger = logging.Default()
	}
	return &writePlan{operation: operation, logger: logger}
}

func (p *writePlan) step(name string, run func(ctx context.Context) error) *writePlan {
	p.steps = append(p.steps, writeStep{name: name, run: run})
	return p
}

// remember attaches an id to the error returned if a later step fails.
func (p *writePlan) remember(key, value string) *writePlan {
	if p.keys == nil {
		p.keys = make(map[string]string)
	}
	p.keys[key] = value
	return p
}

func (p *writePlan) execute(ctx context.Context) error {
	for _, s := range p.steps {
		if err := ctx.Err(); err != nil {
			return p.fail(ctx, s.name, err)
		}
		if err := s.run(ctx); err != nil {
			return p.fail(ctx, s.name, err)
		}
		p.completed = append(p.completed, s.name)
	}
	return nil
}

// Completed returns the names of committed steps, in order.
func (p *writePlan) Completed() []string {
	out := make([]string, len(p.completed))
	copy(out, p.completed)
	return out
}

func (p *writePlan) fail(ctx context.Context, step string, err error) error {
	completed := p.Completed()
	p.logger.WarnContext(ctx, "write step failed",
		"operation", p.operation,
		"step", step,
		"completed", completed,
		"error", err,
	)
	return &WriteError{
		Operation: p.operation,
		Step:      step,
		Completed: completed,
		Keys:      p.keys,
		Err:       crerr.Wrapf(err, "%s step %s", p.operation, step),
	}
}
