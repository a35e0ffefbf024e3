package taxonomy

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/sumeetsaini/well/pkg/api"
	"github.com/sumeetsaini/well/pkg/core"
)

// Store is the remote surface the resolver creates nodes through.
type Store interface {
	CreateCategory(ctx context.Context, name string) (api.Response, error)
	CreateSubcategory(ctx context.Context, category, name string) (api.Response, error)
}

// Resolver drives a Machine interactively over a reader/writer pair. All
// listing decisions use the snapshot passed to Resolve; no remote fetch is
// re-issued mid-resolution.
type Resolver struct {
	store  Store
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
}

// NewResolver creates a resolver reading selections from in and printing
// prompts to out.
func NewResolver(store Store, in io.Reader, out io.Writer, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		store: store,
		in:    bufio.NewReader(in),
		out:   out,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolverOption defines a functional option for configuring the Resolver.
type ResolverOption func(*Resolver)

// WithLogger sets the logger for the resolver.
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// Resolve walks the machine to Resolved and returns the pair, both
// guaranteed present in the (possibly amended) snapshot. The snapshot is
// mutated in place as remote creates succeed; a failed create leaves it
// untouched and re-prompts. Returns an error only when input runs out
// before resolution.
func (r *Resolver) Resolve(ctx context.Context, snapshot *core.Taxonomy) (category, subcategory string, err error) {
	m := NewMachine(snapshot)

	for m.State() != Resolved {
		r.prompt(m)

		line, readErr := r.in.ReadString('\n')
		if readErr != nil && line == "" {
			return "", "", fmt.Errorf("input ended before taxonomy was resolved: %w", readErr)
		}

		effect := m.Step(line)
		switch effect.Kind {
		case EffectReprompt:
			fmt.Fprintln(r.out, "Invalid input, try again.")
		case EffectCreateCategory:
			r.create(m, effect, func() (api.Response, error) {
				return r.store.CreateCategory(ctx, effect.Name)
			})
		case EffectCreateSubcategory:
			r.create(m, effect, func() (api.Response, error) {
				return r.store.CreateSubcategory(ctx, m.Category(), effect.Name)
			})
		}

		if readErr != nil && m.State() != Resolved {
			return "", "", fmt.Errorf("input ended before taxonomy was resolved: %w", readErr)
		}
	}

	if r.logger != nil {
		r.logger.Debug("taxonomy resolved", "category", m.Category(), "subcategory", m.Subcategory())
	}
	return m.Category(), m.Subcategory(), nil
}

// create performs one remote create call. The snapshot is only committed
// after a success status; failures are reported verbatim and leave the
// machine in place so the user is asked for a name again.
func (r *Resolver) create(m *Machine, effect Effect, call func() (api.Response, error)) {
	resp, err := call()
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	if !resp.OK() {
		fmt.Fprintf(r.out, "Status: %d\nResponse: %s\n", resp.Status, resp.Body)
		return
	}
	if err := m.Commit(effect); err != nil {
		// Server accepted a node the snapshot already holds; report and
		// re-prompt rather than abort.
		fmt.Fprintf(r.out, "Error: %v\n", err)
	}
}

func (r *Resolver) prompt(m *Machine) {
	switch m.State() {
	case SelectCategory:
		fmt.Fprintln(r.out, "Select a category:")
		for i, opt := range m.Options() {
			fmt.Fprintf(r.out, "%d. %s\n", i+1, opt)
		}
		fmt.Fprint(r.out, "Choose: ")
	case SelectSubcategory:
		fmt.Fprintf(r.out, "Select a subcategory for %s:\n", m.Category())
		for i, opt := range m.Options() {
			fmt.Fprintf(r.out, "%d. %s\n", i+1, opt)
		}
		fmt.Fprint(r.out, "Choose: ")
	case CreateCategory:
		fmt.Fprint(r.out, "New category name: ")
	case CreateSubcategory:
		fmt.Fprintf(r.out, "New subcategory name for %s: ", m.Category())
	}
}
