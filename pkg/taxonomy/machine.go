// Package taxonomy resolves a (category, subcategory) pair for a new
// financial entry against a snapshot of the remote tree, creating missing
// nodes remotely as needed. The transition logic is a pure state machine so
// the mandatory-create and mutate-only-on-success rules are testable
// without a live store.
package taxonomy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sumeetsaini/well/pkg/core"
)

// State is the resolver's position in the selection flow.
type State int

const (
	SelectCategory State = iota
	CreateCategory
	SelectSubcategory
	CreateSubcategory
	Resolved
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case SelectCategory:
		return "select-category"
	case CreateCategory:
		return "create-category"
	case SelectSubcategory:
		return "select-subcategory"
	case CreateSubcategory:
		return "create-subcategory"
	case Resolved:
		return "resolved"
	}
	return "unknown"
}

// EffectKind is what the caller must do after a Step.
type EffectKind int

const (
	// EffectNone means the machine advanced (or stayed put) with no remote
	// work to perform.
	EffectNone EffectKind = iota
	// EffectReprompt means the input was invalid or empty; ask again in the
	// same state.
	EffectReprompt
	// EffectCreateCategory asks the caller to create Name remotely and
	// Commit on success.
	EffectCreateCategory
	// EffectCreateSubcategory asks the caller to create Name under the
	// machine's current category and Commit on success.
	EffectCreateSubcategory
)

// Effect is the result of consuming one line of input.
type Effect struct {
	Kind EffectKind
	Name string
}

// Machine walks the selection states over a taxonomy snapshot. It never
// performs remote calls itself; create effects are surfaced to the caller
// and applied via Commit only after the server accepted them, so the local
// snapshot never runs ahead of the store.
type Machine struct {
	state       State
	snapshot    *core.Taxonomy
	category    string
	subcategory string
}

// NewMachine starts the flow. An empty snapshot makes category creation
// mandatory rather than optional.
func NewMachine(snapshot *core.Taxonomy) *Machine {
	state := SelectCategory
	if len(snapshot.Categories) == 0 {
		state = CreateCategory
	}
	return &Machine{state: state, snapshot: snapshot}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Category returns the chosen category, once one is selected or created.
func (m *Machine) Category() string { return m.category }

// Subcategory returns the resolved subcategory, valid in Resolved.
func (m *Machine) Subcategory() string { return m.subcategory }

// Options lists the current menu for the selection states, ending with the
// synthetic create-new entry. Nil outside selection states.
func (m *Machine) Options() []string {
	switch m.state {
	case SelectCategory:
		opts := make([]string, 0, len(m.snapshot.Categories)+1)
		for _, c := range m.snapshot.Categories {
			opts = append(opts, c.Name)
		}
		return append(opts, "Create new category")
	case SelectSubcategory:
		c := m.snapshot.Lookup(m.category)
		opts := make([]string, 0, len(c.Subcategories)+1)
		opts = append(opts, c.Subcategories...)
		return append(opts, "Create new subcategory")
	}
	return nil
}

// Step consumes one line of user input and returns the effect to perform.
// Pure with respect to the store: only Commit mutates the snapshot.
func (m *Machine) Step(input string) Effect {
	in := strings.TrimSpace(input)

	switch m.state {
	case SelectCategory:
		cats := m.snapshot.Categories
		n, err := strconv.Atoi(in)
		if err != nil || n < 1 || n > len(cats)+1 {
			return Effect{Kind: EffectReprompt}
		}
		if n == len(cats)+1 {
			m.state = CreateCategory
			return Effect{}
		}
		c := cats[n-1]
		m.category = c.Name
		if len(c.Subcategories) == 0 {
			m.state = CreateSubcategory
		} else {
			m.state = SelectSubcategory
		}
		return Effect{}

	case CreateCategory:
		if in == "" {
			return Effect{Kind: EffectReprompt}
		}
		return Effect{Kind: EffectCreateCategory, Name: in}

	case SelectSubcategory:
		subs := m.snapshot.Lookup(m.category).Subcategories
		n, err := strconv.Atoi(in)
		if err != nil || n < 1 || n > len(subs)+1 {
			return Effect{Kind: EffectReprompt}
		}
		if n == len(subs)+1 {
			m.state = CreateSubcategory
			return Effect{}
		}
		m.subcategory = subs[n-1]
		m.state = Resolved
		return Effect{}

	case CreateSubcategory:
		if in == "" {
			return Effect{Kind: EffectReprompt}
		}
		return Effect{Kind: EffectCreateSubcategory, Name: in}
	}

	return Effect{Kind: EffectReprompt}
}

// Commit applies a successful remote create to the snapshot and advances
// the machine. A fresh category has no subcategories, so committing one
// lands in CreateSubcategory; committing a subcategory resolves the flow.
func (m *Machine) Commit(e Effect) error {
	switch e.Kind {
	case EffectCreateCategory:
		if err := m.snapshot.AddCategory(e.Name); err != nil {
			return err
		}
		m.category = e.Name
		m.state = CreateSubcategory
		return nil
	case EffectCreateSubcategory:
		if err := m.snapshot.AddSubcategory(m.category, e.Name); err != nil {
			return err
		}
		m.subcategory = e.Name
		m.state = Resolved
		return nil
	}
	return fmt.Errorf("effect %d cannot be committed", e.Kind)
}
