// Package reconcile drives one read-modify-write cycle against the remote
// store: fetch the current content, hand it to an external editor, detect
// whether anything changed, and push the result back only after explicit
// confirmation. The cycle is identical for single records, the ledger blob
// and the taxonomy tree; only the Kind descriptor differs.
package reconcile

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/sumeetsaini/well/pkg/api"
)

// Result classifies how a reconciliation run ended.
type Result int

const (
	// Pushed means the user confirmed and the replace call was issued;
	// Status and Body carry the server's verbatim answer, success or not.
	Pushed Result = iota
	// NoChange means the edited buffer equals the original after
	// normalization. No network call was issued.
	NoChange
	// Discarded means the user declined the push. No network call was issued.
	Discarded
	// FetchFailed means the initial read did not succeed; no edit session
	// was started.
	FetchFailed
	// EditFailed means the editor round trip or the content
	// serialization failed; the scratch file is already released.
	EditFailed
	// PushFailed means the replace call failed at the transport level.
	PushFailed
)

// String implements fmt.Stringer.
func (r Result) String() string {
	switch r {
	case Pushed:
		return "pushed"
	case NoChange:
		return "no-change"
	case Discarded:
		return "discarded"
	case FetchFailed:
		return "fetch-failed"
	case EditFailed:
		return "edit-failed"
	case PushFailed:
		return "push-failed"
	}
	return "unknown"
}

// Outcome reports one finished run. Status and Body are set when a remote
// call produced them; Err is set for transport and edit failures.
type Outcome struct {
	Result Result
	Status int
	Body   string
	Err    error
}

// FetchFunc reads the current remote content.
type FetchFunc func(ctx context.Context) (api.Response, error)

// ReplaceFunc pushes the wrapped payload built by the Kind.
type ReplaceFunc func(ctx context.Context, payload any) (api.Response, error)

// Editor is the blocking external-edit round trip.
type Editor interface {
	Edit(initial, ext string) (string, error)
}

// ConfirmFunc asks the user whether changed content should be pushed.
type ConfirmFunc func(kind string) bool

// Engine runs reconciliation cycles. It owns no state between runs; each
// run's edit session is scoped to that invocation.
type Engine struct {
	editor  Editor
	confirm ConfirmFunc
	logger  *slog.Logger
}

// New creates an Engine. confirm may be nil, in which case changed content
// is pushed without asking (non-interactive use).
func New(editor Editor, confirm ConfirmFunc, opts ...Option) *Engine {
	e := &Engine{editor: editor, confirm: confirm}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run performs one fetch -> edit -> diff -> confirm -> push cycle.
func (e *Engine) Run(ctx context.Context, fetch FetchFunc, replace ReplaceFunc, kind Kind) Outcome {
	session := uuid.NewString()[:8]
	e.debug("reconcile start", "kind", kind.Name, "session", session)

	resp, err := fetch(ctx)
	if err != nil {
		return Outcome{Result: FetchFailed, Err: err}
	}
	if !resp.OK() {
		return Outcome{Result: FetchFailed, Status: resp.Status, Body: resp.Body}
	}

	original := normalize(resp.Body)
	seed, err := kind.serialize(original)
	if err != nil {
		return Outcome{Result: EditFailed, Err: err}
	}

	edited, err := e.editor.Edit(seed, kind.ext)
	if err != nil {
		return Outcome{Result: EditFailed, Err: err}
	}

	updated := normalize(edited)
	if updated == normalize(seed) {
		e.debug("buffer unchanged", "kind", kind.Name, "session", session)
		return Outcome{Result: NoChange}
	}

	final, err := kind.deserialize(updated)
	if err != nil {
		return Outcome{Result: EditFailed, Err: err}
	}

	if e.confirm != nil && !e.confirm(kind.Name) {
		e.debug("push declined", "kind", kind.Name, "session", session)
		return Outcome{Result: Discarded}
	}

	resp, err = replace(ctx, kind.wrap(final))
	if err != nil {
		return Outcome{Result: PushFailed, Err: err}
	}
	e.debug("pushed", "kind", kind.Name, "session", session, "status", resp.Status)
	return Outcome{Result: Pushed, Status: resp.Status, Body: resp.Body}
}

func (e *Engine) debug(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, args...)
	}
}

// normalize strips surrounding whitespace before comparison, the same way
// the original content is normalized after fetch.
func normalize(s string) string {
	return strings.TrimSpace(s)
}
