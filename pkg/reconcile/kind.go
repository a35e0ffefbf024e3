package reconcile

import (
	"fmt"

	"github.com/sumeetsaini/well/pkg/core"
)

// Kind describes how one content kind is prepared for editing and wrapped
// for the replace call. The control flow in Run never varies per kind.
type Kind struct {
	Name string
	ext  string

	serialize   func(body string) (string, error)
	deserialize func(text string) (string, error)
	wrap        func(content string) any
}

func passthrough(s string) (string, error) { return s, nil }

// RecordKind edits a single markdown record; the replace payload is
// {type, content}.
func RecordKind(t core.RecordType) Kind {
	return Kind{
		Name:        string(t),
		ext:         ".md",
		serialize:   passthrough,
		deserialize: passthrough,
		wrap: func(content string) any {
			return map[string]any{"type": t, "content": content}
		},
	}
}

// LedgerKind edits the full transaction ledger as one opaque tabular blob;
// the replace payload is {content}.
func LedgerKind() Kind {
	return Kind{
		Name:        "ledger",
		ext:         ".csv",
		serialize:   passthrough,
		deserialize: passthrough,
		wrap: func(content string) any {
			return map[string]any{"content": content}
		},
	}
}

// TreeKind edits the whole taxonomy. The server's JSON document is
// pretty-printed as ordered YAML for the editor and re-serialized to the
// wire shape afterwards; the replace payload is {content}.
func TreeKind() Kind {
	return Kind{
		Name: "taxonomy",
		ext:  ".yaml",
		serialize: func(body string) (string, error) {
			if body == "" {
				return (&core.Taxonomy{}).YAML()
			}
			tax, err := core.ParseTaxonomyJSON(body)
			if err != nil {
				return "", fmt.Errorf("remote taxonomy is malformed: %w", err)
			}
			return tax.YAML()
		},
		deserialize: func(text string) (string, error) {
			tax, err := core.ParseTaxonomyYAML(text)
			if err != nil {
				return "", fmt.Errorf("edited taxonomy is malformed: %w", err)
			}
			return tax.JSON()
		},
		wrap: func(content string) any {
			return map[string]any{"content": content}
		},
	}
}
