package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category is one top-level taxonomy node with its ordered subcategories.
type Category struct {
	Name          string
	Subcategories []string
}

// Taxonomy is the two-level category tree. Order is display order and must
// survive a read-modify-write round trip, so categories live in a slice,
// never a map.
type Taxonomy struct {
	Categories []Category
}

// Lookup returns the category with the given name, or nil.
func (t *Taxonomy) Lookup(name string) *Category {
	for i := range t.Categories {
		if t.Categories[i].Name == name {
			return &t.Categories[i]
		}
	}
	return nil
}

// Contains reports whether the pair names nodes present in the tree.
func (t *Taxonomy) Contains(category, subcategory string) bool {
	c := t.Lookup(category)
	if c == nil {
		return false
	}
	for _, s := range c.Subcategories {
		if s == subcategory {
			return true
		}
	}
	return false
}

// AddCategory appends a new empty category.
func (t *Taxonomy) AddCategory(name string) error {
	if t.Lookup(name) != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateCategory, name)
	}
	t.Categories = append(t.Categories, Category{Name: name})
	return nil
}

// AddSubcategory appends a subcategory to an existing category.
func (t *Taxonomy) AddSubcategory(category, name string) error {
	c := t.Lookup(category)
	if c == nil {
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, category)
	}
	for _, s := range c.Subcategories {
		if s == name {
			return fmt.Errorf("%w: %q", ErrDuplicateSubcategory, name)
		}
	}
	c.Subcategories = append(c.Subcategories, name)
	return nil
}

// ParseTaxonomyJSON decodes the wire shape {"categories": {name: [subs]}}.
// encoding/json maps would scramble key order, so this walks the token
// stream and keeps the categories in the order the server sent them.
func ParseTaxonomyJSON(s string) (*Taxonomy, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("taxonomy document: %w", err)
	}

	t := &Taxonomy{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)
		if key != "categories" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, err
			}
			continue
		}

		if err := expectDelim(dec, '{'); err != nil {
			return nil, fmt.Errorf("categories object: %w", err)
		}
		for dec.More() {
			nameTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			name, ok := nameTok.(string)
			if !ok {
				return nil, fmt.Errorf("category name is not a string: %v", nameTok)
			}
			var subs []string
			if err := dec.Decode(&subs); err != nil {
				return nil, fmt.Errorf("subcategories of %q: %w", name, err)
			}
			t.Categories = append(t.Categories, Category{Name: name, Subcategories: subs})
		}
		if _, err := dec.Token(); err != nil { // closing }
			return nil, err
		}
	}
	if _, err := dec.Token(); err != nil { // closing }
		return nil, err
	}
	return t, nil
}

func expectDelim(dec *json.Decoder, d rune) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != json.Delim(d) {
		return fmt.Errorf("expected %q, got %v", d, tok)
	}
	return nil
}

// JSON serializes the tree back to the wire shape, preserving order.
func (t *Taxonomy) JSON() (string, error) {
	var b strings.Builder
	b.WriteString(`{"categories":{`)
	for i, c := range t.Categories {
		if i > 0 {
			b.WriteByte(',')
		}
		name, err := json.Marshal(c.Name)
		if err != nil {
			return "", err
		}
		subs := c.Subcategories
		if subs == nil {
			subs = []string{}
		}
		vals, err := json.Marshal(subs)
		if err != nil {
			return "", err
		}
		b.Write(name)
		b.WriteByte(':')
		b.Write(vals)
	}
	b.WriteString("}}")
	return b.String(), nil
}

// YAML renders the tree as an ordered mapping for human editing:
//
//	Food:
//	  - Groceries
//	  - Restaurants
//
// Built from yaml.Node so category order survives the encoder.
func (t *Taxonomy) YAML() (string, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, c := range t.Categories {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.Name}
		val := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, s := range c.Subcategories {
			val.Content = append(val.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s})
		}
		root.Content = append(root.Content, key, val)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ParseTaxonomyYAML is the inverse of YAML, again via yaml.Node to keep the
// edited order.
func ParseTaxonomyYAML(s string) (*Taxonomy, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(s), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy: %w", err)
	}

	t := &Taxonomy{}
	if len(doc.Content) == 0 {
		return t, nil // empty document
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Value == "" {
		return t, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("taxonomy must be a mapping of category to subcategories")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		val := root.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, fmt.Errorf("invalid category name at line %d", key.Line)
		}
		c := Category{Name: key.Value}
		switch val.Kind {
		case yaml.SequenceNode:
			for _, item := range val.Content {
				if item.Kind != yaml.ScalarNode || item.Value == "" {
					return nil, fmt.Errorf("invalid subcategory under %q at line %d", key.Value, item.Line)
				}
				c.Subcategories = append(c.Subcategories, item.Value)
			}
		case yaml.ScalarNode:
			if val.Tag != "!!null" && val.Value != "" {
				return nil, fmt.Errorf("subcategories of %q must be a list", key.Value)
			}
		default:
			return nil, fmt.Errorf("subcategories of %q must be a list", key.Value)
		}
		t.Categories = append(t.Categories, c)
	}
	return t, nil
}
