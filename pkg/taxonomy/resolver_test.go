package taxonomy

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumeetsaini/well/pkg/api"
	"github.com/sumeetsaini/well/pkg/core"
)

// fakeStore scripts responses for the create calls and records them.
type fakeStore struct {
	responses []api.Response // consumed in order; empty means always 201
	calls     []string
}

func (f *fakeStore) next() api.Response {
	if len(f.responses) == 0 {
		return api.Response{Status: http.StatusCreated}
	}
	r := f.responses[0]
	f.responses = f.responses[1:]
	return r
}

func (f *fakeStore) CreateCategory(_ context.Context, name string) (api.Response, error) {
	f.calls = append(f.calls, "category:"+name)
	return f.next(), nil
}

func (f *fakeStore) CreateSubcategory(_ context.Context, category, name string) (api.Response, error) {
	f.calls = append(f.calls, "subcategory:"+category+"/"+name)
	return f.next(), nil
}

func resolve(t *testing.T, store *fakeStore, snap *core.Taxonomy, input string) (string, string, *bytes.Buffer, error) {
	t.Helper()
	var out bytes.Buffer
	r := NewResolver(store, strings.NewReader(input), &out)
	cat, sub, err := r.Resolve(context.Background(), snap)
	return cat, sub, &out, err
}

func TestResolve_ExistingPairNeedsNoCreates(t *testing.T) {
	store := &fakeStore{}
	snap := snapshot(core.Category{Name: "Food", Subcategories: []string{"Groceries"}})

	cat, sub, _, err := resolve(t, store, snap, "1\n1\n")
	require.NoError(t, err)

	assert.Equal(t, "Food", cat)
	assert.Equal(t, "Groceries", sub)
	assert.Empty(t, store.calls, "selecting existing nodes must not call the store")
}

func TestResolve_EmptySnapshotCreatesBoth(t *testing.T) {
	store := &fakeStore{}
	snap := snapshot()

	cat, sub, _, err := resolve(t, store, snap, "Travel\nFlights\n")
	require.NoError(t, err)

	assert.Equal(t, "Travel", cat)
	assert.Equal(t, "Flights", sub)
	assert.Equal(t, []string{"category:Travel", "subcategory:Travel/Flights"}, store.calls)
	assert.True(t, snap.Contains("Travel", "Flights"))
}

func TestResolve_FailedCreateLeavesSnapshotAndReprompts(t *testing.T) {
	store := &fakeStore{responses: []api.Response{
		{Status: http.StatusInternalServerError, Body: "db down"},
		{Status: http.StatusCreated},
		{Status: http.StatusCreated},
	}}
	snap := snapshot()

	cat, sub, out, err := resolve(t, store, snap, "Travel\nTravel\nFlights\n")
	require.NoError(t, err)

	assert.Equal(t, "Travel", cat)
	assert.Equal(t, "Flights", sub)
	// First create failed: reported verbatim, snapshot untouched, name asked again.
	assert.Contains(t, out.String(), "Status: 500")
	assert.Contains(t, out.String(), "db down")
	assert.Equal(t, []string{"category:Travel", "category:Travel", "subcategory:Travel/Flights"}, store.calls)
	require.Len(t, snap.Categories, 1)
}

func TestResolve_InvalidSelectionsLoopUntilValid(t *testing.T) {
	store := &fakeStore{}
	snap := snapshot(
		core.Category{Name: "Food", Subcategories: []string{"Groceries"}},
		core.Category{Name: "Travel", Subcategories: []string{"Flights", "Hotels"}},
	)

	cat, sub, out, err := resolve(t, store, snap, "x\n9\n2\n0\n2\n")
	require.NoError(t, err)

	assert.Equal(t, "Travel", cat)
	assert.Equal(t, "Hotels", sub)
	assert.Contains(t, out.String(), "Invalid input")
	assert.Empty(t, store.calls)
}

func TestResolve_SelectedCategoryWithoutSubcategories(t *testing.T) {
	store := &fakeStore{}
	snap := snapshot(core.Category{Name: "Misc"})

	cat, sub, _, err := resolve(t, store, snap, "1\nStuff\n")
	require.NoError(t, err)

	assert.Equal(t, "Misc", cat)
	assert.Equal(t, "Stuff", sub)
	assert.Equal(t, []string{"subcategory:Misc/Stuff"}, store.calls)
	assert.True(t, snap.Contains("Misc", "Stuff"))
}

func TestResolve_CreateNewSubcategoryViaSyntheticOption(t *testing.T) {
	store := &fakeStore{}
	snap := snapshot(core.Category{Name: "Food", Subcategories: []string{"Groceries"}})

	cat, sub, _, err := resolve(t, store, snap, "1\n2\nRestaurants\n")
	require.NoError(t, err)

	assert.Equal(t, "Food", cat)
	assert.Equal(t, "Restaurants", sub)
	assert.True(t, snap.Contains("Food", "Restaurants"))
}

func TestResolve_ResultAlwaysPresentInSnapshot(t *testing.T) {
	store := &fakeStore{}
	snap := snapshot(core.Category{Name: "Food", Subcategories: []string{"Groceries"}})

	cat, sub, _, err := resolve(t, store, snap, "2\nTravel\nFlights\n")
	require.NoError(t, err)
	assert.True(t, snap.Contains(cat, sub))
}

func TestResolve_InputExhaustedIsAnError(t *testing.T) {
	store := &fakeStore{}
	snap := snapshot(core.Category{Name: "Food", Subcategories: []string{"Groceries"}})

	_, _, _, err := resolve(t, store, snap, "1\n")
	assert.Error(t, err)
}

func TestResolve_MenuShowsSyntheticOptionLast(t *testing.T) {
	store := &fakeStore{}
	snap := snapshot(core.Category{Name: "Food", Subcategories: []string{"Groceries"}})

	_, _, out, err := resolve(t, store, snap, "1\n1\n")
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "1. Food")
	assert.Contains(t, text, "2. Create new category")
	assert.Contains(t, text, "2. Create new subcategory")
}
