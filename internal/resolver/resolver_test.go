package resolver_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/argbox/internal/model"
	"github.com/specialistvlad/argbox/internal/registry"
	"github.com/specialistvlad/argbox/internal/resolver"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	require.NoError(t, reg.Register(model.Definition{Name: "Name", ShortCall: "-nm", LongCall: "--name", HelpText: "h", Mandatory: true}))
	require.NoError(t, reg.Register(model.Definition{Name: "Verbose", ShortCall: "-v", LongCall: "--verbose", HelpText: "h", ValueNotRequired: true}))
	require.NoError(t, reg.Register(model.Definition{Name: "Out", ShortCall: "-o", LongCall: "--out", HelpText: "h"}))
	return reg
}

// entry is a comparable view of a ParsedArgument.
type entry struct {
	Name       string
	CommandArg string
	Value      string
	HasValue   bool
}

func entries(res *resolver.Result) []entry {
	var out []entry
	for _, p := range res.Parsed() {
		out = append(out, entry{p.Name(), p.CommandArg, p.Value, p.HasValue})
	}
	return out
}

func TestResolve(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		tokens        []string
		wantParsed    []entry
		wantLeftovers []string
	}{
		{
			name:   "Empty input",
			tokens: nil,
		},
		{
			name:       "Value consumed from next token",
			tokens:     []string{"-nm", "Bob"},
			wantParsed: []entry{{"Name", "-nm", "Bob", true}},
		},
		{
			name:       "Long call works the same",
			tokens:     []string{"--name", "Bob"},
			wantParsed: []entry{{"Name", "--name", "Bob", true}},
		},
		{
			name:          "Flag never consumes the next token",
			tokens:        []string{"-v", "Bob"},
			wantParsed:    []entry{{"Verbose", "-v", "", false}},
			wantLeftovers: []string{"Bob"},
		},
		{
			name:       "Flag followed by another argument",
			tokens:     []string{"--verbose", "-nm", "Bob"},
			wantParsed: []entry{{"Verbose", "--verbose", "", false}, {"Name", "-nm", "Bob", true}},
		},
		{
			name:       "Value-requiring argument at the end has no value",
			tokens:     []string{"-nm"},
			wantParsed: []entry{{"Name", "-nm", "", false}},
		},
		{
			name:       "Next token is consumed even if it is a call",
			tokens:     []string{"-nm", "-v"},
			wantParsed: []entry{{"Name", "-nm", "-v", true}},
		},
		{
			name:          "Unmatched tokens are leftovers in order",
			tokens:        []string{"foo", "-nm", "Bob", "bar", "-x"},
			wantParsed:    []entry{{"Name", "-nm", "Bob", true}},
			wantLeftovers: []string{"foo", "bar", "-x"},
		},
		{
			name:       "Last occurrence wins",
			tokens:     []string{"-nm", "Bob", "-o", "a.txt", "--name", "Bill"},
			wantParsed: []entry{{"Name", "--name", "Bill", true}, {"Out", "-o", "a.txt", true}},
		},
		{
			name:          "Built-in help is matched like any flag",
			tokens:        []string{"--help", "x"},
			wantParsed:    []entry{{"HELP", "--help", "", false}},
			wantLeftovers: []string{"x"},
		},
	}

	reg := newRegistry(t)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			res := resolver.Resolve(reg, tc.tokens)

			// --- Assert ---
			if diff := cmp.Diff(tc.wantParsed, entries(res)); diff != "" {
				t.Errorf("parsed arguments mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.wantLeftovers, res.Leftovers()); diff != "" {
				t.Errorf("leftovers mismatch (-want +got):\n%s", diff)
			}
			require.Equal(t, len(tc.wantParsed), res.Len())
		})
	}
}

func TestResolve_ResultQueries(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	res := resolver.Resolve(reg, []string{"-nm", "Bob", "-v", "-o"})

	value, ok := res.Value("Name")
	require.True(t, ok)
	require.Equal(t, "Bob", value)

	_, ok = res.Value("Verbose")
	require.False(t, ok, "flags carry no value")
	require.True(t, res.Has("Verbose"))

	_, ok = res.Value("Out")
	require.False(t, ok)
	require.True(t, res.Has("Out"))

	def, _ := reg.Get("Name")
	parsed, ok := res.Lookup(def)
	require.True(t, ok)
	require.Equal(t, "-nm", parsed.CommandArg)

	require.False(t, res.Has("HELP"))
	_, ok = res.Get("Missing")
	require.False(t, ok)
}

func TestResolve_CallsAreIndependent(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)

	first := resolver.Resolve(reg, []string{"foo", "-nm", "Bob"})
	second := resolver.Resolve(reg, []string{"-v"})

	require.Equal(t, []string{"foo"}, first.Leftovers())
	require.Empty(t, second.Leftovers(), "leftovers must not leak between calls")
	require.False(t, second.Has("Name"))
	require.Equal(t, 4, reg.Len(), "resolution must not mutate the registry")
}

func TestResolve_LeftoversAreCopied(t *testing.T) {
	t.Parallel()

	res := resolver.Resolve(newRegistry(t), []string{"foo"})
	leftovers := res.Leftovers()
	leftovers[0] = "changed"

	require.Equal(t, []string{"foo"}, res.Leftovers())
}
