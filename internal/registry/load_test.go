package registry_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/argbox/internal/registry"
	"github.com/specialistvlad/argbox/internal/testutil"
	"github.com/stretchr/testify/require"
)

const nameManifest = `
argument "Name" {
	short     = "-nm"
	long      = "--name"
	help      = "desc"
	mandatory = true
	validate  = startswith(value, "B")
}
`

const verboseManifest = `
argument "Verbose" {
	short = "-v"
	long  = "--verbose"
	help  = "Print more."
	flag  = true
}
`

func TestLoadManifests_Directory(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := testutil.WriteFiles(t, map[string]string{
		"args/name.hcl":    nameManifest,
		"args/verbose.hcl": verboseManifest,
		"args/README.md":   "not a manifest",
	})
	ctx, logs := testutil.NewLogContext(t)
	reg := registry.New()

	// --- Act ---
	err := reg.LoadManifests(ctx, filepath.Join(root, "args"))

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, 3, reg.Len())

	name, ok := reg.Lookup("--name")
	require.True(t, ok)
	require.True(t, name.Mandatory)
	require.True(t, name.Accepts("Bob"))
	require.False(t, name.Accepts("Sam"))
	require.Equal(t, filepath.Join(root, "args", "name.hcl"), name.Source.FilePath)

	verbose, ok := reg.Lookup("-v")
	require.True(t, ok)
	require.True(t, verbose.ValueNotRequired)

	require.Contains(t, logs.String(), "argument_definitions_loaded=2")
}

func TestLoadManifests_SingleFile(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{"name.hcl": nameManifest})
	ctx, _ := testutil.NewLogContext(t)
	reg := registry.New()

	require.NoError(t, reg.LoadManifests(ctx, filepath.Join(root, "name.hcl")))
	require.Equal(t, 2, reg.Len())
}

func TestLoadManifests_EmptyDirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	ctx, logs := testutil.NewLogContext(t)
	reg := registry.New()

	require.NoError(t, reg.LoadManifests(ctx, root))
	require.Equal(t, 1, reg.Len())
	require.Contains(t, logs.String(), "No .hcl manifest files found")
}

func TestLoadManifests_Failures(t *testing.T) {
	t.Parallel()

	t.Run("Missing path", func(t *testing.T) {
		t.Parallel()
		ctx, _ := testutil.NewLogContext(t)
		err := registry.New().LoadManifests(ctx, filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
	})

	t.Run("Syntax error", func(t *testing.T) {
		t.Parallel()
		root := testutil.WriteFiles(t, map[string]string{"bad.hcl": `argument "A" {`})
		ctx, _ := testutil.NewLogContext(t)
		err := registry.New().LoadManifests(ctx, root)
		require.ErrorContains(t, err, "failed to parse HCL file")
		require.ErrorContains(t, err, "bad.hcl")
	})

	t.Run("Invalid definition", func(t *testing.T) {
		t.Parallel()
		root := testutil.WriteFiles(t, map[string]string{"bad.hcl": `
argument "A" {
	short    = "-a"
	long     = "--a"
	help     = "h"
	validate = nosuchfunc(value)
}
`})
		ctx, _ := testutil.NewLogContext(t)
		err := registry.New().LoadManifests(ctx, root)
		require.ErrorContains(t, err, "failed to process argument definitions")
		require.ErrorContains(t, err, "nosuchfunc")
	})

	t.Run("Collision across files", func(t *testing.T) {
		t.Parallel()
		root := testutil.WriteFiles(t, map[string]string{
			"a.hcl": nameManifest,
			"b.hcl": `
argument "Nickname" {
	short = "-nm"
	long  = "--nickname"
	help  = "h"
}
`,
		})
		ctx, _ := testutil.NewLogContext(t)
		reg := registry.New()

		err := reg.LoadManifests(ctx, root)

		require.ErrorContains(t, err, "b.hcl")
		require.True(t, errors.Is(err, registry.ErrDuplicateShortCall))
		_, ok := reg.Get("Nickname")
		require.False(t, ok)
		_, ok = reg.Get("Name")
		require.True(t, ok, "definitions loaded before the failure remain")
	})

	t.Run("Collision with built-in help", func(t *testing.T) {
		t.Parallel()
		root := testutil.WriteFiles(t, map[string]string{"help.hcl": `
argument "HELP" {
	short = "-h"
	long  = "--h"
	help  = "h"
}
`})
		ctx, _ := testutil.NewLogContext(t)
		err := registry.New().LoadManifests(ctx, root)
		require.True(t, errors.Is(err, registry.ErrDuplicateName))
	})
}
