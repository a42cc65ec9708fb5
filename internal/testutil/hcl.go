package testutil

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/argbox/internal/model"
	"github.com/stretchr/testify/require"
)

// ParseManifest parses an in-memory manifest. HCL syntax errors fail the
// test; decoding diagnostics are returned for the caller to inspect.
func ParseManifest(t *testing.T, src string) ([]model.Definition, hcl.Diagnostics, *SafeBuffer) {
	t.Helper()

	ctx, logs := NewLogContext(t)
	file, diags := hclparse.NewParser().ParseHCL([]byte(src), "test.hcl")
	require.False(t, diags.HasErrors(), "HCL syntax error: %s", diags.Error())

	defs, diags := model.ParseManifestFile(ctx, file, "test.hcl")
	return defs, diags, logs
}
