package registry

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/argbox/internal/ctxlog"
	"github.com/specialistvlad/argbox/internal/fsutil"
	"github.com/specialistvlad/argbox/internal/model"
)

// ManifestExtension is the file extension LoadManifests looks for.
const ManifestExtension = ".hcl"

// LoadManifests registers every argument declared in the .hcl files under
// path (a file or a directory). Files are processed in lexical order; the
// first parse or registration failure stops loading and is returned with the
// offending file path. Definitions registered before the failure remain.
func (r *Registry) LoadManifests(ctx context.Context, path string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading argument manifests...", "path", path)

	filePaths, err := fsutil.FindFilesByExtension(path, ManifestExtension)
	if err != nil {
		logger.Error("Failed to walk manifest path", "path", path, "error", err)
		return fmt.Errorf("failed to find manifests in %s: %w", path, err)
	}

	if len(filePaths) == 0 {
		logger.Warn("No .hcl manifest files found in path", "path", path)
		return nil
	}

	logger.Debug("Found HCL files to load", "files", filePaths)

	parser := hclparse.NewParser()
	loaded := 0

	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
		}

		defs, diags := model.ParseManifestFile(ctx, hclFile, filePath)
		if diags.HasErrors() {
			return fmt.Errorf("failed to process argument definitions in %s: %w", filePath, diags)
		}

		for _, def := range defs {
			if err := r.Register(def); err != nil {
				return fmt.Errorf("failed to register argument from %s: %w", filePath, err)
			}
			loaded++
		}
		logger.Debug("Successfully loaded definitions from HCL file", "file", filePath)
	}

	logger.Info("Registry loaded successfully.", "argument_definitions_loaded", loaded)
	return nil
}
