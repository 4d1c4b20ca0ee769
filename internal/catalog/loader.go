package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/mikecalizo/ilm-parser-collections/internal/logger"
)

// Well-known file names inside a snapshot directory.
const (
	PoliciesFile = "ilm_policies.json"
	ExplainFile  = "ilm_explain.json"
	ErrorsFile   = "ilm_explain_only_errors.json"
)

// explainEnvelope is the top-level wrapper of an explain capture.
type explainEnvelope struct {
	Indices ExplainCatalog `json:"indices"`
}

// Load reads the three catalogs from their well-known names under dir.
func Load(dir string, log *logger.Logger) Snapshot {
	return LoadFiles(
		filepath.Join(dir, PoliciesFile),
		filepath.Join(dir, ExplainFile),
		filepath.Join(dir, ErrorsFile),
		log,
	)
}

// LoadFiles reads explicitly named catalog files. An empty path yields an
// empty catalog. A missing, unreadable, or malformed file degrades to an
// empty catalog with a warning; loading never aborts an analysis.
func LoadFiles(policiesPath, explainPath, errorsPath string, log *logger.Logger) Snapshot {
	return Snapshot{
		Policies: loadPolicies(policiesPath, log),
		Explain:  loadExplain(explainPath, "explain catalog", log),
		Errors:   loadExplain(errorsPath, "error catalog", log),
	}
}

func loadPolicies(path string, log *logger.Logger) PolicyCatalog {
	if path == "" {
		return PolicyCatalog{}
	}

	var policies PolicyCatalog
	if err := readJSON(ensureJSONExt(path), &policies); err != nil {
		log.WithFields(map[string]any{"file": path, "error": err.Error()}).
			Warn("policy catalog unreadable, continuing with empty catalog")
		return PolicyCatalog{}
	}
	if policies == nil {
		return PolicyCatalog{}
	}
	return policies
}

func loadExplain(path, label string, log *logger.Logger) ExplainCatalog {
	if path == "" {
		return ExplainCatalog{}
	}

	var envelope explainEnvelope
	if err := readJSON(ensureJSONExt(path), &envelope); err != nil {
		log.WithFields(map[string]any{"file": path, "error": err.Error()}).
			Warn(label + " unreadable, continuing with empty catalog")
		return ExplainCatalog{}
	}
	if envelope.Indices == nil {
		return ExplainCatalog{}
	}
	return envelope.Indices
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func ensureJSONExt(path string) string {
	if strings.HasSuffix(path, ".json") {
		return path
	}
	return path + ".json"
}
