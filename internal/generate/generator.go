package generate

import (
	"slices"

	"github.com/jptrs93/protoclass/internal/ir"
)

// Version is reported by the hosts' -version flag.
var Version = "0.3.0"

// Artifact names used in OutputFile.Name.
const (
	ArtifactHeader    = "header"
	ArtifactSource    = "source"
	ArtifactEnums     = "enums"
	ArtifactAggregate = "aggregate"
	ArtifactManifest  = "manifest"
	// ArtifactClassPrefix is followed by the class name in split layout.
	ArtifactClassPrefix = "class:"
)

type OutputFile struct {
	// Name is the logical artifact name, such as "header" or "class:Person".
	Name    string
	Path    string
	Content []byte
}

type Options struct {
	OutDir    string
	GoPackage string
	// SplitHeaders emits one declaration file per class plus enums and aggregate files.
	SplitHeaders   bool
	OutputListFile string
	// Targets restricts generation to these file paths. Empty means every file; the other
	// files still resolve type references.
	Targets []string
}

// IsTarget reports whether the file at path should be generated.
func (o Options) IsTarget(path string) bool {
	if len(o.Targets) == 0 {
		return true
	}
	return slices.Contains(o.Targets, path)
}

type Generator interface {
	Name() string
	Generate(files []ir.File, options Options) ([]OutputFile, error)
}
