package usecase

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lemsearch/internal/adapter/invindex"
	"lemsearch/internal/port"
)

// BuildUseCase builds and publishes the inverted index.
type BuildUseCase struct {
	builder *invindex.Builder
}

// NewBuildUseCase creates a build use case over the given corpus source.
func NewBuildUseCase(source port.CorpusSource) *BuildUseCase {
	return &BuildUseCase{builder: invindex.NewBuilder(source)}
}

// BuildResult describes a finished index build.
type BuildResult struct {
	Path      string // where the index was written, after collision renaming
	Documents int
	Lemmas    int
}

// Build indexes the lemma directory and writes the serialized table to
// outPath. An existing file at outPath is never clobbered: the output gets
// a numbered suffix instead. Either the full table is published or nothing
// is.
func (u *BuildUseCase) Build(lemmaDir, outPath string) (*BuildResult, error) {
	table, err := u.builder.Build(lemmaDir)
	if err != nil {
		return nil, err
	}

	resolved, err := resolveOutput(outPath)
	if err != nil {
		return nil, err
	}
	if err := invindex.WriteFile(resolved, table); err != nil {
		return nil, err
	}

	return &BuildResult{
		Path:      resolved,
		Documents: len(invindex.NewStore(table).Universe()),
		Lemmas:    len(table),
	}, nil
}

// resolveOutput returns path if nothing exists there, otherwise the first
// free <stem>_<n><ext> variant.
func resolveOutput(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, n, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
		if n >= 10000 {
			return "", fmt.Errorf("cannot find a free output path near %s", path)
		}
	}
}
