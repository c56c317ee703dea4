package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// WriteFiles writes outputs concurrently, creating parent directories as needed.
func WriteFiles(ctx context.Context, outputs []OutputFile) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for _, file := range outputs {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return writeFile(file)
			}
		})
	}
	return eg.Wait()
}

func writeFile(file OutputFile) error {
	if err := os.MkdirAll(filepath.Dir(file.Path), 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", filepath.Dir(file.Path), err)
	}
	if err := os.WriteFile(file.Path, file.Content, 0o644); err != nil {
		return fmt.Errorf("write file %s: %w", file.Path, err)
	}
	return nil
}

// WithManifest appends the output list file, naming every path in outputs one per line,
// when options ask for one.
func WithManifest(outputs []OutputFile, options Options) []OutputFile {
	if options.OutputListFile == "" {
		return outputs
	}
	var sb strings.Builder
	for _, file := range outputs {
		sb.WriteString(file.Path)
		sb.WriteByte('\n')
	}
	return append(outputs, OutputFile{
		Name:    ArtifactManifest,
		Path:    options.OutputListFile,
		Content: []byte(sb.String()),
	})
}
