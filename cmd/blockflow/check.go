package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-blockflow/fixture"
)

func newCheckCmd(a *app) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Verify the expectations of layout fixtures",
		Long: `Check lays out every fixture and compares the result with its expectations.
Paths may be fixture files, directories, or a directory followed by /... to
search recursively. The default is the current directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd.Context(), cmd.OutOrStdout(), args, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print passing fixtures too")
	return cmd
}

// checkResult is the outcome of one fixture.
type checkResult struct {
	path       string
	mismatches []fixture.Mismatch
	err        error
}

func (a *app) runCheck(ctx context.Context, out io.Writer, paths []string, verbose bool) error {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := collectFixtures(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no fixtures found")
	}

	b, err := a.builder()
	if err != nil {
		return err
	}

	// Every fixture gets its own tree, so they run independently.
	results := make([]checkResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = a.checkFile(b, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var failed int
	for _, r := range results {
		switch {
		case r.err != nil:
			failed++
			fmt.Fprintf(out, "ERROR %s: %v\n", r.path, r.err)
		case len(r.mismatches) > 0:
			failed++
			fmt.Fprintf(out, "FAIL  %s\n", r.path)
			for _, m := range r.mismatches {
				fmt.Fprintf(out, "      %s\n", m)
			}
		case verbose:
			fmt.Fprintf(out, "ok    %s\n", r.path)
		}
	}

	a.log.Info("check finished", zap.Int("fixtures", len(files)), zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%d of %d fixture(s) failed", failed, len(files))
	}
	return nil
}

func (a *app) checkFile(b fixture.Builder, path string) checkResult {
	fx, err := a.load(path)
	if err != nil {
		return checkResult{path: path, err: err}
	}
	_, mismatches, err := b.Run(fx, a.cfg.Layout.Tolerance)
	return checkResult{path: path, mismatches: mismatches, err: err}
}

var fixtureExts = []string{".yaml", ".yml", ".html", ".htm"}

func isFixture(path string) bool {
	return slices.Contains(fixtureExts, strings.ToLower(filepath.Ext(path)))
}

// collectFixtures finds fixture files from the given paths.
// Supports:
//   - Direct file paths: "block_basic.yaml"
//   - Directory paths: "./fixtures"
//   - Recursive pattern: "./fixtures/..."
func collectFixtures(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && isFixture(p) {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if !info.IsDir() {
			// Named files are checked whatever their extension.
			files = append(files, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("reading directory %s: %w", path, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && isFixture(entry.Name()) {
				files = append(files, filepath.Join(path, entry.Name()))
			}
		}
	}

	return files, nil
}
