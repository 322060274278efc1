package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/cours-de-latin/chandas"
)

func newBatchCmd(opts *options) *cobra.Command {
	var (
		root string
		jobs int
	)
	cmd := &cobra.Command{
		Use:   "batch <glob>",
		Short: "Identify every verse file matching a glob",
		Long:  `Batch identifies one verse per file for all files under --root matching the doublestar glob, e.g. "**/*.txt"`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, mode, err := opts.newIdentifier(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			files, err := matchFiles(os.DirFS(root), args[0])
			if err != nil {
				return err
			}
			results, err := identifyFiles(cmd, id, mode, opts.scheme, root, files, jobs)
			if err != nil {
				return err
			}
			return writeBatch(cmd.OutOrStdout(), opts.format, results)
		},
	}
	cmd.Flags().StringVar(&root, "root", ".", "directory the glob is resolved against")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "files identified in parallel (0=auto)")
	return cmd
}

// matchFiles returns the regular files of fsys matching pattern, sorted.
func matchFiles(fsys fs.FS, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob %q", pattern)
	}
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, m := range matches {
		info, err := fs.Stat(fsys, m)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, m)
	}
	slices.Sort(files)
	return files, nil
}

// identifyFiles identifies each file concurrently. A file that cannot be
// read or scanned gets an error entry instead of failing the batch.
func identifyFiles(cmd *cobra.Command, id *chandas.Identifier, mode chandas.Mode, scheme, root string, files []string, jobs int) ([]verseOutput, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]verseOutput, len(files))

	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(1, min(jobs, len(files))))
	for i, name := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = verseOutput{File: name}
			b, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
			if err != nil {
				results[i].Error = err.Error()
				return nil
			}
			v, err := id.Identify(gctx, string(b), mode, scheme)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				results[i].Error = err.Error()
				return nil
			}
			out := toOutput(v)
			out.File = name
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeBatch(w io.Writer, format string, results []verseOutput) error {
	if format != formatPretty {
		return encode(w, format, results)
	}
	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(w, "%s: %s\n", fileColor.Sprint(r.File), failedColor.Sprint(r.Error))
			continue
		}
		label := r.Meter
		if label == "" {
			label = chandas.Unidentified
		}
		fmt.Fprintf(w, "%s: %s\n", fileColor.Sprint(r.File), scoreColor(r.Score).Sprintf("%s [%d]", label, r.Score))
	}
	return nil
}
