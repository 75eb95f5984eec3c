// Package walk enumerates files under a directory tree for a search host,
// grounded on the teacher's pkg/enum.FilesystemEnumerator: a sequential walk
// phase collects eligible paths, then a pool of goroutines reads and
// delivers their content in parallel.
package walk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
	"github.com/vschromium/corefind/pkg/textutil"
	"golang.org/x/sync/errgroup"
)

// Config controls how a directory tree is walked.
type Config struct {
	Root           string
	IncludeHidden  bool
	IncludeBinary  bool
	FollowSymlinks bool
	MaxFileSize    int64 // 0 means unlimited
}

// File is one file delivered to a Visit callback.
type File struct {
	Path    string
	Content []byte
}

// Visit is called once per eligible file. Returning an error aborts the walk.
type Visit func(File) error

// Walk enumerates cfg.Root and invokes visit for every eligible, readable
// file, honoring a root .gitignore if present the way the teacher does.
func Walk(ctx context.Context, cfg Config, visit Visit) error {
	var ignore *gitignore.GitIgnore
	gitignorePath := filepath.Join(cfg.Root, ".gitignore")
	if _, err := os.Stat(gitignorePath); err == nil {
		ignore, _ = gitignore.CompileIgnoreFile(gitignorePath)
	}

	var paths []string
	err := filepath.Walk(cfg.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if info.IsDir() {
			if !cfg.IncludeHidden && isHidden(info.Name()) && path != cfg.Root {
				return filepath.SkipDir
			}
			return nil
		}

		if info.Mode()&os.ModeSymlink != 0 && !cfg.FollowSymlinks {
			return nil
		}
		if !cfg.IncludeHidden && isHidden(info.Name()) {
			return nil
		}
		if cfg.MaxFileSize > 0 && info.Size() > cfg.MaxFileSize {
			return nil
		}
		if ignore != nil {
			rel, err := filepath.Rel(cfg.Root, path)
			if err != nil {
				return err
			}
			if ignore.MatchesPath(rel) {
				return nil
			}
		}

		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", cfg.Root, err)
	}

	numReaders := runtime.NumCPU()
	if numReaders < 1 {
		numReaders = 1
	}
	if numReaders > len(paths) && len(paths) > 0 {
		numReaders = len(paths)
	}

	origCtx := ctx
	g, ctx := errgroup.WithContext(ctx)
	pathsCh := make(chan string, numReaders*2)

	g.Go(func() error {
		defer close(pathsCh)
		for _, p := range paths {
			select {
			case pathsCh <- p:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < numReaders; i++ {
		g.Go(func() error {
			for p := range pathsCh {
				if err := processFile(cfg, p, visit); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if origCtx.Err() != nil {
		return origCtx.Err()
	}
	return nil
}

func processFile(cfg Config, path string, visit Visit) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if !cfg.IncludeBinary && textutil.GetKind(content) == textutil.ProbablyBinary {
		return nil
	}

	return visit(File{Path: path, Content: content})
}

// isHidden reports whether name starts with a dot, the way the teacher's
// enumerator treats dotfiles and dotdirs.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "."
}
