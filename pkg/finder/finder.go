// Package finder locates workflow files: explicit paths win, then the
// configuration's file patterns, then the conventional workflow directory.
package finder

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/wfrun/wfrun/pkg/config"
)

type Finder struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

// Find returns the workflow files to process.
func (f *Finder) Find(logE *logrus.Entry, paths []string, cfg *config.Config, pwd string) ([]string, error) {
	if len(paths) != 0 {
		return paths, nil
	}
	if cfg != nil && len(cfg.Files) > 0 {
		return f.findByConfig(logE, cfg, pwd)
	}
	return f.listWorkflows()
}

func (f *Finder) listWorkflows() ([]string, error) {
	patterns := []string{
		".github/workflows/*.yml",
		".github/workflows/*.yaml",
	}
	files := []string{}
	for _, pattern := range patterns {
		matches, err := afero.Glob(f.fs, pattern)
		if err != nil {
			return nil, fmt.Errorf("look for workflow files using glob: %w", logerr.WithFields(err, logrus.Fields{
				"pattern": pattern,
			}))
		}
		files = append(files, matches...)
	}
	return files, nil
}

func (f *Finder) findByConfig(logE *logrus.Entry, cfg *config.Config, pwd string) ([]string, error) {
	files := []string{}
	if err := fs.WalkDir(afero.NewIOFS(f.fs), pwd, func(p string, dirEntry fs.DirEntry, e error) error {
		if e != nil {
			return nil //nolint:nilerr
		}
		if dirEntry.IsDir() {
			return nil
		}
		filePath, err := filepath.Rel(pwd, p)
		if err != nil {
			logE.WithFields(logrus.Fields{
				"pwd":  pwd,
				"path": p,
			}).WithError(err).Debug("get a relative path")
			return nil
		}
		for _, file := range cfg.Files {
			if file.Match(filePath) {
				files = append(files, filePath)
				break
			}
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("search target files: %w", err)
	}
	return files, nil
}
