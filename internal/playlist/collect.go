package playlist

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/cockroachdb/errors"
)

// Collect expands paths into playable files. Files are kept in argument order
// when accepted by keep; directories are walked recursively and their
// matching files appended in lexical order. Unreadable paths are skipped and
// reported in the returned error, which may accompany a non-empty result.
func Collect(paths []string, keep func(path string) bool) ([]string, error) {
	var (
		result []string
		errs   error
	)
	for _, path := range paths {
		fi, err := os.Stat(path)
		if err != nil {
			errs = errors.CombineErrors(errs, errors.Wrapf(err, "stat %s", path))
			continue
		}
		if !fi.IsDir() {
			if keep(path) {
				result = append(result, path)
			}
			continue
		}

		found, err := walkDir(path, keep)
		if err != nil {
			errs = errors.CombineErrors(errs, err)
		}
		result = append(result, found...)
	}
	return result, errs
}

func walkDir(root string, keep func(string) bool) ([]string, error) {
	var (
		found []string
		errs  error
	)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = errors.CombineErrors(errs, errors.Wrapf(err, "walk %s", path))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && keep(path) {
			found = append(found, path)
		}
		return nil
	})
	sort.Strings(found)
	return found, errors.CombineErrors(errs, err)
}
