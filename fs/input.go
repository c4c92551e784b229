// Package fs provides file-system access for card list inputs and outputs.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/cardlist"
)

// ResolveInputs expands paths into the list of HTML documents to parse.
// A directory contributes every *.html file below it, in sorted order.
// A file is used as given. Paths are processed in argument order.
// Any missing path is an ENOTFOUND error.
func ResolveInputs(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return nil, cardlist.Errorf(cardlist.EINVALID, "no HTML files specified")
	}

	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if os.IsNotExist(err) {
			return nil, cardlist.Errorf(cardlist.ENOTFOUND, "input %q not found", p)
		} else if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		found, err := FindHTMLFiles(p)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}

	if len(files) == 0 {
		return nil, cardlist.Errorf(cardlist.ENOTFOUND, "no HTML files found in %s", strings.Join(paths, ", "))
	}
	return files, nil
}

// FindHTMLFiles returns every *.html file below dir sorted by path.
func FindHTMLFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".html") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// DefaultOutputPath returns the flat CSV path used when none is given:
// all_cards.csv next to the working directory when any input is a
// directory, otherwise the first input with its extension replaced by .csv.
func DefaultOutputPath(paths []string) string {
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			return "all_cards.csv"
		}
	}
	if len(paths) == 0 {
		return "all_cards.csv"
	}
	return trimExt(paths[0]) + ".csv"
}

// ComponentsPath returns the component CSV path derived from a flat CSV path.
func ComponentsPath(flatPath string) string {
	return trimExt(flatPath) + "_components.csv"
}

func trimExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}
