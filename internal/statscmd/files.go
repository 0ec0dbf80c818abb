package statscmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// resolveFiles validates explicitly named annotation files or, with no
// arguments, returns every .xml file in the working directory.
func resolveFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if _, err := os.Stat(arg); err != nil {
			return nil, fmt.Errorf("file not found by path: %s", arg)
		}
		if ext := filepath.Ext(arg); strings.ToLower(ext) != ".xml" {
			return nil, fmt.Errorf("extension must be .xml, not %s", ext)
		}
		files = append(files, arg)
	}

	if len(files) == 0 {
		matches, err := filepath.Glob("*.xml")
		if err != nil {
			return nil, err
		}
		files = matches
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no annotation files: name them as arguments or run in a directory with .xml files")
	}

	return files, nil
}

func stemOf(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
