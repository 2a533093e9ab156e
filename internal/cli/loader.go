package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/roach88/enumconform/internal/manifest"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoFiles     = "E003" // No manifest files found
	ErrCodeLoadFailed  = "E004" // Manifest load failed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeStoreFailed = "E006" // History database error
	ErrCodeBadFilter   = "E007" // Invalid --filter pattern
	ErrCodeBadSeed     = "E008" // Invalid seed

	ErrCodeCheckFailed = "E_CHECK_FAILED" // One or more enumerations failed
)

// LoadedEnum is a manifest enumeration together with the file it came from.
type LoadedEnum struct {
	Source string
	Enum   manifest.Enum
}

// LoadEnums loads every manifest under paths and returns the enumerations
// whose name matches filter (a glob; empty matches everything).
// Paths may be files or directories; directories are walked.
//
// Errors are ExitErrors carrying ExitCommandError.
func LoadEnums(paths []string, filter string) ([]LoadedEnum, error) {
	if filter != "" {
		if _, err := filepath.Match(filter, ""); err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("[%s] invalid filter pattern %q", ErrCodeBadFilter, filter), err)
		}
	}

	files, err := findManifestFiles(paths)
	if err != nil {
		return nil, err
	}

	var loaded []LoadedEnum
	for _, file := range files {
		m, err := manifest.Load(file)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("[%s] failed to load manifest", ErrCodeLoadFailed), err)
		}
		for _, e := range m.Enums {
			if filter != "" {
				if ok, _ := filepath.Match(filter, e.Name); !ok {
					continue
				}
			}
			loaded = append(loaded, LoadedEnum{Source: file, Enum: e})
		}
	}
	return loaded, nil
}

// findManifestFiles expands paths into manifest files, in argument order.
func findManifestFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			return nil, NewExitError(ExitCommandError, fmt.Sprintf("[%s] path not found: %s", ErrCodeNotFound, path))
		}
		if err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("[%s] error accessing %s", ErrCodeNotFound, path), err)
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		found, err := manifest.Find(path)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("[%s] error scanning %s", ErrCodeScanError, path), err)
		}
		files = append(files, found...)
	}

	if len(files) == 0 {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("[%s] no manifest files found in %v", ErrCodeNoFiles, paths))
	}
	return files, nil
}
