package catalog

import (
	mbkerror "github.com/msto63/mBK/foundation/core/error"
	"github.com/msto63/mBK/foundation/utils/filex"
)

// loadLines reads the catalog file into raw lines, preserving the
// original whitespace of each line. Trimming happens during tokenizing.
func loadLines(path string) ([]string, error) {
	if !filex.Exists(path) {
		return nil, mbkerror.New("beer catalog file not found").
			WithCode(mbkerror.CodeResourceNotFound).
			WithDetail("path", path).
			WithOperation("loadLines")
	}

	lines, err := filex.ReadLines(path)
	if err != nil {
		return nil, mbkerror.Wrap(err, "failed to read beer catalog file").
			WithCode(mbkerror.CodeReadFailure).
			WithDetail("path", path).
			WithOperation("loadLines")
	}

	return lines, nil
}
