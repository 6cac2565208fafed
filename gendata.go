// gendata.go exposes pruning-table generation: sizing a blob, generating it
// into a caller-provided buffer, and logging the contents of an existing
// blob. The blob layout is defined in the prune subpackage.

package goh48

import (
	"github.com/rs/zerolog"

	"github.com/cubelab/goh48/prune"
)

// logger is used by table generation and solving. Replace it with SetLogger;
// the default discards everything.
var logger = zerolog.Nop()

// SetLogger installs the logger used by this package.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// DataSize returns the size in bytes of the table blob that GenData produces
// for the given solver and options. The simple and optimal solvers use no
// tables and report zero.
func DataSize(solverName, options string) (int64, error) {
	switch solverName {
	case "simple", "optimal":
		return 0, nil
	case "h48":
		h, k, _, err := prune.ParseOptions(options)
		if err != nil {
			return 0, err
		}
		return prune.DataSize(h, k)
	}
	return 0, ErrUnknownSolver
}

// GenData generates the pruning tables for the given solver into buf and
// returns the number of bytes written. The buffer must hold at least
// DataSize bytes. Options follow the "<h>;<k>;<max_depth>" grammar.
func GenData(solverName, options string, buf []byte) (int64, error) {
	switch solverName {
	case "simple", "optimal":
		return 0, nil
	case "h48":
		h, k, maxdepth, err := prune.ParseOptions(options)
		if err != nil {
			return 0, err
		}
		size, err := prune.DataSize(h, k)
		if err != nil {
			return 0, err
		}
		if int64(len(buf)) < size {
			return 0, ErrBufferTooSmall
		}
		tables, err := prune.Generate(prune.GenArg{
			H: h, K: k, MaxDepth: maxdepth, Log: logger,
		})
		if err != nil {
			return 0, err
		}
		return tables.Marshal(buf)
	}
	return 0, ErrUnknownSolver
}

// DataInfo logs the header, parameters and value distribution of every
// block in a table blob.
func DataInfo(data []byte) error {
	return prune.DataInfo(data, logger)
}
