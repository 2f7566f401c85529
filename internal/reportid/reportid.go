// Package reportid stamps each analysis run with an opaque identifier so
// that external tooling (CI logs, a `--format json` consumer, repeated
// runs over the same file) can correlate one run's output with another
// without the core caring what that correlation is used for.
package reportid

import "github.com/google/uuid"

// RunID is a UUID identifying one call to tonto.Analyze.
type RunID string

// New returns a fresh, randomly generated RunID.
func New() RunID {
	return RunID(uuid.New().String())
}

func (id RunID) String() string { return string(id) }
