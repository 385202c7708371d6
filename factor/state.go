// SPDX-License-Identifier: MIT

package factor

// State is the validity level of a Cache.
type State int

const (
	// StateEmpty holds no factorization.
	StateEmpty State = iota
	// StateSymbolic holds a valid symbolic analysis; numeric values are stale or absent.
	StateSymbolic
	// StateNumeric holds a current symbolic and numeric factorization.
	StateNumeric
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateSymbolic:
		return "symbolic"
	case StateNumeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// Stats counts backend work done by a Cache.
type Stats struct {
	Analyses       int // successful AnalyzePattern calls
	Factorizations int // successful FactorizeNumeric calls
	Hits           int // Get calls served from the numeric state
	Failures       int // Get calls that returned an error
}
