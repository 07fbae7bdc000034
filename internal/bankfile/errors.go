package bankfile

import "fmt"

// FormatError reports a bank file that failed import validation: a top-level
// value that is not a JSON array, or an element missing a required key.
// A FormatError rejects the import wholesale; no partial load happens.
type FormatError struct {
	Index int // element index, -1 for file-level failures
	Err   error
}

func (e *FormatError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("bank file element %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("bank file: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
