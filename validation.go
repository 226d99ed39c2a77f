package taxreport

import (
	"errors"
	"fmt"
)

// ErrOversold reports a sell matched against insufficient buy inventory.
var ErrOversold = errors.New("sell exceeds available buy inventory")

// ValidationError reports the failure of one of the report's internal
// consistency checks. The run aborts: no report is produced.
type ValidationError struct {
	Check  string // "row coverage" or "monetary"
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s checksum failed: %s", e.Check, e.Detail)
}
