package cidr

import (
	"errors"
	"fmt"
)

// AllocationOverflowError reports an index that cannot be represented in
// the requested number of extension bits, or a child prefix that would
// exceed the address width.
type AllocationOverflowError struct {
	Index uint
	Max   uint
	// PrefixLen is set when the child prefix length exceeds 32 bits.
	PrefixLen int
}

func (e *AllocationOverflowError) Error() string {
	if e.PrefixLen > addressWidth {
		return fmt.Sprintf("allocation overflow: child prefix /%d exceeds the %d-bit address width", e.PrefixLen, addressWidth)
	}
	return fmt.Sprintf("allocation overflow: index %d exceeds the %d subnets the extension bits allow", e.Index, e.Max)
}

// IsAllocationOverflow reports whether err is an AllocationOverflowError.
func IsAllocationOverflow(err error) bool {
	var aoe *AllocationOverflowError
	return errors.As(err, &aoe)
}
