package planner

import (
	"errors"
	"fmt"
)

// ZoneIndexError reports an allocation index with no corresponding zone:
// the declared subnet count exceeds the zones the region offers.
type ZoneIndexError struct {
	Index int
	Zones int
}

func (e *ZoneIndexError) Error() string {
	return fmt.Sprintf("subnet index %d has no zone: the region only offers %d zones", e.Index, e.Zones)
}

// IsZoneIndexOutOfRange reports whether err is a ZoneIndexError.
func IsZoneIndexOutOfRange(err error) bool {
	var zie *ZoneIndexError
	return errors.As(err, &zie)
}
