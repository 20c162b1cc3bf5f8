package model

import (
	"strconv"
	"time"
)

// NewID returns a timestamp-derived decimal string id. Collisions are
// possible within the same millisecond; the upstream data model accepts
// that and callers do not retry.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
