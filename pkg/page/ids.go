package page

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// newID builds a prefixed identifier from a millisecond timestamp plus a
// random suffix. Ids must be unique across the whole document, not just one
// container, because element lookup works by id alone.
func newID(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}

// NewSectionID returns a fresh section id.
func NewSectionID() string { return newID("sec") }

// NewColumnID returns a fresh column id.
func NewColumnID() string { return newID("col") }

// NewElementID returns a fresh element id.
func NewElementID() string { return newID("el") }

// NewTabID returns a fresh tab id.
func NewTabID() string { return newID("tab") }
