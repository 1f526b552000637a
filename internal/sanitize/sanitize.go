// Package sanitize strips markup from user-supplied text before it is
// used in queries or echoed back. It is applied on both the client and
// the server; the transform is idempotent so double application is safe.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes all HTML elements and attributes from s, returning
// trimmed plain text. Surviving entities stay entity-encoded; decoding
// them would let encoded markup re-emerge as live markup on a second
// pass.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
