/*
Package format provides convenience functions for formatting.
*/
package format

import (
	"time"
)

// Duration is similar to the time.Duration.String method from the standard
// library but shows only 3 digits of precision when the duration is less than
// 1 minute, and whole seconds beyond that.
func Duration(duration time.Duration) string {
	return formatDuration(duration)
}
