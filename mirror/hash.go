package mirror

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Hash returns the content fingerprint used for change detection.
func Hash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
