package mirror

import "github.com/fwojciec/docmirror"

// ValidateDiscoveryThreshold rejects a discovery result smaller than minPages.
// A sudden collapse in the discovered page count almost always means the
// sitemap schema or hosting changed, not that the documentation shrank;
// accepting it would wipe most of the manifest on the next save.
func ValidateDiscoveryThreshold(pages []string, minPages int) error {
	if len(pages) < minPages {
		return docmirror.Errorf(docmirror.EUNPROCESSABLE,
			"discovered only %d pages (minimum %d); refusing result", len(pages), minPages)
	}
	return nil
}
