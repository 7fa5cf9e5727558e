package libdiff

import (
	"fmt"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// MakeTextPatch returns a textual patch turning from into to.
func MakeTextPatch(from, to string) string {
	dmp := diffpatch.New()
	return dmp.PatchToText(dmp.PatchMake(from, to))
}

// ApplyTextPatch applies a patch made by MakeTextPatch. Every hunk must
// apply.
func ApplyTextPatch(text, patch string) (string, error) {
	dmp := diffpatch.New()
	patches, err := dmp.PatchFromText(patch)
	if err != nil {
		return "", fmt.Errorf("invalid patch: %w", err)
	}
	res, applied := dmp.PatchApply(patches, text)
	for i, ok := range applied {
		if !ok {
			return "", fmt.Errorf("hunk %d does not apply", i+1)
		}
	}
	return res, nil
}
