package assets

import "fmt"

// ValidateAssetName checks that a template or style name is a bare name.
// Loaders append the directory and extension themselves, so the name must
// not carry path separators, an extension, or traversal sequences.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	for _, r := range name {
		switch r {
		case '/', '\\', '.':
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}
