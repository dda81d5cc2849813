package domain

import "strings"

// ProfileEntry is one installed entry reported by the package oracle.
type ProfileEntry struct {
	// Index is the oracle's positional identifier, used for removal.
	Index string

	// Descriptor is the remainder of the reported line, e.g.
	// "nixpkgs#cowsay-3.04".
	Descriptor string
}

// Matches reports whether the entry belongs to the given package. The oracle
// reports entries as "<index> nixpkgs#<name>-<version>", so matching is a
// substring check on the default reference.
func (e ProfileEntry) Matches(pkg string) bool {
	return strings.Contains(e.Descriptor, DefaultReference(pkg))
}
