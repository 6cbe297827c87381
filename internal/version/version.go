// Package version is the registry of bytecode versions the toolchain
// understands.
package version

import (
	"fmt"
	"strings"
)

// Size is the number of components in a bytecode version.
const Size = 4

// Version identifies a bytecode file format revision.
type Version [Size]byte

var (
	// Current is the version written into newly generated artifacts.
	Current = Version{0, 0, 0, 4}

	// Minimum is the oldest artifact version the VM still loads.
	Minimum = Version{0, 0, 0, 2}
)

// Format renders v as dotted decimal, e.g. "0.0.0.4".
func Format(v Version) string {
	parts := make([]string, Size)
	for i, b := range v {
		parts[i] = fmt.Sprintf("%d", b)
	}
	return strings.Join(parts, ".")
}

// String implements fmt.Stringer.
func (v Version) String() string {
	return Format(v)
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to
// or after other.
func (v Version) Compare(other Version) int {
	for i := range v {
		switch {
		case v[i] < other[i]:
			return -1
		case v[i] > other[i]:
			return 1
		}
	}
	return 0
}

// Supported reports whether v lies within [Minimum, Current].
func Supported(v Version) bool {
	return v.Compare(Minimum) >= 0 && v.Compare(Current) <= 0
}
