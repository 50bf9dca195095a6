// SPDX-License-Identifier: MIT

package glsl

import "strings"

// TypeSet classifies type names as builtin. Exact entries match by
// equality; fragment entries match anywhere inside the spelling, which
// covers the dimension and precision suffixes of the vector, matrix,
// image and sampler families (vec3, dmat4x2, sampler2DArray, ...).
type TypeSet struct {
	exact     []string
	fragments []string
}

// DefaultTypes returns a TypeSet preloaded with the standard GLSL
// builtin types.
func DefaultTypes() *TypeSet {
	t := &TypeSet{}
	t.Register("int", false)
	t.Register("uint", false)
	t.Register("bool", false)
	t.Register("float", false)
	t.Register("double", false)
	t.Register("atomic_uint", false)
	t.Register("vec", true)
	t.Register("mat", true)
	t.Register("image", true)
	t.Register("sampler", true)
	return t
}

// Register adds a type name. With fragment set, the name matches as a
// substring of a declared type instead of requiring equality.
func (t *TypeSet) Register(name string, fragment bool) {
	if fragment {
		t.fragments = append(t.fragments, name)
	} else {
		t.exact = append(t.exact, name)
	}
}

// IsBuiltin reports whether name is a registered builtin type. A name
// that is not builtin is looked up in the struct table instead.
func (t *TypeSet) IsBuiltin(name string) bool {
	for _, e := range t.exact {
		if name == e {
			return true
		}
	}
	for _, f := range t.fragments {
		if strings.Contains(name, f) {
			return true
		}
	}
	return false
}
