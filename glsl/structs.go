// SPDX-License-Identifier: MIT

package glsl

const keywordStruct = "struct"

// StructTable maps a struct name to its ordered, fully flattened field
// paths. A field of a previously defined struct type contributes one
// path per inner field, prefixed with the field's own name, so nesting
// is resolved when the table is built, not when it is consulted.
type StructTable map[string][]string

// BuildStructTable scans src once for struct definitions. Structs may
// reference structs defined earlier in the source; a forward reference
// is not resolved and the referencing field falls back to its type
// token (see structFields). A struct whose body never closes is
// dropped. The table is built from scratch on every call.
func BuildStructTable(src string, types *TypeSet) StructTable {
	table := make(StructTable)
	for offs := 0; offs < len(src); {
		at := indexKeyword(src, offs, keywordStruct)
		if at < 0 {
			break
		}
		offs = at + len(keywordStruct)

		nameAt := skipSpace(src, offs)
		if nameAt >= len(src) {
			break
		}
		name, afterName := nextToken(src, nameAt)
		braceAt := skipSpace(src, afterName)
		if braceAt >= len(src) {
			break
		}
		if src[braceAt] != '{' {
			// not a definition (forward declaration, constructor use);
			// resume the search right after the keyword
			continue
		}

		fields, end, closed := structFields(src, braceAt+1, types, table)
		if closed && name != "" {
			table[name] = fields
		}
		offs = end + 2
	}
	return table
}

// structFields reads struct body fields starting just inside the '{'.
// It returns the flattened paths, the offset of the terminating '}' (or
// the buffer end), and whether the body actually closed.
func structFields(src string, offs int, types *TypeSet, table StructTable) ([]string, int, bool) {
	var fields []string
	for offs < len(src) {
		offs = skipSpace(src, offs)
		if offs >= len(src) {
			break
		}
		if src[offs] == '}' {
			return fields, offs, true
		}

		typ, next := nextToken(src, offs)
		if typ == "" {
			// stray delimiter, step over it so the scan keeps moving
			offs = next + 1
			continue
		}
		offs = next
		switch inner, known := table[typ]; {
		case types.IsBuiltin(typ):
			offs = skipSpace(src, offs)
			if offs >= len(src) {
				return fields, offs, false
			}
			var name string
			name, offs = nextToken(src, offs)
			fields = append(fields, name)
		case known:
			offs = skipSpace(src, offs)
			if offs >= len(src) {
				return fields, offs, false
			}
			var name string
			name, offs = nextToken(src, offs)
			for _, p := range inner {
				fields = append(fields, name+"."+p)
			}
		default:
			// unknown type, e.g. a forward reference: keep the type
			// token itself as the field path rather than failing
			fields = append(fields, typ)
		}

		offs = skipSpace(src, offs)
		if offs >= len(src) {
			break
		}
		switch src[offs] {
		case ',', ';':
			offs++
		case '[':
			offs = skipBrackets(src, offs)
		}
	}
	return fields, offs, false
}

// skipBrackets advances past one "[...]" group. No nesting: the first
// ']' closes the group.
func skipBrackets(src string, offs int) int {
	offs++
	for offs < len(src) && src[offs] != ']' {
		offs++
	}
	if offs < len(src) {
		offs++
	}
	return offs
}
