// SPDX-License-Identifier: MIT

package glsl

// Qualifier keywords marking externally bindable declarations.
const (
	KeywordUniform   = "uniform"
	KeywordAttribute = "attribute"
)

// Extract scans src for declarations introduced by the qualifier
// keyword and appends one entry per declared leaf to dst, returning the
// extended slice. A builtin-typed declaration contributes the bare
// variable names; a struct-typed declaration contributes
// "name.fieldPath" for every flattened field of the struct, per
// variable, in declaration order. Duplicates are kept: the result is
// the scan order, not a set.
//
// A declaration whose type is neither builtin nor in structs is skipped
// up to its terminating ';'. With no keyword occurrences at all, dst is
// returned unchanged.
func Extract(keyword, src string, types *TypeSet, structs StructTable, dst []string) []string {
	for offs := 0; offs < len(src); {
		at := indexKeyword(src, offs, keyword)
		if at < 0 {
			break
		}
		offs = skipSpace(src, at+len(keyword))
		if offs >= len(src) {
			break
		}

		typ, next := nextToken(src, offs)
		offs = next
		var inner []string
		isStruct := false
		if !types.IsBuiltin(typ) {
			fields, ok := structs[typ]
			if !ok {
				offs = skipDeclaration(src, offs)
				continue
			}
			inner, isStruct = fields, true
		}

		// comma list of variable names
		for offs < len(src) {
			offs = skipSpace(src, offs)
			if offs >= len(src) || src[offs] == ';' {
				break
			}
			var name string
			name, offs = nextToken(src, offs)
			if name == "" {
				// malformed declaration, give up on it
				break
			}
			if isStruct {
				for _, p := range inner {
					dst = append(dst, name+"."+p)
				}
			} else {
				dst = append(dst, name)
			}

			offs = skipSpace(src, offs)
			if offs < len(src) && src[offs] == '[' {
				offs = skipBrackets(src, offs)
				offs = skipSpace(src, offs)
			}
			if offs < len(src) && src[offs] == ',' {
				offs++
				continue
			}
			break
		}
	}
	return dst
}

// skipDeclaration advances past the next ';' so an unresolvable
// declaration is dropped whole instead of being rescanned.
func skipDeclaration(src string, offs int) int {
	for offs < len(src) && src[offs] != ';' {
		offs++
	}
	if offs < len(src) {
		offs++
	}
	return offs
}

// Uniforms returns the flattened names of all uniform declarations in
// src, using the default builtin types.
func Uniforms(src string) []string {
	types := DefaultTypes()
	return Extract(KeywordUniform, src, types, BuildStructTable(src, types), nil)
}

// Attributes returns the flattened names of all attribute declarations
// in src, using the default builtin types.
func Attributes(src string) []string {
	types := DefaultTypes()
	return Extract(KeywordAttribute, src, types, BuildStructTable(src, types), nil)
}
