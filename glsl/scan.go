// SPDX-License-Identifier: MIT

// Package glsl extracts the externally addressable variable names
// (uniforms and attributes, struct members included) from GLSL source
// text. Struct-typed declarations are flattened into dotted paths, so a
// member of a nested struct uniform is reported the same way a GL
// reflection query addresses it, e.g. "test.other.f.a2".
//
// The package does not validate the source, build an AST, or run the
// preprocessor. Malformed input never fails a scan; it just yields
// fewer names.
package glsl

import "strings"

// skipSpace returns the offset of the first byte at or after offs that
// is neither ASCII whitespace nor inside a comment. Runs of mixed
// whitespace and comments are consumed in full. Line comments end at
// '\n' or '\r', block comments at the closing "*/"; an unterminated
// block comment consumes the rest of the buffer.
func skipSpace(src string, offs int) int {
	for offs < len(src) {
		for offs < len(src) && isSpace(src[offs]) {
			offs++
		}
		if offs+1 >= len(src) || src[offs] != '/' {
			break
		}
		switch src[offs+1] {
		case '/':
			offs += 2
			for offs < len(src) && src[offs] != '\n' && src[offs] != '\r' {
				offs++
			}
		case '*':
			offs += 2
			for offs+1 < len(src) && !(src[offs] == '*' && src[offs+1] == '/') {
				offs++
			}
			if offs+1 < len(src) {
				offs += 2
			} else {
				offs = len(src)
			}
		default:
			// a lone '/' is significant to the caller
			return offs
		}
	}
	return offs
}

// nextToken collects bytes from offs until a delimiter or the end of the
// buffer and returns the collected text together with the offset of the
// delimiter. The delimiter is not consumed.
func nextToken(src string, offs int) (string, int) {
	start := offs
	for offs < len(src) && !isDelim(src[offs]) {
		offs++
	}
	return src[start:offs], offs
}

// indexKeyword returns the offset of the next occurrence of kw at or
// after offs that is not embedded in a longer identifier, or -1. It is
// still a raw text search: a keyword inside a comment or a string will
// match.
func indexKeyword(src string, offs int, kw string) int {
	for offs < len(src) {
		i := strings.Index(src[offs:], kw)
		if i < 0 {
			return -1
		}
		at := offs + i
		end := at + len(kw)
		if (at == 0 || !isIdentByte(src[at-1])) &&
			(end >= len(src) || !isIdentByte(src[end])) {
			return at
		}
		offs = at + 1
	}
	return -1
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDelim(c byte) bool {
	switch c {
	case ';', '{', '}', ',', '/', '[':
		return true
	}
	return isSpace(c)
}

func isIdentByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
