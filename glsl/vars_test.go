// SPDX-License-Identifier: MIT

package glsl

import (
	"reflect"
	"testing"
)

func TestExtractNoKeyword(t *testing.T) {
	src := "void main() { gl_FragColor = vec4(1.0); }"
	got := Uniforms(src)
	if len(got) != 0 {
		t.Errorf("Uniforms = %v, want none", got)
	}
	if got := Attributes(src); len(got) != 0 {
		t.Errorf("Attributes = %v, want none", got)
	}
}

func TestExtractEmptySource(t *testing.T) {
	if got := Uniforms(""); len(got) != 0 {
		t.Errorf("Uniforms(\"\") = %v, want none", got)
	}
}

func TestExtractBuiltin(t *testing.T) {
	got := Uniforms("uniform float a, b[4];")
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Uniforms = %v, want %v", got, want)
	}
}

func TestExtractVectorAndSampler(t *testing.T) {
	src := `
uniform vec3 lightDir;
uniform mat4 projection;
uniform sampler2D tex;
`
	got := Uniforms(src)
	want := []string{"lightDir", "projection", "tex"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Uniforms = %v, want %v", got, want)
	}
}

func TestExtractStruct(t *testing.T) {
	src := "struct S { float x; float y; }; uniform S test;"
	got := Uniforms(src)
	want := []string{"test.x", "test.y"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Uniforms = %v, want %v", got, want)
	}
}

func TestExtractNestedStruct(t *testing.T) {
	src := `
struct Inner { float a2; };
struct Outer { Inner f; float e; };
uniform Outer test;
`
	got := Uniforms(src)
	want := []string{"test.f.a2", "test.e"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Uniforms = %v, want %v", got, want)
	}
}

func TestExtractStructCommaList(t *testing.T) {
	src := `
struct Inner { float a2; };
struct Outer { Inner f; float e; };
uniform Outer a, b;
`
	got := Uniforms(src)
	want := []string{"a.f.a2", "a.e", "b.f.a2", "b.e"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Uniforms = %v, want %v", got, want)
	}
}

func TestExtractUnknownTypeSkipsDeclaration(t *testing.T) {
	src := "uniform Unknown u; uniform float f;"
	got := Uniforms(src)
	want := []string{"f"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Uniforms = %v, want %v", got, want)
	}
}

func TestExtractKeywordInsideIdentifier(t *testing.T) {
	src := "float myuniform; uniform float x;"
	got := Uniforms(src)
	want := []string{"x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Uniforms = %v, want %v", got, want)
	}
}

func TestExtractAttributes(t *testing.T) {
	src := `
attribute vec3 position;
attribute vec2 texcoord;
uniform mat4 mvp;
`
	if got, want := Attributes(src), []string{"position", "texcoord"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Attributes = %v, want %v", got, want)
	}
	if got, want := Uniforms(src), []string{"mvp"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Uniforms = %v, want %v", got, want)
	}
}

func TestExtractAppendsToDst(t *testing.T) {
	types := DefaultTypes()
	dst := []string{"existing"}
	dst = Extract(KeywordUniform, "uniform float a;", types, nil, dst)
	want := []string{"existing", "a"}
	if !reflect.DeepEqual(dst, want) {
		t.Errorf("Extract = %v, want %v", dst, want)
	}
}

func TestExtractDuplicatesKept(t *testing.T) {
	// two compilation stages declaring the same uniform
	types := DefaultTypes()
	var dst []string
	dst = Extract(KeywordUniform, "uniform float shared;", types, nil, dst)
	dst = Extract(KeywordUniform, "uniform float shared;", types, nil, dst)
	want := []string{"shared", "shared"}
	if !reflect.DeepEqual(dst, want) {
		t.Errorf("Extract x2 = %v, want %v", dst, want)
	}
}

func TestExtractArrayThenComma(t *testing.T) {
	got := Uniforms("uniform float a[2], b;")
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Uniforms = %v, want %v", got, want)
	}
}

func TestExtractWithComments(t *testing.T) {
	// the keyword search is a raw text scan: a declaration inside a
	// comment is still picked up
	src := `
// uniform float commentedOut;
uniform /* block */ float real;
`
	got := Uniforms(src)
	want := []string{"commentedOut", "real"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Uniforms = %v, want %v", got, want)
	}
}

func TestExtractRegisteredType(t *testing.T) {
	types := DefaultTypes()
	types.Register("texture", true)
	src := "uniform texture2D tex;"
	got := Extract(KeywordUniform, src, types, nil, nil)
	want := []string{"tex"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtractFullShader(t *testing.T) {
	src := `
#version 120

struct var3_t { int a2; int b2; int c2; };
struct var_t { int a; int b; int c; var3_t f; };
struct var2_t { var_t other; int d; int e; };

uniform var2_t test;
uniform mat4 mvp;
attribute vec3 position;

void main() {
	gl_Position = mvp * vec4(position, 1.0);
}
`
	gotU := Uniforms(src)
	wantU := []string{
		"test.other.a", "test.other.b", "test.other.c",
		"test.other.f.a2", "test.other.f.b2", "test.other.f.c2",
		"test.d", "test.e",
		"mvp",
	}
	if !reflect.DeepEqual(gotU, wantU) {
		t.Errorf("Uniforms = %v, want %v", gotU, wantU)
	}
	if gotA, wantA := Attributes(src), []string{"position"}; !reflect.DeepEqual(gotA, wantA) {
		t.Errorf("Attributes = %v, want %v", gotA, wantA)
	}
}
