// SPDX-License-Identifier: MIT

package glsl

import (
	"reflect"
	"testing"
)

func buildTable(src string) StructTable {
	return BuildStructTable(src, DefaultTypes())
}

func TestBuildStructTableSimple(t *testing.T) {
	table := buildTable("struct S { float x; float y; };")
	want := []string{"x", "y"}
	if got := table["S"]; !reflect.DeepEqual(got, want) {
		t.Errorf("table[S] = %v, want %v", got, want)
	}
}

func TestBuildStructTableEmptySource(t *testing.T) {
	table := buildTable("")
	if len(table) != 0 {
		t.Errorf("table has %d entries, want 0", len(table))
	}
}

func TestBuildStructTableNested(t *testing.T) {
	src := `
struct Inner { float a2; };
struct Outer { Inner f; float e; };
`
	table := buildTable(src)
	want := []string{"f.a2", "e"}
	if got := table["Outer"]; !reflect.DeepEqual(got, want) {
		t.Errorf("table[Outer] = %v, want %v", got, want)
	}
}

func TestBuildStructTableDeeplyNested(t *testing.T) {
	src := `
struct var3_t { int a2; int b2; int c2; };
struct var_t { int a; int b; int c; var3_t f; };
struct var2_t { var_t other; int d; int e; };
`
	table := buildTable(src)
	want := []string{"other.a", "other.b", "other.c", "other.f.a2", "other.f.b2", "other.f.c2", "d", "e"}
	if got := table["var2_t"]; !reflect.DeepEqual(got, want) {
		t.Errorf("table[var2_t] = %v, want %v", got, want)
	}
}

func TestBuildStructTableForwardReference(t *testing.T) {
	// Later, not yet defined: the field falls back to its type token.
	src := `
struct Outer { Later l; float e; };
struct Later { float x; };
`
	table := buildTable(src)
	want := []string{"Later", "e"}
	if got := table["Outer"]; !reflect.DeepEqual(got, want) {
		t.Errorf("table[Outer] = %v, want %v", got, want)
	}
}

func TestBuildStructTableArrayField(t *testing.T) {
	src := "struct S { float a[4]; vec3 b; };"
	table := buildTable(src)
	want := []string{"a", "b"}
	if got := table["S"]; !reflect.DeepEqual(got, want) {
		t.Errorf("table[S] = %v, want %v", got, want)
	}
}

func TestBuildStructTableCommaFields(t *testing.T) {
	src := "struct S { float a, b; int c; };"
	table := buildTable(src)
	// the comma list continues with a bare name, read as an unknown type
	want := []string{"a", "b", "c"}
	if got := table["S"]; !reflect.DeepEqual(got, want) {
		t.Errorf("table[S] = %v, want %v", got, want)
	}
}

func TestBuildStructTableComments(t *testing.T) {
	src := `
struct S { // trailing comment
	/* leading */ float x;
	float /* mid */ y;
};
`
	table := buildTable(src)
	want := []string{"x", "y"}
	if got := table["S"]; !reflect.DeepEqual(got, want) {
		t.Errorf("table[S] = %v, want %v", got, want)
	}
}

func TestBuildStructTableUnterminated(t *testing.T) {
	table := buildTable("struct Foo { float x;")
	if _, ok := table["Foo"]; ok {
		t.Errorf("unterminated struct Foo was committed: %v", table["Foo"])
	}
}

func TestBuildStructTableNoBrace(t *testing.T) {
	// forward declaration, then the real definition
	src := "struct S; struct S { float x; };"
	table := buildTable(src)
	want := []string{"x"}
	if got := table["S"]; !reflect.DeepEqual(got, want) {
		t.Errorf("table[S] = %v, want %v", got, want)
	}
}

func TestBuildStructTableMultiple(t *testing.T) {
	src := "struct A { float x; }; struct B { int y; };"
	table := buildTable(src)
	if got, want := table["A"], []string{"x"}; !reflect.DeepEqual(got, want) {
		t.Errorf("table[A] = %v, want %v", got, want)
	}
	if got, want := table["B"], []string{"y"}; !reflect.DeepEqual(got, want) {
		t.Errorf("table[B] = %v, want %v", got, want)
	}
}

func TestBuildStructTableStrayDelimiter(t *testing.T) {
	// must not loop or crash; the stray brace is stepped over
	table := buildTable("struct S { { float x; };")
	want := []string{"x"}
	if got := table["S"]; !reflect.DeepEqual(got, want) {
		t.Errorf("table[S] = %v, want %v", got, want)
	}
}

func TestBuildStructTableIdempotent(t *testing.T) {
	src := `
struct Inner { float a2; };
struct Outer { Inner f; float e; };
`
	first := buildTable(src)
	second := buildTable(src)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("tables differ between runs: %v vs %v", first, second)
	}
}
