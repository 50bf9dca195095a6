// jglsl-info prints the externally addressable variable names of GLSL
// shader files without touching a GPU: every uniform and attribute
// path the binding layer would resolve, struct members flattened to
// their dotted form.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/DimitrisVlachos/jglsl-shader/glsl"
)

var printStructs = flag.Bool("structs", false, "also print the struct table per file")

func main() {
	log.SetFlags(0)
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: jglsl-info [-structs] shader...")
		os.Exit(2)
	}
	for _, name := range flag.Args() {
		data, err := os.ReadFile(name)
		if err != nil {
			log.Fatal(err)
		}
		dump(name, string(data))
	}
}

func dump(name, src string) {
	fmt.Printf("%s:\n", name)
	types := glsl.DefaultTypes()
	table := glsl.BuildStructTable(src, types)
	if *printStructs {
		structNames := make([]string, 0, len(table))
		for n := range table {
			structNames = append(structNames, n)
		}
		sort.Strings(structNames)
		for _, n := range structNames {
			fmt.Printf("  struct %s: %v\n", n, table[n])
		}
	}
	for _, path := range glsl.Extract(glsl.KeywordUniform, src, types, table, nil) {
		fmt.Printf("  uniform   %s\n", path)
	}
	for _, path := range glsl.Extract(glsl.KeywordAttribute, src, types, table, nil) {
		fmt.Printf("  attribute %s\n", path)
	}
}
