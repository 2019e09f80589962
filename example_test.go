package mdsnap_test

import (
	"fmt"

	mdsnap "github.com/alnah/go-mdsnap"
)

// Example demonstrates removing a pipe table from a document.
func Example() {
	result := mdsnap.Extract("Intro.\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")

	fmt.Print(result.CleanedText)
	fmt.Println("tables removed:", result.TableCount())
	// Output:
	// Intro.
	// tables removed: 1
}

// Example_codeBlocks demonstrates that removed fragments keep their
// delimiters verbatim.
func Example_codeBlocks() {
	result := mdsnap.Extract("Before.\n\n```go\nfmt.Println(1)\n```\n\nAfter.\n")

	fmt.Println(result.CodeBlocks[0])
	// Output:
	// ```go
	// fmt.Println(1)
	// ```
}

// Example_extractor demonstrates tuning the blank-line bound.
func Example_extractor() {
	e := mdsnap.NewExtractor(mdsnap.WithMaxBlankLines(0))

	result := e.Extract("a\n\n\n\nb\n")

	fmt.Print(result.CleanedText)
	// Output:
	// a
	// b
}
