// Package sample holds the bilingual example paragraph offered by both
// front-ends.
package sample

import _ "embed"

//go:embed example.txt
var example string

// Text returns the example paragraph.
func Text() string {
	return example
}
