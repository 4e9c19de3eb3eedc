package utils

import "github.com/rivo/uniseg"

// ClusterWidth returns the screen cells a grapheme cluster occupies.
// A tab takes tabWidth cells.
func ClusterWidth(cluster string, width, tabWidth int) int {
	if cluster == "\t" {
		return tabWidth
	}
	return width
}

// VisualColumn computes the screen column of the first runeIndex runes of
// line, counting wide characters, grapheme clusters and tabs.
func VisualColumn(line []byte, runeIndex, tabWidth int) int {
	if runeIndex <= 0 {
		return 0
	}
	visualWidth := 0
	currentRuneIndex := 0
	gr := uniseg.NewGraphemes(string(line))
	for gr.Next() {
		if currentRuneIndex >= runeIndex {
			break
		}
		visualWidth += ClusterWidth(gr.Str(), gr.Width(), tabWidth)
		currentRuneIndex += len(gr.Runes())
	}
	return visualWidth
}
