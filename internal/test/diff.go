package test

import (
	"strings"
)

// Diff returns a line diff of "old" and "new" in the usual " ", "-" and "+"
// prefixed form. Removed lines come before the lines that replace them.
func Diff(old string, new string) string {
	a := strings.Split(old, "\n")
	b := strings.Split(new, "\n")

	// common[i][j] is the length of the longest common subsequence of a[i:]
	// and b[j:]
	common := make([][]int, len(a)+1)
	for i := range common {
		common[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				common[i][j] = common[i+1][j+1] + 1
			} else {
				common[i][j] = max(common[i+1][j], common[i][j+1])
			}
		}
	}

	lines := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case i < len(a) && j < len(b) && a[i] == b[j]:
			lines = append(lines, " "+a[i])
			i++
			j++
		case j == len(b) || (i < len(a) && common[i+1][j] >= common[i][j+1]):
			lines = append(lines, "-"+a[i])
			i++
		default:
			lines = append(lines, "+"+b[j])
			j++
		}
	}
	return strings.Join(lines, "\n")
}
