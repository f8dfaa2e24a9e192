package core

import (
	"strings"
	"testing"
)

// lines joins board rows with newlines.
func lines(rows ...string) string {
	return strings.Join(rows, "\n")
}

func mustBoard(t *testing.T, ground, content string) *Board {
	t.Helper()
	b, err := ParseLayers(ground, content)
	if err != nil {
		t.Fatalf("ParseLayers() error: %v", err)
	}
	return b
}

// transpose swaps rows and columns of a layer.
func transpose(layer string) string {
	rows := strings.Split(layer, "\n")
	out := make([]string, len([]rune(rows[0])))
	for c := range out {
		var sb strings.Builder
		for _, row := range rows {
			sb.WriteRune([]rune(row)[c])
		}
		out[c] = sb.String()
	}
	return strings.Join(out, "\n")
}

// mirror reverses every row of a layer.
func mirror(layer string) string {
	rows := strings.Split(layer, "\n")
	for i, row := range rows {
		rs := []rune(row)
		for l, r := 0, len(rs)-1; l < r; l, r = l+1, r-1 {
			rs[l], rs[r] = rs[r], rs[l]
		}
		rows[i] = string(rs)
	}
	return strings.Join(rows, "\n")
}

func pieces(b *Board) int {
	return b.Count(OccupantBox) + b.Count(OccupantTrophy)
}
