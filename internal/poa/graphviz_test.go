package poa

import (
	"strings"
	"testing"
)

func stripNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", "")
}

func TestToGraphViz_SingleRead(t *testing.T) {
	g := foldReads(t, []string{"GGG"}, DefaultScoringConfig(GlobalMode))

	got := stripNewlines(g.ToGraphViz(0))
	want := `digraph G {` +
		`0[shape=Mrecord, label="{ ^ | 0 }"];` +
		`1[shape=Mrecord, label="{ $ | 0 }"];` +
		`2[shape=Mrecord, label="{ G | 1 }"];` +
		`3[shape=Mrecord, label="{ G | 1 }"];` +
		`4[shape=Mrecord, label="{ G | 1 }"];` +
		`0->2 ;` +
		`2->3 ;` +
		`3->4 ;` +
		`4->1 ;` +
		`}`
	if got != want {
		t.Fatalf("ToGraphViz() =\n%s\nwant\n%s", got, want)
	}
}
