package poa

import "testing"

func foldReads(t *testing.T, reads []string, cfg ScoringConfig) *Graph {
	t.Helper()
	g := NewGraph()
	for _, r := range reads {
		if _, err := g.AddRead(r, cfg); err != nil {
			t.Fatalf("AddRead(%q) failed: %v", r, err)
		}
	}
	return g
}

func TestConsensus_SingleRead(t *testing.T) {
	g := foldReads(t, []string{"GGG"}, DefaultScoringConfig(GlobalMode))

	seq, path := g.Consensus(GlobalMode, 0)
	if seq != "GGG" {
		t.Fatalf("consensus = %q, want GGG", seq)
	}
	if len(path) != 3 {
		t.Fatalf("path length = %d, want 3", len(path))
	}
	for _, v := range path {
		if g.Reads(v) != 1 {
			t.Errorf("vertex %d reads = %d, want 1", v, g.Reads(v))
		}
	}
}

func TestConsensus_ExtraAtHeadIsIgnored(t *testing.T) {
	g := foldReads(t, []string{"GGG", "TGGG"}, DefaultScoringConfig(GlobalMode))

	seq, _ := g.Consensus(GlobalMode, 0)
	if seq != "GGG" {
		t.Fatalf("consensus = %q, want GGG", seq)
	}
	if g.NumVertices() != 2+4 {
		t.Fatalf("NumVertices() = %d, want 6 (2 sentinels + G,G,G,T)", g.NumVertices())
	}
}

func TestConsensus_MismatchAtHeadDropsBase(t *testing.T) {
	g := foldReads(t, []string{"GGG", "TGG"}, DefaultScoringConfig(GlobalMode))

	seq, _ := g.Consensus(GlobalMode, 0)
	if seq != "GG" {
		t.Fatalf("consensus = %q, want GG", seq)
	}
}

func TestConsensus_LeadingDeletion(t *testing.T) {
	g := foldReads(t, []string{"GAT", "AT"}, DefaultScoringConfig(GlobalMode))

	seq, _ := g.Consensus(GlobalMode, 0)
	if seq != "AT" {
		t.Fatalf("consensus = %q, want AT", seq)
	}
}

func TestConsensus_SemiglobalShortRead(t *testing.T) {
	g := foldReads(t, []string{"GGTGG", "GGTGG", "T"}, DefaultScoringConfig(SemiglobalMode))

	seq, _ := g.Consensus(SemiglobalMode, 0)
	if seq != "GGTGG" {
		t.Fatalf("consensus = %q, want GGTGG", seq)
	}
}

func TestConsensus_Tiling(t *testing.T) {
	reads := []string{"GGGGAAAA", "AAAATTTT", "TTTTCCCC", "CCCCAGGA"}
	g := foldReads(t, reads, DefaultScoringConfig(SemiglobalMode))

	seq, _ := g.Consensus(SemiglobalMode, 0)
	want := "GGGGAAAATTTTCCCCAGGA"
	if seq != want {
		t.Fatalf("consensus = %q, want %q", seq, want)
	}
}

func TestConsensus_UndefinedOnEmptyGraph(t *testing.T) {
	g := NewGraph()
	seq, path := g.Consensus(GlobalMode, 0)
	if seq != "" || path != nil {
		t.Fatalf("Consensus() on empty graph = (%q, %v), want (\"\", nil)", seq, path)
	}
}

func TestConsensus_IdenticalReadsShareVertices(t *testing.T) {
	g := foldReads(t, []string{"GATTACA", "GATTACA", "GATTACA"}, DefaultScoringConfig(GlobalMode))

	seq, path := g.Consensus(GlobalMode, 0)
	if seq != "GATTACA" {
		t.Fatalf("consensus = %q, want GATTACA", seq)
	}
	for _, v := range path {
		if g.Reads(v) != 3 {
			t.Errorf("vertex %d reads = %d, want 3", v, g.Reads(v))
		}
	}
	if g.NumVertices() != 2+7 {
		t.Fatalf("NumVertices() = %d, want 9", g.NumVertices())
	}
}

func TestConsensus_DeterminismAcrossRuns(t *testing.T) {
	reads := []string{
		"GATTACAGATTACAGATTACAGATTACAGATTACAGATTACAGATTACAGATTACA",
		"GATTACAGATTACCGATTACAGATTACAGATTACAGATTACAGATTACTGATTACA",
	}
	cfg := DefaultScoringConfig(GlobalMode)

	var want string
	for i := 0; i < 100; i++ {
		g := foldReads(t, reads, cfg)
		seq, _ := g.Consensus(GlobalMode, 0)
		if i == 0 {
			want = seq
			continue
		}
		if seq != want {
			t.Fatalf("run %d: consensus = %q, want %q (nondeterministic)", i, seq, want)
		}
	}
}
