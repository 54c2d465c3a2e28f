package dsl

import (
	"testing"

	"github.com/csirmaz/algebraic-reconciler/pkg/reconcile/core"
)

func mustSequence(t *testing.T, session *core.Session, label string) core.CommandSequence {
	t.Helper()
	seq, ok := session.Sequence(label)
	if !ok {
		t.Fatalf("sequence %q not found", label)
	}
	return seq
}

func mustParse(t *testing.T, spec string) *core.Session {
	t.Helper()
	session, err := Parse(spec)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", spec, err)
	}
	return session
}

func TestParseEquals(t *testing.T) {
	s := mustParse(t, `a=<d1|E|D>.<d1/d2|E|D>.<d1/d2/f3|E|Ff1>.<d1/d2/f3|Ff1|Ff2>;
	                   b=<d1|E|D>.<d1/d2|E|D>.<d1/d2/f3|E|Ff1>.<d1/d2/f3|Ff1|Ff2>`)
	a, b := mustSequence(t, s, "a"), mustSequence(t, s, "b")
	if !a.Equal(b) {
		t.Errorf("a and b were parsed identically and should be equal")
	}
}

func TestParseNotEquals(t *testing.T) {
	s := mustParse(t, `a=<d1|E|D>.<d1/d2|E|D>.<d1/d2/f3|E|Ff1>.<d1/d2/f3|Ff1|Ff2>;
	                   c=<d1|E|D>.<d1/d2|E|D>.<d1/d2/f3|E|Ff2>`)
	a, c := mustSequence(t, s, "a"), mustSequence(t, s, "c")
	if a.Equal(c) {
		t.Errorf("a and c differ in structure and should not be equal")
	}
}

func TestOrderByNode(t *testing.T) {
	s := mustParse(t, `a=<d1|E|D>.<d1/d2|E|D>.<d1/d2/f3|E|Ff1>.<d1/d2/f3|Ff1|Ff2>;
	                   b=<d1/d2/f3|E|Ff1>.<d1/d2|E|D>.<d1/d2/f3|Ff1|Ff2>.<d1|E|D>`)
	a, b := mustSequence(t, s, "a"), mustSequence(t, s, "b")
	if !b.OrderByNode().Equal(a) {
		t.Errorf("b ordered by node should equal a")
	}
}

func TestGetCanonicalSet(t *testing.T) {
	s := mustParse(t, `a=<d1|E|D>.<d1/d2|E|D>.<d1/d2/f3|E|Ff1>.<d1/d2/f3|Ff1|Ff2>;
	                   c=<d1|E|D>.<d1/d2|E|D>.<d1/d2/f3|E|Ff2>`)
	a, c := mustSequence(t, s, "a"), mustSequence(t, s, "c")

	canonical, err := core.GetCanonicalSet(a, true)
	if err != nil {
		t.Fatalf("GetCanonicalSet failed: %v", err)
	}
	if !core.FromSet(canonical).OrderByNode().Equal(c) {
		t.Errorf("canonicalised a should equal c")
	}
}

func TestIsSetCanonical(t *testing.T) {
	cases := []struct {
		spec string
		want bool
	}{
		{"a=<d1|E|D>.<d1/d2|E|D>.<d1/d2/f3|E|Ff1>", true},
		{"a=<d1/d2/f3|E|Ff1>.<d1/d2/f3|Ff1|Ff2>", false},
		{"a=<d1|E|D>.<d1/d2/f3|E|Ff1>", false},
	}
	for _, c := range cases {
		s := mustParse(t, c.spec)
		a := mustSequence(t, s, "a")
		if got := core.IsSetCanonical(a.AsSet()); got != c.want {
			t.Errorf("IsSetCanonical(%q) = %v, want %v", c.spec, got, c.want)
		}
	}
}

func TestOrderSet(t *testing.T) {
	s := mustParse(t, `a=<d1/d2|E|D>.<d1/d2/f3|E|Ff1>.<d1|E|D>;
	                   b=<d1|E|D>.<d1/d2|E|D>.<d1/d2/f3|E|Ff1>`)
	a, b := mustSequence(t, s, "a"), mustSequence(t, s, "b")
	if !core.OrderSet(a.AsSet()).Equal(b) {
		t.Errorf("OrderSet(a) should equal b")
	}
}

func TestFromSetUnion(t *testing.T) {
	s := mustParse(t, `a=<d1|E|D>.<d1/d2|E|D>.<d1/d2/f3|E|Ff1>;
	                   b=<d1|E|D>.<d1/d2|E|D>.<d1/d2/f3|E|Ff2>;
	                   t=<d1|E|D>.<d1/d2|E|D>.<d1/d2/f3|E|Ff1>.<d1/d2/f3|E|Ff2>`)
	a, b, target := mustSequence(t, s, "a"), mustSequence(t, s, "b"), mustSequence(t, s, "t")
	union := core.FromSetUnion(a.AsSet(), b.AsSet())
	if !union.AsSet().Equal(target.AsSet()) {
		t.Errorf("FromSetUnion(a, b) should equal t as a set")
	}

	s2 := mustParse(t, `a=<d1|E|D>.<d1/d2|E|D>.<d1/d2/f3|E|Ff1>;
	                    b=<d1|E|D>.<d1/d2|E|D>.<d1/d2|E|Ff1>;
	                    t=<d1|E|D>.<d1/d2|E|D>.<d1/d2|E|Ff1>.<d1/d2/f3|E|Ff1>`)
	a2, b2, t2 := mustSequence(t, s2, "a"), mustSequence(t, s2, "b"), mustSequence(t, s2, "t")
	union2 := core.FromSetUnion(a2.AsSet(), b2.AsSet())
	if !union2.AsSet().Equal(t2.AsSet()) {
		t.Errorf("FromSetUnion(a2, b2) should equal t2 as a set")
	}
}

func TestGetGreedyMergerContentsTieBreak(t *testing.T) {
	spec := `a=<d1|E|D>.<d1/d2|E|D>.<d1/d2/f3|E|Ff1>;
	         b=<d1|E|D>.<d1/d2|E|D>.<d1/d2/f3|E|Ff2>;
	         t1=<d1|E|D>.<d1/d2|E|D>.<d1/d2/f3|E|Ff1>;
	         t2=<d1|E|D>.<d1/d2|E|D>.<d1/d2/f3|E|Ff2>`

	s := mustParse(t, spec)
	a, b := mustSequence(t, s, "a"), mustSequence(t, s, "b")
	t1, t2 := mustSequence(t, s, "t1"), mustSequence(t, s, "t2")

	merger := core.GetGreedyMerger([]core.CommandSet{a.AsSet(), b.AsSet()})
	if !(merger.Equal(t1.AsSet()) || merger.Equal(t2.AsSet())) {
		t.Errorf("GetGreedyMerger([a, b]) should equal t1 or t2")
	}
	if !merger.Equal(t1.AsSet()) {
		t.Errorf("GetGreedyMerger([a, b]) should prefer a's contents (t1) as the tie-break")
	}

	s2 := mustParse(t, spec)
	b2, a2 := mustSequence(t, s2, "b"), mustSequence(t, s2, "a")
	merger2 := core.GetGreedyMerger([]core.CommandSet{b2.AsSet(), a2.AsSet()})
	if !merger2.Equal(mustSequence(t, s2, "t2").AsSet()) {
		t.Errorf("GetGreedyMerger([b, a]) should prefer b's contents (t2) as the tie-break")
	}
}

func TestGetGreedyMergerDirectoryVsFile(t *testing.T) {
	s := mustParse(t, `a=<d1|E|D>.<d1/d2|E|D>.<d1/d2/f3|E|Ff1>;
	                   b=<d1|E|D>.<d1/d2|E|Ff1>;
	                   t1=<d1|E|D>.<d1/d2|E|D>.<d1/d2/f3|E|Ff1>;
	                   t2=<d1|E|D>.<d1/d2|E|Ff1>`)
	a, b := mustSequence(t, s, "a"), mustSequence(t, s, "b")
	t1, t2 := mustSequence(t, s, "t1"), mustSequence(t, s, "t2")

	merger := core.GetGreedyMerger([]core.CommandSet{a.AsSet(), b.AsSet()})
	if !(merger.Equal(t1.AsSet()) || merger.Equal(t2.AsSet())) {
		t.Errorf("GetGreedyMerger([a, b]) should equal t1 or t2")
	}
}

func TestCheckRefluent(t *testing.T) {
	cases := []struct {
		name string
		spec string
		want bool
	}{
		{
			name: "parent becomes file while child is created",
			spec: `a=<1|D|Ff1>;
			       b=<1/2|E|Ff2>`,
			want: true,
		},
		{
			name: "conflicting edit under parent edit",
			spec: `a=<1|Ff1|Ff2>;
			       b=<1/2|E|Ff3>`,
			want: false,
		},
		{
			name: "five independent replicas",
			spec: `a=<1/2|D|E>.<1|D|E>;
			       b=<1/2/3|E|D>;
			       c=<1/2|D|Ff2>.<0|E|D>;
			       d=<1/2/3|E|D>.<1/2/3/4|E|Ff3>;
			       e=<1/2/3|E|D>.<1/2/3/4b|E|Ff4>`,
			want: true,
		},
		{
			name: "mismatched before value",
			spec: `a=<1/2|D|E>.<1|D|E>;
			       b=<1/2/3|E|D>;
			       c=<1/2|D|Ff2>.<0|E|D>;
			       d=<1/2/3|F|D>.<1/2/3/4|E|Ff3>;
			       e=<1/2/3|E|D>.<1/2/3/4b|E|Ff4>`,
			want: false,
		},
		{
			name: "disagreeing on kind at shared node",
			spec: `a=<1/2|F|E>.<1|D|E>;
			       b=<1/2/3|E|D>;
			       c=<1/2|F|Ff2>.<0|E|D>;
			       d=<1/2/3|E|D>.<1/2/3/4|E|Ff3>;
			       e=<1/2/3|E|D>.<1/2/3/4b|E|Ff4>`,
			want: false,
		},
		{
			name: "destroyed ancestor with surviving deep descendant",
			spec: `a=<1/2|D|E>.<1|D|E>;
			       b=<1/2/3/4/5/6|E|D>`,
			want: false,
		},
	}

	for _, c := range cases {
		s := mustParse(t, c.spec)
		sets := make([]core.CommandSet, len(s.Labels()))
		for i, label := range s.Labels() {
			seq, _ := s.Sequence(label)
			sets[i] = seq.AsSet()
		}
		if got := core.CheckRefluent(sets); got != c.want {
			t.Errorf("%s: CheckRefluent() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestGetAnyMergerDestroyVsBuildConflict(t *testing.T) {
	s := mustParse(t, `a=<1/2|D|E>.<1|D|E>;
	                   b=<1/2/3|E|D>`)
	a, b := mustSequence(t, s, "a"), mustSequence(t, s, "b")
	sets := []core.CommandSet{a.AsSet(), b.AsSet()}

	var seen []core.CommandSet
	decisions, merger, ok, err := core.GetAnyMerger(sets, nil)
	for ; ok; decisions, merger, ok, err = core.GetAnyMerger(sets, decisions) {
		if err != nil {
			t.Fatalf("GetAnyMerger failed: %v", err)
		}
		seen = append(seen, merger)
		if len(seen) > 4 {
			t.Fatalf("enumeration did not terminate after 4 mergers")
		}
	}
	if err != nil {
		t.Fatalf("GetAnyMerger failed: %v", err)
	}

	if len(seen) != 2 {
		t.Fatalf("got %d mergers, want 2", len(seen))
	}

	keepDestructors := a.AsSet()
	keepConstructor := core.NewCommandSet(core.NewCommand(s.InternNode("1", "2", "3"), core.Empty(), core.Directory()))

	foundDestructors, foundConstructor := false, false
	for _, m := range seen {
		switch {
		case m.Equal(keepDestructors):
			foundDestructors = true
		case m.Equal(keepConstructor):
			foundConstructor = true
		default:
			t.Errorf("unexpected merger: %s", m)
		}
		if !core.IsSetCanonical(m) {
			t.Errorf("merger %s is not canonical", m)
		}
	}
	if !foundDestructors {
		t.Errorf("expected a merger equal to %s (destructors win)", keepDestructors)
	}
	if !foundConstructor {
		t.Errorf("expected a merger equal to %s (constructor wins)", keepConstructor)
	}
}

func TestGetAnyMergerEnumerationCount(t *testing.T) {
	s := mustParse(t, `a=<d1|E|D>.<d1/d2|E|D>.<d1/d2/f3|E|Ff1>;
	                   b=<d1|E|D>.<d1/d2|E|Ff1>`)
	a, b := mustSequence(t, s, "a"), mustSequence(t, s, "b")
	sets := []core.CommandSet{a.AsSet(), b.AsSet()}

	var seen []core.CommandSet
	var lastDecisions []core.Decision
	decisions, merger, ok, err := core.GetAnyMerger(sets, nil)
	for ; ok; decisions, merger, ok, err = core.GetAnyMerger(sets, decisions) {
		if err != nil {
			t.Fatalf("GetAnyMerger failed: %v", err)
		}
		seen = append(seen, merger)
		lastDecisions = decisions
		if len(seen) > 4 {
			t.Fatalf("enumeration did not terminate after 4 mergers")
		}
	}
	if err != nil {
		t.Fatalf("GetAnyMerger failed: %v", err)
	}

	if len(seen) != 2 {
		t.Fatalf("got %d mergers, want 2", len(seen))
	}
	if len(lastDecisions) != 1 || lastDecisions[0].NumOptions != 2 {
		t.Errorf("expected a single decision point with 2 options, got %v", lastDecisions)
	}

	keepA, keepB := a.AsSet(), b.AsSet()
	foundA, foundB := false, false
	for _, m := range seen {
		switch {
		case m.Equal(keepA):
			foundA = true
		case m.Equal(keepB):
			foundB = true
		default:
			t.Errorf("unexpected merger: %s", m)
		}
		if !core.IsSetCanonical(m) {
			t.Errorf("merger %s is not canonical", m)
		}
	}
	if !foundA {
		t.Errorf("expected a merger equal to %s", keepA)
	}
	if !foundB {
		t.Errorf("expected a merger equal to %s", keepB)
	}
}
