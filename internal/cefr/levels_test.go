package cefr

import "testing"

func TestNext(t *testing.T) {
	cases := []struct {
		in   Level
		want Level
		ok   bool
	}{
		{A1, A2, true},
		{B2, C1, true},
		{C2, "", false},
		{Level("Z9"), "", false},
	}
	for _, c := range cases {
		got, ok := Next(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("Next(%s) = %q, %v; want %q, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestAtMost(t *testing.T) {
	if !AtMost(A1, B1) {
		t.Error("A1 should be at most B1")
	}
	if !AtMost(B1, B1) {
		t.Error("B1 should be at most B1")
	}
	if AtMost(C1, B1) {
		t.Error("C1 is above B1")
	}
	if AtMost(Level("Z9"), C2) {
		t.Error("invalid levels are never at most anything")
	}
}

func TestParse(t *testing.T) {
	for _, s := range []string{"B1", "b1", " B1 ", "\tb1"} {
		l, err := Parse(s)
		if err != nil || l != B1 {
			t.Errorf("Parse(%q) = %q, %v; want B1", s, l, err)
		}
	}
	for _, s := range []string{"", "A3", "B", "beginner"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) should fail", s)
		}
	}
}

func TestValidSkill(t *testing.T) {
	for _, s := range Skills {
		if !ValidSkill(s) {
			t.Errorf("ValidSkill(%s) = false", s)
		}
	}
	if ValidSkill(Skill("CO")) {
		t.Error("skills are lowercase on the wire")
	}
}
