// Package cefr defines the CEFR level ladder shared by the scoring,
// progression, recommendation and certificate packages.
package cefr

import "fmt"

// Level is a CEFR proficiency level.
type Level string

const (
	A1 Level = "A1"
	A2 Level = "A2"
	B1 Level = "B1"
	B2 Level = "B2"
	C1 Level = "C1"
	C2 Level = "C2"
)

// Ladder is the fixed CEFR ordering. Progression advances along it one
// step at a time; it is never reordered.
var Ladder = []Level{A1, A2, B1, B2, C1, C2}

// Skill is one of the four exam skills.
type Skill string

const (
	SkillCO Skill = "co" // listening (compréhension orale)
	SkillCE Skill = "ce" // reading (compréhension écrite)
	SkillEO Skill = "eo" // speaking (expression orale)
	SkillEE Skill = "ee" // writing (expression écrite)
)

// Skills lists all skills in exam order.
var Skills = []Skill{SkillCO, SkillCE, SkillEO, SkillEE}

// ValidSkill reports whether s is one of co, ce, eo, ee.
func ValidSkill(s Skill) bool {
	switch s {
	case SkillCO, SkillCE, SkillEO, SkillEE:
		return true
	}
	return false
}

// Index returns the position of l on the ladder, or -1 if l is not a
// valid level.
func Index(l Level) int {
	for i, v := range Ladder {
		if v == l {
			return i
		}
	}
	return -1
}

// Valid reports whether l is one of the six CEFR levels.
func Valid(l Level) bool {
	return Index(l) >= 0
}

// Next returns the level one step above l. The second return is false
// when l is C2 (terminal) or not a valid level.
func Next(l Level) (Level, bool) {
	i := Index(l)
	if i < 0 || i == len(Ladder)-1 {
		return "", false
	}
	return Ladder[i+1], true
}

// AtMost reports whether l is at or below limit on the ladder.
func AtMost(l, limit Level) bool {
	return Index(l) >= 0 && Index(l) <= Index(limit)
}

// Parse normalises a string ("b1", " B1 ") to a Level.
func Parse(s string) (Level, error) {
	l := Level(normalize(s))
	if !Valid(l) {
		return "", fmt.Errorf("invalid CEFR level: %q", s)
	}
	return l, nil
}

func normalize(s string) string {
	out := make([]byte, 0, 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' {
			continue
		}
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}
