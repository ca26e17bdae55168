// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Answer is the predicate function for answer builders.
type Answer func(*sql.Selector)

// Asset is the predicate function for asset builders.
type Asset func(*sql.Selector)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// CEFRCertificate is the predicate function for cefrcertificate builders.
type CEFRCertificate func(*sql.Selector)

// Choice is the predicate function for choice builders.
type Choice func(*sql.Selector)

// CourseExercise is the predicate function for courseexercise builders.
type CourseExercise func(*sql.Selector)

// CourseLesson is the predicate function for courselesson builders.
type CourseLesson func(*sql.Selector)

// Exam is the predicate function for exam builders.
type Exam func(*sql.Selector)

// ExamFormatResult is the predicate function for examformatresult builders.
type ExamFormatResult func(*sql.Selector)

// ExamSection is the predicate function for examsection builders.
type ExamSection func(*sql.Selector)

// Passage is the predicate function for passage builders.
type Passage func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// UserSkillProgress is the predicate function for userskillprogress builders.
type UserSkillProgress func(*sql.Selector)
