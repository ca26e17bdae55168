// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswersColumns holds the columns for the "answers" table.
	AnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "text_answer", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "correct", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "answer_question", Type: field.TypeInt},
		{Name: "answer_choice", Type: field.TypeInt, Nullable: true},
		{Name: "attempt_answers", Type: field.TypeInt},
	}
	// AnswersTable holds the schema information for the "answers" table.
	AnswersTable = &schema.Table{
		Name:       "answers",
		Columns:    AnswersColumns,
		PrimaryKey: []*schema.Column{AnswersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "answers_questions_question",
				Columns:    []*schema.Column{AnswersColumns[4]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "answers_choices_choice",
				Columns:    []*schema.Column{AnswersColumns[5]},
				RefColumns: []*schema.Column{ChoicesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "answers_attempts_answers",
				Columns:    []*schema.Column{AnswersColumns[6]},
				RefColumns: []*schema.Column{AttemptsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "answer_attempt_answers_answer_question",
				Unique:  true,
				Columns: []*schema.Column{AnswersColumns[6], AnswersColumns[4]},
			},
		},
	}
	// AssetsColumns holds the columns for the "assets" table.
	AssetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "path", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"audio", "image", "document"}, Default: "audio"},
		{Name: "language", Type: field.TypeString, Default: "fr"},
	}
	// AssetsTable holds the schema information for the "assets" table.
	AssetsTable = &schema.Table{
		Name:       "assets",
		Columns:    AssetsColumns,
		PrimaryKey: []*schema.Column{AssetsColumns[0]},
	}
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "section_code", Type: field.TypeEnum, Enums: []string{"co", "ce", "eo", "ee"}},
		{Name: "total_items", Type: field.TypeInt, Default: 0},
		{Name: "raw_score", Type: field.TypeInt, Default: 0},
		{Name: "score_percent", Type: field.TypeFloat64, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "session_attempts", Type: field.TypeInt},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attempts_sessions_attempts",
				Columns:    []*schema.Column{AttemptsColumns[7]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// CefrCertificatesColumns holds the columns for the "cefr_certificates" table.
	CefrCertificatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "exam_code", Type: field.TypeString},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"A1", "A2", "B1", "B2", "C1", "C2"}},
		{Name: "public_id", Type: field.TypeString, Unique: true},
		{Name: "issued_at", Type: field.TypeTime},
		{Name: "pdf_path", Type: field.TypeString, Default: ""},
	}
	// CefrCertificatesTable holds the schema information for the "cefr_certificates" table.
	CefrCertificatesTable = &schema.Table{
		Name:       "cefr_certificates",
		Columns:    CefrCertificatesColumns,
		PrimaryKey: []*schema.Column{CefrCertificatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cefrcertificate_user_id_exam_code_level",
				Unique:  true,
				Columns: []*schema.Column{CefrCertificatesColumns[1], CefrCertificatesColumns[2], CefrCertificatesColumns[3]},
			},
		},
	}
	// ChoicesColumns holds the columns for the "choices" table.
	ChoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "is_correct", Type: field.TypeBool, Default: false},
		{Name: "question_choices", Type: field.TypeInt},
	}
	// ChoicesTable holds the schema information for the "choices" table.
	ChoicesTable = &schema.Table{
		Name:       "choices",
		Columns:    ChoicesColumns,
		PrimaryKey: []*schema.Column{ChoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "choices_questions_choices",
				Columns:    []*schema.Column{ChoicesColumns[3]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// CourseExercisesColumns holds the columns for the "course_exercises" table.
	CourseExercisesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"objective", "productive"}, Default: "objective"},
		{Name: "stem", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "option_a", Type: field.TypeString, Default: ""},
		{Name: "option_b", Type: field.TypeString, Default: ""},
		{Name: "option_c", Type: field.TypeString, Default: ""},
		{Name: "option_d", Type: field.TypeString, Default: ""},
		{Name: "correct_option", Type: field.TypeString, Default: ""},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "min_words", Type: field.TypeInt, Default: 0},
		{Name: "max_words", Type: field.TypeInt, Default: 0},
		{Name: "sample_answer", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "criteria", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "order", Type: field.TypeInt, Default: 0},
		{Name: "course_exercise_asset", Type: field.TypeInt, Nullable: true},
		{Name: "course_lesson_exercises", Type: field.TypeInt},
	}
	// CourseExercisesTable holds the schema information for the "course_exercises" table.
	CourseExercisesTable = &schema.Table{
		Name:       "course_exercises",
		Columns:    CourseExercisesColumns,
		PrimaryKey: []*schema.Column{CourseExercisesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "course_exercises_assets_asset",
				Columns:    []*schema.Column{CourseExercisesColumns[14]},
				RefColumns: []*schema.Column{AssetsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "course_exercises_course_lessons_exercises",
				Columns:    []*schema.Column{CourseExercisesColumns[15]},
				RefColumns: []*schema.Column{CourseLessonsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// CourseLessonsColumns holds the columns for the "course_lessons" table.
	CourseLessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString},
		{Name: "section", Type: field.TypeEnum, Enums: []string{"co", "ce", "eo", "ee"}},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"A1", "A2", "B1", "B2", "C1", "C2"}},
		{Name: "locale", Type: field.TypeString, Default: "fr"},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "order", Type: field.TypeInt, Default: 0},
		{Name: "published", Type: field.TypeBool, Default: false},
		{Name: "course_lesson_asset", Type: field.TypeInt, Nullable: true},
	}
	// CourseLessonsTable holds the schema information for the "course_lessons" table.
	CourseLessonsTable = &schema.Table{
		Name:       "course_lessons",
		Columns:    CourseLessonsColumns,
		PrimaryKey: []*schema.Column{CourseLessonsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "course_lessons_assets_asset",
				Columns:    []*schema.Column{CourseLessonsColumns[9]},
				RefColumns: []*schema.Column{AssetsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "courselesson_slug_section_level_locale",
				Unique:  true,
				Columns: []*schema.Column{CourseLessonsColumns[2], CourseLessonsColumns[3], CourseLessonsColumns[4], CourseLessonsColumns[5]},
			},
			{
				Name:    "courselesson_section_level_published",
				Unique:  false,
				Columns: []*schema.Column{CourseLessonsColumns[3], CourseLessonsColumns[4], CourseLessonsColumns[8]},
			},
		},
	}
	// ExamsColumns holds the columns for the "exams" table.
	ExamsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "code", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "language", Type: field.TypeString, Default: "fr"},
	}
	// ExamsTable holds the schema information for the "exams" table.
	ExamsTable = &schema.Table{
		Name:       "exams",
		Columns:    ExamsColumns,
		PrimaryKey: []*schema.Column{ExamsColumns[0]},
	}
	// ExamFormatResultsColumns holds the columns for the "exam_format_results" table.
	ExamFormatResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "exam_code", Type: field.TypeString},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"A1", "A2", "B1", "B2", "C1", "C2"}},
		{Name: "section_results", Type: field.TypeJSON},
		{Name: "global_score", Type: field.TypeFloat64, Default: 0},
		{Name: "score_max", Type: field.TypeFloat64, Default: 0},
		{Name: "global_cefr", Type: field.TypeString, Default: ""},
		{Name: "passed", Type: field.TypeBool, Default: false},
		{Name: "taken_at", Type: field.TypeTime},
	}
	// ExamFormatResultsTable holds the schema information for the "exam_format_results" table.
	ExamFormatResultsTable = &schema.Table{
		Name:       "exam_format_results",
		Columns:    ExamFormatResultsColumns,
		PrimaryKey: []*schema.Column{ExamFormatResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "examformatresult_user_id_exam_code",
				Unique:  false,
				Columns: []*schema.Column{ExamFormatResultsColumns[1], ExamFormatResultsColumns[2]},
			},
			{
				Name:    "examformatresult_taken_at",
				Unique:  false,
				Columns: []*schema.Column{ExamFormatResultsColumns[9]},
			},
		},
	}
	// ExamSectionsColumns holds the columns for the "exam_sections" table.
	ExamSectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "section_code", Type: field.TypeEnum, Enums: []string{"co", "ce", "eo", "ee"}},
		{Name: "order", Type: field.TypeInt},
		{Name: "duration_seconds", Type: field.TypeInt, Default: 0},
		{Name: "exam_sections", Type: field.TypeInt},
	}
	// ExamSectionsTable holds the schema information for the "exam_sections" table.
	ExamSectionsTable = &schema.Table{
		Name:       "exam_sections",
		Columns:    ExamSectionsColumns,
		PrimaryKey: []*schema.Column{ExamSectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "exam_sections_exams_sections",
				Columns:    []*schema.Column{ExamSectionsColumns[4]},
				RefColumns: []*schema.Column{ExamsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "examsection_section_code_exam_sections",
				Unique:  true,
				Columns: []*schema.Column{ExamSectionsColumns[1], ExamSectionsColumns[4]},
			},
		},
	}
	// PassagesColumns holds the columns for the "passages" table.
	PassagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
	}
	// PassagesTable holds the schema information for the "passages" table.
	PassagesTable = &schema.Table{
		Name:       "passages",
		Columns:    PassagesColumns,
		PrimaryKey: []*schema.Column{PassagesColumns[0]},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "stem", Type: field.TypeString, Size: 2147483647},
		{Name: "subtype", Type: field.TypeEnum, Enums: []string{"mcq", "text"}, Default: "mcq"},
		{Name: "difficulty", Type: field.TypeEnum, Enums: []string{"easy", "medium", "hard"}, Default: "medium"},
		{Name: "explanation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "exam_section_questions", Type: field.TypeInt},
		{Name: "passage_questions", Type: field.TypeInt, Nullable: true},
		{Name: "question_asset", Type: field.TypeInt, Nullable: true},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questions_exam_sections_questions",
				Columns:    []*schema.Column{QuestionsColumns[5]},
				RefColumns: []*schema.Column{ExamSectionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "questions_passages_questions",
				Columns:    []*schema.Column{QuestionsColumns[6]},
				RefColumns: []*schema.Column{PassagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "questions_assets_asset",
				Columns:    []*schema.Column{QuestionsColumns[7]},
				RefColumns: []*schema.Column{AssetsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "exam_code", Type: field.TypeString},
		{Name: "section", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "finished", "abandoned"}, Default: "active"},
		{Name: "total_score", Type: field.TypeFloat64, Default: 0},
		{Name: "duration_seconds", Type: field.TypeInt, Default: 0},
		{Name: "result_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_user_id_exam_code",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[2]},
			},
			{
				Name:    "session_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[4]},
			},
		},
	}
	// UserSkillProgressesColumns holds the columns for the "user_skill_progresses" table.
	UserSkillProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "exam_code", Type: field.TypeString},
		{Name: "skill", Type: field.TypeEnum, Enums: []string{"co", "ce", "eo", "ee"}},
		{Name: "current_level", Type: field.TypeEnum, Enums: []string{"A1", "A2", "B1", "B2", "C1", "C2"}, Default: "A1"},
		{Name: "last_score_percent", Type: field.TypeFloat64, Default: 0},
		{Name: "total_attempts", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserSkillProgressesTable holds the schema information for the "user_skill_progresses" table.
	UserSkillProgressesTable = &schema.Table{
		Name:       "user_skill_progresses",
		Columns:    UserSkillProgressesColumns,
		PrimaryKey: []*schema.Column{UserSkillProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userskillprogress_user_id_exam_code_skill",
				Unique:  true,
				Columns: []*schema.Column{UserSkillProgressesColumns[1], UserSkillProgressesColumns[2], UserSkillProgressesColumns[3]},
			},
		},
	}
	// CourseLessonExamsColumns holds the columns for the "course_lesson_exams" table.
	CourseLessonExamsColumns = []*schema.Column{
		{Name: "course_lesson_id", Type: field.TypeInt},
		{Name: "exam_id", Type: field.TypeInt},
	}
	// CourseLessonExamsTable holds the schema information for the "course_lesson_exams" table.
	CourseLessonExamsTable = &schema.Table{
		Name:       "course_lesson_exams",
		Columns:    CourseLessonExamsColumns,
		PrimaryKey: []*schema.Column{CourseLessonExamsColumns[0], CourseLessonExamsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "course_lesson_exams_course_lesson_id",
				Columns:    []*schema.Column{CourseLessonExamsColumns[0]},
				RefColumns: []*schema.Column{CourseLessonsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "course_lesson_exams_exam_id",
				Columns:    []*schema.Column{CourseLessonExamsColumns[1]},
				RefColumns: []*schema.Column{ExamsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswersTable,
		AssetsTable,
		AttemptsTable,
		CefrCertificatesTable,
		ChoicesTable,
		CourseExercisesTable,
		CourseLessonsTable,
		ExamsTable,
		ExamFormatResultsTable,
		ExamSectionsTable,
		PassagesTable,
		QuestionsTable,
		SessionsTable,
		UserSkillProgressesTable,
		CourseLessonExamsTable,
	}
)

func init() {
	AnswersTable.ForeignKeys[0].RefTable = QuestionsTable
	AnswersTable.ForeignKeys[1].RefTable = ChoicesTable
	AnswersTable.ForeignKeys[2].RefTable = AttemptsTable
	AttemptsTable.ForeignKeys[0].RefTable = SessionsTable
	ChoicesTable.ForeignKeys[0].RefTable = QuestionsTable
	CourseExercisesTable.ForeignKeys[0].RefTable = AssetsTable
	CourseExercisesTable.ForeignKeys[1].RefTable = CourseLessonsTable
	CourseLessonsTable.ForeignKeys[0].RefTable = AssetsTable
	ExamSectionsTable.ForeignKeys[0].RefTable = ExamsTable
	QuestionsTable.ForeignKeys[0].RefTable = ExamSectionsTable
	QuestionsTable.ForeignKeys[1].RefTable = PassagesTable
	QuestionsTable.ForeignKeys[2].RefTable = AssetsTable
	CourseLessonExamsTable.ForeignKeys[0].RefTable = CourseLessonsTable
	CourseLessonExamsTable.ForeignKeys[1].RefTable = ExamsTable
}
