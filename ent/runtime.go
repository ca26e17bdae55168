// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/visaetude/prepcore/ent/answer"
	"github.com/visaetude/prepcore/ent/asset"
	"github.com/visaetude/prepcore/ent/attempt"
	"github.com/visaetude/prepcore/ent/cefrcertificate"
	"github.com/visaetude/prepcore/ent/choice"
	"github.com/visaetude/prepcore/ent/courseexercise"
	"github.com/visaetude/prepcore/ent/courselesson"
	"github.com/visaetude/prepcore/ent/exam"
	"github.com/visaetude/prepcore/ent/examformatresult"
	"github.com/visaetude/prepcore/ent/examsection"
	"github.com/visaetude/prepcore/ent/passage"
	"github.com/visaetude/prepcore/ent/question"
	"github.com/visaetude/prepcore/ent/schema"
	"github.com/visaetude/prepcore/ent/session"
	"github.com/visaetude/prepcore/ent/userskillprogress"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerFields := schema.Answer{}.Fields()
	_ = answerFields
	// answerDescTextAnswer is the schema descriptor for text_answer field.
	answerDescTextAnswer := answerFields[0].Descriptor()
	// answer.DefaultTextAnswer holds the default value on creation for the text_answer field.
	answer.DefaultTextAnswer = answerDescTextAnswer.Default.(string)
	// answerDescCorrect is the schema descriptor for correct field.
	answerDescCorrect := answerFields[1].Descriptor()
	// answer.DefaultCorrect holds the default value on creation for the correct field.
	answer.DefaultCorrect = answerDescCorrect.Default.(bool)
	// answerDescCreatedAt is the schema descriptor for created_at field.
	answerDescCreatedAt := answerFields[2].Descriptor()
	// answer.DefaultCreatedAt holds the default value on creation for the created_at field.
	answer.DefaultCreatedAt = answerDescCreatedAt.Default.(func() time.Time)
	assetFields := schema.Asset{}.Fields()
	_ = assetFields
	// assetDescPath is the schema descriptor for path field.
	assetDescPath := assetFields[0].Descriptor()
	// asset.PathValidator is a validator for the "path" field. It is called by the builders before save.
	asset.PathValidator = assetDescPath.Validators[0].(func(string) error)
	// assetDescLanguage is the schema descriptor for language field.
	assetDescLanguage := assetFields[2].Descriptor()
	// asset.DefaultLanguage holds the default value on creation for the language field.
	asset.DefaultLanguage = assetDescLanguage.Default.(string)
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescTotalItems is the schema descriptor for total_items field.
	attemptDescTotalItems := attemptFields[1].Descriptor()
	// attempt.DefaultTotalItems holds the default value on creation for the total_items field.
	attempt.DefaultTotalItems = attemptDescTotalItems.Default.(int)
	// attempt.TotalItemsValidator is a validator for the "total_items" field. It is called by the builders before save.
	attempt.TotalItemsValidator = attemptDescTotalItems.Validators[0].(func(int) error)
	// attemptDescRawScore is the schema descriptor for raw_score field.
	attemptDescRawScore := attemptFields[2].Descriptor()
	// attempt.DefaultRawScore holds the default value on creation for the raw_score field.
	attempt.DefaultRawScore = attemptDescRawScore.Default.(int)
	// attempt.RawScoreValidator is a validator for the "raw_score" field. It is called by the builders before save.
	attempt.RawScoreValidator = attemptDescRawScore.Validators[0].(func(int) error)
	// attemptDescScorePercent is the schema descriptor for score_percent field.
	attemptDescScorePercent := attemptFields[3].Descriptor()
	// attempt.DefaultScorePercent holds the default value on creation for the score_percent field.
	attempt.DefaultScorePercent = attemptDescScorePercent.Default.(float64)
	// attemptDescStartedAt is the schema descriptor for started_at field.
	attemptDescStartedAt := attemptFields[4].Descriptor()
	// attempt.DefaultStartedAt holds the default value on creation for the started_at field.
	attempt.DefaultStartedAt = attemptDescStartedAt.Default.(func() time.Time)
	cefrcertificateFields := schema.CEFRCertificate{}.Fields()
	_ = cefrcertificateFields
	// cefrcertificateDescUserID is the schema descriptor for user_id field.
	cefrcertificateDescUserID := cefrcertificateFields[0].Descriptor()
	// cefrcertificate.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	cefrcertificate.UserIDValidator = cefrcertificateDescUserID.Validators[0].(func(string) error)
	// cefrcertificateDescExamCode is the schema descriptor for exam_code field.
	cefrcertificateDescExamCode := cefrcertificateFields[1].Descriptor()
	// cefrcertificate.ExamCodeValidator is a validator for the "exam_code" field. It is called by the builders before save.
	cefrcertificate.ExamCodeValidator = cefrcertificateDescExamCode.Validators[0].(func(string) error)
	// cefrcertificateDescPublicID is the schema descriptor for public_id field.
	cefrcertificateDescPublicID := cefrcertificateFields[3].Descriptor()
	// cefrcertificate.PublicIDValidator is a validator for the "public_id" field. It is called by the builders before save.
	cefrcertificate.PublicIDValidator = cefrcertificateDescPublicID.Validators[0].(func(string) error)
	// cefrcertificateDescIssuedAt is the schema descriptor for issued_at field.
	cefrcertificateDescIssuedAt := cefrcertificateFields[4].Descriptor()
	// cefrcertificate.DefaultIssuedAt holds the default value on creation for the issued_at field.
	cefrcertificate.DefaultIssuedAt = cefrcertificateDescIssuedAt.Default.(func() time.Time)
	// cefrcertificateDescPdfPath is the schema descriptor for pdf_path field.
	cefrcertificateDescPdfPath := cefrcertificateFields[5].Descriptor()
	// cefrcertificate.DefaultPdfPath holds the default value on creation for the pdf_path field.
	cefrcertificate.DefaultPdfPath = cefrcertificateDescPdfPath.Default.(string)
	choiceFields := schema.Choice{}.Fields()
	_ = choiceFields
	// choiceDescText is the schema descriptor for text field.
	choiceDescText := choiceFields[0].Descriptor()
	// choice.TextValidator is a validator for the "text" field. It is called by the builders before save.
	choice.TextValidator = choiceDescText.Validators[0].(func(string) error)
	// choiceDescIsCorrect is the schema descriptor for is_correct field.
	choiceDescIsCorrect := choiceFields[1].Descriptor()
	// choice.DefaultIsCorrect holds the default value on creation for the is_correct field.
	choice.DefaultIsCorrect = choiceDescIsCorrect.Default.(bool)
	courseexerciseFields := schema.CourseExercise{}.Fields()
	_ = courseexerciseFields
	// courseexerciseDescStem is the schema descriptor for stem field.
	courseexerciseDescStem := courseexerciseFields[1].Descriptor()
	// courseexercise.DefaultStem holds the default value on creation for the stem field.
	courseexercise.DefaultStem = courseexerciseDescStem.Default.(string)
	// courseexerciseDescOptionA is the schema descriptor for option_a field.
	courseexerciseDescOptionA := courseexerciseFields[2].Descriptor()
	// courseexercise.DefaultOptionA holds the default value on creation for the option_a field.
	courseexercise.DefaultOptionA = courseexerciseDescOptionA.Default.(string)
	// courseexerciseDescOptionB is the schema descriptor for option_b field.
	courseexerciseDescOptionB := courseexerciseFields[3].Descriptor()
	// courseexercise.DefaultOptionB holds the default value on creation for the option_b field.
	courseexercise.DefaultOptionB = courseexerciseDescOptionB.Default.(string)
	// courseexerciseDescOptionC is the schema descriptor for option_c field.
	courseexerciseDescOptionC := courseexerciseFields[4].Descriptor()
	// courseexercise.DefaultOptionC holds the default value on creation for the option_c field.
	courseexercise.DefaultOptionC = courseexerciseDescOptionC.Default.(string)
	// courseexerciseDescOptionD is the schema descriptor for option_d field.
	courseexerciseDescOptionD := courseexerciseFields[5].Descriptor()
	// courseexercise.DefaultOptionD holds the default value on creation for the option_d field.
	courseexercise.DefaultOptionD = courseexerciseDescOptionD.Default.(string)
	// courseexerciseDescCorrectOption is the schema descriptor for correct_option field.
	courseexerciseDescCorrectOption := courseexerciseFields[6].Descriptor()
	// courseexercise.DefaultCorrectOption holds the default value on creation for the correct_option field.
	courseexercise.DefaultCorrectOption = courseexerciseDescCorrectOption.Default.(string)
	// courseexerciseDescPrompt is the schema descriptor for prompt field.
	courseexerciseDescPrompt := courseexerciseFields[7].Descriptor()
	// courseexercise.DefaultPrompt holds the default value on creation for the prompt field.
	courseexercise.DefaultPrompt = courseexerciseDescPrompt.Default.(string)
	// courseexerciseDescMinWords is the schema descriptor for min_words field.
	courseexerciseDescMinWords := courseexerciseFields[8].Descriptor()
	// courseexercise.DefaultMinWords holds the default value on creation for the min_words field.
	courseexercise.DefaultMinWords = courseexerciseDescMinWords.Default.(int)
	// courseexercise.MinWordsValidator is a validator for the "min_words" field. It is called by the builders before save.
	courseexercise.MinWordsValidator = courseexerciseDescMinWords.Validators[0].(func(int) error)
	// courseexerciseDescMaxWords is the schema descriptor for max_words field.
	courseexerciseDescMaxWords := courseexerciseFields[9].Descriptor()
	// courseexercise.DefaultMaxWords holds the default value on creation for the max_words field.
	courseexercise.DefaultMaxWords = courseexerciseDescMaxWords.Default.(int)
	// courseexercise.MaxWordsValidator is a validator for the "max_words" field. It is called by the builders before save.
	courseexercise.MaxWordsValidator = courseexerciseDescMaxWords.Validators[0].(func(int) error)
	// courseexerciseDescSampleAnswer is the schema descriptor for sample_answer field.
	courseexerciseDescSampleAnswer := courseexerciseFields[10].Descriptor()
	// courseexercise.DefaultSampleAnswer holds the default value on creation for the sample_answer field.
	courseexercise.DefaultSampleAnswer = courseexerciseDescSampleAnswer.Default.(string)
	// courseexerciseDescCriteria is the schema descriptor for criteria field.
	courseexerciseDescCriteria := courseexerciseFields[11].Descriptor()
	// courseexercise.DefaultCriteria holds the default value on creation for the criteria field.
	courseexercise.DefaultCriteria = courseexerciseDescCriteria.Default.(string)
	// courseexerciseDescOrder is the schema descriptor for order field.
	courseexerciseDescOrder := courseexerciseFields[12].Descriptor()
	// courseexercise.DefaultOrder holds the default value on creation for the order field.
	courseexercise.DefaultOrder = courseexerciseDescOrder.Default.(int)
	courselessonFields := schema.CourseLesson{}.Fields()
	_ = courselessonFields
	// courselessonDescTitle is the schema descriptor for title field.
	courselessonDescTitle := courselessonFields[0].Descriptor()
	// courselesson.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	courselesson.TitleValidator = courselessonDescTitle.Validators[0].(func(string) error)
	// courselessonDescSlug is the schema descriptor for slug field.
	courselessonDescSlug := courselessonFields[1].Descriptor()
	// courselesson.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	courselesson.SlugValidator = courselessonDescSlug.Validators[0].(func(string) error)
	// courselessonDescLocale is the schema descriptor for locale field.
	courselessonDescLocale := courselessonFields[4].Descriptor()
	// courselesson.DefaultLocale holds the default value on creation for the locale field.
	courselesson.DefaultLocale = courselessonDescLocale.Default.(string)
	// courselessonDescContent is the schema descriptor for content field.
	courselessonDescContent := courselessonFields[5].Descriptor()
	// courselesson.DefaultContent holds the default value on creation for the content field.
	courselesson.DefaultContent = courselessonDescContent.Default.(string)
	// courselessonDescOrder is the schema descriptor for order field.
	courselessonDescOrder := courselessonFields[6].Descriptor()
	// courselesson.DefaultOrder holds the default value on creation for the order field.
	courselesson.DefaultOrder = courselessonDescOrder.Default.(int)
	// courselessonDescPublished is the schema descriptor for published field.
	courselessonDescPublished := courselessonFields[7].Descriptor()
	// courselesson.DefaultPublished holds the default value on creation for the published field.
	courselesson.DefaultPublished = courselessonDescPublished.Default.(bool)
	examFields := schema.Exam{}.Fields()
	_ = examFields
	// examDescCode is the schema descriptor for code field.
	examDescCode := examFields[0].Descriptor()
	// exam.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	exam.CodeValidator = examDescCode.Validators[0].(func(string) error)
	// examDescName is the schema descriptor for name field.
	examDescName := examFields[1].Descriptor()
	// exam.NameValidator is a validator for the "name" field. It is called by the builders before save.
	exam.NameValidator = examDescName.Validators[0].(func(string) error)
	// examDescLanguage is the schema descriptor for language field.
	examDescLanguage := examFields[2].Descriptor()
	// exam.DefaultLanguage holds the default value on creation for the language field.
	exam.DefaultLanguage = examDescLanguage.Default.(string)
	examformatresultFields := schema.ExamFormatResult{}.Fields()
	_ = examformatresultFields
	// examformatresultDescUserID is the schema descriptor for user_id field.
	examformatresultDescUserID := examformatresultFields[0].Descriptor()
	// examformatresult.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	examformatresult.UserIDValidator = examformatresultDescUserID.Validators[0].(func(string) error)
	// examformatresultDescExamCode is the schema descriptor for exam_code field.
	examformatresultDescExamCode := examformatresultFields[1].Descriptor()
	// examformatresult.ExamCodeValidator is a validator for the "exam_code" field. It is called by the builders before save.
	examformatresult.ExamCodeValidator = examformatresultDescExamCode.Validators[0].(func(string) error)
	// examformatresultDescGlobalScore is the schema descriptor for global_score field.
	examformatresultDescGlobalScore := examformatresultFields[4].Descriptor()
	// examformatresult.DefaultGlobalScore holds the default value on creation for the global_score field.
	examformatresult.DefaultGlobalScore = examformatresultDescGlobalScore.Default.(float64)
	// examformatresultDescScoreMax is the schema descriptor for score_max field.
	examformatresultDescScoreMax := examformatresultFields[5].Descriptor()
	// examformatresult.DefaultScoreMax holds the default value on creation for the score_max field.
	examformatresult.DefaultScoreMax = examformatresultDescScoreMax.Default.(float64)
	// examformatresultDescGlobalCefr is the schema descriptor for global_cefr field.
	examformatresultDescGlobalCefr := examformatresultFields[6].Descriptor()
	// examformatresult.DefaultGlobalCefr holds the default value on creation for the global_cefr field.
	examformatresult.DefaultGlobalCefr = examformatresultDescGlobalCefr.Default.(string)
	// examformatresultDescPassed is the schema descriptor for passed field.
	examformatresultDescPassed := examformatresultFields[7].Descriptor()
	// examformatresult.DefaultPassed holds the default value on creation for the passed field.
	examformatresult.DefaultPassed = examformatresultDescPassed.Default.(bool)
	// examformatresultDescTakenAt is the schema descriptor for taken_at field.
	examformatresultDescTakenAt := examformatresultFields[8].Descriptor()
	// examformatresult.DefaultTakenAt holds the default value on creation for the taken_at field.
	examformatresult.DefaultTakenAt = examformatresultDescTakenAt.Default.(func() time.Time)
	examsectionFields := schema.ExamSection{}.Fields()
	_ = examsectionFields
	// examsectionDescOrder is the schema descriptor for order field.
	examsectionDescOrder := examsectionFields[1].Descriptor()
	// examsection.OrderValidator is a validator for the "order" field. It is called by the builders before save.
	examsection.OrderValidator = func() func(int) error {
		validators := examsectionDescOrder.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(_order int) error {
			for _, fn := range fns {
				if err := fn(_order); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// examsectionDescDurationSeconds is the schema descriptor for duration_seconds field.
	examsectionDescDurationSeconds := examsectionFields[2].Descriptor()
	// examsection.DefaultDurationSeconds holds the default value on creation for the duration_seconds field.
	examsection.DefaultDurationSeconds = examsectionDescDurationSeconds.Default.(int)
	// examsection.DurationSecondsValidator is a validator for the "duration_seconds" field. It is called by the builders before save.
	examsection.DurationSecondsValidator = examsectionDescDurationSeconds.Validators[0].(func(int) error)
	passageFields := schema.Passage{}.Fields()
	_ = passageFields
	// passageDescTitle is the schema descriptor for title field.
	passageDescTitle := passageFields[0].Descriptor()
	// passage.DefaultTitle holds the default value on creation for the title field.
	passage.DefaultTitle = passageDescTitle.Default.(string)
	// passageDescText is the schema descriptor for text field.
	passageDescText := passageFields[1].Descriptor()
	// passage.TextValidator is a validator for the "text" field. It is called by the builders before save.
	passage.TextValidator = passageDescText.Validators[0].(func(string) error)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescStem is the schema descriptor for stem field.
	questionDescStem := questionFields[0].Descriptor()
	// question.StemValidator is a validator for the "stem" field. It is called by the builders before save.
	question.StemValidator = questionDescStem.Validators[0].(func(string) error)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescUserID is the schema descriptor for user_id field.
	sessionDescUserID := sessionFields[0].Descriptor()
	// session.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	session.UserIDValidator = sessionDescUserID.Validators[0].(func(string) error)
	// sessionDescExamCode is the schema descriptor for exam_code field.
	sessionDescExamCode := sessionFields[1].Descriptor()
	// session.ExamCodeValidator is a validator for the "exam_code" field. It is called by the builders before save.
	session.ExamCodeValidator = sessionDescExamCode.Validators[0].(func(string) error)
	// sessionDescSection is the schema descriptor for section field.
	sessionDescSection := sessionFields[2].Descriptor()
	// session.DefaultSection holds the default value on creation for the section field.
	session.DefaultSection = sessionDescSection.Default.(string)
	// sessionDescTotalScore is the schema descriptor for total_score field.
	sessionDescTotalScore := sessionFields[4].Descriptor()
	// session.DefaultTotalScore holds the default value on creation for the total_score field.
	session.DefaultTotalScore = sessionDescTotalScore.Default.(float64)
	// sessionDescDurationSeconds is the schema descriptor for duration_seconds field.
	sessionDescDurationSeconds := sessionFields[5].Descriptor()
	// session.DefaultDurationSeconds holds the default value on creation for the duration_seconds field.
	session.DefaultDurationSeconds = sessionDescDurationSeconds.Default.(int)
	// session.DurationSecondsValidator is a validator for the "duration_seconds" field. It is called by the builders before save.
	session.DurationSecondsValidator = sessionDescDurationSeconds.Validators[0].(func(int) error)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[7].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	userskillprogressFields := schema.UserSkillProgress{}.Fields()
	_ = userskillprogressFields
	// userskillprogressDescUserID is the schema descriptor for user_id field.
	userskillprogressDescUserID := userskillprogressFields[0].Descriptor()
	// userskillprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userskillprogress.UserIDValidator = userskillprogressDescUserID.Validators[0].(func(string) error)
	// userskillprogressDescExamCode is the schema descriptor for exam_code field.
	userskillprogressDescExamCode := userskillprogressFields[1].Descriptor()
	// userskillprogress.ExamCodeValidator is a validator for the "exam_code" field. It is called by the builders before save.
	userskillprogress.ExamCodeValidator = userskillprogressDescExamCode.Validators[0].(func(string) error)
	// userskillprogressDescLastScorePercent is the schema descriptor for last_score_percent field.
	userskillprogressDescLastScorePercent := userskillprogressFields[4].Descriptor()
	// userskillprogress.DefaultLastScorePercent holds the default value on creation for the last_score_percent field.
	userskillprogress.DefaultLastScorePercent = userskillprogressDescLastScorePercent.Default.(float64)
	// userskillprogressDescTotalAttempts is the schema descriptor for total_attempts field.
	userskillprogressDescTotalAttempts := userskillprogressFields[5].Descriptor()
	// userskillprogress.DefaultTotalAttempts holds the default value on creation for the total_attempts field.
	userskillprogress.DefaultTotalAttempts = userskillprogressDescTotalAttempts.Default.(int)
	// userskillprogress.TotalAttemptsValidator is a validator for the "total_attempts" field. It is called by the builders before save.
	userskillprogress.TotalAttemptsValidator = userskillprogressDescTotalAttempts.Validators[0].(func(int) error)
	// userskillprogressDescUpdatedAt is the schema descriptor for updated_at field.
	userskillprogressDescUpdatedAt := userskillprogressFields[6].Descriptor()
	// userskillprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userskillprogress.DefaultUpdatedAt = userskillprogressDescUpdatedAt.Default.(func() time.Time)
	// userskillprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userskillprogress.UpdateDefaultUpdatedAt = userskillprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
}
