// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
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
	"github.com/visaetude/prepcore/ent/predicate"
	"github.com/visaetude/prepcore/ent/question"
	"github.com/visaetude/prepcore/ent/session"
	"github.com/visaetude/prepcore/ent/userskillprogress"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnswer            = "Answer"
	TypeAsset             = "Asset"
	TypeAttempt           = "Attempt"
	TypeCEFRCertificate   = "CEFRCertificate"
	TypeChoice            = "Choice"
	TypeCourseExercise    = "CourseExercise"
	TypeCourseLesson      = "CourseLesson"
	TypeExam              = "Exam"
	TypeExamFormatResult  = "ExamFormatResult"
	TypeExamSection       = "ExamSection"
	TypePassage           = "Passage"
	TypeQuestion          = "Question"
	TypeSession           = "Session"
	TypeUserSkillProgress = "UserSkillProgress"
)

// AnswerMutation represents an operation that mutates the Answer nodes in the graph.
type AnswerMutation struct {
	config
	op              Op
	typ             string
	id              *int
	text_answer     *string
	correct         *bool
	created_at      *time.Time
	clearedFields   map[string]struct{}
	attempt         *int
	clearedattempt  bool
	question        *int
	clearedquestion bool
	choice          *int
	clearedchoice   bool
	done            bool
	oldValue        func(context.Context) (*Answer, error)
	predicates      []predicate.Answer
}

var _ ent.Mutation = (*AnswerMutation)(nil)

// answerOption allows management of the mutation configuration using functional options.
type answerOption func(*AnswerMutation)

// newAnswerMutation creates new mutation for the Answer entity.
func newAnswerMutation(c config, op Op, opts ...answerOption) *AnswerMutation {
	m := &AnswerMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerID sets the ID field of the mutation.
func withAnswerID(id int) answerOption {
	return func(m *AnswerMutation) {
		var (
			err   error
			once  sync.Once
			value *Answer
		)
		m.oldValue = func(ctx context.Context) (*Answer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Answer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswer sets the old Answer of the mutation.
func withAnswer(node *Answer) answerOption {
	return func(m *AnswerMutation) {
		m.oldValue = func(context.Context) (*Answer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Answer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTextAnswer sets the "text_answer" field.
func (m *AnswerMutation) SetTextAnswer(s string) {
	m.text_answer = &s
}

// TextAnswer returns the value of the "text_answer" field in the mutation.
func (m *AnswerMutation) TextAnswer() (r string, exists bool) {
	v := m.text_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldTextAnswer returns the old "text_answer" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldTextAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextAnswer: %w", err)
	}
	return oldValue.TextAnswer, nil
}

// ResetTextAnswer resets all changes to the "text_answer" field.
func (m *AnswerMutation) ResetTextAnswer() {
	m.text_answer = nil
}

// SetCorrect sets the "correct" field.
func (m *AnswerMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AnswerMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AnswerMutation) ResetCorrect() {
	m.correct = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnswerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnswerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnswerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAttemptID sets the "attempt" edge to the Attempt entity by id.
func (m *AnswerMutation) SetAttemptID(id int) {
	m.attempt = &id
}

// ClearAttempt clears the "attempt" edge to the Attempt entity.
func (m *AnswerMutation) ClearAttempt() {
	m.clearedattempt = true
}

// AttemptCleared reports if the "attempt" edge to the Attempt entity was cleared.
func (m *AnswerMutation) AttemptCleared() bool {
	return m.clearedattempt
}

// AttemptID returns the "attempt" edge ID in the mutation.
func (m *AnswerMutation) AttemptID() (id int, exists bool) {
	if m.attempt != nil {
		return *m.attempt, true
	}
	return
}

// AttemptIDs returns the "attempt" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AttemptID instead. It exists only for internal usage by the builders.
func (m *AnswerMutation) AttemptIDs() (ids []int) {
	if id := m.attempt; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAttempt resets all changes to the "attempt" edge.
func (m *AnswerMutation) ResetAttempt() {
	m.attempt = nil
	m.clearedattempt = false
}

// SetQuestionID sets the "question" edge to the Question entity by id.
func (m *AnswerMutation) SetQuestionID(id int) {
	m.question = &id
}

// ClearQuestion clears the "question" edge to the Question entity.
func (m *AnswerMutation) ClearQuestion() {
	m.clearedquestion = true
}

// QuestionCleared reports if the "question" edge to the Question entity was cleared.
func (m *AnswerMutation) QuestionCleared() bool {
	return m.clearedquestion
}

// QuestionID returns the "question" edge ID in the mutation.
func (m *AnswerMutation) QuestionID() (id int, exists bool) {
	if m.question != nil {
		return *m.question, true
	}
	return
}

// QuestionIDs returns the "question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionID instead. It exists only for internal usage by the builders.
func (m *AnswerMutation) QuestionIDs() (ids []int) {
	if id := m.question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestion resets all changes to the "question" edge.
func (m *AnswerMutation) ResetQuestion() {
	m.question = nil
	m.clearedquestion = false
}

// SetChoiceID sets the "choice" edge to the Choice entity by id.
func (m *AnswerMutation) SetChoiceID(id int) {
	m.choice = &id
}

// ClearChoice clears the "choice" edge to the Choice entity.
func (m *AnswerMutation) ClearChoice() {
	m.clearedchoice = true
}

// ChoiceCleared reports if the "choice" edge to the Choice entity was cleared.
func (m *AnswerMutation) ChoiceCleared() bool {
	return m.clearedchoice
}

// ChoiceID returns the "choice" edge ID in the mutation.
func (m *AnswerMutation) ChoiceID() (id int, exists bool) {
	if m.choice != nil {
		return *m.choice, true
	}
	return
}

// ChoiceIDs returns the "choice" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChoiceID instead. It exists only for internal usage by the builders.
func (m *AnswerMutation) ChoiceIDs() (ids []int) {
	if id := m.choice; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChoice resets all changes to the "choice" edge.
func (m *AnswerMutation) ResetChoice() {
	m.choice = nil
	m.clearedchoice = false
}

// Where appends a list predicates to the AnswerMutation builder.
func (m *AnswerMutation) Where(ps ...predicate.Answer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Answer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Answer).
func (m *AnswerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.text_answer != nil {
		fields = append(fields, answer.FieldTextAnswer)
	}
	if m.correct != nil {
		fields = append(fields, answer.FieldCorrect)
	}
	if m.created_at != nil {
		fields = append(fields, answer.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answer.FieldTextAnswer:
		return m.TextAnswer()
	case answer.FieldCorrect:
		return m.Correct()
	case answer.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answer.FieldTextAnswer:
		return m.OldTextAnswer(ctx)
	case answer.FieldCorrect:
		return m.OldCorrect(ctx)
	case answer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Answer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answer.FieldTextAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextAnswer(v)
		return nil
	case answer.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case answer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Answer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Answer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Answer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerMutation) ResetField(name string) error {
	switch name {
	case answer.FieldTextAnswer:
		m.ResetTextAnswer()
		return nil
	case answer.FieldCorrect:
		m.ResetCorrect()
		return nil
	case answer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Answer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.attempt != nil {
		edges = append(edges, answer.EdgeAttempt)
	}
	if m.question != nil {
		edges = append(edges, answer.EdgeQuestion)
	}
	if m.choice != nil {
		edges = append(edges, answer.EdgeChoice)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case answer.EdgeAttempt:
		if id := m.attempt; id != nil {
			return []ent.Value{*id}
		}
	case answer.EdgeQuestion:
		if id := m.question; id != nil {
			return []ent.Value{*id}
		}
	case answer.EdgeChoice:
		if id := m.choice; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedattempt {
		edges = append(edges, answer.EdgeAttempt)
	}
	if m.clearedquestion {
		edges = append(edges, answer.EdgeQuestion)
	}
	if m.clearedchoice {
		edges = append(edges, answer.EdgeChoice)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerMutation) EdgeCleared(name string) bool {
	switch name {
	case answer.EdgeAttempt:
		return m.clearedattempt
	case answer.EdgeQuestion:
		return m.clearedquestion
	case answer.EdgeChoice:
		return m.clearedchoice
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerMutation) ClearEdge(name string) error {
	switch name {
	case answer.EdgeAttempt:
		m.ClearAttempt()
		return nil
	case answer.EdgeQuestion:
		m.ClearQuestion()
		return nil
	case answer.EdgeChoice:
		m.ClearChoice()
		return nil
	}
	return fmt.Errorf("unknown Answer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerMutation) ResetEdge(name string) error {
	switch name {
	case answer.EdgeAttempt:
		m.ResetAttempt()
		return nil
	case answer.EdgeQuestion:
		m.ResetQuestion()
		return nil
	case answer.EdgeChoice:
		m.ResetChoice()
		return nil
	}
	return fmt.Errorf("unknown Answer edge %s", name)
}

// AssetMutation represents an operation that mutates the Asset nodes in the graph.
type AssetMutation struct {
	config
	op            Op
	typ           string
	id            *int
	_path         *string
	kind          *asset.Kind
	language      *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Asset, error)
	predicates    []predicate.Asset
}

var _ ent.Mutation = (*AssetMutation)(nil)

// assetOption allows management of the mutation configuration using functional options.
type assetOption func(*AssetMutation)

// newAssetMutation creates new mutation for the Asset entity.
func newAssetMutation(c config, op Op, opts ...assetOption) *AssetMutation {
	m := &AssetMutation{
		config:        c,
		op:            op,
		typ:           TypeAsset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssetID sets the ID field of the mutation.
func withAssetID(id int) assetOption {
	return func(m *AssetMutation) {
		var (
			err   error
			once  sync.Once
			value *Asset
		)
		m.oldValue = func(ctx context.Context) (*Asset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Asset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAsset sets the old Asset of the mutation.
func withAsset(node *Asset) assetOption {
	return func(m *AssetMutation) {
		m.oldValue = func(context.Context) (*Asset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssetMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssetMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Asset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPath sets the "path" field.
func (m *AssetMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *AssetMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *AssetMutation) ResetPath() {
	m._path = nil
}

// SetKind sets the "kind" field.
func (m *AssetMutation) SetKind(a asset.Kind) {
	m.kind = &a
}

// Kind returns the value of the "kind" field in the mutation.
func (m *AssetMutation) Kind() (r asset.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldKind(ctx context.Context) (v asset.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *AssetMutation) ResetKind() {
	m.kind = nil
}

// SetLanguage sets the "language" field.
func (m *AssetMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *AssetMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *AssetMutation) ResetLanguage() {
	m.language = nil
}

// Where appends a list predicates to the AssetMutation builder.
func (m *AssetMutation) Where(ps ...predicate.Asset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Asset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Asset).
func (m *AssetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssetMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m._path != nil {
		fields = append(fields, asset.FieldPath)
	}
	if m.kind != nil {
		fields = append(fields, asset.FieldKind)
	}
	if m.language != nil {
		fields = append(fields, asset.FieldLanguage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case asset.FieldPath:
		return m.Path()
	case asset.FieldKind:
		return m.Kind()
	case asset.FieldLanguage:
		return m.Language()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case asset.FieldPath:
		return m.OldPath(ctx)
	case asset.FieldKind:
		return m.OldKind(ctx)
	case asset.FieldLanguage:
		return m.OldLanguage(ctx)
	}
	return nil, fmt.Errorf("unknown Asset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case asset.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case asset.FieldKind:
		v, ok := value.(asset.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case asset.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	}
	return fmt.Errorf("unknown Asset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssetMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssetMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Asset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssetMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssetMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Asset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssetMutation) ResetField(name string) error {
	switch name {
	case asset.FieldPath:
		m.ResetPath()
		return nil
	case asset.FieldKind:
		m.ResetKind()
		return nil
	case asset.FieldLanguage:
		m.ResetLanguage()
		return nil
	}
	return fmt.Errorf("unknown Asset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Asset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Asset edge %s", name)
}

// AttemptMutation represents an operation that mutates the Attempt nodes in the graph.
type AttemptMutation struct {
	config
	op               Op
	typ              string
	id               *int
	section_code     *attempt.SectionCode
	total_items      *int
	addtotal_items   *int
	raw_score        *int
	addraw_score     *int
	score_percent    *float64
	addscore_percent *float64
	started_at       *time.Time
	finished_at      *time.Time
	clearedFields    map[string]struct{}
	session          *int
	clearedsession   bool
	answers          map[int]struct{}
	removedanswers   map[int]struct{}
	clearedanswers   bool
	done             bool
	oldValue         func(context.Context) (*Attempt, error)
	predicates       []predicate.Attempt
}

var _ ent.Mutation = (*AttemptMutation)(nil)

// attemptOption allows management of the mutation configuration using functional options.
type attemptOption func(*AttemptMutation)

// newAttemptMutation creates new mutation for the Attempt entity.
func newAttemptMutation(c config, op Op, opts ...attemptOption) *AttemptMutation {
	m := &AttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptID sets the ID field of the mutation.
func withAttemptID(id int) attemptOption {
	return func(m *AttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *Attempt
		)
		m.oldValue = func(ctx context.Context) (*Attempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttempt sets the old Attempt of the mutation.
func withAttempt(node *Attempt) attemptOption {
	return func(m *AttemptMutation) {
		m.oldValue = func(context.Context) (*Attempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSectionCode sets the "section_code" field.
func (m *AttemptMutation) SetSectionCode(ac attempt.SectionCode) {
	m.section_code = &ac
}

// SectionCode returns the value of the "section_code" field in the mutation.
func (m *AttemptMutation) SectionCode() (r attempt.SectionCode, exists bool) {
	v := m.section_code
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionCode returns the old "section_code" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldSectionCode(ctx context.Context) (v attempt.SectionCode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionCode: %w", err)
	}
	return oldValue.SectionCode, nil
}

// ResetSectionCode resets all changes to the "section_code" field.
func (m *AttemptMutation) ResetSectionCode() {
	m.section_code = nil
}

// SetTotalItems sets the "total_items" field.
func (m *AttemptMutation) SetTotalItems(i int) {
	m.total_items = &i
	m.addtotal_items = nil
}

// TotalItems returns the value of the "total_items" field in the mutation.
func (m *AttemptMutation) TotalItems() (r int, exists bool) {
	v := m.total_items
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalItems returns the old "total_items" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldTotalItems(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalItems: %w", err)
	}
	return oldValue.TotalItems, nil
}

// AddTotalItems adds i to the "total_items" field.
func (m *AttemptMutation) AddTotalItems(i int) {
	if m.addtotal_items != nil {
		*m.addtotal_items += i
	} else {
		m.addtotal_items = &i
	}
}

// AddedTotalItems returns the value that was added to the "total_items" field in this mutation.
func (m *AttemptMutation) AddedTotalItems() (r int, exists bool) {
	v := m.addtotal_items
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalItems resets all changes to the "total_items" field.
func (m *AttemptMutation) ResetTotalItems() {
	m.total_items = nil
	m.addtotal_items = nil
}

// SetRawScore sets the "raw_score" field.
func (m *AttemptMutation) SetRawScore(i int) {
	m.raw_score = &i
	m.addraw_score = nil
}

// RawScore returns the value of the "raw_score" field in the mutation.
func (m *AttemptMutation) RawScore() (r int, exists bool) {
	v := m.raw_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRawScore returns the old "raw_score" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldRawScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawScore: %w", err)
	}
	return oldValue.RawScore, nil
}

// AddRawScore adds i to the "raw_score" field.
func (m *AttemptMutation) AddRawScore(i int) {
	if m.addraw_score != nil {
		*m.addraw_score += i
	} else {
		m.addraw_score = &i
	}
}

// AddedRawScore returns the value that was added to the "raw_score" field in this mutation.
func (m *AttemptMutation) AddedRawScore() (r int, exists bool) {
	v := m.addraw_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRawScore resets all changes to the "raw_score" field.
func (m *AttemptMutation) ResetRawScore() {
	m.raw_score = nil
	m.addraw_score = nil
}

// SetScorePercent sets the "score_percent" field.
func (m *AttemptMutation) SetScorePercent(f float64) {
	m.score_percent = &f
	m.addscore_percent = nil
}

// ScorePercent returns the value of the "score_percent" field in the mutation.
func (m *AttemptMutation) ScorePercent() (r float64, exists bool) {
	v := m.score_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldScorePercent returns the old "score_percent" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldScorePercent(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScorePercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScorePercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScorePercent: %w", err)
	}
	return oldValue.ScorePercent, nil
}

// AddScorePercent adds f to the "score_percent" field.
func (m *AttemptMutation) AddScorePercent(f float64) {
	if m.addscore_percent != nil {
		*m.addscore_percent += f
	} else {
		m.addscore_percent = &f
	}
}

// AddedScorePercent returns the value that was added to the "score_percent" field in this mutation.
func (m *AttemptMutation) AddedScorePercent() (r float64, exists bool) {
	v := m.addscore_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetScorePercent resets all changes to the "score_percent" field.
func (m *AttemptMutation) ResetScorePercent() {
	m.score_percent = nil
	m.addscore_percent = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AttemptMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AttemptMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AttemptMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *AttemptMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *AttemptMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *AttemptMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[attempt.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *AttemptMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[attempt.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *AttemptMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, attempt.FieldFinishedAt)
}

// SetSessionID sets the "session" edge to the Session entity by id.
func (m *AttemptMutation) SetSessionID(id int) {
	m.session = &id
}

// ClearSession clears the "session" edge to the Session entity.
func (m *AttemptMutation) ClearSession() {
	m.clearedsession = true
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *AttemptMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionID returns the "session" edge ID in the mutation.
func (m *AttemptMutation) SessionID() (id int, exists bool) {
	if m.session != nil {
		return *m.session, true
	}
	return
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *AttemptMutation) SessionIDs() (ids []int) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *AttemptMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by ids.
func (m *AttemptMutation) AddAnswerIDs(ids ...int) {
	if m.answers == nil {
		m.answers = make(map[int]struct{})
	}
	for i := range ids {
		m.answers[ids[i]] = struct{}{}
	}
}

// ClearAnswers clears the "answers" edge to the Answer entity.
func (m *AttemptMutation) ClearAnswers() {
	m.clearedanswers = true
}

// AnswersCleared reports if the "answers" edge to the Answer entity was cleared.
func (m *AttemptMutation) AnswersCleared() bool {
	return m.clearedanswers
}

// RemoveAnswerIDs removes the "answers" edge to the Answer entity by IDs.
func (m *AttemptMutation) RemoveAnswerIDs(ids ...int) {
	if m.removedanswers == nil {
		m.removedanswers = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.answers, ids[i])
		m.removedanswers[ids[i]] = struct{}{}
	}
}

// RemovedAnswers returns the removed IDs of the "answers" edge to the Answer entity.
func (m *AttemptMutation) RemovedAnswersIDs() (ids []int) {
	for id := range m.removedanswers {
		ids = append(ids, id)
	}
	return
}

// AnswersIDs returns the "answers" edge IDs in the mutation.
func (m *AttemptMutation) AnswersIDs() (ids []int) {
	for id := range m.answers {
		ids = append(ids, id)
	}
	return
}

// ResetAnswers resets all changes to the "answers" edge.
func (m *AttemptMutation) ResetAnswers() {
	m.answers = nil
	m.clearedanswers = false
	m.removedanswers = nil
}

// Where appends a list predicates to the AttemptMutation builder.
func (m *AttemptMutation) Where(ps ...predicate.Attempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attempt).
func (m *AttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.section_code != nil {
		fields = append(fields, attempt.FieldSectionCode)
	}
	if m.total_items != nil {
		fields = append(fields, attempt.FieldTotalItems)
	}
	if m.raw_score != nil {
		fields = append(fields, attempt.FieldRawScore)
	}
	if m.score_percent != nil {
		fields = append(fields, attempt.FieldScorePercent)
	}
	if m.started_at != nil {
		fields = append(fields, attempt.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, attempt.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldSectionCode:
		return m.SectionCode()
	case attempt.FieldTotalItems:
		return m.TotalItems()
	case attempt.FieldRawScore:
		return m.RawScore()
	case attempt.FieldScorePercent:
		return m.ScorePercent()
	case attempt.FieldStartedAt:
		return m.StartedAt()
	case attempt.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attempt.FieldSectionCode:
		return m.OldSectionCode(ctx)
	case attempt.FieldTotalItems:
		return m.OldTotalItems(ctx)
	case attempt.FieldRawScore:
		return m.OldRawScore(ctx)
	case attempt.FieldScorePercent:
		return m.OldScorePercent(ctx)
	case attempt.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case attempt.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Attempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldSectionCode:
		v, ok := value.(attempt.SectionCode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionCode(v)
		return nil
	case attempt.FieldTotalItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalItems(v)
		return nil
	case attempt.FieldRawScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawScore(v)
		return nil
	case attempt.FieldScorePercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScorePercent(v)
		return nil
	case attempt.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case attempt.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_items != nil {
		fields = append(fields, attempt.FieldTotalItems)
	}
	if m.addraw_score != nil {
		fields = append(fields, attempt.FieldRawScore)
	}
	if m.addscore_percent != nil {
		fields = append(fields, attempt.FieldScorePercent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldTotalItems:
		return m.AddedTotalItems()
	case attempt.FieldRawScore:
		return m.AddedRawScore()
	case attempt.FieldScorePercent:
		return m.AddedScorePercent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldTotalItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalItems(v)
		return nil
	case attempt.FieldRawScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRawScore(v)
		return nil
	case attempt.FieldScorePercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScorePercent(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attempt.FieldFinishedAt) {
		fields = append(fields, attempt.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptMutation) ClearField(name string) error {
	switch name {
	case attempt.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Attempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptMutation) ResetField(name string) error {
	switch name {
	case attempt.FieldSectionCode:
		m.ResetSectionCode()
		return nil
	case attempt.FieldTotalItems:
		m.ResetTotalItems()
		return nil
	case attempt.FieldRawScore:
		m.ResetRawScore()
		return nil
	case attempt.FieldScorePercent:
		m.ResetScorePercent()
		return nil
	case attempt.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case attempt.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, attempt.EdgeSession)
	}
	if m.answers != nil {
		edges = append(edges, attempt.EdgeAnswers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case attempt.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case attempt.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.answers))
		for id := range m.answers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedanswers != nil {
		edges = append(edges, attempt.EdgeAnswers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case attempt.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.removedanswers))
		for id := range m.removedanswers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, attempt.EdgeSession)
	}
	if m.clearedanswers {
		edges = append(edges, attempt.EdgeAnswers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptMutation) EdgeCleared(name string) bool {
	switch name {
	case attempt.EdgeSession:
		return m.clearedsession
	case attempt.EdgeAnswers:
		return m.clearedanswers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptMutation) ClearEdge(name string) error {
	switch name {
	case attempt.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Attempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptMutation) ResetEdge(name string) error {
	switch name {
	case attempt.EdgeSession:
		m.ResetSession()
		return nil
	case attempt.EdgeAnswers:
		m.ResetAnswers()
		return nil
	}
	return fmt.Errorf("unknown Attempt edge %s", name)
}

// CEFRCertificateMutation represents an operation that mutates the CEFRCertificate nodes in the graph.
type CEFRCertificateMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	exam_code     *string
	level         *cefrcertificate.Level
	public_id     *string
	issued_at     *time.Time
	pdf_path      *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CEFRCertificate, error)
	predicates    []predicate.CEFRCertificate
}

var _ ent.Mutation = (*CEFRCertificateMutation)(nil)

// cefrcertificateOption allows management of the mutation configuration using functional options.
type cefrcertificateOption func(*CEFRCertificateMutation)

// newCEFRCertificateMutation creates new mutation for the CEFRCertificate entity.
func newCEFRCertificateMutation(c config, op Op, opts ...cefrcertificateOption) *CEFRCertificateMutation {
	m := &CEFRCertificateMutation{
		config:        c,
		op:            op,
		typ:           TypeCEFRCertificate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCEFRCertificateID sets the ID field of the mutation.
func withCEFRCertificateID(id int) cefrcertificateOption {
	return func(m *CEFRCertificateMutation) {
		var (
			err   error
			once  sync.Once
			value *CEFRCertificate
		)
		m.oldValue = func(ctx context.Context) (*CEFRCertificate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CEFRCertificate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCEFRCertificate sets the old CEFRCertificate of the mutation.
func withCEFRCertificate(node *CEFRCertificate) cefrcertificateOption {
	return func(m *CEFRCertificateMutation) {
		m.oldValue = func(context.Context) (*CEFRCertificate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CEFRCertificateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CEFRCertificateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CEFRCertificateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CEFRCertificateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CEFRCertificate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CEFRCertificateMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CEFRCertificateMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CEFRCertificate entity.
// If the CEFRCertificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CEFRCertificateMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CEFRCertificateMutation) ResetUserID() {
	m.user_id = nil
}

// SetExamCode sets the "exam_code" field.
func (m *CEFRCertificateMutation) SetExamCode(s string) {
	m.exam_code = &s
}

// ExamCode returns the value of the "exam_code" field in the mutation.
func (m *CEFRCertificateMutation) ExamCode() (r string, exists bool) {
	v := m.exam_code
	if v == nil {
		return
	}
	return *v, true
}

// OldExamCode returns the old "exam_code" field's value of the CEFRCertificate entity.
// If the CEFRCertificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CEFRCertificateMutation) OldExamCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamCode: %w", err)
	}
	return oldValue.ExamCode, nil
}

// ResetExamCode resets all changes to the "exam_code" field.
func (m *CEFRCertificateMutation) ResetExamCode() {
	m.exam_code = nil
}

// SetLevel sets the "level" field.
func (m *CEFRCertificateMutation) SetLevel(c cefrcertificate.Level) {
	m.level = &c
}

// Level returns the value of the "level" field in the mutation.
func (m *CEFRCertificateMutation) Level() (r cefrcertificate.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the CEFRCertificate entity.
// If the CEFRCertificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CEFRCertificateMutation) OldLevel(ctx context.Context) (v cefrcertificate.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *CEFRCertificateMutation) ResetLevel() {
	m.level = nil
}

// SetPublicID sets the "public_id" field.
func (m *CEFRCertificateMutation) SetPublicID(s string) {
	m.public_id = &s
}

// PublicID returns the value of the "public_id" field in the mutation.
func (m *CEFRCertificateMutation) PublicID() (r string, exists bool) {
	v := m.public_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicID returns the old "public_id" field's value of the CEFRCertificate entity.
// If the CEFRCertificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CEFRCertificateMutation) OldPublicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicID: %w", err)
	}
	return oldValue.PublicID, nil
}

// ResetPublicID resets all changes to the "public_id" field.
func (m *CEFRCertificateMutation) ResetPublicID() {
	m.public_id = nil
}

// SetIssuedAt sets the "issued_at" field.
func (m *CEFRCertificateMutation) SetIssuedAt(t time.Time) {
	m.issued_at = &t
}

// IssuedAt returns the value of the "issued_at" field in the mutation.
func (m *CEFRCertificateMutation) IssuedAt() (r time.Time, exists bool) {
	v := m.issued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldIssuedAt returns the old "issued_at" field's value of the CEFRCertificate entity.
// If the CEFRCertificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CEFRCertificateMutation) OldIssuedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssuedAt: %w", err)
	}
	return oldValue.IssuedAt, nil
}

// ResetIssuedAt resets all changes to the "issued_at" field.
func (m *CEFRCertificateMutation) ResetIssuedAt() {
	m.issued_at = nil
}

// SetPdfPath sets the "pdf_path" field.
func (m *CEFRCertificateMutation) SetPdfPath(s string) {
	m.pdf_path = &s
}

// PdfPath returns the value of the "pdf_path" field in the mutation.
func (m *CEFRCertificateMutation) PdfPath() (r string, exists bool) {
	v := m.pdf_path
	if v == nil {
		return
	}
	return *v, true
}

// OldPdfPath returns the old "pdf_path" field's value of the CEFRCertificate entity.
// If the CEFRCertificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CEFRCertificateMutation) OldPdfPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdfPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdfPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdfPath: %w", err)
	}
	return oldValue.PdfPath, nil
}

// ResetPdfPath resets all changes to the "pdf_path" field.
func (m *CEFRCertificateMutation) ResetPdfPath() {
	m.pdf_path = nil
}

// Where appends a list predicates to the CEFRCertificateMutation builder.
func (m *CEFRCertificateMutation) Where(ps ...predicate.CEFRCertificate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CEFRCertificateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CEFRCertificateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CEFRCertificate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CEFRCertificateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CEFRCertificateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CEFRCertificate).
func (m *CEFRCertificateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CEFRCertificateMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, cefrcertificate.FieldUserID)
	}
	if m.exam_code != nil {
		fields = append(fields, cefrcertificate.FieldExamCode)
	}
	if m.level != nil {
		fields = append(fields, cefrcertificate.FieldLevel)
	}
	if m.public_id != nil {
		fields = append(fields, cefrcertificate.FieldPublicID)
	}
	if m.issued_at != nil {
		fields = append(fields, cefrcertificate.FieldIssuedAt)
	}
	if m.pdf_path != nil {
		fields = append(fields, cefrcertificate.FieldPdfPath)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CEFRCertificateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cefrcertificate.FieldUserID:
		return m.UserID()
	case cefrcertificate.FieldExamCode:
		return m.ExamCode()
	case cefrcertificate.FieldLevel:
		return m.Level()
	case cefrcertificate.FieldPublicID:
		return m.PublicID()
	case cefrcertificate.FieldIssuedAt:
		return m.IssuedAt()
	case cefrcertificate.FieldPdfPath:
		return m.PdfPath()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CEFRCertificateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cefrcertificate.FieldUserID:
		return m.OldUserID(ctx)
	case cefrcertificate.FieldExamCode:
		return m.OldExamCode(ctx)
	case cefrcertificate.FieldLevel:
		return m.OldLevel(ctx)
	case cefrcertificate.FieldPublicID:
		return m.OldPublicID(ctx)
	case cefrcertificate.FieldIssuedAt:
		return m.OldIssuedAt(ctx)
	case cefrcertificate.FieldPdfPath:
		return m.OldPdfPath(ctx)
	}
	return nil, fmt.Errorf("unknown CEFRCertificate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CEFRCertificateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cefrcertificate.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case cefrcertificate.FieldExamCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamCode(v)
		return nil
	case cefrcertificate.FieldLevel:
		v, ok := value.(cefrcertificate.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case cefrcertificate.FieldPublicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicID(v)
		return nil
	case cefrcertificate.FieldIssuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssuedAt(v)
		return nil
	case cefrcertificate.FieldPdfPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdfPath(v)
		return nil
	}
	return fmt.Errorf("unknown CEFRCertificate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CEFRCertificateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CEFRCertificateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CEFRCertificateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CEFRCertificate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CEFRCertificateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CEFRCertificateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CEFRCertificateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CEFRCertificate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CEFRCertificateMutation) ResetField(name string) error {
	switch name {
	case cefrcertificate.FieldUserID:
		m.ResetUserID()
		return nil
	case cefrcertificate.FieldExamCode:
		m.ResetExamCode()
		return nil
	case cefrcertificate.FieldLevel:
		m.ResetLevel()
		return nil
	case cefrcertificate.FieldPublicID:
		m.ResetPublicID()
		return nil
	case cefrcertificate.FieldIssuedAt:
		m.ResetIssuedAt()
		return nil
	case cefrcertificate.FieldPdfPath:
		m.ResetPdfPath()
		return nil
	}
	return fmt.Errorf("unknown CEFRCertificate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CEFRCertificateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CEFRCertificateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CEFRCertificateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CEFRCertificateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CEFRCertificateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CEFRCertificateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CEFRCertificateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CEFRCertificate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CEFRCertificateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CEFRCertificate edge %s", name)
}

// ChoiceMutation represents an operation that mutates the Choice nodes in the graph.
type ChoiceMutation struct {
	config
	op              Op
	typ             string
	id              *int
	text            *string
	is_correct      *bool
	clearedFields   map[string]struct{}
	question        *int
	clearedquestion bool
	done            bool
	oldValue        func(context.Context) (*Choice, error)
	predicates      []predicate.Choice
}

var _ ent.Mutation = (*ChoiceMutation)(nil)

// choiceOption allows management of the mutation configuration using functional options.
type choiceOption func(*ChoiceMutation)

// newChoiceMutation creates new mutation for the Choice entity.
func newChoiceMutation(c config, op Op, opts ...choiceOption) *ChoiceMutation {
	m := &ChoiceMutation{
		config:        c,
		op:            op,
		typ:           TypeChoice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChoiceID sets the ID field of the mutation.
func withChoiceID(id int) choiceOption {
	return func(m *ChoiceMutation) {
		var (
			err   error
			once  sync.Once
			value *Choice
		)
		m.oldValue = func(ctx context.Context) (*Choice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Choice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChoice sets the old Choice of the mutation.
func withChoice(node *Choice) choiceOption {
	return func(m *ChoiceMutation) {
		m.oldValue = func(context.Context) (*Choice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChoiceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChoiceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChoiceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChoiceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Choice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetText sets the "text" field.
func (m *ChoiceMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *ChoiceMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Choice entity.
// If the Choice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChoiceMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *ChoiceMutation) ResetText() {
	m.text = nil
}

// SetIsCorrect sets the "is_correct" field.
func (m *ChoiceMutation) SetIsCorrect(b bool) {
	m.is_correct = &b
}

// IsCorrect returns the value of the "is_correct" field in the mutation.
func (m *ChoiceMutation) IsCorrect() (r bool, exists bool) {
	v := m.is_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCorrect returns the old "is_correct" field's value of the Choice entity.
// If the Choice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChoiceMutation) OldIsCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCorrect: %w", err)
	}
	return oldValue.IsCorrect, nil
}

// ResetIsCorrect resets all changes to the "is_correct" field.
func (m *ChoiceMutation) ResetIsCorrect() {
	m.is_correct = nil
}

// SetQuestionID sets the "question" edge to the Question entity by id.
func (m *ChoiceMutation) SetQuestionID(id int) {
	m.question = &id
}

// ClearQuestion clears the "question" edge to the Question entity.
func (m *ChoiceMutation) ClearQuestion() {
	m.clearedquestion = true
}

// QuestionCleared reports if the "question" edge to the Question entity was cleared.
func (m *ChoiceMutation) QuestionCleared() bool {
	return m.clearedquestion
}

// QuestionID returns the "question" edge ID in the mutation.
func (m *ChoiceMutation) QuestionID() (id int, exists bool) {
	if m.question != nil {
		return *m.question, true
	}
	return
}

// QuestionIDs returns the "question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionID instead. It exists only for internal usage by the builders.
func (m *ChoiceMutation) QuestionIDs() (ids []int) {
	if id := m.question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestion resets all changes to the "question" edge.
func (m *ChoiceMutation) ResetQuestion() {
	m.question = nil
	m.clearedquestion = false
}

// Where appends a list predicates to the ChoiceMutation builder.
func (m *ChoiceMutation) Where(ps ...predicate.Choice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChoiceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChoiceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Choice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChoiceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChoiceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Choice).
func (m *ChoiceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChoiceMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.text != nil {
		fields = append(fields, choice.FieldText)
	}
	if m.is_correct != nil {
		fields = append(fields, choice.FieldIsCorrect)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChoiceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case choice.FieldText:
		return m.Text()
	case choice.FieldIsCorrect:
		return m.IsCorrect()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChoiceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case choice.FieldText:
		return m.OldText(ctx)
	case choice.FieldIsCorrect:
		return m.OldIsCorrect(ctx)
	}
	return nil, fmt.Errorf("unknown Choice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChoiceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case choice.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case choice.FieldIsCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCorrect(v)
		return nil
	}
	return fmt.Errorf("unknown Choice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChoiceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChoiceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChoiceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Choice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChoiceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChoiceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChoiceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Choice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChoiceMutation) ResetField(name string) error {
	switch name {
	case choice.FieldText:
		m.ResetText()
		return nil
	case choice.FieldIsCorrect:
		m.ResetIsCorrect()
		return nil
	}
	return fmt.Errorf("unknown Choice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChoiceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.question != nil {
		edges = append(edges, choice.EdgeQuestion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChoiceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case choice.EdgeQuestion:
		if id := m.question; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChoiceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChoiceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChoiceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedquestion {
		edges = append(edges, choice.EdgeQuestion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChoiceMutation) EdgeCleared(name string) bool {
	switch name {
	case choice.EdgeQuestion:
		return m.clearedquestion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChoiceMutation) ClearEdge(name string) error {
	switch name {
	case choice.EdgeQuestion:
		m.ClearQuestion()
		return nil
	}
	return fmt.Errorf("unknown Choice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChoiceMutation) ResetEdge(name string) error {
	switch name {
	case choice.EdgeQuestion:
		m.ResetQuestion()
		return nil
	}
	return fmt.Errorf("unknown Choice edge %s", name)
}

// CourseExerciseMutation represents an operation that mutates the CourseExercise nodes in the graph.
type CourseExerciseMutation struct {
	config
	op             Op
	typ            string
	id             *int
	kind           *courseexercise.Kind
	stem           *string
	option_a       *string
	option_b       *string
	option_c       *string
	option_d       *string
	correct_option *string
	prompt         *string
	min_words      *int
	addmin_words   *int
	max_words      *int
	addmax_words   *int
	sample_answer  *string
	criteria       *string
	_order         *int
	add_order      *int
	clearedFields  map[string]struct{}
	lesson         *int
	clearedlesson  bool
	asset          *int
	clearedasset   bool
	done           bool
	oldValue       func(context.Context) (*CourseExercise, error)
	predicates     []predicate.CourseExercise
}

var _ ent.Mutation = (*CourseExerciseMutation)(nil)

// courseexerciseOption allows management of the mutation configuration using functional options.
type courseexerciseOption func(*CourseExerciseMutation)

// newCourseExerciseMutation creates new mutation for the CourseExercise entity.
func newCourseExerciseMutation(c config, op Op, opts ...courseexerciseOption) *CourseExerciseMutation {
	m := &CourseExerciseMutation{
		config:        c,
		op:            op,
		typ:           TypeCourseExercise,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCourseExerciseID sets the ID field of the mutation.
func withCourseExerciseID(id int) courseexerciseOption {
	return func(m *CourseExerciseMutation) {
		var (
			err   error
			once  sync.Once
			value *CourseExercise
		)
		m.oldValue = func(ctx context.Context) (*CourseExercise, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CourseExercise.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCourseExercise sets the old CourseExercise of the mutation.
func withCourseExercise(node *CourseExercise) courseexerciseOption {
	return func(m *CourseExerciseMutation) {
		m.oldValue = func(context.Context) (*CourseExercise, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CourseExerciseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CourseExerciseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CourseExerciseMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CourseExerciseMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CourseExercise.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *CourseExerciseMutation) SetKind(c courseexercise.Kind) {
	m.kind = &c
}

// Kind returns the value of the "kind" field in the mutation.
func (m *CourseExerciseMutation) Kind() (r courseexercise.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the CourseExercise entity.
// If the CourseExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseExerciseMutation) OldKind(ctx context.Context) (v courseexercise.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *CourseExerciseMutation) ResetKind() {
	m.kind = nil
}

// SetStem sets the "stem" field.
func (m *CourseExerciseMutation) SetStem(s string) {
	m.stem = &s
}

// Stem returns the value of the "stem" field in the mutation.
func (m *CourseExerciseMutation) Stem() (r string, exists bool) {
	v := m.stem
	if v == nil {
		return
	}
	return *v, true
}

// OldStem returns the old "stem" field's value of the CourseExercise entity.
// If the CourseExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseExerciseMutation) OldStem(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStem: %w", err)
	}
	return oldValue.Stem, nil
}

// ResetStem resets all changes to the "stem" field.
func (m *CourseExerciseMutation) ResetStem() {
	m.stem = nil
}

// SetOptionA sets the "option_a" field.
func (m *CourseExerciseMutation) SetOptionA(s string) {
	m.option_a = &s
}

// OptionA returns the value of the "option_a" field in the mutation.
func (m *CourseExerciseMutation) OptionA() (r string, exists bool) {
	v := m.option_a
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionA returns the old "option_a" field's value of the CourseExercise entity.
// If the CourseExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseExerciseMutation) OldOptionA(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionA is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionA requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionA: %w", err)
	}
	return oldValue.OptionA, nil
}

// ResetOptionA resets all changes to the "option_a" field.
func (m *CourseExerciseMutation) ResetOptionA() {
	m.option_a = nil
}

// SetOptionB sets the "option_b" field.
func (m *CourseExerciseMutation) SetOptionB(s string) {
	m.option_b = &s
}

// OptionB returns the value of the "option_b" field in the mutation.
func (m *CourseExerciseMutation) OptionB() (r string, exists bool) {
	v := m.option_b
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionB returns the old "option_b" field's value of the CourseExercise entity.
// If the CourseExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseExerciseMutation) OldOptionB(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionB: %w", err)
	}
	return oldValue.OptionB, nil
}

// ResetOptionB resets all changes to the "option_b" field.
func (m *CourseExerciseMutation) ResetOptionB() {
	m.option_b = nil
}

// SetOptionC sets the "option_c" field.
func (m *CourseExerciseMutation) SetOptionC(s string) {
	m.option_c = &s
}

// OptionC returns the value of the "option_c" field in the mutation.
func (m *CourseExerciseMutation) OptionC() (r string, exists bool) {
	v := m.option_c
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionC returns the old "option_c" field's value of the CourseExercise entity.
// If the CourseExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseExerciseMutation) OldOptionC(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionC is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionC requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionC: %w", err)
	}
	return oldValue.OptionC, nil
}

// ResetOptionC resets all changes to the "option_c" field.
func (m *CourseExerciseMutation) ResetOptionC() {
	m.option_c = nil
}

// SetOptionD sets the "option_d" field.
func (m *CourseExerciseMutation) SetOptionD(s string) {
	m.option_d = &s
}

// OptionD returns the value of the "option_d" field in the mutation.
func (m *CourseExerciseMutation) OptionD() (r string, exists bool) {
	v := m.option_d
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionD returns the old "option_d" field's value of the CourseExercise entity.
// If the CourseExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseExerciseMutation) OldOptionD(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionD is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionD requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionD: %w", err)
	}
	return oldValue.OptionD, nil
}

// ResetOptionD resets all changes to the "option_d" field.
func (m *CourseExerciseMutation) ResetOptionD() {
	m.option_d = nil
}

// SetCorrectOption sets the "correct_option" field.
func (m *CourseExerciseMutation) SetCorrectOption(s string) {
	m.correct_option = &s
}

// CorrectOption returns the value of the "correct_option" field in the mutation.
func (m *CourseExerciseMutation) CorrectOption() (r string, exists bool) {
	v := m.correct_option
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectOption returns the old "correct_option" field's value of the CourseExercise entity.
// If the CourseExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseExerciseMutation) OldCorrectOption(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectOption is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectOption requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectOption: %w", err)
	}
	return oldValue.CorrectOption, nil
}

// ResetCorrectOption resets all changes to the "correct_option" field.
func (m *CourseExerciseMutation) ResetCorrectOption() {
	m.correct_option = nil
}

// SetPrompt sets the "prompt" field.
func (m *CourseExerciseMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *CourseExerciseMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the CourseExercise entity.
// If the CourseExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseExerciseMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *CourseExerciseMutation) ResetPrompt() {
	m.prompt = nil
}

// SetMinWords sets the "min_words" field.
func (m *CourseExerciseMutation) SetMinWords(i int) {
	m.min_words = &i
	m.addmin_words = nil
}

// MinWords returns the value of the "min_words" field in the mutation.
func (m *CourseExerciseMutation) MinWords() (r int, exists bool) {
	v := m.min_words
	if v == nil {
		return
	}
	return *v, true
}

// OldMinWords returns the old "min_words" field's value of the CourseExercise entity.
// If the CourseExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseExerciseMutation) OldMinWords(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinWords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinWords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinWords: %w", err)
	}
	return oldValue.MinWords, nil
}

// AddMinWords adds i to the "min_words" field.
func (m *CourseExerciseMutation) AddMinWords(i int) {
	if m.addmin_words != nil {
		*m.addmin_words += i
	} else {
		m.addmin_words = &i
	}
}

// AddedMinWords returns the value that was added to the "min_words" field in this mutation.
func (m *CourseExerciseMutation) AddedMinWords() (r int, exists bool) {
	v := m.addmin_words
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinWords resets all changes to the "min_words" field.
func (m *CourseExerciseMutation) ResetMinWords() {
	m.min_words = nil
	m.addmin_words = nil
}

// SetMaxWords sets the "max_words" field.
func (m *CourseExerciseMutation) SetMaxWords(i int) {
	m.max_words = &i
	m.addmax_words = nil
}

// MaxWords returns the value of the "max_words" field in the mutation.
func (m *CourseExerciseMutation) MaxWords() (r int, exists bool) {
	v := m.max_words
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxWords returns the old "max_words" field's value of the CourseExercise entity.
// If the CourseExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseExerciseMutation) OldMaxWords(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxWords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxWords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxWords: %w", err)
	}
	return oldValue.MaxWords, nil
}

// AddMaxWords adds i to the "max_words" field.
func (m *CourseExerciseMutation) AddMaxWords(i int) {
	if m.addmax_words != nil {
		*m.addmax_words += i
	} else {
		m.addmax_words = &i
	}
}

// AddedMaxWords returns the value that was added to the "max_words" field in this mutation.
func (m *CourseExerciseMutation) AddedMaxWords() (r int, exists bool) {
	v := m.addmax_words
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxWords resets all changes to the "max_words" field.
func (m *CourseExerciseMutation) ResetMaxWords() {
	m.max_words = nil
	m.addmax_words = nil
}

// SetSampleAnswer sets the "sample_answer" field.
func (m *CourseExerciseMutation) SetSampleAnswer(s string) {
	m.sample_answer = &s
}

// SampleAnswer returns the value of the "sample_answer" field in the mutation.
func (m *CourseExerciseMutation) SampleAnswer() (r string, exists bool) {
	v := m.sample_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldSampleAnswer returns the old "sample_answer" field's value of the CourseExercise entity.
// If the CourseExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseExerciseMutation) OldSampleAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSampleAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSampleAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSampleAnswer: %w", err)
	}
	return oldValue.SampleAnswer, nil
}

// ResetSampleAnswer resets all changes to the "sample_answer" field.
func (m *CourseExerciseMutation) ResetSampleAnswer() {
	m.sample_answer = nil
}

// SetCriteria sets the "criteria" field.
func (m *CourseExerciseMutation) SetCriteria(s string) {
	m.criteria = &s
}

// Criteria returns the value of the "criteria" field in the mutation.
func (m *CourseExerciseMutation) Criteria() (r string, exists bool) {
	v := m.criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldCriteria returns the old "criteria" field's value of the CourseExercise entity.
// If the CourseExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseExerciseMutation) OldCriteria(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriteria: %w", err)
	}
	return oldValue.Criteria, nil
}

// ResetCriteria resets all changes to the "criteria" field.
func (m *CourseExerciseMutation) ResetCriteria() {
	m.criteria = nil
}

// SetOrder sets the "order" field.
func (m *CourseExerciseMutation) SetOrder(i int) {
	m._order = &i
	m.add_order = nil
}

// Order returns the value of the "order" field in the mutation.
func (m *CourseExerciseMutation) Order() (r int, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrder returns the old "order" field's value of the CourseExercise entity.
// If the CourseExercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseExerciseMutation) OldOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrder: %w", err)
	}
	return oldValue.Order, nil
}

// AddOrder adds i to the "order" field.
func (m *CourseExerciseMutation) AddOrder(i int) {
	if m.add_order != nil {
		*m.add_order += i
	} else {
		m.add_order = &i
	}
}

// AddedOrder returns the value that was added to the "order" field in this mutation.
func (m *CourseExerciseMutation) AddedOrder() (r int, exists bool) {
	v := m.add_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrder resets all changes to the "order" field.
func (m *CourseExerciseMutation) ResetOrder() {
	m._order = nil
	m.add_order = nil
}

// SetLessonID sets the "lesson" edge to the CourseLesson entity by id.
func (m *CourseExerciseMutation) SetLessonID(id int) {
	m.lesson = &id
}

// ClearLesson clears the "lesson" edge to the CourseLesson entity.
func (m *CourseExerciseMutation) ClearLesson() {
	m.clearedlesson = true
}

// LessonCleared reports if the "lesson" edge to the CourseLesson entity was cleared.
func (m *CourseExerciseMutation) LessonCleared() bool {
	return m.clearedlesson
}

// LessonID returns the "lesson" edge ID in the mutation.
func (m *CourseExerciseMutation) LessonID() (id int, exists bool) {
	if m.lesson != nil {
		return *m.lesson, true
	}
	return
}

// LessonIDs returns the "lesson" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LessonID instead. It exists only for internal usage by the builders.
func (m *CourseExerciseMutation) LessonIDs() (ids []int) {
	if id := m.lesson; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLesson resets all changes to the "lesson" edge.
func (m *CourseExerciseMutation) ResetLesson() {
	m.lesson = nil
	m.clearedlesson = false
}

// SetAssetID sets the "asset" edge to the Asset entity by id.
func (m *CourseExerciseMutation) SetAssetID(id int) {
	m.asset = &id
}

// ClearAsset clears the "asset" edge to the Asset entity.
func (m *CourseExerciseMutation) ClearAsset() {
	m.clearedasset = true
}

// AssetCleared reports if the "asset" edge to the Asset entity was cleared.
func (m *CourseExerciseMutation) AssetCleared() bool {
	return m.clearedasset
}

// AssetID returns the "asset" edge ID in the mutation.
func (m *CourseExerciseMutation) AssetID() (id int, exists bool) {
	if m.asset != nil {
		return *m.asset, true
	}
	return
}

// AssetIDs returns the "asset" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssetID instead. It exists only for internal usage by the builders.
func (m *CourseExerciseMutation) AssetIDs() (ids []int) {
	if id := m.asset; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAsset resets all changes to the "asset" edge.
func (m *CourseExerciseMutation) ResetAsset() {
	m.asset = nil
	m.clearedasset = false
}

// Where appends a list predicates to the CourseExerciseMutation builder.
func (m *CourseExerciseMutation) Where(ps ...predicate.CourseExercise) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CourseExerciseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CourseExerciseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CourseExercise, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CourseExerciseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CourseExerciseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CourseExercise).
func (m *CourseExerciseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CourseExerciseMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.kind != nil {
		fields = append(fields, courseexercise.FieldKind)
	}
	if m.stem != nil {
		fields = append(fields, courseexercise.FieldStem)
	}
	if m.option_a != nil {
		fields = append(fields, courseexercise.FieldOptionA)
	}
	if m.option_b != nil {
		fields = append(fields, courseexercise.FieldOptionB)
	}
	if m.option_c != nil {
		fields = append(fields, courseexercise.FieldOptionC)
	}
	if m.option_d != nil {
		fields = append(fields, courseexercise.FieldOptionD)
	}
	if m.correct_option != nil {
		fields = append(fields, courseexercise.FieldCorrectOption)
	}
	if m.prompt != nil {
		fields = append(fields, courseexercise.FieldPrompt)
	}
	if m.min_words != nil {
		fields = append(fields, courseexercise.FieldMinWords)
	}
	if m.max_words != nil {
		fields = append(fields, courseexercise.FieldMaxWords)
	}
	if m.sample_answer != nil {
		fields = append(fields, courseexercise.FieldSampleAnswer)
	}
	if m.criteria != nil {
		fields = append(fields, courseexercise.FieldCriteria)
	}
	if m._order != nil {
		fields = append(fields, courseexercise.FieldOrder)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CourseExerciseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case courseexercise.FieldKind:
		return m.Kind()
	case courseexercise.FieldStem:
		return m.Stem()
	case courseexercise.FieldOptionA:
		return m.OptionA()
	case courseexercise.FieldOptionB:
		return m.OptionB()
	case courseexercise.FieldOptionC:
		return m.OptionC()
	case courseexercise.FieldOptionD:
		return m.OptionD()
	case courseexercise.FieldCorrectOption:
		return m.CorrectOption()
	case courseexercise.FieldPrompt:
		return m.Prompt()
	case courseexercise.FieldMinWords:
		return m.MinWords()
	case courseexercise.FieldMaxWords:
		return m.MaxWords()
	case courseexercise.FieldSampleAnswer:
		return m.SampleAnswer()
	case courseexercise.FieldCriteria:
		return m.Criteria()
	case courseexercise.FieldOrder:
		return m.Order()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CourseExerciseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case courseexercise.FieldKind:
		return m.OldKind(ctx)
	case courseexercise.FieldStem:
		return m.OldStem(ctx)
	case courseexercise.FieldOptionA:
		return m.OldOptionA(ctx)
	case courseexercise.FieldOptionB:
		return m.OldOptionB(ctx)
	case courseexercise.FieldOptionC:
		return m.OldOptionC(ctx)
	case courseexercise.FieldOptionD:
		return m.OldOptionD(ctx)
	case courseexercise.FieldCorrectOption:
		return m.OldCorrectOption(ctx)
	case courseexercise.FieldPrompt:
		return m.OldPrompt(ctx)
	case courseexercise.FieldMinWords:
		return m.OldMinWords(ctx)
	case courseexercise.FieldMaxWords:
		return m.OldMaxWords(ctx)
	case courseexercise.FieldSampleAnswer:
		return m.OldSampleAnswer(ctx)
	case courseexercise.FieldCriteria:
		return m.OldCriteria(ctx)
	case courseexercise.FieldOrder:
		return m.OldOrder(ctx)
	}
	return nil, fmt.Errorf("unknown CourseExercise field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseExerciseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case courseexercise.FieldKind:
		v, ok := value.(courseexercise.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case courseexercise.FieldStem:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStem(v)
		return nil
	case courseexercise.FieldOptionA:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionA(v)
		return nil
	case courseexercise.FieldOptionB:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionB(v)
		return nil
	case courseexercise.FieldOptionC:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionC(v)
		return nil
	case courseexercise.FieldOptionD:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionD(v)
		return nil
	case courseexercise.FieldCorrectOption:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectOption(v)
		return nil
	case courseexercise.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case courseexercise.FieldMinWords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinWords(v)
		return nil
	case courseexercise.FieldMaxWords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxWords(v)
		return nil
	case courseexercise.FieldSampleAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSampleAnswer(v)
		return nil
	case courseexercise.FieldCriteria:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriteria(v)
		return nil
	case courseexercise.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrder(v)
		return nil
	}
	return fmt.Errorf("unknown CourseExercise field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CourseExerciseMutation) AddedFields() []string {
	var fields []string
	if m.addmin_words != nil {
		fields = append(fields, courseexercise.FieldMinWords)
	}
	if m.addmax_words != nil {
		fields = append(fields, courseexercise.FieldMaxWords)
	}
	if m.add_order != nil {
		fields = append(fields, courseexercise.FieldOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CourseExerciseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case courseexercise.FieldMinWords:
		return m.AddedMinWords()
	case courseexercise.FieldMaxWords:
		return m.AddedMaxWords()
	case courseexercise.FieldOrder:
		return m.AddedOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseExerciseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case courseexercise.FieldMinWords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinWords(v)
		return nil
	case courseexercise.FieldMaxWords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxWords(v)
		return nil
	case courseexercise.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrder(v)
		return nil
	}
	return fmt.Errorf("unknown CourseExercise numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CourseExerciseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CourseExerciseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CourseExerciseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CourseExercise nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CourseExerciseMutation) ResetField(name string) error {
	switch name {
	case courseexercise.FieldKind:
		m.ResetKind()
		return nil
	case courseexercise.FieldStem:
		m.ResetStem()
		return nil
	case courseexercise.FieldOptionA:
		m.ResetOptionA()
		return nil
	case courseexercise.FieldOptionB:
		m.ResetOptionB()
		return nil
	case courseexercise.FieldOptionC:
		m.ResetOptionC()
		return nil
	case courseexercise.FieldOptionD:
		m.ResetOptionD()
		return nil
	case courseexercise.FieldCorrectOption:
		m.ResetCorrectOption()
		return nil
	case courseexercise.FieldPrompt:
		m.ResetPrompt()
		return nil
	case courseexercise.FieldMinWords:
		m.ResetMinWords()
		return nil
	case courseexercise.FieldMaxWords:
		m.ResetMaxWords()
		return nil
	case courseexercise.FieldSampleAnswer:
		m.ResetSampleAnswer()
		return nil
	case courseexercise.FieldCriteria:
		m.ResetCriteria()
		return nil
	case courseexercise.FieldOrder:
		m.ResetOrder()
		return nil
	}
	return fmt.Errorf("unknown CourseExercise field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CourseExerciseMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.lesson != nil {
		edges = append(edges, courseexercise.EdgeLesson)
	}
	if m.asset != nil {
		edges = append(edges, courseexercise.EdgeAsset)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CourseExerciseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case courseexercise.EdgeLesson:
		if id := m.lesson; id != nil {
			return []ent.Value{*id}
		}
	case courseexercise.EdgeAsset:
		if id := m.asset; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CourseExerciseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CourseExerciseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CourseExerciseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedlesson {
		edges = append(edges, courseexercise.EdgeLesson)
	}
	if m.clearedasset {
		edges = append(edges, courseexercise.EdgeAsset)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CourseExerciseMutation) EdgeCleared(name string) bool {
	switch name {
	case courseexercise.EdgeLesson:
		return m.clearedlesson
	case courseexercise.EdgeAsset:
		return m.clearedasset
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CourseExerciseMutation) ClearEdge(name string) error {
	switch name {
	case courseexercise.EdgeLesson:
		m.ClearLesson()
		return nil
	case courseexercise.EdgeAsset:
		m.ClearAsset()
		return nil
	}
	return fmt.Errorf("unknown CourseExercise unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CourseExerciseMutation) ResetEdge(name string) error {
	switch name {
	case courseexercise.EdgeLesson:
		m.ResetLesson()
		return nil
	case courseexercise.EdgeAsset:
		m.ResetAsset()
		return nil
	}
	return fmt.Errorf("unknown CourseExercise edge %s", name)
}

// CourseLessonMutation represents an operation that mutates the CourseLesson nodes in the graph.
type CourseLessonMutation struct {
	config
	op               Op
	typ              string
	id               *int
	title            *string
	slug             *string
	section          *courselesson.Section
	level            *courselesson.Level
	locale           *string
	content          *string
	_order           *int
	add_order        *int
	published        *bool
	clearedFields    map[string]struct{}
	exams            map[int]struct{}
	removedexams     map[int]struct{}
	clearedexams     bool
	exercises        map[int]struct{}
	removedexercises map[int]struct{}
	clearedexercises bool
	asset            *int
	clearedasset     bool
	done             bool
	oldValue         func(context.Context) (*CourseLesson, error)
	predicates       []predicate.CourseLesson
}

var _ ent.Mutation = (*CourseLessonMutation)(nil)

// courselessonOption allows management of the mutation configuration using functional options.
type courselessonOption func(*CourseLessonMutation)

// newCourseLessonMutation creates new mutation for the CourseLesson entity.
func newCourseLessonMutation(c config, op Op, opts ...courselessonOption) *CourseLessonMutation {
	m := &CourseLessonMutation{
		config:        c,
		op:            op,
		typ:           TypeCourseLesson,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCourseLessonID sets the ID field of the mutation.
func withCourseLessonID(id int) courselessonOption {
	return func(m *CourseLessonMutation) {
		var (
			err   error
			once  sync.Once
			value *CourseLesson
		)
		m.oldValue = func(ctx context.Context) (*CourseLesson, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CourseLesson.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCourseLesson sets the old CourseLesson of the mutation.
func withCourseLesson(node *CourseLesson) courselessonOption {
	return func(m *CourseLessonMutation) {
		m.oldValue = func(context.Context) (*CourseLesson, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CourseLessonMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CourseLessonMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CourseLessonMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CourseLessonMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CourseLesson.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *CourseLessonMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CourseLessonMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CourseLesson entity.
// If the CourseLesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseLessonMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CourseLessonMutation) ResetTitle() {
	m.title = nil
}

// SetSlug sets the "slug" field.
func (m *CourseLessonMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *CourseLessonMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the CourseLesson entity.
// If the CourseLesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseLessonMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *CourseLessonMutation) ResetSlug() {
	m.slug = nil
}

// SetSection sets the "section" field.
func (m *CourseLessonMutation) SetSection(c courselesson.Section) {
	m.section = &c
}

// Section returns the value of the "section" field in the mutation.
func (m *CourseLessonMutation) Section() (r courselesson.Section, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the CourseLesson entity.
// If the CourseLesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseLessonMutation) OldSection(ctx context.Context) (v courselesson.Section, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ResetSection resets all changes to the "section" field.
func (m *CourseLessonMutation) ResetSection() {
	m.section = nil
}

// SetLevel sets the "level" field.
func (m *CourseLessonMutation) SetLevel(c courselesson.Level) {
	m.level = &c
}

// Level returns the value of the "level" field in the mutation.
func (m *CourseLessonMutation) Level() (r courselesson.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the CourseLesson entity.
// If the CourseLesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseLessonMutation) OldLevel(ctx context.Context) (v courselesson.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *CourseLessonMutation) ResetLevel() {
	m.level = nil
}

// SetLocale sets the "locale" field.
func (m *CourseLessonMutation) SetLocale(s string) {
	m.locale = &s
}

// Locale returns the value of the "locale" field in the mutation.
func (m *CourseLessonMutation) Locale() (r string, exists bool) {
	v := m.locale
	if v == nil {
		return
	}
	return *v, true
}

// OldLocale returns the old "locale" field's value of the CourseLesson entity.
// If the CourseLesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseLessonMutation) OldLocale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocale: %w", err)
	}
	return oldValue.Locale, nil
}

// ResetLocale resets all changes to the "locale" field.
func (m *CourseLessonMutation) ResetLocale() {
	m.locale = nil
}

// SetContent sets the "content" field.
func (m *CourseLessonMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *CourseLessonMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the CourseLesson entity.
// If the CourseLesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseLessonMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *CourseLessonMutation) ResetContent() {
	m.content = nil
}

// SetOrder sets the "order" field.
func (m *CourseLessonMutation) SetOrder(i int) {
	m._order = &i
	m.add_order = nil
}

// Order returns the value of the "order" field in the mutation.
func (m *CourseLessonMutation) Order() (r int, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrder returns the old "order" field's value of the CourseLesson entity.
// If the CourseLesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseLessonMutation) OldOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrder: %w", err)
	}
	return oldValue.Order, nil
}

// AddOrder adds i to the "order" field.
func (m *CourseLessonMutation) AddOrder(i int) {
	if m.add_order != nil {
		*m.add_order += i
	} else {
		m.add_order = &i
	}
}

// AddedOrder returns the value that was added to the "order" field in this mutation.
func (m *CourseLessonMutation) AddedOrder() (r int, exists bool) {
	v := m.add_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrder resets all changes to the "order" field.
func (m *CourseLessonMutation) ResetOrder() {
	m._order = nil
	m.add_order = nil
}

// SetPublished sets the "published" field.
func (m *CourseLessonMutation) SetPublished(b bool) {
	m.published = &b
}

// Published returns the value of the "published" field in the mutation.
func (m *CourseLessonMutation) Published() (r bool, exists bool) {
	v := m.published
	if v == nil {
		return
	}
	return *v, true
}

// OldPublished returns the old "published" field's value of the CourseLesson entity.
// If the CourseLesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseLessonMutation) OldPublished(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublished is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublished requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublished: %w", err)
	}
	return oldValue.Published, nil
}

// ResetPublished resets all changes to the "published" field.
func (m *CourseLessonMutation) ResetPublished() {
	m.published = nil
}

// AddExamIDs adds the "exams" edge to the Exam entity by ids.
func (m *CourseLessonMutation) AddExamIDs(ids ...int) {
	if m.exams == nil {
		m.exams = make(map[int]struct{})
	}
	for i := range ids {
		m.exams[ids[i]] = struct{}{}
	}
}

// ClearExams clears the "exams" edge to the Exam entity.
func (m *CourseLessonMutation) ClearExams() {
	m.clearedexams = true
}

// ExamsCleared reports if the "exams" edge to the Exam entity was cleared.
func (m *CourseLessonMutation) ExamsCleared() bool {
	return m.clearedexams
}

// RemoveExamIDs removes the "exams" edge to the Exam entity by IDs.
func (m *CourseLessonMutation) RemoveExamIDs(ids ...int) {
	if m.removedexams == nil {
		m.removedexams = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.exams, ids[i])
		m.removedexams[ids[i]] = struct{}{}
	}
}

// RemovedExams returns the removed IDs of the "exams" edge to the Exam entity.
func (m *CourseLessonMutation) RemovedExamsIDs() (ids []int) {
	for id := range m.removedexams {
		ids = append(ids, id)
	}
	return
}

// ExamsIDs returns the "exams" edge IDs in the mutation.
func (m *CourseLessonMutation) ExamsIDs() (ids []int) {
	for id := range m.exams {
		ids = append(ids, id)
	}
	return
}

// ResetExams resets all changes to the "exams" edge.
func (m *CourseLessonMutation) ResetExams() {
	m.exams = nil
	m.clearedexams = false
	m.removedexams = nil
}

// AddExerciseIDs adds the "exercises" edge to the CourseExercise entity by ids.
func (m *CourseLessonMutation) AddExerciseIDs(ids ...int) {
	if m.exercises == nil {
		m.exercises = make(map[int]struct{})
	}
	for i := range ids {
		m.exercises[ids[i]] = struct{}{}
	}
}

// ClearExercises clears the "exercises" edge to the CourseExercise entity.
func (m *CourseLessonMutation) ClearExercises() {
	m.clearedexercises = true
}

// ExercisesCleared reports if the "exercises" edge to the CourseExercise entity was cleared.
func (m *CourseLessonMutation) ExercisesCleared() bool {
	return m.clearedexercises
}

// RemoveExerciseIDs removes the "exercises" edge to the CourseExercise entity by IDs.
func (m *CourseLessonMutation) RemoveExerciseIDs(ids ...int) {
	if m.removedexercises == nil {
		m.removedexercises = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.exercises, ids[i])
		m.removedexercises[ids[i]] = struct{}{}
	}
}

// RemovedExercises returns the removed IDs of the "exercises" edge to the CourseExercise entity.
func (m *CourseLessonMutation) RemovedExercisesIDs() (ids []int) {
	for id := range m.removedexercises {
		ids = append(ids, id)
	}
	return
}

// ExercisesIDs returns the "exercises" edge IDs in the mutation.
func (m *CourseLessonMutation) ExercisesIDs() (ids []int) {
	for id := range m.exercises {
		ids = append(ids, id)
	}
	return
}

// ResetExercises resets all changes to the "exercises" edge.
func (m *CourseLessonMutation) ResetExercises() {
	m.exercises = nil
	m.clearedexercises = false
	m.removedexercises = nil
}

// SetAssetID sets the "asset" edge to the Asset entity by id.
func (m *CourseLessonMutation) SetAssetID(id int) {
	m.asset = &id
}

// ClearAsset clears the "asset" edge to the Asset entity.
func (m *CourseLessonMutation) ClearAsset() {
	m.clearedasset = true
}

// AssetCleared reports if the "asset" edge to the Asset entity was cleared.
func (m *CourseLessonMutation) AssetCleared() bool {
	return m.clearedasset
}

// AssetID returns the "asset" edge ID in the mutation.
func (m *CourseLessonMutation) AssetID() (id int, exists bool) {
	if m.asset != nil {
		return *m.asset, true
	}
	return
}

// AssetIDs returns the "asset" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssetID instead. It exists only for internal usage by the builders.
func (m *CourseLessonMutation) AssetIDs() (ids []int) {
	if id := m.asset; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAsset resets all changes to the "asset" edge.
func (m *CourseLessonMutation) ResetAsset() {
	m.asset = nil
	m.clearedasset = false
}

// Where appends a list predicates to the CourseLessonMutation builder.
func (m *CourseLessonMutation) Where(ps ...predicate.CourseLesson) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CourseLessonMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CourseLessonMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CourseLesson, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CourseLessonMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CourseLessonMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CourseLesson).
func (m *CourseLessonMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CourseLessonMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.title != nil {
		fields = append(fields, courselesson.FieldTitle)
	}
	if m.slug != nil {
		fields = append(fields, courselesson.FieldSlug)
	}
	if m.section != nil {
		fields = append(fields, courselesson.FieldSection)
	}
	if m.level != nil {
		fields = append(fields, courselesson.FieldLevel)
	}
	if m.locale != nil {
		fields = append(fields, courselesson.FieldLocale)
	}
	if m.content != nil {
		fields = append(fields, courselesson.FieldContent)
	}
	if m._order != nil {
		fields = append(fields, courselesson.FieldOrder)
	}
	if m.published != nil {
		fields = append(fields, courselesson.FieldPublished)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CourseLessonMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case courselesson.FieldTitle:
		return m.Title()
	case courselesson.FieldSlug:
		return m.Slug()
	case courselesson.FieldSection:
		return m.Section()
	case courselesson.FieldLevel:
		return m.Level()
	case courselesson.FieldLocale:
		return m.Locale()
	case courselesson.FieldContent:
		return m.Content()
	case courselesson.FieldOrder:
		return m.Order()
	case courselesson.FieldPublished:
		return m.Published()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CourseLessonMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case courselesson.FieldTitle:
		return m.OldTitle(ctx)
	case courselesson.FieldSlug:
		return m.OldSlug(ctx)
	case courselesson.FieldSection:
		return m.OldSection(ctx)
	case courselesson.FieldLevel:
		return m.OldLevel(ctx)
	case courselesson.FieldLocale:
		return m.OldLocale(ctx)
	case courselesson.FieldContent:
		return m.OldContent(ctx)
	case courselesson.FieldOrder:
		return m.OldOrder(ctx)
	case courselesson.FieldPublished:
		return m.OldPublished(ctx)
	}
	return nil, fmt.Errorf("unknown CourseLesson field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseLessonMutation) SetField(name string, value ent.Value) error {
	switch name {
	case courselesson.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case courselesson.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case courselesson.FieldSection:
		v, ok := value.(courselesson.Section)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	case courselesson.FieldLevel:
		v, ok := value.(courselesson.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case courselesson.FieldLocale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocale(v)
		return nil
	case courselesson.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case courselesson.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrder(v)
		return nil
	case courselesson.FieldPublished:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublished(v)
		return nil
	}
	return fmt.Errorf("unknown CourseLesson field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CourseLessonMutation) AddedFields() []string {
	var fields []string
	if m.add_order != nil {
		fields = append(fields, courselesson.FieldOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CourseLessonMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case courselesson.FieldOrder:
		return m.AddedOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseLessonMutation) AddField(name string, value ent.Value) error {
	switch name {
	case courselesson.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrder(v)
		return nil
	}
	return fmt.Errorf("unknown CourseLesson numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CourseLessonMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CourseLessonMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CourseLessonMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CourseLesson nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CourseLessonMutation) ResetField(name string) error {
	switch name {
	case courselesson.FieldTitle:
		m.ResetTitle()
		return nil
	case courselesson.FieldSlug:
		m.ResetSlug()
		return nil
	case courselesson.FieldSection:
		m.ResetSection()
		return nil
	case courselesson.FieldLevel:
		m.ResetLevel()
		return nil
	case courselesson.FieldLocale:
		m.ResetLocale()
		return nil
	case courselesson.FieldContent:
		m.ResetContent()
		return nil
	case courselesson.FieldOrder:
		m.ResetOrder()
		return nil
	case courselesson.FieldPublished:
		m.ResetPublished()
		return nil
	}
	return fmt.Errorf("unknown CourseLesson field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CourseLessonMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.exams != nil {
		edges = append(edges, courselesson.EdgeExams)
	}
	if m.exercises != nil {
		edges = append(edges, courselesson.EdgeExercises)
	}
	if m.asset != nil {
		edges = append(edges, courselesson.EdgeAsset)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CourseLessonMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case courselesson.EdgeExams:
		ids := make([]ent.Value, 0, len(m.exams))
		for id := range m.exams {
			ids = append(ids, id)
		}
		return ids
	case courselesson.EdgeExercises:
		ids := make([]ent.Value, 0, len(m.exercises))
		for id := range m.exercises {
			ids = append(ids, id)
		}
		return ids
	case courselesson.EdgeAsset:
		if id := m.asset; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CourseLessonMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedexams != nil {
		edges = append(edges, courselesson.EdgeExams)
	}
	if m.removedexercises != nil {
		edges = append(edges, courselesson.EdgeExercises)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CourseLessonMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case courselesson.EdgeExams:
		ids := make([]ent.Value, 0, len(m.removedexams))
		for id := range m.removedexams {
			ids = append(ids, id)
		}
		return ids
	case courselesson.EdgeExercises:
		ids := make([]ent.Value, 0, len(m.removedexercises))
		for id := range m.removedexercises {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CourseLessonMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedexams {
		edges = append(edges, courselesson.EdgeExams)
	}
	if m.clearedexercises {
		edges = append(edges, courselesson.EdgeExercises)
	}
	if m.clearedasset {
		edges = append(edges, courselesson.EdgeAsset)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CourseLessonMutation) EdgeCleared(name string) bool {
	switch name {
	case courselesson.EdgeExams:
		return m.clearedexams
	case courselesson.EdgeExercises:
		return m.clearedexercises
	case courselesson.EdgeAsset:
		return m.clearedasset
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CourseLessonMutation) ClearEdge(name string) error {
	switch name {
	case courselesson.EdgeAsset:
		m.ClearAsset()
		return nil
	}
	return fmt.Errorf("unknown CourseLesson unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CourseLessonMutation) ResetEdge(name string) error {
	switch name {
	case courselesson.EdgeExams:
		m.ResetExams()
		return nil
	case courselesson.EdgeExercises:
		m.ResetExercises()
		return nil
	case courselesson.EdgeAsset:
		m.ResetAsset()
		return nil
	}
	return fmt.Errorf("unknown CourseLesson edge %s", name)
}

// ExamMutation represents an operation that mutates the Exam nodes in the graph.
type ExamMutation struct {
	config
	op              Op
	typ             string
	id              *int
	code            *string
	name            *string
	language        *string
	clearedFields   map[string]struct{}
	sections        map[int]struct{}
	removedsections map[int]struct{}
	clearedsections bool
	lessons         map[int]struct{}
	removedlessons  map[int]struct{}
	clearedlessons  bool
	done            bool
	oldValue        func(context.Context) (*Exam, error)
	predicates      []predicate.Exam
}

var _ ent.Mutation = (*ExamMutation)(nil)

// examOption allows management of the mutation configuration using functional options.
type examOption func(*ExamMutation)

// newExamMutation creates new mutation for the Exam entity.
func newExamMutation(c config, op Op, opts ...examOption) *ExamMutation {
	m := &ExamMutation{
		config:        c,
		op:            op,
		typ:           TypeExam,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExamID sets the ID field of the mutation.
func withExamID(id int) examOption {
	return func(m *ExamMutation) {
		var (
			err   error
			once  sync.Once
			value *Exam
		)
		m.oldValue = func(ctx context.Context) (*Exam, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Exam.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExam sets the old Exam of the mutation.
func withExam(node *Exam) examOption {
	return func(m *ExamMutation) {
		m.oldValue = func(context.Context) (*Exam, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExamMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExamMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExamMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExamMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Exam.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCode sets the "code" field.
func (m *ExamMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *ExamMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *ExamMutation) ResetCode() {
	m.code = nil
}

// SetName sets the "name" field.
func (m *ExamMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ExamMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ExamMutation) ResetName() {
	m.name = nil
}

// SetLanguage sets the "language" field.
func (m *ExamMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *ExamMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Exam entity.
// If the Exam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *ExamMutation) ResetLanguage() {
	m.language = nil
}

// AddSectionIDs adds the "sections" edge to the ExamSection entity by ids.
func (m *ExamMutation) AddSectionIDs(ids ...int) {
	if m.sections == nil {
		m.sections = make(map[int]struct{})
	}
	for i := range ids {
		m.sections[ids[i]] = struct{}{}
	}
}

// ClearSections clears the "sections" edge to the ExamSection entity.
func (m *ExamMutation) ClearSections() {
	m.clearedsections = true
}

// SectionsCleared reports if the "sections" edge to the ExamSection entity was cleared.
func (m *ExamMutation) SectionsCleared() bool {
	return m.clearedsections
}

// RemoveSectionIDs removes the "sections" edge to the ExamSection entity by IDs.
func (m *ExamMutation) RemoveSectionIDs(ids ...int) {
	if m.removedsections == nil {
		m.removedsections = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.sections, ids[i])
		m.removedsections[ids[i]] = struct{}{}
	}
}

// RemovedSections returns the removed IDs of the "sections" edge to the ExamSection entity.
func (m *ExamMutation) RemovedSectionsIDs() (ids []int) {
	for id := range m.removedsections {
		ids = append(ids, id)
	}
	return
}

// SectionsIDs returns the "sections" edge IDs in the mutation.
func (m *ExamMutation) SectionsIDs() (ids []int) {
	for id := range m.sections {
		ids = append(ids, id)
	}
	return
}

// ResetSections resets all changes to the "sections" edge.
func (m *ExamMutation) ResetSections() {
	m.sections = nil
	m.clearedsections = false
	m.removedsections = nil
}

// AddLessonIDs adds the "lessons" edge to the CourseLesson entity by ids.
func (m *ExamMutation) AddLessonIDs(ids ...int) {
	if m.lessons == nil {
		m.lessons = make(map[int]struct{})
	}
	for i := range ids {
		m.lessons[ids[i]] = struct{}{}
	}
}

// ClearLessons clears the "lessons" edge to the CourseLesson entity.
func (m *ExamMutation) ClearLessons() {
	m.clearedlessons = true
}

// LessonsCleared reports if the "lessons" edge to the CourseLesson entity was cleared.
func (m *ExamMutation) LessonsCleared() bool {
	return m.clearedlessons
}

// RemoveLessonIDs removes the "lessons" edge to the CourseLesson entity by IDs.
func (m *ExamMutation) RemoveLessonIDs(ids ...int) {
	if m.removedlessons == nil {
		m.removedlessons = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.lessons, ids[i])
		m.removedlessons[ids[i]] = struct{}{}
	}
}

// RemovedLessons returns the removed IDs of the "lessons" edge to the CourseLesson entity.
func (m *ExamMutation) RemovedLessonsIDs() (ids []int) {
	for id := range m.removedlessons {
		ids = append(ids, id)
	}
	return
}

// LessonsIDs returns the "lessons" edge IDs in the mutation.
func (m *ExamMutation) LessonsIDs() (ids []int) {
	for id := range m.lessons {
		ids = append(ids, id)
	}
	return
}

// ResetLessons resets all changes to the "lessons" edge.
func (m *ExamMutation) ResetLessons() {
	m.lessons = nil
	m.clearedlessons = false
	m.removedlessons = nil
}

// Where appends a list predicates to the ExamMutation builder.
func (m *ExamMutation) Where(ps ...predicate.Exam) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExamMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExamMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Exam, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExamMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExamMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Exam).
func (m *ExamMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExamMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.code != nil {
		fields = append(fields, exam.FieldCode)
	}
	if m.name != nil {
		fields = append(fields, exam.FieldName)
	}
	if m.language != nil {
		fields = append(fields, exam.FieldLanguage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExamMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case exam.FieldCode:
		return m.Code()
	case exam.FieldName:
		return m.Name()
	case exam.FieldLanguage:
		return m.Language()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExamMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case exam.FieldCode:
		return m.OldCode(ctx)
	case exam.FieldName:
		return m.OldName(ctx)
	case exam.FieldLanguage:
		return m.OldLanguage(ctx)
	}
	return nil, fmt.Errorf("unknown Exam field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExamMutation) SetField(name string, value ent.Value) error {
	switch name {
	case exam.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case exam.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case exam.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	}
	return fmt.Errorf("unknown Exam field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExamMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExamMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExamMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Exam numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExamMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExamMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExamMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Exam nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExamMutation) ResetField(name string) error {
	switch name {
	case exam.FieldCode:
		m.ResetCode()
		return nil
	case exam.FieldName:
		m.ResetName()
		return nil
	case exam.FieldLanguage:
		m.ResetLanguage()
		return nil
	}
	return fmt.Errorf("unknown Exam field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExamMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.sections != nil {
		edges = append(edges, exam.EdgeSections)
	}
	if m.lessons != nil {
		edges = append(edges, exam.EdgeLessons)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExamMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case exam.EdgeSections:
		ids := make([]ent.Value, 0, len(m.sections))
		for id := range m.sections {
			ids = append(ids, id)
		}
		return ids
	case exam.EdgeLessons:
		ids := make([]ent.Value, 0, len(m.lessons))
		for id := range m.lessons {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExamMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsections != nil {
		edges = append(edges, exam.EdgeSections)
	}
	if m.removedlessons != nil {
		edges = append(edges, exam.EdgeLessons)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExamMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case exam.EdgeSections:
		ids := make([]ent.Value, 0, len(m.removedsections))
		for id := range m.removedsections {
			ids = append(ids, id)
		}
		return ids
	case exam.EdgeLessons:
		ids := make([]ent.Value, 0, len(m.removedlessons))
		for id := range m.removedlessons {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExamMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsections {
		edges = append(edges, exam.EdgeSections)
	}
	if m.clearedlessons {
		edges = append(edges, exam.EdgeLessons)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExamMutation) EdgeCleared(name string) bool {
	switch name {
	case exam.EdgeSections:
		return m.clearedsections
	case exam.EdgeLessons:
		return m.clearedlessons
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExamMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Exam unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExamMutation) ResetEdge(name string) error {
	switch name {
	case exam.EdgeSections:
		m.ResetSections()
		return nil
	case exam.EdgeLessons:
		m.ResetLessons()
		return nil
	}
	return fmt.Errorf("unknown Exam edge %s", name)
}

// ExamFormatResultMutation represents an operation that mutates the ExamFormatResult nodes in the graph.
type ExamFormatResultMutation struct {
	config
	op              Op
	typ             string
	id              *int
	user_id         *string
	exam_code       *string
	level           *examformatresult.Level
	section_results *map[string]interface{}
	global_score    *float64
	addglobal_score *float64
	score_max       *float64
	addscore_max    *float64
	global_cefr     *string
	passed          *bool
	taken_at        *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ExamFormatResult, error)
	predicates      []predicate.ExamFormatResult
}

var _ ent.Mutation = (*ExamFormatResultMutation)(nil)

// examformatresultOption allows management of the mutation configuration using functional options.
type examformatresultOption func(*ExamFormatResultMutation)

// newExamFormatResultMutation creates new mutation for the ExamFormatResult entity.
func newExamFormatResultMutation(c config, op Op, opts ...examformatresultOption) *ExamFormatResultMutation {
	m := &ExamFormatResultMutation{
		config:        c,
		op:            op,
		typ:           TypeExamFormatResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExamFormatResultID sets the ID field of the mutation.
func withExamFormatResultID(id int) examformatresultOption {
	return func(m *ExamFormatResultMutation) {
		var (
			err   error
			once  sync.Once
			value *ExamFormatResult
		)
		m.oldValue = func(ctx context.Context) (*ExamFormatResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExamFormatResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExamFormatResult sets the old ExamFormatResult of the mutation.
func withExamFormatResult(node *ExamFormatResult) examformatresultOption {
	return func(m *ExamFormatResultMutation) {
		m.oldValue = func(context.Context) (*ExamFormatResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExamFormatResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExamFormatResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExamFormatResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExamFormatResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExamFormatResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ExamFormatResultMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ExamFormatResultMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ExamFormatResult entity.
// If the ExamFormatResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamFormatResultMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ExamFormatResultMutation) ResetUserID() {
	m.user_id = nil
}

// SetExamCode sets the "exam_code" field.
func (m *ExamFormatResultMutation) SetExamCode(s string) {
	m.exam_code = &s
}

// ExamCode returns the value of the "exam_code" field in the mutation.
func (m *ExamFormatResultMutation) ExamCode() (r string, exists bool) {
	v := m.exam_code
	if v == nil {
		return
	}
	return *v, true
}

// OldExamCode returns the old "exam_code" field's value of the ExamFormatResult entity.
// If the ExamFormatResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamFormatResultMutation) OldExamCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamCode: %w", err)
	}
	return oldValue.ExamCode, nil
}

// ResetExamCode resets all changes to the "exam_code" field.
func (m *ExamFormatResultMutation) ResetExamCode() {
	m.exam_code = nil
}

// SetLevel sets the "level" field.
func (m *ExamFormatResultMutation) SetLevel(e examformatresult.Level) {
	m.level = &e
}

// Level returns the value of the "level" field in the mutation.
func (m *ExamFormatResultMutation) Level() (r examformatresult.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the ExamFormatResult entity.
// If the ExamFormatResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamFormatResultMutation) OldLevel(ctx context.Context) (v examformatresult.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *ExamFormatResultMutation) ResetLevel() {
	m.level = nil
}

// SetSectionResults sets the "section_results" field.
func (m *ExamFormatResultMutation) SetSectionResults(value map[string]interface{}) {
	m.section_results = &value
}

// SectionResults returns the value of the "section_results" field in the mutation.
func (m *ExamFormatResultMutation) SectionResults() (r map[string]interface{}, exists bool) {
	v := m.section_results
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionResults returns the old "section_results" field's value of the ExamFormatResult entity.
// If the ExamFormatResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamFormatResultMutation) OldSectionResults(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionResults: %w", err)
	}
	return oldValue.SectionResults, nil
}

// ResetSectionResults resets all changes to the "section_results" field.
func (m *ExamFormatResultMutation) ResetSectionResults() {
	m.section_results = nil
}

// SetGlobalScore sets the "global_score" field.
func (m *ExamFormatResultMutation) SetGlobalScore(f float64) {
	m.global_score = &f
	m.addglobal_score = nil
}

// GlobalScore returns the value of the "global_score" field in the mutation.
func (m *ExamFormatResultMutation) GlobalScore() (r float64, exists bool) {
	v := m.global_score
	if v == nil {
		return
	}
	return *v, true
}

// OldGlobalScore returns the old "global_score" field's value of the ExamFormatResult entity.
// If the ExamFormatResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamFormatResultMutation) OldGlobalScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGlobalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGlobalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGlobalScore: %w", err)
	}
	return oldValue.GlobalScore, nil
}

// AddGlobalScore adds f to the "global_score" field.
func (m *ExamFormatResultMutation) AddGlobalScore(f float64) {
	if m.addglobal_score != nil {
		*m.addglobal_score += f
	} else {
		m.addglobal_score = &f
	}
}

// AddedGlobalScore returns the value that was added to the "global_score" field in this mutation.
func (m *ExamFormatResultMutation) AddedGlobalScore() (r float64, exists bool) {
	v := m.addglobal_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetGlobalScore resets all changes to the "global_score" field.
func (m *ExamFormatResultMutation) ResetGlobalScore() {
	m.global_score = nil
	m.addglobal_score = nil
}

// SetScoreMax sets the "score_max" field.
func (m *ExamFormatResultMutation) SetScoreMax(f float64) {
	m.score_max = &f
	m.addscore_max = nil
}

// ScoreMax returns the value of the "score_max" field in the mutation.
func (m *ExamFormatResultMutation) ScoreMax() (r float64, exists bool) {
	v := m.score_max
	if v == nil {
		return
	}
	return *v, true
}

// OldScoreMax returns the old "score_max" field's value of the ExamFormatResult entity.
// If the ExamFormatResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamFormatResultMutation) OldScoreMax(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoreMax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoreMax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoreMax: %w", err)
	}
	return oldValue.ScoreMax, nil
}

// AddScoreMax adds f to the "score_max" field.
func (m *ExamFormatResultMutation) AddScoreMax(f float64) {
	if m.addscore_max != nil {
		*m.addscore_max += f
	} else {
		m.addscore_max = &f
	}
}

// AddedScoreMax returns the value that was added to the "score_max" field in this mutation.
func (m *ExamFormatResultMutation) AddedScoreMax() (r float64, exists bool) {
	v := m.addscore_max
	if v == nil {
		return
	}
	return *v, true
}

// ResetScoreMax resets all changes to the "score_max" field.
func (m *ExamFormatResultMutation) ResetScoreMax() {
	m.score_max = nil
	m.addscore_max = nil
}

// SetGlobalCefr sets the "global_cefr" field.
func (m *ExamFormatResultMutation) SetGlobalCefr(s string) {
	m.global_cefr = &s
}

// GlobalCefr returns the value of the "global_cefr" field in the mutation.
func (m *ExamFormatResultMutation) GlobalCefr() (r string, exists bool) {
	v := m.global_cefr
	if v == nil {
		return
	}
	return *v, true
}

// OldGlobalCefr returns the old "global_cefr" field's value of the ExamFormatResult entity.
// If the ExamFormatResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamFormatResultMutation) OldGlobalCefr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGlobalCefr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGlobalCefr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGlobalCefr: %w", err)
	}
	return oldValue.GlobalCefr, nil
}

// ResetGlobalCefr resets all changes to the "global_cefr" field.
func (m *ExamFormatResultMutation) ResetGlobalCefr() {
	m.global_cefr = nil
}

// SetPassed sets the "passed" field.
func (m *ExamFormatResultMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *ExamFormatResultMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the ExamFormatResult entity.
// If the ExamFormatResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamFormatResultMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *ExamFormatResultMutation) ResetPassed() {
	m.passed = nil
}

// SetTakenAt sets the "taken_at" field.
func (m *ExamFormatResultMutation) SetTakenAt(t time.Time) {
	m.taken_at = &t
}

// TakenAt returns the value of the "taken_at" field in the mutation.
func (m *ExamFormatResultMutation) TakenAt() (r time.Time, exists bool) {
	v := m.taken_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTakenAt returns the old "taken_at" field's value of the ExamFormatResult entity.
// If the ExamFormatResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamFormatResultMutation) OldTakenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTakenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTakenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTakenAt: %w", err)
	}
	return oldValue.TakenAt, nil
}

// ResetTakenAt resets all changes to the "taken_at" field.
func (m *ExamFormatResultMutation) ResetTakenAt() {
	m.taken_at = nil
}

// Where appends a list predicates to the ExamFormatResultMutation builder.
func (m *ExamFormatResultMutation) Where(ps ...predicate.ExamFormatResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExamFormatResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExamFormatResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExamFormatResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExamFormatResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExamFormatResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExamFormatResult).
func (m *ExamFormatResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExamFormatResultMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, examformatresult.FieldUserID)
	}
	if m.exam_code != nil {
		fields = append(fields, examformatresult.FieldExamCode)
	}
	if m.level != nil {
		fields = append(fields, examformatresult.FieldLevel)
	}
	if m.section_results != nil {
		fields = append(fields, examformatresult.FieldSectionResults)
	}
	if m.global_score != nil {
		fields = append(fields, examformatresult.FieldGlobalScore)
	}
	if m.score_max != nil {
		fields = append(fields, examformatresult.FieldScoreMax)
	}
	if m.global_cefr != nil {
		fields = append(fields, examformatresult.FieldGlobalCefr)
	}
	if m.passed != nil {
		fields = append(fields, examformatresult.FieldPassed)
	}
	if m.taken_at != nil {
		fields = append(fields, examformatresult.FieldTakenAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExamFormatResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case examformatresult.FieldUserID:
		return m.UserID()
	case examformatresult.FieldExamCode:
		return m.ExamCode()
	case examformatresult.FieldLevel:
		return m.Level()
	case examformatresult.FieldSectionResults:
		return m.SectionResults()
	case examformatresult.FieldGlobalScore:
		return m.GlobalScore()
	case examformatresult.FieldScoreMax:
		return m.ScoreMax()
	case examformatresult.FieldGlobalCefr:
		return m.GlobalCefr()
	case examformatresult.FieldPassed:
		return m.Passed()
	case examformatresult.FieldTakenAt:
		return m.TakenAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExamFormatResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case examformatresult.FieldUserID:
		return m.OldUserID(ctx)
	case examformatresult.FieldExamCode:
		return m.OldExamCode(ctx)
	case examformatresult.FieldLevel:
		return m.OldLevel(ctx)
	case examformatresult.FieldSectionResults:
		return m.OldSectionResults(ctx)
	case examformatresult.FieldGlobalScore:
		return m.OldGlobalScore(ctx)
	case examformatresult.FieldScoreMax:
		return m.OldScoreMax(ctx)
	case examformatresult.FieldGlobalCefr:
		return m.OldGlobalCefr(ctx)
	case examformatresult.FieldPassed:
		return m.OldPassed(ctx)
	case examformatresult.FieldTakenAt:
		return m.OldTakenAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExamFormatResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExamFormatResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case examformatresult.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case examformatresult.FieldExamCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamCode(v)
		return nil
	case examformatresult.FieldLevel:
		v, ok := value.(examformatresult.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case examformatresult.FieldSectionResults:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionResults(v)
		return nil
	case examformatresult.FieldGlobalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGlobalScore(v)
		return nil
	case examformatresult.FieldScoreMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoreMax(v)
		return nil
	case examformatresult.FieldGlobalCefr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGlobalCefr(v)
		return nil
	case examformatresult.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case examformatresult.FieldTakenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTakenAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExamFormatResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExamFormatResultMutation) AddedFields() []string {
	var fields []string
	if m.addglobal_score != nil {
		fields = append(fields, examformatresult.FieldGlobalScore)
	}
	if m.addscore_max != nil {
		fields = append(fields, examformatresult.FieldScoreMax)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExamFormatResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case examformatresult.FieldGlobalScore:
		return m.AddedGlobalScore()
	case examformatresult.FieldScoreMax:
		return m.AddedScoreMax()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExamFormatResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case examformatresult.FieldGlobalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGlobalScore(v)
		return nil
	case examformatresult.FieldScoreMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScoreMax(v)
		return nil
	}
	return fmt.Errorf("unknown ExamFormatResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExamFormatResultMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExamFormatResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExamFormatResultMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ExamFormatResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExamFormatResultMutation) ResetField(name string) error {
	switch name {
	case examformatresult.FieldUserID:
		m.ResetUserID()
		return nil
	case examformatresult.FieldExamCode:
		m.ResetExamCode()
		return nil
	case examformatresult.FieldLevel:
		m.ResetLevel()
		return nil
	case examformatresult.FieldSectionResults:
		m.ResetSectionResults()
		return nil
	case examformatresult.FieldGlobalScore:
		m.ResetGlobalScore()
		return nil
	case examformatresult.FieldScoreMax:
		m.ResetScoreMax()
		return nil
	case examformatresult.FieldGlobalCefr:
		m.ResetGlobalCefr()
		return nil
	case examformatresult.FieldPassed:
		m.ResetPassed()
		return nil
	case examformatresult.FieldTakenAt:
		m.ResetTakenAt()
		return nil
	}
	return fmt.Errorf("unknown ExamFormatResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExamFormatResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExamFormatResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExamFormatResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExamFormatResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExamFormatResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExamFormatResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExamFormatResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExamFormatResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExamFormatResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExamFormatResult edge %s", name)
}

// ExamSectionMutation represents an operation that mutates the ExamSection nodes in the graph.
type ExamSectionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	section_code        *examsection.SectionCode
	_order              *int
	add_order           *int
	duration_seconds    *int
	addduration_seconds *int
	clearedFields       map[string]struct{}
	exam                *int
	clearedexam         bool
	questions           map[int]struct{}
	removedquestions    map[int]struct{}
	clearedquestions    bool
	done                bool
	oldValue            func(context.Context) (*ExamSection, error)
	predicates          []predicate.ExamSection
}

var _ ent.Mutation = (*ExamSectionMutation)(nil)

// examsectionOption allows management of the mutation configuration using functional options.
type examsectionOption func(*ExamSectionMutation)

// newExamSectionMutation creates new mutation for the ExamSection entity.
func newExamSectionMutation(c config, op Op, opts ...examsectionOption) *ExamSectionMutation {
	m := &ExamSectionMutation{
		config:        c,
		op:            op,
		typ:           TypeExamSection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExamSectionID sets the ID field of the mutation.
func withExamSectionID(id int) examsectionOption {
	return func(m *ExamSectionMutation) {
		var (
			err   error
			once  sync.Once
			value *ExamSection
		)
		m.oldValue = func(ctx context.Context) (*ExamSection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExamSection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExamSection sets the old ExamSection of the mutation.
func withExamSection(node *ExamSection) examsectionOption {
	return func(m *ExamSectionMutation) {
		m.oldValue = func(context.Context) (*ExamSection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExamSectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExamSectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExamSectionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExamSectionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExamSection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSectionCode sets the "section_code" field.
func (m *ExamSectionMutation) SetSectionCode(ec examsection.SectionCode) {
	m.section_code = &ec
}

// SectionCode returns the value of the "section_code" field in the mutation.
func (m *ExamSectionMutation) SectionCode() (r examsection.SectionCode, exists bool) {
	v := m.section_code
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionCode returns the old "section_code" field's value of the ExamSection entity.
// If the ExamSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamSectionMutation) OldSectionCode(ctx context.Context) (v examsection.SectionCode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionCode: %w", err)
	}
	return oldValue.SectionCode, nil
}

// ResetSectionCode resets all changes to the "section_code" field.
func (m *ExamSectionMutation) ResetSectionCode() {
	m.section_code = nil
}

// SetOrder sets the "order" field.
func (m *ExamSectionMutation) SetOrder(i int) {
	m._order = &i
	m.add_order = nil
}

// Order returns the value of the "order" field in the mutation.
func (m *ExamSectionMutation) Order() (r int, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrder returns the old "order" field's value of the ExamSection entity.
// If the ExamSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamSectionMutation) OldOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrder: %w", err)
	}
	return oldValue.Order, nil
}

// AddOrder adds i to the "order" field.
func (m *ExamSectionMutation) AddOrder(i int) {
	if m.add_order != nil {
		*m.add_order += i
	} else {
		m.add_order = &i
	}
}

// AddedOrder returns the value that was added to the "order" field in this mutation.
func (m *ExamSectionMutation) AddedOrder() (r int, exists bool) {
	v := m.add_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrder resets all changes to the "order" field.
func (m *ExamSectionMutation) ResetOrder() {
	m._order = nil
	m.add_order = nil
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *ExamSectionMutation) SetDurationSeconds(i int) {
	m.duration_seconds = &i
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *ExamSectionMutation) DurationSeconds() (r int, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the ExamSection entity.
// If the ExamSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamSectionMutation) OldDurationSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds i to the "duration_seconds" field.
func (m *ExamSectionMutation) AddDurationSeconds(i int) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += i
	} else {
		m.addduration_seconds = &i
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *ExamSectionMutation) AddedDurationSeconds() (r int, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *ExamSectionMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
}

// SetExamID sets the "exam" edge to the Exam entity by id.
func (m *ExamSectionMutation) SetExamID(id int) {
	m.exam = &id
}

// ClearExam clears the "exam" edge to the Exam entity.
func (m *ExamSectionMutation) ClearExam() {
	m.clearedexam = true
}

// ExamCleared reports if the "exam" edge to the Exam entity was cleared.
func (m *ExamSectionMutation) ExamCleared() bool {
	return m.clearedexam
}

// ExamID returns the "exam" edge ID in the mutation.
func (m *ExamSectionMutation) ExamID() (id int, exists bool) {
	if m.exam != nil {
		return *m.exam, true
	}
	return
}

// ExamIDs returns the "exam" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExamID instead. It exists only for internal usage by the builders.
func (m *ExamSectionMutation) ExamIDs() (ids []int) {
	if id := m.exam; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExam resets all changes to the "exam" edge.
func (m *ExamSectionMutation) ResetExam() {
	m.exam = nil
	m.clearedexam = false
}

// AddQuestionIDs adds the "questions" edge to the Question entity by ids.
func (m *ExamSectionMutation) AddQuestionIDs(ids ...int) {
	if m.questions == nil {
		m.questions = make(map[int]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the Question entity.
func (m *ExamSectionMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the Question entity was cleared.
func (m *ExamSectionMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the Question entity by IDs.
func (m *ExamSectionMutation) RemoveQuestionIDs(ids ...int) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the Question entity.
func (m *ExamSectionMutation) RemovedQuestionsIDs() (ids []int) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *ExamSectionMutation) QuestionsIDs() (ids []int) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *ExamSectionMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// Where appends a list predicates to the ExamSectionMutation builder.
func (m *ExamSectionMutation) Where(ps ...predicate.ExamSection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExamSectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExamSectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExamSection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExamSectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExamSectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExamSection).
func (m *ExamSectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExamSectionMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.section_code != nil {
		fields = append(fields, examsection.FieldSectionCode)
	}
	if m._order != nil {
		fields = append(fields, examsection.FieldOrder)
	}
	if m.duration_seconds != nil {
		fields = append(fields, examsection.FieldDurationSeconds)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExamSectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case examsection.FieldSectionCode:
		return m.SectionCode()
	case examsection.FieldOrder:
		return m.Order()
	case examsection.FieldDurationSeconds:
		return m.DurationSeconds()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExamSectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case examsection.FieldSectionCode:
		return m.OldSectionCode(ctx)
	case examsection.FieldOrder:
		return m.OldOrder(ctx)
	case examsection.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	}
	return nil, fmt.Errorf("unknown ExamSection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExamSectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case examsection.FieldSectionCode:
		v, ok := value.(examsection.SectionCode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionCode(v)
		return nil
	case examsection.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrder(v)
		return nil
	case examsection.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown ExamSection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExamSectionMutation) AddedFields() []string {
	var fields []string
	if m.add_order != nil {
		fields = append(fields, examsection.FieldOrder)
	}
	if m.addduration_seconds != nil {
		fields = append(fields, examsection.FieldDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExamSectionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case examsection.FieldOrder:
		return m.AddedOrder()
	case examsection.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExamSectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case examsection.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrder(v)
		return nil
	case examsection.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown ExamSection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExamSectionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExamSectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExamSectionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ExamSection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExamSectionMutation) ResetField(name string) error {
	switch name {
	case examsection.FieldSectionCode:
		m.ResetSectionCode()
		return nil
	case examsection.FieldOrder:
		m.ResetOrder()
		return nil
	case examsection.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	}
	return fmt.Errorf("unknown ExamSection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExamSectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.exam != nil {
		edges = append(edges, examsection.EdgeExam)
	}
	if m.questions != nil {
		edges = append(edges, examsection.EdgeQuestions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExamSectionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case examsection.EdgeExam:
		if id := m.exam; id != nil {
			return []ent.Value{*id}
		}
	case examsection.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExamSectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedquestions != nil {
		edges = append(edges, examsection.EdgeQuestions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExamSectionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case examsection.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExamSectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedexam {
		edges = append(edges, examsection.EdgeExam)
	}
	if m.clearedquestions {
		edges = append(edges, examsection.EdgeQuestions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExamSectionMutation) EdgeCleared(name string) bool {
	switch name {
	case examsection.EdgeExam:
		return m.clearedexam
	case examsection.EdgeQuestions:
		return m.clearedquestions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExamSectionMutation) ClearEdge(name string) error {
	switch name {
	case examsection.EdgeExam:
		m.ClearExam()
		return nil
	}
	return fmt.Errorf("unknown ExamSection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExamSectionMutation) ResetEdge(name string) error {
	switch name {
	case examsection.EdgeExam:
		m.ResetExam()
		return nil
	case examsection.EdgeQuestions:
		m.ResetQuestions()
		return nil
	}
	return fmt.Errorf("unknown ExamSection edge %s", name)
}

// PassageMutation represents an operation that mutates the Passage nodes in the graph.
type PassageMutation struct {
	config
	op               Op
	typ              string
	id               *int
	title            *string
	text             *string
	clearedFields    map[string]struct{}
	questions        map[int]struct{}
	removedquestions map[int]struct{}
	clearedquestions bool
	done             bool
	oldValue         func(context.Context) (*Passage, error)
	predicates       []predicate.Passage
}

var _ ent.Mutation = (*PassageMutation)(nil)

// passageOption allows management of the mutation configuration using functional options.
type passageOption func(*PassageMutation)

// newPassageMutation creates new mutation for the Passage entity.
func newPassageMutation(c config, op Op, opts ...passageOption) *PassageMutation {
	m := &PassageMutation{
		config:        c,
		op:            op,
		typ:           TypePassage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPassageID sets the ID field of the mutation.
func withPassageID(id int) passageOption {
	return func(m *PassageMutation) {
		var (
			err   error
			once  sync.Once
			value *Passage
		)
		m.oldValue = func(ctx context.Context) (*Passage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Passage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPassage sets the old Passage of the mutation.
func withPassage(node *Passage) passageOption {
	return func(m *PassageMutation) {
		m.oldValue = func(context.Context) (*Passage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PassageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PassageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PassageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PassageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Passage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *PassageMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *PassageMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Passage entity.
// If the Passage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassageMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *PassageMutation) ResetTitle() {
	m.title = nil
}

// SetText sets the "text" field.
func (m *PassageMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *PassageMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Passage entity.
// If the Passage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassageMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *PassageMutation) ResetText() {
	m.text = nil
}

// AddQuestionIDs adds the "questions" edge to the Question entity by ids.
func (m *PassageMutation) AddQuestionIDs(ids ...int) {
	if m.questions == nil {
		m.questions = make(map[int]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the Question entity.
func (m *PassageMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the Question entity was cleared.
func (m *PassageMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the Question entity by IDs.
func (m *PassageMutation) RemoveQuestionIDs(ids ...int) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the Question entity.
func (m *PassageMutation) RemovedQuestionsIDs() (ids []int) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *PassageMutation) QuestionsIDs() (ids []int) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *PassageMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// Where appends a list predicates to the PassageMutation builder.
func (m *PassageMutation) Where(ps ...predicate.Passage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PassageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PassageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Passage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PassageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PassageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Passage).
func (m *PassageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PassageMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.title != nil {
		fields = append(fields, passage.FieldTitle)
	}
	if m.text != nil {
		fields = append(fields, passage.FieldText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PassageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case passage.FieldTitle:
		return m.Title()
	case passage.FieldText:
		return m.Text()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PassageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case passage.FieldTitle:
		return m.OldTitle(ctx)
	case passage.FieldText:
		return m.OldText(ctx)
	}
	return nil, fmt.Errorf("unknown Passage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PassageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case passage.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case passage.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	}
	return fmt.Errorf("unknown Passage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PassageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PassageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PassageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Passage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PassageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PassageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PassageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Passage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PassageMutation) ResetField(name string) error {
	switch name {
	case passage.FieldTitle:
		m.ResetTitle()
		return nil
	case passage.FieldText:
		m.ResetText()
		return nil
	}
	return fmt.Errorf("unknown Passage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PassageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.questions != nil {
		edges = append(edges, passage.EdgeQuestions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PassageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case passage.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PassageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedquestions != nil {
		edges = append(edges, passage.EdgeQuestions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PassageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case passage.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PassageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedquestions {
		edges = append(edges, passage.EdgeQuestions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PassageMutation) EdgeCleared(name string) bool {
	switch name {
	case passage.EdgeQuestions:
		return m.clearedquestions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PassageMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Passage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PassageMutation) ResetEdge(name string) error {
	switch name {
	case passage.EdgeQuestions:
		m.ResetQuestions()
		return nil
	}
	return fmt.Errorf("unknown Passage edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op             Op
	typ            string
	id             *int
	stem           *string
	subtype        *question.Subtype
	difficulty     *question.Difficulty
	explanation    *string
	clearedFields  map[string]struct{}
	section        *int
	clearedsection bool
	passage        *int
	clearedpassage bool
	asset          *int
	clearedasset   bool
	choices        map[int]struct{}
	removedchoices map[int]struct{}
	clearedchoices bool
	done           bool
	oldValue       func(context.Context) (*Question, error)
	predicates     []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id int) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStem sets the "stem" field.
func (m *QuestionMutation) SetStem(s string) {
	m.stem = &s
}

// Stem returns the value of the "stem" field in the mutation.
func (m *QuestionMutation) Stem() (r string, exists bool) {
	v := m.stem
	if v == nil {
		return
	}
	return *v, true
}

// OldStem returns the old "stem" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldStem(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStem: %w", err)
	}
	return oldValue.Stem, nil
}

// ResetStem resets all changes to the "stem" field.
func (m *QuestionMutation) ResetStem() {
	m.stem = nil
}

// SetSubtype sets the "subtype" field.
func (m *QuestionMutation) SetSubtype(q question.Subtype) {
	m.subtype = &q
}

// Subtype returns the value of the "subtype" field in the mutation.
func (m *QuestionMutation) Subtype() (r question.Subtype, exists bool) {
	v := m.subtype
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtype returns the old "subtype" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSubtype(ctx context.Context) (v question.Subtype, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtype is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtype requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtype: %w", err)
	}
	return oldValue.Subtype, nil
}

// ResetSubtype resets all changes to the "subtype" field.
func (m *QuestionMutation) ResetSubtype() {
	m.subtype = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *QuestionMutation) SetDifficulty(q question.Difficulty) {
	m.difficulty = &q
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *QuestionMutation) Difficulty() (r question.Difficulty, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDifficulty(ctx context.Context) (v question.Difficulty, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *QuestionMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetExplanation sets the "explanation" field.
func (m *QuestionMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *QuestionMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ClearExplanation clears the value of the "explanation" field.
func (m *QuestionMutation) ClearExplanation() {
	m.explanation = nil
	m.clearedFields[question.FieldExplanation] = struct{}{}
}

// ExplanationCleared returns if the "explanation" field was cleared in this mutation.
func (m *QuestionMutation) ExplanationCleared() bool {
	_, ok := m.clearedFields[question.FieldExplanation]
	return ok
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *QuestionMutation) ResetExplanation() {
	m.explanation = nil
	delete(m.clearedFields, question.FieldExplanation)
}

// SetSectionID sets the "section" edge to the ExamSection entity by id.
func (m *QuestionMutation) SetSectionID(id int) {
	m.section = &id
}

// ClearSection clears the "section" edge to the ExamSection entity.
func (m *QuestionMutation) ClearSection() {
	m.clearedsection = true
}

// SectionCleared reports if the "section" edge to the ExamSection entity was cleared.
func (m *QuestionMutation) SectionCleared() bool {
	return m.clearedsection
}

// SectionID returns the "section" edge ID in the mutation.
func (m *QuestionMutation) SectionID() (id int, exists bool) {
	if m.section != nil {
		return *m.section, true
	}
	return
}

// SectionIDs returns the "section" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SectionID instead. It exists only for internal usage by the builders.
func (m *QuestionMutation) SectionIDs() (ids []int) {
	if id := m.section; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSection resets all changes to the "section" edge.
func (m *QuestionMutation) ResetSection() {
	m.section = nil
	m.clearedsection = false
}

// SetPassageID sets the "passage" edge to the Passage entity by id.
func (m *QuestionMutation) SetPassageID(id int) {
	m.passage = &id
}

// ClearPassage clears the "passage" edge to the Passage entity.
func (m *QuestionMutation) ClearPassage() {
	m.clearedpassage = true
}

// PassageCleared reports if the "passage" edge to the Passage entity was cleared.
func (m *QuestionMutation) PassageCleared() bool {
	return m.clearedpassage
}

// PassageID returns the "passage" edge ID in the mutation.
func (m *QuestionMutation) PassageID() (id int, exists bool) {
	if m.passage != nil {
		return *m.passage, true
	}
	return
}

// PassageIDs returns the "passage" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PassageID instead. It exists only for internal usage by the builders.
func (m *QuestionMutation) PassageIDs() (ids []int) {
	if id := m.passage; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPassage resets all changes to the "passage" edge.
func (m *QuestionMutation) ResetPassage() {
	m.passage = nil
	m.clearedpassage = false
}

// SetAssetID sets the "asset" edge to the Asset entity by id.
func (m *QuestionMutation) SetAssetID(id int) {
	m.asset = &id
}

// ClearAsset clears the "asset" edge to the Asset entity.
func (m *QuestionMutation) ClearAsset() {
	m.clearedasset = true
}

// AssetCleared reports if the "asset" edge to the Asset entity was cleared.
func (m *QuestionMutation) AssetCleared() bool {
	return m.clearedasset
}

// AssetID returns the "asset" edge ID in the mutation.
func (m *QuestionMutation) AssetID() (id int, exists bool) {
	if m.asset != nil {
		return *m.asset, true
	}
	return
}

// AssetIDs returns the "asset" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssetID instead. It exists only for internal usage by the builders.
func (m *QuestionMutation) AssetIDs() (ids []int) {
	if id := m.asset; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAsset resets all changes to the "asset" edge.
func (m *QuestionMutation) ResetAsset() {
	m.asset = nil
	m.clearedasset = false
}

// AddChoiceIDs adds the "choices" edge to the Choice entity by ids.
func (m *QuestionMutation) AddChoiceIDs(ids ...int) {
	if m.choices == nil {
		m.choices = make(map[int]struct{})
	}
	for i := range ids {
		m.choices[ids[i]] = struct{}{}
	}
}

// ClearChoices clears the "choices" edge to the Choice entity.
func (m *QuestionMutation) ClearChoices() {
	m.clearedchoices = true
}

// ChoicesCleared reports if the "choices" edge to the Choice entity was cleared.
func (m *QuestionMutation) ChoicesCleared() bool {
	return m.clearedchoices
}

// RemoveChoiceIDs removes the "choices" edge to the Choice entity by IDs.
func (m *QuestionMutation) RemoveChoiceIDs(ids ...int) {
	if m.removedchoices == nil {
		m.removedchoices = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.choices, ids[i])
		m.removedchoices[ids[i]] = struct{}{}
	}
}

// RemovedChoices returns the removed IDs of the "choices" edge to the Choice entity.
func (m *QuestionMutation) RemovedChoicesIDs() (ids []int) {
	for id := range m.removedchoices {
		ids = append(ids, id)
	}
	return
}

// ChoicesIDs returns the "choices" edge IDs in the mutation.
func (m *QuestionMutation) ChoicesIDs() (ids []int) {
	for id := range m.choices {
		ids = append(ids, id)
	}
	return
}

// ResetChoices resets all changes to the "choices" edge.
func (m *QuestionMutation) ResetChoices() {
	m.choices = nil
	m.clearedchoices = false
	m.removedchoices = nil
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.stem != nil {
		fields = append(fields, question.FieldStem)
	}
	if m.subtype != nil {
		fields = append(fields, question.FieldSubtype)
	}
	if m.difficulty != nil {
		fields = append(fields, question.FieldDifficulty)
	}
	if m.explanation != nil {
		fields = append(fields, question.FieldExplanation)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldStem:
		return m.Stem()
	case question.FieldSubtype:
		return m.Subtype()
	case question.FieldDifficulty:
		return m.Difficulty()
	case question.FieldExplanation:
		return m.Explanation()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldStem:
		return m.OldStem(ctx)
	case question.FieldSubtype:
		return m.OldSubtype(ctx)
	case question.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case question.FieldExplanation:
		return m.OldExplanation(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldStem:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStem(v)
		return nil
	case question.FieldSubtype:
		v, ok := value.(question.Subtype)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtype(v)
		return nil
	case question.FieldDifficulty:
		v, ok := value.(question.Difficulty)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case question.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldExplanation) {
		fields = append(fields, question.FieldExplanation)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldExplanation:
		m.ClearExplanation()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldStem:
		m.ResetStem()
		return nil
	case question.FieldSubtype:
		m.ResetSubtype()
		return nil
	case question.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case question.FieldExplanation:
		m.ResetExplanation()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.section != nil {
		edges = append(edges, question.EdgeSection)
	}
	if m.passage != nil {
		edges = append(edges, question.EdgePassage)
	}
	if m.asset != nil {
		edges = append(edges, question.EdgeAsset)
	}
	if m.choices != nil {
		edges = append(edges, question.EdgeChoices)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeSection:
		if id := m.section; id != nil {
			return []ent.Value{*id}
		}
	case question.EdgePassage:
		if id := m.passage; id != nil {
			return []ent.Value{*id}
		}
	case question.EdgeAsset:
		if id := m.asset; id != nil {
			return []ent.Value{*id}
		}
	case question.EdgeChoices:
		ids := make([]ent.Value, 0, len(m.choices))
		for id := range m.choices {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedchoices != nil {
		edges = append(edges, question.EdgeChoices)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeChoices:
		ids := make([]ent.Value, 0, len(m.removedchoices))
		for id := range m.removedchoices {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedsection {
		edges = append(edges, question.EdgeSection)
	}
	if m.clearedpassage {
		edges = append(edges, question.EdgePassage)
	}
	if m.clearedasset {
		edges = append(edges, question.EdgeAsset)
	}
	if m.clearedchoices {
		edges = append(edges, question.EdgeChoices)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case question.EdgeSection:
		return m.clearedsection
	case question.EdgePassage:
		return m.clearedpassage
	case question.EdgeAsset:
		return m.clearedasset
	case question.EdgeChoices:
		return m.clearedchoices
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	switch name {
	case question.EdgeSection:
		m.ClearSection()
		return nil
	case question.EdgePassage:
		m.ClearPassage()
		return nil
	case question.EdgeAsset:
		m.ClearAsset()
		return nil
	}
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	switch name {
	case question.EdgeSection:
		m.ResetSection()
		return nil
	case question.EdgePassage:
		m.ResetPassage()
		return nil
	case question.EdgeAsset:
		m.ResetAsset()
		return nil
	case question.EdgeChoices:
		m.ResetChoices()
		return nil
	}
	return fmt.Errorf("unknown Question edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	user_id             *string
	exam_code           *string
	section             *string
	status              *session.Status
	total_score         *float64
	addtotal_score      *float64
	duration_seconds    *int
	addduration_seconds *int
	result_data         *map[string]interface{}
	created_at          *time.Time
	clearedFields       map[string]struct{}
	attempts            map[int]struct{}
	removedattempts     map[int]struct{}
	clearedattempts     bool
	done                bool
	oldValue            func(context.Context) (*Session, error)
	predicates          []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id int) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetExamCode sets the "exam_code" field.
func (m *SessionMutation) SetExamCode(s string) {
	m.exam_code = &s
}

// ExamCode returns the value of the "exam_code" field in the mutation.
func (m *SessionMutation) ExamCode() (r string, exists bool) {
	v := m.exam_code
	if v == nil {
		return
	}
	return *v, true
}

// OldExamCode returns the old "exam_code" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldExamCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamCode: %w", err)
	}
	return oldValue.ExamCode, nil
}

// ResetExamCode resets all changes to the "exam_code" field.
func (m *SessionMutation) ResetExamCode() {
	m.exam_code = nil
}

// SetSection sets the "section" field.
func (m *SessionMutation) SetSection(s string) {
	m.section = &s
}

// Section returns the value of the "section" field in the mutation.
func (m *SessionMutation) Section() (r string, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ResetSection resets all changes to the "section" field.
func (m *SessionMutation) ResetSection() {
	m.section = nil
}

// SetStatus sets the "status" field.
func (m *SessionMutation) SetStatus(s session.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionMutation) Status() (r session.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStatus(ctx context.Context) (v session.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionMutation) ResetStatus() {
	m.status = nil
}

// SetTotalScore sets the "total_score" field.
func (m *SessionMutation) SetTotalScore(f float64) {
	m.total_score = &f
	m.addtotal_score = nil
}

// TotalScore returns the value of the "total_score" field in the mutation.
func (m *SessionMutation) TotalScore() (r float64, exists bool) {
	v := m.total_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalScore returns the old "total_score" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTotalScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalScore: %w", err)
	}
	return oldValue.TotalScore, nil
}

// AddTotalScore adds f to the "total_score" field.
func (m *SessionMutation) AddTotalScore(f float64) {
	if m.addtotal_score != nil {
		*m.addtotal_score += f
	} else {
		m.addtotal_score = &f
	}
}

// AddedTotalScore returns the value that was added to the "total_score" field in this mutation.
func (m *SessionMutation) AddedTotalScore() (r float64, exists bool) {
	v := m.addtotal_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalScore resets all changes to the "total_score" field.
func (m *SessionMutation) ResetTotalScore() {
	m.total_score = nil
	m.addtotal_score = nil
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *SessionMutation) SetDurationSeconds(i int) {
	m.duration_seconds = &i
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *SessionMutation) DurationSeconds() (r int, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldDurationSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds i to the "duration_seconds" field.
func (m *SessionMutation) AddDurationSeconds(i int) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += i
	} else {
		m.addduration_seconds = &i
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *SessionMutation) AddedDurationSeconds() (r int, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *SessionMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
}

// SetResultData sets the "result_data" field.
func (m *SessionMutation) SetResultData(value map[string]interface{}) {
	m.result_data = &value
}

// ResultData returns the value of the "result_data" field in the mutation.
func (m *SessionMutation) ResultData() (r map[string]interface{}, exists bool) {
	v := m.result_data
	if v == nil {
		return
	}
	return *v, true
}

// OldResultData returns the old "result_data" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldResultData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultData: %w", err)
	}
	return oldValue.ResultData, nil
}

// ClearResultData clears the value of the "result_data" field.
func (m *SessionMutation) ClearResultData() {
	m.result_data = nil
	m.clearedFields[session.FieldResultData] = struct{}{}
}

// ResultDataCleared returns if the "result_data" field was cleared in this mutation.
func (m *SessionMutation) ResultDataCleared() bool {
	_, ok := m.clearedFields[session.FieldResultData]
	return ok
}

// ResetResultData resets all changes to the "result_data" field.
func (m *SessionMutation) ResetResultData() {
	m.result_data = nil
	delete(m.clearedFields, session.FieldResultData)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by ids.
func (m *SessionMutation) AddAttemptIDs(ids ...int) {
	if m.attempts == nil {
		m.attempts = make(map[int]struct{})
	}
	for i := range ids {
		m.attempts[ids[i]] = struct{}{}
	}
}

// ClearAttempts clears the "attempts" edge to the Attempt entity.
func (m *SessionMutation) ClearAttempts() {
	m.clearedattempts = true
}

// AttemptsCleared reports if the "attempts" edge to the Attempt entity was cleared.
func (m *SessionMutation) AttemptsCleared() bool {
	return m.clearedattempts
}

// RemoveAttemptIDs removes the "attempts" edge to the Attempt entity by IDs.
func (m *SessionMutation) RemoveAttemptIDs(ids ...int) {
	if m.removedattempts == nil {
		m.removedattempts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.attempts, ids[i])
		m.removedattempts[ids[i]] = struct{}{}
	}
}

// RemovedAttempts returns the removed IDs of the "attempts" edge to the Attempt entity.
func (m *SessionMutation) RemovedAttemptsIDs() (ids []int) {
	for id := range m.removedattempts {
		ids = append(ids, id)
	}
	return
}

// AttemptsIDs returns the "attempts" edge IDs in the mutation.
func (m *SessionMutation) AttemptsIDs() (ids []int) {
	for id := range m.attempts {
		ids = append(ids, id)
	}
	return
}

// ResetAttempts resets all changes to the "attempts" edge.
func (m *SessionMutation) ResetAttempts() {
	m.attempts = nil
	m.clearedattempts = false
	m.removedattempts = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, session.FieldUserID)
	}
	if m.exam_code != nil {
		fields = append(fields, session.FieldExamCode)
	}
	if m.section != nil {
		fields = append(fields, session.FieldSection)
	}
	if m.status != nil {
		fields = append(fields, session.FieldStatus)
	}
	if m.total_score != nil {
		fields = append(fields, session.FieldTotalScore)
	}
	if m.duration_seconds != nil {
		fields = append(fields, session.FieldDurationSeconds)
	}
	if m.result_data != nil {
		fields = append(fields, session.FieldResultData)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldUserID:
		return m.UserID()
	case session.FieldExamCode:
		return m.ExamCode()
	case session.FieldSection:
		return m.Section()
	case session.FieldStatus:
		return m.Status()
	case session.FieldTotalScore:
		return m.TotalScore()
	case session.FieldDurationSeconds:
		return m.DurationSeconds()
	case session.FieldResultData:
		return m.ResultData()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldUserID:
		return m.OldUserID(ctx)
	case session.FieldExamCode:
		return m.OldExamCode(ctx)
	case session.FieldSection:
		return m.OldSection(ctx)
	case session.FieldStatus:
		return m.OldStatus(ctx)
	case session.FieldTotalScore:
		return m.OldTotalScore(ctx)
	case session.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case session.FieldResultData:
		return m.OldResultData(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case session.FieldExamCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamCode(v)
		return nil
	case session.FieldSection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	case session.FieldStatus:
		v, ok := value.(session.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case session.FieldTotalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalScore(v)
		return nil
	case session.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case session.FieldResultData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultData(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_score != nil {
		fields = append(fields, session.FieldTotalScore)
	}
	if m.addduration_seconds != nil {
		fields = append(fields, session.FieldDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldTotalScore:
		return m.AddedTotalScore()
	case session.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldTotalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalScore(v)
		return nil
	case session.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldResultData) {
		fields = append(fields, session.FieldResultData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldResultData:
		m.ClearResultData()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldUserID:
		m.ResetUserID()
		return nil
	case session.FieldExamCode:
		m.ResetExamCode()
		return nil
	case session.FieldSection:
		m.ResetSection()
		return nil
	case session.FieldStatus:
		m.ResetStatus()
		return nil
	case session.FieldTotalScore:
		m.ResetTotalScore()
		return nil
	case session.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case session.FieldResultData:
		m.ResetResultData()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.attempts != nil {
		edges = append(edges, session.EdgeAttempts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.attempts))
		for id := range m.attempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedattempts != nil {
		edges = append(edges, session.EdgeAttempts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.removedattempts))
		for id := range m.removedattempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedattempts {
		edges = append(edges, session.EdgeAttempts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeAttempts:
		return m.clearedattempts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeAttempts:
		m.ResetAttempts()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// UserSkillProgressMutation represents an operation that mutates the UserSkillProgress nodes in the graph.
type UserSkillProgressMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	user_id               *string
	exam_code             *string
	skill                 *userskillprogress.Skill
	current_level         *userskillprogress.CurrentLevel
	last_score_percent    *float64
	addlast_score_percent *float64
	total_attempts        *int
	addtotal_attempts     *int
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*UserSkillProgress, error)
	predicates            []predicate.UserSkillProgress
}

var _ ent.Mutation = (*UserSkillProgressMutation)(nil)

// userskillprogressOption allows management of the mutation configuration using functional options.
type userskillprogressOption func(*UserSkillProgressMutation)

// newUserSkillProgressMutation creates new mutation for the UserSkillProgress entity.
func newUserSkillProgressMutation(c config, op Op, opts ...userskillprogressOption) *UserSkillProgressMutation {
	m := &UserSkillProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeUserSkillProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserSkillProgressID sets the ID field of the mutation.
func withUserSkillProgressID(id int) userskillprogressOption {
	return func(m *UserSkillProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *UserSkillProgress
		)
		m.oldValue = func(ctx context.Context) (*UserSkillProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserSkillProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserSkillProgress sets the old UserSkillProgress of the mutation.
func withUserSkillProgress(node *UserSkillProgress) userskillprogressOption {
	return func(m *UserSkillProgressMutation) {
		m.oldValue = func(context.Context) (*UserSkillProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserSkillProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserSkillProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserSkillProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserSkillProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserSkillProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserSkillProgressMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserSkillProgressMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserSkillProgress entity.
// If the UserSkillProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillProgressMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserSkillProgressMutation) ResetUserID() {
	m.user_id = nil
}

// SetExamCode sets the "exam_code" field.
func (m *UserSkillProgressMutation) SetExamCode(s string) {
	m.exam_code = &s
}

// ExamCode returns the value of the "exam_code" field in the mutation.
func (m *UserSkillProgressMutation) ExamCode() (r string, exists bool) {
	v := m.exam_code
	if v == nil {
		return
	}
	return *v, true
}

// OldExamCode returns the old "exam_code" field's value of the UserSkillProgress entity.
// If the UserSkillProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillProgressMutation) OldExamCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamCode: %w", err)
	}
	return oldValue.ExamCode, nil
}

// ResetExamCode resets all changes to the "exam_code" field.
func (m *UserSkillProgressMutation) ResetExamCode() {
	m.exam_code = nil
}

// SetSkill sets the "skill" field.
func (m *UserSkillProgressMutation) SetSkill(u userskillprogress.Skill) {
	m.skill = &u
}

// Skill returns the value of the "skill" field in the mutation.
func (m *UserSkillProgressMutation) Skill() (r userskillprogress.Skill, exists bool) {
	v := m.skill
	if v == nil {
		return
	}
	return *v, true
}

// OldSkill returns the old "skill" field's value of the UserSkillProgress entity.
// If the UserSkillProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillProgressMutation) OldSkill(ctx context.Context) (v userskillprogress.Skill, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkill is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkill requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkill: %w", err)
	}
	return oldValue.Skill, nil
}

// ResetSkill resets all changes to the "skill" field.
func (m *UserSkillProgressMutation) ResetSkill() {
	m.skill = nil
}

// SetCurrentLevel sets the "current_level" field.
func (m *UserSkillProgressMutation) SetCurrentLevel(ul userskillprogress.CurrentLevel) {
	m.current_level = &ul
}

// CurrentLevel returns the value of the "current_level" field in the mutation.
func (m *UserSkillProgressMutation) CurrentLevel() (r userskillprogress.CurrentLevel, exists bool) {
	v := m.current_level
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentLevel returns the old "current_level" field's value of the UserSkillProgress entity.
// If the UserSkillProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillProgressMutation) OldCurrentLevel(ctx context.Context) (v userskillprogress.CurrentLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentLevel: %w", err)
	}
	return oldValue.CurrentLevel, nil
}

// ResetCurrentLevel resets all changes to the "current_level" field.
func (m *UserSkillProgressMutation) ResetCurrentLevel() {
	m.current_level = nil
}

// SetLastScorePercent sets the "last_score_percent" field.
func (m *UserSkillProgressMutation) SetLastScorePercent(f float64) {
	m.last_score_percent = &f
	m.addlast_score_percent = nil
}

// LastScorePercent returns the value of the "last_score_percent" field in the mutation.
func (m *UserSkillProgressMutation) LastScorePercent() (r float64, exists bool) {
	v := m.last_score_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldLastScorePercent returns the old "last_score_percent" field's value of the UserSkillProgress entity.
// If the UserSkillProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillProgressMutation) OldLastScorePercent(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastScorePercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastScorePercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastScorePercent: %w", err)
	}
	return oldValue.LastScorePercent, nil
}

// AddLastScorePercent adds f to the "last_score_percent" field.
func (m *UserSkillProgressMutation) AddLastScorePercent(f float64) {
	if m.addlast_score_percent != nil {
		*m.addlast_score_percent += f
	} else {
		m.addlast_score_percent = &f
	}
}

// AddedLastScorePercent returns the value that was added to the "last_score_percent" field in this mutation.
func (m *UserSkillProgressMutation) AddedLastScorePercent() (r float64, exists bool) {
	v := m.addlast_score_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastScorePercent resets all changes to the "last_score_percent" field.
func (m *UserSkillProgressMutation) ResetLastScorePercent() {
	m.last_score_percent = nil
	m.addlast_score_percent = nil
}

// SetTotalAttempts sets the "total_attempts" field.
func (m *UserSkillProgressMutation) SetTotalAttempts(i int) {
	m.total_attempts = &i
	m.addtotal_attempts = nil
}

// TotalAttempts returns the value of the "total_attempts" field in the mutation.
func (m *UserSkillProgressMutation) TotalAttempts() (r int, exists bool) {
	v := m.total_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAttempts returns the old "total_attempts" field's value of the UserSkillProgress entity.
// If the UserSkillProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillProgressMutation) OldTotalAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAttempts: %w", err)
	}
	return oldValue.TotalAttempts, nil
}

// AddTotalAttempts adds i to the "total_attempts" field.
func (m *UserSkillProgressMutation) AddTotalAttempts(i int) {
	if m.addtotal_attempts != nil {
		*m.addtotal_attempts += i
	} else {
		m.addtotal_attempts = &i
	}
}

// AddedTotalAttempts returns the value that was added to the "total_attempts" field in this mutation.
func (m *UserSkillProgressMutation) AddedTotalAttempts() (r int, exists bool) {
	v := m.addtotal_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAttempts resets all changes to the "total_attempts" field.
func (m *UserSkillProgressMutation) ResetTotalAttempts() {
	m.total_attempts = nil
	m.addtotal_attempts = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserSkillProgressMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserSkillProgressMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserSkillProgress entity.
// If the UserSkillProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillProgressMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserSkillProgressMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserSkillProgressMutation builder.
func (m *UserSkillProgressMutation) Where(ps ...predicate.UserSkillProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserSkillProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserSkillProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserSkillProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserSkillProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserSkillProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserSkillProgress).
func (m *UserSkillProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserSkillProgressMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, userskillprogress.FieldUserID)
	}
	if m.exam_code != nil {
		fields = append(fields, userskillprogress.FieldExamCode)
	}
	if m.skill != nil {
		fields = append(fields, userskillprogress.FieldSkill)
	}
	if m.current_level != nil {
		fields = append(fields, userskillprogress.FieldCurrentLevel)
	}
	if m.last_score_percent != nil {
		fields = append(fields, userskillprogress.FieldLastScorePercent)
	}
	if m.total_attempts != nil {
		fields = append(fields, userskillprogress.FieldTotalAttempts)
	}
	if m.updated_at != nil {
		fields = append(fields, userskillprogress.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserSkillProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userskillprogress.FieldUserID:
		return m.UserID()
	case userskillprogress.FieldExamCode:
		return m.ExamCode()
	case userskillprogress.FieldSkill:
		return m.Skill()
	case userskillprogress.FieldCurrentLevel:
		return m.CurrentLevel()
	case userskillprogress.FieldLastScorePercent:
		return m.LastScorePercent()
	case userskillprogress.FieldTotalAttempts:
		return m.TotalAttempts()
	case userskillprogress.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserSkillProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userskillprogress.FieldUserID:
		return m.OldUserID(ctx)
	case userskillprogress.FieldExamCode:
		return m.OldExamCode(ctx)
	case userskillprogress.FieldSkill:
		return m.OldSkill(ctx)
	case userskillprogress.FieldCurrentLevel:
		return m.OldCurrentLevel(ctx)
	case userskillprogress.FieldLastScorePercent:
		return m.OldLastScorePercent(ctx)
	case userskillprogress.FieldTotalAttempts:
		return m.OldTotalAttempts(ctx)
	case userskillprogress.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserSkillProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSkillProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userskillprogress.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userskillprogress.FieldExamCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamCode(v)
		return nil
	case userskillprogress.FieldSkill:
		v, ok := value.(userskillprogress.Skill)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkill(v)
		return nil
	case userskillprogress.FieldCurrentLevel:
		v, ok := value.(userskillprogress.CurrentLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentLevel(v)
		return nil
	case userskillprogress.FieldLastScorePercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastScorePercent(v)
		return nil
	case userskillprogress.FieldTotalAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAttempts(v)
		return nil
	case userskillprogress.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserSkillProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserSkillProgressMutation) AddedFields() []string {
	var fields []string
	if m.addlast_score_percent != nil {
		fields = append(fields, userskillprogress.FieldLastScorePercent)
	}
	if m.addtotal_attempts != nil {
		fields = append(fields, userskillprogress.FieldTotalAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserSkillProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userskillprogress.FieldLastScorePercent:
		return m.AddedLastScorePercent()
	case userskillprogress.FieldTotalAttempts:
		return m.AddedTotalAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSkillProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userskillprogress.FieldLastScorePercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastScorePercent(v)
		return nil
	case userskillprogress.FieldTotalAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown UserSkillProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserSkillProgressMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserSkillProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserSkillProgressMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserSkillProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserSkillProgressMutation) ResetField(name string) error {
	switch name {
	case userskillprogress.FieldUserID:
		m.ResetUserID()
		return nil
	case userskillprogress.FieldExamCode:
		m.ResetExamCode()
		return nil
	case userskillprogress.FieldSkill:
		m.ResetSkill()
		return nil
	case userskillprogress.FieldCurrentLevel:
		m.ResetCurrentLevel()
		return nil
	case userskillprogress.FieldLastScorePercent:
		m.ResetLastScorePercent()
		return nil
	case userskillprogress.FieldTotalAttempts:
		m.ResetTotalAttempts()
		return nil
	case userskillprogress.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSkillProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserSkillProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserSkillProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserSkillProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserSkillProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserSkillProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserSkillProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserSkillProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserSkillProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserSkillProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserSkillProgress edge %s", name)
}
