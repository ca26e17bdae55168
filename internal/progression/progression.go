// Package progression is the only code allowed to advance a learner's
// CEFR level. Levels move up one step at a time when a section score
// clears the level's threshold; each unlock issues a certificate inside
// the same transaction.
package progression

import (
	"context"
	"errors"
	"fmt"

	"github.com/visaetude/prepcore/ent"
	"github.com/visaetude/prepcore/ent/userskillprogress"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/certs"
	"github.com/visaetude/prepcore/internal/store"
)

// Thresholds is the percent required to advance FROM each level.
// C2 is terminal.
var Thresholds = map[cefr.Level]float64{
	cefr.A1: 65,
	cefr.A2: 70,
	cefr.B1: 75,
	cefr.B2: 80,
	cefr.C1: 85,
}

// Unlock reasons for a declined advance.
const (
	ReasonAlreadyMax  = "already_max"
	ReasonScoreTooLow = "score_too_low"
)

// UnlockResult reports the outcome of a TryUnlock call.
type UnlockResult struct {
	Unlocked bool
	OldLevel cefr.Level
	NewLevel cefr.Level
	Reason   string

	// CertificateGenerated is true when a new certificate row was
	// created (false when it pre-existed from an earlier unlock).
	CertificateGenerated bool
	CertificatePublicID  string
}

// Certifier issues certificates; satisfied by *certs.Service.
type Certifier interface {
	Issue(ctx context.Context, client *ent.Client, userID, examCode string, level cefr.Level) (*certs.Issuance, error)
}

// Engine evaluates unlock attempts.
type Engine struct {
	store *store.Store
	certs Certifier
}

// NewEngine creates a progression engine.
func NewEngine(st *store.Store, certifier Certifier) *Engine {
	return &Engine{store: st, certs: certifier}
}

// TryUnlock records the score and advances the learner one CEFR step if
// it clears the current level's threshold. Runs in a single transaction
// covering the progress row, the level change and the certificate.
func (e *Engine) TryUnlock(ctx context.Context, userID, examCode string, skill cefr.Skill, scorePercent float64) (*UnlockResult, error) {
	if !cefr.ValidSkill(skill) {
		return nil, fmt.Errorf("invalid skill %q", skill)
	}

	var result *UnlockResult
	err := e.store.WithTx(ctx, func(tx *ent.Client) error {
		progress, err := loadOrCreate(ctx, tx, userID, examCode, skill)
		if err != nil {
			return err
		}

		current := cefr.Level(progress.CurrentLevel)
		update := tx.UserSkillProgress.UpdateOne(progress).
			SetLastScorePercent(scorePercent).
			AddTotalAttempts(1)

		if current == cefr.C2 {
			if _, err := update.Save(ctx); err != nil {
				return fmt.Errorf("record attempt: %w", err)
			}
			result = &UnlockResult{OldLevel: current, Reason: ReasonAlreadyMax}
			return nil
		}

		if scorePercent < Thresholds[current] {
			if _, err := update.Save(ctx); err != nil {
				return fmt.Errorf("record attempt: %w", err)
			}
			result = &UnlockResult{OldLevel: current, Reason: ReasonScoreTooLow}
			return nil
		}

		next, ok := cefr.Next(current)
		if !ok {
			result = &UnlockResult{OldLevel: current, Reason: ReasonAlreadyMax}
			return nil
		}

		if _, err := update.
			SetCurrentLevel(userskillprogress.CurrentLevel(next)).
			Save(ctx); err != nil {
			return fmt.Errorf("advance level: %w", err)
		}

		issuance, err := e.certs.Issue(ctx, tx, userID, examCode, next)
		if err != nil {
			// A render failure must not roll back the unlock; the row
			// exists and the PDF can be re-rendered.
			var renderErr *certs.RenderError
			if !errors.As(err, &renderErr) {
				return fmt.Errorf("issue certificate: %w", err)
			}
		}

		result = &UnlockResult{
			Unlocked: true,
			OldLevel: current,
			NewLevel: next,
		}
		if issuance != nil {
			result.CertificateGenerated = issuance.Created
			result.CertificatePublicID = issuance.PublicID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Progress returns the stored progress row, or a default A1 view when
// none exists yet.
func (e *Engine) Progress(ctx context.Context, userID, examCode string, skill cefr.Skill) (cefr.Level, error) {
	progress, err := e.store.Client().UserSkillProgress.Query().
		Where(
			userskillprogress.UserID(userID),
			userskillprogress.ExamCode(examCode),
			userskillprogress.SkillEQ(userskillprogress.Skill(skill)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return cefr.A1, nil
		}
		return "", fmt.Errorf("load progress: %w", err)
	}
	return cefr.Level(progress.CurrentLevel), nil
}

// GlobalLevel is the lowest current level across the four skills; used
// by the recommender as the learner's overall ceiling.
func (e *Engine) GlobalLevel(ctx context.Context, userID, examCode string) (cefr.Level, error) {
	lowest := cefr.C2
	for _, skill := range cefr.Skills {
		level, err := e.Progress(ctx, userID, examCode, skill)
		if err != nil {
			return "", err
		}
		if cefr.Index(level) < cefr.Index(lowest) {
			lowest = level
		}
	}
	return lowest, nil
}

func loadOrCreate(ctx context.Context, tx *ent.Client, userID, examCode string, skill cefr.Skill) (*ent.UserSkillProgress, error) {
	progress, err := tx.UserSkillProgress.Query().
		Where(
			userskillprogress.UserID(userID),
			userskillprogress.ExamCode(examCode),
			userskillprogress.SkillEQ(userskillprogress.Skill(skill)),
		).
		Only(ctx)
	if err == nil {
		return progress, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	progress, err = tx.UserSkillProgress.Create().
		SetUserID(userID).
		SetExamCode(examCode).
		SetSkill(userskillprogress.Skill(skill)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create progress: %w", err)
	}
	return progress, nil
}
