package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visaetude/prepcore/internal/cefr"
	"github.com/visaetude/prepcore/internal/store"
)

func TestRecordAndHistory(t *testing.T) {
	st, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	ctx := context.Background()

	result, err := ScoreExam("TEF", []SectionInput{
		{Section: cefr.SkillCO, Raw: 45, Total: 60},
		{Section: cefr.SkillCE, Raw: 40, Total: 50},
	})
	require.NoError(t, err)

	row, err := Record(ctx, st, "marie", cefr.B1, result)
	require.NoError(t, err)
	assert.Equal(t, "TEF", row.ExamCode)
	assert.Equal(t, result.GlobalScore, row.GlobalScore)
	assert.Equal(t, result.GlobalBand, row.GlobalCefr)
	assert.False(t, row.Passed)

	co, ok := row.SectionResults["co"].(map[string]any)
	require.True(t, ok, "co section breakdown missing: %v", row.SectionResults)
	assert.EqualValues(t, 45, co["raw"])
	assert.Equal(t, "B2", co["cefr"])

	// Second run, then read back newest first.
	_, err = Record(ctx, st, "marie", cefr.B1, result)
	require.NoError(t, err)

	rows, err := History(ctx, st, "marie", "tef")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = History(ctx, st, "someone-else", "TEF")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRecordRejectsBadInput(t *testing.T) {
	st, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	_, err = Record(context.Background(), st, "marie", cefr.B1, nil)
	assert.Error(t, err)

	result, err := ScoreExam("TEF", []SectionInput{{Section: cefr.SkillCO, Raw: 1, Total: 2}})
	require.NoError(t, err)
	_, err = Record(context.Background(), st, "marie", cefr.Level("Z9"), result)
	assert.Error(t, err)
}
