package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSystemPrompt(t *testing.T) {
	req := NewBuilder().Build("Session 1 - ...", 1)

	require.NotEmpty(t, req.System)
	assert.Contains(t, req.System, "patterns")
	assert.Contains(t, req.System, "progressTrends")
	assert.Contains(t, req.System, "riskIndicators")
	assert.Contains(t, req.System, "treatmentGaps")
	assert.Contains(t, req.System, "same language as the session notes")
	assert.Contains(t, req.System, `"confidence"`)
}

func TestBuildSystemPromptIsFixed(t *testing.T) {
	b := NewBuilder()
	first := b.Build("some sessions", 2)
	second := b.Build("entirely different sessions", 40)

	assert.Equal(t, first.System, second.System)
}

func TestBuildUserPrompt(t *testing.T) {
	formatted := "Session 1 - January 1, 2024\nSubjective: ..."
	req := NewBuilder().Build(formatted, 3)

	assert.Contains(t, req.User, "3 completed therapy sessions")
	assert.Contains(t, req.User, formatted)
	assert.Contains(t, req.User, "oldest first")
}
