package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTherapistRoleLabels(t *testing.T) {
	seen := map[string]bool{}
	for _, role := range AllTherapistRoles {
		label := role.Label()
		assert.NotEmpty(t, label, "role %q has no label", role)
		assert.False(t, seen[label], "label %q reused", label)
		seen[label] = true
	}
	assert.Len(t, AllTherapistRoles, 5)
}

func TestIdeationLevelLabels(t *testing.T) {
	for _, level := range AllIdeationLevels {
		assert.NotEmpty(t, level.Label(), "level %q has no label", level)
	}
	assert.Equal(t, "Active ideation with plan", IdeationActiveWithPlan.Label())
	assert.Equal(t, "None", IdeationNone.Label())
}

func TestSeverityLevelLabels(t *testing.T) {
	for _, level := range AllSeverityLevels {
		assert.NotEmpty(t, level.Label(), "level %q has no label", level)
	}
	assert.Equal(t, "Moderate", SeverityModerate.Label())
}
