package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rbmartins/secretaria/internal/model"
)

func TestTranscriptMessages(t *testing.T) {
	u := userMessage("oi")
	a := assistantMessage("Olá!")

	assert.Equal(t, model.RoleUser, u.Role)
	assert.Equal(t, model.RoleAssistant, a.Role)
	assert.Equal(t, "oi", u.Content)

	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, u.ID, a.ID)

	assert.False(t, u.Timestamp.IsZero())
	assert.False(t, a.Timestamp.IsZero())
}
