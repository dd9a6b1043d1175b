package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/stranded/internal/engine"
	"github.com/tatianab/stranded/internal/models"
)

func newTestSession(t *testing.T) *engine.Session {
	t.Helper()
	w, err := models.DefaultWorld()
	require.NoError(t, err)
	return engine.NewSession(w, nil)
}

func TestRunPlain(t *testing.T) {
	session := newTestSession(t)
	in := strings.NewReader("take repair kit\n\ninventory\nxyzzy\n")
	var out bytes.Buffer

	require.NoError(t, RunPlain(session, in, &out))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, welcomeMessage+"\n\nYou are in the command center"))
	assert.Contains(t, text, "> You pick up the Repair Kit.\n\n> ")
	assert.Contains(t, text, "You are carrying:\n- Repair Kit")
	assert.Contains(t, text, "I don't understand 'xyzzy'.")
	assert.True(t, strings.HasSuffix(text, "> "))
	assert.Len(t, session.History(), 3)
}

func TestRunPlain_Quit(t *testing.T) {
	session := newTestSession(t)
	in := strings.NewReader("north\n/quit\nsouth\n")
	var out bytes.Buffer

	require.NoError(t, RunPlain(session, in, &out))
	assert.Equal(t, "crashSite", session.State().Location)
	assert.NotContains(t, out.String(), "You can't go")
}
