package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenMatchesTokensCaseInsensitively(t *testing.T) {
	filter, err := NewFilter([]string{"idiot", "schei(ss|ß)e"})
	require.NoError(t, err)

	assert.True(t, filter.Screen("Du Idiot"))
	assert.True(t, filter.Screen("du IDIOT du"))
	assert.True(t, filter.Screen("so eine scheiße"))
	// Partial token matches condemn the subject as well.
	assert.True(t, filter.Screen("Vollidiot"))

	assert.False(t, filter.Screen("Klausur Feedback"))
	assert.False(t, filter.Screen(""))
}

func TestNewFilterRejectsBadPattern(t *testing.T) {
	_, err := NewFilter([]string{"("})
	assert.Error(t, err)
}

func TestDefaultDenyListCompiles(t *testing.T) {
	filter, err := NewFilter(DefaultDenyList)
	require.NoError(t, err)
	assert.True(t, filter.Screen("Du Trottel"))
	assert.False(t, filter.Screen("Terminabsprache Bachelorarbeit"))
}
