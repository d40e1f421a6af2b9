package patterns

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandReplacesBaseFragments(t *testing.T) {
	got := Expand(`^(?P<N>{HOUSE_NUMBER})$`, nil)
	assert.NotContains(t, got, "{HOUSE_NUMBER}")
	assert.Contains(t, got, `\d+`)
}

func TestExpandLocalOverridesBase(t *testing.T) {
	local := map[string]string{"HOUSE_NUMBER": `X+`}
	got := Expand(`{HOUSE_NUMBER}`, local)
	assert.Equal(t, `X+`, got)
}

func TestExpandLocalOnlyFragment(t *testing.T) {
	local := map[string]string{"STREET_TYPES_US": `st|ave`}
	got := Expand(`(?:{STREET_TYPES_US})`, local)
	assert.Equal(t, `(?:st|ave)`, got)
}

func TestExpandLeavesUnknownPlaceholders(t *testing.T) {
	got := Expand(`{NO_SUCH_FRAGMENT}`, nil)
	assert.Equal(t, `{NO_SUCH_FRAGMENT}`, got)
}

// Every base fragment must compile on its own and stay capture-free, so the
// composing pattern controls what is surfaced.
func TestBaseFragmentsCompileWithoutCaptures(t *testing.T) {
	for name, fragment := range Base {
		re, err := regexp.Compile(`(?i)(?:` + fragment + `)`)
		require.NoError(t, err, "fragment %s", name)
		assert.Zero(t, re.NumSubexp(), "fragment %s must not capture", name)
		assert.False(t, strings.Contains(fragment, "{"), "fragment %s must not nest placeholders", name)
	}
}
