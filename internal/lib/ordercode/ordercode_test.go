package ordercode

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Format(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 5, 42, 0, time.UTC)

	code, err := Generate(now)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^PP-[0-9A-F]{6}-090542$`), code)
}

func TestGenerate_TimezoneAffectsTimeComponent(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)
	now := time.Date(2025, 1, 15, 23, 30, 0, 0, time.UTC)

	code, err := Generate(now.In(loc))
	require.NoError(t, err)

	// 23:30 UTC зимой — 00:30 в Мадриде
	assert.True(t, strings.HasSuffix(code, "-003000"), "got %s", code)
}

func TestGenerate_SuffixVaries(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code, err := Generate(now)
		require.NoError(t, err)
		seen[code] = struct{}{}
	}
	// 50 кодов с одинаковым временем различаются случайной частью
	assert.Greater(t, len(seen), 1)
}
