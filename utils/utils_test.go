package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTodayISO(t *testing.T) {
	today := TodayISO()

	parsed, err := time.Parse("2006-01-02", today)
	assert.NoError(t, err)
	assert.Equal(t, today, parsed.Format("2006-01-02"))
}

func TestYesterdayISO(t *testing.T) {
	assert.Equal(t, "2026-08-31", YesterdayISO("2026-09-01"))
	assert.Equal(t, "2026-02-28", YesterdayISO("2026-03-01"))
	assert.Equal(t, "2025-12-31", YesterdayISO("2026-01-01"))
}

func TestYesterdayISO_InvalidInput(t *testing.T) {
	assert.Equal(t, "", YesterdayISO("not-a-date"))
}

func TestObjectKey(t *testing.T) {
	key := ObjectKey("materials", "worksheet.pdf")

	assert.True(t, strings.HasPrefix(key, "materials/"))
	assert.True(t, strings.HasSuffix(key, ".pdf"))
	assert.NotEqual(t, key, ObjectKey("materials", "worksheet.pdf"))
}

func TestObjectKey_NoExtension(t *testing.T) {
	key := ObjectKey("audio", "narration")

	assert.True(t, strings.HasPrefix(key, "audio/"))
	assert.False(t, strings.Contains(key, "."))
}
