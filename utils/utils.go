package utils

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// TodayISO returns the server's current date as an ISO day string
func TodayISO() string {
	return time.Now().Format("2006-01-02")
}

// YesterdayISO returns yesterday's date relative to an ISO day string
func YesterdayISO(today string) string {
	t, err := time.Parse("2006-01-02", today)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format("2006-01-02")
}

// ObjectKey builds a unique bucket key under a prefix, keeping the original extension
func ObjectKey(prefix, filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), ext)
}
