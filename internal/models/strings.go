package models

import "strings"

func normalized(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
