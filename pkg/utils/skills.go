package utils

import "strings"

// ParseSkills splits a comma-separated list and trims every entry.
// Entries that are empty after trimming are dropped.
func ParseSkills(s string) []string {
	skills := []string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			skills = append(skills, part)
		}
	}
	return skills
}
