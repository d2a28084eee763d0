package utils

import "strings"

// NormalizeTruckNumber brings registration plates to one format:
// no spaces or dashes, upper case ("kda 123-x" -> "KDA123X").
func NormalizeTruckNumber(raw string) string {
	normalized := strings.TrimSpace(raw)
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ToUpper(normalized)
	return normalized
}
