package logging

import (
	"regexp"
	"strings"
)

// Redacted replaces values whose field name marks them as sensitive.
const Redacted = "[REDACTED]"

// sensitivePatterns match field names whose values must never be logged.
var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(password|passwd|pwd)`),
	regexp.MustCompile(`(?i)(token|api[_-]?key|secret|credential)`),
	regexp.MustCompile(`(?i)(ssn|social[_-]?security)`),
	regexp.MustCompile(`(?i)(credit[_-]?card|card[_-]?number)`),
}

// piiPatterns match string content that looks like PII: email addresses,
// phone numbers, social security numbers.
var piiPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`),
	regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
	regexp.MustCompile(`\b\d{3}[-]?\d{2}[-]?\d{4}\b`),
}

// RedactSensitive redacts a field value before logging: values under a
// sensitive key are replaced entirely, string values under other keys
// have PII-looking content masked.
func RedactSensitive(key string, value any) any {
	lowerKey := strings.ToLower(key)
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(lowerKey) {
			return Redacted
		}
	}
	if str, ok := value.(string); ok {
		return redactPII(str)
	}
	return value
}

func redactPII(s string) string {
	result := s
	for _, pattern := range piiPatterns {
		result = pattern.ReplaceAllString(result, "[PII]")
	}
	return result
}
