package logging

import (
	"regexp"
	"strings"
)

const (
	// MaskChar is the character used for masking.
	MaskChar = "*"
	// visibleSuffix is how many trailing characters MaskSecret keeps.
	visibleSuffix = 4
)

// sensitiveKeywords mark a field name as holding a secret.
var sensitiveKeywords = []string{
	"token",
	"secret",
	"password",
	"api_key",
	"apikey",
	"authorization",
	"credential",
}

// queryKeyPattern matches secrets passed as URL query parameters.
var queryKeyPattern = regexp.MustCompile(`([?&](?:key|access_token)=)[^&\s"']+`)

// bearerPattern matches bearer tokens in header dumps.
var bearerPattern = regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9._\-]+`)

// IsSensitiveField checks if a field name indicates sensitive data.
func IsSensitiveField(fieldName string) bool {
	lower := strings.ToLower(fieldName)
	for _, keyword := range sensitiveKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// MaskSecret hides a secret, keeping only its last few characters so that
// two configured keys can still be told apart.
func MaskSecret(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= visibleSuffix*2 {
		return strings.Repeat(MaskChar, len(value))
	}
	return strings.Repeat(MaskChar, 8) + value[len(value)-visibleSuffix:]
}

// MaskString masks secrets embedded in free text such as URLs and headers.
func MaskString(s string) string {
	s = queryKeyPattern.ReplaceAllString(s, "${1}"+strings.Repeat(MaskChar, 3))
	return bearerPattern.ReplaceAllString(s, "${1}"+strings.Repeat(MaskChar, 3))
}

// MaskMap masks sensitive values in a map, recursing into nested maps.
func MaskMap(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))

	for key, value := range m {
		switch v := value.(type) {
		case string:
			if IsSensitiveField(key) {
				result[key] = MaskSecret(v)
			} else {
				result[key] = MaskString(v)
			}
		case map[string]any:
			result[key] = MaskMap(v)
		default:
			if IsSensitiveField(key) {
				result[key] = strings.Repeat(MaskChar, 8)
			} else {
				result[key] = value
			}
		}
	}

	return result
}
