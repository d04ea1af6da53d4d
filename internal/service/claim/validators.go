package claim

import "strings"

func isValidCode(code string) bool {
	code = strings.TrimSpace(code)
	if len(code) != codeLength {
		return false
	}
	for _, char := range code {
		if char >= 'a' && char <= 'z' {
			continue
		}
		if char >= 'A' && char <= 'Z' {
			continue
		}
		if char >= '0' && char <= '9' {
			continue
		}
		return false
	}
	return true
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
