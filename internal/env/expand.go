package env

import "regexp"

// Pattern for {VAR_NAME} placeholder tokens embedded in option values.
var tokenPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandTokens substitutes every {TOKEN} in s using the resolver. The whole
// string is processed in one pass; unresolved tokens are returned unchanged
// so callers can surface them verbatim in diagnostics.
func expandTokens(r Resolver, s string) string {
	if s == "" {
		return ""
	}

	return tokenPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := tokenPattern.FindStringSubmatch(match)[1]
		if value, ok := r.Lookup(name); ok {
			return value
		}
		return match
	})
}
