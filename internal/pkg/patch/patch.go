package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// OptionalString keeps the existing optional value when the patch is absent and
// clears it when the patch is present but blank.
func OptionalString(p *string, existing *string) *string {
	if p == nil {
		return existing
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
