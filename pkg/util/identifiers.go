package util

import "strings"

// UniqueIdentifiers trims each identifier and drops blanks and repeats,
// keeping the order they were first given in.
func UniqueIdentifiers(identifiers []string) []string {
	seen := make(map[string]struct{}, len(identifiers))
	unique := make([]string, 0, len(identifiers))

	for _, identifier := range identifiers {
		identifier = strings.TrimSpace(identifier)
		if identifier == "" {
			continue
		}
		if _, exists := seen[identifier]; exists {
			continue
		}

		seen[identifier] = struct{}{}
		unique = append(unique, identifier)
	}

	return unique
}
