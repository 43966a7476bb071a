package metrics

import "strings"

// minTokenLength is the inclusive floor below which a split fragment is
// discarded as noise (spec.md §3: "tokens of length <= 2 discarded").
const minTokenLength = 3

// SplitIdentifier splits an identifier on any run of non-word characters
// and, within each resulting run, before every uppercase letter that isn't
// the run's first character — the literal (?<!^)(?=[A-Z]) rule pinned by
// spec.md §9. It lowercases the fragments and drops any of length <= 2.
// This rule is load-bearing for clustering — callers should not
// reimplement it.
func SplitIdentifier(s string) []string {
	var fragments []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			fragments = append(fragments, string(current))
			current = nil
		}
	}

	for _, r := range s {
		switch {
		case isWordRune(r):
			if isUpper(r) && len(current) > 0 {
				flush()
			}
			current = append(current, r)
		default:
			flush()
		}
	}
	flush()

	tokens := make([]string, 0, len(fragments))
	for _, f := range fragments {
		lower := strings.ToLower(f)
		if len(lower) > minTokenLength-1 {
			tokens = append(tokens, lower)
		}
	}
	return tokens
}

// isWordRune reports whether r is a letter or digit. Underscore is treated
// as a separator, not a word character, so snake_case identifiers split on
// it the same way "foo-bar" splits on a hyphen.
func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

// BuildTokenBag unions the fragments of a method name, its parameter type
// designators, and its call-site targets into the deduplicated, lowercased
// token bag used as the clustering feature (spec.md §3).
func BuildTokenBag(methodName string, paramTypes []string, callTargets []string) []string {
	seen := make(map[string]bool)
	var bag []string

	add := func(s string) {
		for _, tok := range SplitIdentifier(s) {
			if !seen[tok] {
				seen[tok] = true
				bag = append(bag, tok)
			}
		}
	}

	add(methodName)
	for _, p := range paramTypes {
		add(p)
	}
	for _, c := range callTargets {
		add(c)
	}
	return bag
}
