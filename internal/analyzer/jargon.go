package analyzer

import (
	"regexp"
)

// JargonEntry rewrites one Korean trade-slang phrase to its canonical English
// term.
type JargonEntry struct {
	From string
	To   string
}

// JargonNormalizer rewrites Korean trade slang into canonical English terms
// before keyword matching. Substitutions run in map-definition order with no
// protection against a later rule matching text introduced by an earlier
// replacement; that ordering is part of the contract.
type JargonNormalizer struct {
	rules []jargonRule
}

type jargonRule struct {
	re *regexp.Regexp
	to string
}

// NewJargonNormalizer compiles the jargon map into substitution rules.
func NewJargonNormalizer(jargon *JargonMap) *JargonNormalizer {
	n := &JargonNormalizer{}
	if jargon == nil {
		return n
	}
	for _, e := range jargon.Entries {
		if e.From == "" {
			continue
		}
		n.rules = append(n.rules, jargonRule{
			re: regexp.MustCompile("(?i)" + regexp.QuoteMeta(e.From)),
			to: e.To,
		})
	}
	return n
}

// Normalize applies every substitution in order and returns the rewritten text.
func (n *JargonNormalizer) Normalize(text string) string {
	for _, r := range n.rules {
		text = r.re.ReplaceAllLiteralString(text, r.to)
	}
	return text
}
