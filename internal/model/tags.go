package model

import "strings"

// Tags is an ordered set of tag tokens. Membership is exact: "vip" does not
// match "vip2".
type Tags []string

// ParseTags splits a comma-separated tag blob into a Tags set. Tokens are
// trimmed; empty and repeated tokens are dropped, first occurrence wins.
func ParseTags(blob string) Tags {
	return NewTags(strings.Split(blob, ",")...)
}

// NewTags builds a Tags set from tokens, keeping their order.
func NewTags(tokens ...string) Tags {
	tags := make(Tags, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		tags = append(tags, tok)
	}
	return tags
}

// Contains reports whether tag is one of the tokens.
func (t Tags) Contains(tag string) bool {
	for _, tok := range t {
		if tok == tag {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every one of want is present. An empty want
// is trivially satisfied.
func (t Tags) ContainsAll(want []string) bool {
	for _, tag := range want {
		if !t.Contains(tag) {
			return false
		}
	}
	return true
}

// String joins the tokens with commas.
func (t Tags) String() string {
	return strings.Join(t, ",")
}
