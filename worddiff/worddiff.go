// Package worddiff computes word-level diffs for modified lines.
package worddiff

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/noahmasoud/autodoc"
)

// Compile-time interface verification.
var _ autodoc.WordDiffer = (*Differ)(nil)

// similarityThreshold is the minimum token-overlap ratio for word-level
// diffing. Below it the two lines are treated as complete replacements,
// which reads better than scattering tiny matched fragments.
const similarityThreshold = 0.4

// Differ tokenizes lines and computes word-level diffs. Documentation pages
// mix prose and code, so tokens are word runs, number runs, whitespace runs
// and single punctuation characters.
type Differ struct{}

// NewDiffer creates a new Differ instance.
func NewDiffer() *Differ {
	return &Differ{}
}

// Diff returns segments for both the old and new strings,
// marking which portions changed between them.
func (d *Differ) Diff(old, new string) (oldSegs, newSegs []autodoc.Segment) {
	if old == "" && new == "" {
		return nil, nil
	}
	if old == "" {
		return nil, []autodoc.Segment{{Text: new, Changed: true}}
	}
	if new == "" {
		return []autodoc.Segment{{Text: old, Changed: true}}, nil
	}
	if old == new {
		seg := autodoc.Segment{Text: old, Changed: false}
		return []autodoc.Segment{seg}, []autodoc.Segment{seg}
	}

	oldTokens := tokenize(old)
	newTokens := tokenize(new)

	if !similarEnough(oldTokens, newTokens) {
		return []autodoc.Segment{{Text: old, Changed: true}},
			[]autodoc.Segment{{Text: new, Changed: true}}
	}

	return lcsSegments(oldTokens, newTokens)
}

// tokenize splits a line into word runs, digit runs, whitespace runs and
// single other characters.
func tokenize(s string) []string {
	if s == "" {
		return nil
	}

	tokens := make([]string, 0, len(s)/4+1)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		start := i

		switch {
		case isWordRune(r):
			for i < len(s) {
				r, size = utf8.DecodeRuneInString(s[i:])
				if !isWordRune(r) {
					break
				}
				i += size
			}
		case unicode.IsSpace(r):
			for i < len(s) {
				r, size = utf8.DecodeRuneInString(s[i:])
				if !unicode.IsSpace(r) {
					break
				}
				i += size
			}
		default:
			i += size
		}

		tokens = append(tokens, s[start:i])
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// similarEnough estimates token overlap as 2*common/(len(old)+len(new)) and
// compares it against similarityThreshold.
func similarEnough(oldTokens, newTokens []string) bool {
	if len(oldTokens) == 0 || len(newTokens) == 0 {
		return false
	}

	counts := make(map[string]int, len(oldTokens))
	for _, tok := range oldTokens {
		counts[tok]++
	}

	common := 0
	for _, tok := range newTokens {
		if counts[tok] > 0 {
			counts[tok]--
			common++
		}
	}

	total := len(oldTokens) + len(newTokens)
	return float64(2*common)/float64(total) >= similarityThreshold
}

// lcsSegments aligns the token sequences with an O(n*m) longest common
// subsequence and emits merged segments: consecutive tokens with the same
// changed/unchanged state collapse into one segment.
func lcsSegments(oldTokens, newTokens []string) (oldSegs, newSegs []autodoc.Segment) {
	m, n := len(oldTokens), len(newTokens)

	// Flat DP table: table[i*(n+1)+j] holds the LCS length of
	// oldTokens[:i] and newTokens[:j].
	stride := n + 1
	table := make([]int, (m+1)*stride)
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			switch {
			case oldTokens[i-1] == newTokens[j-1]:
				table[i*stride+j] = table[(i-1)*stride+j-1] + 1
			case table[(i-1)*stride+j] >= table[i*stride+j-1]:
				table[i*stride+j] = table[(i-1)*stride+j]
			default:
				table[i*stride+j] = table[i*stride+j-1]
			}
		}
	}

	if table[m*stride+n] == 0 {
		return []autodoc.Segment{{Text: strings.Join(oldTokens, ""), Changed: true}},
			[]autodoc.Segment{{Text: strings.Join(newTokens, ""), Changed: true}}
	}

	// Walk the table backwards, marking each token changed or unchanged.
	oldChanged := make([]bool, m)
	newChanged := make([]bool, n)
	for i, j := m, n; i > 0 || j > 0; {
		switch {
		case i > 0 && j > 0 && oldTokens[i-1] == newTokens[j-1]:
			i--
			j--
		case j > 0 && (i == 0 || table[i*stride+j-1] >= table[(i-1)*stride+j]):
			newChanged[j-1] = true
			j--
		default:
			oldChanged[i-1] = true
			i--
		}
	}

	return mergeSegments(oldTokens, oldChanged), mergeSegments(newTokens, newChanged)
}

// mergeSegments collapses consecutive tokens sharing a changed state.
func mergeSegments(tokens []string, changed []bool) []autodoc.Segment {
	var segs []autodoc.Segment
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 && changed[i] != changed[i-1] {
			segs = append(segs, autodoc.Segment{Text: b.String(), Changed: changed[i-1]})
			b.Reset()
		}
		b.WriteString(tok)
	}
	if b.Len() > 0 {
		segs = append(segs, autodoc.Segment{Text: b.String(), Changed: changed[len(changed)-1]})
	}
	return segs
}
