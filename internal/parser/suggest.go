package parser

import (
	"sort"
	"strings"

	"github.com/vynijales/ufersa-compilador-tonto/internal/config"
)

// vocabulary is the fixed set of words the suggester fuzzy-matches
// against: every keyword, class/relation stereotype, native type, and
// meta-attribute, per spec.md §4.2.1.
var vocabulary = buildVocabulary()

func buildVocabulary() []string {
	var words []string
	for w := range config.Keywords {
		words = append(words, w)
	}
	for w := range config.ClassStereotypes {
		words = append(words, w)
	}
	for w := range config.RelationStereotypes {
		words = append(words, w)
	}
	for w := range config.NativeTypes {
		words = append(words, w)
	}
	for w := range config.MetaAttributes {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

const similarityThreshold = 0.6

// Suggest returns up to three vocabulary words most similar to word,
// deduplicated, in descending similarity order (ties broken by the
// vocabulary's lexical order). An empty or already-known word yields no
// suggestions.
func Suggest(word string) []string {
	if word == "" {
		return nil
	}
	for _, v := range vocabulary {
		if v == word {
			return nil
		}
	}
	lower := strings.ToLower(word)

	type candidate struct {
		word  string
		score float64
	}
	var candidates []candidate
	seen := make(map[string]bool)

	for _, v := range vocabulary {
		if seen[v] {
			continue
		}
		score := similarity(lower, strings.ToLower(v))
		if score >= similarityThreshold {
			candidates = append(candidates, candidate{v, score})
			seen[v] = true
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.word
	}
	return out
}

// similarity normalizes Levenshtein edit distance into a 0..1 score,
// where 1 means identical.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}
	dist := levenshtein(a, b)
	return 1 - float64(dist)/float64(maxLen)
}

// levenshtein computes the classic edit distance between a and b using
// a two-row dynamic-programming table.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
