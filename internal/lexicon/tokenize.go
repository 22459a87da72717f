package lexicon

import (
	"strings"
	"unicode"
)

// NormalizeTerm lowercases a term, strips punctuation except the characters
// that carry meaning in technology names (+ # .), and collapses whitespace.
// Applied once at profile-construction time; the scorer compares the results.
func NormalizeTerm(term string) string {
	var sb strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(term) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.':
			sb.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				sb.WriteRune(' ')
				lastSpace = true
			}
		}
	}
	result := strings.TrimSpace(sb.String())
	// Trailing dots are sentence punctuation, not part of names like "Node.js".
	words := strings.Fields(result)
	for i, w := range words {
		words[i] = strings.TrimRight(w, ".")
	}
	return strings.Join(words, " ")
}

// Tokenize splits text into normalized lowercase tokens. Tech suffixes like
// "c++", "c#" and "node.js" survive because + # . are treated as word
// characters.
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		if word.Len() == 0 {
			return
		}
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if w != "" {
			tokens = append(tokens, w)
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// TokenSet builds a set of unique tokens for Jaccard comparison. All tokens
// are kept, including short and common ones, so overlap ratios for short
// phrases stay meaningful.
func TokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range Tokenize(text) {
		set[tok] = true
	}
	return set
}

// Phrase is a normalized multi-word term with its occurrence statistics.
type Phrase struct {
	Text  string
	Count int
	// First is the token index of the phrase's first occurrence, used as the
	// frequency tie-break.
	First int
}

// ExtractPhrases collects the multi-word candidate phrases (bigrams and
// trigrams whose edge tokens are not stop words and whose tokens are at least
// three characters) across the whole text, with frequency and first-occurrence
// position. This is the shared n-gram extraction used for industry keywords
// and candidate text terms.
func (l *Lexicon) ExtractPhrases(text string) []Phrase {
	tokens := Tokenize(text)
	counts := make(map[string]*Phrase)

	record := func(phrase string, pos int) {
		if p, ok := counts[phrase]; ok {
			p.Count++
			return
		}
		counts[phrase] = &Phrase{Text: phrase, Count: 1, First: pos}
	}

	for n := 2; n <= 3; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			gram := tokens[i : i+n]
			if !l.phraseShaped(gram) {
				continue
			}
			record(strings.Join(gram, " "), i)
		}
	}

	phrases := make([]Phrase, 0, len(counts))
	for _, p := range counts {
		phrases = append(phrases, *p)
	}
	return phrases
}

// phraseShaped approximates noun-phrase detection: no stop word at either
// edge, no numeric-only tokens, every token at least three characters.
func (l *Lexicon) phraseShaped(gram []string) bool {
	for i, tok := range gram {
		if len(tok) < 3 {
			return false
		}
		if isNumeric(tok) {
			return false
		}
		edge := i == 0 || i == len(gram)-1
		if edge && l.IsStopWord(tok) {
			return false
		}
	}
	return true
}

// ExtractTextTerms produces the term set for keyword-coverage matching: all
// unique non-stop-word tokens of three or more characters plus every
// phrase-shaped bigram and trigram. Returned in first-occurrence order.
func (l *Lexicon) ExtractTextTerms(text string) []string {
	seen := make(map[string]bool)
	var terms []string
	add := func(term string) {
		if !seen[term] {
			seen[term] = true
			terms = append(terms, term)
		}
	}

	tokens := Tokenize(text)
	for _, tok := range tokens {
		if len(tok) >= 3 && !l.IsStopWord(tok) && !isNumeric(tok) {
			add(tok)
		}
	}
	for n := 2; n <= 3; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			gram := tokens[i : i+n]
			if l.phraseShaped(gram) {
				add(strings.Join(gram, " "))
			}
		}
	}
	return terms
}

func isNumeric(token string) bool {
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(token) > 0
}
