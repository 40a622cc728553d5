package classifier

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// tokenPattern matches words of two or more letters, digits, or underscores.
// Single-character tokens carry no signal here and are dropped.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// accentFolder decomposes text and strips combining marks, so "café" and
// "cafe" yield the same token.
var accentFolder = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalize lowercases text and folds accents.
func normalize(text string) string {
	folded, _, err := transform.String(accentFolder, text)
	if err != nil {
		folded = text
	}
	return strings.ToLower(folded)
}

// tokenize splits normalized text into word tokens.
func tokenize(text string) []string {
	return tokenPattern.FindAllString(normalize(text), -1)
}

// ngrams expands tokens into space-joined n-grams of sizes minN through
// maxN, in order of size then position.
func ngrams(tokens []string, minN, maxN int) []string {
	if len(tokens) == 0 || maxN < minN {
		return nil
	}
	var out []string
	for n := minN; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}
