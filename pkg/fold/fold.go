// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package fold normalizes text for catalog search.
//
// Folding strips accents, applies Unicode case folding and reduces every run
// of punctuation or whitespace to one space, so "Les Misérables" and
// "les  MISERABLES!" compare equal.
package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// String returns the search form of s: words of lowercase, unaccented
// letters and digits separated by single spaces.
func String(s string) string {
	// Casers carry state, so the chain is built per call.
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), cases.Fold(), norm.NFC)

	folded, _, err := transform.String(chain, s)
	if err != nil {
		folded = strings.ToLower(s)
	}

	words := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(words, " ")
}

// Contains reports whether the folded form of text contains the folded form
// of query. An empty query matches everything.
func Contains(text, query string) bool {
	return strings.Contains(String(text), String(query))
}
