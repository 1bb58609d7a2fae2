package domain

import "strings"

// CanSpellWord reports whether word can be assembled exactly from the given
// symbol tokens. Comparison is case-insensitive. Each token may be consumed
// at most once; duplicate symbols are separate instances, since two cards
// can share a symbol. A multi-letter token is consumed whole or not at all.
// The empty word is trivially spellable.
func CanSpellWord(symbols []string, word string) bool {
	tokens := make([]string, len(symbols))
	for i, sym := range symbols {
		tokens[i] = strings.ToUpper(sym)
	}
	return spellFrom(tokens, strings.ToUpper(word))
}

// spellFrom tries every remaining token as a prefix of the remaining word
// and backtracks. Exponential in the worst case, but drafts hold at most
// ~20 symbols and words are short.
func spellFrom(tokens []string, word string) bool {
	if word == "" {
		return true
	}
	for i, tok := range tokens {
		if tok == "" || !strings.HasPrefix(word, tok) {
			continue
		}
		rest := make([]string, 0, len(tokens)-1)
		rest = append(rest, tokens[:i]...)
		rest = append(rest, tokens[i+1:]...)
		if spellFrom(rest, word[len(tok):]) {
			return true
		}
	}
	return false
}

// SymbolsOf resolves a list of atomic numbers to their symbol tokens.
func SymbolsOf(cards []int) []string {
	symbols := make([]string, 0, len(cards))
	for _, n := range cards {
		if c, ok := CardByNumber(n); ok {
			symbols = append(symbols, c.Symbol)
		}
	}
	return symbols
}
