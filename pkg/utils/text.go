package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FormatTitle troca "_" por espaço e deixa cada palavra com inicial maiúscula e o resto minúsculo
func FormatTitle(text string) string {
	if text == "" {
		return ""
	}

	words := strings.Split(text, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
	}

	return strings.Join(words, " ")
}

// Truncate corta o texto nos primeiros n caracteres (runas)
func Truncate(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n])
}
