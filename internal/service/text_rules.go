package service

import (
	"strings"
	"unicode"
)

/*
========================
 Normalizacion de texto
========================
*/

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
)

// normalize baja a minusculas y elimina diacriticos (acentos).
// Ej: "Práctico" -> "practico"
func normalize(s string) string {
	s = accentReplacer.Replace(strings.ToLower(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// textOverlaps compara dos frases ya libres de contexto: hay solapamiento si
// una contiene a la otra, ignorando mayusculas y acentos.
func textOverlaps(a, b string) bool {
	na, nb := normalize(a), normalize(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

func containsNormalized(list []string, target string) bool {
	nt := normalize(target)
	for _, x := range list {
		if normalize(x) == nt {
			return true
		}
	}
	return false
}

func anyContainsKeyword(list []string, keyword string) bool {
	for _, x := range list {
		if strings.Contains(normalize(x), keyword) {
			return true
		}
	}
	return false
}
