package utils

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/amatch/skillmatch/internal/models"
	"github.com/ledongthuc/pdf"
)

// ExtractPDFText pulls the plain text out of a PDF resume.
func ExtractPDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	b, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting PDF text: %w", err)
	}

	buf := &bytes.Buffer{}
	if _, err := buf.ReadFrom(b); err != nil {
		return "", fmt.Errorf("reading PDF text: %w", err)
	}
	return buf.String(), nil
}

// ScanSkills matches resume text against the taxonomy and suggests a
// proficiency per mentioned skill: one mention reads as beginner, repeated
// mentions up to intermediate. Suggestions only, never persisted directly.
func ScanSkills(text string, taxonomy []models.Skill) map[string]int {
	tokens := tokenize(text)

	suggested := make(map[string]int)
	for _, skill := range taxonomy {
		mentions := countMentions(tokens, skill)
		if mentions == 0 {
			continue
		}
		level := mentions
		if level > models.LevelIntermediate {
			level = models.LevelIntermediate
		}
		suggested[skill.ID] = level
	}
	return suggested
}

// tokenize lowercases and splits text into words, keeping tech characters
// like + # . so "c++" and "node.js" survive.
func tokenize(text string) map[string]int {
	counts := make(map[string]int)
	var word strings.Builder
	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if len(w) >= 2 {
			counts[w]++
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
	return counts
}

func countMentions(tokens map[string]int, skill models.Skill) int {
	// Skill ids are snake_case; names may be multi-word. Match any single
	// word form of either.
	candidates := map[string]bool{
		strings.ToLower(skill.ID):                              true,
		strings.ToLower(skill.Name):                            true,
		strings.ReplaceAll(strings.ToLower(skill.ID), "_", ""): true,
	}

	mentions := 0
	for candidate := range candidates {
		mentions += tokens[candidate]
	}

	// Multi-word names ("Machine Learning") never appear as one token; count
	// occurrences of all words appearing, using the rarest word.
	if strings.Contains(skill.Name, " ") {
		words := strings.Fields(strings.ToLower(skill.Name))
		min := -1
		for _, w := range words {
			if min == -1 || tokens[w] < min {
				min = tokens[w]
			}
		}
		if min > 0 {
			mentions += min
		}
	}
	return mentions
}
