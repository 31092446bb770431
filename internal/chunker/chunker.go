// Package chunker splits text into paragraph and sentence bounded chunks by word count.
package chunker

import (
	"regexp"
	"strings"
)

// DefaultChunkSize is the default maximum words per chunk.
const DefaultChunkSize = 100

var (
	paragraphRe = regexp.MustCompile(`\n\s*\n`)
	sentenceRe  = regexp.MustCompile(`[.!?]\s+`)
)

// WordCount returns the number of whitespace separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// SplitText splits text into chunks of at most maxChunkSize words.
// Paragraphs that fit are kept whole, longer ones are packed sentence by sentence.
// A sentence is never split, so one longer than maxChunkSize becomes an oversized chunk.
func SplitText(text string, maxChunkSize int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if maxChunkSize <= 0 {
		maxChunkSize = DefaultChunkSize
	}

	var chunks []string
	for _, paragraph := range paragraphRe.Split(text, -1) {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			continue
		}
		if len(words) <= maxChunkSize {
			chunks = append(chunks, strings.Join(words, " "))
			continue
		}
		chunks = append(chunks, packSentences(splitSentences(strings.Join(words, " ")), maxChunkSize)...)
	}
	return chunks
}

// splitSentences breaks a whitespace-normalized paragraph after each
// '.', '!' or '?' that is followed by whitespace.
func splitSentences(paragraph string) []string {
	var sentences []string
	start := 0
	for _, loc := range sentenceRe.FindAllStringIndex(paragraph, -1) {
		sentences = append(sentences, paragraph[start:loc[0]+1])
		start = loc[1]
	}
	if start < len(paragraph) {
		sentences = append(sentences, paragraph[start:])
	}
	return sentences
}

func packSentences(sentences []string, maxChunkSize int) []string {
	var (
		chunks       []string
		current      []string
		currentWords int
	)

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
		}
		current = nil
		currentWords = 0
	}

	for _, sentence := range sentences {
		sentenceWords := WordCount(sentence)
		if currentWords+sentenceWords > maxChunkSize {
			flush()
		}
		current = append(current, sentence)
		currentWords += sentenceWords
	}
	flush()

	return chunks
}
