package chunker

import (
	"reflect"
	"strings"
	"testing"
)

func TestWordCount(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "empty string", text: "", expected: 0},
		{name: "whitespace only", text: " \n\t ", expected: 0},
		{name: "single word", text: "Hello", expected: 1},
		{name: "mixed whitespace", text: "Ciao  mondo\n\ncome\tstai", expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordCount(tt.text); got != tt.expected {
				t.Errorf("WordCount(%q) = %d, want %d", tt.text, got, tt.expected)
			}
		})
	}
}

func TestSplitText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		max      int
		expected []string
	}{
		{
			name:     "empty input",
			text:     "",
			max:      10,
			expected: nil,
		},
		{
			name:     "whitespace only",
			text:     "  \n\n \t\n ",
			max:      10,
			expected: nil,
		},
		{
			name:     "single sentence per chunk",
			text:     "A. B. C.",
			max:      1,
			expected: []string{"A.", "B.", "C."},
		},
		{
			name:     "paragraph within limit is normalized",
			text:     "  Hello   there,\n  world.  ",
			max:      10,
			expected: []string{"Hello there, world."},
		},
		{
			name:     "paragraphs split on blank lines",
			text:     "First paragraph.\n\nSecond one.\n   \nThird.",
			max:      10,
			expected: []string{"First paragraph.", "Second one.", "Third."},
		},
		{
			name:     "sentences packed greedily",
			text:     "One two. Three four. Five six! Seven?",
			max:      4,
			expected: []string{"One two. Three four.", "Five six! Seven?"},
		},
		{
			name:     "oversized sentence kept whole",
			text:     "Short. This sentence has far too many words for the limit. End.",
			max:      3,
			expected: []string{"Short.", "This sentence has far too many words for the limit.", "End."},
		},
		{
			name:     "punctuation without trailing space does not split",
			text:     "Version 1.5 is out. Get it now",
			max:      4,
			expected: []string{"Version 1.5 is out.", "Get it now"},
		},
		{
			name:     "zero max uses default",
			text:     "a b c",
			max:      0,
			expected: []string{"a b c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitText(tt.text, tt.max)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitText(%q, %d) = %q, want %q", tt.text, tt.max, got, tt.expected)
			}
		})
	}
}

func TestSplitText_PreservesWords(t *testing.T) {
	paragraph := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 40)
	text := paragraph + "\n\n" + "Is this the end? Yes! It is."

	chunks := SplitText(text, 25)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	var rejoined []string
	for _, chunk := range chunks {
		rejoined = append(rejoined, strings.Fields(chunk)...)
	}
	if !reflect.DeepEqual(rejoined, strings.Fields(text)) {
		t.Error("chunks do not reconstruct the original words in order")
	}
}

func TestSplitText_RespectsLimit(t *testing.T) {
	text := strings.Repeat("Lorem ipsum dolor sit amet. Consectetur adipiscing elit! ", 30)

	for _, limit := range []int{2, 5, 13, 50} {
		for _, chunk := range SplitText(text, limit) {
			words := WordCount(chunk)
			if words > limit && len(splitSentences(chunk)) > 1 {
				t.Errorf("limit=%d: chunk with %d words spans several sentences: %q", limit, words, chunk)
			}
		}
	}
}

func TestSplitText_Idempotent(t *testing.T) {
	text := strings.Repeat("Alpha beta gamma. Delta epsilon! Zeta eta theta iota? ", 12)
	first := SplitText(text, 7)

	second := SplitText(strings.Join(first, "\n\n"), 7)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-splitting changed chunk boundaries:\nfirst:  %q\nsecond: %q", first, second)
	}
}
