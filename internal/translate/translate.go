// Package translate drives a Translator over whole texts, chunking them when asked to.
package translate

import (
	"context"
	"fmt"
	"strings"

	"llm-translate/internal/chunker"
	"llm-translate/internal/llmservice"
	"llm-translate/internal/models"

	"github.com/rs/zerolog/log"
)

const chunkSeparator = "\n\n"

// Text translates text into language. With chunkMode off it makes a single
// call. With chunkMode on it translates each chunk in order, one at a time,
// and joins the results with blank lines. The first failing call aborts the
// whole translation.
func Text(ctx context.Context, chunkMode bool, tr llmservice.Translator, text, language string) (string, error) {
	if !chunkMode {
		log.Debug().Msg("chunking disabled")
		return tr.Translate(ctx, params(language, text))
	}

	chunks := chunker.SplitText(text, chunker.DefaultChunkSize)
	log.Debug().Int("chunks", len(chunks)).Msg("chunking enabled")

	var out strings.Builder
	for i, chunk := range chunks {
		translated, err := tr.Translate(ctx, params(language, chunk))
		if err != nil {
			return "", fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
		out.WriteString(translated)
		out.WriteString(chunkSeparator)
	}

	return strings.TrimSpace(out.String()), nil
}

func params(language, text string) map[string]any {
	return map[string]any{
		models.ParamLanguage: language,
		models.ParamText:     text,
	}
}
