package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/crosscheck"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ crosscheck.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens locally using the Gemini tokenizer.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model.
// The tokenizer vocabulary is downloaded on first use of a model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, err
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens counts the number of tokens in the given text.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}, nil)
	if err != nil {
		return 0, err
	}

	return int(result.TotalTokens), nil
}

// maxTruncateRounds bounds how often TruncateToTokens re-counts.
const maxTruncateRounds = 4

// TruncateToTokens shortens text toward at most limit tokens. Each round
// keeps a prefix proportional to the overshoot, cut back to the last
// paragraph or line break when one exists. After maxTruncateRounds counts
// the last prefix is returned even if it is still over limit. A nil counter
// or a non-positive limit returns text unchanged.
func TruncateToTokens(ctx context.Context, counter crosscheck.TokenCounter, text string, limit int) (string, error) {
	if counter == nil || limit <= 0 {
		return text, nil
	}

	for round := 0; round < maxTruncateRounds; round++ {
		n, err := counter.CountTokens(ctx, text)
		if err != nil {
			return "", err
		}
		if n <= limit {
			return text, nil
		}

		runes := []rune(text)
		keep := len(runes) * limit / n
		// Leave headroom so the next count is likely under the limit.
		keep = keep * 9 / 10
		if keep <= 0 {
			return "", nil
		}
		text = cutAtBreak(string(runes[:keep]))
	}
	return text, nil
}

func cutAtBreak(s string) string {
	if i := strings.LastIndex(s, "\n\n"); i > len(s)/2 {
		return s[:i]
	}
	if i := strings.LastIndex(s, "\n"); i > len(s)/2 {
		return s[:i]
	}
	return s
}
