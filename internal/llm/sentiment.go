package llm

import (
	"context"
	"fmt"
	"strings"
)

type Label string

const (
	Positive Label = "positive"
	Neutral  Label = "neutral"
	Negative Label = "negative"
)

func BuildSentimentPrompt(text string) string {
	return fmt.Sprintf(`Classify the sentiment of this news article description.

Description:
%s

Answer with exactly one word: positive, neutral or negative.
Do not explain your answer.`, text)
}

// ParseLabel reads the label from a model answer. An answer that is just a
// label, give or take case and punctuation, is taken as is. Otherwise the
// answer must name exactly one label; "not negative, it is neutral" names two
// and is rejected.
func ParseLabel(answer string) (Label, error) {
	fields := strings.FieldsFunc(strings.ToLower(answer), func(r rune) bool {
		return r < 'a' || r > 'z'
	})
	if len(fields) == 1 && isLabel(fields[0]) {
		return Label(fields[0]), nil
	}

	var found Label
	for _, f := range fields {
		if !isLabel(f) {
			continue
		}
		if found != "" && Label(f) != found {
			return "", fmt.Errorf("ambiguous sentiment in LLM response %q", answer)
		}
		found = Label(f)
	}
	if found == "" {
		return "", fmt.Errorf("no sentiment label in LLM response %q", answer)
	}
	return found, nil
}

func isLabel(word string) bool {
	switch Label(word) {
	case Positive, Neutral, Negative:
		return true
	}
	return false
}

// ClassifySentiment labels text. Blank text is neutral and never reaches the model.
func (c *Client) ClassifySentiment(ctx context.Context, text string) (Label, error) {
	if strings.TrimSpace(text) == "" {
		return Neutral, nil
	}

	answer, err := c.Generate(ctx, BuildSentimentPrompt(text))
	if err != nil {
		return "", err
	}
	return ParseLabel(answer)
}
