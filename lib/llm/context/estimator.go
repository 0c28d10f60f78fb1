// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package context

import "github.com/inlinekit/inlinekit/lib/llm"

// initialCharsPerToken seeds the estimator before any provider
// feedback arrives. BPE tokenizers land around 3.5–4.5 characters per
// token on mixed English and code; 4.0 errs toward overcounting
// tokens, so an uncalibrated estimator truncates early instead of
// letting a request overflow the provider's window.
const initialCharsPerToken = 4.0

// smoothing is the weight given to each new ratio observation when
// blending it into the running average.
const smoothing = 0.3

// messageFramingChars approximates the serialization cost of one
// message beyond its content: the role marker and JSON structure.
const messageFramingChars = 20

// CharEstimator estimates token counts from character counts. The
// chars-per-token ratio starts at a fixed seed and is recalibrated
// from every provider response via an exponential moving average, so
// over a session the estimate tracks how the provider's tokenizer
// actually handles this session's mix of prose, code, and tool JSON.
//
// Provider-reported input tokens include the system prompt and tool
// definitions, which the character count does not see. The ratio
// absorbs that overhead rather than modelling it: estimates for short
// histories come out high, which is the safe direction, and the error
// shrinks as message content grows to dominate the fixed overhead.
type CharEstimator struct {
	ratio        float64
	observations int
}

// NewCharEstimator returns an estimator seeded at 4.0 characters per
// token, uncalibrated.
func NewCharEstimator() *CharEstimator {
	return &CharEstimator{ratio: initialCharsPerToken}
}

// EstimateTokens estimates the token count of messages at the current
// ratio. The result always rounds up.
func (estimator *CharEstimator) EstimateTokens(messages []llm.Message) int {
	return int(float64(charCount(messages))/estimator.ratio) + 1
}

// RecordUsage recalibrates the ratio from a provider response.
// messages must be the exact slice that was sent; actualInputTokens is
// the provider's reported input token count.
//
// The first observation replaces the seed outright — one real data
// point beats any guess. Later observations blend in at the smoothing
// weight, so a single unusual turn (a huge tool result, say) cannot
// swing the ratio far.
func (estimator *CharEstimator) RecordUsage(messages []llm.Message, actualInputTokens int64) {
	if actualInputTokens <= 0 {
		return
	}
	characters := charCount(messages)
	if characters == 0 {
		return
	}
	observed := float64(characters) / float64(actualInputTokens)

	estimator.observations++
	if estimator.observations == 1 {
		estimator.ratio = observed
		return
	}
	estimator.ratio = smoothing*observed + (1-smoothing)*estimator.ratio
}

// charCount totals the content characters of messages, plus the fixed
// framing cost per message.
func charCount(messages []llm.Message) int {
	total := 0
	for _, message := range messages {
		total += messageFramingChars
		for _, block := range message.Content {
			switch block.Type {
			case llm.ContentText:
				total += len(block.Text)
			case llm.ContentToolUse:
				if block.ToolUse != nil {
					total += len(block.ToolUse.Name) + len(block.ToolUse.Input)
				}
			case llm.ContentToolResult:
				if block.ToolResult != nil {
					total += len(block.ToolResult.ToolUseID) + len(block.ToolResult.Content)
				}
			}
		}
	}
	return total
}
