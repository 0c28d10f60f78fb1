// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package context

import (
	"context"
	"testing"

	"github.com/inlinekit/inlinekit/lib/llm"
)

func TestMessageTokenBudget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		budget Budget
		want   int
	}{
		{
			name:   "explicit overhead",
			budget: Budget{ContextWindow: 200_000, MaxOutputTokens: 8_192, OverheadTokens: 3_000},
			want:   188_808,
		},
		{
			name:   "zero overhead uses default",
			budget: Budget{ContextWindow: 200_000, MaxOutputTokens: 8_192},
			want:   200_000 - 8_192 - defaultOverheadTokens,
		},
		{
			name:   "window smaller than reservations",
			budget: Budget{ContextWindow: 8_192, MaxOutputTokens: 8_192},
			want:   0,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := test.budget.MessageTokenBudget(); got != test.want {
				t.Errorf("MessageTokenBudget() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestUnboundedReturnsEverything(t *testing.T) {
	t.Parallel()

	manager := &Unbounded{}
	manager.Append(llm.UserMessage("first"))
	manager.Append(llm.AssistantMessage("second"))
	manager.Append(llm.UserMessage("third"))
	manager.RecordUsage(llm.Usage{InputTokens: 999})

	messages, err := manager.Messages(context.Background())
	if err != nil {
		t.Fatalf("Messages: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("got %d messages, want 3", len(messages))
	}
	if got := messages[2].Content[0].Text; got != "third" {
		t.Errorf("last message = %q, want %q", got, "third")
	}
}
