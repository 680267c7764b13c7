package openai

import (
	"encoding/json"
	"testing"

	goopenai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beka-birhanu/mazepilot/solver"
)

func TestNew(t *testing.T) {
	t.Run("requires an API key", func(t *testing.T) {
		_, err := New(&Config{})
		assert.ErrorIs(t, err, ErrMissingAPIKey)

		_, err = New(nil)
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("defaults the model", func(t *testing.T) {
		c, err := New(&Config{APIKey: "test-key"})
		require.NoError(t, err)
		assert.Equal(t, goopenai.GPT4oMini, c.model)
	})
}

func TestBuildRequest(t *testing.T) {
	req := &solver.Request{
		Instructions: "reach the goal",
		Transcript: []solver.Message{
			{Role: solver.RoleUser, Content: `{"position":{"x":0,"y":0}}`},
			{
				Role: solver.RoleAssistant,
				ToolCalls: []solver.ToolCall{
					{ID: "c1", Name: solver.ToolMove, Arguments: json.RawMessage(`{"direction":"down","steps":2}`)},
				},
			},
			{Role: solver.RoleTool, CallID: "c1", Content: `{"moved":true}`},
		},
		Tools: solver.Tools(),
	}

	out := buildRequest("gpt-4o-mini", req)

	assert.Equal(t, "gpt-4o-mini", out.Model)
	require.Len(t, out.Messages, 4)

	assert.Equal(t, goopenai.ChatMessageRoleSystem, out.Messages[0].Role)
	assert.Equal(t, "reach the goal", out.Messages[0].Content)

	assert.Equal(t, goopenai.ChatMessageRoleUser, out.Messages[1].Role)

	assistant := out.Messages[2]
	assert.Equal(t, goopenai.ChatMessageRoleAssistant, assistant.Role)
	require.Len(t, assistant.ToolCalls, 1)
	assert.Equal(t, "c1", assistant.ToolCalls[0].ID)
	assert.Equal(t, solver.ToolMove, assistant.ToolCalls[0].Function.Name)
	assert.JSONEq(t, `{"direction":"down","steps":2}`, assistant.ToolCalls[0].Function.Arguments)

	toolMsg := out.Messages[3]
	assert.Equal(t, goopenai.ChatMessageRoleTool, toolMsg.Role)
	assert.Equal(t, "c1", toolMsg.ToolCallID)

	require.Len(t, out.Tools, 3)
	names := []string{}
	for _, tool := range out.Tools {
		names = append(names, tool.Function.Name)
	}
	assert.ElementsMatch(t, []string{solver.ToolSense, solver.ToolGetState, solver.ToolMove}, names)
}

func TestParseMessage(t *testing.T) {
	t.Run("maps tool calls", func(t *testing.T) {
		msg := parseMessage(goopenai.ChatCompletionMessage{
			Role:    goopenai.ChatMessageRoleAssistant,
			Content: "moving now",
			ToolCalls: []goopenai.ToolCall{
				{
					ID:   "c9",
					Type: goopenai.ToolTypeFunction,
					Function: goopenai.FunctionCall{
						Name:      solver.ToolMove,
						Arguments: `{"direction":"right","steps":1}`,
					},
				},
			},
		})

		assert.Equal(t, solver.RoleAssistant, msg.Role)
		assert.Equal(t, "moving now", msg.Content)
		require.Len(t, msg.ToolCalls, 1)
		assert.Equal(t, "c9", msg.ToolCalls[0].ID)
		assert.Equal(t, solver.ToolMove, msg.ToolCalls[0].Name)
		assert.JSONEq(t, `{"direction":"right","steps":1}`, string(msg.ToolCalls[0].Arguments))
	})

	t.Run("plain answer has no tool calls", func(t *testing.T) {
		msg := parseMessage(goopenai.ChatCompletionMessage{
			Role:    goopenai.ChatMessageRoleAssistant,
			Content: "I think the maze is solved",
		})
		assert.Empty(t, msg.ToolCalls)
	})
}
