package solver

import (
	"context"
	"encoding/json"
)

// Transcript roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Tool names the interactive solver exposes to the reasoner.
const (
	ToolSense    = "sense"
	ToolGetState = "get_state"
	ToolMove     = "move"
)

// Message is one transcript entry. Assistant messages may carry tool
// calls; tool messages carry the result for one call, keyed by CallID.
type Message struct {
	Role      string     `json:"role"`
	Content   string     `json:"content,omitempty"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	CallID    string     `json:"call_id,omitempty"`
}

// ToolCall is one named operation invocation proposed by the reasoner.
// Arguments are raw JSON; malformed arguments are handled by the solver,
// never trusted.
type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolDefinition describes one operation in the fixed per-tick schema.
type ToolDefinition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

// Request is one round sent to the reasoner: the fixed instruction text,
// the running transcript, and the fixed three-operation schema.
type Request struct {
	Instructions string
	Transcript   []Message
	Tools        []ToolDefinition
}

// Response is the reasoner's answer for one round.
type Response struct {
	Message Message
}

// Reasoner is the external reasoning service, seen from the solver. It is
// fully untrusted: every claim it makes is re-checked against live state
// before anything is applied. Implementations must honor ctx deadlines.
type Reasoner interface {
	Decide(ctx context.Context, req *Request) (*Response, error)
}

// moveArgs is the expected argument shape of the move tool.
type moveArgs struct {
	Direction string `json:"direction"`
	Steps     int    `json:"steps"`
}

// Tools returns the fixed schema offered to the reasoner every round.
func Tools() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        ToolSense,
			Description: "Read the distance sensor: how many open cells lie in each direction before a wall.",
			Parameters:  json.RawMessage(`{"type":"object","properties":{}}`),
		},
		{
			Name:        ToolGetState,
			Description: "Get the current state: position, goal flag, visited count, recent moves and a map window around the robot.",
			Parameters:  json.RawMessage(`{"type":"object","properties":{}}`),
		},
		{
			Name:        ToolMove,
			Description: "Move the robot a number of cells in one direction. Steps must not exceed the sensed distance for that direction.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"direction": {"type": "string", "enum": ["up", "down", "left", "right"]},
					"steps": {"type": "integer", "minimum": 0}
				},
				"required": ["direction", "steps"]
			}`),
		},
	}
}
