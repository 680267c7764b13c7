package solver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/beka-birhanu/mazepilot/maze"
	"github.com/beka-birhanu/mazepilot/robot"
)

const (
	defaultRoundBudget = 12
	defaultTimeout     = 30 * time.Second

	historyLen      = 8 // move records included in the state snapshot
	windowRadius    = 3 // map window is (2*windowRadius+1) cells square
	transcriptTicks = 8 // ticks of reasoner traffic retained across requests
)

const instructions = "You are driving a robot through a maze, one move per turn. " +
	"The robot senses how many open cells lie in each of the four directions. " +
	"Call sense or get_state to inspect the world, then call move with a direction " +
	"and a step count no larger than the sensed distance. Reach the cell marked E."

// MoveRecord is one past move, kept for the state snapshot.
type MoveRecord struct {
	Command robot.MoveCommand `json:"command"`
	To      maze.Position     `json:"to"`
	OK      bool              `json:"ok"`
}

// Interactive delegates move selection to an external reasoner while
// validating every proposal against live maze and robot state. Each tick
// runs a bounded loop of reasoner rounds and ends on the first applied
// move, on an exhausted budget, or on any reasoner failure. Reasoner
// failures are never fatal; the next tick simply tries again.
type Interactive struct {
	maze     *maze.Maze
	robot    *robot.Robot
	reasoner Reasoner
	rounds   int
	timeout  time.Duration
	logger   *log.Logger

	transcript  []Message
	history     []MoveRecord
	lastReading robot.Reading
	visited     map[maze.Position]struct{}
	callSeq     int
}

func newInteractive(c *Config) (*Interactive, error) {
	if c.Reasoner == nil {
		return nil, ErrMissingReasoner
	}
	rounds := c.RoundBudget
	if rounds <= 0 {
		rounds = defaultRoundBudget
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Interactive{
		maze:     c.Maze,
		robot:    c.Robot,
		reasoner: c.Reasoner,
		rounds:   rounds,
		timeout:  timeout,
		logger:   c.Logger,
		visited:  map[maze.Position]struct{}{c.Robot.Position(): {}},
	}, nil
}

// Name implements Solver.
func (s *Interactive) Name() string { return VariantInteractive }

// Next implements Solver. It never returns a non-nil error: every failure
// mode of the external service degrades to a tick without a move.
func (s *Interactive) Next(ctx context.Context) (StepResult, error) {
	pos := s.robot.Position()
	if s.robot.AtGoal() {
		return StepResult{Done: true, Message: "already at goal", NewPosition: pos}, nil
	}

	// Always start the tick from a fresh reading so move validation below
	// never trusts stale data.
	s.lastReading = s.robot.Sensor()

	s.pruneTranscript()
	s.say(Message{Role: RoleUser, Content: s.stateJSON()})

	for round := 0; round < s.rounds; round++ {
		resp, err := s.decide(ctx)
		if err != nil {
			s.logf("reasoner round %d failed: %v", round+1, err)
			return StepResult{
				Message:     fmt.Sprintf("no move: reasoner failed (%v)", err),
				NewPosition: s.robot.Position(),
			}, nil
		}

		s.say(resp.Message)

		if len(resp.Message.ToolCalls) == 0 {
			return StepResult{
				Message:     "no move: reasoner returned no operation",
				NewPosition: s.robot.Position(),
			}, nil
		}

		for _, call := range resp.Message.ToolCalls {
			if res, done := s.dispatch(call); done {
				return res, nil
			}
		}
	}

	return StepResult{
		Message:     fmt.Sprintf("no move: round budget of %d exhausted", s.rounds),
		NewPosition: s.robot.Position(),
	}, nil
}

func (s *Interactive) decide(ctx context.Context) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.reasoner.Decide(ctx, &Request{
		Instructions: instructions,
		Transcript:   s.transcript,
		Tools:        Tools(),
	})
}

// dispatch answers one tool call. It reports done=true only for a move
// that validated and applied, which ends the tick immediately.
func (s *Interactive) dispatch(call ToolCall) (StepResult, bool) {
	switch call.Name {
	case ToolSense:
		s.lastReading = s.robot.Sensor()
		s.answer(call, mustJSON(s.lastReading))
		return StepResult{}, false

	case ToolGetState:
		s.answer(call, s.stateJSON())
		return StepResult{}, false

	case ToolMove:
		return s.applyMove(call)

	default:
		s.answer(call, fmt.Sprintf(`{"error":"unknown operation %q"}`, call.Name))
		return StepResult{}, false
	}
}

// applyMove re-validates a proposed move against live state and applies
// it through the robot like any other mover. Rejections go back into the
// transcript so the reasoner can correct itself within the tick budget.
func (s *Interactive) applyMove(call ToolCall) (StepResult, bool) {
	var args moveArgs
	if err := json.Unmarshal(call.Arguments, &args); err != nil {
		s.answer(call, fmt.Sprintf(`{"error":"invalid move arguments: %v"}`, err))
		return StepResult{}, false
	}

	dir, err := robot.ParseDirection(args.Direction)
	if err != nil {
		s.answer(call, fmt.Sprintf(`{"error":%q}`, err.Error()))
		return StepResult{}, false
	}
	if args.Steps < 0 {
		s.answer(call, fmt.Sprintf(`{"error":"steps must not be negative, got %d"}`, args.Steps))
		return StepResult{}, false
	}
	if limit := s.lastReading.Distance(dir); args.Steps > limit {
		s.answer(call, fmt.Sprintf(`{"error":"cannot move %d cells %s, sensor reads %d"}`, args.Steps, dir, limit))
		return StepResult{}, false
	}

	cmd := robot.MoveCommand{Direction: dir, Steps: args.Steps}
	traversed := s.robot.Path(cmd)
	newPos, err := s.robot.Move(cmd)
	if err != nil {
		s.answer(call, fmt.Sprintf(`{"error":"move failed: %v"}`, err))
		s.record(MoveRecord{Command: cmd, To: newPos, OK: false})
		return StepResult{}, false
	}

	done := s.robot.AtGoal()
	s.answer(call, mustJSON(map[string]any{
		"moved":        true,
		"position":     newPos,
		"goal_reached": done,
	}))
	s.record(MoveRecord{Command: cmd, To: newPos, OK: true})

	return StepResult{
		DidMove:      true,
		Done:         done,
		Message:      fmt.Sprintf("move %s -> (%d,%d)", cmd, newPos.X, newPos.Y),
		VisitedAdded: s.markVisited(traversed),
		NewPosition:  newPos,
	}, true
}

func (s *Interactive) markVisited(cells []maze.Position) []maze.Position {
	var added []maze.Position
	for _, c := range cells {
		if _, seen := s.visited[c]; seen {
			continue
		}
		s.visited[c] = struct{}{}
		added = append(added, c)
	}
	return added
}

func (s *Interactive) record(r MoveRecord) {
	s.history = append(s.history, r)
	if len(s.history) > historyLen {
		s.history = s.history[len(s.history)-historyLen:]
	}
}

func (s *Interactive) say(m Message) {
	s.transcript = append(s.transcript, m)
}

// pruneTranscript drops the oldest ticks' traffic so requests do not grow
// without bound over a long run. Every tick opens with a user state
// message, so cutting at one of those never orphans a tool answer from
// the assistant message that requested it.
func (s *Interactive) pruneTranscript() {
	var starts []int
	for i, m := range s.transcript {
		if m.Role == RoleUser {
			starts = append(starts, i)
		}
	}
	keep := transcriptTicks - 1 // plus the tick about to start
	if len(starts) <= keep {
		return
	}
	s.transcript = append([]Message(nil), s.transcript[starts[len(starts)-keep]:]...)
}

// answer appends the tool result for one call to the transcript.
func (s *Interactive) answer(call ToolCall, content string) {
	s.transcript = append(s.transcript, Message{
		Role:    RoleTool,
		Content: content,
		CallID:  call.ID,
	})
}

// snapshot is the compact state sent to the reasoner.
type snapshot struct {
	Position     maze.Position `json:"position"`
	GoalReached  bool          `json:"goal_reached"`
	VisitedCount int           `json:"visited_count"`
	RecentMoves  []MoveRecord  `json:"recent_moves"`
	Sensor       robot.Reading `json:"sensor"`
	View         []string      `json:"view"`
}

func (s *Interactive) stateJSON() string {
	return mustJSON(snapshot{
		Position:     s.robot.Position(),
		GoalReached:  s.robot.AtGoal(),
		VisitedCount: len(s.visited),
		RecentMoves:  s.history,
		Sensor:       s.lastReading,
		View:         s.view(),
	})
}

// view renders the map window around the robot. Walls are '#', the goal
// 'E', visited open cells '*', unvisited open cells '.', the robot '@'.
func (s *Interactive) view() []string {
	center := s.robot.Position()
	cells := s.maze.Window(center, windowRadius)

	rows := make([]string, len(cells))
	for dy, row := range cells {
		var b strings.Builder
		for dx, cell := range row {
			p := maze.Position{X: center.X + dx - windowRadius, Y: center.Y + dy - windowRadius}
			switch {
			case p == center:
				b.WriteByte('@')
			case cell == maze.Wall:
				b.WriteByte('#')
			case cell == maze.End:
				b.WriteByte('E')
			default:
				if _, seen := s.visited[p]; seen {
					b.WriteByte('*')
				} else {
					b.WriteByte('.')
				}
			}
		}
		rows[dy] = b.String()
	}
	return rows
}

func (s *Interactive) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}
	return string(b)
}
