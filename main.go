package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/beka-birhanu/mazepilot/api"
	api_i "github.com/beka-birhanu/mazepilot/api/i"
	runapi "github.com/beka-birhanu/mazepilot/api/run"
	"github.com/beka-birhanu/mazepilot/config"
	"github.com/beka-birhanu/mazepilot/infrastruture/openai"
	"github.com/beka-birhanu/mazepilot/maze"
	"github.com/beka-birhanu/mazepilot/render"
	"github.com/beka-birhanu/mazepilot/robot"
	"github.com/beka-birhanu/mazepilot/service"
	"github.com/beka-birhanu/mazepilot/solver"
)

// Flags; each defaults to its environment value so the CLI overrides env.
var (
	flagWidth       int
	flagHeight      int
	flagSeed        int64
	flagSolver      string
	flagDelay       time.Duration
	flagHTTPAddr    string
	flagModel       string
	flagRoundBudget int
	flagTimeout     time.Duration
	flagNoColor     bool
)

var (
	appLogger = log.New(os.Stdout, config.LogInfoColor+"[APP] "+config.LogColorReset, log.LstdFlags)
	errLogger = log.New(os.Stderr, config.LogErrorColor+"[APP] [ERROR] "+config.LogColorReset, log.LstdFlags)
)

var rootCmd = &cobra.Command{
	Use:   "mazepilot",
	Short: "Generate mazes and watch solvers drive a robot through them",
	Long: `mazepilot carves a random maze, drops a robot at the start cell and
steps a solver tick by tick until the robot reaches the end. Deterministic
solvers (bfs, dfs, astar) plan once and replay the path; the interactive
solver asks an OpenAI model for every move through a small tool protocol.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Carve a maze and run a solver to completion",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSolve(cmd.Context())
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Carve a maze and print it",
	RunE: func(_ *cobra.Command, _ []string) error {
		m, err := buildMaze()
		if err != nil {
			return err
		}
		fmt.Println(m.String())
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{runCmd, generateCmd} {
		cmd.Flags().IntVar(&flagWidth, "width", config.Envs.MazeWidth, "board width in columns")
		cmd.Flags().IntVar(&flagHeight, "height", config.Envs.MazeHeight, "board height in rows")
		cmd.Flags().Int64Var(&flagSeed, "seed", config.Envs.MazeSeed, "carve seed; 0 picks one from the clock")
	}

	runCmd.Flags().StringVar(&flagSolver, "solver", config.Envs.Solver, "solver variant: bfs, dfs, astar or interactive")
	runCmd.Flags().DurationVar(&flagDelay, "delay", config.Envs.TickDelay, "delay between ticks")
	runCmd.Flags().StringVar(&flagHTTPAddr, "http-addr", config.Envs.HTTPAddr, "viewer listen address; empty disables the viewer")
	runCmd.Flags().StringVar(&flagModel, "model", config.Envs.OpenAIModel, "chat model for the interactive solver")
	runCmd.Flags().IntVar(&flagRoundBudget, "round-budget", config.Envs.LLMRoundBudget, "reasoner rounds per tick")
	runCmd.Flags().DurationVar(&flagTimeout, "llm-timeout", config.Envs.LLMTimeout, "timeout per reasoner call")
	runCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "render the board without ANSI colors")

	rootCmd.AddCommand(runCmd, generateCmd)
}

// buildMaze carves a board from the flags. A zero seed is replaced with a
// clock-derived one so repeated runs do not repeat the same maze.
func buildMaze() (*maze.Maze, error) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m, err := maze.Generate(flagWidth, flagHeight, seed)
	if err != nil {
		return nil, fmt.Errorf("carving %dx%d maze: %w", flagWidth, flagHeight, err)
	}
	appLogger.Printf("carved %dx%d maze with seed %d", flagWidth, flagHeight, seed)
	return m, nil
}

// buildReasoner creates the OpenAI-backed reasoner for the interactive
// solver. Deterministic solvers never touch the network, so the API key is
// only demanded here.
func buildReasoner() (solver.Reasoner, error) {
	reasonerLogger := log.New(os.Stdout, config.ColorCyan+"[REASONER] "+config.ColorReset, log.LstdFlags)
	client, err := openai.New(&openai.Config{
		APIKey: config.Envs.OpenAIKey,
		Model:  flagModel,
		Logger: reasonerLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating openai reasoner: %w", err)
	}
	return client, nil
}

func runSolve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, err := buildMaze()
	if err != nil {
		return err
	}
	bot := robot.New(m)

	solverCfg := &solver.Config{
		Maze:        m,
		Robot:       bot,
		RoundBudget: flagRoundBudget,
		Timeout:     flagTimeout,
		Logger:      log.New(os.Stdout, config.ColorBlue+"[SOLVER] "+config.ColorReset, log.LstdFlags),
	}
	if flagSolver == solver.VariantInteractive {
		solverCfg.Reasoner, err = buildReasoner()
		if err != nil {
			return err
		}
	}
	s, err := solver.New(flagSolver, solverCfg)
	if err != nil {
		return err
	}

	runner, err := service.NewRunner(&service.Config{
		Solver:   s,
		Renderer: render.NewTerminal(os.Stdout, m, !flagNoColor),
		Delay:    flagDelay,
		Logger:   log.New(os.Stdout, config.ColorMagenta+"[RUNNER] "+config.ColorReset, log.LstdFlags),
	})
	if err != nil {
		return err
	}

	if flagHTTPAddr != "" {
		startViewer(m, runner)
	}

	if err := runner.Run(ctx); err != nil {
		return fmt.Errorf("running %s solver: %w", s.Name(), err)
	}
	return nil
}

// startViewer serves the read-only HTTP view in the background. Viewer
// failures are logged, not fatal; the solve continues without it.
func startViewer(m *maze.Maze, runner *service.Runner) {
	router := api.NewRouter(api.Config{
		Addr:    flagHTTPAddr,
		BaseURL: "/api",
		Controllers: []api_i.Controller{
			runapi.New(runapi.Config{Maze: m, Run: runner}),
		},
	})
	appLogger.Printf("viewer listening on %s", flagHTTPAddr)

	go func() {
		if err := router.Run(); err != nil {
			errLogger.Printf("viewer stopped: %v", err)
		}
	}()
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		errLogger.Printf("%v", err)
		os.Exit(1)
	}
}
