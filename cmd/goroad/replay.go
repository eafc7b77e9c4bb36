package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/goroad/internal/config"
	"github.com/philipparndt/goroad/internal/road"
	"github.com/philipparndt/goroad/internal/scene"
	"github.com/philipparndt/goroad/internal/script"
	"github.com/philipparndt/goroad/internal/store"
	"github.com/philipparndt/goroad/pkg/analysis"
	"github.com/philipparndt/goroad/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	replayOutput string
	replayWatch  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [script]",
	Short: "Run an event script through the straight road tool",
	Long: `Feed a recorded list of pointer and key events through the placement tool
in a top-down view. Roads committed by the script are printed and, with
--output, appended to a project file. With --watch the script is replayed
whenever it changes, each time on top of the project as it was at start.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVarP(&replayOutput, "output", "o", "", "project file to store the network in")
	replayCmd.Flags().BoolVarP(&replayWatch, "watch", "w", false, "replay whenever the script changes")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	filename := args[0]
	r, err := newReplayer(ctx, filename, replayOutput, cfg, log)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := r.replay(ctx); err != nil {
		return err
	}
	if !replayWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fw, err := watcher.NewFileWatcher(200*time.Millisecond, log)
	if err != nil {
		return err
	}
	defer fw.Close()

	err = fw.Watch([]string{filename}, func(string) {
		fmt.Printf("\n%s changed, replaying\n", filename)
		if err := r.replay(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
	if err != nil {
		return err
	}

	fmt.Printf("Watching %s (Ctrl+C to stop)\n", filename)
	fw.Run(ctx)
	return nil
}

// replayer runs a script against the project as it was when the command
// started. Every replay restores that baseline, so roads from an earlier
// run of the same script are replaced rather than duplicated.
type replayer struct {
	filename string
	cfg      config.Config
	log      *zap.Logger
	store    *store.Store
	baseline []store.Record
}

func newReplayer(ctx context.Context, filename, output string, cfg config.Config, log *zap.Logger) (*replayer, error) {
	r := &replayer{filename: filename, cfg: cfg, log: log}
	if output == "" {
		return r, nil
	}

	st, err := store.Open(output, log)
	if err != nil {
		return nil, err
	}
	baseline, err := st.Records(ctx)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to read %s: %w", output, err)
	}
	r.store = st
	r.baseline = baseline
	return r, nil
}

func (r *replayer) Close() error {
	if r.store == nil {
		return nil
	}
	return r.store.Close()
}

func (r *replayer) replay(ctx context.Context) error {
	s, err := script.Load(r.filename)
	if err != nil {
		return err
	}

	sc := scene.New()
	opts := r.cfg.ToolOptions()
	opts.Logger = r.log

	if r.store != nil {
		// Existing roads stay snappable and keep their ids
		if _, err := r.store.Restore(sc, road.NewBuilder(sc, r.cfg.Tool.ObjectName), r.baseline); err != nil {
			return err
		}
	}

	out := script.Run(s, sc, opts)

	name := s.Name
	if name == "" {
		name = r.filename
	}
	fmt.Printf("Script: %s\n", name)
	fmt.Printf("Events: %d of %d\n", out.Consumed, len(s.Events))
	fmt.Printf("Final status: %s\n\n", out.Status)

	if len(out.Segments) > 0 {
		fmt.Println("Created roads:")
		fmt.Println("  ID    Start                                     End                                       Length")
		fmt.Println("  ----  ----------------------------------------  ----------------------------------------  ------------")
		for _, seg := range out.Segments {
			fmt.Printf("  %-4d  %-40s  %-40s  %12.6f\n",
				seg.ConnectionID,
				analysis.FormatVector(seg.Start),
				analysis.FormatVector(seg.End),
				seg.Length)
		}
	} else {
		fmt.Println("No roads created.")
	}
	for _, w := range out.Host.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}

	if r.store != nil {
		n, err := r.store.Save(ctx, sc)
		if err != nil {
			return err
		}
		fmt.Printf("\nSaved %d roads to %s\n", n, r.store.Path())
	}
	return nil
}
