package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/quiesce-dev/quiesce/internal/engine"
	"github.com/quiesce-dev/quiesce/internal/output"
	"github.com/quiesce-dev/quiesce/internal/snapshot"
)

// DemoOptions holds flags for the demo command.
type DemoOptions struct {
	*RootOptions
	Target int
	Input  string
	Trace  bool
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DemoOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a built-in stabilizing program",
		Long: `Run a built-in program through the engine and print the aggregated
output document.

The program counts a state hook up to --target (one pass per step),
greets the --input value through a registered extension, and records
output entries along the way. With --trace, the per-pass snapshot log is
printed before the document.

Examples:
  quiesce demo
  quiesce demo --target 5 --input gopher
  quiesce demo --trace`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Target, "target", 3, "value the counter stabilizes at")
	cmd.Flags().StringVar(&opts.Input, "input", "world", "input value passed to the program")
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "print the per-pass snapshot log")

	return cmd
}

func runDemo(opts *DemoOptions, cmd *cobra.Command) error {
	eng := engine.New()
	defer eng.Cleanup()

	var doc output.Document
	eng.OnOutput(func(d output.Document) { doc = d })

	if err := eng.Register("greeting", greetingExtension()); err != nil {
		return fmt.Errorf("register greeting extension: %w", err)
	}

	// Input first: the engine stores it while idle, so installing the
	// program triggers a single run that already sees it.
	if err := eng.SetInput(opts.Input); err != nil {
		return err
	}
	if err := eng.SetProgram(demoProgram(opts.Target)); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.Trace {
		printTrace(out, eng.Snapshots())
	}

	rendered, err := output.Render(doc)
	if err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	_, err = fmt.Fprint(out, string(rendered))
	return err
}

// demoProgram counts up to target, one pass per step, and records output
// entries for the aggregator.
func demoProgram(target int) engine.Program {
	return func(c *engine.Caps) {
		v, set := c.State(0)
		n := v.(int)
		if n < target {
			_ = set.Set(n + 1)
		}

		if _, err := c.Invoke("greeting"); err != nil {
			slog.Error("greeting extension failed", "error", err)
		}

		c.Output("counter", "final", n)

		c.Effect(func() func() {
			slog.Debug("counter settled", "value", n)
			return nil
		}, []any{n})
	}
}

// greetingExtension greets the engine input under the greeting namespace.
func greetingExtension() engine.Extension {
	return engine.Extension{
		Init: func(*engine.Engine) {
			slog.Debug("greeting extension initialized")
		},
		Execute: func(c *engine.Caps, args ...any) any {
			c.Output("greeting", "message", fmt.Sprintf("hello %v", c.Input()))
			return nil
		},
	}
}

// printTrace writes one line per recorded pass.
func printTrace(w io.Writer, snaps []snapshot.Snapshot) {
	for _, snap := range snaps {
		fmt.Fprintf(w, "pass %d (%s):", snap.Pass, snap.RunToken)
		for _, rec := range snap.Slots {
			switch {
			case rec.Namespace != "":
				fmt.Fprintf(w, " %s[%s/%s]=%v", rec.Kind, rec.Namespace, rec.Key, rec.Value)
			default:
				fmt.Fprintf(w, " %s=%v", rec.Kind, rec.Value)
			}
		}
		fmt.Fprintln(w)
	}
}
