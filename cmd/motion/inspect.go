package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/phanxgames/motion"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <script.yaml>",
		Short: "Print a script's steps, timing and node tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.OutOrStdout(), args[0])
		},
	}
}

func runInspect(out io.Writer, path string) error {
	sc, err := loadScript(path)
	if err != nil {
		return err
	}
	runner, err := motion.NewScriptRunner(sc, motion.SceneConfig{})
	if err != nil {
		return err
	}
	scene := runner.Scene()

	fmt.Fprintf(out, "fps: %d\n", scene.FPS())
	fmt.Fprintln(out, "steps:")
	for i, st := range sc.Steps {
		fmt.Fprintf(out, "  %d. %s\n", i+1, describeStep(st))
	}

	fmt.Fprintln(out, "initial tree:")
	printTree(out, scene.Root(), 1)

	var events []motion.LifecycleEvent
	scene.SetEventSink(sinkFunc(func(e motion.LifecycleEvent) {
		events = append(events, e)
	}))
	if err := runner.Run(); err != nil {
		return err
	}
	slog.Debug("Script played", "events", len(events))

	fmt.Fprintln(out, "timeline:")
	for _, e := range events {
		subject := e.Animation
		switch {
		case e.Kind == motion.EventRemove:
			subject = e.Node
		case e.Node != "":
			subject += " " + e.Node
		}
		fmt.Fprintf(out, "  %7.3fs %-6s %s\n", e.Time, e.Kind, subject)
	}
	fmt.Fprintf(out, "duration: %.3fs (%d frames)\n", scene.Time(), scene.FrameIndex())

	fmt.Fprintln(out, "final tree:")
	printTree(out, scene.Root(), 1)
	return nil
}

type sinkFunc func(motion.LifecycleEvent)

func (f sinkFunc) EmitEvent(e motion.LifecycleEvent) { f(e) }

func describeStep(st motion.StepSpec) string {
	var parts []string
	if len(st.Add) > 0 {
		parts = append(parts, "add "+strings.Join(st.Add, ", "))
	}
	if len(st.Remove) > 0 {
		parts = append(parts, "remove "+strings.Join(st.Remove, ", "))
	}
	if len(st.Save) > 0 {
		parts = append(parts, "save "+strings.Join(st.Save, ", "))
	}
	if len(st.Play) > 0 {
		names := make([]string, len(st.Play))
		for i, p := range st.Play {
			names[i] = describePlay(p)
		}
		parts = append(parts, "play "+strings.Join(names, ", "))
	}
	if st.Wait > 0 {
		parts = append(parts, fmt.Sprintf("wait %gs", st.Wait))
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, "; ")
}

func describePlay(p motion.PlaySpec) string {
	s := p.Anim
	if p.Node != "" {
		s += "(" + p.Node
		if p.Target != "" {
			s += " -> " + p.Target
		}
		s += ")"
	}
	if len(p.Anims) > 0 {
		inner := make([]string, len(p.Anims))
		for i, c := range p.Anims {
			inner[i] = describePlay(c)
		}
		s += "[" + strings.Join(inner, ", ") + "]"
	}
	if p.Each != nil {
		s += "[each " + describePlay(*p.Each) + "]"
	}
	return s
}

func printTree(out io.Writer, n *motion.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(out, "%s%s (%s", indent, n.Name, n.Type)
	if len(n.Points) > 0 {
		fmt.Fprintf(out, ", %d points", len(n.Points))
	}
	if n.Type == motion.NodeTypeValue {
		fmt.Fprintf(out, ", value %g", n.Value)
	}
	fmt.Fprintln(out, ")")
	for _, c := range n.Children() {
		printTree(out, c, depth+1)
	}
}
