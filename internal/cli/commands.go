package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/ui"
)

func newAddCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "add <text...>",
		Short:   "Add a new item (text can be multiple words)",
		Example: `  tada add "Buy milk"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usagef("usage: tada add <text...>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, flags, func(e *env) error {
				out := cmd.OutOrStdout()
				it, ok, err := e.mgr.Add(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				if !ok {
					ui.Note(out, e.styles, "nothing added: text is empty")
					return nil
				}
				ui.OK(out, e.styles, fmt.Sprintf("added #%d", it.ID))
				return nil
			})
		},
	}
}

func newListCmd(flags *rootFlags) *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print the list",
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, flags, func(e *env) error {
				out := cmd.OutOrStdout()
				ui.Panel(out, e.styles, listLines(e.mgr.Items(), e.styles, group, ui.TermWidth(out, 80)))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&group, "group", "g", false, "group output by pending/done")
	return cmd
}

func newDoneCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"toggle"},
		Short:   "Toggle completion of an item",
		Args:    idArg("done"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := strconv.ParseInt(args[0], 10, 64)
			return withEnv(cmd, flags, func(e *env) error {
				ok, err := e.mgr.Toggle(cmd.Context(), id)
				return report(cmd, e, ok, err, "toggled", id)
			})
		},
	}
}

func newRemoveCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Remove an item",
		Args:    idArg("rm"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := strconv.ParseInt(args[0], 10, 64)
			return withEnv(cmd, flags, func(e *env) error {
				ok, err := e.mgr.Delete(cmd.Context(), id)
				return report(cmd, e, ok, err, "removed", id)
			})
		},
	}
}

func newClearCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every item",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, flags, func(e *env) error {
				if err := e.mgr.Clear(cmd.Context()); err != nil {
					return err
				}
				ui.OK(cmd.OutOrStdout(), e.styles, "cleared")
				return nil
			})
		},
	}
}

func withEnv(cmd *cobra.Command, flags *rootFlags, fn func(*env) error) error {
	e, err := openEnv(cmd, flags)
	if err != nil {
		return err
	}
	defer e.Close()
	return fn(e)
}

func idArg(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return usagef("usage: tada %s <id>", name)
		}
		if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
			return usagef("%s: not a number: %s", name, args[0])
		}
		return nil
	}
}

// report prints the outcome of a toggle or remove. An unknown id is not an
// error, only a note.
func report(cmd *cobra.Command, e *env, ok bool, err error, verb string, id int64) error {
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !ok {
		ui.Note(out, e.styles, fmt.Sprintf("no item #%d (run `tada ls` to see ids)", id))
		return nil
	}
	ui.OK(out, e.styles, fmt.Sprintf("%s #%d", verb, id))
	return nil
}

func listLines(items []model.Item, st ui.Styles, group bool, width int) []string {
	done, pending := todo.Stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		st.Title.UnsetBackground().UnsetForeground().Render("Todos"),
		st.Success.Render(ui.SymDone), done,
		st.Accent.UnsetBackground().Render(ui.SymPending), pending,
		st.Accent.UnsetBackground().Render("Total"), len(items),
	)

	lines := []string{header, st.Muted.UnsetBackground().Render(ui.ProgressBar(done, done+pending, 28)), ""}
	if group {
		lines = append(lines, groupLines(items, st, width)...)
	} else {
		lines = append(lines, flatLines(items, st, width)...)
	}
	lines = append(lines, "", st.Muted.UnsetBackground().Render("Tip: add with `tada add \"Buy milk\"`"))
	return lines
}

func flatLines(items []model.Item, st ui.Styles, width int) []string {
	muted := st.Muted.UnsetBackground()
	if len(items) == 0 {
		return []string{muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		box := muted.Render(ui.BoxUnchecked)
		text := it.Text
		if it.Completed {
			box = st.Success.Render(ui.BoxChecked)
		}
		// frame, id column and box take about 24 cells
		text = ui.Truncate(text, max(10, width-24))
		if it.Completed {
			text = st.TextDone.UnsetBackground().Render(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s", muted.Render(fmt.Sprintf("#%d", it.ID)), box, text))
	}
	return out
}

func groupLines(items []model.Item, st ui.Styles, width int) []string {
	var pend, done []model.Item
	for _, it := range items {
		if it.Completed {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	accent := st.Accent.UnsetBackground()
	muted := st.Muted.UnsetBackground()

	section := func(title string, items []model.Item) []string {
		lines := []string{accent.Render(title)}
		if len(items) == 0 {
			return append(lines, muted.Render("(none)"))
		}
		return append(lines, flatLines(items, st, width)...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}
