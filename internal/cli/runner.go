package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group bool   // list grouped by pending/done
	Title string // title of the lists built by the subcommands

	In  io.Reader
	Out io.Writer
	Err io.Writer
	Log zerolog.Logger
}

func (o *Options) defaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.Title == "" {
		o.Title = "Today's Todos"
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		PrintHelp(opt.Err)
		return 2
	}
	cmd, a := args[0], args[1:]
	opt.Log.Debug().Str("cmd", cmd).Strs("args", a).Msg("dispatch")

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0
	case "demo":
		return doDemo(opt)
	case "ls":
		return doList(opt)
	case "exec":
		return doExec(opt)
	case "tui":
		return doTUI(opt)
	}

	ui.Fail(opt.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - an in-memory todo list

Usage:
  todo [flags] <subcommand>

Flags:
  -group            group ls output by pending/done
  -theme <name>     classic | neon | mono
  -no-color         disable colors
  -config <path>    read settings from a yaml, toml or .env file

Subcommands:
  demo    Print the sample list and its done items
  ls      Show the sample list in a panel
  exec    Apply commands read from stdin to a fresh list
  tui     Browse and edit the sample list interactively

exec commands (indexes are 0-based):
  add <title...>   done <i>   undone <i>   rm <i>   at <i>
  first   last   shift   pop   size   alldone
  print   done-only   pending-only

Examples:
  todo demo
  printf 'add Buy milk\ndone 0\nprint\n' | todo exec
`)
}

// DemoList returns the sample list with items 1 and 3 done.
func DemoList(title string) *model.List {
	l := model.NewList(title)
	for _, t := range []string{
		"Buy milk",
		"Clean room",
		"Go to the gym",
		"Go shopping",
		"Feed the cats",
		"Study for Launch School",
	} {
		_ = l.Add(model.NewItem(t))
	}
	_ = l.MarkDoneAt(1)
	_ = l.MarkDoneAt(3)
	return l
}

// -------------- subcommand impls ----------------

func doDemo(opt Options) int {
	l := DemoList(opt.Title)
	fmt.Fprintln(opt.Out, l.String())
	fmt.Fprintln(opt.Out)

	done := l.Filter(model.Done)
	fmt.Fprintln(opt.Out, done.String())
	if first, ok := done.First(); ok {
		fmt.Fprintln(opt.Out)
		fmt.Fprintln(opt.Out, "first done: "+first.String())
	}
	return 0
}

func doList(opt Options) int {
	l := DemoList(opt.Title)
	t := ui.Current()

	// Header + progress
	d, p := l.Counts()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render(l.Title()),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), l.Size(),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if opt.Group {
		lines = append(lines, groupLines(l)...)
	} else {
		lines = append(lines, flatLines(l)...)
	}
	ui.Panel(opt.Out, lines)
	return 0
}

func doTUI(opt Options) int {
	l := DemoList(opt.Title)
	if err := tui.Run(l, opt.Log); err != nil {
		opt.Log.Error().Err(err).Msg("interactive view")
		ui.Fail(opt.Err, err.Error())
		return 1
	}
	fmt.Fprintln(opt.Out, l.String())
	return 0
}

// doExec applies one command per stdin line to a single list. A failing
// command is reported and the rest still run.
func doExec(opt Options) int {
	l := model.NewList(opt.Title)
	code := 0

	sc := bufio.NewScanner(opt.In)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := execLine(opt.Out, l, line); err != nil {
			opt.Log.Warn().Err(err).Int("line", lineNo).Msg("exec")
			ui.Fail(opt.Err, fmt.Sprintf("line %d: %v", lineNo, err))
			code = 1
		}
	}
	if err := sc.Err(); err != nil {
		ui.Fail(opt.Err, "read: "+err.Error())
		return 1
	}
	return code
}

var errUsage = errors.New("usage")

func execLine(w io.Writer, l *model.List, line string) error {
	fields := strings.Fields(line)
	cmd, a := fields[0], fields[1:]

	index := func() (int, error) {
		if len(a) != 1 {
			return 0, fmt.Errorf("%w: %s <index>", errUsage, cmd)
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			return 0, fmt.Errorf("%s: not a number: %s", cmd, a[0])
		}
		return n, nil
	}
	printItem := func(it *model.Item, ok bool) {
		if !ok {
			fmt.Fprintln(w, "(none)")
			return
		}
		fmt.Fprintln(w, it.String())
	}

	switch cmd {
	case "add":
		if len(a) == 0 {
			return fmt.Errorf("%w: add <title...>", errUsage)
		}
		return l.Add(model.NewItem(strings.Join(a, " ")))
	case "done", "undone", "at", "rm":
		n, err := index()
		if err != nil {
			return err
		}
		switch cmd {
		case "done":
			return l.MarkDoneAt(n)
		case "undone":
			return l.MarkUndoneAt(n)
		case "at":
			it, err := l.ItemAt(n)
			if err != nil {
				return err
			}
			printItem(it, true)
		case "rm":
			it, err := l.RemoveAt(n)
			if err != nil {
				return err
			}
			printItem(it, true)
		}
		return nil
	case "first":
		printItem(l.First())
	case "last":
		printItem(l.Last())
	case "shift":
		printItem(l.Shift())
	case "pop":
		printItem(l.Pop())
	case "size":
		fmt.Fprintln(w, l.Size())
	case "alldone":
		fmt.Fprintln(w, l.IsDone())
	case "print":
		fmt.Fprintln(w, l.String())
	case "done-only":
		fmt.Fprintln(w, l.Filter(model.Done).String())
	case "pending-only":
		fmt.Fprintln(w, l.Filter(model.Pending).String())
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
	return nil
}

// -------------- rendering helpers --------------

func flatLines(l *model.List) []string {
	t := ui.Current()
	if l.Size() == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, l.Size())
	i := 0
	l.ForEach(func(it *model.Item) {
		idx := fmt.Sprintf("%2d.", i)
		box := t.Muted.Render(t.BoxUnchecked)
		title := it.Title()
		if it.IsDone() {
			box = t.Success.Render(t.BoxChecked)
			title = t.Done.Render(title)
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(idx), box, title))
		i++
	})
	return out
}

func groupLines(l *model.List) []string {
	t := ui.Current()
	section := func(name string, part *model.List) []string {
		lines := []string{t.Accent.Render(name)}
		if part.Size() == 0 {
			return append(lines, t.Muted.Render("(none)"))
		}
		return append(lines, flatLines(part)...)
	}

	var lines []string
	lines = append(lines, section("Pending", l.Filter(model.Pending))...)
	lines = append(lines, "")
	lines = append(lines, section("Done", l.Filter(model.Done))...)
	return lines
}
