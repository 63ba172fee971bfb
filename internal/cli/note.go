package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"notesaver/internal/notes"
	"notesaver/internal/service"
	"notesaver/internal/tui/theme"
)

const (
	listFileWidth   = 36
	listTitleWidth  = 30
	searchTitleLen  = 50
	bodyPromptLabel = "Write your note (finish with an empty line):"
)

func (r *runner) runNew(args []string) int {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	fs.SetOutput(r.errOut)
	body := fs.String("b", "", "Note body (otherwise read from stdin)")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	title := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(r.errOut, "Error: note title required")
		fmt.Fprintln(r.errOut, "Usage: notesaver new [-b body] <title>")
		return 1
	}

	text := *body
	if !flagPassed(fs, "b") {
		fmt.Fprintln(r.out, bodyPromptLabel)
		text = r.readBody()
	}

	filename, err := r.svc.CreateNote(title, text)
	if err != nil {
		return r.report(err)
	}
	r.notify("Saved: " + filename)
	return 0
}

func (r *runner) runList(args []string) int {
	if len(args) > 0 {
		fmt.Fprintln(r.errOut, "Usage: notesaver list")
		return 1
	}

	listed, err := r.svc.ListNotes()
	if err != nil {
		return r.report(err)
	}
	r.printList(listed)
	return 0
}

func (r *runner) runView(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(r.errOut, "Error: note number required")
		fmt.Fprintln(r.errOut, "Usage: notesaver view <n>")
		return 1
	}

	viewed, err := r.svc.ViewNote(args[0])
	if err != nil {
		return r.report(err)
	}
	r.printNote(viewed)
	return 0
}

func (r *runner) runSearch(args []string) int {
	query := strings.Join(args, " ")

	results, err := r.svc.SearchNotes(query)
	if err != nil {
		return r.report(err)
	}
	r.printResults(strings.TrimSpace(query), results)
	return 0
}

func (r *runner) runDelete(args []string) int {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	fs.SetOutput(r.errOut)
	yes := fs.Bool("y", false, "Delete without asking")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(r.errOut, "Error: note number required")
		fmt.Fprintln(r.errOut, "Usage: notesaver delete [-y] <n>")
		return 1
	}

	return r.deleteNote(fs.Arg(0), *yes)
}

// deleteNote is shared by the delete command and the menu.
func (r *runner) deleteNote(index string, skipPrompt bool) int {
	result, err := r.svc.DeleteNoteConfirm(index, func(n service.ListedNote) bool {
		if skipPrompt {
			return true
		}
		return r.confirm(fmt.Sprintf("Delete %q (%s)? (y/n): ", n.Title, n.Filename))
	})
	if err != nil {
		return r.report(err)
	}

	if !result.Deleted {
		r.info("Cancelled.")
		return 0
	}
	r.notify("Deleted: " + result.Filename)
	return 0
}

func (r *runner) printList(listed []service.ListedNote) {
	if len(listed) == 0 {
		r.info("No notes yet.")
		return
	}

	header := fmt.Sprintf("%3s  %s  %s", "#", padRight("File name", listFileWidth), "Title")
	fmt.Fprintln(r.out, theme.Bold.Render(header))
	fmt.Fprintln(r.out, strings.Repeat("-", lipgloss.Width(header)))
	for _, n := range listed {
		fmt.Fprintf(r.out, "%3d  %s  %s\n",
			n.Index,
			padRight(notes.Truncate(n.Filename, listFileWidth), listFileWidth),
			notes.Truncate(n.Title, listTitleWidth))
	}
}

func (r *runner) printNote(n service.ViewedNote) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, theme.Title.Render("=== "+n.Filename+" ==="))
	io.WriteString(r.out, n.Content)
	if !strings.HasSuffix(n.Content, "\n") {
		fmt.Fprintln(r.out)
	}
}

func (r *runner) printResults(query string, results []notes.SearchResult) {
	if len(results) == 0 {
		r.info(fmt.Sprintf("No matches for %q.", query))
		return
	}

	r.info(fmt.Sprintf("%d note(s) match %q:", len(results), query))
	for _, res := range results {
		fmt.Fprintf(r.out, "\n%s  —  %s\n",
			theme.Filename.Render(res.Filename),
			notes.Truncate(res.Title, searchTitleLen))

		lines, more := res.Visible(notes.MaxDisplayedMatches)
		for _, m := range lines {
			fmt.Fprintf(r.out, "  %s %s\n",
				theme.LineNo.Render(fmt.Sprintf("L%d:", m.Number)),
				m.Text)
		}
		if more {
			fmt.Fprintln(r.out, "  ...")
		}
	}
}

// readLine returns the next input line without its line ending; ok is false
// once input is exhausted.
func (r *runner) readLine() (string, bool) {
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (r *runner) prompt(label string) (string, bool) {
	fmt.Fprint(r.out, label)
	return r.readLine()
}

// readBody collects lines up to the first empty line or end of input.
func (r *runner) readBody() string {
	var b strings.Builder
	for {
		line, ok := r.readLine()
		if !ok || line == "" {
			return b.String()
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// confirm asks until it gets a yes or no answer. End of input means no.
func (r *runner) confirm(label string) bool {
	for {
		answer, ok := r.prompt(label)
		if !ok {
			fmt.Fprintln(r.out)
			return false
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		r.warn("Please answer y or n.")
	}
}

func flagPassed(fs *flag.FlagSet, name string) bool {
	passed := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
