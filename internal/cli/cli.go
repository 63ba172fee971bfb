package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode"

	"notesaver/internal/notes"
	"notesaver/internal/service"
	"notesaver/internal/tui/theme"
)

type runner struct {
	svc    service.NoteService
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

// Run executes the CLI with the given arguments and returns the exit code.
// The first argument is the command name.
func Run(args []string, svc service.NoteService, in io.Reader, out, errOut io.Writer) int {
	r := &runner{
		svc:    svc,
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
	}

	if len(args) == 0 {
		r.printUsage(errOut)
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "new", "add", "create", "n":
		return r.runNew(cmdArgs)
	case "list", "ls", "l":
		return r.runList(cmdArgs)
	case "view", "show", "v":
		return r.runView(cmdArgs)
	case "search", "find", "s":
		return r.runSearch(cmdArgs)
	case "delete", "rm", "del":
		return r.runDelete(cmdArgs)
	case "menu", "m":
		return r.runMenu()
	case "help", "-h", "--help":
		r.printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "Unknown command: %s\n", command)
		r.printUsage(errOut)
		return 1
	}
}

func (r *runner) printUsage(w io.Writer) {
	fmt.Fprintln(w, `notesaver - Plain-text notes in a folder

Usage: notesaver [flags] [command] [arguments]

Commands:
  new, n      Create a note; the body is read from stdin until an empty line
              notesaver new "Meeting Notes"
              notesaver new -b "Discuss roadmap" "Meeting Notes"

  list, ls    List notes, newest first
  view, v     Show a note by its number in the list
              notesaver view 2

  search, s   Search titles and bodies (case-insensitive)
              notesaver search roadmap

  delete, rm  Delete a note by its number (asks for confirmation)
              notesaver delete 3
              notesaver delete -y 3

  menu        Numbered interactive menu
  help        Show this help message

Flags:
  -d, --dir <path>     Notes directory
      --config <path>  Config file (default ~/.config/notesaver/config.yaml)
      --log-level <l>  debug, info, warn, error
      --no-watch       Do not watch the notes directory in the TUI

Running notesaver without a command launches the interactive TUI.`)
}

// report prints err the way its kind deserves and returns the exit code 1.
func (r *runner) report(err error) int {
	var (
		verr  *notes.ValidationError
		ierr  *notes.IndexError
		ioErr *notes.IOError
	)

	switch {
	case errors.As(err, &verr):
		r.warn(capitalize(verr.Reason) + ".")
	case errors.As(err, &ierr):
		r.warn(capitalize(ierr.Error()) + ".")
	case errors.As(err, &ioErr):
		fmt.Fprintln(r.errOut, theme.Error.Render("Error: "+ioErr.Error()))
	default:
		fmt.Fprintln(r.errOut, theme.Error.Render("Error: "+err.Error()))
	}
	return 1
}

func (r *runner) warn(msg string) {
	fmt.Fprintln(r.out, theme.Warn.Render(msg))
}

func (r *runner) notify(msg string) {
	fmt.Fprintln(r.out, theme.Ok.Render(msg))
}

func (r *runner) info(msg string) {
	fmt.Fprintln(r.out, theme.Info.Render(msg))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
