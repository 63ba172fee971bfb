package cli

import (
	"fmt"
	"strings"

	"notesaver/internal/notes"
	"notesaver/internal/tui/theme"
)

func (r *runner) runMenu() int {
	for {
		r.printMenu()

		choice, ok := r.prompt("Choose: ")
		if !ok {
			fmt.Fprintln(r.out)
			return 0
		}

		switch strings.TrimSpace(choice) {
		case "1":
			r.menuCreate()
		case "2":
			r.runList(nil)
		case "3":
			r.menuView()
		case "4":
			r.menuSearch()
		case "5":
			r.menuDelete()
		case "0":
			r.info("Bye!")
			return 0
		default:
			r.warn("Unknown option.")
		}
	}
}

func (r *runner) printMenu() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, theme.Title.Render("=== NOTE SAVER ==="))
	fmt.Fprintln(r.out, "1) Create a note")
	fmt.Fprintln(r.out, "2) List notes")
	fmt.Fprintln(r.out, "3) View a note")
	fmt.Fprintln(r.out, "4) Search notes (title & body)")
	fmt.Fprintln(r.out, "5) Delete a note")
	fmt.Fprintln(r.out, "0) Exit")
}

func (r *runner) menuCreate() {
	title, ok := r.prompt("Title: ")
	if !ok {
		return
	}
	// reject before asking for the body
	if strings.TrimSpace(title) == "" {
		r.report(&notes.ValidationError{Field: "title", Reason: "title cannot be empty"})
		return
	}

	fmt.Fprintln(r.out, bodyPromptLabel)
	body := r.readBody()

	filename, err := r.svc.CreateNote(title, body)
	if err != nil {
		r.report(err)
		return
	}
	r.notify("Saved: " + filename)
}

// pickNote lists the notes and asks for a number. ok is false when there is
// nothing to pick from or input ended.
func (r *runner) pickNote(label string) (string, bool) {
	listed, err := r.svc.ListNotes()
	if err != nil {
		r.report(err)
		return "", false
	}
	r.printList(listed)
	if len(listed) == 0 {
		return "", false
	}
	return r.prompt(label)
}

func (r *runner) menuView() {
	index, ok := r.pickNote("Note number to view: ")
	if !ok {
		return
	}

	viewed, err := r.svc.ViewNote(index)
	if err != nil {
		r.report(err)
		return
	}
	r.printNote(viewed)
}

func (r *runner) menuSearch() {
	query, ok := r.prompt("Search text: ")
	if !ok {
		return
	}

	results, err := r.svc.SearchNotes(query)
	if err != nil {
		r.report(err)
		return
	}
	r.printResults(strings.TrimSpace(query), results)
}

func (r *runner) menuDelete() {
	index, ok := r.pickNote("Note number to delete: ")
	if !ok {
		return
	}
	r.deleteNote(index, false)
}
