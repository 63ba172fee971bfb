package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"notesaver/internal/notes"
)

// DebounceDelay is how long the directory must stay quiet before a burst of
// changes is reported.
const DebounceDelay = 200 * time.Millisecond

// EventType classifies the last change of a burst.
type EventType int

const (
	NoteCreated EventType = iota
	NoteChanged
	NoteRemoved
)

func (t EventType) String() string {
	switch t {
	case NoteCreated:
		return "created"
	case NoteRemoved:
		return "removed"
	default:
		return "changed"
	}
}

// Event reports that the notes directory changed. Filename is the note
// touched last in the burst.
type Event struct {
	Type     EventType
	Filename string
}

// Watch reports changes to note files in dir until ctx is done, at which
// point the returned channel is closed. dir must exist.
func Watch(ctx context.Context, dir string, log zerolog.Logger) (<-chan Event, error) {
	return watch(ctx, dir, DebounceDelay, log)
}

func watch(ctx context.Context, dir string, delay time.Duration, log zerolog.Logger) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	log = log.With().Str("component", "watch").Str("dir", dir).Logger()
	events := make(chan Event, 8)

	go func() {
		defer watcher.Close()

		var (
			debounceTimer *time.Timer
			last          fsnotify.Event
			closed        bool
			mu            sync.Mutex
		)

		defer func() {
			mu.Lock()
			closed = true
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			mu.Unlock()
			close(events)
		}()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				name := filepath.Base(event.Name)
				if !notes.IsNoteFile(name) || event.Op == fsnotify.Chmod {
					continue
				}

				mu.Lock()
				last = event
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(delay, func() {
					mu.Lock()
					defer mu.Unlock()

					if closed {
						return
					}

					ev := Event{Type: classify(last.Op), Filename: filepath.Base(last.Name)}
					select {
					case events <- ev:
						log.Debug().Str("file", ev.Filename).Stringer("type", ev.Type).Msg("notes changed")
					default:
						// a refresh is already pending
					}
				})
				mu.Unlock()

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("watch error")
			}
		}
	}()

	return events, nil
}

func classify(op fsnotify.Op) EventType {
	switch {
	case op.Has(fsnotify.Create):
		return NoteCreated
	case op.Has(fsnotify.Remove), op.Has(fsnotify.Rename):
		return NoteRemoved
	default:
		return NoteChanged
	}
}
