package watcher

import (
	"sort"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestDebouncedBatching(t *testing.T) {
	changes := make(chan []string, 1)
	w, err := New(20*time.Millisecond, nil, nil, func(changed []string) {
		changes <- changed
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	w.handleEvent(fsnotify.Event{Name: "/src/a.py", Op: fsnotify.Write})
	w.handleEvent(fsnotify.Event{Name: "/src/b.py", Op: fsnotify.Create})
	w.handleEvent(fsnotify.Event{Name: "/src/a.py", Op: fsnotify.Write})

	select {
	case changed := <-changes:
		sort.Strings(changed)
		if len(changed) != 2 || changed[0] != "/src/a.py" || changed[1] != "/src/b.py" {
			t.Errorf("expected deduplicated batch [a b], got %v", changed)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("debounce flush never fired")
	}
}

func TestEventFiltering(t *testing.T) {
	w, err := New(10*time.Millisecond, nil, []string{"*_test.py"}, func([]string) {
		t.Error("filtered events must not flush")
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	w.handleEvent(fsnotify.Event{Name: "/src/notes.txt", Op: fsnotify.Write})
	w.handleEvent(fsnotify.Event{Name: "/src/foo_test.py", Op: fsnotify.Write})
	w.handleEvent(fsnotify.Event{Name: "/src/a.py", Op: fsnotify.Chmod})

	time.Sleep(50 * time.Millisecond)
}
