package command

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/iotest"
)

func TestParseVocabulary(t *testing.T) {
	for _, c := range Vocabulary {
		got, err := Parse("  " + string(c) + "\r\n")
		if err != nil {
			t.Fatalf("Parse(%q): %v", c, err)
		}
		if got != c {
			t.Fatalf("Parse(%q)=%q", c, got)
		}
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	for _, line := range []string{"", "PAUSE", "go faster", "toggle wrap", "quit"} {
		if _, err := Parse(line); !errors.Is(err, ErrUnknown) {
			t.Fatalf("Parse(%q) err=%v, expected ErrUnknown", line, err)
		}
	}
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	if _, ok := q.TryPop(); ok {
		t.Fatal("empty queue returned a command")
	}
	q.Push(Pause)
	q.Push(Faster)
	q.Push(Resume)
	if q.Len() != 3 {
		t.Fatalf("Len=%d", q.Len())
	}
	for _, want := range []Command{Pause, Faster, Resume} {
		got, ok := q.TryPop()
		if !ok || got != want {
			t.Fatalf("TryPop=(%q,%v), expected %q", got, ok, want)
		}
	}
	if _, ok := q.TryPop(); ok {
		t.Fatal("drained queue returned a command")
	}
}

func TestQueueConcurrentProducer(t *testing.T) {
	q := NewQueue()
	const n = 1000
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			if i%2 == 0 {
				q.Push(Faster)
			} else {
				q.Push(Slower)
			}
		}
	}()

	var got []Command
	for len(got) < n {
		if c, ok := q.TryPop(); ok {
			got = append(got, c)
		}
	}
	wg.Wait()
	for i, c := range got {
		want := Faster
		if i%2 == 1 {
			want = Slower
		}
		if c != want {
			t.Fatalf("command %d=%q, expected %q", i, c, want)
		}
	}
}

func TestListenForwardsAndReports(t *testing.T) {
	in := strings.NewReader("pause\nbogus\n  faster  \n\ntoggle_wrap\nstep")
	q := NewQueue()
	var out bytes.Buffer

	if err := Listen(in, q, &out); err != nil {
		t.Fatalf("Listen: %v", err)
	}

	for _, want := range []Command{Pause, Faster, ToggleWrap, Step} {
		got, ok := q.TryPop()
		if !ok || got != want {
			t.Fatalf("queued (%q,%v), expected %q", got, ok, want)
		}
	}
	if q.Len() != 0 {
		t.Fatalf("unexpected extra commands: %d", q.Len())
	}
	if want := "Unknown command: bogus\nUnknown command: \n"; out.String() != want {
		t.Fatalf("report=%q, expected %q", out.String(), want)
	}
}

func TestListenSurvivesOverlongLine(t *testing.T) {
	long := strings.Repeat("x", 70*1024)
	q := NewQueue()
	var out bytes.Buffer

	if err := Listen(strings.NewReader(long+"\npause\n"), q, &out); err != nil {
		t.Fatalf("Listen: %v", err)
	}
	if got, ok := q.TryPop(); !ok || got != Pause {
		t.Fatalf("queued (%q,%v), expected pause after the long line", got, ok)
	}
	want := "Unknown command: " + long[:maxLineLen] + "\n"
	if out.String() != want {
		t.Fatalf("report has %d bytes, expected %d", out.Len(), len(want))
	}
}

func TestListenReturnsReadError(t *testing.T) {
	boom := errors.New("boom")
	q := NewQueue()
	err := Listen(iotest.TimeoutReader(strings.NewReader("resume\n")), q, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected the reader error to surface")
	}
	err = Listen(iotest.ErrReader(boom), q, &bytes.Buffer{})
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, expected boom", err)
	}
}
