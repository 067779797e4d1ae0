package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) List(ctx context.Context) error { return f.record("list") }
func (f *fakeExec) Show(ctx context.Context, args []string) error {
	return f.record("show")
}
func (f *fakeExec) Add(ctx context.Context) error { return f.record("add") }
func (f *fakeExec) Duplicate(ctx context.Context, args []string) error {
	return f.record("dup")
}
func (f *fakeExec) Delete(ctx context.Context, args []string) error {
	return f.record("del")
}
func (f *fakeExec) Rename(ctx context.Context, args []string) error {
	return f.record("rename")
}
func (f *fakeExec) Hide(ctx context.Context, args []string) error {
	return f.record("hide")
}
func (f *fakeExec) Set(ctx context.Context, args []string) error {
	return f.record("set")
}
func (f *fakeExec) Move(ctx context.Context, args []string) error {
	return f.record("move")
}
func (f *fakeExec) Upload(ctx context.Context, args []string) error {
	return f.record("upload")
}
func (f *fakeExec) Categories(ctx context.Context, args []string) error {
	return f.record("categories")
}
func (f *fakeExec) Layout(ctx context.Context, args []string) error {
	return f.record("layout")
}
func (f *fakeExec) Save(ctx context.Context) error    { return f.record("save") }
func (f *fakeExec) Preview(ctx context.Context) error { return f.record("preview") }

func TestRunREPL_DispatchAndExit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"list",
		"add",
		"dup 1",
		"move 5 1",
		"set name Elena Petrova",
		"layout 1",
		"save",
		"preview",
		"foobar",
		"",
		"exit",
		"list",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	want := []string{"list", "add", "dup", "move", "set", "layout", "save", "preview"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
		}
	}
}

func TestRunREPL_EOFStopsLoop(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader("list"))

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "list" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
