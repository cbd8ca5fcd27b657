package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.record("register", nil)
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.record("login", nil)
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.record("logout", nil)
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Products(ctx context.Context) error   { f.record("products", nil); return nil }
func (f *fakeExec) AddProduct(ctx context.Context) error { f.record("addproduct", nil); return nil }
func (f *fakeExec) CartAdd(ctx context.Context, args []string) error {
	f.record("cartadd", args)
	return nil
}
func (f *fakeExec) CartRemove(ctx context.Context, args []string) error {
	f.record("cartremove", args)
	return nil
}
func (f *fakeExec) CartShow(ctx context.Context) error { f.record("cartshow", nil); return nil }
func (f *fakeExec) Checkout(ctx context.Context) error { f.record("checkout", nil); return nil }
func (f *fakeExec) Buy(ctx context.Context, args []string) error {
	f.record("buy", args)
	return nil
}
func (f *fakeExec) Resources(ctx context.Context) error { f.record("resources", nil); return nil }
func (f *fakeExec) Reserve(ctx context.Context) error   { f.record("reserve", nil); return nil }
func (f *fakeExec) Exams(ctx context.Context) error     { f.record("exams", nil); return nil }
func (f *fakeExec) AddExam(ctx context.Context) error   { f.record("addexam", nil); return nil }
func (f *fakeExec) StartExam(ctx context.Context, args []string) error {
	f.record("startexam", args)
	return nil
}
func (f *fakeExec) ShowExam(ctx context.Context, args []string) error {
	f.record("showexam", args)
	return nil
}
func (f *fakeExec) SubmitExam(ctx context.Context, args []string) error {
	f.record("submitexam", args)
	return nil
}
func (f *fakeExec) Dashboard(ctx context.Context) error { f.record("dashboard", nil); return nil }
func (f *fakeExec) Status(ctx context.Context) error    { f.record("status", nil); return nil }

func muteOutput(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"products",
		"cart add p1 2",
		"cart",
		"checkout",
		"buy p2",
		"status",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "products", "cartadd", "cartshow", "checkout", "buy", "status"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_CartSubcommandArgs(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader("cart add p1 3\ncart remove p1\nexit\n")
	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if len(exec.calls) != 2 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if got := exec.args[0]; len(got) != 2 || got[0] != "p1" || got[1] != "3" {
		t.Fatalf("cart add args: %v", got)
	}
	if got := exec.args[1]; len(got) != 1 || got[0] != "p1" {
		t.Fatalf("cart remove args: %v", got)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader("buy\nstartexam\ncart add\nquit\n")
	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
