package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Products(ctx context.Context) error
	AddProduct(ctx context.Context) error
	CartAdd(ctx context.Context, args []string) error
	CartRemove(ctx context.Context, args []string) error
	CartShow(ctx context.Context) error
	Checkout(ctx context.Context) error
	Buy(ctx context.Context, args []string) error
	Resources(ctx context.Context) error
	Reserve(ctx context.Context) error
	Exams(ctx context.Context) error
	AddExam(ctx context.Context) error
	StartExam(ctx context.Context, args []string) error
	ShowExam(ctx context.Context, args []string) error
	SubmitExam(ctx context.Context, args []string) error
	Dashboard(ctx context.Context) error
	Status(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the campusctl shell.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("campus %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands:")
				printlnFn("  products, addproduct, cart [add|remove|show], checkout, buy <id>")
				printlnFn("  resources, reserve")
				printlnFn("  exams, addexam, startexam <id>, showexam <id>, submitexam <id>")
				printlnFn("  dashboard, status, logout, exit")
			} else {
				printlnFn("Available commands: register, login, status, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "products":
			_ = a.Products(ctx)

		case "addproduct":
			_ = a.AddProduct(ctx)

		case "cart":
			if len(args) == 0 {
				_ = a.CartShow(ctx)
				continue
			}
			switch args[0] {
			case "add":
				if len(args) < 2 {
					printlnFn("Usage: cart add <productId> [quantity]")
					continue
				}
				_ = a.CartAdd(ctx, args[1:])
			case "remove":
				if len(args) < 2 {
					printlnFn("Usage: cart remove <productId>")
					continue
				}
				_ = a.CartRemove(ctx, args[1:])
			case "show":
				_ = a.CartShow(ctx)
			default:
				printlnFn("Usage: cart [add <productId> [quantity] | remove <productId> | show]")
			}

		case "checkout":
			_ = a.Checkout(ctx)

		case "buy":
			if len(args) == 0 {
				printlnFn("Usage: buy <productId>")
				continue
			}
			_ = a.Buy(ctx, args)

		case "resources":
			_ = a.Resources(ctx)

		case "reserve":
			_ = a.Reserve(ctx)

		case "exams":
			_ = a.Exams(ctx)

		case "addexam":
			_ = a.AddExam(ctx)

		case "startexam":
			if len(args) == 0 {
				printlnFn("Usage: startexam <examId>")
				continue
			}
			_ = a.StartExam(ctx, args)

		case "showexam":
			if len(args) == 0 {
				printlnFn("Usage: showexam <examId>")
				continue
			}
			_ = a.ShowExam(ctx, args)

		case "submitexam":
			if len(args) == 0 {
				printlnFn("Usage: submitexam <examId>")
				continue
			}
			_ = a.SubmitExam(ctx, args)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
