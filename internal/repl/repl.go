package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Kalmar41k/goit-algo-hw-05/internal/contacts"
)

// Loop runs the contact assistant over the given reader and writer. It owns
// the contact book for its lifetime and returns when the user exits or the
// input ends.
type Loop struct {
	in   *bufio.Scanner
	out  io.Writer
	book contacts.Book

	add    func(args []string, book contacts.Book) string
	change func(args []string, book contacts.Book) string
	phone  func(args []string, book contacts.Book) string
	all    func(args []string, book contacts.Book) string
}

// New creates a Loop reading commands from in and printing replies to out.
func New(in io.Reader, out io.Writer) *Loop {
	return &Loop{
		in:     bufio.NewScanner(in),
		out:    out,
		book:   contacts.Book{},
		add:    contacts.WithMessages(contacts.Add),
		change: contacts.WithMessages(contacts.Change),
		phone:  contacts.WithMessages(contacts.Phone),
		all:    contacts.WithMessages(contacts.All),
	}
}

// parseInput tokenizes one input line into a lowercased command word and its
// arguments. An empty line yields an empty command.
func parseInput(line string) (string, []string) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return "", nil
	}
	return strings.ToLower(tokens[0]), tokens[1:]
}

// Run blocks on console input until an exit command or EOF. Operation
// failures are printed and the loop continues; nothing is fatal.
func (l *Loop) Run() {
	fmt.Fprintln(l.out, "Welcome to the assistant bot!")

	for {
		fmt.Fprint(l.out, "Enter a command: ")
		if !l.in.Scan() {
			// Input is gone; say goodbye rather than spin on a dead reader.
			fmt.Fprintln(l.out)
			fmt.Fprintln(l.out, "Good bye!")
			return
		}

		command, args := parseInput(l.in.Text())
		switch command {
		case "":
			continue
		case "exit", "close":
			fmt.Fprintln(l.out, "Good bye!")
			return
		case "hello":
			fmt.Fprintln(l.out, "How can I help you?")
		case "add":
			fmt.Fprintln(l.out, l.add(args, l.book))
		case "change":
			fmt.Fprintln(l.out, l.change(args, l.book))
		case "phone":
			fmt.Fprintln(l.out, l.phone(args, l.book))
		case "all":
			fmt.Fprintln(l.out, l.all(args, l.book))
		default:
			fmt.Fprintln(l.out, "Invalid command.")
		}
	}
}
