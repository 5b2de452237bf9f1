package contacts

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Book maps a contact name to a phone number. Held in memory only; nothing
// survives the process.
type Book map[string]string

// The closed set of expected operation failures. Each maps to a fixed user
// message in WithMessages.
var (
	ErrBadArgs  = errors.New("name and phone required")
	ErrNotFound = errors.New("contact does not exist")
	ErrNoArgs   = errors.New("name required")
)

// Handler is one contact operation: positional arguments in, user-facing
// reply out.
type Handler func(args []string, book Book) (string, error)

// WithMessages wraps a Handler so that every expected failure becomes its
// fixed user message and anything unexpected is surfaced generically. The
// wrapped handler never returns an error; the REPL prints whatever comes
// back and keeps going.
func WithMessages(h Handler) func(args []string, book Book) string {
	return func(args []string, book Book) string {
		reply, err := h(args, book)
		switch {
		case err == nil:
			return reply
		case errors.Is(err, ErrBadArgs):
			return "Give me name and phone please."
		case errors.Is(err, ErrNotFound):
			return "Contact not found, please enter a valid name."
		case errors.Is(err, ErrNoArgs):
			return "Too few or too many arguments in your command."
		default:
			return fmt.Sprintf("An error occurred: %v", err)
		}
	}
}

// Add stores a contact. An existing name is silently overwritten.
func Add(args []string, book Book) (string, error) {
	if len(args) != 2 {
		return "", ErrBadArgs
	}
	book[args[0]] = args[1]
	return "Contact added.", nil
}

// Change replaces the phone number of an existing contact.
func Change(args []string, book Book) (string, error) {
	if len(args) != 2 {
		return "", ErrBadArgs
	}
	name, phone := args[0], args[1]
	if _, ok := book[name]; !ok {
		return "", ErrNotFound
	}
	book[name] = phone
	return "Contact changed.", nil
}

// Phone looks up a contact's phone number by name.
func Phone(args []string, book Book) (string, error) {
	if len(args) == 0 {
		return "", ErrNoArgs
	}
	name := args[0]
	phone, ok := book[name]
	if !ok {
		return "", ErrNotFound
	}
	return phone, nil
}

// All renders the whole book, one "name: phone" line per contact, names
// sorted for stable output.
func All(args []string, book Book) (string, error) {
	if len(book) == 0 {
		return "No contacts saved.", nil
	}

	names := make([]string, 0, len(book))
	for name := range book {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s: %s", name, book[name]))
	}
	return strings.Join(lines, "\n"), nil
}
