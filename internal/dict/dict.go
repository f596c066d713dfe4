// Package dict implements the interpreter's dictionary: an ordered,
// singly linked list of (word, value) entries searched newest-first, so a
// later definition shadows an earlier one without destroying it.
package dict

import "github.com/wmalkin/rgbforth/internal/value"

// Entry is one dictionary binding. It satisfies value.Entry so a SYM
// Value can reference it directly.
type Entry struct {
	word  string
	val   *value.Value
	next  *Entry
}

// Word returns the entry's bound name.
func (e *Entry) Word() string { return e.word }

// Value returns the entry's current bound value.
func (e *Entry) Value() *value.Value { return e.val }

// Dict is an ordered list of entries, insert-at-head / lookup-from-head.
type Dict struct {
	head *Entry
}

// New returns an empty dictionary.
func New() *Dict { return &Dict{} }

// Define prepends a new entry binding word to val, storing val as given.
// It does not deep-clone a SEQ body: dict does not know how to copy a
// vstack.Stack, so internal/eval's Define/DefineShadow clone the body
// before calling in here. Define does not forget any prior binding: use
// Redefine (the `def` word) for forget-then-prepend semantics.
func (d *Dict) Define(word string, val *value.Value) {
	d.head = &Entry{word: word, val: val, next: d.head}
}

// Redefine implements the `def` word: forget any existing binding of
// word, then prepend the new one, so exactly one live entry for word
// exists afterward. Contrast `redef`, which calls Define directly and
// leaves any shadowed entry intact.
func (d *Dict) Redefine(word string, val *value.Value) {
	for d.Forget(word) {
	}
	d.Define(word, val)
}

// FindSym returns the first (most recently defined) entry bound to word,
// or nil if none exists.
func (d *Dict) FindSym(word string) *Entry {
	for e := d.head; e != nil; e = e.next {
		if e.word == word {
			return e
		}
	}
	return nil
}

// Find returns the value bound to word, or nil if undefined.
func (d *Dict) Find(word string) *value.Value {
	if e := d.FindSym(word); e != nil {
		return e.val
	}
	return nil
}

// Defined reports whether word has any binding (`def?`).
func (d *Dict) Defined(word string) bool { return d.FindSym(word) != nil }

// Forget unlinks the first (most recent) entry bound to word, if any,
// making any previously shadowed binding visible again. Reports whether an
// entry was removed.
func (d *Dict) Forget(word string) bool {
	var prev *Entry
	for e := d.head; e != nil; e = e.next {
		if e.word == word {
			if prev == nil {
				d.head = e.next
			} else {
				prev.next = e.next
			}
			return true
		}
		prev = e
	}
	return false
}

// Walk visits every entry from most- to least-recently defined.
func (d *Dict) Walk(fn func(*Entry)) {
	for e := d.head; e != nil; e = e.next {
		fn(e)
	}
}
