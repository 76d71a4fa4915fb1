package iterator

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	ErrEmptyTitle     = errors.New("book title is empty")
	ErrDuplicateTitle = errors.New("book already on shelf")
)

type Book struct {
	Title  string
	Author string
	Year   int
}

func (b Book) String() string {
	return fmt.Sprintf("%s (%s, %d)", b.Title, b.Author, b.Year)
}

type node struct {
	book        Book
	left, right *node
}

// BookShelf stores books in a binary search tree keyed by case-insensitive
// title. Its iterators return books in title order regardless of insertion
// order.
type BookShelf struct {
	root *node
	size int
}

func titleKey(title string) string {
	return strings.ToLower(title)
}

// Insert places b in the tree.
func (s *BookShelf) Insert(b Book) error {
	if b.Title == "" {
		return ErrEmptyTitle
	}

	key := titleKey(b.Title)
	link := &s.root
	for *link != nil {
		switch existing := titleKey((*link).book.Title); {
		case key < existing:
			link = &(*link).left
		case key > existing:
			link = &(*link).right
		default:
			return fmt.Errorf("%w: %s", ErrDuplicateTitle, b.Title)
		}
	}
	*link = &node{book: b}
	s.size++
	return nil
}

func (s *BookShelf) Len() int {
	return s.size
}

// Find looks a book up by title.
func (s *BookShelf) Find(title string) (Book, bool) {
	key := titleKey(title)
	for n := s.root; n != nil; {
		switch existing := titleKey(n.book.Title); {
		case key < existing:
			n = n.left
		case key > existing:
			n = n.right
		default:
			return n.book, true
		}
	}
	return Book{}, false
}

// Iterator returns a lazy in-order iterator backed by an explicit stack,
// so memory use is bounded by tree height.
func (s *BookShelf) Iterator() Iterator[Book] {
	it := &inOrder{}
	it.pushLeft(s.root)
	return it
}

// All yields books in title order.
func (s *BookShelf) All() iter.Seq[Book] {
	return func(yield func(Book) bool) {
		walk(s.root, yield)
	}
}

func walk(n *node, yield func(Book) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, yield) && yield(n.book) && walk(n.right, yield)
}

type inOrder struct {
	stack   []*node
	current Book
}

func (it *inOrder) pushLeft(n *node) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}

func (it *inOrder) Next() bool {
	if len(it.stack) == 0 {
		return false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.current = n.book
	it.pushLeft(n.right)
	return true
}

func (it *inOrder) Value() Book {
	return it.current
}
