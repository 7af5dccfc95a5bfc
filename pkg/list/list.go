package list

// node is a single element in the list.
type node struct {
	value string
	next  *node
}

// List is an ordered, mutable sequence of string tokens backed by a singly
// linked list. Tokens iterate in append order. The zero value is an empty
// list ready to use.
//
// List is not safe for concurrent use.
type List struct {
	head *node
	tail *node
	size int
}

// New creates a new empty list.
func New() *List {
	return &List{}
}

// FromStrings creates a list containing the given tokens in order.
func FromStrings(tokens []string) *List {
	l := New()
	for _, t := range tokens {
		l.Append(t)
	}
	return l
}

// Append adds a token to the end of the list.
func (l *List) Append(token string) {
	n := &node{value: token}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Len returns the number of tokens in the list.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// Empty returns true if the list has no tokens.
func (l *List) Empty() bool {
	return l.Len() == 0
}

// First returns the first token and true, or "" and false if the list is empty.
func (l *List) First() (string, bool) {
	if l == nil || l.head == nil {
		return "", false
	}
	return l.head.value, true
}

// Each calls fn for every token in append order. Iteration stops early if fn
// returns false.
func (l *List) Each(fn func(token string) bool) {
	if l == nil {
		return
	}
	for n := l.head; n != nil; n = n.next {
		if !fn(n.value) {
			return
		}
	}
}

// Strings returns the tokens as a slice in append order.
// An empty list returns a non-nil empty slice.
func (l *List) Strings() []string {
	out := make([]string, 0, l.Len())
	l.Each(func(token string) bool {
		out = append(out, token)
		return true
	})
	return out
}
