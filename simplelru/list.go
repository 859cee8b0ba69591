package simplelru

// entry holds one cached key/value pair and its links in the recency list.
// An entry belongs to exactly one entryList at a time; the key index holds
// the same *entry as a non-owning reference.
type entry[K comparable, V any] struct {
	// next and prev point to the neighboring entries in the ring that the
	// list's sentinel root closes, so &l.root stands in for both the element
	// before the front and the element after the back.
	next, prev *entry[K, V]

	// The list this entry is linked into.
	list *entryList[K, V]

	key   K
	value V
}

// prevEntry returns the previous list entry or nil.
func (e *entry[K, V]) prevEntry() *entry[K, V] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// entryList is a doubly linked list of entries ordered from most recently
// used (front) to least recently used (back). Every operation is O(1).
// The zero value is not usable; construct with newList.
type entryList[K comparable, V any] struct {
	root entry[K, V] // sentinel; root.next is the front, root.prev the back
	len  int
}

func newList[K comparable, V any]() *entryList[K, V] {
	l := &entryList[K, V]{}
	return l.init()
}

// init initializes or clears the list.
func (l *entryList[K, V]) init() *entryList[K, V] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
	return l
}

// length returns the number of entries in the list.
func (l *entryList[K, V]) length() int {
	return l.len
}

// back returns the least recently used entry, or nil if the list is empty.
func (l *entryList[K, V]) back() *entry[K, V] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// pushFront allocates a new entry holding key and value and links it as the
// new front. The returned reference stays valid until the entry is removed.
func (l *entryList[K, V]) pushFront(key K, value V) *entry[K, V] {
	e := &entry[K, V]{key: key, value: value}
	e.prev = &l.root
	e.next = l.root.next
	e.prev.next = e
	e.next.prev = e
	e.list = l
	l.len++
	return e
}

// remove unlinks e from the list, clearing its links so the entry does not
// keep neighbors reachable after release.
func (l *entryList[K, V]) remove(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
	e.list = nil
	l.len--
}

// popBack unlinks and returns the back entry, or nil when the list is empty.
// The caller takes ownership of the detached entry.
func (l *entryList[K, V]) popBack() *entry[K, V] {
	e := l.back()
	if e == nil {
		return nil
	}
	l.remove(e)
	return e
}

// moveToFront relinks e as the new front. No-op when e is already the front,
// which also covers the single-entry list.
func (l *entryList[K, V]) moveToFront(e *entry[K, V]) {
	if l.root.next == e {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = &l.root
	e.next = l.root.next
	e.prev.next = e
	e.next.prev = e
}
