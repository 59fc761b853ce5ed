package wave

// linkKind selects which pair of next/prev fields on an item a chain
// operation should follow. Two independent chains run through the same
// arena items: the global order list L, and the level queue an item is
// currently filed in (§1's "generic doubly-linked-list utility", reduced
// here to exactly the operations the core needs: push head/tail, pop
// head/tail, iterate in order, delete at iterator).
type linkKind int

const (
	linkL linkKind = iota
	linkLevel
)

// chain is one ordered, doubly linked sequence of arena-resident items.
type chain struct {
	head, tail itemRef
	length     int
}

func newChain() chain {
	return chain{head: nilRef, tail: nilRef}
}

func (a *arena) next(kind linkKind, ref itemRef) itemRef {
	it := a.at(ref)
	if kind == linkL {
		return it.nextL
	}
	return it.nextLevel
}

func (a *arena) prev(kind linkKind, ref itemRef) itemRef {
	it := a.at(ref)
	if kind == linkL {
		return it.prevL
	}
	return it.prevLevel
}

func (a *arena) setNext(kind linkKind, ref, v itemRef) {
	it := a.at(ref)
	if kind == linkL {
		it.nextL = v
	} else {
		it.nextLevel = v
	}
}

func (a *arena) setPrev(kind linkKind, ref, v itemRef) {
	it := a.at(ref)
	if kind == linkL {
		it.prevL = v
	} else {
		it.prevLevel = v
	}
}

// pushHead links ref at the front of c.
func (a *arena) pushHead(c *chain, kind linkKind, ref itemRef) {
	a.setPrev(kind, ref, nilRef)
	a.setNext(kind, ref, c.head)
	if c.head != nilRef {
		a.setPrev(kind, c.head, ref)
	} else {
		c.tail = ref
	}
	c.head = ref
	c.length++
}

// pushTail links ref at the back of c.
func (a *arena) pushTail(c *chain, kind linkKind, ref itemRef) {
	a.setNext(kind, ref, nilRef)
	a.setPrev(kind, ref, c.tail)
	if c.tail != nilRef {
		a.setNext(kind, c.tail, ref)
	} else {
		c.head = ref
	}
	c.tail = ref
	c.length++
}

// popHead unlinks and returns the front of c, or nilRef if c is empty.
func (a *arena) popHead(c *chain, kind linkKind) itemRef {
	ref := c.head
	if ref == nilRef {
		return nilRef
	}
	a.remove(c, kind, ref)
	return ref
}

// popTail unlinks and returns the back of c, or nilRef if c is empty.
func (a *arena) popTail(c *chain, kind linkKind) itemRef {
	ref := c.tail
	if ref == nilRef {
		return nilRef
	}
	a.remove(c, kind, ref)
	return ref
}

// remove splices ref out of c, wherever it currently sits (delete at
// iterator: the caller already knows ref's identity, so this never
// searches).
func (a *arena) remove(c *chain, kind linkKind, ref itemRef) {
	prev := a.prev(kind, ref)
	next := a.next(kind, ref)
	if prev != nilRef {
		a.setNext(kind, prev, next)
	} else {
		c.head = next
	}
	if next != nilRef {
		a.setPrev(kind, next, prev)
	} else {
		c.tail = prev
	}
	a.setPrev(kind, ref, nilRef)
	a.setNext(kind, ref, nilRef)
	c.length--
}
