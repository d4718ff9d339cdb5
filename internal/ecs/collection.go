package ecs

// member is what an ordered collection needs from its elements.
// Both *Entity and Component satisfy it within this package.
type member interface {
	Name() string
	PendingRemoval() bool
	setIndex(i int)
	detach()
}

// collection is an insertion-ordered, name-indexed set of members.
// Iteration for update and draw always follows attachment order, never
// map order. Removal is deferred: members are flagged elsewhere and
// physically dropped only by sweep, so in-progress iteration is never
// invalidated.
type collection[T member] struct {
	order  []T
	byName map[string]T
}

func newCollection[T member]() collection[T] {
	return collection[T]{
		byName: make(map[string]T),
	}
}

// add appends m and assigns its 1-based index. A member whose name is
// already present replaces the old one in place: same slot, same index,
// with the old member detached. Returns the replaced member, if any.
func (c *collection[T]) add(m T) (replaced T, didReplace bool) {
	if c.byName == nil {
		c.byName = make(map[string]T)
	}
	name := m.Name()
	if old, ok := c.byName[name]; ok {
		for i, existing := range c.order {
			if existing.Name() == name {
				c.order[i] = m
				m.setIndex(i + 1)
				break
			}
		}
		c.byName[name] = m
		old.detach()
		return old, true
	}
	c.order = append(c.order, m)
	m.setIndex(len(c.order))
	c.byName[name] = m
	var zero T
	return zero, false
}

// get looks up a member by name. A miss is an expected outcome, not a fault.
func (c *collection[T]) get(name string) (T, bool) {
	m, ok := c.byName[name]
	return m, ok
}

func (c *collection[T]) len() int {
	return len(c.order)
}

// items returns the members in attachment order. The returned slice is
// the collection's own storage; callers iterate, they do not mutate.
func (c *collection[T]) items() []T {
	return c.order
}

// snapshot returns a copy of the members in attachment order.
func (c *collection[T]) snapshot() []T {
	out := make([]T, len(c.order))
	copy(out, c.order)
	return out
}

// sweep physically removes every member flagged for removal, detaching
// each, and reassigns contiguous 1-based indices to the survivors.
// Indices are only touched when at least one member was removed.
// Returns the number of members removed.
func (c *collection[T]) sweep() int {
	removed := 0
	kept := c.order[:0]
	for _, m := range c.order {
		if m.PendingRemoval() {
			delete(c.byName, m.Name())
			m.detach()
			removed++
			continue
		}
		kept = append(kept, m)
	}
	if removed == 0 {
		return 0
	}
	// Clear the tail so removed members are not retained by the backing array.
	var zero T
	for i := len(kept); i < len(c.order); i++ {
		c.order[i] = zero
	}
	c.order = kept
	for i, m := range c.order {
		m.setIndex(i + 1)
	}
	return removed
}
