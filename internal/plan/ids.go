package plan

// IDCounter hands out recipe and phase ids. The first id is 1 and ids are
// never reused until Reset.
type IDCounter struct {
	next int
}

// NewIDCounter returns a counter whose first id is 1
func NewIDCounter() *IDCounter {
	return &IDCounter{next: 1}
}

// Next returns the next id
func (c *IDCounter) Next() int {
	if c.next == 0 {
		c.next = 1
	}
	id := c.next
	c.next++
	return id
}

// Peek returns the id Next would return without consuming it
func (c *IDCounter) Peek() int {
	if c.next == 0 {
		return 1
	}
	return c.next
}

// Reset makes the next id 1 again
func (c *IDCounter) Reset() {
	c.next = 1
}
