package service

// ListCache holds the ordered dashboard ids last read for one admin session.
// Pages of the manage view are cut from this snapshot, so page 2 shows the same
// ordering as page 1 even if another operator changed the list in between.
//
// A ListCache is not safe for concurrent use; callers serialize requests per session.
// The zero value is an empty cache ready to use. A nil *ListCache behaves as an
// always-empty cache.
type ListCache struct {
	ids []int
}

// IDs returns a copy of the cached ids.
func (c *ListCache) IDs() []int {
	if c == nil {
		return nil
	}
	return append([]int(nil), c.ids...)
}

// Len returns the number of cached ids.
func (c *ListCache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ids)
}

// Invalidate clears the cache so the next read goes to the store.
func (c *ListCache) Invalidate() {
	if c == nil {
		return
	}
	c.ids = nil
}

func (c *ListCache) empty() bool {
	return c == nil || len(c.ids) == 0
}

func (c *ListCache) store(ids []int) {
	if c == nil {
		return
	}
	c.ids = append([]int(nil), ids...)
}
