// Package cache provides a small bounded memoization table with
// insertion-order (FIFO) eviction.
//
// It backs the formatter cache in pkg/format and the slot parse cache in
// pkg/slots, where the same (locale, options) or template keys are
// requested repeatedly and the cached values are purely derived: clearing
// a cache never affects correctness, only performance.
//
//	c := cache.NewFIFO[string](50)
//	c.Set("en", "cached")
//	v, ok := c.Get("en")
//
// The cache is mutex-guarded and safe for concurrent use.
package cache
