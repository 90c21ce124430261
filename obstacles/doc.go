// Package obstacles supplies grids for the search engine: a fixed reference
// warehouse layout, empty floors, and randomly scattered obstacles.
//
// Random layouts come from a Generator that owns its own seeded source, so
// the same seed always yields the same grid and no process-wide random state
// is involved. Generate places exactly the requested number of distinct
// obstacles and never covers a cell listed as kept free (typically the start
// and the goal).
//
// A Generator is not safe for concurrent use; give each goroutine its own.
package obstacles
