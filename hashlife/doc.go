// Package hashlife implements a memoized quadtree simulator for
// Conway-style two-state cellular automata. It models an optionally
// infinite two-dimensional grid of binary cells and advances it one
// generation at a time, exploiting structural sharing across the quadtree
// so that identical subpatterns are computed once and reused.
//
// The public surface is the [Hashlife] type. Internally, quadtree [Node]
// values are hash-consed through a per-engine interning cache so that
// content-equivalent subtrees are represented by a single canonical
// pointer, making subtree equality and the step memo table both
// pointer-identity operations.
//
// hashlife is single-threaded and synchronous: every call mutates the
// engine's cache in place, and concurrent use of one [Hashlife] from
// multiple goroutines is unsupported and undefined. Independent engines
// are fully isolated from one another.
package hashlife
