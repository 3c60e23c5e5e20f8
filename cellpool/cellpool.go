// Package cellpool provides the interleaved cell memory pool backing the
// terrain map: a single contiguous allocation of records, a bump arena
// carving fixed-size runs out of it, and a bounds-checked 2D slice over a
// run. The pool is generic over the stored record; Cell is the layout the
// hydrology map stores.
//
// Properties are stored interleaved rather than as parallel field vectors
// so that a tile's working set stays contiguous. The pool acts as the
// base for sliceable, indexable map regions.
package cellpool

import "image"

// Cell is a unit of the simulated terrain: elevation, the water flux
// through the column, and its horizontal momentum. The Track fields
// accumulate sub-step contributions which the simulation folds into the
// primary fields at the end of each pass.
type Cell struct {
	Height    float32
	Discharge float32
	MomentumX float32
	MomentumY float32

	DischargeTrack float32
	MomentumXTrack float32
	MomentumYTrack float32
}

// Buffer names a contiguous run of records inside a pool's backing store.
// Buffers do not own their records; the pool does. The zero Buffer is
// null: Len reports 0 and every At returns nil.
type Buffer[T any] struct {
	cells []T
}

// Len returns the number of records the buffer addresses.
func (b Buffer[T]) Len() int {
	return len(b.cells)
}

// At returns the record at flat offset i, or nil if i is outside the
// buffer.
func (b Buffer[T]) At(i int) *T {
	if i < 0 || i >= len(b.cells) {
		return nil
	}
	return &b.cells[i]
}

// Pool is a bump arena over one contiguous allocation. The whole backing
// store is reserved once; Acquire advances a single free span and nothing
// is ever returned to it. The tile layout of a map is static for the life
// of the process, so a reclaiming allocator buys nothing here.
//
// Pools are not safe for concurrent use; the map is populated once at
// startup by a single owner.
type Pool[T any] struct {
	root []T
	next int
}

// NewPool reserves a pool holding capacity records.
func NewPool[T any](capacity int) *Pool[T] {
	p := &Pool[T]{}
	p.Reserve(capacity)
	return p
}

// Reserve allocates the root store. Call once, before any Acquire.
func (p *Pool[T]) Reserve(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	p.root = make([]T, capacity)
	p.next = 0
}

// Cap returns the total capacity of the root store.
func (p *Pool[T]) Cap() int {
	return len(p.root)
}

// Free returns the remaining unallocated capacity.
func (p *Pool[T]) Free() int {
	return len(p.root) - p.next
}

// Acquire carves a run of exactly count records off the free span, or
// returns the null Buffer if count is not positive, exceeds the remaining
// free capacity, or the pool was never reserved. A failed Acquire does not
// change the free capacity. Callers must check Len before use.
func (p *Pool[T]) Acquire(count int) Buffer[T] {
	if count <= 0 || count > p.Free() {
		return Buffer[T]{}
	}
	b := Buffer[T]{cells: p.root[p.next : p.next+count : p.next+count]}
	p.next += count
	return b
}

// Slice is a non-owning 2D window over a buffer: res.X by res.Y records
// in row-major order. A slice's records remain valid as long as its pool
// does.
type Slice[T any] struct {
	buf Buffer[T]
	res image.Point
}

// NewSlice wraps a buffer in a 2D window of the given resolution. The
// window must not address more records than the buffer holds; a larger
// request yields an unbound slice whose Get always misses.
func NewSlice[T any](buf Buffer[T], res image.Point) Slice[T] {
	if res.X < 0 || res.Y < 0 || res.X*res.Y > buf.Len() {
		return Slice[T]{res: res}
	}
	return Slice[T]{buf: buf, res: res}
}

// Res returns the slice's 2D resolution.
func (s Slice[T]) Res() image.Point {
	return s.res
}

// Size returns the number of records the slice addresses.
func (s Slice[T]) Size() int {
	return s.res.X * s.res.Y
}

// OutOfBounds reports whether p falls outside the slice's local
// coordinate range [0,res.X) x [0,res.Y).
func (s Slice[T]) OutOfBounds(p image.Point) bool {
	if p.X >= s.res.X {
		return true
	}
	if p.Y >= s.res.Y {
		return true
	}
	if p.X < 0 {
		return true
	}
	if p.Y < 0 {
		return true
	}
	return false
}

// Get returns the record at local point p, or nil if p is out of bounds
// or the slice is unbound. Out-of-bounds lookups are routine at world
// edges and tile seams, so a miss is a value, not an error.
func (s Slice[T]) Get(p image.Point) *T {
	if s.buf.Len() == 0 {
		return nil
	}
	if s.OutOfBounds(p) {
		return nil
	}
	return s.buf.At(p.Y*s.res.X + p.X)
}
