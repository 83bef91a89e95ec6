package decoder

import (
	"fmt"

	"marvel-metadata/core/jsonvalue"
)

// Resolver replaces integer pool references with the values they point to.
//
// A Resolver is bound to one pool and is not safe for concurrent use; it counts the
// out-of-range references it has replaced with null. Each container entry is resolved
// once and shared by every later reference, so resolution time grows with the pool
// size rather than with the number of paths through it.
type Resolver struct {
	pool       []jsonvalue.Value
	maxDepth   int
	outOfRange int

	memo   map[int]resolvedEntry
	active map[int]bool
}

// resolvedEntry is a fully resolved container entry.
type resolvedEntry struct {
	value jsonvalue.Value
	// height is the number of nested container levels in value.
	height int
	// outOfRange is how many null-resolved references value holds.
	outOfRange int
}

// NewResolver creates a resolver over pool.
func NewResolver(pool []jsonvalue.Value, opts Options) *Resolver {
	return &Resolver{
		pool:     pool,
		maxDepth: opts.maxDepth(),
		memo:     make(map[int]resolvedEntry),
		active:   make(map[int]bool),
	}
}

// OutOfRange returns how many references pointed outside the pool so far.
func (r *Resolver) OutOfRange() int {
	return r.outOfRange
}

// Resolve returns v with every reference resolved.
//
//   - Booleans, strings, floats and null are returned unchanged.
//   - An integer i refers to pool[i]. A primitive entry is the final value; a
//     container entry is resolved in turn. An index outside the pool becomes null.
//   - Arrays resolve item by item, objects value by value (keys are never references).
//
// Resolution fails with ErrResolutionDepthExceeded instead of descending past the
// depth ceiling. A container entry that refers back to itself always fails.
func (r *Resolver) Resolve(v jsonvalue.Value) (jsonvalue.Value, error) {
	out, _, err := r.resolve(v, 0)
	return out, err
}

// resolve returns the resolved value and its container height.
func (r *Resolver) resolve(v jsonvalue.Value, depth int) (jsonvalue.Value, int, error) {
	switch v.Kind() {
	case jsonvalue.KindNull, jsonvalue.KindBool, jsonvalue.KindString:
		return v, 0, nil

	case jsonvalue.KindNumber:
		if !v.IsInteger() {
			return v, 0, nil
		}
		i, ok := v.AsInt()
		if !ok || i < 0 || i >= int64(len(r.pool)) {
			r.outOfRange++
			return jsonvalue.Null(), 0, nil
		}
		target := r.pool[i]
		switch target.Kind() {
		case jsonvalue.KindArray, jsonvalue.KindObject:
			return r.resolveEntry(int(i), depth)
		default:
			return target, 0, nil
		}

	case jsonvalue.KindArray:
		if err := r.checkDepth(depth); err != nil {
			return jsonvalue.Value{}, 0, err
		}
		height := 0
		items := make([]jsonvalue.Value, 0, v.Len())
		for _, item := range v.Items() {
			resolved, h, err := r.resolve(item, depth+1)
			if err != nil {
				return jsonvalue.Value{}, 0, err
			}
			height = max(height, h)
			items = append(items, resolved)
		}
		return jsonvalue.Array(items...), height + 1, nil

	case jsonvalue.KindObject:
		if err := r.checkDepth(depth); err != nil {
			return jsonvalue.Value{}, 0, err
		}
		height := 0
		members := make([]jsonvalue.Member, 0, v.Len())
		for _, m := range v.Members() {
			resolved, h, err := r.resolve(m.Value, depth+1)
			if err != nil {
				return jsonvalue.Value{}, 0, err
			}
			height = max(height, h)
			members = append(members, jsonvalue.Member{Key: m.Key, Value: resolved})
		}
		return jsonvalue.Object(members...), height + 1, nil
	}

	return v, 0, nil
}

// resolveEntry resolves the container at pool[i] placed at depth, reusing an earlier
// resolution when there is one.
func (r *Resolver) resolveEntry(i, depth int) (jsonvalue.Value, int, error) {
	if e, ok := r.memo[i]; ok {
		// The deepest container of the shared value lands at depth+height-1.
		if err := r.checkDepth(depth + e.height - 1); err != nil {
			return jsonvalue.Value{}, 0, err
		}
		r.outOfRange += e.outOfRange
		return e.value, e.height, nil
	}
	if r.active[i] {
		return jsonvalue.Value{}, 0, fmt.Errorf("%w: pool entry %d refers to itself", ErrResolutionDepthExceeded, i)
	}

	r.active[i] = true
	before := r.outOfRange
	value, height, err := r.resolve(r.pool[i], depth)
	delete(r.active, i)
	if err != nil {
		return jsonvalue.Value{}, 0, err
	}

	r.memo[i] = resolvedEntry{value: value, height: height, outOfRange: r.outOfRange - before}
	return value, height, nil
}

func (r *Resolver) checkDepth(depth int) error {
	if depth >= r.maxDepth {
		return fmt.Errorf("%w: more than %d levels", ErrResolutionDepthExceeded, r.maxDepth)
	}
	return nil
}
