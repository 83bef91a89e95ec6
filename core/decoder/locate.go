package decoder

import (
	"fmt"

	"marvel-metadata/core/jsonvalue"
)

// DefaultMaxDepth is the depth ceiling used when Options.MaxDepth is not set.
const DefaultMaxDepth = 64

// Options tunes decoding. The zero value uses defaults.
type Options struct {
	// MaxDepth bounds both the fallback pool search and reference resolution.
	MaxDepth int
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// LocatePool returns the pool array of a payload.
//
// The conventional location is payload.nodes[2].data. When that is missing or is not
// an array, the whole tree is searched for arrays holding at least one object whose
// detailUrl is still an integer reference; the longest such array wins, and among
// equal lengths the first one met in pre-order.
func LocatePool(payload jsonvalue.Value, opts Options) (jsonvalue.Value, error) {
	if pool, ok := conventionalPool(payload); ok {
		return pool, nil
	}

	maxDepth := opts.maxDepth()
	var (
		best  jsonvalue.Value
		found bool
	)

	var walk func(v jsonvalue.Value, depth int) error
	walk = func(v jsonvalue.Value, depth int) error {
		switch v.Kind() {
		case jsonvalue.KindArray, jsonvalue.KindObject:
			if depth >= maxDepth {
				return fmt.Errorf("%w: payload nests deeper than %d levels", ErrResolutionDepthExceeded, maxDepth)
			}
		default:
			return nil
		}

		if v.Kind() == jsonvalue.KindArray {
			if looksLikePool(v) && (!found || v.Len() > best.Len()) {
				best, found = v, true
			}
			for _, item := range v.Items() {
				if err := walk(item, depth+1); err != nil {
					return err
				}
			}
			return nil
		}

		for _, m := range v.Members() {
			if err := walk(m.Value, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(payload, 0); err != nil {
		return jsonvalue.Value{}, err
	}
	if !found {
		return jsonvalue.Value{}, ErrPoolNotFound
	}
	return best, nil
}

func conventionalPool(payload jsonvalue.Value) (jsonvalue.Value, bool) {
	nodes, ok := payload.Get("nodes")
	if !ok || nodes.Kind() != jsonvalue.KindArray || nodes.Len() < 3 {
		return jsonvalue.Value{}, false
	}
	node, _ := nodes.Index(2)
	data, ok := node.Get("data")
	if !ok || data.Kind() != jsonvalue.KindArray {
		return jsonvalue.Value{}, false
	}
	return data, true
}

// looksLikePool reports whether any element is an object with an unresolved
// (integer) detailUrl.
func looksLikePool(arr jsonvalue.Value) bool {
	for _, item := range arr.Items() {
		if detail, ok := item.Get("detailUrl"); ok && detail.IsInteger() {
			return true
		}
	}
	return false
}
