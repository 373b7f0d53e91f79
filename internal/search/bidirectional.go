// Package search implements a bidirectional breadth-first search over any
// state space whose moves can be inverted.
package search

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// ErrExhausted is returned when both frontiers run dry without meeting,
// i.e. the goal cannot be reached with the permitted moves.
var ErrExhausted = errors.New("search: state space exhausted before frontiers met")

// cancelCheckInterval is how many expansions run between context checks.
const cancelCheckInterval = 1024

// Problem describes a state space. S is the full state, K the reduced key
// that decides when two states are the same, and M a move.
type Problem[S any, K comparable, M any] struct {
	// Moves are tried in this order for every expanded state.
	Moves []M
	// Apply returns the state reached by performing m in s.
	Apply func(s S, m M) S
	// Key reduces a state to its identity for this search.
	Key func(s S) K
	// Inverse returns the move that undoes m.
	Inverse func(m M) M
}

// Result is the outcome of a successful search.
type Result[M any] struct {
	// Moves lead from the start to a state whose key equals the goal key.
	Moves []M
	// Expanded counts states taken off the queue.
	Expanded int
	// Forward and Backward count keys recorded from each end, roots included.
	Forward  int
	Backward int
}

type direction uint8

const (
	forward direction = iota
	backward
)

func (d direction) opposite() direction {
	return 1 - d
}

// step records how a key was first reached from one end.
type step[K comparable, M any] struct {
	parent K
	move   M
	root   bool
}

type item[S any, K comparable] struct {
	state S
	key   K
	dir   direction
}

// Bidirectional searches from start and goal at the same time. Both
// frontiers share one FIFO queue, seeded start first, so expansions
// alternate level by level. A key keeps the path of its first visit. The
// search stops as soon as a newly recorded key has also been recorded from
// the other end.
//
// When start and goal share a key the result is empty. When the queue
// drains ErrExhausted is returned, and a cancelled ctx stops the search
// with ctx.Err().
func Bidirectional[S any, K comparable, M any](ctx context.Context, p Problem[S, K, M], start, goal S) (Result[M], error) {
	startKey, goalKey := p.Key(start), p.Key(goal)

	var res Result[M]
	if startKey == goalKey {
		res.Forward, res.Backward = 1, 1
		return res, nil
	}

	history := [2]map[K]step[K, M]{
		forward:  {startKey: {root: true}},
		backward: {goalKey: {root: true}},
	}
	queue := newQueue[item[S, K]]()
	queue.push(item[S, K]{state: start, key: startKey, dir: forward})
	queue.push(item[S, K]{state: goal, key: goalKey, dir: backward})

	for !queue.empty() {
		if res.Expanded%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return res, fmt.Errorf("search cancelled after %d expansions: %w", res.Expanded, err)
			}
		}

		cur := queue.pop()
		res.Expanded++
		seen := history[cur.dir]

		for _, m := range p.Moves {
			next := p.Apply(cur.state, m)
			key := p.Key(next)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = step[K, M]{parent: cur.key, move: m}

			if _, ok := history[cur.dir.opposite()][key]; ok {
				res.Moves = join(p, history, key)
				res.Forward, res.Backward = len(history[forward]), len(history[backward])
				return res, nil
			}

			queue.push(item[S, K]{state: next, key: key, dir: cur.dir})
		}
	}

	res.Forward, res.Backward = len(history[forward]), len(history[backward])
	return res, ErrExhausted
}

// join builds the full path through the meeting key: the forward path from
// the start, then the backward path walked in reverse with every move
// inverted.
func join[S any, K comparable, M any](p Problem[S, K, M], history [2]map[K]step[K, M], meet K) []M {
	head := trace(history[forward], meet)
	slices.Reverse(head)

	// trace yields the backward moves last-first, which is already the
	// order they must be undone in.
	for _, m := range trace(history[backward], meet) {
		head = append(head, p.Inverse(m))
	}
	return head
}

// trace follows parents from key to the root and returns the moves in the
// order they were walked, i.e. last move first.
func trace[K comparable, M any](h map[K]step[K, M], key K) []M {
	var moves []M
	for s := h[key]; !s.root; s = h[s.parent] {
		moves = append(moves, s.move)
	}
	return moves
}
