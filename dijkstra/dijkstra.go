// Package dijkstra implements single-source shortest paths over a
// core.Network with two interchangeable strategies: a full array scan and
// a lazily deleted binary min-heap.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/mdraeger/networks/core"
	"github.com/mdraeger/networks/heaps"
)

// ShortestPaths computes minimum costs and predecessors from source to all
// reachable nodes of network. Arc costs must be non-negative.
//
// The strategy is chosen by options: the default scans the whole
// not-yet-finalized set for the minimum tentative distance (O(V²+E)),
// WithHeap switches to a binary min-heap with lazy deletion
// (O((V+E) log E)). Both strategies yield identical Dist and Pred arrays
// for the same input; the heap is purely an acceleration.
//
// Unreached nodes keep Dist equal to network.Infinity() — the finite
// cost-sum sentinel — and the invalid id as predecessor. Non-reachability
// is a normal outcome, never an error.
func ShortestPaths(network core.Network, source core.NodeID, opts ...Option) (*Result, error) {
	if network == nil {
		return nil, ErrNilNetwork
	}
	if int(source) >= network.NumNodes() {
		return nil, fmt.Errorf("%w: %d, nodes [0,%d)",
			ErrSourceOutOfRange, source, network.NumNodes())
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	st := newState(network, source)
	var err error
	if cfg.UseHeap {
		err = st.runHeap(cfg.NewHeap)
	} else {
		err = st.runArray()
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		Source:  source,
		Dist:    st.dist,
		Pred:    st.pred,
		invalid: st.invalid,
	}, nil
}

// state carries the working arrays of one run. Each call owns its state
// privately; the shared network is never written.
type state struct {
	network core.Network
	source  core.NodeID
	invalid core.NodeID
	dist    []float64
	pred    []core.NodeID
}

func newState(network core.Network, source core.NodeID) *state {
	n := network.NumNodes()
	st := &state{
		network: network,
		source:  source,
		invalid: network.InvalidID(),
		dist:    make([]float64, n),
		pred:    make([]core.NodeID, n),
	}
	inf := network.Infinity()
	for i := range st.dist {
		st.dist[i] = inf
		st.pred[i] = st.invalid
	}
	st.dist[source] = 0

	return st
}

// runArray finalizes nodes by scanning the remaining candidate set for the
// minimum tentative distance, n times. O(V²+E).
func (st *state) runArray() error {
	n := st.network.NumNodes()

	// temporary holds every not-yet-finalized node id.
	temporary := make([]core.NodeID, n)
	for i := range temporary {
		temporary[i] = core.NodeID(i)
	}

	for len(temporary) > 0 {
		// 1) Full scan for the minimum tentative distance. The cost-sum
		//    infinity is finite, so even unreached nodes are eventually
		//    selected and finalized with their sentinel distance.
		minAt, minDist := 0, math.Inf(1)
		for k, v := range temporary {
			if st.dist[v] < minDist {
				minAt, minDist = k, st.dist[v]
			}
		}
		next := temporary[minAt]

		// 2) Remove it from the candidate set; its distance is final.
		temporary[minAt] = temporary[len(temporary)-1]
		temporary = temporary[:len(temporary)-1]

		// 3) Relax its outgoing arcs.
		if err := st.relax(next); err != nil {
			return err
		}
	}

	return nil
}

// runHeap finalizes nodes in heap order, tolerating stale duplicate
// entries: every improvement re-inserts, and a finalized marker suppresses
// extractions whose node is already done. O((V+E) log E).
func (st *state) runHeap(newHeap func(initCap int) heaps.Heap) error {
	n := st.network.NumNodes()
	finalized := make([]bool, n)

	h := newHeap(n)
	h.Insert(st.source, 0)

	for !h.IsEmpty() {
		next, _ := h.FindMin()
		h.DeleteMin()

		// stale entry: a better copy already finalized this node
		if finalized[next] {
			continue
		}
		finalized[next] = true

		if err := st.relaxInto(next, h); err != nil {
			return err
		}
	}

	return nil
}

// relax applies the arc relaxation rule to every neighbor of cur:
// dist[j] > dist[i]+c ⇒ dist[j]=dist[i]+c, pred[j]=i.
func (st *state) relax(cur core.NodeID) error {
	return st.relaxInto(cur, nil)
}

// relaxInto is relax plus an optional heap to re-insert improved nodes
// into (lazy decrease-key).
func (st *state) relaxInto(cur core.NodeID, h heaps.Heap) error {
	for _, adj := range st.network.AdjacentNodes(cur) {
		cost, ok := st.network.Cost(cur, adj)
		if !ok {
			return fmt.Errorf("%w: arc %d→%d", ErrInconsistentNetwork, cur, adj)
		}
		if cost < 0 {
			return fmt.Errorf("%w: arc %d→%d cost=%g", ErrNegativeCost, cur, adj, cost)
		}

		if candidate := st.dist[cur] + cost; st.dist[adj] > candidate {
			st.dist[adj] = candidate
			st.pred[adj] = cur
			if h != nil {
				h.Insert(adj, candidate)
			}
		}
	}

	return nil
}
