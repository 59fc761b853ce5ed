package wave

// Get approximates the sum of increments admitted with timestamps in the
// half-open window (ts-N, ts] (§4.3). It never mutates the wave. fast
// selects the midpoint estimator; otherwise a full traversal of L refines
// the answer. Both first walk a cursor along L, so either costs O(|L|)
// time.
func (w *Wave) Get(ts int64, fast bool) int64 {
	if ts < w.start {
		return 0
	}
	if ts <= w.last-w.params.N {
		return 0
	}
	if ts >= w.last+w.params.N {
		return 0
	}

	if ts == w.last {
		return w.total - w.z
	}
	if w.l.head == nilRef {
		return 0
	}

	// Advance a cursor from the head to the first item whose position is
	// no older than ts-N; if the list is exhausted first, the cursor
	// stays on the last item reached.
	cur := w.l.head
	for w.a.at(cur).pos < ts-w.params.N {
		nxt := w.a.next(linkL, cur)
		if nxt == nilRef {
			break
		}
		cur = nxt
	}
	head := w.a.at(cur)
	p, v2, z2 := head.pos, head.v, head.z
	z1 := w.z

	if p == ts-w.params.N+1 {
		return w.total - z2 + v2
	}
	if p == ts-w.params.N {
		return w.total - z2
	}
	if ts == w.pos {
		return w.total - w.z
	}

	if fast {
		return w.total - floorDiv(z1+z2-v2, 2)
	}

	if ts < w.last {
		// Past query: subtract out everything admitted after ts.
		var futureTotal int64
		limit := modM(ts-w.start, w.m)
		for cur := w.l.tail; cur != nilRef; cur = w.a.prev(linkL, cur) {
			it := w.a.at(cur)
			if it.pos <= limit {
				futureTotal += it.v
			}
		}
		return w.total - futureTotal
	}

	// Future query: sum every live item still inside the window.
	var winTotal int64
	limit := modM(ts-w.start-w.params.N, w.m)
	for cur := w.l.head; cur != nilRef; cur = w.a.next(linkL, cur) {
		it := w.a.at(cur)
		if it.pos > limit {
			winTotal += it.v
		}
	}
	return winTotal
}
