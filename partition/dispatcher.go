package partition

import "sync/atomic"

// Dispatcher hands out partition indices from a Plan to requesting workers
// on demand, one fetch-add at a time. Reset between rounds so that every
// round starts from partition 0 again.
type Dispatcher struct {
	plan   Plan
	cursor atomic.Int64
}

// NewDispatcher returns a Dispatcher over plan, ready to hand out partition
// 0 first.
func NewDispatcher(plan Plan) *Dispatcher {
	return &Dispatcher{plan: plan}
}

// Reset rewinds the dispatcher to the start of the plan. Called once at the
// beginning of every round; the plan itself (partition boundaries) is never
// recomputed.
func (d *Dispatcher) Reset() {
	d.cursor.Store(0)
}

// Next claims and returns the next untaken partition index, or ok=false
// once every partition in the plan has been claimed. Lock-free: a single
// atomic fetch-add, so any partition is claimed by exactly one worker.
func (d *Dispatcher) Next() (idx int, ok bool) {
	i := d.cursor.Add(1) - 1
	if i >= int64(d.plan.Count()) {
		return 0, false
	}
	return int(i), true
}
