// Package engine wires the partitioner, concurrent union-find, minimum-edge
// selector, and contraction engine into the round loop: reset the
// dispatcher, fan workers out over the partition plan to select a minimum
// candidate edge per active component, barrier, contract every candidate,
// barrier, repeat until a round publishes no candidates at all.
//
// Round barriers are implemented with golang.org/x/sync/errgroup: one
// errgroup.Group per phase (select, contract), one g.Go per worker
// goroutine pulling partitions from the shared Dispatcher, g.Wait() as the
// barrier. Workers never wait on each other mid-phase, only at the
// barrier between phases — any other coordination within a round happens
// through atomics in unionfind and selector.
package engine
