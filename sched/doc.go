// Package sched implements path selection for a multipath transport
// connection: given a snapshot of the currently active paths and their live
// congestion telemetry, decide which path (or what fractional weighting across
// paths) should carry the next unit of data.
//
// # Reading Guide
//
// Start with these three files to understand the core:
//   - path.go: PathState snapshots and RTT-based path ranking
//   - decision.go: the Decision type and the no-path sentinel
//   - scheduler.go: the Scheduler dispatch layer and policy factory
//
// # Architecture
//
// Policies are small structs implementing the Policy interface, one file per
// policy:
//   - roundrobin.go: telemetry-free fair rotation
//   - minrtt.go: lowest-RTT path with available window
//   - blest.go: head-of-line blocking estimation with an adaptive lambda
//   - ecf.go: earliest-completion-first with a sticky waiting flag
//   - peekaboo.go: linear contextual bandit over path features (gonum)
//   - priorityload.go: priority-weighted softmax load spreading
//
// The Scheduler owns exactly one policy instance per connection, and the
// policy owns whatever learning state it carries across decisions (cursor,
// lambda, waiting flag, bandit matrices). Decisions are made synchronously;
// neither Scheduler nor any policy is safe for concurrent use.
//
// Congestion control, retransmission and packet framing are external
// collaborators: they produce the telemetry consumed here, and they act on
// the Decision returned.
package sched
