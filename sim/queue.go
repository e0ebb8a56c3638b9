// Implements the ReadyQueue, which holds non-owning references to all
// processes eligible for dispatch. Processes are enqueued on arrival and
// re-enqueued at the tail on preemption.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue represents a FIFO queue of processes waiting to be dispatched.
// The engine owns the authoritative process set; the queue holds only
// references into it, in strict enqueue order. Selection policies that
// do not pick the head (SJF, priority) scan the queue contents via Items
// and the chosen process is removed with Remove, preserving the relative
// order of everything else.
type ReadyQueue struct {
	queue []*Process // FIFO queue of ready processes
}

// Enqueue adds a process to the back of the ready queue.
func (rq *ReadyQueue) Enqueue(p *Process) {
	rq.queue = append(rq.queue, p)
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	p := rq.queue[0]
	rq.queue = rq.queue[1:]
	return p
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Len returns the number of processes in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers within the
// sim package may iterate over it but MUST NOT append to or reslice it.
func (rq *ReadyQueue) Items() []*Process {
	return rq.queue
}

// Remove deletes the given process from the queue, keeping the relative
// order of the remaining entries. Returns false if the process is not
// currently queued.
func (rq *ReadyQueue) Remove(p *Process) bool {
	if p == nil {
		return false
	}
	for i, queued := range rq.queue {
		if queued == p {
			rq.queue = append(rq.queue[:i], rq.queue[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the queue. Used when resetting the engine between runs.
func (rq *ReadyQueue) Clear() {
	rq.queue = rq.queue[:0]
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range rq.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
