package sim

import (
	"testing"
)

func queuePIDs(rq *ReadyQueue) []int {
	pids := make([]int, 0, rq.Len())
	for _, p := range rq.Items() {
		pids = append(pids, p.PID)
	}
	return pids
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestReadyQueue_EnqueueDequeue_IsFIFO(t *testing.T) {
	rq := &ReadyQueue{}
	rq.Enqueue(&Process{PID: 1})
	rq.Enqueue(&Process{PID: 2})
	rq.Enqueue(&Process{PID: 3})

	if rq.Len() != 3 {
		t.Fatalf("Len = %d, want 3", rq.Len())
	}
	for want := 1; want <= 3; want++ {
		p := rq.Dequeue()
		if p == nil || p.PID != want {
			t.Errorf("Dequeue = %v, want PID %d", p, want)
		}
	}
	if rq.Dequeue() != nil {
		t.Error("Dequeue on empty queue should return nil")
	}
}

func TestReadyQueue_Peek_DoesNotRemove(t *testing.T) {
	rq := &ReadyQueue{}
	if rq.Peek() != nil {
		t.Error("Peek on empty queue should return nil")
	}

	rq.Enqueue(&Process{PID: 7})
	if p := rq.Peek(); p == nil || p.PID != 7 {
		t.Errorf("Peek = %v, want PID 7", p)
	}
	if rq.Len() != 1 {
		t.Errorf("Len after Peek = %d, want 1", rq.Len())
	}
}

func TestReadyQueue_Remove_PreservesRelativeOrder(t *testing.T) {
	rq := &ReadyQueue{}
	p1, p2, p3 := &Process{PID: 1}, &Process{PID: 2}, &Process{PID: 3}
	rq.Enqueue(p1)
	rq.Enqueue(p2)
	rq.Enqueue(p3)

	if !rq.Remove(p2) {
		t.Fatal("Remove of a queued process should return true")
	}
	got := queuePIDs(rq)
	want := []int{1, 3}
	if !intSliceEqual(got, want) {
		t.Errorf("queue after Remove: got %v, want %v", got, want)
	}
}

func TestReadyQueue_Remove_MissingOrNil_ReturnsFalse(t *testing.T) {
	rq := &ReadyQueue{}
	rq.Enqueue(&Process{PID: 1})

	if rq.Remove(&Process{PID: 1}) {
		t.Error("Remove should match by reference, not by PID value")
	}
	if rq.Remove(nil) {
		t.Error("Remove(nil) should return false")
	}
	if rq.Len() != 1 {
		t.Errorf("Len = %d, want 1", rq.Len())
	}
}

func TestReadyQueue_Clear_EmptiesQueue(t *testing.T) {
	rq := &ReadyQueue{}
	rq.Enqueue(&Process{PID: 1})
	rq.Enqueue(&Process{PID: 2})

	rq.Clear()

	if rq.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", rq.Len())
	}
}
