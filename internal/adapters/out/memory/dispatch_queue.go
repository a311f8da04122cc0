package memory

import (
	"container/heap"
	"context"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

// queuedParcel is one staged entry of the dispatch queue: a parcel snapshot
// frozen at load time plus its arrival number.
type queuedParcel struct {
	parcel *parcel.Parcel
	seq    uint64
}

// dispatchHeap orders staged parcels by urgency, then by arrival.
// It implements heap.Interface; the head is always the next parcel to leave.
type dispatchHeap []queuedParcel

func (h dispatchHeap) Len() int { return len(h) }

func (h dispatchHeap) Less(i, j int) bool {
	if h[i].parcel.Priority() != h[j].parcel.Priority() {
		return h[i].parcel.Priority().MoreUrgentThan(h[j].parcel.Priority())
	}
	return h[i].seq < h[j].seq
}

func (h dispatchHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *dispatchHeap) Push(x any) {
	*h = append(*h, x.(queuedParcel))
}

func (h *dispatchHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// storeDispatchQueue implements DispatchQueue over the store's heap.
type storeDispatchQueue struct {
	store *Store
}

// Enqueue stages a snapshot of the parcel for dispatch.
// The snapshot is frozen at load time; later registry updates do not reach it.
func (q *storeDispatchQueue) Enqueue(_ context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	heap.Push(&q.store.queue, queuedParcel{
		parcel: aggregate.Snapshot(),
		seq:    q.store.nextSeq,
	})
	q.store.nextSeq++
	return nil
}

// DequeueNext removes and returns the most urgent staged parcel.
// Parcels of equal urgency leave in the order they were staged.
func (q *storeDispatchQueue) DequeueNext(_ context.Context) (*parcel.Parcel, error) {
	if q.store.queue.Len() == 0 {
		return nil, errs.NewCollectionIsEmptyError("dispatch queue")
	}

	item := heap.Pop(&q.store.queue).(queuedParcel)
	return item.parcel, nil
}
