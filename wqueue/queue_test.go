package wqueue_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/gridkit/wqueue"
)

func TestPopOrder(t *testing.T) {
	q := wqueue.New[string]()
	q.Add("A", 5)
	q.Add("B", 1)
	q.Add("C", 3)

	var got []string
	for d := q.Drain(); ; {
		item, _, ok := d.Next()
		if !ok {
			break
		}
		got = append(got, item)
	}
	assert.Equal(t, []string{"B", "C", "A"}, got)
	assert.True(t, q.IsEmpty())
}

func TestReAddReplaces(t *testing.T) {
	q := wqueue.New[string]()
	q.Add("A", 5)
	q.Add("A", 2)

	assert.Equal(t, 1, q.Len())
	p, ok := q.Priority("A")
	require.True(t, ok)
	assert.Equal(t, int64(2), p)

	item, prio, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "A", item)
	assert.Equal(t, int64(2), prio)

	_, _, ok = q.Pop()
	assert.False(t, ok, "empty queue signals via ok")
}

func TestTiesAreFIFO(t *testing.T) {
	q := wqueue.New[string]()
	q.Add("A", 1)
	q.Add("B", 1)
	q.Add("C", 1)
	q.Add("A", 1) // re-adding moves A behind the others

	var got []string
	for !q.IsEmpty() {
		item, _, _ := q.Pop()
		got = append(got, item)
	}
	assert.Equal(t, []string{"B", "C", "A"}, got)
}

func TestRemoveAndPeek(t *testing.T) {
	q := wqueue.New[int]()
	_, _, ok := q.Peek()
	assert.False(t, ok)

	q.Add(1, 10)
	q.Add(2, 20)
	q.Add(3, 5)
	assert.True(t, q.Remove(3))
	assert.False(t, q.Remove(3))
	assert.False(t, q.Contains(3))
	_, ok = q.Priority(3)
	assert.False(t, ok)

	item, prio, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, item)
	assert.Equal(t, int64(10), prio)
	assert.Equal(t, 2, q.Len(), "peek does not remove")
}

func TestPointerIdentity(t *testing.T) {
	type node struct{ name string }
	a1, a2 := &node{"a"}, &node{"a"}
	q := wqueue.New[*node]()
	q.Add(a1, 1)
	q.Add(a2, 1)
	assert.Equal(t, 2, q.Len(), "distinct pointers are distinct items")
}

// TestPopMatchesSortedModel compares the queue with a sorted reference
// model under random Add/Remove/Pop sequences.
func TestPopMatchesSortedModel(t *testing.T) {
	type ref struct {
		prio int64
		seq  int
	}
	rapid.Check(t, func(t *rapid.T) {
		q := wqueue.New[int]()
		model := map[int]ref{}
		seq := 0

		ops := rapid.IntRange(1, 60).Draw(t, "ops")
		for i := 0; i < ops; i++ {
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0, 1:
				item := rapid.IntRange(0, 9).Draw(t, "item")
				prio := rapid.Int64Range(-5, 5).Draw(t, "prio")
				seq++
				q.Add(item, prio)
				model[item] = ref{prio, seq}
			case 2:
				item := rapid.IntRange(0, 9).Draw(t, "item")
				_, want := model[item]
				if got := q.Remove(item); got != want {
					t.Fatalf("Remove(%d) = %v, want %v", item, got, want)
				}
				delete(model, item)
			}
			if q.Len() != len(model) {
				t.Fatalf("Len = %d, want %d", q.Len(), len(model))
			}
		}

		keys := make([]int, 0, len(model))
		for k := range model {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			a, b := model[keys[i]], model[keys[j]]
			if a.prio != b.prio {
				return a.prio < b.prio
			}
			return a.seq < b.seq
		})
		for _, want := range keys {
			got, prio, ok := q.Pop()
			if !ok || got != want || prio != model[want].prio {
				t.Fatalf("Pop = (%d,%d,%v), want (%d,%d)", got, prio, ok, want, model[want].prio)
			}
		}
		if !q.IsEmpty() {
			t.Fatalf("queue not drained")
		}
	})
}
