package taggedmap_test

import (
	"testing"

	"github.com/amp-labs/tagged/optional"
	"github.com/amp-labs/tagged/sortable"
	"github.com/amp-labs/tagged/tagged"
	"github.com/amp-labs/tagged/taggedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orderID is the phantom tag used throughout the tests.
type orderID struct{}

func key(n int) tagged.Value[orderID, sortable.Int] {
	return tagged.Tag[orderID](sortable.Int(n))
}

func eqString(a, b string) bool { return a == b }

// mapOf builds a map from alternating key/value pairs given as entries.
func mapOf(entries ...taggedmap.Entry[int, string]) taggedmap.Map[orderID, sortable.Int, string] {
	m := taggedmap.Empty[orderID, sortable.Int, string]()
	for _, e := range entries {
		m = m.Insert(key(e.Key), e.Value)
	}

	return m
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	m := taggedmap.Empty[orderID, sortable.Int, string]()
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.Size())
	assert.False(t, m.Member(key(1)))
	assert.True(t, m.Get(key(1)).Empty())
}

func TestSingleton(t *testing.T) {
	t.Parallel()

	m := taggedmap.Singleton(key(1), "one")
	assert.Equal(t, 1, m.Size())
	assert.Equal(t, optional.Some("one"), m.Get(key(1)))
}

func TestInsertGet(t *testing.T) {
	t.Parallel()

	t.Run("fresh key", func(t *testing.T) {
		t.Parallel()

		m := taggedmap.Empty[orderID, sortable.Int, string]().Insert(key(1), "one")
		assert.Equal(t, optional.Some("one"), m.Get(key(1)))
	})

	t.Run("collision replaces the value", func(t *testing.T) {
		t.Parallel()

		m := mapOf(
			taggedmap.Entry[int, string]{Key: 1, Value: "one"},
			taggedmap.Entry[int, string]{Key: 1, Value: "uno"},
		)
		assert.Equal(t, 1, m.Size())
		assert.Equal(t, optional.Some("uno"), m.Get(key(1)))
	})

	t.Run("input map is untouched", func(t *testing.T) {
		t.Parallel()

		before := taggedmap.Singleton(key(1), "one")
		after := before.Insert(key(2), "two")

		assert.Equal(t, 1, before.Size())
		assert.Equal(t, 2, after.Size())
	})
}

func TestRemove(t *testing.T) {
	t.Parallel()

	t.Run("removes present key", func(t *testing.T) {
		t.Parallel()

		m := mapOf(
			taggedmap.Entry[int, string]{Key: 1, Value: "one"},
			taggedmap.Entry[int, string]{Key: 2, Value: "two"},
		).Remove(key(1))

		assert.False(t, m.Member(key(1)))
		assert.True(t, m.Member(key(2)))
	})

	t.Run("absent key is a no-op", func(t *testing.T) {
		t.Parallel()

		m := taggedmap.Singleton(key(1), "one")
		assert.True(t, m.Remove(key(9)).Equal(m, eqString))
	})

	t.Run("insert then remove of a fresh key restores the map", func(t *testing.T) {
		t.Parallel()

		m := mapOf(
			taggedmap.Entry[int, string]{Key: 1, Value: "one"},
			taggedmap.Entry[int, string]{Key: 3, Value: "three"},
		)

		restored := m.Insert(key(2), "two").Remove(key(2))
		assert.True(t, restored.Equal(m, eqString))
	})
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	t.Run("present to present replaces", func(t *testing.T) {
		t.Parallel()

		m := taggedmap.Singleton(key(1), "one").Update(key(1),
			func(current optional.Value[string]) optional.Value[string] {
				return optional.Map(current, func(s string) string { return s + "!" })
			})

		assert.Equal(t, optional.Some("one!"), m.Get(key(1)))
	})

	t.Run("absent to present inserts", func(t *testing.T) {
		t.Parallel()

		m := taggedmap.Empty[orderID, sortable.Int, string]().Update(key(1),
			func(optional.Value[string]) optional.Value[string] {
				return optional.Some("one")
			})

		assert.Equal(t, optional.Some("one"), m.Get(key(1)))
	})

	t.Run("present to absent removes", func(t *testing.T) {
		t.Parallel()

		m := taggedmap.Singleton(key(1), "one").Update(key(1),
			func(optional.Value[string]) optional.Value[string] {
				return optional.None[string]()
			})

		assert.True(t, m.Get(key(1)).Empty())
		assert.True(t, m.IsEmpty())
	})

	t.Run("absent to absent is a no-op", func(t *testing.T) {
		t.Parallel()

		m := taggedmap.Singleton(key(1), "one")
		updated := m.Update(key(9), func(optional.Value[string]) optional.Value[string] {
			return optional.None[string]()
		})

		assert.True(t, updated.Equal(m, eqString))
	})
}

func TestListConversions(t *testing.T) {
	t.Parallel()

	m := mapOf(
		taggedmap.Entry[int, string]{Key: 3, Value: "three"},
		taggedmap.Entry[int, string]{Key: 1, Value: "one"},
		taggedmap.Entry[int, string]{Key: 2, Value: "two"},
	)

	t.Run("keys ascend", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			[]sortable.Int{1, 2, 3},
			m.UntaggedKeys())

		assert.Equal(t,
			[]tagged.Value[orderID, sortable.Int]{key(1), key(2), key(3)},
			m.Keys())
	})

	t.Run("values follow ascending key order", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"one", "two", "three"}, m.Values())
	})

	t.Run("to list ascends", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []taggedmap.Entry[sortable.Int, string]{
			{Key: 1, Value: "one"},
			{Key: 2, Value: "two"},
			{Key: 3, Value: "three"},
		}, m.ToUntaggedList())
	})

	t.Run("from list round trips", func(t *testing.T) {
		t.Parallel()

		rebuilt := taggedmap.FromList(m.ToList())
		assert.True(t, rebuilt.Equal(m, eqString))

		rebuiltUntagged := taggedmap.FromUntaggedList[orderID](m.ToUntaggedList())
		assert.True(t, rebuiltUntagged.Equal(m, eqString))
	})

	t.Run("from list keeps the last duplicate", func(t *testing.T) {
		t.Parallel()

		built := taggedmap.FromUntaggedList[orderID]([]taggedmap.Entry[sortable.Int, string]{
			{Key: 1, Value: "first"},
			{Key: 2, Value: "two"},
			{Key: 1, Value: "last"},
		})

		assert.Equal(t, 2, built.Size())
		assert.Equal(t, optional.Some("last"), built.Get(key(1)))
	})
}

func TestMapValues(t *testing.T) {
	t.Parallel()

	m := mapOf(
		taggedmap.Entry[int, string]{Key: 1, Value: "a"},
		taggedmap.Entry[int, string]{Key: 2, Value: "b"},
	)

	lengths := taggedmap.MapValues(
		func(k tagged.Value[orderID, sortable.Int], v string) int {
			return int(k.Untag()) + len(v)
		}, m)

	assert.Equal(t, optional.Some(2), lengths.Get(key(1)))
	assert.Equal(t, optional.Some(3), lengths.Get(key(2)))
	assert.Equal(t, m.UntaggedKeys(), lengths.UntaggedKeys())
}

func TestFolds(t *testing.T) {
	t.Parallel()

	m := mapOf(
		taggedmap.Entry[int, string]{Key: 1, Value: "a"},
		taggedmap.Entry[int, string]{Key: 2, Value: "b"},
		taggedmap.Entry[int, string]{Key: 3, Value: "c"},
	)

	concat := func(_ tagged.Value[orderID, sortable.Int], v string, acc string) string {
		return acc + v
	}

	assert.Equal(t, "abc", taggedmap.Foldl(concat, "", m))
	assert.Equal(t, "cba", taggedmap.Foldr(concat, "", m))
}

func TestFilterPartition(t *testing.T) {
	t.Parallel()

	m := mapOf(
		taggedmap.Entry[int, string]{Key: 1, Value: "one"},
		taggedmap.Entry[int, string]{Key: 2, Value: "two"},
		taggedmap.Entry[int, string]{Key: 3, Value: "three"},
		taggedmap.Entry[int, string]{Key: 4, Value: "four"},
	)

	isEven := func(k tagged.Value[orderID, sortable.Int], _ string) bool {
		return int(k.Untag())%2 == 0
	}

	t.Run("filter", func(t *testing.T) {
		t.Parallel()

		even := m.Filter(isEven)
		assert.Equal(t, []sortable.Int{2, 4}, even.UntaggedKeys())
	})

	t.Run("partition", func(t *testing.T) {
		t.Parallel()

		even, odd := m.Partition(isEven)
		assert.Equal(t, []sortable.Int{2, 4}, even.UntaggedKeys())
		assert.Equal(t, []sortable.Int{1, 3}, odd.UntaggedKeys())
	})
}

func TestSetAlgebra(t *testing.T) {
	t.Parallel()

	left := mapOf(taggedmap.Entry[int, string]{Key: 1, Value: "x"})
	right := mapOf(
		taggedmap.Entry[int, string]{Key: 1, Value: "y"},
		taggedmap.Entry[int, string]{Key: 2, Value: "z"},
	)

	t.Run("union prefers the left value on collision", func(t *testing.T) {
		t.Parallel()

		u := left.Union(right)
		assert.Equal(t, 2, u.Size())
		assert.Equal(t, optional.Some("x"), u.Get(key(1)))
		assert.Equal(t, optional.Some("z"), u.Get(key(2)))
	})

	t.Run("intersect keeps left values for shared keys", func(t *testing.T) {
		t.Parallel()

		i := left.Intersect(right)
		assert.Equal(t, []sortable.Int{1}, i.UntaggedKeys())
		assert.Equal(t, optional.Some("x"), i.Get(key(1)))
	})

	t.Run("diff keeps left-only keys", func(t *testing.T) {
		t.Parallel()

		d := right.Diff(left)
		assert.Equal(t, []sortable.Int{2}, d.UntaggedKeys())
	})
}

func TestMerge(t *testing.T) {
	t.Parallel()

	type visit struct {
		key  int
		kind string
	}

	left := mapOf(
		taggedmap.Entry[int, string]{Key: 1, Value: "l1"},
		taggedmap.Entry[int, string]{Key: 2, Value: "l2"},
		taggedmap.Entry[int, string]{Key: 5, Value: "l5"},
	)
	right := taggedmap.FromUntaggedList[orderID]([]taggedmap.Entry[sortable.Int, int]{
		{Key: 2, Value: 20},
		{Key: 3, Value: 30},
		{Key: 6, Value: 60},
	})

	visits := taggedmap.Merge(
		func(k tagged.Value[orderID, sortable.Int], _ string, acc []visit) []visit {
			return append(acc, visit{key: int(k.Untag()), kind: "left"})
		},
		func(k tagged.Value[orderID, sortable.Int], _ string, _ int, acc []visit) []visit {
			return append(acc, visit{key: int(k.Untag()), kind: "both"})
		},
		func(k tagged.Value[orderID, sortable.Int], _ int, acc []visit) []visit {
			return append(acc, visit{key: int(k.Untag()), kind: "right"})
		},
		left, right, nil)

	// Every key across both maps appears exactly once, in ascending order,
	// classified into exactly one of the three categories.
	assert.Equal(t, []visit{
		{key: 1, kind: "left"},
		{key: 2, kind: "both"},
		{key: 3, kind: "right"},
		{key: 5, kind: "left"},
		{key: 6, kind: "right"},
	}, visits)
}

func TestMergeEdgeCases(t *testing.T) {
	t.Parallel()

	count := func(_ tagged.Value[orderID, sortable.Int], _ string, acc int) int {
		return acc + 1
	}
	countBoth := func(tagged.Value[orderID, sortable.Int], string, string, int) int {
		panic("no shared keys expected")
	}

	t.Run("both empty", func(t *testing.T) {
		t.Parallel()

		total := taggedmap.Merge(count, countBoth, count,
			taggedmap.Empty[orderID, sortable.Int, string](),
			taggedmap.Empty[orderID, sortable.Int, string](), 0)
		assert.Equal(t, 0, total)
	})

	t.Run("disjoint maps visit every key", func(t *testing.T) {
		t.Parallel()

		left := mapOf(
			taggedmap.Entry[int, string]{Key: 1, Value: "a"},
			taggedmap.Entry[int, string]{Key: 3, Value: "c"},
		)
		right := mapOf(
			taggedmap.Entry[int, string]{Key: 2, Value: "b"},
			taggedmap.Entry[int, string]{Key: 4, Value: "d"},
		)

		total := taggedmap.Merge(count, countBoth, count, left, right, 0)
		assert.Equal(t, 4, total)
	})
}

func TestSeq(t *testing.T) {
	t.Parallel()

	m := mapOf(
		taggedmap.Entry[int, string]{Key: 2, Value: "two"},
		taggedmap.Entry[int, string]{Key: 1, Value: "one"},
		taggedmap.Entry[int, string]{Key: 3, Value: "three"},
	)

	t.Run("ascending with tagged keys", func(t *testing.T) {
		t.Parallel()

		var keys []int
		for k, v := range m.Seq() {
			require.NotEmpty(t, v)

			keys = append(keys, int(k.Untag()))
		}

		assert.Equal(t, []int{1, 2, 3}, keys)
	})

	t.Run("descending", func(t *testing.T) {
		t.Parallel()

		var keys []int
		for k := range m.SeqDesc() {
			keys = append(keys, int(k.Untag()))
		}

		assert.Equal(t, []int{3, 2, 1}, keys)
	})
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := mapOf(
		taggedmap.Entry[int, string]{Key: 1, Value: "one"},
		taggedmap.Entry[int, string]{Key: 2, Value: "two"},
	)
	b := mapOf(
		taggedmap.Entry[int, string]{Key: 2, Value: "two"},
		taggedmap.Entry[int, string]{Key: 1, Value: "one"},
	)
	c := mapOf(taggedmap.Entry[int, string]{Key: 1, Value: "one"})

	assert.True(t, a.Equal(b, eqString))
	assert.False(t, a.Equal(c, eqString))
	assert.False(t, a.Equal(
		b.Insert(key(2), "deux"), eqString))
}
