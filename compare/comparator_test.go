package compare

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/amp-labs/seqkit/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name string
	Age  int
}

// rank implements LessThan the way the sortable wrapper types do.
type rank int

func (r rank) LessThan(other rank) bool {
	return r < other
}

func TestDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, Default(1, 5))
	assert.Equal(t, 1, Default(5, 1))
	assert.Equal(t, 0, Default(3, 3))
	assert.Equal(t, -1, Default("apple", "banana"))
	assert.Equal(t, -1, Default(math.NaN(), -math.MaxFloat64))
}

func TestOrDefaultAndOrNatural(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, OrDefault[int](nil)(1, 2))
	assert.Equal(t, 1, OrDefault(Reverse(Default[int]))(1, 2))
	assert.Equal(t, -1, OrNatural[int](nil)(1, 2))
	assert.Equal(t, 1, OrNatural(Reverse(Natural[int]))(1, 2))
}

func TestReverse(t *testing.T) {
	t.Parallel()

	values := []int{3, 1, 2}
	slices.SortFunc(values, Reverse(Default[int]))

	assert.Equal(t, []int{3, 2, 1}, values)
}

func TestHumanString(t *testing.T) {
	t.Parallel()

	files := []string{"file10", "file2", "file1"}
	slices.SortFunc(files, HumanString)

	assert.Equal(t, []string{"file1", "file2", "file10"}, files)
	assert.Equal(t, 0, HumanString("same", "same"))
	assert.Equal(t, 1, HumanString("file10", "file9"))
}

func TestNatural(t *testing.T) {
	t.Parallel()

	t.Run("numbers and strings", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, -1, Natural(1, 2))
		assert.Equal(t, 1, Natural(uint8(9), uint8(2)))
		assert.Equal(t, 0, Natural(2.5, 2.5))
		assert.Equal(t, -1, Natural("a", "b"))
	})

	t.Run("bools order false first", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, -1, Natural(false, true))
		assert.Equal(t, 0, Natural(true, true))
	})

	t.Run("mixed dynamic values", func(t *testing.T) {
		t.Parallel()

		values := []any{true, 5, 2, false, 3.5}
		slices.SortFunc(values, Natural[any])

		assert.Equal(t, []any{false, true, 2, 3.5, 5}, values)
	})

	t.Run("LessThan types", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, -1, Natural(rank(1), rank(2)))
		assert.Equal(t, 1, Natural(rank(2), rank(1)))
		assert.Equal(t, 0, Natural(rank(2), rank(2)))
	})

	t.Run("time", func(t *testing.T) {
		t.Parallel()

		now := time.Now()
		assert.Equal(t, -1, Natural(now, now.Add(time.Second)))
	})

	t.Run("unsupported types panic", func(t *testing.T) {
		t.Parallel()

		defer func() {
			recovered := recover()
			require.NotNil(t, recovered)

			err, ok := recovered.(error)
			require.True(t, ok)
			require.ErrorIs(t, err, errors.ErrUnsupportedType)
		}()

		Natural(person{Name: "a"}, person{Name: "b"})
	})
}

func TestKeys(t *testing.T) {
	t.Parallel()

	t.Run("lexicographic chain", func(t *testing.T) {
		t.Parallel()

		people := []person{
			{Name: "carol", Age: 30},
			{Name: "alice", Age: 30},
			{Name: "bob", Age: 25},
		}

		slices.SortFunc(people, Keys(
			By(func(p person) int { return p.Age }),
			By(func(p person) string { return p.Name }),
		))

		assert.Equal(t, []person{
			{Name: "bob", Age: 25},
			{Name: "alice", Age: 30},
			{Name: "carol", Age: 30},
		}, people)
	})

	t.Run("parity then descending", func(t *testing.T) {
		t.Parallel()

		values := []int{1, 1, 3, 4, 6, 8}
		slices.SortFunc(values, Keys(
			By(func(n int) int { return n & 1 }),
			By(func(n int) int { return -n }),
		))

		assert.Equal(t, []int{8, 6, 4, 3, 1, 1}, values)
	})

	t.Run("all keys tie", func(t *testing.T) {
		t.Parallel()

		c := Keys(By(func(n int) int { return n % 2 }))
		assert.Equal(t, 0, c(2, 4))
	})

	t.Run("no keys falls back to natural order", func(t *testing.T) {
		t.Parallel()

		c := Keys[int]()
		assert.Equal(t, -1, c(1, 2))
		assert.Equal(t, 1, c(2, 1))
		assert.Equal(t, 0, c(2, 2))
	})
}
