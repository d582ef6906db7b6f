package sortable

import (
	"math"
	"slices"
	"testing"

	"github.com/amp-labs/seqkit/compare"
	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, Compare(Int(1), Int(2)))
	assert.Equal(t, 1, Compare(Byte('z'), Byte('a')))
	assert.Equal(t, 0, Compare(String("x"), String("x")))
}

func TestSortFunc(t *testing.T) {
	t.Parallel()

	ints := []Int{5, 3, 7}
	slices.SortFunc(ints, Compare[Int])
	assert.Equal(t, []Int{3, 5, 7}, ints)

	versions := []HumanString{"v10", "v2", "v1"}
	slices.SortFunc(versions, Compare[HumanString])
	assert.Equal(t, []HumanString{"v1", "v2", "v10"}, versions)
}

func TestFloatNaN(t *testing.T) {
	t.Parallel()

	nan := Float(math.NaN())

	assert.True(t, nan.Equals(nan))
	assert.True(t, nan.LessThan(Float(-1)))
	assert.False(t, Float(-1).LessThan(nan))

	floats := []Float{2.5, nan, -1}
	slices.SortFunc(floats, Compare[Float])
	assert.True(t, math.IsNaN(float64(floats[0])))
	assert.Equal(t, []Float{-1, 2.5}, floats[1:])
}

func TestNaturalRecognizesSortable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, compare.Natural(HumanString("v2"), HumanString("v10")))
	assert.Equal(t, 1, compare.Natural(String("v2"), String("v10")))
	assert.Equal(t, 0, compare.Natural(Int(4), Int(4)))
}
