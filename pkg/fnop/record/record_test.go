package record

import (
	"testing"

	"github.com/ib-77/fnop/pkg/fnop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_OwnsItems(t *testing.T) {
	t.Parallel()

	items := []string{"potion", "sword"}
	r := New(0, "jjm", "01022223333", 1, items...)
	items[0] = "changed"

	assert.Equal(t, []string{"potion", "sword"}, r.Items)
}

func TestClone_DoesNotShareItems(t *testing.T) {
	t.Parallel()

	r := New(1, "jjm", "010", 2, "a")
	c := r.Clone()
	c.AddItem("b")

	assert.Equal(t, []string{"a"}, r.Items)
	assert.Equal(t, []string{"a", "b"}, c.Items)
	assert.Nil(t, (*Record)(nil).Clone())
}

func TestReset_ReplacesItems(t *testing.T) {
	t.Parallel()

	r := New(0, "jjm", "01022223333", 5, "sword")
	before := r.Items

	require.NoError(t, Reset(0).Accept(r))

	level, ok := r.Level.Get()
	assert.True(t, ok)
	assert.Equal(t, 0, level)
	assert.Empty(t, r.Items)
	assert.NotNil(t, r.Items)
	assert.Equal(t, []string{"sword"}, before)

	r.AddItem("shield")
	assert.Equal(t, []string{"sword"}, before)
}

func TestReset_NilRecord(t *testing.T) {
	t.Parallel()

	err := Reset(0).Accept(nil)
	assert.ErrorIs(t, err, fnop.ErrMissingOperand)
}

func TestCompareTo_ByID(t *testing.T) {
	t.Parallel()

	a := New(1, "z", "", 0)
	b := New(2, "a", "", 0)

	assert.Equal(t, -1, a.CompareTo(*b))
	assert.Equal(t, 1, b.CompareTo(*a))
	assert.Equal(t, 0, a.CompareTo(*a))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := New(1, "jjm", "010", 3, "x")
	assert.True(t, a.Equal(a.Clone()))
	assert.False(t, a.Equal(New(1, "jjm", "010", 4, "x")))
	assert.False(t, a.Equal(NewWithoutLevel(1, "jjm", "010", "x")))
	assert.False(t, a.Equal(nil))
	assert.True(t, (*Record)(nil).Equal(nil))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"Record{id=0, name='jjm1', phone='010-1234', level=0, items=[]}",
		New(0, "jjm1", "010-1234", 0).String())
	assert.Equal(t,
		"Record{id=3, name='x', phone='y', level=null, items=[1, 2]}",
		NewWithoutLevel(3, "x", "y", "1", "2").String())
	assert.Equal(t, "null", (*Record)(nil).String())
}

func TestKeys(t *testing.T) {
	t.Parallel()

	r := NewWithoutLevel(7, "n", "p")
	assert.Equal(t, 7, ID(r))
	assert.Equal(t, "n", Name(r))
	assert.Equal(t, "p", Phone(r))
	assert.Equal(t, 0, Level(r))
	assert.True(t, OptionalLevel(r).IsAbsent())
}
