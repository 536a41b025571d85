package vecunits

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecunits/unit"
)

func TestRecord(t *testing.T) {
	a := newMixed(1, 2, 3)

	r := ToRecord(a)
	assert.Equal(t, Record{Units: [3]string{"m", "cm", "ft"}, Values: [3]float64{1, 2, 3}}, r)
	assert.Equal(t, "(1 m, 2 cm, 3 ft)", r.String())

	t.Run("SameLayout", func(t *testing.T) {
		var dst mixed
		require.NoError(t, FromRecord(r, &dst))
		assert.Equal(t, a, dst)

		var exact mixed
		require.NoError(t, FromRecordExact(r, &exact))
		assert.Equal(t, a, exact)
	})

	t.Run("ConvertsCompatibleUnits", func(t *testing.T) {
		var dst other
		require.NoError(t, FromRecord(r, &dst))
		assertRawInDelta(t, [3]float64{100, 0.02, 36}, dst.Raw(), 1e-9)
	})

	t.Run("Integer", func(t *testing.T) {
		var dst Vector3[int, unit.Length, unit.Centimeter, unit.Centimeter, unit.Centimeter]
		require.NoError(t, FromRecord(r, &dst))
		assert.Equal(t, [3]int{100, 2, 91}, dst.Raw())
	})

	t.Run("ExactRejectsOtherUnits", func(t *testing.T) {
		var dst other
		err := FromRecordExact(r, &dst)

		var um *ErrUnitMismatch
		require.ErrorAs(t, err, &um)
		assert.Equal(t, 0, um.Axis)
		assert.Equal(t, "cm", um.Expected)
		assert.Equal(t, "m", um.Actual)
		assert.Equal(t, other{}, dst, "dst untouched on error")
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		bad := Record{Units: [3]string{"m", "s", "ft"}, Values: [3]float64{1, 2, 3}}

		dst := newMixed(7, 7, 7)
		err := FromRecord(bad, &dst)

		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 1, dm.Axis)
		assert.Equal(t, "length", dm.Expected)
		assert.Equal(t, "time", dm.Actual)
		assert.Equal(t, [3]float64{7, 7, 7}, dst.Raw(), "dst untouched on error")
	})

	t.Run("UnknownUnit", func(t *testing.T) {
		bad := Record{Units: [3]string{"m", "cm", "cubit"}}

		var dst mixed
		err := FromRecord(bad, &dst)
		assert.True(t, errors.Is(err, unit.ErrUnknownUnit))

		var um *ErrUnitMismatch
		require.ErrorAs(t, err, &um)
		assert.Equal(t, 2, um.Axis)
	})
}
