package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlmath/matrix"
	"github.com/katalvlaran/lvlmath/sizecheck"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
	"github.com/katalvlaran/lvlmath/vector"
	"github.com/stretchr/testify/require"
)

func TestFixed_ZeroValueAndConstructors(t *testing.T) {
	t.Parallel()

	var z matrix.Fixed[float64, tags.D2, tags.D3]
	require.Equal(t, 2, z.Rows())
	require.Equal(t, 3, z.Cols())
	require.Equal(t, matrix.DefaultBasis, z.Basis())
	require.Equal(t, matrix.DefaultLayout, z.Layout())
	require.Equal(t, make([]float64, 6), z.Data())

	m := matrix.New33(1.0, 2, 3, 4, 5, 6, 7, 8, 9)
	require.Equal(t, 6.0, m.Get(1, 2))
	require.Equal(t, storage.InlineMatrix(3, 3), m.Storage())

	if sizecheck.Enabled {
		_, err := matrix.NewFixed[tags.D2, tags.D2]([][]float64{{1, 2, 3}, {4, 5, 6}})
		require.ErrorIs(t, err, sizecheck.ErrIncompatibleSize)
	}

	_, err := matrix.NewFixed[tags.D2, tags.D2]([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)

	require.Panics(t, func() { m.Get(3, 0) })
}

func TestLayout_GovernsFlatOrder(t *testing.T) {
	t.Parallel()

	row, err := matrix.FromSlice(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	col, err := matrix.FromSlice(2, 2, []float64{1, 2, 3, 4}, matrix.WithLayout(tags.ColMajor))
	require.NoError(t, err)

	require.Equal(t, 2.0, row.Get(0, 1))
	require.Equal(t, 2.0, col.Get(1, 0))

	// 2-D literals are read row by row regardless of layout
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}}, matrix.WithLayout(tags.ColMajor))
	require.Equal(t, []float64{1, 3, 2, 4}, m.Data())

	if sizecheck.Enabled {
		_, err = matrix.FromSlice(2, 2, []float64{1, 2, 3})
		require.ErrorIs(t, err, sizecheck.ErrIncompatibleSize)
	}
	require.Panics(t, func() { matrix.WithLayout(tags.EitherLayout) })
}

func TestBasis_Elements(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2}, {3, 4}}
	colBasis := mustRows(t, rows)
	rowBasis := mustRows(t, rows, matrix.WithBasis(tags.RowBasis))

	// basis vector 0, element 1
	require.Equal(t, 3.0, colBasis.BasisElement(0, 1))
	require.Equal(t, 2.0, rowBasis.BasisElement(0, 1))

	rowBasis.SetBasisElement(1, 0, 9)
	require.Equal(t, 9.0, rowBasis.Get(1, 0))

	bv, err := matrix.BasisVector[float64](colBasis, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4}, []float64{bv.Get(0), bv.Get(1)})

	_, err = matrix.BasisVector[float64](colBasis, 3)
	require.ErrorIs(t, err, sizecheck.ErrInvalidAxis)
	_, err = matrix.BasisVector[float64](colBasis, 2)
	require.ErrorIs(t, err, sizecheck.ErrInvalidAxis, "axis beyond the matrix")
}

func TestDynamic_AssignmentContract(t *testing.T) {
	t.Parallel()

	var empty matrix.Dynamic[float64]
	require.NoError(t, empty.Assign(matrix.New22(1.0, 2, 3, 4)))
	require.Equal(t, 2, empty.Rows())

	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	if sizecheck.Enabled {
		err := m.AssignRows([][]float64{{1, 2, 3}, {4, 5, 6}})
		require.ErrorIs(t, err, sizecheck.ErrIncompatibleSize)
		err = m.AssignElements(1, 2, 3)
		require.ErrorIs(t, err, sizecheck.ErrIncompatibleSize)
		err = m.Assign(mustRows(t, [][]float64{{1}}))
		require.ErrorIs(t, err, sizecheck.ErrIncompatibleSize)
		require.Equal(t, [][]float64{{1, 2}, {3, 4}}, rowsOf(m))
	}

	require.NoError(t, m.AssignElements(5, 6, 7, 8))
	require.Equal(t, [][]float64{{5, 6}, {7, 8}}, rowsOf(m))
}

func TestDynamic_ResizePreservesBlock(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.Resize(3, 3))
	require.Equal(t, [][]float64{{1, 2, 0}, {3, 4, 0}, {0, 0, 0}}, rowsOf(m))
	require.NoError(t, m.Resize(1, 2))
	require.Equal(t, [][]float64{{1, 2}}, rowsOf(m))
	require.NoError(t, m.ResizeFast(2, 5))
	require.Equal(t, 10, len(m.Data()))
	require.ErrorIs(t, m.Resize(-1, 2), sizecheck.ErrInvalidDimensions)

	c := m.Clone()
	c.Set(0, 0, 42)
	require.NotEqual(t, 42.0, m.Get(0, 0))
}

func TestDynamic_Allocator(t *testing.T) {
	t.Parallel()

	pool := storage.NewPoolAllocator[float64]("pool")
	m, err := matrix.NewDynamic[float64](2, 2, matrix.WithAllocator(pool))
	require.NoError(t, err)
	require.Equal(t, "pool", m.Storage().AllocatorName())

	_, err = matrix.NewDynamic[float32](2, 2, matrix.WithAllocator(pool))
	require.ErrorIs(t, err, matrix.ErrAllocatorType)
}

func TestExternal_View(t *testing.T) {
	t.Parallel()

	buf := make([]float64, 6)
	e, err := matrix.NewFixedExternal[tags.D2, tags.D3](buf)
	require.NoError(t, err)
	require.Equal(t, tags.Fixed, e.SizeTag())
	require.NoError(t, e.AssignRows([][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, buf)

	// a non-square view transposes over the same memory
	require.NoError(t, e.Transpose())
	require.Equal(t, 3, e.Rows())
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, buf)

	if sizecheck.Enabled {
		_, err = matrix.NewExternal(3, 3, buf)
		require.ErrorIs(t, err, sizecheck.ErrMinimumSize)
	}
}

func TestRowsColsAndHelpers(t *testing.T) {
	t.Parallel()

	m := matrix.New33(0.0, 0, 0, 0, 0, 0, 0, 0, 0)
	require.NoError(t, m.SetRow(0, vector.New3(1.0, 2, 3)))
	require.NoError(t, m.SetCol(2, vector.New3(7.0, 8, 9)))
	require.Equal(t, [][]float64{{1, 2, 7}, {0, 0, 8}, {0, 0, 9}}, rowsOf(m))
	if sizecheck.Enabled {
		require.ErrorIs(t, m.SetRow(1, vector.New2(1.0, 2)), sizecheck.ErrIncompatibleCols)
		require.ErrorIs(t, m.SetCol(1, vector.New2(1.0, 2)), sizecheck.ErrIncompatibleRows)
	}

	row := m.Row(0)
	require.Equal(t, 3, row.Size())
	require.Equal(t, 7.0, row.Get(2))
	require.Equal(t, storage.Inline, row.Storage().Strategy)
	require.Equal(t, 9.0, m.Col(2).Get(2))

	m.Identity()
	requireRows(t, identityRows(3), m)
	m.Fill(2)
	require.Equal(t, 2.0, m.Get(1, 1))
	m.Random(rand.New(rand.NewSource(1)), 0, 1)
	for _, v := range m.Data() {
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
	m.Zero()
	require.Equal(t, make([]float64, 9), m.Data())
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	id, err := matrix.Identity[float64](3)
	require.NoError(t, err)
	require.Equal(t, identityRows(3), rowsOf(id))
	tr, err := matrix.Trace[float64](id)
	require.NoError(t, err)
	require.Equal(t, 3.0, tr)

	_, err = matrix.Trace[float64](mustRows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, sizecheck.ErrNonSquare)
}

// Runs in both the checked and the lvlmath_nosizecheck build: valid input
// must give the same results whether or not size checks are compiled in.
func TestValidInputs_SameResultWithoutSizeChecks(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := matrix.New22(5.0, 6, 7, 8)

	sum, err := matrix.Add[float64](a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6, 8}, {10, 12}}, rowsOf(sum))

	p, err := matrix.Mul[float64](a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{19, 22}, {43, 50}}, rowsOf(p))

	v, err := matrix.MulVec[float64](a, vector.FromSlice([]float64{1, 1}))
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7}, []float64{v.Get(0), v.Get(1)})

	dst := matrix.New22(0.0, 0, 0, 0)
	require.NoError(t, dst.Assign(sum))
	require.Equal(t, rowsOf(sum), rowsOf(dst))

	buf := make([]float64, 5)
	e, err := matrix.NewExternal(2, 2, buf)
	require.NoError(t, err)
	require.NoError(t, e.AssignElements(1, 2, 3, 4))
	require.Equal(t, []float64{1, 2, 3, 4, 0}, buf)

	inv, err := matrix.Inverse[float64](a)
	require.NoError(t, err)
	requireRows(t, [][]float64{{-2, 1}, {1.5, -0.5}}, inv)
}

func TestCheckedAccessors(t *testing.T) {
	t.Parallel()

	fixed := matrix.New22(1.0, 2, 3, 4)
	dyn := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	ext, err := matrix.NewExternal(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	tests := []struct {
		name  string
		at    func(i, j int) (float64, error)
		setAt func(i, j int, v float64) error
		get   func(i, j int) float64
		rows  int
		cols  int
	}{
		{"fixed", fixed.At, fixed.SetAt, fixed.Get, 2, 2},
		{"dynamic", dyn.At, dyn.SetAt, dyn.Get, 2, 3},
		{"external", ext.At, ext.SetAt, ext.Get, 2, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := tc.at(1, 1)
			require.NoError(t, err)
			require.Equal(t, tc.get(1, 1), v)

			require.NoError(t, tc.setAt(0, 1, 42))
			require.Equal(t, 42.0, tc.get(0, 1))

			for _, idx := range [][2]int{{-1, 0}, {0, -1}, {tc.rows, 0}, {0, tc.cols}, {1, tc.cols}} {
				_, err := tc.at(idx[0], idx[1])
				require.ErrorIs(t, err, matrix.ErrOutOfRange)
				require.ErrorIs(t, tc.setAt(idx[0], idx[1], 7), matrix.ErrOutOfRange)
			}
			v, err = tc.at(1, 0)
			require.NoError(t, err)
			require.NotEqual(t, 7.0, v, "a rejected SetAt must not write")
		})
	}

	_, err = dyn.At(2, 0)
	require.EqualError(t, err, "Dynamic.At: (2, 0) of 2x3: matrix: index out of range")
}
