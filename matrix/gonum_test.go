package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlmath/matrix"
)

// gonumView exposes a matrix expression to gonum as a mat.Matrix.
type gonumView struct{ m matrix.Expr[float64] }

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v gonumView) Dims() (r, c int)    { return v.m.Rows(), v.m.Cols() }
func (v gonumView) At(i, j int) float64 { return v.m.Get(i, j) }
func (v gonumView) T() mat.Matrix       { return mat.Transpose{Matrix: v} }

// randomDominant returns an n×n matrix with entries in [-1, 1) and n added
// to the diagonal.
func randomDominant(t *testing.T, r *rand.Rand, n int) *matrix.Dynamic[float64] {
	t.Helper()
	m, err := matrix.NewDynamic[float64](n, n)
	require.NoError(t, err)
	m.Random(r, -1, 1)
	for i := 0; i < n; i++ {
		m.Set(i, i, m.Get(i, i)+float64(n))
	}

	return m
}

func TestAgainstGonum(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(7))
	for n := 1; n <= 12; n++ {
		a := randomDominant(t, r, n)
		b := randomDominant(t, r, n)

		var wantInv mat.Dense
		require.NoError(t, wantInv.Inverse(gonumView{a}))
		inv, err := matrix.Inverse[float64](a)
		require.NoError(t, err)
		require.True(t, mat.EqualApprox(&wantInv, gonumView{inv}, 1e-9), "inverse n=%d", n)

		det, err := matrix.Determinant[float64](a)
		require.NoError(t, err)
		require.InEpsilon(t, mat.Det(gonumView{a}), det, 1e-9, "det n=%d", n)

		var wantMul mat.Dense
		wantMul.Mul(gonumView{a}, gonumView{b})
		p, err := matrix.Mul[float64](a, b)
		require.NoError(t, err)
		require.True(t, mat.EqualApprox(&wantMul, gonumView{p}, 1e-12), "mul n=%d", n)

		tr := matrix.Transpose[float64](a)
		require.True(t, mat.Equal(gonumView{a}.T(), gonumView{tr}), "transpose n=%d", n)
	}
}
