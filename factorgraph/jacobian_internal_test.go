package factorgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func identityInfo(n int) []float64 {
	m := make([]float64, n*n)
	for i := 0; i < n; i++ {
		m[i*n+i] = 1
	}

	return m
}

func requireMatClose(t *testing.T, want, got mat.Matrix, tol float64) {
	t.Helper()
	require.Truef(t, mat.EqualApprox(want, got, tol), "want\n%v\ngot\n%v",
		mat.Formatted(want, mat.Squeeze()), mat.Formatted(got, mat.Squeeze()))
}

// TestAnalyticJacobiansMatchNumeric compares every analytic block with the
// central-difference derivative taken through Retract.
func TestAnalyticJacobiansMatchNumeric(t *testing.T) {
	g, err := New(
		[]VariableSpec{
			{ID: 0, Kind: Pose2D, Estimate: []float64{0.3, -1.2, 0.8}},
			{ID: 1, Kind: Pose2D, Estimate: []float64{2.1, 0.4, -2.9}},
			{ID: 2, Kind: Landmark2D, Estimate: []float64{-1.5, 3.2}},
			{ID: 3, Kind: Pose3D, Estimate: []float64{0.1, 0.2, 0.3, 0.1, -0.2, 0.3, 0.9}},
			{ID: 4, Kind: Landmark3D, Estimate: []float64{2, -1, 0.5}},
			{ID: 5, Kind: Landmark2D, Estimate: []float64{4, 4}},
		},
		[]FactorSpec{
			{Kind: Odometry2D, Variables: []int{0, 1}, Measurement: []float64{1, 0.5, 3.0}, Information: identityInfo(3)},
			{Kind: Observation2D, Variables: []int{1, 2}, Measurement: []float64{0.2, -0.7}, Information: identityInfo(2)},
			{Kind: UnaryPosition, Variables: []int{0}, Measurement: []float64{0, 0, -3}, Information: identityInfo(3)},
			{Kind: UnaryPosition, Variables: []int{5}, Measurement: []float64{1, 1}, Information: identityInfo(2)},
			{Kind: Observation3D, Variables: []int{3, 4}, Measurement: []float64{1, 1, 1}, Information: identityInfo(3)},
		},
	)
	require.NoError(t, err)

	for _, f := range g.Factors() {
		conn := g.Connected(f)
		analytic, err := f.Jacobians(conn...)
		require.NoError(t, err)
		numeric, err := f.numericJacobians(conn)
		require.NoError(t, err)
		for k := range analytic {
			requireMatClose(t, numeric[k], analytic[k], 1e-6)
		}
	}
}

// TestPose3DUnaryJacobianNearIdentity: at zero residual ∂r/∂δ is −I.
func TestPose3DUnaryJacobianNearIdentity(t *testing.T) {
	est := []float64{1, 2, 3, 0, 0, 0.38941834, 0.92106099}
	g, err := New(
		[]VariableSpec{{ID: 0, Kind: Pose3D, Estimate: est}},
		[]FactorSpec{{Kind: UnaryPosition, Variables: []int{0}, Measurement: est, Information: identityInfo(6)}},
	)
	require.NoError(t, err)
	f := g.Factors()[0]

	jac, err := f.Jacobians(g.Connected(f)...)
	require.NoError(t, err)
	want := mat.NewDense(6, 6, nil)
	for i := 0; i < 6; i++ {
		want.Set(i, i, -1)
	}
	requireMatClose(t, want, jac[0], 1e-6)
}

// TestNumericJacobianDoesNotMutate ensures differentiation uses copies.
func TestNumericJacobianDoesNotMutate(t *testing.T) {
	g, err := New(
		[]VariableSpec{
			{ID: 0, Kind: Pose3D, Estimate: []float64{0, 0, 0, 0, 0, 0, 1}},
			{ID: 1, Kind: Pose3D, Estimate: []float64{1, 0, 0, 0, 0, 0, 1}},
		},
		[]FactorSpec{{Kind: Odometry3D, Variables: []int{0, 1}, Measurement: []float64{1, 0, 0, 0, 0, 0, 1}, Information: identityInfo(6)}},
	)
	require.NoError(t, err)
	f := g.Factors()[0]
	conn := g.Connected(f)
	before0, before1 := conn[0].Estimate(), conn[1].Estimate()

	_, err = f.Jacobians(conn...)
	require.NoError(t, err)
	require.Equal(t, before0, conn[0].Estimate())
	require.Equal(t, before1, conn[1].Estimate())
}
