package factorgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	fg "github.com/katalvlaran/graphslam/factorgraph"
)

// TestJacobianDimensions checks rows == residual dim and cols == variable dim
// for every factor of a graph that uses each kind.
func TestJacobianDimensions(t *testing.T) {
	vars, factors := mixedSpecs()
	g, err := fg.New(vars, factors)
	require.NoError(t, err)

	for _, f := range g.Factors() {
		conn := g.Connected(f)
		r, err := f.Residual(conn...)
		require.NoError(t, err)
		require.Len(t, r, f.ResidualDimension(), f.Kind().String())

		jac, err := f.Jacobians(conn...)
		require.NoError(t, err)
		require.Len(t, jac, len(conn))
		for k, j := range jac {
			rows, cols := j.Dims()
			require.Equal(t, f.ResidualDimension(), rows, "%s block %d", f.Kind(), k)
			require.Equal(t, conn[k].Dimension(), cols, "%s block %d", f.Kind(), k)
		}

		info := f.Information()
		require.Equal(t, f.ResidualDimension(), info.SymmetricDim())
	}
}

// TestUnaryResidualAndJacobian checks measurement − estimate and −I.
func TestUnaryResidualAndJacobian(t *testing.T) {
	g, err := fg.New(
		[]fg.VariableSpec{{ID: 0, Kind: fg.Pose2D, Estimate: []float64{1, 2, 3}}},
		[]fg.FactorSpec{{Kind: fg.UnaryPosition, Variables: []int{0}, Measurement: []float64{2, 2, -3}, Information: eye(3)}},
	)
	require.NoError(t, err)
	f := g.Factors()[0]
	conn := g.Connected(f)

	r, err := f.Residual(conn...)
	require.NoError(t, err)
	require.InDelta(t, 1, r[0], 1e-15)
	require.InDelta(t, 0, r[1], 1e-15)
	require.InDelta(t, 2*math.Pi-6, r[2], 1e-12, "−3 − 3 wraps to 2π − 6")

	jac, err := f.Jacobians(conn...)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = -1
			}
			require.Equal(t, want, jac[0].At(i, j))
		}
	}
}

// TestOdometryAngleWrap: measured heading change π, estimates differing by −π.
func TestOdometryAngleWrap(t *testing.T) {
	g, err := fg.New(
		[]fg.VariableSpec{
			{ID: 0, Kind: fg.Pose2D, Estimate: []float64{0, 0, math.Pi / 2}},
			{ID: 1, Kind: fg.Pose2D, Estimate: []float64{0, 0, -math.Pi / 2}},
		},
		[]fg.FactorSpec{{Kind: fg.Odometry2D, Variables: []int{0, 1}, Measurement: []float64{0, 0, math.Pi}, Information: eye(3)}},
	)
	require.NoError(t, err)
	f := g.Factors()[0]

	r, err := f.Residual(g.Connected(f)...)
	require.NoError(t, err)
	require.True(t, r[2] > -math.Pi && r[2] <= math.Pi, "residual angle %v", r[2])
	require.InDelta(t, 0, r[2], 1e-12)
}

// TestOdometryResidualInFrame: B one unit ahead of a pose rotated by π/2.
func TestOdometryResidualInFrame(t *testing.T) {
	g, err := fg.New(
		[]fg.VariableSpec{
			{ID: 0, Kind: fg.Pose2D, Estimate: []float64{1, 1, math.Pi / 2}},
			{ID: 1, Kind: fg.Pose2D, Estimate: []float64{1, 2, math.Pi / 2}},
		},
		[]fg.FactorSpec{{Kind: fg.Odometry2D, Variables: []int{0, 1}, Measurement: []float64{1, 0, 0}, Information: eye(3)}},
	)
	require.NoError(t, err)
	f := g.Factors()[0]

	r, err := f.Residual(g.Connected(f)...)
	require.NoError(t, err)
	for i := range r {
		require.InDelta(t, 0, r[i], 1e-12)
	}
}

// TestObservationResidual: landmark straight ahead of a rotated pose.
func TestObservationResidual(t *testing.T) {
	g, err := fg.New(
		[]fg.VariableSpec{
			{ID: 0, Kind: fg.Pose2D, Estimate: []float64{0, 0, math.Pi}},
			{ID: 1, Kind: fg.Landmark2D, Estimate: []float64{-2, 0}},
		},
		[]fg.FactorSpec{{Kind: fg.Observation2D, Variables: []int{0, 1}, Measurement: []float64{2, 0.5}, Information: eye(2)}},
	)
	require.NoError(t, err)
	f := g.Factors()[0]

	r, err := f.Residual(g.Connected(f)...)
	require.NoError(t, err)
	require.InDelta(t, 0, r[0], 1e-12)
	require.InDelta(t, 0.5, r[1], 1e-12)
}

// TestFactorVariableMismatch rejects evaluation against foreign variables.
func TestFactorVariableMismatch(t *testing.T) {
	vars, factors := mixedSpecs()
	g, err := fg.New(vars, factors)
	require.NoError(t, err)

	odo := g.Factors()[1]
	other, _ := g.Variable(12)
	first, _ := g.Variable(10)

	_, err = odo.Residual(first)
	require.ErrorIs(t, err, fg.ErrVariableMismatch)
	_, err = odo.Jacobians(first, other)
	require.ErrorIs(t, err, fg.ErrVariableMismatch)
}

// TestFactorAccessorsAreCopies guards the immutability of factors.
func TestFactorAccessorsAreCopies(t *testing.T) {
	vars, factors := mixedSpecs()
	g, err := fg.New(vars, factors)
	require.NoError(t, err)

	f := g.Factors()[1]
	ids := f.Variables()
	ids[0] = 99
	meas := f.Measurement()
	meas[0] = 99
	require.Equal(t, []int{10, 11}, f.Variables())
	require.Equal(t, []float64{1, 0, 0}, f.Measurement())
	require.Equal(t, fg.Odometry2D, f.Kind())
}
