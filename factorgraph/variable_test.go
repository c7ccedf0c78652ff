package factorgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	fg "github.com/katalvlaran/graphslam/factorgraph"
)

func singleVariable(t *testing.T, spec fg.VariableSpec) *fg.Variable {
	t.Helper()
	meas := make([]float64, spec.Kind.EstimateLen())
	if spec.Kind == fg.Pose3D {
		meas[6] = 1
	}
	n := spec.Kind.Dimension()
	g, err := fg.New([]fg.VariableSpec{spec}, []fg.FactorSpec{
		{Kind: fg.UnaryPosition, Variables: []int{spec.ID}, Measurement: meas, Information: eye(n)},
	})
	require.NoError(t, err)
	v, ok := g.Variable(spec.ID)
	require.True(t, ok)

	return v
}

// TestKindDimensions pins the dimension table.
func TestKindDimensions(t *testing.T) {
	require.Equal(t, 3, fg.Pose2D.Dimension())
	require.Equal(t, 2, fg.Landmark2D.Dimension())
	require.Equal(t, 6, fg.Pose3D.Dimension())
	require.Equal(t, 3, fg.Landmark3D.Dimension())
	require.Equal(t, 7, fg.Pose3D.EstimateLen())
	require.Equal(t, 0, fg.VariableKind(0).Dimension())
	require.False(t, fg.VariableKind(0).Valid())
	require.Equal(t, "Pose2D", fg.Pose2D.String())
	require.Equal(t, "Observation3D", fg.Observation3D.String())
}

// TestRetractPose2DWrapsAngle checks that repeated increments stay in (−π, π].
func TestRetractPose2DWrapsAngle(t *testing.T) {
	v := singleVariable(t, fg.VariableSpec{ID: 1, Kind: fg.Pose2D, Estimate: []float64{1, 2, 3}})

	require.NoError(t, v.Retract([]float64{0.5, -0.5, 0.5}))
	est := v.Estimate()
	require.InDelta(t, 1.5, est[0], 1e-15)
	require.InDelta(t, 1.5, est[1], 1e-15)
	require.InDelta(t, 3.5-2*math.Pi, est[2], 1e-12)

	for i := 0; i < 100; i++ {
		require.NoError(t, v.Retract([]float64{0, 0, 1}))
		a := v.Estimate()[2]
		require.True(t, a > -math.Pi && a <= math.Pi)
	}
}

// TestRetractLandmarks is plain vector addition.
func TestRetractLandmarks(t *testing.T) {
	l2 := singleVariable(t, fg.VariableSpec{ID: 1, Kind: fg.Landmark2D, Estimate: []float64{1, 2}})
	require.NoError(t, l2.Retract([]float64{10, 20}))
	require.Equal(t, []float64{11, 22}, l2.Estimate())

	l3 := singleVariable(t, fg.VariableSpec{ID: 2, Kind: fg.Landmark3D, Estimate: []float64{1, 2, 3}})
	require.NoError(t, l3.Retract([]float64{-1, -2, -3}))
	require.Equal(t, []float64{0, 0, 0}, l3.Estimate())
}

// TestRetractPose3DKeepsUnitQuaternion checks the rotation stays normalized.
func TestRetractPose3DKeepsUnitQuaternion(t *testing.T) {
	v := singleVariable(t, fg.VariableSpec{ID: 3, Kind: fg.Pose3D, Estimate: []float64{0, 0, 0, 0, 0, 0, 2}})
	require.Equal(t, []float64{0, 0, 0, 0, 0, 0, 1}, v.Estimate(), "quaternion normalized at construction")

	for i := 0; i < 50; i++ {
		require.NoError(t, v.Retract([]float64{0.1, 0, 0, 0.3, -0.2, 0.1}))
	}
	est := v.Estimate()
	require.InDelta(t, 1, floats.Norm(est[3:], 2), 1e-12)
	require.InDelta(t, 5, est[0], 1e-12)
}

// TestRetractDimensionMismatch leaves the estimate untouched on error.
func TestRetractDimensionMismatch(t *testing.T) {
	v := singleVariable(t, fg.VariableSpec{ID: 1, Kind: fg.Pose2D, Estimate: []float64{1, 2, 0.5}})
	err := v.Retract([]float64{1, 1})
	require.ErrorIs(t, err, fg.ErrDimensionMismatch)
	require.Equal(t, []float64{1, 2, 0.5}, v.Estimate())
}

// TestEstimateIsCopy ensures callers cannot mutate state through Estimate.
func TestEstimateIsCopy(t *testing.T) {
	v := singleVariable(t, fg.VariableSpec{ID: 1, Kind: fg.Landmark2D, Estimate: []float64{1, 2}})
	est := v.Estimate()
	est[0] = 100
	require.Equal(t, []float64{1, 2}, v.Estimate())
}
