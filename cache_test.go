package flex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flexkit/flex/internal/core/geom"
)

func TestAxisCompatibleIdenticalRequest(t *testing.T) {
	require.True(t, axisCompatible(MeasureModeExactly, 100, MeasureModeExactly, 100, 100))
	require.False(t, axisCompatible(MeasureModeExactly, 100, MeasureModeExactly, 90, 90))
}

func TestAxisCompatibleExactlyMatchesOldComputed(t *testing.T) {
	// New request is Exactly the size the old pass actually computed,
	// regardless of what the old request asked for.
	require.True(t, axisCompatible(MeasureModeExactly, 50, MeasureModeAtMost, 200, 50))
}

func TestAxisCompatibleOldUnspecifiedStillFits(t *testing.T) {
	require.True(t, axisCompatible(MeasureModeAtMost, 80, MeasureModeUndefined, geom.Undefined, 60))
	require.False(t, axisCompatible(MeasureModeAtMost, 40, MeasureModeUndefined, geom.Undefined, 60))
}

func TestAxisCompatibleStricterAtMostStillValid(t *testing.T) {
	require.True(t, axisCompatible(MeasureModeAtMost, 70, MeasureModeAtMost, 100, 70))
	require.False(t, axisCompatible(MeasureModeAtMost, 70, MeasureModeAtMost, 100, 90))
}

func TestCompatibleMeasurementRequiresBothAxes(t *testing.T) {
	cm := &cachedMeasurement{
		valid:           true,
		availableWidth:  100,
		availableHeight: 50,
		widthMode:       MeasureModeExactly,
		heightMode:      MeasureModeExactly,
		computedWidth:   100,
		computedHeight:  50,
	}
	require.True(t, compatibleMeasurement(cm, 100, 50, MeasureModeExactly, MeasureModeExactly))
	require.False(t, compatibleMeasurement(cm, 100, 999, MeasureModeExactly, MeasureModeExactly))
}

func TestCompatibleMeasurementInvalidSlot(t *testing.T) {
	cm := &cachedMeasurement{}
	require.False(t, compatibleMeasurement(cm, 10, 10, MeasureModeExactly, MeasureModeExactly))
}
