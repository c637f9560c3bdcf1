package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUndefinedRoundTrip(t *testing.T) {
	require.True(t, IsUndefined(Undefined))
	require.False(t, IsDefined(Undefined))
	require.True(t, IsDefined(0))
	require.True(t, IsDefined(-12.5))
}

func TestApproxEq(t *testing.T) {
	require.True(t, ApproxEq(Undefined, Undefined))
	require.False(t, ApproxEq(Undefined, 0))
	require.False(t, ApproxEq(0, Undefined))
	require.True(t, ApproxEq(1.0, 1.0+Epsilon/2))
	require.False(t, ApproxEq(1.0, 1.0+Epsilon*10))
}

func TestValueOr(t *testing.T) {
	require.Equal(t, 5.0, ValueOr(Undefined, 5.0))
	require.Equal(t, 3.0, ValueOr(3.0, 5.0))
}

func TestAllFourEqual(t *testing.T) {
	require.True(t, AllFourEqual(2, 2, 2, 2))
	require.False(t, AllFourEqual(2, 2, 3, 2))
}
