package junctiontree_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arboriq/jtree/junctiontree"
)

func TestWithLogger_PanicsOnNil(t *testing.T) {
	require.Panics(t, func() { junctiontree.WithLogger(nil) })
}

func TestWithMetrics_PanicsOnNil(t *testing.T) {
	require.Panics(t, func() { junctiontree.WithMetrics(nil) })
}

func TestWithBuildID_PanicsOnEmpty(t *testing.T) {
	require.Panics(t, func() { junctiontree.WithBuildID("") })
}

func TestWithLogger_AcceptsRealLogger(t *testing.T) {
	require.NotPanics(t, func() { junctiontree.WithLogger(zap.NewNop()) })
}
