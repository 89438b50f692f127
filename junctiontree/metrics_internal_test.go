package junctiontree

import "testing"

func TestMetrics_NilReceiverIsSafe(t *testing.T) {
	var m *Metrics
	m.recordClique(42)
	m.recordBuild(1.0)
}
