package junctiontree_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/arboriq/jtree/elimtree"
	"github.com/arboriq/jtree/junctiontree"
)

func TestBuildJunctionTree_RecordsMetricsPerClique(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := junctiontree.NewMetrics(reg)

	tree := elimtree.Chain(2, elimtree.SymbolIDFn)
	_, err := junctiontree.BuildJunctionTree(tree, junctiontree.WithMetrics(metrics))
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	var cliquesBuilt float64
	for _, mf := range families {
		if mf.GetName() == "junctiontree_cliques_built_total" {
			cliquesBuilt = mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	require.Equal(t, float64(1), cliquesBuilt, "one surviving clique after a full chain merge")
}
