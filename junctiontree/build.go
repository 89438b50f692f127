package junctiontree

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arboriq/jtree/symbolic"
	"github.com/arboriq/jtree/treetraversal"
)

// traversalData is the per-node value threaded through
// treetraversal.DepthFirstForest while constructing one junction tree.
// It lives only as long as the corresponding post-visit call; parent is
// a pure stack-scoped back-reference, never retained past that call.
type traversalData struct {
	parent                    *traversalData
	clique                    *JunctionTreeNode
	childSymbolicConditionals []*symbolic.SymbolicConditional
	childSymbolicFactors      []symbolic.Factor
}

// etreeNodeAdapter makes an EliminationTreeNode satisfy treetraversal.Node
// without exposing treetraversal as part of this package's external
// interface — the narrow EliminationTreeNode contract is all a caller
// ever needs to implement.
type etreeNodeAdapter struct {
	inner EliminationTreeNode
}

func (a *etreeNodeAdapter) Children() []treetraversal.Node {
	kids := a.inner.Children()
	out := make([]treetraversal.Node, len(kids))
	for i, k := range kids {
		out[i] = &etreeNodeAdapter{inner: k}
	}
	return out
}

// etreeNode unwraps the treetraversal.Node back to the
// EliminationTreeNode a visitor actually wants to inspect.
func etreeNode(n treetraversal.Node) EliminationTreeNode {
	return n.(*etreeNodeAdapter).inner
}

// BuildJunctionTree converts tree into a junction tree via a single
// bottom-up pass: depth-first, performing symbolic elimination and
// merge decisions on ascent (see constructor.go's preVisit/postVisit).
//
// Returns ErrPrecondition if tree is malformed (and WithValidation was
// given, or the traversal itself reaches the malformed node) and
// ErrInternal if the traversal driver and visitor pairing disagree about
// a clique's child count — both are fatal; no partial tree is returned.
func BuildJunctionTree(tree EliminationTree, opts ...Option) (*JunctionTree, error) {
	if tree == nil {
		return nil, preconditionf("elimination tree is nil")
	}

	cfg := newBuildConfig(opts...)
	buildID := cfg.buildID
	if buildID == "" {
		buildID = uuid.NewString()
	}
	logger := cfg.logger.With(zap.String("build_id", buildID))

	if cfg.validate {
		if err := Validate(tree); err != nil {
			return nil, err
		}
	}

	start := time.Now()

	etRoots := tree.Roots()
	roots := make([]treetraversal.Node, len(etRoots))
	for i, r := range etRoots {
		roots[i] = &etreeNodeAdapter{inner: r}
	}

	// A dummy root gathers the junction tree's real roots as its own
	// children; it is discarded once traversal completes and never
	// escapes this function.
	dummyRoot := &traversalData{clique: &JunctionTreeNode{}}

	b := &constructor{logger: logger, metrics: cfg.metrics}
	if err := treetraversal.DepthFirstForest(roots, dummyRoot, b.preVisit, b.postVisit); err != nil {
		return nil, err
	}

	jt := &JunctionTree{
		roots:            dummyRoot.clique.children,
		remainingFactors: append([]symbolic.Factor(nil), tree.RemainingFactors()...),
	}

	elapsed := time.Since(start)
	cfg.metrics.recordBuild(elapsed.Seconds())
	logger.Info("junction tree built",
		zap.Int("roots", len(jt.roots)),
		zap.Duration("elapsed", elapsed),
	)

	return jt, nil
}
