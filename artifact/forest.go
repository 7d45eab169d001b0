package artifact

import "fmt"

// Node is one node of a serialized decision tree. Internal nodes carry a
// feature index and threshold; leaves carry the predicted class code.
type Node struct {
	Leaf      bool    `json:"leaf,omitempty"`
	Class     int     `json:"class,omitempty"`
	Feature   int     `json:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Left      *Node   `json:"left,omitempty"`
	Right     *Node   `json:"right,omitempty"`
}

// Tree is a single decision tree.
type Tree struct {
	Root *Node `json:"root"`
}

// Forest is the trained classifier: an ensemble of decision trees that
// predicts by majority vote.
type Forest struct {
	Trees []Tree `json:"trees"`
}

// Predict routes the row down every tree and returns the winning class
// code. Ties resolve to the class that reached the winning count first,
// in tree order, so prediction is deterministic.
func (f *Forest) Predict(row []float64) int {
	votes := make(map[int]int, 8)
	best, bestCount := 0, 0
	for _, t := range f.Trees {
		c := t.Root.classify(row)
		votes[c]++
		if votes[c] > bestCount {
			best, bestCount = c, votes[c]
		}
	}
	return best
}

func (n *Node) classify(row []float64) int {
	for !n.Leaf {
		if row[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Class
}

// Depths returns the depth of each tree, for diagnostics.
func (f *Forest) Depths() []float64 {
	out := make([]float64, len(f.Trees))
	for i, t := range f.Trees {
		out[i] = float64(t.Root.depth())
	}
	return out
}

func (n *Node) depth() int {
	if n == nil || n.Leaf {
		return 0
	}
	l, r := n.Left.depth(), n.Right.depth()
	if l > r {
		return l + 1
	}
	return r + 1
}

// check verifies structural integrity against the schema width: every
// internal node needs both children and an in-range feature index.
func (f *Forest) check(nFeatures int) error {
	if f == nil || len(f.Trees) == 0 {
		return fmt.Errorf("model: no trees")
	}
	for i, t := range f.Trees {
		if t.Root == nil {
			return fmt.Errorf("model: tree %d has no root", i)
		}
		if err := t.Root.check(nFeatures); err != nil {
			return fmt.Errorf("model: tree %d: %w", i, err)
		}
	}
	return nil
}

func (n *Node) check(nFeatures int) error {
	if n.Leaf {
		return nil
	}
	if n.Feature < 0 || n.Feature >= nFeatures {
		return fmt.Errorf("split feature %d out of range [0,%d)", n.Feature, nFeatures)
	}
	if n.Left == nil || n.Right == nil {
		return fmt.Errorf("split on feature %d is missing a child", n.Feature)
	}
	if err := n.Left.check(nFeatures); err != nil {
		return err
	}
	return n.Right.check(nFeatures)
}
