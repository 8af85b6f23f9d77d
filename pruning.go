package dectree

import (
	"github.com/robjustinwagner/dectree/dataset"
	"github.com/robjustinwagner/dectree/feature"
	"github.com/robjustinwagner/dectree/tree"
)

// PruningStrategy holds the configuration
// for the reduced-error pruning of a tree.
type PruningStrategy struct {
	// DepthTieBreak makes pruning prefer shallower
	// trees when accuracies tie: among the candidates
	// of a round with the best accuracy the shallowest
	// one is chosen, and it is accepted with an accuracy
	// equal to the current one if it is strictly
	// shallower than the current tree.
	DepthTieBreak bool
	// Logf, when set, receives a line of progress
	// for every pruning round.
	Logf func(format string, args ...interface{})
}

func (ps *PruningStrategy) logf(format string, args ...interface{}) {
	if ps.Logf != nil {
		ps.Logf(format, args...)
	}
}

/*
PruningRound describes an accepted pruning round: the number of
candidates evaluated, the path to the node collapsed into a leaf,
the label of the leaf and the tuning score and depth of the tree
after the collapse.
*/
type PruningRound struct {
	Round      int
	Candidates int
	Collapsed  feature.Conjunction
	Label      string
	Score      tree.Score
	Depth      int
}

/*
PruningReport holds the tuning score of the tree before and after pruning
and the accepted rounds in between.
*/
type PruningReport struct {
	Initial tree.Score
	Final   tree.Score
	Rounds  []PruningRound
}

type candidate struct {
	t     *tree.Tree
	path  feature.Conjunction
	label string
	score tree.Score
	depth int
}

/*
Prune takes a training dataset, a tuning dataset, a tree grown from the
training dataset and a pruning strategy (nil for the default one) and
returns the tree resulting from reduced-error pruning along with a report
of the process.

Every round considers collapsing each internal node whose children are all
leaves into a leaf predicting the majority label of the training samples
that reach it. Each candidate is a copy of the current tree; the candidate
with the best accuracy on the tuning dataset (the first one found on ties) is
accepted only if its accuracy is strictly better than the current tree's.
Pruning stops when a round is not accepted or the tree is a single leaf.
The given tree is never modified.

ErrEmptyTuningSet is returned if the tuning dataset has no samples.
*/
func Prune(training, tuning *dataset.Dataset, t *tree.Tree, ps *PruningStrategy) (*tree.Tree, *PruningReport, error) {
	if tuning.Count() == 0 {
		return nil, nil, ErrEmptyTuningSet
	}
	if ps == nil {
		ps = &PruningStrategy{}
	}
	best := t
	bestScore, _, err := best.Test(tuning)
	if err != nil {
		return nil, nil, err
	}
	bestDepth := best.Depth()
	report := &PruningReport{Initial: bestScore}
	ps.logf("Pruning tree with tuning accuracy %v (%.4f)", bestScore, bestScore.Accuracy())
	for round := 1; ; round++ {
		if _, ok := best.Root.(*tree.Leaf); ok {
			break
		}
		candidates, err := collapseCandidates(training, best)
		if err != nil {
			return nil, nil, err
		}
		var winner *candidate
		for _, c := range candidates {
			c.score, _, err = c.t.Test(tuning)
			if err != nil {
				return nil, nil, err
			}
			c.depth = c.t.Depth()
			if winner == nil || c.score.Correct > winner.score.Correct ||
				(ps.DepthTieBreak && c.score.Correct == winner.score.Correct && c.depth < winner.depth) {
				winner = c
			}
		}
		if winner == nil {
			break
		}
		accept := winner.score.Correct > bestScore.Correct ||
			(ps.DepthTieBreak && winner.score.Correct == bestScore.Correct && winner.depth < bestDepth)
		if !accept {
			ps.logf("Round %d: none of %d candidates improves tuning accuracy %v", round, len(candidates), bestScore)
			break
		}
		best, bestScore, bestDepth = winner.t, winner.score, winner.depth
		report.Rounds = append(report.Rounds, PruningRound{
			Round:      round,
			Candidates: len(candidates),
			Collapsed:  winner.path,
			Label:      winner.label,
			Score:      winner.score,
			Depth:      winner.depth,
		})
		ps.logf("Round %d: collapsed %v into (%s), tuning accuracy %v (%.4f)", round, winner.path, winner.label, bestScore, bestScore.Accuracy())
	}
	report.Final = bestScore
	return best, report, nil
}

/*
collapseCandidates returns a candidate for every internal node of the tree
whose children are all leaves, in pre-order, each being a copy of the tree
with the node replaced by a leaf predicting the majority label of the
training samples that reach it.
*/
func collapseCandidates(training *dataset.Dataset, t *tree.Tree) ([]*candidate, error) {
	var candidates []*candidate
	err := t.Traverse(false, func(path feature.Conjunction, n tree.Node) error {
		in, ok := n.(*tree.Internal)
		if !ok || !in.Frontier() {
			return nil
		}
		reaching, err := training.SubsetWithConjunction(path)
		if err != nil {
			return err
		}
		label := reaching.Majority()
		ct, err := t.Replace(path, tree.NewLeaf(in.Edge(), label, in.Weight()))
		if err != nil {
			return err
		}
		candidates = append(candidates, &candidate{t: ct, path: path, label: label})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return candidates, nil
}
