/*
Package report writes the human readable reports of growing, pruning and
testing trees.
*/
package report

import (
	"fmt"
	"io"

	"github.com/robjustinwagner/dectree"
	"github.com/robjustinwagner/dectree/tree"
)

/*
WriteGainReport takes an io.Writer and the information gain of a set of
features and writes a line per feature with its name and its gain floored
to 3 decimal places, e.g. "odor: info gain = 0.906".
*/
func WriteGainReport(w io.Writer, gains []dectree.FeatureGain) error {
	for _, g := range gains {
		_, err := fmt.Fprintln(w, g.String())
		if err != nil {
			return err
		}
	}
	return nil
}

/*
WriteAccuracy takes an io.Writer, the name of an evaluation set, the score of
a tree on it and the number of predictions that fell back to a majority label
and writes the accuracy line for the set, e.g.
"test accuracy: 9/10 = 0.9000 (1 fallback)".
*/
func WriteAccuracy(w io.Writer, name string, s tree.Score, fallbacks int) error {
	line := fmt.Sprintf("%s accuracy: %v = %.4f", name, s, s.Accuracy())
	switch {
	case fallbacks == 1:
		line += " (1 fallback)"
	case fallbacks > 1:
		line += fmt.Sprintf(" (%d fallbacks)", fallbacks)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

/*
WritePruningReport takes an io.Writer and a pruning report and writes a line
per accepted round followed by the tuning accuracy before and after pruning.
*/
func WritePruningReport(w io.Writer, r *dectree.PruningReport) error {
	for _, pr := range r.Rounds {
		_, err := fmt.Fprintf(w, "round %d: collapsed %v into (%s) out of %d candidates, tune accuracy %v = %.4f\n", pr.Round, pr.Collapsed, pr.Label, pr.Candidates, pr.Score, pr.Score.Accuracy())
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "pruning: %d rounds, tune accuracy %.4f -> %.4f\n", len(r.Rounds), r.Initial.Accuracy(), r.Final.Accuracy())
	return err
}
