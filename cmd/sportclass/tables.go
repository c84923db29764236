package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	decisiontree "github.com/billylozowski/PitchClassification-decisiontree"
	"github.com/billylozowski/PitchClassification-decisiontree/tree"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

// renderCV writes the mean and standard error of the held-out deviance of
// every size, marking the size picked by rule.
func renderCV(w io.Writer, res *decisiontree.CVResult, rule decisiontree.SelectionRule) {
	best := res.Best(rule)
	t := newTable(w)
	t.SetTitle("%d-fold cross-validation", res.Folds)
	t.AppendHeader(table.Row{"Size", "Deviance", "Std. error", ""})
	for _, s := range res.Sizes {
		mark := ""
		if s == best {
			mark = "*"
		}
		t.AppendRow(table.Row{s, formatFloat(res.Deviance[s]), formatFloat(res.StdErr[s]), mark})
	}
	t.AppendFooter(table.Row{"Rule", rule.String(), "Size", best})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	t.Render()
}

// renderSequence writes the size, deviance and complexity parameter of
// every tree of a pruned sequence.
func renderSequence(w io.Writer, seq decisiontree.PrunedSequence) {
	t := newTable(w)
	t.SetTitle("Pruned sequence")
	t.AppendHeader(table.Row{"Size", "Deviance", "Alpha"})
	for _, pt := range seq {
		t.AppendRow(table.Row{pt.Size, formatFloat(pt.Deviance), formatFloat(pt.Alpha)})
	}
	t.Render()
}

// renderClasses writes one row per leaf of the tree: the rule placing
// samples in it, its prediction, its size and its deviance.
func renderClasses(w io.Writer, tr *tree.Tree) {
	t := newTable(w)
	t.SetTitle("Classes")
	t.AppendHeader(table.Row{"Class", "Rule", tr.Target(), "Samples", "Deviance"})
	for _, id := range tr.Leaves() {
		n := tr.Node(id)
		t.AppendRow(table.Row{id, rule(tr, id), formatFloat(n.Value), n.Count, formatFloat(n.Deviance)})
	}
	t.Render()
}

// renderEvaluation writes the error measures of an evaluation and, when
// byClass, the measures restricted to the samples of every leaf.
func renderEvaluation(w io.Writer, tr *tree.Tree, ev *decisiontree.Evaluation, byClass bool) error {
	t := newTable(w)
	t.SetTitle("Evaluation")
	t.AppendHeader(table.Row{"Class", "Rule", "Samples", "RMSE", "MAE"})
	if byClass {
		rows := make(map[tree.NodeID][]int)
		for i, id := range ev.Leaves {
			rows[id] = append(rows[id], i)
		}
		for _, id := range tr.Leaves() {
			if len(rows[id]) == 0 {
				continue
			}
			p, a := pick(ev.Predicted, rows[id]), pick(ev.Actual, rows[id])
			rmse, err := decisiontree.RMSE(p, a)
			if err != nil {
				return err
			}
			mae, err := decisiontree.MAE(p, a)
			if err != nil {
				return err
			}
			t.AppendRow(table.Row{id, rule(tr, id), len(rows[id]), formatFloat(rmse), formatFloat(mae)})
		}
		t.AppendSeparator()
	}
	t.AppendRow(table.Row{"all", "", len(ev.Actual), formatFloat(ev.RMSE), formatFloat(ev.MAE)})
	t.Render()
	return nil
}

// rule describes the path from the root of the tree to the node.
func rule(t *tree.Tree, id tree.NodeID) string {
	path := t.Path(id)
	if len(path) == 0 {
		return "all samples"
	}
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = fmt.Sprint(c)
	}
	return strings.Join(parts, " and ")
}

func pick(vs []float64, indices []int) []float64 {
	r := make([]float64, len(indices))
	for i, j := range indices {
		r[i] = vs[j]
	}
	return r
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
