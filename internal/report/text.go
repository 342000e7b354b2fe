package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/julianknutsen/oddsight/internal/analysis"
	"github.com/julianknutsen/oddsight/internal/style"
)

const barWidth = 20

type textSink struct {
	w io.Writer
}

func (s *textSink) Write(r *analysis.Report) error {
	var b strings.Builder
	writeSummary(&b, r.Analysis)
	b.WriteString("\n")
	writeBars(&b, r.Scores)
	b.WriteString("\n")
	b.WriteString(style.Bold.Render("Ranking") + "\n")
	b.WriteString(RankingTable(r.Ranking))
	if best, ok := r.Ranking.Best(); ok {
		b.WriteString("\n")
		b.WriteString(Panel(best))
		b.WriteString("\n")
	}
	_, err := io.WriteString(s.w, b.String())
	return err
}

func writeSummary(b *strings.Builder, a *analysis.Analysis) {
	fmt.Fprintf(b, "%s %s\n", style.Bold.Render("Hash:    "), a.Hash.Short())
	fmt.Fprintf(b, "%s entropy %.3f  variance %.2f  checksum %d  score %d\n",
		style.Bold.Render("Summary: "), a.Entropy, a.Variance, a.Checksum, a.Score)
	patterns := "none"
	if names := a.Patterns.Names(); len(names) > 0 {
		patterns = strings.Join(names, ", ")
	}
	fmt.Fprintf(b, "%s %s\n", style.Bold.Render("Patterns:"), style.Dim.Render(patterns))
}

func writeBars(b *strings.Builder, scores []analysis.TargetScore) {
	b.WriteString(style.Bold.Render("Confidence") + "\n")
	for _, sc := range scores {
		b.WriteString(ScoreLine(sc))
		b.WriteString("\n")
	}
}

// ScoreLine renders one target's confidence bar and delay.
func ScoreLine(sc analysis.TargetScore) string {
	return fmt.Sprintf("  %-4s %s %s  %s",
		sc.Target.String(),
		style.Bar(sc.Confidence, barWidth),
		style.Level(sc.Confidence).Render(fmt.Sprintf("%3d%%", sc.Confidence)),
		style.Dim.Render(strconv.Itoa(sc.Delay)+"s"))
}

// RankingTable renders the ranking best first, with the top target marked.
func RankingTable(ranking analysis.Ranking) string {
	tbl := style.NewTable(
		style.Column{Name: "TARGET", Width: 6},
		style.Column{Name: "CONF", Width: 5, Align: style.AlignRight},
		style.Column{Name: "DELAY", Width: 6, Align: style.AlignRight},
		style.Column{Name: "SAFETY", Width: 6, Align: style.AlignRight},
		style.Column{Name: "RISK", Width: 6, Align: style.AlignRight},
		style.Column{Name: "SUCCESS", Width: 7, Align: style.AlignRight},
	)
	for i, rec := range ranking {
		target := rec.Target.String()
		if i == 0 {
			target = style.Pick.Render(target)
		}
		tbl.AddRow(
			target,
			style.Level(rec.Confidence).Render(fmt.Sprintf("%d%%", rec.Confidence)),
			fmt.Sprintf("%ds", rec.Delay),
			fmt.Sprintf("%d%%", rec.SafetyScore),
			strconv.FormatFloat(rec.RiskAdjustedScore, 'f', 1, 64),
			fmt.Sprintf("%d%%", rec.SuccessRate),
		)
	}
	return tbl.Render()
}

// Panel renders the auto-selection summary for the top-ranked target.
func Panel(best analysis.Recommendation) string {
	return fmt.Sprintf("%s %s  safety %d%%  confidence %d%%  delay %ds  success %d%%",
		style.Pick.Render(style.IconPick+" Recommended"),
		style.Pick.Render(best.Target.String()),
		best.SafetyScore, best.Confidence, best.Delay, best.SuccessRate)
}

// Prediction renders the predict result for one target.
func Prediction(sc analysis.TargetScore) string {
	return fmt.Sprintf("%s %s  confidence %s  delay %ds",
		style.Info.Render("Prediction"),
		style.Bold.Render(sc.Target.String()),
		style.Level(sc.Confidence).Render(fmt.Sprintf("%d%%", sc.Confidence)),
		sc.Delay)
}
