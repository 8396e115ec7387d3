package monitor

import (
	"context"
	"fmt"
	"strings"

	"github.com/KNICEX/price-watch/internal/service/llm"
	"github.com/shopspring/decimal"
)

const (
	GradeA = "A"
	GradeB = "B"
	GradeC = "C"
)

type ruleGrader struct {
	gradeA decimal.Decimal
	gradeB decimal.Decimal
}

// NewRuleGrader grades by profit: >= a is A, >= b is B, anything else C.
func NewRuleGrader(a, b float64) Grader {
	return &ruleGrader{
		gradeA: decimal.NewFromFloat(a),
		gradeB: decimal.NewFromFloat(b),
	}
}

func (g *ruleGrader) Grade(ctx context.Context, signal Signal) (string, error) {
	profit := signal.Profit.Abs()
	switch {
	case profit.GreaterThanOrEqual(g.gradeA):
		return GradeA, nil
	case profit.GreaterThanOrEqual(g.gradeB):
		return GradeB, nil
	default:
		return GradeC, nil
	}
}

type llmGrader struct {
	llmSvc llm.Service
}

func NewLLMGrader(llmSvc llm.Service) Grader {
	return &llmGrader{
		llmSvc: llmSvc,
	}
}

func (g *llmGrader) Grade(ctx context.Context, signal Signal) (string, error) {
	prompt := fmt.Sprintf("A local exchange quotes %s at %s %s while the global reference price is %s "+
		"(difference %s%%, suggested action %s, expected profit %s%%).\n"+
		"Grade how actionable this arbitrage signal is. A: strong and plausible, B: moderate, "+
		"C: weak or likely a data error. Reply with a single letter: A, B or C.",
		signal.Asset, signal.ReferencePrice.String(), signal.Pair.Quote, signal.TargetPrice.String(),
		signal.PercentageDifference.StringFixed(2), signal.Type, signal.Profit.StringFixed(2))

	answer, err := g.llmSvc.AskOnce(ctx, llm.Question{Content: prompt})
	if err != nil {
		return "", err
	}
	return extractGrade(answer.Content)
}

// extractGrade 取回答中第一个出现的等级字母
func extractGrade(content string) (string, error) {
	for _, field := range strings.Fields(strings.ToUpper(content)) {
		field = strings.Trim(field, ".,:;*`\"'()[]")
		switch field {
		case GradeA, GradeB, GradeC:
			return field, nil
		}
	}
	return "", fmt.Errorf("invalid grade answer: %q", content)
}
