package monitor

import (
	"context"
	"errors"
	"testing"

	"github.com/KNICEX/price-watch/internal/service/exchange"
	"github.com/KNICEX/price-watch/internal/service/llm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRuleGrader(t *testing.T) {
	grader := NewRuleGrader(5, 2)
	testCases := []struct {
		profit float64
		want   string
	}{
		{profit: 7, want: GradeA},
		{profit: 5, want: GradeA},
		{profit: 3, want: GradeB},
		{profit: 1.5, want: GradeC},
	}
	for _, tc := range testCases {
		grade, err := grader.Grade(context.Background(), Signal{Profit: decimal.NewFromFloat(tc.profit)})
		require.NoError(t, err)
		assert.Equal(t, tc.want, grade, "profit %v", tc.profit)
	}
}

func TestExtractGrade(t *testing.T) {
	testCases := []struct {
		content string
		want    string
		wantErr bool
	}{
		{content: "A", want: GradeA},
		{content: "b.", want: GradeB},
		{content: "Grade: **C**", want: GradeC},
		{content: "I would say B, maybe A", want: GradeB},
		{content: "not sure", wantErr: true},
		{content: "", wantErr: true},
	}
	for _, tc := range testCases {
		grade, err := extractGrade(tc.content)
		if tc.wantErr {
			assert.Error(t, err, tc.content)
			continue
		}
		require.NoError(t, err, tc.content)
		assert.Equal(t, tc.want, grade)
	}
}

func TestLLMGrader(t *testing.T) {
	signal := Signal{
		Asset:                "BTC",
		Pair:                 exchange.NewTradingPair("BTC", "USDT"),
		Type:                 Buy,
		ReferencePrice:       decimal.NewFromInt(95),
		TargetPrice:          decimal.NewFromInt(100),
		PercentageDifference: decimal.NewFromInt(-5),
		Profit:               decimal.NewFromFloat(5.26),
	}

	t.Run("answer", func(t *testing.T) {
		llmSvc := new(MockLLMService)
		llmSvc.On("AskOnce", mock.Anything, mock.MatchedBy(func(q llm.Question) bool {
			return assert.Contains(t, q.Content, "BTC") && assert.Contains(t, q.Content, "BUY")
		})).Return(llm.Answer{Content: "A"}, nil)

		grade, err := NewLLMGrader(llmSvc).Grade(context.Background(), signal)
		require.NoError(t, err)
		assert.Equal(t, GradeA, grade)
	})

	t.Run("error", func(t *testing.T) {
		llmSvc := new(MockLLMService)
		llmSvc.On("AskOnce", mock.Anything, mock.Anything).Return(llm.Answer{}, errors.New("quota"))

		_, err := NewLLMGrader(llmSvc).Grade(context.Background(), signal)
		assert.Error(t, err)
	})
}
