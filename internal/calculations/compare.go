package calculations

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/cloud-ru/mcp-calculators-go/pkg/utils"
)

// CompareExtraPayments сравнивает график с досрочными платежами и базовый график
func CompareExtraPayments(p LoanParameters) (*ComparisonResult, error) {
	// Рассчитываем оба графика
	baseSchedule, err := Schedule(p.WithoutExtras())
	if err != nil {
		return nil, err
	}

	extraSchedule, err := Schedule(p)
	if err != nil {
		return nil, err
	}

	baseInterest := baseSchedule[len(baseSchedule)-1].CumulativeInterest
	extraInterest := extraSchedule[len(extraSchedule)-1].CumulativeInterest

	interestSaved := utils.Round2(baseInterest - extraInterest)
	monthsSaved := len(baseSchedule) - len(extraSchedule)

	var recommendation string
	switch {
	case monthsSaved > 0 && interestSaved > 0:
		recommendation = fmt.Sprintf("Досрочные платежи сокращают срок на %d мес. и экономят %s на процентах.",
			monthsSaved, humanize.Commaf(interestSaved))
	case interestSaved > 0:
		recommendation = fmt.Sprintf("Досрочные платежи экономят %s на процентах, но срок кредита не меняется.",
			humanize.Commaf(interestSaved))
	default:
		recommendation = "Досрочные платежи не дают экономии при текущих параметрах."
	}

	return &ComparisonResult{
		BaseTotalInterest:  utils.Round2(baseInterest),
		BasePayments:       len(baseSchedule),
		ExtraTotalInterest: utils.Round2(extraInterest),
		ExtraPayments:      len(extraSchedule),
		InterestSaved:      interestSaved,
		MonthsSaved:        monthsSaved,
		Recommendation:     recommendation,
	}, nil
}
