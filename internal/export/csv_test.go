package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloud-ru/mcp-calculators-go/internal/calculations"
)

func TestWriteScheduleCSV(t *testing.T) {
	schedule, err := calculations.Schedule(calculations.LoanParameters{
		Principal:         100000,
		AnnualRatePercent: 6,
		TermYears:         30,
		ExtraMonthly:      200,
		StartDate:         time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteScheduleCSV(&buf, schedule))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(schedule)+1)
	assert.Equal(t, "payment_number,date,payment,principal,interest,extra_payment,balance", lines[0])
	assert.Equal(t, "1,2025-02-01,599.55,99.55,500.00,200.00,99700.45", lines[1])
	assert.NotContains(t, buf.String(), `"`)

	last := strings.Split(lines[len(lines)-1], ",")
	require.Len(t, last, 7)
	assert.Equal(t, "0.00", last[6])
}

func TestScheduleRecordRoundsMoney(t *testing.T) {
	record := ScheduleRecord(calculations.AmortizationEntry{
		PaymentNumber:    3,
		PaymentDate:      time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
		ScheduledPayment: 1234.5678,
		PrincipalPortion: 0.004,
		InterestPortion:  10,
		EndingBalance:    98765.4321,
	})

	assert.Equal(t, []string{"3", "2025-04-30", "1234.57", "0.00", "10.00", "0.00", "98765.43"}, record)
}
