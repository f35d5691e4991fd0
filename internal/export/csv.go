package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/cloud-ru/mcp-calculators-go/internal/calculations"
)

const dateLayout = "2006-01-02"

var scheduleHeader = []string{"payment_number", "date", "payment", "principal", "interest", "extra_payment", "balance"}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// ScheduleRecord переводит запись графика в строку CSV
func ScheduleRecord(e calculations.AmortizationEntry) []string {
	return []string{
		strconv.Itoa(e.PaymentNumber),
		e.PaymentDate.Format(dateLayout),
		money(e.ScheduledPayment),
		money(e.PrincipalPortion),
		money(e.InterestPortion),
		money(e.ExtraPayment),
		money(e.EndingBalance),
	}
}

// WriteScheduleCSV записывает график платежей: заголовок и одна строка на платеж
func WriteScheduleCSV(w io.Writer, schedule []calculations.AmortizationEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(scheduleHeader); err != nil {
		return fmt.Errorf("ошибка записи заголовка CSV: %w", err)
	}
	for _, e := range schedule {
		if err := cw.Write(ScheduleRecord(e)); err != nil {
			return fmt.Errorf("ошибка записи платежа %d: %w", e.PaymentNumber, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
