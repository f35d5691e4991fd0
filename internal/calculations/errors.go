package calculations

import "errors"

var (
	// ErrNonConvergentLoan платеж не покрывает начисляемые проценты, долг не гасится
	ErrNonConvergentLoan = errors.New("кредит не амортизируется: платеж не превышает начисленные проценты")

	// ErrUnknownCategory значение перечисления вне допустимого набора
	ErrUnknownCategory = errors.New("неизвестное значение перечисления")
)
