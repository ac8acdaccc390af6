package utils

import "github.com/shopspring/decimal"

var microsPerUnit = decimal.NewFromInt(1_000_000)

// MicrosToDecimal converte micros da plataforma para valor monetário em centavos
func MicrosToDecimal(micros int64) decimal.Decimal {
	return QuantizeCents(decimal.NewFromInt(micros).Div(microsPerUnit))
}

// DecimalToMicros converte um valor monetário para micros da plataforma
func DecimalToMicros(value decimal.Decimal) int64 {
	return QuantizeCents(value).Mul(microsPerUnit).IntPart()
}

// QuantizeCents arredonda para duas casas decimais (meio para cima)
func QuantizeCents(value decimal.Decimal) decimal.Decimal {
	return value.Round(2)
}
