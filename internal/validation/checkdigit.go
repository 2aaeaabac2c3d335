package validation

// Весовые коэффициенты для базовых цифр NIT (позиции 1..10).
var weights = [10]int{3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

const modulus = 11

// ComputeCheckDigit вычисляет контрольную цифру по первым десяти цифрам NIT.
// Строка base должна содержать ровно 10 десятичных цифр. Результат всегда
// лежит в диапазоне 0..9: остаток меньше 2 даёт 0, иначе берётся 11 - остаток.
func ComputeCheckDigit(base string) int {
	total := 0
	for i, w := range weights {
		total += int(base[i]-'0') * w
	}

	remainder := total % modulus
	if remainder < 2 {
		return 0
	}
	return modulus - remainder
}

func hasValidCheckDigit(nit string) bool {
	if len(nit) != 11 {
		return false
	}
	return ComputeCheckDigit(nit[:10]) == int(nit[10]-'0')
}
