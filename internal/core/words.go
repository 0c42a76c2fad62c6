package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

var wordOnes = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var wordTens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// wordsLimit bounds the amounts the converter expresses; certificate amounts
// are whole rupees well under a thousand crore crore.
var wordsLimit = decimal.New(1, 16)

// AmountInWords renders a payable amount in the Indian numbering convention
// (crore/lakh groupings) for certificate text, e.g. 913183 becomes
// "Nine Lakh Thirteen Thousand One Hundred Eighty Three Rupees Only". Amounts
// the converter cannot express (negative, or beyond wordsLimit) fall back to
// the plain numeric string. Pure and total.
func AmountInWords(amount decimal.Decimal) string {
	rupees := roundRupees(amount)
	if rupees.IsNegative() || !rupees.LessThan(wordsLimit) {
		return rupees.String()
	}
	n := rupees.IntPart()
	if n == 0 {
		return "Zero Rupees Only"
	}
	return indianWords(n) + " Rupees Only"
}

// indianWords groups by crore (1e7), lakh (1e5), thousand, hundred. Crore
// counts recurse so amounts past 99 crore read as e.g. "One Lakh Crore".
func indianWords(n int64) string {
	var parts []string

	if n >= 1_00_00_000 {
		parts = append(parts, indianWords(n/1_00_00_000)+" Crore")
		n %= 1_00_00_000
	}
	if n >= 1_00_000 {
		parts = append(parts, wordsUnderHundred(n/1_00_000)+" Lakh")
		n %= 1_00_000
	}
	if n >= 1_000 {
		parts = append(parts, wordsUnderHundred(n/1_000)+" Thousand")
		n %= 1_000
	}
	if n >= 100 {
		parts = append(parts, wordOnes[n/100]+" Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, wordsUnderHundred(n))
	}

	return strings.Join(parts, " ")
}

func wordsUnderHundred(n int64) string {
	if n < 20 {
		return wordOnes[n]
	}
	s := wordTens[n/10]
	if n%10 != 0 {
		s += " " + wordOnes[n%10]
	}
	return s
}
