package frequency

import (
	"fmt"
	"math"
)

// benfordProbs holds the reference probability of observing each digit 0-9
// at significant-digit positions 0-4 (first digit through fifth digit) of a
// naturally occurring number. A first significant digit is never 0, so the
// probability of digit 0 at position 0 is 0. By the fifth position the
// distribution is nearly uniform.
var benfordProbs = [5][10]float64{
	{
		0.0,
		0.3010299956639812,
		0.17609125905568124,
		0.12493873660829992,
		0.09691001300805642,
		0.07918124604762482,
		0.06694678963061322,
		0.05799194697768673,
		0.05115252244738129,
		0.04575749056067514,
	},
	{
		0.11967926859688073,
		0.1138901034075564,
		0.10882149900550823,
		0.10432956023095939,
		0.10030820226757937,
		0.09667723580232243,
		0.09337473578303615,
		0.09035198926960332,
		0.08757005357886138,
		0.08499735205769224,
	},
	{
		0.1017843646442167,
		0.10137597744780127,
		0.10097219813704165,
		0.1005729321109262,
		0.1001780876279476,
		0.09978757569217742,
		0.09940130994496177,
		0.09901920656189599,
		0.09864118415477721,
		0.09826716367825329,
	},
	{
		0.10017614693993555,
		0.100136888117578,
		0.1000976725946149,
		0.10005850028348687,
		0.10001937109690452,
		0.09998028494784099,
		0.09994124174952602,
		0.09990224141544911,
		0.09986328385937243,
		0.09982436899529125,
	},
	{
		0.100017591505929,
		0.10001368113544618,
		0.10000977119522403,
		0.1000058616851637,
		0.1000019526051873,
		0.09999804395520129,
		0.09999413573512496,
		0.09999022794487125,
		0.09998632058435514,
		0.09998241365348551,
	},
}

// neutralProb is returned for digit/position lookups outside the table.
const neutralProb = 0.1

// BenfordReference returns the probability predicted by Benford's law of
// finding the given digit at the given 0-indexed significant-digit position.
// Out-of-range digits or positions yield the neutral probability 0.1 rather
// than an error; callers rely on this lookup being total.
func BenfordReference(digit, position int) float64 {
	if digit < 0 || digit > 9 || position < 0 || position >= len(benfordProbs) {
		return neutralProb
	}
	return benfordProbs[position][digit]
}

/*
DigitFrequencies tallies the digit found at the given significant-digit
position of each number into a 10-bin histogram, normalised into frequencies
by the number of digits observed.

Each number is rendered in its canonical decimal form and its digit
characters are scanned left to right. Leading zeros are not significant:
both 0.075 and 75 have the digit 7 at position 0. Numbers with no digit at
the requested position contribute nothing, and are not counted in the
normalisation total. An empty input yields all-zero frequencies.
*/
func DigitFrequencies[T RealNumber](nums []T, position int) [10]float64 {
	var counts [10]int
	total := 0
	for _, num := range nums {
		digit, ok := digitAt(fmt.Sprintf("%v", num), position)
		if !ok {
			continue
		}
		counts[digit]++
		total++
	}

	var freqs [10]float64
	if total == 0 {
		return freqs
	}
	for digit, count := range counts {
		freqs[digit] = float64(count) / float64(total)
	}
	return freqs
}

// digitAt scans the decimal rendering of a number for the digit at the given
// significant-digit position. Non-digit characters (sign, decimal point) are
// ignored, as are zeros before the first non-zero digit. Scanning stops at an
// exponent marker so that scientific notation does not contribute exponent
// digits.
func digitAt(s string, position int) (int, bool) {
	index := 0
	significant := false
	for _, char := range s {
		if char == 'e' || char == 'E' {
			break
		}
		if char < '0' || char > '9' {
			continue
		}
		if !significant {
			if char == '0' {
				continue
			}
			significant = true
		}
		if index == position {
			return int(char - '0'), true
		}
		index++
	}
	return 0, false
}

// BenfordDeviation sums the absolute difference between each observed digit
// frequency and the Benford reference probability at the given position.
// A result near 0 indicates conformance with Benford's law; large values
// flag the inputs as anomalous.
func BenfordDeviation(freqs [10]float64, position int) float64 {
	deviation := 0.0
	for digit, freq := range freqs {
		deviation += math.Abs(freq - BenfordReference(digit, position))
	}
	return deviation
}

// FirstDigitDeviation scores a collection of numbers against the Benford
// first-digit distribution. A collection with no significant digits at all
// carries no evidence either way and scores 0.
func FirstDigitDeviation[T RealNumber](nums []T) float64 {
	freqs := DigitFrequencies(nums, 0)
	if isZero(freqs) {
		return 0
	}
	return BenfordDeviation(freqs, 0)
}

// ThreeDigitDeviation scores a collection of numbers against the Benford
// distributions of the first three digit positions, summing the per-position
// deviations. Positions with no observed digits are skipped.
func ThreeDigitDeviation[T RealNumber](nums []T) float64 {
	deviation := 0.0
	for position := 0; position < 3; position++ {
		freqs := DigitFrequencies(nums, position)
		if isZero(freqs) {
			continue
		}
		deviation += BenfordDeviation(freqs, position)
	}
	return deviation
}

func isZero(freqs [10]float64) bool {
	for _, freq := range freqs {
		if freq != 0 {
			return false
		}
	}
	return true
}
