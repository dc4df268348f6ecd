// Package statistics compares answer distributions from batches of runs.
// The G-test and chi-squared test share one critical-value table, indexed
// by degrees of freedom; the probability difference is a normalized L1
// distance between the two distributions.
package statistics

import (
	"fmt"
	"math"
)

// Counts is an answer distribution: answer string to occurrence count.
type Counts map[string]int

// Critical values at p = 0.05 for n degrees of freedom, shared by the
// chi-squared and G tests.
var ptable = map[int]float64{
	1:  3.841,
	2:  5.991,
	3:  7.815,
	4:  9.488,
	5:  11.071,
	6:  12.592,
	7:  14.067,
	8:  15.507,
	9:  16.919,
	10: 18.307,
	11: 19.7,
	12: 21,
	13: 22.4,
	14: 23.7,
	15: 25,
	16: 26.3,
}

func answerKeys(actual, expected Counts) []string {
	seen := make(map[string]bool)
	var keys []string
	for k := range actual {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for k := range expected {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}

// Calculation is a test statistic over two distributions, returning the
// degrees of freedom and the statistic's value.
type Calculation func(actual, expected Counts) (int, float64)

// GValue computes G = 2 * sum(O * ln(O/E)) over the union of answers.
// Terms with a zero observed or expected count contribute nothing.
func GValue(actual, expected Counts) (int, float64) {
	keys := answerKeys(actual, expected)
	g := 0.0
	for _, k := range keys {
		e := float64(expected[k])
		o := float64(actual[k])
		if e == 0 || o == 0 {
			continue
		}
		g += o * math.Log(o/e)
	}
	return len(keys), 2.0 * g
}

// ChiValue computes chi-squared = sum((O-E)^2 / E) over the union of
// answers, skipping zero-expectation terms.
func ChiValue(actual, expected Counts) (int, float64) {
	keys := answerKeys(actual, expected)
	chi := 0.0
	for _, k := range keys {
		e := float64(expected[k])
		o := float64(actual[k])
		if e == 0 {
			continue
		}
		chi += (o - e) * (o - e) / e
	}
	return len(keys), chi
}

// ProbabilityDifference is half the L1 distance between the normalized
// distributions, in [0, 1].
func ProbabilityDifference(actual, expected Counts) float64 {
	keys := answerKeys(actual, expected)
	actualTotal := 0.0
	expectedTotal := 0.0
	for _, k := range keys {
		actualTotal += float64(actual[k])
		expectedTotal += float64(expected[k])
	}
	p := 0.0
	for _, k := range keys {
		ep := float64(expected[k]) / expectedTotal
		op := float64(actual[k]) / actualTotal
		p += math.Abs(ep - op)
	}
	return p / 2.0
}

// DistTest reports whether the statistic stays under the critical value
// for its degrees of freedom, i.e. whether the two distributions are
// consistent. Degrees of freedom beyond the table are an error.
func DistTest(actual, expected Counts, calculation Calculation) (bool, error) {
	df, p := calculation(actual, expected)
	critical, ok := ptable[df]
	if !ok {
		return false, fmt.Errorf("no critical value for %d degrees of freedom", df)
	}
	return p < critical, nil
}
