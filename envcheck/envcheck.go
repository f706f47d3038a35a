// Package envcheck holds the library sanity checks that run before any
// pipeline stage: they confirm the numeric and tabular libraries behave as
// expected in the current environment.
package envcheck

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/floats"
)

// CheckNumeric sums a known fixed sequence with the numeric library and
// verifies the result. Pure and idempotent.
func CheckNumeric() error {
	sum := floats.Sum([]float64{1, 2, 3})
	if sum != 6 {
		return fmt.Errorf("numeric sum check: expected 6, got %v", sum)
	}
	return nil
}

// CheckTabular builds a 3-row, 2-column data frame from known columns and
// verifies its dimensions. Pure and idempotent.
func CheckTabular() error {
	df := dataframe.New(
		series.New([]int{1, 2, 3}, series.Int, "A"),
		series.New([]int{4, 5, 6}, series.Int, "B"),
	)
	if df.Err != nil {
		return fmt.Errorf("tabular check: could not build data frame: %v", df.Err)
	}
	rows, cols := df.Dims()
	if rows != 3 || cols != 2 {
		return fmt.Errorf("tabular shape check: expected (3, 2), got (%d, %d)", rows, cols)
	}
	return nil
}
