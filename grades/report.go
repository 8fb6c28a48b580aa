// SPDX-License-Identifier: MIT
// Package grades: text report and bar-chart rendering.

package grades

import (
	"bufio"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// averagePlaces is the number of decimals printed for the average.
const averagePlaces = 6

// Bar chart cells, 11 characters each.
const (
	barFilled = "    #######"
	barEmpty  = "           "
)

// graphFooter labels the five bucket columns under the bars.
const graphFooter = "    +------------+----------+----------+----------+----------+\n" +
	"    I    0-20    I   21-40  I   41-60  I   61-80  I   81-100 I\n"

// RenderReport writes the max/min/average lines followed by the graph.
// The average is printed with six decimals by FormatAverage.
func RenderReport(w io.Writer, s Summary) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\nThe maximum grade is %d\n", s.Max)
	fmt.Fprintf(bw, "The minimum grade is %d\n", s.Min)
	fmt.Fprintf(bw, "The average grade is %s\n", FormatAverage(s.Average))
	writeGraph(bw, s.Histogram)

	return bw.Flush()
}

// FormatAverage renders avg with six decimals. Rounding applies half away
// from zero to the shortest decimal that round-trips avg, so 1/128
// (0.0078125) prints as 0.007813.
func FormatAverage(avg float64) string {
	return decimal.NewFromFloat(avg).StringFixed(averagePlaces)
}

// RenderGraph writes the histogram as vertical bars, tallest level first:
//
//	 2 >    #######
//	 1 >    #######    #######
//	    +------------+----------+ ...
//
// One row is written per level from MaxCount down to 1; an empty histogram
// yields only the header and footer.
func RenderGraph(w io.Writer, h Histogram) error {
	bw := bufio.NewWriter(w)
	writeGraph(bw, h)

	return bw.Flush()
}

func writeGraph(bw *bufio.Writer, h Histogram) {
	bw.WriteString("\n\nGraph:\n\n")
	for level := h.MaxCount(); level >= 1; level-- {
		fmt.Fprintf(bw, "%2d >", level)
		for _, n := range h {
			if n >= level {
				bw.WriteString(barFilled)
			} else {
				bw.WriteString(barEmpty)
			}
		}
		bw.WriteByte('\n')
	}
	bw.WriteString(graphFooter)
}
