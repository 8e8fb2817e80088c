package presenter

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

const barWidth = 50

// PrintTermHistogram выводит текстовую гистограмму распределения
func PrintTermHistogram(gaps []float64, bins int) {
	for _, line := range termHistogramLines(gaps, bins) {
		fmt.Println(line)
	}
}

func termHistogramLines(gaps []float64, bins int) []string {
	if len(gaps) == 0 || bins < 1 {
		return nil
	}

	lo := floats.Min(gaps)
	hi := floats.Max(gaps)
	if hi == lo {
		hi = lo + 1
	}

	hist := make([]int, bins)
	for _, g := range gaps {
		bin := int((g - lo) / (hi - lo) * float64(bins))
		if bin >= bins {
			// верхняя граница попадает в последний бин
			bin = bins - 1
		}
		hist[bin]++
	}

	maxCount := 0
	for _, count := range hist {
		if count > maxCount {
			maxCount = count
		}
	}

	width := (hi - lo) / float64(bins)
	lines := make([]string, 0, bins)
	for i, count := range hist {
		bar := strings.Repeat("█", int(float64(count)/float64(maxCount)*barWidth))
		lines = append(lines, fmt.Sprintf("%.4f-%.4f: %s %d", lo+width*float64(i), lo+width*float64(i+1), bar, count))
	}
	return lines
}
