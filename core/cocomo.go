package core

import (
	"math"

	"github.com/gitsum/gitsum/schema"
)

// Basic COCOMO coefficients for the "organic" project class.
const (
	cocomoA        = 2.4
	cocomoB        = 1.05
	cocomoTimeC    = 2.5
	cocomoTimeExp  = 0.38
	monthsPerYear  = 12.0
)

// EstimateCocomo computes the organic-model effort projection from the
// aggregated line changes. Under pure accounting the size basis is net
// added minus deleted lines, floored at zero; otherwise it is the total
// impact (added plus deleted). Zero size yields an all-zero estimate.
func EstimateCocomo(added, deleted int, pure bool, yearlySalary float64) schema.CocomoEstimate {
	lines := added + deleted
	if pure {
		lines = added - deleted
		if lines < 0 {
			lines = 0
		}
	}

	kloc := float64(lines) / 1000.0
	effort := cocomoA * math.Pow(kloc, cocomoB)
	devTime := cocomoTimeC * math.Pow(effort, cocomoTimeExp)

	var staff float64
	if devTime > 0 {
		staff = effort / devTime
	}

	return schema.CocomoEstimate{
		KLOC:         kloc,
		EffortMonths: effort,
		DevTime:      devTime,
		AvgStaff:     staff,
		Cost:         effort * (yearlySalary / monthsPerYear),
		Pure:         pure,
	}
}
