package scoring

import (
	"fmt"

	"github.com/opencnc/intake/internal/model"
)

// bandRow is one threshold band: scores up to and including Ceiling fall
// into this band. Rows must be sorted by ascending ceiling and the last
// ceiling must be 100 so the table partitions [0,100] with no gaps.
type bandRow struct {
	Ceiling int
	Label   string
	Color   string
}

var riskBands = []bandRow{
	{20, "Low", "#2ecc71"},
	{40, "Moderate", "#f1c40f"},
	{60, "Elevated", "#e67e22"},
	{80, "High", "#e74c3c"},
	{100, "Severe", "#c0392b"},
}

var confidenceBands = []bandRow{
	{20, "Very low", "#c0392b"},
	{40, "Low", "#e74c3c"},
	{60, "Medium", "#e67e22"},
	{80, "High", "#f1c40f"},
	{100, "Very high", "#2ecc71"},
}

func init() {
	if err := validateBands(riskBands, model.AxisRisk); err != nil {
		panic(err)
	}
	if err := validateBands(confidenceBands, model.AxisConfidence); err != nil {
		panic(err)
	}
}

func validateBands(bands []bandRow, axis model.Axis) error {
	if len(bands) == 0 {
		return fmt.Errorf("scoring: empty band table for axis %q", axis)
	}
	prev := -1
	for _, b := range bands {
		if b.Ceiling <= prev {
			return fmt.Errorf("scoring: band %q on axis %q breaks ascending ceilings", b.Label, axis)
		}
		if b.Label == "" || b.Color == "" {
			return fmt.Errorf("scoring: band with ceiling %d on axis %q missing label or color", b.Ceiling, axis)
		}
		prev = b.Ceiling
	}
	if prev != 100 {
		return fmt.Errorf("scoring: band table for axis %q does not reach 100", axis)
	}
	return nil
}

// ScoreToBand maps a 0..100 score to its severity band on the given axis.
// Every risk label displayed anywhere in the system must come from this
// function; there is no independent risk-label heuristic.
func ScoreToBand(score int, axis model.Axis) model.Band {
	bands := riskBands
	if axis == model.AxisConfidence {
		bands = confidenceBands
	}
	for _, b := range bands {
		if score <= b.Ceiling {
			return model.Band{Label: b.Label, Color: b.Color}
		}
	}
	last := bands[len(bands)-1]
	return model.Band{Label: last.Label, Color: last.Color}
}
