package xbrz

// ScalerConfig tunes the thresholds used by corner classification and
// blending. The defaults match the xBRZ 1.8 reference.
type ScalerConfig struct {
	// EqualColorTolerance is the distance below which two colours are
	// considered equal for blending decisions.
	EqualColorTolerance float64

	// CenterDirectionBias weights the centre cross-comparison (F-K vs J-G)
	// in corner classification.
	CenterDirectionBias float64

	// DominantDirectionThreshold is the ratio above which the weaker
	// diagonal is considered dominated, forcing Dominant over Normal.
	DominantDirectionThreshold float64

	// SteepDirectionThreshold is the ratio threshold distinguishing steep
	// from shallow line blending.
	SteepDirectionThreshold float64
}

// DefaultScalerConfig returns the reference xBRZ 1.8 tuning.
func DefaultScalerConfig() ScalerConfig {
	return ScalerConfig{
		EqualColorTolerance:        30.0,
		CenterDirectionBias:        4.0,
		DominantDirectionThreshold: 3.6,
		SteepDirectionThreshold:    2.2,
	}
}
