package materials

// Rule-of-thumb coefficients for common site work. Volumes are in cft and
// thicknesses in inches unless noted.
const (
	BricksPerSqFt9In   = 13.5 // 9" wall
	BricksPerSqFt4In   = 7.0  // 4.5" wall
	MortarFraction     = 0.3  // share of wall volume that is mortar
	CementBagsPerCft   = 1.5  // mortar and plaster
	SandCftPerCft      = 35.0 // mortar and plaster
	PlasterWetFactor   = 1.33
	FloorCementPerCft  = 2.0
	FloorSandPerCft    = 40.0
	TileWastageFactor  = 1.1
	ConcreteDryFactor  = 1.54
	RCCCementPerCft    = 6.4
	RCCSandPerCft      = 15.0
	RCCAggregatePerCft = 30.0
	RCCSteelPerSqFt    = 4.0 // kg
	DefaultThicknessIn = 4.0
)
