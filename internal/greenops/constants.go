package greenops

// EPA Formula Constants (2024 Edition)
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
// Each constant is the quantity of input per unit of equivalency:
//
//	equivalency = input / factor
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per smartphone charge.
	EPASmartphoneChargeFactor = 0.00822

	// EPATreeSeedlingFactor is kg CO2e absorbed per tree seedling over 10 years.
	EPATreeSeedlingFactor = 60.0
)

// Non-carbon factors.
const (
	// HomeElectricityKwhPerDay is the average US residential electricity use
	// per day (EIA, ~10,800 kWh per year).
	HomeElectricityKwhPerDay = 29.6

	// ShowerLiters is the water used by an average shower (EPA WaterSense,
	// 17.2 gallons).
	ShowerLiters = 65.1
)

// Display thresholds. Below these an equivalency rounds to nothing useful
// and is omitted.
const (
	MinCarbonThresholdKg   = 1.0
	MinEnergyThresholdKwh  = 1.0
	MinWaterThresholdLiter = 10.0

	// LargeNumberThreshold switches display to "~X.X million".
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches display to "~X.X billion".
	BillionThreshold = 1_000_000_000
)
