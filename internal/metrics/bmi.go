// Package metrics holds the pure display-layer computations: BMI
// classification, workout calorie previews, and motivational message
// selection. Nothing here touches the network or mutable state.
package metrics

// BMICategory is one segment of the BMI scale with its display message.
type BMICategory struct {
	Label   string
	Message string
}

var (
	bmiUnderweight = BMICategory{Label: "Underweight", Message: "Time to fuel your body with more nutrients!"}
	bmiNormal      = BMICategory{Label: "Normal", Message: "Great! Keep maintaining your healthy lifestyle!"}
	bmiOverweight  = BMICategory{Label: "Overweight", Message: "Small steps daily will bring big results!"}
	bmiObese       = BMICategory{Label: "Obese", Message: "Every workout brings you closer to a healthier you!"}
)

// ClassifyBMI maps a BMI value to its category. Boundary values belong to
// the higher segment: 18.5 is Normal, 25 is Overweight, 30 is Obese.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return bmiUnderweight
	case bmi < 25:
		return bmiNormal
	case bmi < 30:
		return bmiOverweight
	default:
		return bmiObese
	}
}
