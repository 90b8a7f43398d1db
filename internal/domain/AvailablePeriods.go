package domain

// AvailablePeriods lists the monthly periods present in the summary tables.
type AvailablePeriods struct {
	Periods []string `json:"periods"` // mm-yyyy
	Years   []string `json:"years"`
	Months  []string `json:"months"`
}
