package request_models

// TravelPlanRequest is the body of POST /app/travel-plan. Pointer fields
// distinguish "absent" from a zero value; a null city is rejected.
type TravelPlanRequest struct {
	Country        *string   `json:"country" binding:"required"`
	Interest       *string   `json:"interest" binding:"required"`
	Days           *int      `json:"days" binding:"required"`
	StartDate      string    `json:"startDate"` // YYYY-MM-DD
	Regenerate     *int      `json:"regenerate"`
	Feedback       *string   `json:"feedback"`
	ApprovedCities []*string `json:"approvedCities" binding:"omitempty,dive,required"`
}
