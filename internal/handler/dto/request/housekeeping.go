package request

type HousekeepingRequest struct {
	Status string `json:"status" binding:"required,oneof=dirty cleaning ready maintenance"`
	Notes  string `json:"notes" binding:"max=500"`
}
