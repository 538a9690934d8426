package request

type PauseSessionRequest struct {
	// Pointer so an omitted field is distinguishable from an explicit false.
	IsOrderPaused *bool `json:"is_order_paused" binding:"required"`
}
