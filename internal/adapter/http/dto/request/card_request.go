package request

// RegisterCardRequest is the client-registration payload. Phone may arrive
// formatted ("(11) 99999-8888"); normalization happens in the use case.
type RegisterCardRequest struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	InitialPoints int    `json:"initial_points"`
}

// AddPointsRequest credits points to a card. Description is optional; the use
// case falls back to a default label.
type AddPointsRequest struct {
	Points      int    `json:"points" binding:"required"`
	Description string `json:"description"`
}

// RedeemVoucherRequest triggers a voucher redemption. CustomMessage overrides
// the establishment template when present.
type RedeemVoucherRequest struct {
	UserID        string `json:"user_id" binding:"required"`
	CustomMessage string `json:"custom_message"`
}
