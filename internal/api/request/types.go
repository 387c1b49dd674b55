package request

// VerifyRequest is the body for the player verification endpoint.
type VerifyRequest struct {
	Tag string `json:"tag"`
}
