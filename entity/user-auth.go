package entity

// UserAuth is the identity attached to an authenticated management request.
type UserAuth struct {
	Username string `json:"username" bson:"username"`
	Token    string `json:"token" bson:"token"`
}
