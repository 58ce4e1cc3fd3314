package responses

// CreateUserResponse confirms a user insert.
type CreateUserResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// BuildCreateUserResponse creates the response for a newly inserted row
func BuildCreateUserResponse(userID int64) *CreateUserResponse {
	return &CreateUserResponse{
		Message: "User created successfully",
		UserID:  userID,
	}
}
