package handler

// registerRequest carries the registration payload. Role and status are not
// accepted: new accounts always start as active regular users.
type registerRequest struct {
	FullName string `json:"fullName" validate:"required,min=3,max=150"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,password"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// authResponse is returned by both register and login.
type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}
