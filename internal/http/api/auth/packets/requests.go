package packets

// body for registering an admin
type RegisterRequest struct {
	Name     string `json:"name" form:"name" binding:"required,max=50"`
	Email    string `json:"email" form:"email" binding:"required,email,rfcemail,max=50"`
	Password string `json:"password" form:"password" binding:"required,min=8,strongpassword"`
}

// body for logging in; strength rules only apply when a password is set
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email,max=50"`
	Password string `json:"password" form:"password" binding:"required"`
}
