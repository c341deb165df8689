package model

type User struct {
	ID    string `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

type SignUpReq struct {
	UID      string `json:"uid"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type TokenReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenRes struct {
	IDToken string `json:"id_token"`
}

type SignInReq struct {
	Email   string `json:"email" binding:"required,email"`
	IDToken string `json:"id_token" binding:"required"`
}

type ForgotPasswordReq struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyResetCodeReq struct {
	Mode        string `json:"mode"`
	OobCode     string `json:"oob_code"`
	ContinueURL string `json:"continue_url"`
}

type VerifyResetCodeRes struct {
	Email string `json:"email"`
}

type ResetPasswordReq struct {
	OobCode  string `json:"oob_code" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type ContactReq struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}
