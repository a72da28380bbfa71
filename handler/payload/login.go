package payload

const LoginInvalidMessage = "Please enter a valid user id"

type LoginRequest struct {
	UserID string `validate:"required,max=64,printascii"`
}
