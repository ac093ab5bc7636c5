package payload

import (
	"daybook/internal/core"

	"github.com/jellydator/validation"
)

// CredentialsRequest is the body of both sign-up and sign-in.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c CredentialsRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.Password, validation.Required),
	)
}

func (c CredentialsRequest) ToMessage() core.CredentialsMessage {
	return core.CredentialsMessage{
		Username: c.Username,
		Password: c.Password,
	}
}
