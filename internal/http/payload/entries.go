package payload

import (
	"daybook/internal/core"

	"github.com/jellydator/validation"
)

type EntryRequest struct {
	Title    string `json:"title"`
	Notes    string `json:"notes"`
	PhotoURL string `json:"photoUrl"`
}

func (e EntryRequest) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Title, validation.Required),
		validation.Field(&e.Notes, validation.Required),
		validation.Field(&e.PhotoURL, validation.Required),
	)
}

func (e EntryRequest) ToMessage() core.EntryMessage {
	return core.EntryMessage{
		Title:    e.Title,
		Notes:    e.Notes,
		PhotoURL: e.PhotoURL,
	}
}
