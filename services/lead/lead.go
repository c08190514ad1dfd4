// Package lead records prospective students' contact details. Writes are
// append-only and run in the background; the caller never waits on storage.
package lead

import (
	"context"
	"errors"

	"github.com/Anirudh646/dfghjkddfghj/model"
	"github.com/Anirudh646/dfghjkddfghj/utils/validation"
)

var ErrLeadNotFound = errors.New("lead not found")

// Input is what the lead form submits
type Input struct {
	Name      string `json:"name" validate:"required,notblank,min=2,max=100"`
	Phone     string `json:"phone" validate:"required,phone10"`
	Source    string `json:"source,omitempty" validate:"omitempty,max=30"`
	SessionID string `json:"session_id,omitempty" validate:"omitempty,max=36"`
}

// ValidationError carries per-field messages for the form
type ValidationError struct {
	Fields  map[string]string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var validator = validation.NewValidator()

// Validate trims the input and checks it. Phone must be exactly ten digits.
func (in *Input) Validate() error {
	in.Name = validation.SanitizeString(in.Name)
	in.Phone = validation.SanitizeString(in.Phone)
	in.Source = validation.SanitizeString(in.Source)

	if fields, first := validator.Check(in); fields != nil {
		return &ValidationError{Fields: fields, Message: first}
	}
	return nil
}

// Store persists leads. Postgres and MongoDB implementations share the
// "leads" table/collection name.
type Store interface {
	Insert(ctx context.Context, lead *model.Lead) error
	List(ctx context.Context, limit, offset int) ([]model.Lead, int64, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (int64, error)
	Ping(ctx context.Context) error
}
