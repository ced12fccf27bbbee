package event

import (
	"context"
	"io"

	"voice-scheduler/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Interpretation
	Interpret(ctx context.Context, sc model.Scope, input InterpretInput) (Draft, error)

	// Event CRUD
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Reports
	Export(ctx context.Context, sc model.Scope, input ListInput, w io.Writer) (ExportOutput, error)
}
