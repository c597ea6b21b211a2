package ports

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/ledger"
)

// StatementPDFGenerator renderiza un estado de cuenta como PDF.
// Cualquier adaptador (maroto, mock) implementa esta interfaz.
type StatementPDFGenerator interface {
	Generate(ctx context.Context, business *entity.Business, statement ledger.Statement) ([]byte, error)
}
