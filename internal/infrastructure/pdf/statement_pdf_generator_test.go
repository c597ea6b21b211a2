package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/ledger"
)

func TestGenerate_ProducePDF(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	g := &StatementGenerator{now: func() time.Time { return now }}
	cid := int64(1)
	st := ledger.BuildStatement(
		entity.Customer{ID: cid, Name: "Ana", Alias: "La vecina", CreditLimit: decimal.NewFromInt(100000)},
		[]entity.Sale{{ID: 1, CustomerID: &cid, Date: now, Total: decimal.NewFromInt(60000),
			Type: entity.SaleTypeCredit, Status: entity.SaleStatusCompleted, Description: "Mercado"}},
		[]entity.Payment{{ID: 1, CustomerID: cid, Date: now, Amount: decimal.NewFromInt(20000)}},
	)

	out, err := g.Generate(context.Background(), &entity.Business{Name: "Tienda Don Pepe"}, st)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerate_SinNegocioNiMovimientos(t *testing.T) {
	g := NewStatementGenerator()
	st := ledger.BuildStatement(entity.Customer{ID: 2, Name: "Beto"}, nil, nil)

	out, err := g.Generate(context.Background(), nil, st)

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestStandingLabel(t *testing.T) {
	assert.Equal(t, "Saldo pendiente", standingLabel(ledger.StandingOwes))
	assert.Equal(t, "Saldo a favor", standingLabel(ledger.StandingInFavor))
	assert.Equal(t, "Al día", standingLabel(ledger.StandingEven))
}
