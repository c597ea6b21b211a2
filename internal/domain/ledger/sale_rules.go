package ledger

import (
	"fmt"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// NormalizeNewSale valida el tipo de venta y deriva medio de pago y estado:
//   - credito y pendiente no tienen medio de pago ("n/a");
//   - contado exige efectivo o transferencia (vacío = efectivo);
//   - el estado es "pendiente" solo si el tipo es "pendiente".
func NormalizeNewSale(s *entity.Sale) error {
	if err := normalizeTypeAndMethod(s); err != nil {
		return err
	}
	s.Status = statusForType(s.Type)
	return nil
}

// NormalizeSaleUpdate aplica las mismas reglas de medio de pago que NormalizeNewSale,
// pero respeta el estado pedido: pasar de pendiente a completada (y viceversa) es
// siempre una edición explícita. Con status vacío se deriva del tipo.
func NormalizeSaleUpdate(s *entity.Sale, status string) error {
	if err := normalizeTypeAndMethod(s); err != nil {
		return err
	}
	switch status {
	case "":
		s.Status = statusForType(s.Type)
	case entity.SaleStatusCompleted, entity.SaleStatusPending:
		s.Status = status
	default:
		return fmt.Errorf("%w: estado %q no válido", domain.ErrInvalidInput, status)
	}
	return nil
}

func normalizeTypeAndMethod(s *entity.Sale) error {
	if s.Total.IsNegative() {
		return fmt.Errorf("%w: valor_total no puede ser negativo", domain.ErrInvalidInput)
	}
	switch s.Type {
	case entity.SaleTypeCredit, entity.SaleTypePending:
		s.PaymentMethod = entity.PaymentMethodNA
	case entity.SaleTypeCash:
		switch s.PaymentMethod {
		case "":
			s.PaymentMethod = entity.PaymentMethodCash
		case entity.PaymentMethodCash, entity.PaymentMethodTransfer:
		default:
			return fmt.Errorf("%w: medio_pago %q no válido para venta de contado", domain.ErrInvalidInput, s.PaymentMethod)
		}
	default:
		return fmt.Errorf("%w: tipo_venta %q no válido", domain.ErrInvalidInput, s.Type)
	}
	return nil
}

func statusForType(saleType string) string {
	if saleType == entity.SaleTypePending {
		return entity.SaleStatusPending
	}
	return entity.SaleStatusCompleted
}
