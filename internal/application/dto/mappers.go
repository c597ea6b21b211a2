package dto

import (
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/ledger"
)

// FromCustomer convierte la entidad en su respuesta HTTP.
func FromCustomer(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Alias:       c.Alias,
		Phone:       c.Phone,
		Address:     c.Address,
		CreditLimit: c.CreditLimit,
		Regular:     c.Regular,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// FromSale convierte una venta sin datos de cliente.
func FromSale(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		Date:          s.Date,
		Total:         s.Total,
		Type:          s.Type,
		PaymentMethod: s.PaymentMethod,
		Status:        s.Status,
		Description:   s.Description,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// FromSaleView incluye nombre, alias y teléfono del cliente.
func FromSaleView(v *entity.SaleView) SaleResponse {
	r := FromSale(&v.Sale)
	r.CustomerName = v.CustomerName
	r.CustomerAlias = v.CustomerAlias
	r.CustomerPhone = v.CustomerPhone
	return r
}

func FromPayment(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		CustomerID:   p.CustomerID,
		CustomerName: p.CustomerName,
		Date:         p.Date,
		Amount:       p.Amount,
		Description:  p.Description,
		CreatedAt:    p.CreatedAt,
	}
}

func FromSupplier(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Phone:     s.Phone,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func FromSupplierPayment(p *entity.SupplierPayment) SupplierPaymentResponse {
	return SupplierPaymentResponse{
		ID:           p.ID,
		SupplierID:   p.SupplierID,
		SupplierName: p.SupplierName,
		Date:         p.Date,
		Amount:       p.Amount,
		Description:  p.Description,
		Method:       p.Method,
		CreatedAt:    p.CreatedAt,
	}
}

func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		SupplierID:   p.SupplierID,
		SupplierName: p.SupplierName,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromBusiness(b *entity.Business) BusinessResponse {
	return BusinessResponse{
		ID:            b.ID,
		Name:          b.Name,
		Phone:         b.Phone,
		ContactPerson: b.ContactPerson,
		Email:         b.Email,
		Address:       b.Address,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// FromBalance arma la respuesta de saldo con la etiqueta de situación.
func FromBalance(customerID int64, b ledger.Balance) BalanceResponse {
	return BalanceResponse{
		CustomerID:      customerID,
		CreditLimit:     b.CreditLimit,
		CreditTotal:     b.CreditTotal,
		PaymentsTotal:   b.PaymentsTotal,
		Balance:         b.Balance,
		AvailableCredit: b.AvailableCredit,
		Standing:        b.Standing(),
	}
}

// FromStatement las listas vacías se serializan como [] y no como null.
func FromStatement(st ledger.Statement) StatementResponse {
	sales := make([]SaleResponse, 0, len(st.CreditSales))
	for i := range st.CreditSales {
		sales = append(sales, FromSale(&st.CreditSales[i]))
	}
	payments := make([]PaymentResponse, 0, len(st.Payments))
	for i := range st.Payments {
		payments = append(payments, FromPayment(&st.Payments[i]))
	}
	return StatementResponse{
		Customer: FromCustomer(&st.Customer),
		Sales:    sales,
		Payments: payments,
		Balance:  FromBalance(st.Customer.ID, st.Balance),
	}
}

func FromAccountSummary(a ledger.AccountSummary) AccountSummaryResponse {
	return AccountSummaryResponse{
		Customer:        FromCustomer(&a.Customer),
		CreditSaleCount: a.CreditSaleCount,
		Balance:         FromBalance(a.Customer.ID, a.Balance),
	}
}
