package repository

// Store agrupa los repositorios de escritura atados a una misma unidad de trabajo.
// Dentro de TxRunner.Run todos comparten la transacción.
type Store struct {
	Customers        CustomerRepository
	Sales            SaleRepository
	Payments         PaymentRepository
	Suppliers        SupplierRepository
	SupplierPayments SupplierPaymentRepository
	Products         ProductRepository
}
