package ports

import "github.com/jhoicas/bloodbank-api/internal/domain/entity"

// ReceiptData datos necesarios para renderizar el comprobante de una entrega.
type ReceiptData struct {
	Supply       entity.BloodSupply
	Request      *entity.BloodRequest // nil si la solicitud ya no existe
	ReceiverName string
	ReceiverMail string
}

// ReceiptRenderer puerto de salida para generar el PDF del comprobante.
type ReceiptRenderer interface {
	SupplyReceipt(data ReceiptData) ([]byte, error)
}
