package entity

import "time"

// Channel canal de comunicación con el cliente.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelCall     Channel = "call"
)

// DeliveryStatus estado de entrega del mensaje.
type DeliveryStatus string

const (
	DeliverySent      DeliveryStatus = "sent"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryRead      DeliveryStatus = "read"
	DeliveryFailed    DeliveryStatus = "failed"
)

// Communication mensaje enviado a un cliente (recordatorios de cobro, avisos).
type Communication struct {
	ID          string         `json:"id"`
	CustomerID  string         `json:"customer_id"`
	Type        Channel        `json:"type"`
	Subject     string         `json:"subject,omitempty"`
	Message     string         `json:"message"`
	Status      DeliveryStatus `json:"status"`
	SentAt      time.Time      `json:"sent_at"`
	DeliveredAt *time.Time     `json:"delivered_at,omitempty"`
	ReadAt      *time.Time     `json:"read_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// CommunicationPatch actualización parcial (acuses de entrega y lectura).
type CommunicationPatch struct {
	Status      *DeliveryStatus
	DeliveredAt *time.Time
	ReadAt      *time.Time
}

// Apply copia sobre c los campos presentes en el patch.
func (p CommunicationPatch) Apply(c *Communication) {
	setIf(&c.Status, p.Status)
	if p.DeliveredAt != nil {
		c.DeliveredAt = p.DeliveredAt
	}
	if p.ReadAt != nil {
		c.ReadAt = p.ReadAt
	}
}
