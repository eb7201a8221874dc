package model

import "time"

// ParcelType distinguishes flat-rate documents from weighed goods.
type ParcelType string

const (
	ParcelTypeDocument    ParcelType = "document"
	ParcelTypeNonDocument ParcelType = "not-document"
)

// Valid reports whether t is one of the known parcel types.
func (t ParcelType) Valid() bool {
	return t == ParcelTypeDocument || t == ParcelTypeNonDocument
}

// ParcelStatus is the lifecycle state of a booked parcel.
type ParcelStatus string

const (
	ParcelStatusPending ParcelStatus = "Pending"
	ParcelStatusPaid    ParcelStatus = "Paid"
)

// ParcelDraft is the booking form payload. It is never persisted on its own.
type ParcelDraft struct {
	ParcelType       ParcelType `json:"parcelType" validate:"required,parceltype"`
	ParcelName       string     `json:"parcelName" validate:"required"`
	ParcelWeight     float64    `json:"parcelWeight" validate:"gte=0.1,lte=50"`
	SenderName       string     `json:"senderName" validate:"required"`
	SenderPhone      string     `json:"senderPhone" validate:"required"`
	SenderDistrict   string     `json:"senderDistrict" validate:"required"`
	SenderArea       string     `json:"senderArea" validate:"required"`
	SenderAddress    string     `json:"senderAddress" validate:"required"`
	ReceiverName     string     `json:"receiverName" validate:"required"`
	ReceiverPhone    string     `json:"receiverPhone" validate:"required"`
	ReceiverDistrict string     `json:"receiverDistrict" validate:"required"`
	ReceiverArea     string     `json:"receiverArea" validate:"required"`
	ReceiverAddress  string     `json:"receiverAddress" validate:"required"`
}

// SameArea reports whether pickup and delivery point at the same area.
func (d ParcelDraft) SameArea() bool {
	return d.SenderArea != "" && d.SenderArea == d.ReceiverArea
}

// ParcelPatch carries optional draft fields for an update.
type ParcelPatch struct {
	ParcelType       *ParcelType `json:"parcelType"`
	ParcelName       *string     `json:"parcelName"`
	ParcelWeight     *float64    `json:"parcelWeight"`
	SenderName       *string     `json:"senderName"`
	SenderPhone      *string     `json:"senderPhone"`
	SenderDistrict   *string     `json:"senderDistrict"`
	SenderArea       *string     `json:"senderArea"`
	SenderAddress    *string     `json:"senderAddress"`
	ReceiverName     *string     `json:"receiverName"`
	ReceiverPhone    *string     `json:"receiverPhone"`
	ReceiverDistrict *string     `json:"receiverDistrict"`
	ReceiverArea     *string     `json:"receiverArea"`
	ReceiverAddress  *string     `json:"receiverAddress"`
}

// Apply returns a copy of d with every non-nil field of p applied.
func (p ParcelPatch) Apply(d ParcelDraft) ParcelDraft {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	if p.ParcelType != nil {
		d.ParcelType = *p.ParcelType
	}
	if p.ParcelWeight != nil {
		d.ParcelWeight = *p.ParcelWeight
	}
	set(&d.ParcelName, p.ParcelName)
	set(&d.SenderName, p.SenderName)
	set(&d.SenderPhone, p.SenderPhone)
	set(&d.SenderDistrict, p.SenderDistrict)
	set(&d.SenderArea, p.SenderArea)
	set(&d.SenderAddress, p.SenderAddress)
	set(&d.ReceiverName, p.ReceiverName)
	set(&d.ReceiverPhone, p.ReceiverPhone)
	set(&d.ReceiverDistrict, p.ReceiverDistrict)
	set(&d.ReceiverArea, p.ReceiverArea)
	set(&d.ReceiverAddress, p.ReceiverAddress)
	return d
}

// Parcel is a booked shipment.
type Parcel struct {
	ParcelDraft

	ID         string       `json:"_id"`
	TrackingID string       `json:"parcelId"`
	UserEmail  string       `json:"userEmail"`
	TotalCost  int          `json:"totalCost"`
	Status     ParcelStatus `json:"status"`
	BookedAt   time.Time    `json:"bookedAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}
