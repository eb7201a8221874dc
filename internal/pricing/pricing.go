// Package pricing computes delivery fees in Taka.
//
// Fees are a pure function of parcel type, weight and the two districts.
// A zero fee means the input is incomplete, never a free shipment.
package pricing

import (
	"math"

	"zoomboom/internal/model"
)

const (
	DocumentWithinCity   = 60
	DocumentOutsideCity  = 80
	GoodsWithinCity      = 110
	GoodsOutsideCity     = 150
	FreeWeightKg         = 3.0
	MaxWeightKg          = 50.0
	PerExtraKg           = 40
	OutsideCitySurcharge = 40
)

// Input is the subset of a parcel draft the fee depends on.
type Input struct {
	ParcelType       model.ParcelType `json:"parcelType"`
	ParcelWeight     float64          `json:"parcelWeight"`
	SenderDistrict   string           `json:"senderDistrict"`
	ReceiverDistrict string           `json:"receiverDistrict"`
}

// FromDraft extracts the pricing input of a draft.
func FromDraft(d model.ParcelDraft) Input {
	return Input{
		ParcelType:       d.ParcelType,
		ParcelWeight:     d.ParcelWeight,
		SenderDistrict:   d.SenderDistrict,
		ReceiverDistrict: d.ReceiverDistrict,
	}
}

// Quote is a fee with the breakdown shown on booking confirmation.
type Quote struct {
	Fee                int  `json:"fee"`
	BaseFare           int  `json:"baseFare"`
	ExtraWeightUnits   int  `json:"extraWeightUnits"`
	ExtraWeightFee     int  `json:"extraWeightFee"`
	InterCitySurcharge int  `json:"interCitySurcharge"`
	WithinCity         bool `json:"withinCity"`
	Computable         bool `json:"computable"`
}

// Calculate prices in. Anything that is not a document is priced as goods.
//
// The outside-city surcharge for goods only applies together with the
// extra weight charge. Shipments of 3 kg or less pay the base fare alone.
// Goods heavier than MaxWeightKg, or with a non-finite weight, are not computable.
func Calculate(in Input) Quote {
	if in.SenderDistrict == "" || in.ReceiverDistrict == "" {
		return Quote{}
	}

	q := Quote{WithinCity: in.SenderDistrict == in.ReceiverDistrict}

	if in.ParcelType == model.ParcelTypeDocument {
		q.BaseFare = DocumentOutsideCity
		if q.WithinCity {
			q.BaseFare = DocumentWithinCity
		}
	} else {
		w := in.ParcelWeight
		if math.IsNaN(w) || math.IsInf(w, 0) || w > MaxWeightKg {
			return Quote{}
		}
		q.BaseFare = GoodsOutsideCity
		if q.WithinCity {
			q.BaseFare = GoodsWithinCity
		}
		if in.ParcelWeight > FreeWeightKg {
			q.ExtraWeightUnits = int(math.Ceil(in.ParcelWeight - FreeWeightKg))
			q.ExtraWeightFee = q.ExtraWeightUnits * PerExtraKg
			if !q.WithinCity {
				q.InterCitySurcharge = OutsideCitySurcharge
			}
		}
	}

	q.Fee = q.BaseFare + q.ExtraWeightFee + q.InterCitySurcharge
	q.Computable = q.Fee > 0
	return q
}

// Fee is Calculate(in).Fee.
func Fee(in Input) int {
	return Calculate(in).Fee
}
