// file: internals/features/pricing/agreements/service/pricing_service.go
package service

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	agreementModel "academia_backend/internals/features/pricing/agreements/model"
)

// Tuition charged when a course carries no level with a base price.
const DefaultBasePrice = 450.0

// PriceQuote is the result of the enrollment-time pricing computation.
// Price gets frozen into enrollment_agreed_price; the breakdown is stored
// next to it so report screens can show which rule applied without ever
// recomputing.
type PriceQuote struct {
	Price       float64
	Explanation string
	Agreement   *agreementModel.AgreementModel
}

// PickActiveAgreement returns the first agreement that is active and whose
// validity window contains now. Inactive or out-of-window agreements never
// discount.
func PickActiveAgreement(agreements []agreementModel.AgreementModel, now time.Time) *agreementModel.AgreementModel {
	for i := range agreements {
		a := &agreements[i]
		if !a.AgreementIsActive {
			continue
		}
		if a.CoversDate(now) {
			return a
		}
	}
	return nil
}

// ComputePrice applies the enrollment pricing rules. Pure: same inputs, same
// quote. basePrice is the first level's base price, nil when the course has
// no levels.
func ComputePrice(basePrice *float64, agreements []agreementModel.AgreementModel, now time.Time) PriceQuote {
	price := DefaultBasePrice
	if basePrice != nil {
		price = *basePrice
	}

	ag := PickActiveAgreement(agreements, now)
	if ag == nil {
		return PriceQuote{
			Price:       price,
			Explanation: fmt.Sprintf("Base price %.2f, no discount applied", price),
		}
	}

	switch ag.AgreementDiscountType {
	case agreementModel.DiscountTypePercentage:
		price = price - price*ag.AgreementDiscountValue/100
	case agreementModel.DiscountTypeFixedAmount:
		price = price - ag.AgreementDiscountValue
		if price < 0 {
			price = 0
		}
	}

	return PriceQuote{
		Price: price,
		Explanation: fmt.Sprintf("Agreement %q applied (%s %.2f)",
			ag.AgreementName, ag.AgreementDiscountType, ag.AgreementDiscountValue),
		Agreement: ag,
	}
}

// Breakdown renders the quote as the JSON snapshot stored on the enrollment.
func (q PriceQuote) Breakdown(basePrice *float64) datatypes.JSONMap {
	base := DefaultBasePrice
	if basePrice != nil {
		base = *basePrice
	}
	m := datatypes.JSONMap{
		"base_price":  base,
		"final_price": q.Price,
		"explanation": q.Explanation,
	}
	if q.Agreement != nil {
		m["agreement_id"] = q.Agreement.AgreementID.String()
		m["agreement_name"] = q.Agreement.AgreementName
		m["discount_type"] = string(q.Agreement.AgreementDiscountType)
		m["discount_value"] = q.Agreement.AgreementDiscountValue
	}
	return m
}
