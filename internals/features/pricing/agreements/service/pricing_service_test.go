package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "academia_backend/internals/features/pricing/agreements/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func f64(v float64) *float64 { return &v }

func percentAgreement(value float64, active bool, start time.Time, end *time.Time) model.AgreementModel {
	return model.AgreementModel{
		AgreementName:          "Colegio San Martín",
		AgreementDiscountType:  model.DiscountTypePercentage,
		AgreementDiscountValue: value,
		AgreementStartDate:     start,
		AgreementEndDate:       end,
		AgreementIsActive:      active,
	}
}

func TestComputePrice_NoAgreement(t *testing.T) {
	now := date(2025, 3, 1)

	q := ComputePrice(f64(600), nil, now)
	assert.Equal(t, 600.0, q.Price)
	assert.Nil(t, q.Agreement)
	assert.Contains(t, q.Explanation, "no discount")
}

func TestComputePrice_DefaultBaseWhenCourseHasNoLevels(t *testing.T) {
	q := ComputePrice(nil, nil, date(2025, 3, 1))
	assert.Equal(t, DefaultBasePrice, q.Price)
}

func TestComputePrice_PercentageDiscount(t *testing.T) {
	now := date(2025, 3, 1)
	ags := []model.AgreementModel{
		percentAgreement(10, true, date(2025, 1, 1), nil),
	}

	q := ComputePrice(f64(500), ags, now)
	assert.Equal(t, 450.0, q.Price)
	require.NotNil(t, q.Agreement)
	assert.Contains(t, q.Explanation, "Colegio San Martín")
}

func TestComputePrice_FixedAmountFloorsAtZero(t *testing.T) {
	now := date(2025, 3, 1)
	ags := []model.AgreementModel{{
		AgreementName:          "Beca completa",
		AgreementDiscountType:  model.DiscountTypeFixedAmount,
		AgreementDiscountValue: 800,
		AgreementStartDate:     date(2025, 1, 1),
		AgreementIsActive:      true,
	}}

	q := ComputePrice(f64(500), ags, now)
	assert.Equal(t, 0.0, q.Price)
}

func TestComputePrice_InactiveAgreementIgnored(t *testing.T) {
	now := date(2025, 3, 1)
	ags := []model.AgreementModel{
		percentAgreement(10, false, date(2025, 1, 1), nil),
	}

	q := ComputePrice(f64(500), ags, now)
	assert.Equal(t, 500.0, q.Price)
	assert.Nil(t, q.Agreement)
}

func TestPickActiveAgreement_WindowEdges(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   *time.Time
		now   time.Time
		want  bool
	}{
		{"now before start", date(2025, 2, 1), nil, date(2025, 1, 31), false},
		{"now equals start", date(2025, 2, 1), nil, date(2025, 2, 1), true},
		{"now equals end", date(2025, 1, 1), datePtr(2025, 3, 1), date(2025, 3, 1), true},
		{"mid-day on end date", date(2025, 1, 1), datePtr(2025, 3, 1), time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), true},
		{"mid-day on start date", date(2025, 2, 1), nil, time.Date(2025, 2, 1, 23, 59, 0, 0, time.UTC), true},
		{"now after end", date(2025, 1, 1), datePtr(2025, 3, 1), date(2025, 3, 2), false},
		{"open ended", date(2025, 1, 1), nil, date(2030, 1, 1), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ags := []model.AgreementModel{percentAgreement(10, true, tc.start, tc.end)}
			got := PickActiveAgreement(ags, tc.now)
			if tc.want {
				assert.NotNil(t, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestComputePrice_DiscountsThroughEndOfLastDay(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	ags := []model.AgreementModel{
		percentAgreement(10, true, date(2025, 1, 1), datePtr(2025, 3, 1)),
	}

	q := ComputePrice(f64(450), ags, now)
	assert.Equal(t, 405.0, q.Price)
	require.NotNil(t, q.Agreement)
}

func TestComputePrice_Deterministic(t *testing.T) {
	now := date(2025, 3, 1)
	ags := []model.AgreementModel{
		percentAgreement(25, true, date(2025, 1, 1), datePtr(2025, 12, 31)),
	}

	first := ComputePrice(f64(480), ags, now)
	second := ComputePrice(f64(480), ags, now)
	assert.Equal(t, first.Price, second.Price)
	assert.Equal(t, first.Explanation, second.Explanation)
}

func TestBreakdown_CarriesAgreementSnapshot(t *testing.T) {
	now := date(2025, 3, 1)
	ags := []model.AgreementModel{
		percentAgreement(10, true, date(2025, 1, 1), nil),
	}

	q := ComputePrice(f64(500), ags, now)
	b := q.Breakdown(f64(500))
	assert.Equal(t, 500.0, b["base_price"])
	assert.Equal(t, 450.0, b["final_price"])
	assert.Equal(t, "Colegio San Martín", b["agreement_name"])
	assert.Equal(t, "PERCENTAGE", b["discount_type"])
}
