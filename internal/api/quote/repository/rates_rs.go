package quoteRepository

import (
	"RentalCopilot/internal/entity"
	contextPkg "RentalCopilot/pkg/context"
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

type RateDB struct {
	SKU             sql.NullString  `db:"sku"`
	Daily           sql.NullFloat64 `db:"daily"`
	Weekly          sql.NullFloat64 `db:"weekly"`
	Monthly         sql.NullFloat64 `db:"monthly"`
	DamageWaiverPct sql.NullFloat64 `db:"damage_waiver_pct"`
	DeliveryFeeBase sql.NullFloat64 `db:"delivery_fee_base"`
}

func (r *ratesRepository) GetBySKUs(c context.Context, skus []string) (map[string]entity.RateRecord, error) {
	requestID := contextPkg.GetRequestID(c)

	if len(skus) == 0 {
		return map[string]entity.RateRecord{}, nil
	}

	query, args, err := sqlx.In(queryGetRatesBySKUs, skus)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for GetBySKUs")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []RateDB
	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when fetching rates")
		return nil, err
	}

	rates := make(map[string]entity.RateRecord, len(rows))
	for _, row := range rows {
		rates[row.SKU.String] = entity.RateRecord{
			SKU:             row.SKU.String,
			Daily:           row.Daily.Float64,
			Weekly:          row.Weekly.Float64,
			Monthly:         row.Monthly.Float64,
			DamageWaiverPct: row.DamageWaiverPct.Float64,
			DeliveryFeeBase: row.DeliveryFeeBase.Float64,
		}
	}

	return rates, nil
}

type PolicyDB struct {
	TaxRatePct             sql.NullFloat64 `db:"tax_rate_pct"`
	TierDiscounts          []byte          `db:"tier_discounts"`
	DefaultDamageWaiverPct sql.NullFloat64 `db:"default_damage_waiver_pct"`
	DefaultRentalDays      sql.NullInt64   `db:"default_rental_days"`
	FallbackSKUs           []byte          `db:"fallback_skus"`
}

func (r *policiesRepository) GetActive(c context.Context) (entity.PricingPolicy, error) {
	requestID := contextPkg.GetRequestID(c)

	var row PolicyDB
	if err := r.q.GetContext(c, &row, queryGetActivePolicy); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.PricingPolicy{}, err
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when fetching pricing policy")
		return entity.PricingPolicy{}, err
	}

	policy := entity.PricingPolicy{
		TaxRatePct:             row.TaxRatePct.Float64,
		TierDiscountPct:        map[string]float64{},
		DefaultDamageWaiverPct: row.DefaultDamageWaiverPct.Float64,
		DefaultRentalDays:      int(row.DefaultRentalDays.Int64),
	}

	if len(row.TierDiscounts) > 0 {
		if err := jsoniter.Unmarshal(row.TierDiscounts, &policy.TierDiscountPct); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to decode tier discounts")
			return entity.PricingPolicy{}, err
		}
	}
	if len(row.FallbackSKUs) > 0 {
		if err := jsoniter.Unmarshal(row.FallbackSKUs, &policy.FallbackSKUs); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to decode fallback skus")
			return entity.PricingPolicy{}, err
		}
	}

	return policy, nil
}
