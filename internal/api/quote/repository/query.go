package quoteRepository

const (
	queryGetRatesBySKUs = `
		SELECT
			sku,
			daily,
			weekly,
			monthly,
			damage_waiver_pct,
			delivery_fee_base
		FROM rates
		WHERE sku IN (?)
	`

	queryGetItemsBySKUs = `
		SELECT
			sku,
			name,
			category,
			location,
			on_hand,
			committed
		FROM inventory
		WHERE sku IN (?)
	`

	queryGetActivePolicy = `
		SELECT
			tax_rate_pct,
			tier_discounts,
			default_damage_waiver_pct,
			default_rental_days,
			fallback_skus
		FROM pricing_policies
		WHERE active = TRUE
		ORDER BY created_at DESC
		LIMIT 1
	`

	queryInsertRun = `
		INSERT INTO quote_runs (
			id,
			message,
			tier,
			status,
			total_cents,
			created_at
		) VALUES (
			:id,
			:message,
			:tier,
			:status,
			:total_cents,
			:created_at
		)
	`

	queryInsertRunStep = `
		INSERT INTO run_steps (
			id,
			run_id,
			seq,
			name,
			detail,
			created_at
		) VALUES (
			:id,
			:run_id,
			:seq,
			:name,
			:detail,
			:created_at
		)
	`

	queryFinishRun = `
		UPDATE quote_runs
		SET status = :status,
			total_cents = :total_cents,
			finished_at = :finished_at
		WHERE id = :id
	`

	queryGetRunByID = `
		SELECT
			id,
			message,
			tier,
			status,
			total_cents,
			created_at,
			finished_at
		FROM quote_runs
		WHERE id = :id
	`

	queryCountFeedback = `
		SELECT COUNT(1)
		FROM quote_feedback
		WHERE run_id = :run_id
	`

	queryInsertFeedback = `
		INSERT INTO quote_feedback (
			run_id,
			rating,
			comment,
			goodwill_credit,
			created_at
		) VALUES (
			:run_id,
			:rating,
			:comment,
			:goodwill_credit,
			:created_at
		)
	`
)
