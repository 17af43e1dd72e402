package runsRepository

const (
	queryListRuns = `
		SELECT
			id,
			message,
			tier,
			status,
			total_cents,
			created_at,
			finished_at
		FROM quote_runs
		ORDER BY created_at DESC
		LIMIT :limit
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

	queryGetRunSteps = `
		SELECT
			id,
			run_id,
			seq,
			name,
			detail,
			created_at
		FROM run_steps
		WHERE run_id = :run_id
		ORDER BY seq ASC
	`
)
