package inventoryRepository

const (
	queryListInventory = `
		SELECT
			i.sku,
			i.name,
			i.category,
			i.location,
			i.on_hand,
			i.committed,
			COALESCE(r.daily, 0) AS daily
		FROM inventory i
		LEFT JOIN rates r ON r.sku = i.sku
		ORDER BY i.category, i.name
	`

	queryListInventoryByCategory = `
		SELECT
			i.sku,
			i.name,
			i.category,
			i.location,
			i.on_hand,
			i.committed,
			COALESCE(r.daily, 0) AS daily
		FROM inventory i
		LEFT JOIN rates r ON r.sku = i.sku
		WHERE i.category = :category
		ORDER BY i.name
	`

	queryGetInventoryBySKU = `
		SELECT
			i.sku,
			i.name,
			i.category,
			i.location,
			i.on_hand,
			i.committed,
			COALESCE(r.daily, 0) AS daily
		FROM inventory i
		LEFT JOIN rates r ON r.sku = i.sku
		WHERE i.sku = :sku
	`

	queryListCategories = `
		SELECT DISTINCT category
		FROM inventory
		ORDER BY category
	`
)
