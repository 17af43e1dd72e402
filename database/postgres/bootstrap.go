package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS inventory (
	sku        TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	category   TEXT NOT NULL,
	location   TEXT NOT NULL DEFAULT 'main',
	on_hand    INTEGER NOT NULL DEFAULT 0,
	committed  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS rates (
	sku               TEXT PRIMARY KEY REFERENCES inventory (sku),
	daily             NUMERIC(12,2) NOT NULL,
	weekly            NUMERIC(12,2) NOT NULL DEFAULT 0,
	monthly           NUMERIC(12,2) NOT NULL DEFAULT 0,
	damage_waiver_pct NUMERIC(5,2) NOT NULL DEFAULT 0,
	delivery_fee_base NUMERIC(12,2) NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS pricing_policies (
	id                        SERIAL PRIMARY KEY,
	tax_rate_pct              NUMERIC(5,2) NOT NULL,
	tier_discounts            JSONB NOT NULL,
	default_damage_waiver_pct NUMERIC(5,2) NOT NULL DEFAULT 0,
	default_rental_days       INTEGER NOT NULL DEFAULT 3,
	fallback_skus             JSONB NOT NULL DEFAULT '[]',
	active                    BOOLEAN NOT NULL DEFAULT TRUE,
	created_at                TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS quote_runs (
	id          TEXT PRIMARY KEY,
	message     TEXT NOT NULL,
	tier        TEXT NOT NULL,
	status      TEXT NOT NULL,
	total_cents BIGINT NOT NULL DEFAULT 0,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	finished_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS run_steps (
	id         TEXT PRIMARY KEY,
	run_id     TEXT NOT NULL REFERENCES quote_runs (id),
	seq        INTEGER NOT NULL,
	name       TEXT NOT NULL,
	detail     TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_run_steps_run_id ON run_steps (run_id, seq);

CREATE TABLE IF NOT EXISTS quote_feedback (
	run_id          TEXT PRIMARY KEY REFERENCES quote_runs (id),
	rating          INTEGER NOT NULL,
	comment         TEXT NOT NULL DEFAULT '',
	goodwill_credit NUMERIC(12,2) NOT NULL DEFAULT 0,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

const seedInventory = `
INSERT INTO inventory (sku, name, category, location, on_hand) VALUES
	('CHAIR-FOLD-WHT',   'White Folding Chair',        'seating',   'main', 800),
	('CHAIR-CHIAVARI',   'Chiavari Chair',             'seating',   'main', 300),
	('TABLE-60RND',      '60 inch Round Table',        'tables',    'main', 120),
	('TABLE-8FT-RECT',   '8 foot Rectangular Table',   'tables',    'main', 150),
	('TABLE-6FT-RECT',   '6 foot Rectangular Table',   'tables',    'main', 100),
	('LINEN-120RND-WHT', '120 inch Round Linen White', 'linens',    'main', 400),
	('LINEN-120RND-BLK', '120 inch Round Linen Black', 'linens',    'main', 250),
	('TENT-10x10',       '10x10 Pop Up Tent',          'tents',     'yard', 40),
	('TENT-20x20',       '20x20 Frame Tent',           'tents',     'yard', 20),
	('TENT-40x60',       '40x60 Pole Tent',            'tents',     'yard', 6),
	('STAGE-4x8',        '4x8 Stage Platform',         'staging',   'yard', 60),
	('SPEAKER-PA-PRO',   'Professional PA System',     'av',        'main', 15),
	('SPEAKER-PA-BASIC', 'Basic Speaker',              'av',        'main', 30),
	('MIC-WIRELESS-HH',  'Wireless Handheld Mic',      'av',        'main', 40),
	('MIXER-8CH',        '8 Channel Audio Mixer',      'av',        'main', 12),
	('LIGHT-UPLIGHT-LED','LED Uplight',                'lighting',  'main', 200),
	('PROJECTOR-4K',     '4K Projector',               'av',        'main', 10),
	('SCREEN-PROJ-120',  '120 inch Projection Screen', 'av',        'main', 14),
	('LIFT-SCISSOR-19',  '19 foot Scissor Lift',       'equipment', 'yard', 8),
	('LIFT-SCISSOR-26',  '26 foot Scissor Lift',       'equipment', 'yard', 5),
	('LIFT-BOOM-40',     '40 foot Boom Lift',          'equipment', 'yard', 3),
	('GEN-10KW-DIESEL',  '10kW Diesel Generator',      'power',     'yard', 10),
	('GEN-5KW',          '5kW Generator',              'power',     'yard', 18),
	('COMPRESSOR-185CFM','185 CFM Air Compressor',     'equipment', 'yard', 6),
	('SCAFFOLD-5x5x7',   '5x5x7 Scaffold Frame',       'equipment', 'yard', 80),
	('FORKLIFT-5K',      '5000 lb Forklift',           'equipment', 'yard', 4),
	('SKIDSTEER-1800',   '1800 lb Skid Steer',         'equipment', 'yard', 3),
	('EXCAVATOR-MINI',   'Mini Excavator',             'equipment', 'yard', 3),
	('HEATER-PROPANE',   'Propane Patio Heater',       'climate',   'main', 50),
	('FAN-DRUM-36',      '36 inch Drum Fan',           'climate',   'main', 40)
ON CONFLICT (sku) DO NOTHING;
`

const seedRates = `
INSERT INTO rates (sku, daily, weekly, monthly, damage_waiver_pct, delivery_fee_base) VALUES
	('CHAIR-FOLD-WHT',    2.25,   9.00,   27.00,  0,  15.00),
	('CHAIR-CHIAVARI',    6.50,  26.00,   78.00,  0,  20.00),
	('TABLE-60RND',      11.25,  45.00,  135.00,  0,  25.00),
	('TABLE-8FT-RECT',    9.75,  39.00,  117.00,  0,  25.00),
	('TABLE-6FT-RECT',    8.50,  34.00,  102.00,  0,  25.00),
	('LINEN-120RND-WHT',  4.00,  16.00,   48.00,  0,  10.00),
	('LINEN-120RND-BLK',  4.00,  16.00,   48.00,  0,  10.00),
	('TENT-10x10',       45.00, 180.00,  540.00,  8,  40.00),
	('TENT-20x20',      120.00, 480.00, 1440.00,  8,  75.00),
	('TENT-40x60',      650.00,2600.00, 7800.00, 10, 250.00),
	('STAGE-4x8',        35.00, 140.00,  420.00,  5,  50.00),
	('SPEAKER-PA-PRO',   45.00, 180.00,  540.00, 10,  35.00),
	('SPEAKER-PA-BASIC', 20.00,  80.00,  240.00, 10,  20.00),
	('MIC-WIRELESS-HH',  15.00,  60.00,  180.00, 10,  10.00),
	('MIXER-8CH',        25.00, 100.00,  300.00, 10,  15.00),
	('LIGHT-UPLIGHT-LED', 8.00,  32.00,   96.00,  5,  10.00),
	('PROJECTOR-4K',     85.00, 340.00, 1020.00, 12,  25.00),
	('SCREEN-PROJ-120',  30.00, 120.00,  360.00,  8,  20.00),
	('LIFT-SCISSOR-19', 150.00, 600.00, 1800.00, 12, 110.00),
	('LIFT-SCISSOR-26', 195.00, 780.00, 2340.00, 12, 120.00),
	('LIFT-BOOM-40',    285.00,1140.00, 3420.00, 14, 150.00),
	('GEN-10KW-DIESEL', 110.00, 440.00, 1320.00, 10,  60.00),
	('GEN-5KW',          65.00, 260.00,  780.00, 10,  45.00),
	('COMPRESSOR-185CFM',95.00, 380.00, 1140.00, 10,  70.00),
	('SCAFFOLD-5x5x7',   18.00,  72.00,  216.00,  5,  35.00),
	('FORKLIFT-5K',     225.00, 900.00, 2700.00, 14, 160.00),
	('SKIDSTEER-1800',  240.00, 960.00, 2880.00, 14, 160.00),
	('EXCAVATOR-MINI',  260.00,1040.00, 3120.00, 14, 175.00),
	('HEATER-PROPANE',   28.00, 112.00,  336.00,  5,  20.00),
	('FAN-DRUM-36',      22.00,  88.00,  264.00,  5,  15.00)
ON CONFLICT (sku) DO NOTHING;
`

const seedPolicy = `
INSERT INTO pricing_policies (tax_rate_pct, tier_discounts, default_damage_waiver_pct, default_rental_days, fallback_skus, active)
SELECT 9.5, '{"A": 10, "B": 5, "C": 0}', 0, 3, '["CHAIR-FOLD-WHT", "TABLE-8FT-RECT"]', TRUE
WHERE NOT EXISTS (SELECT 1 FROM pricing_policies WHERE active = TRUE);
`

// Bootstrap creates the schema and seeds the catalog. Safe to run on
// every start; existing rows are left alone.
func Bootstrap(db *sqlx.DB) error {
	statements := []string{schemaDDL, seedInventory, seedRates, seedPolicy}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("bootstrap failed: %w", err)
		}
	}

	return nil
}
