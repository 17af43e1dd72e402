package nlp

// DefaultSynonyms returns the built-in phrase-to-SKU table covering the
// rental catalog. Keys are stored as written here and normalized by
// NewMatcher, so plural and size-notation variants collapse onto one entry.
// More specific phrases must map to more specific SKUs; the generic noun
// maps to the house default for that noun.
func DefaultSynonyms() SynonymTable {
	return SynonymTable{
		// Event - chairs
		"white folding chair":   {"CHAIR-FOLD-WHT"},
		"plastic folding chair": {"CHAIR-FOLD-WHT"},
		"folding chair white":   {"CHAIR-FOLD-WHT"},
		"white plastic chair":   {"CHAIR-FOLD-WHT"},
		"folding chair":         {"CHAIR-FOLD-WHT"},
		"white chair":           {"CHAIR-FOLD-WHT"},
		"plastic chair":         {"CHAIR-FOLD-WHT"},
		"chair":                 {"CHAIR-FOLD-WHT"},
		"chiavari chair":        {"CHAIR-CHIAVARI"},
		"chiavari":              {"CHAIR-CHIAVARI"},
		"gold chair":            {"CHAIR-CHIAVARI"},

		// Event - tables
		"60 inch round table":      {"TABLE-60RND"},
		"60 round table":           {"TABLE-60RND"},
		"60 inch table":            {"TABLE-60RND"},
		"5 foot round table":       {"TABLE-60RND"},
		"round table":              {"TABLE-60RND"},
		"8 foot rectangular table": {"TABLE-8FT-RECT"},
		"8 foot banquet table":     {"TABLE-8FT-RECT"},
		"8 foot table":             {"TABLE-8FT-RECT"},
		"rectangular table":        {"TABLE-8FT-RECT"},
		"banquet table":            {"TABLE-8FT-RECT"},
		"6 foot rectangular table": {"TABLE-6FT-RECT"},
		"6 foot table":             {"TABLE-6FT-RECT"},
		"table":                    {"TABLE-8FT-RECT"},

		// Event - linens
		"white tablecloth": {"LINEN-120RND-WHT"},
		"white linen":      {"LINEN-120RND-WHT"},
		"tablecloth":       {"LINEN-120RND-WHT"},
		"linen":            {"LINEN-120RND-WHT"},
		"black tablecloth": {"LINEN-120RND-BLK"},
		"black linen":      {"LINEN-120RND-BLK"},

		// Event - tents and staging
		"10 x 10 tent":   {"TENT-10x10"},
		"10x10 tent":     {"TENT-10x10"},
		"pop up tent":    {"TENT-10x10"},
		"popup tent":     {"TENT-10x10"},
		"canopy":         {"TENT-10x10"},
		"20 x 20 tent":   {"TENT-20x20"},
		"20x20 tent":     {"TENT-20x20"},
		"frame tent":     {"TENT-20x20"},
		"40 x 60 tent":   {"TENT-40x60"},
		"40x60 tent":     {"TENT-40x60"},
		"pole tent":      {"TENT-40x60"},
		"large tent":     {"TENT-40x60"},
		"tent":           {"TENT-20x20"},
		"stage platform": {"STAGE-4x8"},
		"stage":          {"STAGE-4x8"},
		"platform":       {"STAGE-4x8"},

		// Audio/Visual
		"professional pa system": {"SPEAKER-PA-PRO"},
		"pro pa system":          {"SPEAKER-PA-PRO"},
		"professional speaker":   {"SPEAKER-PA-PRO"},
		"pa system":              {"SPEAKER-PA-PRO"},
		"sound system":           {"SPEAKER-PA-PRO"},
		"audio system":           {"SPEAKER-PA-PRO"},
		"pa":                     {"SPEAKER-PA-PRO"},
		"speaker":                {"SPEAKER-PA-BASIC"},
		"wireless microphone":    {"MIC-WIRELESS-HH"},
		"wireless mic":           {"MIC-WIRELESS-HH"},
		"handheld microphone":    {"MIC-WIRELESS-HH"},
		"handheld mic":           {"MIC-WIRELESS-HH"},
		"microphone":             {"MIC-WIRELESS-HH"},
		"mic":                    {"MIC-WIRELESS-HH"},
		"audio mixer":            {"MIXER-8CH"},
		"mixer":                  {"MIXER-8CH"},
		"led uplight":            {"LIGHT-UPLIGHT-LED"},
		"uplight":                {"LIGHT-UPLIGHT-LED"},
		"led light":              {"LIGHT-UPLIGHT-LED"},
		"light":                  {"LIGHT-UPLIGHT-LED"},
		"4k projector":           {"PROJECTOR-4K"},
		"projector":              {"PROJECTOR-4K"},
		"projection screen":      {"SCREEN-PROJ-120"},
		"screen":                 {"SCREEN-PROJ-120"},

		// Construction
		"19 foot scissor lift":  {"LIFT-SCISSOR-19"},
		"19 foot lift":          {"LIFT-SCISSOR-19"},
		"26 foot scissor lift":  {"LIFT-SCISSOR-26"},
		"26 foot lift":          {"LIFT-SCISSOR-26"},
		"scissor lift":          {"LIFT-SCISSOR-19"},
		"40 foot boom lift":     {"LIFT-BOOM-40"},
		"boom lift":             {"LIFT-BOOM-40"},
		"telescopic lift":       {"LIFT-BOOM-40"},
		"lift":                  {"LIFT-SCISSOR-19"},
		"10kw diesel generator": {"GEN-10KW-DIESEL"},
		"10kw generator":        {"GEN-10KW-DIESEL"},
		"diesel generator":      {"GEN-10KW-DIESEL"},
		"5kw generator":         {"GEN-5KW"},
		"portable generator":    {"GEN-5KW"},
		"generator":             {"GEN-5KW"},
		"gen":                   {"GEN-5KW"},
		"air compressor":        {"COMPRESSOR-185CFM"},
		"compressor":            {"COMPRESSOR-185CFM"},
		"scaffolding":           {"SCAFFOLD-5x5x7"},
		"scaffold":              {"SCAFFOLD-5x5x7"},

		// Heavy equipment
		"fork lift":      {"FORKLIFT-5K"},
		"forklift":       {"FORKLIFT-5K"},
		"skid steer":     {"SKIDSTEER-1800"},
		"skidsteer":      {"SKIDSTEER-1800"},
		"loader":         {"SKIDSTEER-1800"},
		"mini excavator": {"EXCAVATOR-MINI"},
		"excavator":      {"EXCAVATOR-MINI"},

		// Climate control
		"propane heater": {"HEATER-PROPANE"},
		"heater":         {"HEATER-PROPANE"},
		"drum fan":       {"FAN-DRUM-36"},
		"fan":            {"FAN-DRUM-36"},
	}
}

// DefaultWordNumbers covers spelled-out quantities up to the forms customers
// actually type. Compounds like "twenty five" are assembled by the parser
// from the tens and units entries; fixed compounds get their own key.
func DefaultWordNumbers() WordNumberTable {
	return WordNumberTable{
		"a": 1, "an": 1,
		"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
		"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
		"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
		"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
		"nineteen": 19,
		"twenty":   20, "thirty": 30, "forty": 40, "fifty": 50,
		"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
		"hundred":    100,
		"dozen":      12,
		"half dozen": 6,
	}
}
