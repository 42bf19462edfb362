package resolver

// DefaultTables devuelve las tablas de resolución sembradas con los nombres
// históricos y actuales de los depósitos AOZ en Zürich y las categorías de
// artículos. El mismo depósito físico ha tenido varios nombres mostrados a lo
// largo del tiempo; todos convergen al mismo código loc_*.
func DefaultTables() Tables {
	return Tables{
		LocationAliases: map[string]string{
			// nombre antiguo → nombre nuevo
			"AOZ Central Warehouse":  "Zentrales Warenhaus",
			"AOZ Food Hub":           "Verpflegungszentrum",
			"AOZ Bedding Center":     "Bettenzentrum",
			"AOZ Hygiene Depot":      "Medizinverwaltung",
			"AOZ Outlet Zürich West": "AOZ Zürich West",

			// nombre nuevo → nombre nuevo (idempotente)
			"Zentrales Warenhaus": "Zentrales Warenhaus",
			"Verpflegungszentrum": "Verpflegungszentrum",
			"Bettenzentrum":       "Bettenzentrum",
			"Medizinverwaltung":   "Medizinverwaltung",
			"AOZ Zürich West":     "AOZ Zürich West",
		},
		LocationCodes: map[string]string{
			"Zentrales Warenhaus": "loc_centrum",
			"Verpflegungszentrum": "loc_west",
			"Bettenzentrum":       "loc_altstetten",
			"Medizinverwaltung":   "loc_oerlikon",
			"AOZ Zürich West":     "loc_zuerichwest",
		},
		CategoryAliases: map[string]string{
			"Bettwaren":              "bedding",
			"Lebensmittel":           "food",
			"Hygiene":                "hygiene",
			"Kleidung":               "clothing",
			"Kinder & Familie":       "family",
			"Medizin & Erste Hilfe":  "medical",
			"Werkzeuge & Ausrüstung": "tools",
		},
		Categories: map[string]bool{
			"bedding":  true,
			"food":     true,
			"hygiene":  true,
			"clothing": true,
			"family":   true,
			"medical":  true,
			"tools":    true,
		},
	}
}
