package models

// Record is one parsed line of the pokedex file. Fields stay as text.
type Record []string

// Creature is the typed view of a Record served over the API
type Creature struct {
	No         int    `json:"no"`
	Name       string `json:"name"`
	Type1      string `json:"type_1"`
	Type2      string `json:"type_2,omitempty"`
	Total      int    `json:"total"`
	HP         int    `json:"hp"`
	Attack     int    `json:"attack"`
	Defense    int    `json:"defense"`
	SpAtk      int    `json:"sp_atk"`
	SpDef      int    `json:"sp_def"`
	Speed      int    `json:"speed"`
	Generation int    `json:"generation"`
	Legendary  bool   `json:"legendary"`
}

type Page struct {
	Data   []Creature `json:"data"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

type Summary struct {
	Records     int             `json:"records"`
	Legendary   int             `json:"legendary"`
	Types       []TypeStat      `json:"types"`
	Generations []GenerationRow `json:"generations"`
}

type TypeStat struct {
	Type     string `json:"type"`
	Count    int    `json:"count"`
	AvgTotal int    `json:"avg_total"`
}

type GenerationRow struct {
	Generation string `json:"generation"`
	Count      int    `json:"count"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
