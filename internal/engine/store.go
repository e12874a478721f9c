package engine

import (
	"fmt"
	"strconv"

	"pokedex/internal/models"
)

// NumColumns is the field count of a well-formed line.
const NumColumns = 13

// Column names as they appear in the pokedex header
const (
	ColNo         = "No"
	ColName       = "Name"
	ColType1      = "Type 1"
	ColType2      = "Type 2"
	ColTotal      = "Total"
	ColHP         = "HP"
	ColAttack     = "Attack"
	ColDefense    = "Defense"
	ColSpAtk      = "Sp. Atk"
	ColSpDef      = "Sp. Def"
	ColSpeed      = "Speed"
	ColGeneration = "Generation"
	ColLegendary  = "Legendary"
)

// Store holds every parsed line in file order. Row 0 is the header.
// It has no mutators; it is built once by Parse and only read afterwards.
type Store struct {
	rows []models.Record
}

// NewStore wraps already split rows. rows[0] must be the header.
func NewStore(rows []models.Record) *Store {
	return &Store{rows: rows}
}

// Header returns row 0.
func (s *Store) Header() models.Record {
	if len(s.rows) == 0 {
		return nil
	}
	return s.rows[0]
}

// Len counts all rows including the header.
func (s *Store) Len() int { return len(s.rows) }

// DataLen counts data rows only.
func (s *Store) DataLen() int {
	if len(s.rows) == 0 {
		return 0
	}
	return len(s.rows) - 1
}

// Row returns the row at index i (0 is the header).
func (s *Store) Row(i int) models.Record { return s.rows[i] }

// Columns maps a column name to its field position. It is a fixed table and
// never looks at the header row, so a file with a different column order is
// read silently wrong.
type Columns map[string]int

func DefaultColumns() Columns {
	return Columns{
		ColNo:         0,
		ColName:       1,
		ColType1:      2,
		ColType2:      3,
		ColTotal:      4,
		ColHP:         5,
		ColAttack:     6,
		ColDefense:    7,
		ColSpAtk:      8,
		ColSpDef:      9,
		ColSpeed:      10,
		ColGeneration: 11,
		ColLegendary:  12,
	}
}

// Field returns the raw text of a column, or "" when the record is too short.
func (c Columns) Field(rec models.Record, col string) string {
	idx, ok := c[col]
	if !ok || idx >= len(rec) {
		return ""
	}
	return rec[idx]
}

// Int parses a numeric column. row is only used for error reporting.
func (c Columns) Int(rec models.Record, row int, col string) (int, error) {
	raw := c.Field(rec, col)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Row: row, Column: col, Value: raw, Err: err}
	}
	return n, nil
}

// Legendary reports whether the legendary flag is the literal "TRUE".
func (c Columns) Legendary(rec models.Record) bool {
	return c.Field(rec, ColLegendary) == "TRUE"
}

// Creature converts a record into its typed form.
func (c Columns) Creature(rec models.Record, row int) (models.Creature, error) {
	cr := models.Creature{
		Name:      c.Field(rec, ColName),
		Type1:     c.Field(rec, ColType1),
		Type2:     c.Field(rec, ColType2),
		Legendary: c.Legendary(rec),
	}
	ints := []struct {
		col string
		dst *int
	}{
		{ColNo, &cr.No},
		{ColTotal, &cr.Total},
		{ColHP, &cr.HP},
		{ColAttack, &cr.Attack},
		{ColDefense, &cr.Defense},
		{ColSpAtk, &cr.SpAtk},
		{ColSpDef, &cr.SpDef},
		{ColSpeed, &cr.Speed},
		{ColGeneration, &cr.Generation},
	}
	for _, f := range ints {
		n, err := c.Int(rec, row, f.col)
		if err != nil {
			return models.Creature{}, err
		}
		*f.dst = n
	}
	return cr, nil
}

// FieldError reports a stat field that should be numeric but is not.
type FieldError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("row %d: column %q: invalid number %q", e.Row, e.Column, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Err }
