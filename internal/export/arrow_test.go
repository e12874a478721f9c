package export

import (
	"bytes"
	"testing"

	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/ipc"
	"github.com/apache/arrow/go/v18/arrow/memory"

	"pokedex/internal/models"
)

func TestWriteArrow(t *testing.T) {
	creatures := []models.Creature{
		{No: 4, Name: "Charmander", Type1: "Fire", Total: 309, HP: 39, Attack: 52, Defense: 43, SpAtk: 60, SpDef: 50, Speed: 65, Generation: 1},
		{No: 146, Name: "Moltres", Type1: "Fire", Type2: "Flying", Total: 580, HP: 90, Attack: 100, Defense: 90, SpAtk: 125, SpDef: 85, Speed: 90, Generation: 1, Legendary: true},
	}

	var buf bytes.Buffer
	if err := WriteArrow(&buf, creatures); err != nil {
		t.Fatalf("WriteArrow failed: %v", err)
	}

	r, err := ipc.NewReader(&buf, ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Release()

	if !r.Schema().Equal(Schema) {
		t.Fatalf("Schema mismatch: %v", r.Schema())
	}
	if !r.Next() {
		t.Fatal("Expected one record batch")
	}
	rec := r.Record()
	if rec.NumRows() != 2 {
		t.Fatalf("Expected 2 rows, got %d", rec.NumRows())
	}

	names := rec.Column(1).(*array.String)
	if names.Value(1) != "Moltres" {
		t.Errorf("Expected Moltres, got %s", names.Value(1))
	}
	type2 := rec.Column(3).(*array.String)
	if !type2.IsNull(0) {
		t.Error("Expected null type_2 for Charmander")
	}
	if type2.Value(1) != "Flying" {
		t.Errorf("Expected Flying, got %s", type2.Value(1))
	}
	totals := rec.Column(4).(*array.Int64)
	if totals.Value(1) != 580 {
		t.Errorf("Expected total 580, got %d", totals.Value(1))
	}
	legendary := rec.Column(12).(*array.Boolean)
	if legendary.Value(0) || !legendary.Value(1) {
		t.Error("Legendary flags incorrect")
	}
}

func TestWriteArrowEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteArrow(&buf, nil); err != nil {
		t.Fatalf("WriteArrow failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Expected schema message for empty stream")
	}
}
