// Package export writes query results in columnar form.
package export

import (
	"fmt"
	"io"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/ipc"
	"github.com/apache/arrow/go/v18/arrow/memory"

	"pokedex/internal/models"
)

// ArrowContentType is the media type of an Arrow IPC stream.
const ArrowContentType = "application/vnd.apache.arrow.stream"

// Schema matches models.Creature. type_2 is null when the record has none.
var Schema = arrow.NewSchema([]arrow.Field{
	{Name: "no", Type: arrow.PrimitiveTypes.Int64},
	{Name: "name", Type: arrow.BinaryTypes.String},
	{Name: "type_1", Type: arrow.BinaryTypes.String},
	{Name: "type_2", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "total", Type: arrow.PrimitiveTypes.Int64},
	{Name: "hp", Type: arrow.PrimitiveTypes.Int64},
	{Name: "attack", Type: arrow.PrimitiveTypes.Int64},
	{Name: "defense", Type: arrow.PrimitiveTypes.Int64},
	{Name: "sp_atk", Type: arrow.PrimitiveTypes.Int64},
	{Name: "sp_def", Type: arrow.PrimitiveTypes.Int64},
	{Name: "speed", Type: arrow.PrimitiveTypes.Int64},
	{Name: "generation", Type: arrow.PrimitiveTypes.Int64},
	{Name: "legendary", Type: arrow.FixedWidthTypes.Boolean},
}, nil)

// WriteArrow writes creatures as a single record batch in an IPC stream.
func WriteArrow(w io.Writer, creatures []models.Creature) error {
	mem := memory.NewGoAllocator()

	b := array.NewRecordBuilder(mem, Schema)
	defer b.Release()

	ints := func(i int) *array.Int64Builder { return b.Field(i).(*array.Int64Builder) }
	strs := func(i int) *array.StringBuilder { return b.Field(i).(*array.StringBuilder) }

	for _, c := range creatures {
		ints(0).Append(int64(c.No))
		strs(1).Append(c.Name)
		strs(2).Append(c.Type1)
		if c.Type2 == "" {
			strs(3).AppendNull()
		} else {
			strs(3).Append(c.Type2)
		}
		ints(4).Append(int64(c.Total))
		ints(5).Append(int64(c.HP))
		ints(6).Append(int64(c.Attack))
		ints(7).Append(int64(c.Defense))
		ints(8).Append(int64(c.SpAtk))
		ints(9).Append(int64(c.SpDef))
		ints(10).Append(int64(c.Speed))
		ints(11).Append(int64(c.Generation))
		b.Field(12).(*array.BooleanBuilder).Append(c.Legendary)
	}

	rec := b.NewRecord()
	defer rec.Release()

	iw := ipc.NewWriter(w, ipc.WithSchema(Schema), ipc.WithAllocator(mem))
	if err := iw.Write(rec); err != nil {
		_ = iw.Close()
		return fmt.Errorf("write arrow batch: %w", err)
	}
	if err := iw.Close(); err != nil {
		return fmt.Errorf("close arrow stream: %w", err)
	}
	return nil
}
