// Package table implements the multi-column indexed record table: the
// owner of the records and of one order-statistic skip list per indexed
// column, coordinating primary-key uniqueness and cross-index mutation.
package table

import "bytes"

// SLEN is the fixed length of a Record's Str field.
const SLEN = 4

// Column identifies one of the table's indexed fields.
type Column int

const (
	Id Column = iota
	Num
	Str
	NumCol // sentinel: count of real columns
)

func (c Column) String() string {
	switch c {
	case Id:
		return "id"
	case Num:
		return "num"
	case Str:
		return "str"
	default:
		return "invalid"
	}
}

// Valid reports whether c names one of the real columns (excludes NumCol
// and anything outside [Id, NumCol)).
func (c Column) Valid() bool {
	return c >= Id && c < NumCol
}

// Record is the table's fixed-size value type. Records are immutable once
// inserted; an "update" is a delete followed by an insert of a new Record
// under the same id.
type Record struct {
	ID  uint32
	Num int32
	Str [SLEN]byte
}

// compareID, compareNum, and compareStr are the three column comparators,
// closed over no state, matching the "polymorphic comparator closure" design
// note in spec.md §9 in place of unsafe field-offset arithmetic.
func compareID(a, b *Record) int {
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	default:
		return 0
	}
}

func compareNum(a, b *Record) int {
	switch {
	case a.Num < b.Num:
		return -1
	case a.Num > b.Num:
		return 1
	default:
		return 0
	}
}

func compareStr(a, b *Record) int {
	return bytes.Compare(a.Str[:], b.Str[:])
}
