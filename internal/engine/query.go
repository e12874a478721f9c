package engine

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pokedex/internal/models"
)

// TeamSize is the number of draws made by RandomTeam.
const TeamSize = 10

var (
	ErrNotPositive  = errors.New("count must be greater than 0")
	ErrExceedsStore = errors.New("count exceeds the number of records")
	ErrNoResults    = errors.New("no matching records")
)

// Rand is the random source used for team draws. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// LockedRand serialises access to a Rand shared between goroutines.
type LockedRand struct {
	mu  sync.Mutex
	src Rand
}

func NewLockedRand(src Rand) *LockedRand {
	return &LockedRand{src: src}
}

func (r *LockedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.IntN(n)
}

// NewRand returns a PCG source. A zero seed picks a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NormalizeType trims user input and title-cases it to match how types are
// spelled in the file ("fire " -> "Fire").
func NormalizeType(s string) string {
	// Casers keep state, so one per call.
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

// Result is the subset produced by a query. The header is never included.
type Result struct {
	Rows []models.Record
	// Index holds the store index of each row, parallel to Rows.
	Index []int
}

func (r *Result) add(i int, rec models.Record) {
	r.Rows = append(r.Rows, rec)
	r.Index = append(r.Index, i)
}

func (r *Result) Len() int { return len(r.Rows) }

// Engine runs read-only queries over a Store.
type Engine struct {
	store *Store
	cols  Columns
	rng   Rand
}

func New(store *Store, cols Columns, rng Rand) *Engine {
	return &Engine{store: store, cols: cols, rng: rng}
}

func (e *Engine) Store() *Store    { return e.store }
func (e *Engine) Columns() Columns { return e.cols }

// ByCount returns the first n data records.
func (e *Engine) ByCount(n int) (*Result, error) {
	if n > e.store.DataLen() {
		return nil, ErrExceedsStore
	}
	if n <= 0 {
		return nil, ErrNotPositive
	}
	res := &Result{}
	for i := 1; i <= n; i++ {
		res.add(i, e.store.Row(i))
	}
	return res, nil
}

// FirstOfType returns the first record whose primary or secondary type is t.
func (e *Engine) FirstOfType(t string) (*Result, error) {
	for i := 1; i < e.store.Len(); i++ {
		rec := e.store.Row(i)
		if e.cols.Field(rec, ColType1) == t || e.cols.Field(rec, ColType2) == t {
			res := &Result{}
			res.add(i, rec)
			return res, nil
		}
	}
	return nil, ErrNoResults
}

// ByTotal matches the Total column as text against the decimal form of total.
// "318" matches 318; "0318" does not.
func (e *Engine) ByTotal(total int) (*Result, error) {
	return e.ByTotalText(strconv.Itoa(total))
}

// ByTotalText matches the Total column against want exactly as typed. The
// text is not trimmed or parsed, so "0318", "+318" and " 318" find nothing
// when the file says "318".
func (e *Engine) ByTotalText(want string) (*Result, error) {
	res := &Result{}
	for i := 1; i < e.store.Len(); i++ {
		rec := e.store.Row(i)
		if e.cols.Field(rec, ColTotal) == want {
			res.add(i, rec)
		}
	}
	return nonEmpty(res)
}

// ByMinStats returns records meeting all three minimums. A non-numeric stat
// anywhere in the store fails the whole query with a *FieldError.
func (e *Engine) ByMinStats(minSpAtk, minSpDef, minSpeed int) (*Result, error) {
	res := &Result{}
	for i := 1; i < e.store.Len(); i++ {
		rec := e.store.Row(i)
		spAtk, err := e.cols.Int(rec, i, ColSpAtk)
		if err != nil {
			return nil, err
		}
		spDef, err := e.cols.Int(rec, i, ColSpDef)
		if err != nil {
			return nil, err
		}
		speed, err := e.cols.Int(rec, i, ColSpeed)
		if err != nil {
			return nil, err
		}
		if spAtk >= minSpAtk && spDef >= minSpDef && speed >= minSpeed {
			res.add(i, rec)
		}
	}
	return nonEmpty(res)
}

// LegendaryOfTypes returns legendary records typed {type1, type2} in either order.
func (e *Engine) LegendaryOfTypes(type1, type2 string) (*Result, error) {
	res := &Result{}
	for i := 1; i < e.store.Len(); i++ {
		rec := e.store.Row(i)
		if !e.cols.Legendary(rec) {
			continue
		}
		t1, t2 := e.cols.Field(rec, ColType1), e.cols.Field(rec, ColType2)
		if (t1 == type1 && t2 == type2) || (t1 == type2 && t2 == type1) {
			res.add(i, rec)
		}
	}
	return nonEmpty(res)
}

// RandomTeam draws TeamSize records independently, so duplicates happen.
func (e *Engine) RandomTeam() (*Result, error) {
	n := e.store.DataLen()
	if n == 0 {
		return nil, ErrNoResults
	}
	res := &Result{}
	for range TeamSize {
		i := 1 + e.rng.IntN(n)
		res.add(i, e.store.Row(i))
	}
	return res, nil
}

func nonEmpty(res *Result) (*Result, error) {
	if res.Len() == 0 {
		return nil, ErrNoResults
	}
	return res, nil
}
