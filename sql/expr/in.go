package expr

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash"

	"github.com/relquery/sqlsem/sql/types"
)

// InValues is an IN-list predicate: arg IN (value_list...). Grounded
// on Analyzer.cpp's InValues. valueSet precomputes an xxhash-backed
// membership index over ValueList so a planner can probe it in O(1)
// instead of scanning ValueList linearly, the same acceleration the
// teacher's sql/expression/in.go In applies to large IN lists with
// cespare/xxhash.
//
// ValueList is rewritten by unconditional deep copy, never by
// RewriteWithTargetList: Analyzer.cpp's InValues::rewrite_with_targetlist
// calls deep_copy on every value_list entry and only recurses into
// rewrite_with_targetlist for arg, since value_list entries are
// literals (or at least not base-column/aggregate leaves a target list
// rewrite is meant to retarget).
type InValues struct {
	Arg       Expression
	ValueList []Expression
	valueSet  map[uint64]struct{}
}

// NewInValues constructs an InValues and precomputes its value-set
// index over any Constant entries of valueList (non-constant entries,
// e.g. parameter placeholders, can't be hashed ahead of evaluation and
// are left out of the index; a planner falls back to scanning for
// those).
func NewInValues(arg Expression, valueList []Expression) *InValues {
	iv := &InValues{Arg: arg, ValueList: valueList, valueSet: make(map[uint64]struct{}, len(valueList))}
	for _, v := range valueList {
		if c, ok := v.(*Constant); ok && !c.IsNull {
			iv.valueSet[hashDatum(c.Value)] = struct{}{}
		}
	}
	return iv
}

func hashDatum(d types.Datum) uint64 {
	var buf [8]byte
	h := xxhash.New()
	switch d.Kind {
	case types.SMALLINT:
		binary.LittleEndian.PutUint64(buf[:], uint64(d.Smallint))
	case types.INT:
		binary.LittleEndian.PutUint64(buf[:], uint64(d.Int))
	case types.BIGINT, types.NUMERIC, types.DECIMAL:
		binary.LittleEndian.PutUint64(buf[:], uint64(d.Bigint))
	case types.FLOAT:
		binary.LittleEndian.PutUint64(buf[:], uint64(math.Float32bits(d.Float)))
	case types.DOUBLE:
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(d.Double))
	case types.BOOLEAN:
		if d.Boolean {
			buf[0] = 1
		}
	default:
		h.Write([]byte(d.Str))
		return h.Sum64()
	}
	h.Write(buf[:])
	return h.Sum64()
}

// HasConstant reports whether v is present in the precomputed constant
// value-set. It is a planner-facing convenience, not part of the
// Expression interface.
func (in *InValues) HasConstant(v types.Datum) bool {
	_, ok := in.valueSet[hashDatum(v)]
	return ok
}

var _ Expression = (*InValues)(nil)

// Type implements Expression: an IN predicate is always BOOLEAN.
func (in *InValues) Type() types.TypeInfo { return types.Boolean }

func (in *InValues) DeepCopy() (Expression, error) {
	arg, err := in.Arg.DeepCopy()
	if err != nil {
		return nil, err
	}
	values, err := deepCopyChildren(in.ValueList)
	if err != nil {
		return nil, err
	}
	return NewInValues(arg, values), nil
}

func (in *InValues) CollectRTEIdx(set map[int]struct{}) {
	in.Arg.CollectRTEIdx(set)
}

func (in *InValues) GroupPredicates(scan, join, constant *[]Expression) {
	classifyByRTECount(in, in.Arg, scan, join, constant)
}

func (in *InValues) RewriteWithTargetList(tlist []*TargetEntry) (Expression, error) {
	arg, err := in.Arg.RewriteWithTargetList(tlist)
	if err != nil {
		return nil, err
	}
	values, err := deepCopyChildren(in.ValueList)
	if err != nil {
		return nil, err
	}
	return NewInValues(arg, values), nil
}

func (in *InValues) CheckGroupBy(groupBy []Expression) error {
	return in.Arg.CheckGroupBy(groupBy)
}

func (in *InValues) AddCast(newType types.TypeInfo) (Expression, error) {
	return genericAddCast(in, types.Boolean, newType)
}
