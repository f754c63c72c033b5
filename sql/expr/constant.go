package expr

import (
	"github.com/spf13/cast"

	"github.com/relquery/sqlsem/sql/types"
)

// Constant is a literal value: either NULL (IsNull) or a Datum whose
// variant matches typeInfo.Kind. Grounded on Analyzer.cpp's Constant.
type Constant struct {
	typeInfo types.TypeInfo
	IsNull   bool
	Value    types.Datum
}

// NewConstant constructs a non-null Constant of typeInfo's kind from a
// loosely-typed Go value, the kind of raw literal a parser hands the
// analyzer before type info has been pinned down (spec section 6:
// "Parser interface (producer). Builds raw Expr / Query trees with
// tentative type info"). spf13/cast coerces whatever Go type the
// parser produced (string, any int width, any float width, bool) into
// the Datum field matching typeInfo.Kind, the same loose-coercion role
// it plays at engine/parser boundaries in the teacher.
func NewConstant(typeInfo types.TypeInfo, raw interface{}) (*Constant, error) {
	var d types.Datum
	switch {
	case typeInfo.Kind == types.SMALLINT:
		v, err := cast.ToInt16E(raw)
		if err != nil {
			return nil, err
		}
		d = types.SmallintDatum(v)
	case typeInfo.Kind == types.INT:
		v, err := cast.ToInt32E(raw)
		if err != nil {
			return nil, err
		}
		d = types.IntDatum(v)
	case typeInfo.Kind == types.BIGINT:
		v, err := cast.ToInt64E(raw)
		if err != nil {
			return nil, err
		}
		d = types.BigintDatum(v)
	case typeInfo.Kind == types.FLOAT:
		v, err := cast.ToFloat32E(raw)
		if err != nil {
			return nil, err
		}
		d = types.FloatDatum(v)
	case typeInfo.Kind == types.DOUBLE:
		v, err := cast.ToFloat64E(raw)
		if err != nil {
			return nil, err
		}
		d = types.DoubleDatum(v)
	case typeInfo.Kind.IsFixedPoint():
		if s, ok := raw.(string); ok {
			scaled, err := types.ParseNumericLiteral(s, typeInfo)
			if err != nil {
				return nil, err
			}
			d = types.NumericDatum(typeInfo.Kind, scaled)
		} else {
			v, err := cast.ToInt64E(raw)
			if err != nil {
				return nil, err
			}
			d = types.NumericDatum(typeInfo.Kind, types.ScaleUp(v, typeInfo.Scale))
		}
	case typeInfo.Kind == types.BOOLEAN:
		v, err := cast.ToBoolE(raw)
		if err != nil {
			return nil, err
		}
		d = types.BoolDatum(v)
	default:
		v, err := cast.ToStringE(raw)
		if err != nil {
			return nil, err
		}
		d = types.StringDatum(v)
		d.Kind = typeInfo.Kind
	}
	return &Constant{typeInfo: typeInfo, Value: d}, nil
}

// NewNullConstant constructs a NULL Constant of the given type. Per
// spec section 3, the Datum payload is unspecified when IsNull.
func NewNullConstant(typeInfo types.TypeInfo) *Constant {
	return &Constant{typeInfo: typeInfo, IsNull: true}
}

var _ Expression = (*Constant)(nil)

func (c *Constant) Type() types.TypeInfo { return c.typeInfo }

func (c *Constant) DeepCopy() (Expression, error) {
	return &Constant{typeInfo: c.typeInfo, IsNull: c.IsNull, Value: c.Value}, nil
}

func (c *Constant) CollectRTEIdx(set map[int]struct{}) {}

func (c *Constant) GroupPredicates(scan, join, constant *[]Expression) {
	classifyByRTECount(c, c, scan, join, constant)
}

func (c *Constant) RewriteWithTargetList(tlist []*TargetEntry) (Expression, error) {
	return c.DeepCopy()
}

func (c *Constant) CheckGroupBy(groupBy []Expression) error {
	return nil
}

// AddCast folds the cast into the literal when possible, per spec
// section 4.2. Ported from Analyzer.cpp's Constant::add_cast.
func (c *Constant) AddCast(newType types.TypeInfo) (Expression, error) {
	if c.IsNull {
		return &Constant{typeInfo: newType, IsNull: true}, nil
	}
	switch {
	case newType.IsNumber() && c.typeInfo.IsNumber():
		v, err := types.CastNumber(c.Value, c.typeInfo, newType)
		if err != nil {
			return nil, err
		}
		return &Constant{typeInfo: newType, Value: v}, nil
	case newType.IsString() && c.typeInfo.IsString():
		truncated := types.CastStringValue(c.Value.Str, newType)
		v := types.StringDatum(truncated)
		v.Kind = newType.Kind
		return &Constant{typeInfo: newType, Value: v}, nil
	default:
		return genericAddCast(c, c.typeInfo, newType)
	}
}
