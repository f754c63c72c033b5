package types

// AnalyzeBinOpType computes the result type of applying op to operands
// of type left and right, along with the types those operands must be
// cast to beforehand. It is the type-only half of spec section 4.1's
// analyze_type_info; the caller (sql/analyzer's AnalyzeBinOp) wraps
// the operands in CAST UOpers when newLeft/newRight differ from
// left/right. Ported from Analyzer.cpp's BinOper::analyze_type_info.
func AnalyzeBinOpType(op Op, left, right TypeInfo) (result, newLeft, newRight TypeInfo, err error) {
	newLeft, newRight = left, right

	switch {
	case op.IsLogicOp():
		if left.Kind != BOOLEAN || right.Kind != BOOLEAN {
			return TypeInfo{}, TypeInfo{}, TypeInfo{}, ErrTypeMismatch.New("non-boolean operands in logic op")
		}
		return Boolean, newLeft, newRight, nil

	case op.IsComparisonOp():
		if left.IsString() != right.IsString() {
			return TypeInfo{}, TypeInfo{}, TypeInfo{}, ErrTypeMismatch.New("cannot compare string and non-string")
		}
		if left.IsNumber() != right.IsNumber() {
			return TypeInfo{}, TypeInfo{}, TypeInfo{}, ErrTypeMismatch.New("cannot compare numeric and non-numeric")
		}
		if left.IsNumber() && right.IsNumber() {
			common, cerr := CommonNumericType(left, right)
			if cerr != nil {
				return TypeInfo{}, TypeInfo{}, TypeInfo{}, cerr
			}
			newLeft, newRight = common, common
		}
		return Boolean, newLeft, newRight, nil

	case op.IsArithmeticOp():
		if !left.IsNumber() || !right.IsNumber() {
			return TypeInfo{}, TypeInfo{}, TypeInfo{}, ErrTypeMismatch.New("non-numeric operands in arithmetic op")
		}
		common, cerr := CommonNumericType(left, right)
		if cerr != nil {
			return TypeInfo{}, TypeInfo{}, TypeInfo{}, cerr
		}
		newLeft, newRight = common, common
		return common, newLeft, newRight, nil

	default:
		return TypeInfo{}, TypeInfo{}, TypeInfo{}, ErrInvalidOperator.New()
	}
}
