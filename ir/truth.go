package ir

func Truth(v *Value) bool {
	if v == nil {
		return false
	}
	switch v.Type {
	case RecordType:
		return len(v.Fields) != 0
	case ArrayType:
		return len(v.Items) != 0
	case TableType:
		return len(v.Table.Rows) != 0
	case StringType:
		return v.String != ""
	case IntType:
		return v.Int != 0
	case FloatType:
		return v.Float != 0.0
	case BoolType:
		return v.Bool
	case NullType:
		return false
	default:
		panic("type")
	}
}
