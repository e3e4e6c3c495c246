package ir

// Truth reports the host-language truthiness of a node: containers and
// files are truthy, "" / 0 / false / null are not. A nil node is falsy.
func Truth(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.Type {
	case ObjectType, ArrayType, FileType:
		return true
	case StringType:
		return node.String != ""
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64 != 0
		}
		if node.Float64 != nil {
			return *node.Float64 != 0.0
		}
		return node.Number != "" && node.Number != "0"
	case BoolType:
		return node.Bool
	case NullType:
		return false
	default:
		panic("type")
	}
}
