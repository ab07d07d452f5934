package toml

// =========================
// Safe Access Helpers
// =========================

// Get walks tables from root along path. Empty path parts are skipped, so
// callers may pass the parts of a split dotted key directly.
func Get(root *Table, path ...string) (Node, bool) {
	var cur Node = root
	for _, part := range path {
		if len(part) == 0 {
			continue
		}
		t, ok := cur.(*Table)
		if !ok {
			return nil, false
		}
		cur, ok = t.Get(part)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func GetUntyped(root *Table, path ...string) (any, bool) {
	n, ok := Get(root, path...)
	if !ok {
		return nil, false
	}
	return ToUntyped(n), true
}

// ToUntyped converts a node tree to plain maps, slices and scalars. Table
// ordering is lost in the map form; use the nodes directly when order
// matters.
func ToUntyped(n Node) any {
	switch v := n.(type) {
	case *Value:
		return v.V
	case *Array:
		out := make([]any, len(v.Elems))
		for i := range v.Elems {
			out[i] = ToUntyped(v.Elems[i])
		}
		return out
	case *Table:
		m := make(map[string]any, len(v.Items))
		for _, it := range v.Items {
			m[it.Key] = ToUntyped(it.Value)
		}
		return m
	default:
		return nil
	}
}

func MustString(n Node) string {
	v := n.(*Value)
	return v.V.(string)
}

func MustInt(n Node) int64 {
	v := n.(*Value)
	return v.V.(int64)
}

func MustFloat(n Node) float64 {
	v := n.(*Value)
	return v.V.(float64)
}

func MustBool(n Node) bool {
	v := n.(*Value)
	return v.V.(bool)
}

// MustDatetime returns the raw literal text of a datetime value.
func MustDatetime(n Node) string {
	v := n.(*Value)
	if v.Type != ValueKinds.ValueDatetime {
		panic("toml: node is not a datetime")
	}
	return v.V.(string)
}
