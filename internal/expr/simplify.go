package expr

// Simplify implements the expression-tree "purge" step: collapse an And
// with any Null operand to Null, drop Null operands from an Or, and
// reduce a
// single-operand And/Or to that operand. An And with no operands (the
// empty clause of an Optional) is kept as is. It does not recurse into
// Connector leaves (those are never Null themselves; a dead connector is
// replaced by its caller with Null before Simplify is called).
func Simplify(e Exp) Exp {
	switch n := e.(type) {
	case And:
		kept := make([]Exp, 0, len(n.Children))
		for _, c := range n.Children {
			sc := Simplify(c)
			if sc.Kind() == KindNull {
				return Null{NodeCost: n.NodeCost}
			}
			kept = append(kept, sc)
		}
		switch len(kept) {
		case 0:
			return And{NodeCost: n.NodeCost}
		case 1:
			return addCost(kept[0], n.NodeCost)
		default:
			return And{Children: kept, NodeCost: n.NodeCost}
		}

	case Or:
		kept := make([]Exp, 0, len(n.Children))
		for _, c := range n.Children {
			sc := Simplify(c)
			if sc.Kind() == KindNull {
				continue
			}
			kept = append(kept, sc)
		}
		switch len(kept) {
		case 0:
			return Null{NodeCost: n.NodeCost}
		case 1:
			return addCost(kept[0], n.NodeCost)
		default:
			return Or{Children: kept, NodeCost: n.NodeCost}
		}

	default:
		return e
	}
}

// addCost folds a parent node's cost into the single child that survives
// collapsing a one-operand And/Or, so no cost is lost by simplification.
func addCost(e Exp, extra float64) Exp {
	switch n := e.(type) {
	case Connector:
		n.NodeCost += extra
		return n
	case And:
		n.NodeCost += extra
		return n
	case Or:
		n.NodeCost += extra
		return n
	case Null:
		n.NodeCost += extra
		return n
	default:
		return e
	}
}
