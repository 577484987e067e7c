package autodiff

// Add returns lhs + rhs.
func (g *Graph[T]) Add(lhs, rhs Operand[T]) Value[T] {
	return g.apply(OpAdd, lhs, rhs)
}

// Sub returns lhs - rhs.
func (g *Graph[T]) Sub(lhs, rhs Operand[T]) Value[T] {
	return g.apply(OpSub, lhs, rhs)
}

// Mul returns lhs * rhs.
func (g *Graph[T]) Mul(lhs, rhs Operand[T]) Value[T] {
	return g.apply(OpMul, lhs, rhs)
}

// Div returns lhs / rhs.
func (g *Graph[T]) Div(lhs, rhs Operand[T]) Value[T] {
	return g.apply(OpDiv, lhs, rhs)
}

// Neg returns -x.
func (g *Graph[T]) Neg(x Operand[T]) Value[T] {
	return g.apply(OpNeg, x, x)
}

// Pow returns base ^ exp.
//
// Both sides are borrowed: the power rule needs the current value of each
// operand, and either may require a gradient.
func (g *Graph[T]) Pow(base, exp Value[T]) Value[T] {
	return g.apply(OpPow, base.Ref(), exp.Ref())
}

// apply performs the forward step of op and records it.
// Operands are read, never modified.
func (g *Graph[T]) apply(op Op, lhs, rhs Operand[T]) Value[T] {
	g.check(lhs)
	g.check(rhs)

	data := forward(op, lhs.Data(), rhs.Data())
	if !g.recording {
		return g.Coeff(data)
	}

	return g.push(node[T]{
		data:    data,
		tracked: true,
		op:      op,
		lhs:     lhs,
		rhs:     rhs,
	})
}

func (g *Graph[T]) check(o Operand[T]) {
	if o.kind == operandRef {
		g.owns(Value[T]{g: o.g, id: o.id})
	}
}

// Add returns v + w, borrowing both.
func (v Value[T]) Add(w Value[T]) Value[T] {
	return v.g.Add(v.Ref(), w.Ref())
}

// Sub returns v - w, borrowing both.
func (v Value[T]) Sub(w Value[T]) Value[T] {
	return v.g.Sub(v.Ref(), w.Ref())
}

// Mul returns v * w, borrowing both.
func (v Value[T]) Mul(w Value[T]) Value[T] {
	return v.g.Mul(v.Ref(), w.Ref())
}

// Div returns v / w, borrowing both.
func (v Value[T]) Div(w Value[T]) Value[T] {
	return v.g.Div(v.Ref(), w.Ref())
}

// Neg returns -v.
func (v Value[T]) Neg() Value[T] {
	return v.g.Neg(v.Ref())
}

// Pow returns v ^ w.
func (v Value[T]) Pow(w Value[T]) Value[T] {
	return v.g.Pow(v, w)
}
