package sketch

// The legacy matrix-stack entry points predate Push/Pop and were never
// carried over. They fail unconditionally so stale callers get a
// directed error instead of a missing method.

// PushMatrix always fails with a DeprecatedError; use [Context.Push].
func (c *Context) PushMatrix() error {
	return &DeprecatedError{Op: "PushMatrix", Replacement: "Push"}
}

// PopMatrix always fails with a DeprecatedError; use [Context.Pop].
func (c *Context) PopMatrix() error {
	return &DeprecatedError{Op: "PopMatrix", Replacement: "Pop"}
}

// PrintMatrix always fails with a DeprecatedError; it has no
// replacement. Read the transform with [Context.Matrix] or
// [Context.Matrix4] instead.
func (c *Context) PrintMatrix() error {
	return &DeprecatedError{Op: "PrintMatrix"}
}
