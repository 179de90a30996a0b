package record

import (
	"github.com/ib-77/fnop/pkg/fnop"
	"github.com/ib-77/fnop/pkg/fnop/action"
)

// Reset returns an action that sets the record level and swaps its items for
// a fresh empty slice. A nil record fails with fnop.ErrMissingOperand.
func Reset(level int) action.Action[*Record] {
	return func(r *Record) error {
		if r == nil {
			return fnop.MissingOperand("record.Reset")
		}
		r.SetLevel(level)
		r.ClearItems()
		return nil
	}
}
