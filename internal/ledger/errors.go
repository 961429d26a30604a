package ledger

import (
	"fmt"

	"github.com/scrapco/scrapledger/internal/model"
)

// MalformedEntryError reports an input entry without a usable date. The
// entry's original position is carried so the caller can point at the bad
// record; the whole computation is aborted rather than guessing an order.
type MalformedEntryError struct {
	Index int
	Cause error
}

func (e *MalformedEntryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("entry %d: unusable date: %v", e.Index, e.Cause)
	}
	return fmt.Sprintf("entry %d: missing date", e.Index)
}

func (e *MalformedEntryError) Unwrap() error { return e.Cause }

// UnknownEntryTypeError reports a (ledger kind, entry type) pair with no
// sign rule. Unknown money movements are never defaulted to zero; that
// would hide bookkeeping errors.
type UnknownEntryTypeError struct {
	Kind model.LedgerKind
	Type string
}

func (e *UnknownEntryTypeError) Error() string {
	return fmt.Sprintf("no sign rule for entry type %q in %s ledger", e.Type, e.Kind)
}
