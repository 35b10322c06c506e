package progkey

import "errors"

// ErrKeyBudgetOverflow is returned by Build when a processor's texture-remap
// mask, transform encoding, class ID, or key-fragment size does not fit its
// 16-bit slot in the meta-key trailer. The descriptor is left empty; the
// caller should compile and use the program without caching it.
var ErrKeyBudgetOverflow = errors.New("progkey: meta-key field exceeds its 16-bit budget")
