package Trees

import "github.com/ansel1/merry"

// ErrInvalidArgument is returned, wrapped with the call site, when a required
// callback is nil. Test for it with merry.Is or errors.Is.
var ErrInvalidArgument = merry.New("invalid argument")

// nilVisitor is the error returned by every traversal taking a visitor, before
// any node is visited.
func nilVisitor(op string) error {
	return merry.Here(ErrInvalidArgument).Appendf("%s: nil visitor", op)
}
