package phamt

import "github.com/pkg/errors"

// ErrKeyNotFound is the sentinel spec.md section 7's "absent-key
// indexing" error wraps. Test and caller code can match it with
// errors.Is.
var ErrKeyNotFound = errors.New("phamt: key not found")

// errKeyNotFound wraps ErrKeyNotFound with the offending key, the way
// the teacher's own test harness wraps os errors with
// errors.Wrap(err, "...") in hamt_test.go.
func errKeyNotFound(k Key) error {
	return errors.Wrapf(ErrKeyNotFound, "key %s", k)
}
