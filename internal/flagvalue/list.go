package flagvalue

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

// List is a flag.Getter that may be given multiple times,
// collecting every value into a slice.
type List[T any, PT Getter[T]] []T

// ListOf wraps a slice so that a flag may be repeated:
//
//	flag.Var(flagvalue.ListOf(&langs), "chroma", ...)
func ListOf[T any, PT Getter[T]](vs *[]T) *List[T, PT] {
	return (*List[T, PT])(vs)
}

// Get returns the values collected so far.
func (lv *List[T, PT]) Get() any { return []T(*lv) }

// String renders the collected values separated by "; ".
func (lv *List[T, PT]) String() string {
	var sb strings.Builder
	for i, v := range *lv {
		if i > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}

// Set parses one occurrence of the flag into the list.
func (lv *List[T, PT]) Set(s string) error {
	var v T
	if err := PT(&v).Set(s); err != nil {
		return errtrace.Wrap(err)
	}
	*lv = append(*lv, v)
	return nil
}
