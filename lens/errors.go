package lens

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnfusable is returned by FuseLenses when its arguments are not all plain
// lenses sharing one construction policy.
var ErrUnfusable = errors.New("cannot fuse: arguments must be plain lenses sharing one construction policy")

// PathError wraps a container-level failure with the key path of the optic
// that encountered it.
type PathError struct {
	Path []any
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("at %s: %s", formatPath(e.Path), e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// StereoscopyError reports that two or more members of a multifocal disagree
// about the new state of a slot they both target.
type StereoscopyError struct {
	Members []any
}

func (e StereoscopyError) Error() string {
	return fmt.Sprintf("stereoscopy conflict: members %s disagree about their target slot",
		formatPath(e.Members))
}

func formatPath(path []any) string {
	var sb strings.Builder
	for _, p := range path {
		fmt.Fprintf(&sb, "[%v]", p)
	}
	return sb.String()
}
