package typedpath

import (
	"fmt"
)

// normalize lexically simplifies path: `.` components disappear and `..` cancels the preceding
// normal component. A `..` which has nothing to cancel, including one directly under a root, is
// kept as is.
func normalize[S unit](r *Rules, path S) []byte {
	var stack []Component[S]
	c := Parse(r, path)
	for comp, ok := c.Next(); ok; comp, ok = c.Next() {
		switch comp.Kind {
		case KindCurDir:
		case KindParentDir:
			if n := len(stack); n > 0 && stack[n-1].Kind == KindNormal {
				stack = stack[:n-1]
			} else {
				stack = append(stack, comp)
			}
		default:
			stack = append(stack, comp)
		}
	}
	return render(r, stack)
}

// normalDepth is the number of normal components which survive normalizing path.
func normalDepth[S unit](r *Rules, path S) int {
	depth := 0
	for comp := range Parse(r, path).All() {
		switch comp.Kind {
		case KindNormal:
			depth++
		case KindParentDir:
			if depth > 0 {
				depth--
			}
		}
	}
	return depth
}

// absolutize resolves path against cwd, then normalizes it. Absolute paths are only normalized.
func absolutize[S, C unit](r *Rules, path S, cwd C) ([]byte, error) {
	pc := Parse(r, path)
	if pc.IsAbsolute() {
		return normalize(r, path), nil
	}
	cc := Parse(r, cwd)
	if !cc.IsAbsolute() {
		return nil, fmt.Errorf("%w: %q", ErrNotAbsolute, string(cwd))
	}
	if p, ok := pc.Prefix(); ok && p.IsDrive() {
		// A drive-relative path only resolves against the current directory when both agree on
		// the drive. Otherwise it resolves against that drive's root.
		rest := path[len(p.Raw):]
		if cp, ok := cc.Prefix(); ok && cp.Kind == PrefixDisk && cp.Drive == p.Drive {
			return normalize(r, push(r, clone(cwd), rest)), nil
		}
		buf := append(clone(p.Raw), r.Separator)
		return normalize(r, push(r, buf, rest)), nil
	}
	return normalize(r, push(r, clone(cwd), path)), nil
}
