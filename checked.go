package typedpath

// checkFragment decides whether frag may be appended to base without escaping it. Conditions are
// tested in order and the first failing one is reported.
//
// Parent references may cancel components which frag itself introduced, and components of the
// base past its first normal one. The first normal component of the base anchors the result and
// can never be cancelled.
func checkFragment[B, S unit](r *Rules, base B, frag S) error {
	fc := Parse(r, frag)
	if fc.IsAbsolute() || fc.HasRoot() {
		return &CheckedPathError{Reason: RejectNotRelative, Fragment: string(frag)}
	}
	if _, ok := fc.Prefix(); ok {
		return &CheckedPathError{Reason: RejectPrefix, Fragment: string(frag)}
	}
	for comp := range fc.All() {
		if !comp.IsValid(r) {
			return &CheckedPathError{
				Reason:    RejectInvalidComponent,
				Fragment:  string(frag),
				Component: string(comp.Name),
			}
		}
	}
	depth := normalDepth(r, base)
	floor := min(depth, 1)
	for comp := range fc.All() {
		switch comp.Kind {
		case KindNormal:
			depth++
		case KindParentDir:
			if depth <= floor {
				return &CheckedPathError{Reason: RejectTraversal, Fragment: string(frag), Component: ".."}
			}
			depth--
		}
	}
	return nil
}

// pushChecked appends frag to cur after checking it. The fragment is always appended, never
// substituted for the base.
func pushChecked[S unit](r *Rules, cur []byte, frag S) ([]byte, error) {
	if err := checkFragment(r, cur, frag); err != nil {
		return cur, err
	}
	if len(frag) == 0 {
		return cur, nil
	}
	n := len(cur)
	joined := appendChecked(r, cur, frag)
	if !sameAnchor(r, cur[:n], joined) {
		// Leading separators of the base merged with the fragment, e.g. `\\server` and `share`.
		return cur[:n], &CheckedPathError{Reason: RejectTraversal, Fragment: string(frag)}
	}
	return joined, nil
}

// sameAnchor returns true if joined keeps the prefix and root of base.
func sameAnchor(r *Rules, base, joined []byte) bool {
	bc, jc := Parse(r, base), Parse(r, joined)
	if bc.HasRoot() != jc.HasRoot() {
		return false
	}
	bp, bok := bc.Prefix()
	jp, jok := jc.Prefix()
	if bok != jok {
		return false
	}
	return !bok || (bp.Kind == jp.Kind && string(bp.Raw) == string(jp.Raw))
}

func appendChecked[S unit](r *Rules, cur []byte, frag S) []byte {
	needSep := needsSeparator(r, cur)
	if cc := Parse(r, cur); cc.verbatim() {
		// Verbatim paths only split on the primary separator, so the fragment is re-rendered.
		for comp := range Parse(r, frag).All() {
			if comp.Kind == KindCurDir {
				continue
			}
			if needSep {
				cur = append(cur, r.Separator)
			}
			cur = comp.appendTo(cur, r)
			needSep = true
		}
		return cur
	}
	if needSep {
		cur = append(cur, r.Separator)
	}
	return append(cur, frag...)
}
