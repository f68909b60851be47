package typedpath

import (
	"strings"
)

// Algorithms shared by every path flavour. Borrowed paths call the query functions on their own
// storage; owned buffers thread their []byte through the mutating ones.

func clone[S unit](s S) []byte {
	return append([]byte(nil), s...)
}

func asBytes[S unit](c Component[S]) Component[[]byte] {
	return Component[[]byte]{
		Kind: c.Kind,
		Name: []byte(c.Name),
		Prefix: PrefixComponent[[]byte]{
			Kind:   c.Prefix.Kind,
			Raw:    []byte(c.Prefix.Raw),
			Server: []byte(c.Prefix.Server),
			Share:  []byte(c.Prefix.Share),
			Name:   []byte(c.Prefix.Name),
			Drive:  c.Prefix.Drive,
		},
	}
}

func looksLikeDisk[S unit](name S) bool {
	return len(name) >= 2 && isDriveLetter(name[0]) && name[1] == ':'
}

// render joins components with the primary separator. No separator follows a root or a drive
// prefix. A leading normal component which would parse back as a drive is guarded with `.\`.
func render[S unit](r *Rules, comps []Component[S]) []byte {
	var buf []byte
	needSep := false
	for i, c := range comps {
		if i == 0 && r.Prefixes && c.Kind == KindNormal && looksLikeDisk(c.Name) {
			buf = append(buf, '.', r.Separator)
		}
		if needSep && c.Kind != KindRootDir {
			buf = append(buf, r.Separator)
		}
		buf = c.appendTo(buf, r)
		switch c.Kind {
		case KindRootDir:
			needSep = false
		case KindPrefix:
			needSep = !c.Prefix.IsDrive() && len(c.Prefix.Raw) > 0
		default:
			needSep = true
		}
	}
	return buf
}

func parentOf[S unit](r *Rules, path S) (S, bool) {
	c := Parse(r, path)
	comp, ok := c.NextBack()
	if !ok {
		return path[:0], false
	}
	switch comp.Kind {
	case KindNormal, KindCurDir, KindParentDir:
		return c.AsPath(), true
	}
	return path[:0], false
}

// fileNameSpan locates the final normal component of path.
func fileNameSpan[S unit](r *Rules, path S) (int, int, bool) {
	c := Parse(r, path)
	c.trimRight()
	end := len(c.path)
	comp, ok := c.NextBack()
	if !ok || comp.Kind != KindNormal {
		return 0, 0, false
	}
	return end - len(comp.Name), end, true
}

func fileNameOf[S unit](r *Rules, path S) (S, bool) {
	start, end, ok := fileNameSpan(r, path)
	if !ok {
		return path[:0], false
	}
	return path[start:end], true
}

// splitAtDot splits a file name at its last dot. Names starting with their only dot, and `..`,
// have no extension.
func splitAtDot[S unit](name S) (S, S, bool) {
	if string(name) == ".." {
		return name, name[:0], false
	}
	i := strings.LastIndexByte(string(name), '.')
	if i <= 0 {
		return name, name[:0], false
	}
	return name[:i], name[i+1:], true
}

func fileStemOf[S unit](r *Rules, path S) (S, bool) {
	name, ok := fileNameOf(r, path)
	if !ok {
		return name, false
	}
	stem, _, _ := splitAtDot(name)
	return stem, true
}

func extensionOf[S unit](r *Rules, path S) (S, bool) {
	name, ok := fileNameOf(r, path)
	if !ok {
		return name, false
	}
	_, ext, ok := splitAtDot(name)
	return ext, ok
}

// iterAfter consumes prefix from the front of path, returning the rest of path if every
// component matched.
func iterAfter[S, P unit](path Components[S], prefix Components[P]) (Components[S], bool) {
	for {
		next := path
		a, okA := next.Next()
		b, okB := prefix.Next()
		switch {
		case !okB:
			return path, true
		case !okA:
			return path, false
		case !a.Equal(asSame[S](b)):
			return path, false
		}
		path = next
	}
}

func iterBefore[S, P unit](path Components[S], suffix Components[P]) bool {
	for {
		a, okA := path.NextBack()
		b, okB := suffix.NextBack()
		switch {
		case !okB:
			return true
		case !okA:
			return false
		case !a.Equal(asSame[S](b)):
			return false
		}
	}
}

// asSame converts a component between storage flavours.
func asSame[S, P unit](c Component[P]) Component[S] {
	return Component[S]{
		Kind: c.Kind,
		Name: S(c.Name),
		Prefix: PrefixComponent[S]{
			Kind:   c.Prefix.Kind,
			Raw:    S(c.Prefix.Raw),
			Server: S(c.Prefix.Server),
			Share:  S(c.Prefix.Share),
			Name:   S(c.Prefix.Name),
			Drive:  c.Prefix.Drive,
		},
	}
}

func startsWith[S, P unit](r *Rules, path S, base P) bool {
	_, ok := iterAfter(Parse(r, path), Parse(r, base))
	return ok
}

func endsWith[S, P unit](r *Rules, path S, child P) bool {
	return iterBefore(Parse(r, path), Parse(r, child))
}

func stripPrefix[S, P unit](r *Rules, path S, base P) (S, error) {
	rest, ok := iterAfter(Parse(r, path), Parse(r, base))
	if !ok {
		return path[:0], ErrPrefixNotFound
	}
	return rest.AsPath(), nil
}

func comparePaths[S, P unit](r *Rules, a S, b P) int {
	ca, cb := Parse(r, a), Parse(r, b)
	for {
		x, okX := ca.Next()
		y, okY := cb.Next()
		switch {
		case !okX && !okY:
			return 0
		case !okX:
			return -1
		case !okY:
			return 1
		}
		if n := x.Compare(asSame[S](y)); n != 0 {
			return n
		}
	}
}

func isValidPath[S unit](r *Rules, path S) bool {
	for comp := range Parse(r, path).All() {
		if !comp.IsValid(r) {
			return false
		}
	}
	return true
}

// push appends frag to cur, following the platform's own join semantics: absolute fragments
// replace the base, and on Windows rooted or prefixed fragments replace part of it.
func push[S unit](r *Rules, cur []byte, frag S) []byte {
	if len(frag) == 0 {
		return cur
	}
	fc := Parse(r, frag)
	if !r.Prefixes {
		if fc.IsAbsolute() {
			cur = cur[:0]
		} else if len(cur) > 0 && !r.IsSeparator(cur[len(cur)-1]) {
			cur = append(cur, r.Separator)
		}
		return append(cur, frag...)
	}

	cc := Parse(r, cur)
	_, fragPrefixed := fc.Prefix()
	switch {
	case fc.IsAbsolute() || fragPrefixed:
		cur = cur[:0]
	case cc.verbatim():
		comps := cc.Collect()
		for comp := range fc.All() {
			switch comp.Kind {
			case KindRootDir:
				comps = append(comps[:1], asBytes(comp))
			case KindCurDir:
			case KindParentDir:
				if n := len(comps); n > 0 && comps[n-1].Kind == KindNormal {
					comps = comps[:n-1]
				}
			default:
				comps = append(comps, asBytes(comp))
			}
		}
		return render(r, comps)
	case fc.HasRoot():
		cur = cur[:cc.prefixRemaining()]
	default:
		if needsSeparator(r, cur) {
			cur = append(cur, r.Separator)
		}
	}
	return append(cur, frag...)
}

// needsSeparator returns true if appending a relative fragment to cur requires a separator
// first.
func needsSeparator(r *Rules, cur []byte) bool {
	if len(cur) == 0 || r.IsSeparator(cur[len(cur)-1]) {
		return false
	}
	c := Parse(r, cur)
	return !c.isDiskOnly()
}

func pop(r *Rules, cur []byte) ([]byte, bool) {
	parent, ok := parentOf(r, cur)
	if !ok {
		return cur, false
	}
	return cur[:len(parent)], true
}

func setFileName[S unit](r *Rules, cur []byte, name S) []byte {
	if _, ok := fileNameOf(r, cur); ok {
		cur, _ = pop(r, cur)
	}
	return push(r, cur, name)
}

func setExtension[S unit](r *Rules, cur []byte, ext S) ([]byte, bool) {
	start, end, ok := fileNameSpan(r, cur)
	if !ok {
		return cur, false
	}
	stem, _, _ := splitAtDot(cur[start:end])
	cur = cur[:start+len(stem)]
	if len(ext) > 0 {
		cur = append(cur, '.')
		cur = append(cur, ext...)
	}
	return cur, true
}
