package typedpath

// convert re-renders path from one rule set to the other. Prefixes are dropped when the target
// has none; the root maps onto the target separator and normal components are carried over
// byte for byte. When checked, every normal component must be valid under the target rules.
func convert[S unit](from, to *Rules, path S, checked bool) ([]byte, error) {
	if from == to {
		return clone(path), nil
	}
	var comps []Component[S]
	for comp := range Parse(from, path).All() {
		switch comp.Kind {
		case KindPrefix:
			if !to.Prefixes {
				continue
			}
		case KindNormal:
			if checked && !validSegment(to, comp.Name) {
				return nil, &ConversionError{From: from.Kind, To: to.Kind, Component: string(comp.Name)}
			}
		}
		comps = append(comps, comp)
	}
	return render(to, comps), nil
}

// Convert re-renders a path under another encoding.
func Convert[T, E Encoding](p Path[E]) PathBuf[T] {
	buf, _ := convert(rulesOf[E](), rulesOf[T](), []byte(p), false)
	return PathBuf[T]{inner: buf}
}

// ConvertChecked re-renders a path under another encoding, failing if any component would not
// be valid there.
func ConvertChecked[T, E Encoding](p Path[E]) (PathBuf[T], error) {
	buf, err := convert(rulesOf[E](), rulesOf[T](), []byte(p), true)
	if err != nil {
		return PathBuf[T]{}, err
	}
	return PathBuf[T]{inner: buf}, nil
}

// ConvertUtf8 re-renders a UTF-8 path under another encoding.
func ConvertUtf8[T, E Encoding](p Utf8Path[E]) Utf8PathBuf[T] {
	buf, _ := convert(rulesOf[E](), rulesOf[T](), string(p), false)
	return Utf8PathBuf[T]{inner: buf}
}

// ConvertUtf8Checked is the checked variant of ConvertUtf8.
func ConvertUtf8Checked[T, E Encoding](p Utf8Path[E]) (Utf8PathBuf[T], error) {
	buf, err := convert(rulesOf[E](), rulesOf[T](), string(p), true)
	if err != nil {
		return Utf8PathBuf[T]{}, err
	}
	return Utf8PathBuf[T]{inner: buf}, nil
}
