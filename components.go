package typedpath

import (
	"iter"
)

// state tracks how far an iterator end has progressed. Fronts move forward through the states,
// backs move backward.
type state uint8

const (
	statePrefix state = iota
	stateStartDir
	stateBody
	stateDone
)

// Components lazily iterates over the components of a path, from either end. It holds nothing but
// the unparsed remainder of the path and a few flags, so copying it is cheap and parsing never
// allocates.
type Components[S unit] struct {
	path            S
	rules           *Rules
	prefix          PrefixComponent[S]
	hasPrefix       bool
	hasPhysicalRoot bool
	front, back     state
}

// Parse returns an iterator over the components of path under the given rules.
func Parse[S unit](r *Rules, path S) Components[S] {
	c := Components[S]{path: path, rules: r, front: statePrefix, back: stateBody}
	rest := path
	if r.Prefixes {
		if p, ok := ParsePrefix(path); ok {
			c.prefix = p
			c.hasPrefix = true
			rest = path[len(p.Raw):]
		}
	}
	c.hasPhysicalRoot = len(rest) > 0 && c.isSep(rest[0])
	return c
}

func (c *Components[S]) verbatim() bool {
	return c.hasPrefix && c.prefix.IsVerbatim()
}

func (c *Components[S]) isSep(b byte) bool {
	return c.rules.isSeparator(b, c.verbatim())
}

func (c *Components[S]) prefixRemaining() int {
	if c.front == statePrefix && c.hasPrefix {
		return len(c.prefix.Raw)
	}
	return 0
}

// lenBeforeBody is the number of bytes at the start of the remainder which belong to the prefix,
// root or leading `.`, none of which the back end may parse as body components.
func (c *Components[S]) lenBeforeBody() int {
	n := c.prefixRemaining()
	if c.front <= stateStartDir {
		if c.hasPhysicalRoot {
			n++
		}
		if c.includeCurDir() {
			n++
		}
	}
	return n
}

func (c *Components[S]) finished() bool {
	return c.front == stateDone || c.back == stateDone || c.front > c.back
}

// includeCurDir returns true iff the path starts with a `.` component which must be reported.
func (c *Components[S]) includeCurDir() bool {
	if c.HasRoot() {
		return false
	}
	rest := c.path[c.prefixRemaining():]
	switch {
	case len(rest) == 1:
		return rest[0] == '.'
	case len(rest) > 1:
		return rest[0] == '.' && c.isSep(rest[1])
	}
	return false
}

func (c *Components[S]) parseSingle(seg S) (Component[S], bool) {
	switch string(seg) {
	case "":
		return Component[S]{}, false
	case ".":
		if c.verbatim() {
			return Component[S]{Kind: KindCurDir}, true
		}
		return Component[S]{}, false
	case "..":
		return Component[S]{Kind: KindParentDir}, true
	}
	return normal(seg), true
}

// parseNext parses the body component at the front, returning the number of bytes it spans.
func (c *Components[S]) parseNext() (int, Component[S], bool) {
	seg, extra := c.path, 0
	for i := 0; i < len(c.path); i++ {
		if c.isSep(c.path[i]) {
			seg, extra = c.path[:i], 1
			break
		}
	}
	comp, ok := c.parseSingle(seg)
	return len(seg) + extra, comp, ok
}

// parseNextBack parses the body component at the back, returning the number of bytes it spans.
func (c *Components[S]) parseNextBack() (int, Component[S], bool) {
	start := c.lenBeforeBody()
	seg, extra := c.path[start:], 0
	for i := len(c.path) - 1; i >= start; i-- {
		if c.isSep(c.path[i]) {
			seg, extra = c.path[i+1:], 1
			break
		}
	}
	comp, ok := c.parseSingle(seg)
	return len(seg) + extra, comp, ok
}

func (c *Components[S]) trimLeft() {
	for len(c.path) > 0 {
		size, _, ok := c.parseNext()
		if ok {
			return
		}
		c.path = c.path[size:]
	}
}

func (c *Components[S]) trimRight() {
	for len(c.path) > c.lenBeforeBody() {
		size, _, ok := c.parseNextBack()
		if ok {
			return
		}
		c.path = c.path[:len(c.path)-size]
	}
}

// Next returns the next component from the front.
func (c *Components[S]) Next() (Component[S], bool) {
	for !c.finished() {
		switch c.front {
		case statePrefix:
			c.front = stateStartDir
			if c.hasPrefix {
				c.path = c.path[len(c.prefix.Raw):]
				return Component[S]{Kind: KindPrefix, Prefix: c.prefix}, true
			}
		case stateStartDir:
			c.front = stateBody
			if c.hasPhysicalRoot {
				c.path = c.path[1:]
				return Component[S]{Kind: KindRootDir}, true
			} else if c.hasPrefix {
				if c.prefix.HasImplicitRoot() && !c.prefix.IsVerbatim() {
					return Component[S]{Kind: KindRootDir}, true
				}
			} else if c.includeCurDir() {
				c.path = c.path[1:]
				return Component[S]{Kind: KindCurDir}, true
			}
		case stateBody:
			if len(c.path) == 0 {
				c.front = stateDone
				continue
			}
			size, comp, ok := c.parseNext()
			c.path = c.path[size:]
			if ok {
				return comp, true
			}
		}
	}
	return Component[S]{}, false
}

// NextBack returns the next component from the back.
func (c *Components[S]) NextBack() (Component[S], bool) {
	for !c.finished() {
		switch c.back {
		case stateBody:
			if len(c.path) <= c.lenBeforeBody() {
				c.back = stateStartDir
				continue
			}
			size, comp, ok := c.parseNextBack()
			c.path = c.path[:len(c.path)-size]
			if ok {
				return comp, true
			}
		case stateStartDir:
			c.back = statePrefix
			if c.hasPhysicalRoot {
				c.path = c.path[:len(c.path)-1]
				return Component[S]{Kind: KindRootDir}, true
			} else if c.hasPrefix {
				if c.prefix.HasImplicitRoot() && !c.prefix.IsVerbatim() {
					return Component[S]{Kind: KindRootDir}, true
				}
			} else if c.includeCurDir() {
				c.path = c.path[:len(c.path)-1]
				return Component[S]{Kind: KindCurDir}, true
			}
		case statePrefix:
			c.back = stateDone
			if c.hasPrefix {
				return Component[S]{Kind: KindPrefix, Prefix: c.prefix}, true
			}
		}
	}
	return Component[S]{}, false
}

// AsPath returns the part of the path which has not been iterated over yet, without leading or
// trailing separators and `.` segments that iteration would skip.
func (c Components[S]) AsPath() S {
	if c.front == stateBody {
		c.trimLeft()
	}
	if c.back == stateBody {
		c.trimRight()
	}
	return c.path
}

// All iterates over the remaining components from the front, without consuming them.
func (c Components[S]) All() iter.Seq[Component[S]] {
	return func(yield func(Component[S]) bool) {
		it := c
		for comp, ok := it.Next(); ok; comp, ok = it.Next() {
			if !yield(comp) {
				return
			}
		}
	}
}

// Backward iterates over the remaining components from the back, without consuming them.
func (c Components[S]) Backward() iter.Seq[Component[S]] {
	return func(yield func(Component[S]) bool) {
		it := c
		for comp, ok := it.NextBack(); ok; comp, ok = it.NextBack() {
			if !yield(comp) {
				return
			}
		}
	}
}

// Collect returns the remaining components from the front.
func (c Components[S]) Collect() []Component[S] {
	var comps []Component[S]
	for comp := range c.All() {
		comps = append(comps, comp)
	}
	return comps
}

// Prefix returns the path's Windows prefix, if any.
func (c *Components[S]) Prefix() (PrefixComponent[S], bool) {
	return c.prefix, c.hasPrefix
}

// HasRoot returns true if the path has a root separator, explicit or implied by its prefix.
func (c *Components[S]) HasRoot() bool {
	return c.hasPhysicalRoot || (c.hasPrefix && c.prefix.HasImplicitRoot())
}

// IsAbsolute returns true if the path identifies a location independently of any current
// directory. Under rules with prefixes this requires both a prefix and a root.
func (c *Components[S]) IsAbsolute() bool {
	if c.rules.Prefixes {
		return c.hasPrefix && c.HasRoot()
	}
	return c.HasRoot()
}

// isDiskOnly returns true for paths consisting of nothing but a drive prefix, e.g. `C:`.
func (c *Components[S]) isDiskOnly() bool {
	return c.hasPrefix && c.prefix.IsDrive() && len(c.prefix.Raw) == len(c.path)
}
