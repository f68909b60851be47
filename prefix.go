package typedpath

// Windows prefix grammar. Categories are tried in priority order and the first one which matches
// wins; a failed category never falls back to a shorter match of the same leading bytes, except
// for UNC which requires both a server and a share.

const verbatimMarker = `\\?\`

func isWindowsSep(b byte) bool {
	return b == '\\' || b == '/'
}

func isDriveLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func upperDrive(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// nextSegment splits path at its first separator, returning the segment and whatever follows the
// separator.
func nextSegment[S unit](path S, verbatim bool) (S, S, bool) {
	for i := 0; i < len(path); i++ {
		if path[i] == '\\' || (!verbatim && path[i] == '/') {
			return path[:i], path[i+1:], true
		}
	}
	return path, path[len(path):], false
}

// ParsePrefix recognizes the Windows prefix at the start of path, if any.
func ParsePrefix[S unit](path S) (PrefixComponent[S], bool) {
	var p PrefixComponent[S]
	switch {
	case hasPrefix(path, verbatimMarker):
		rest := path[len(verbatimMarker):]
		if hasPrefix(rest, `UNC\`) {
			start := len(verbatimMarker) + 4
			server, after, found := nextSegment(path[start:], true)
			end := start + len(server)
			p = PrefixComponent[S]{Kind: PrefixVerbatimUNC, Server: server}
			if found {
				share, _, _ := nextSegment(after, true)
				p.Share = share
				if len(share) > 0 {
					end += 1 + len(share)
				}
			}
			p.Raw = path[:end]
			return p, true
		}
		name, _, _ := nextSegment(rest, true)
		if len(name) == 2 && isDriveLetter(name[0]) && name[1] == ':' {
			p = PrefixComponent[S]{Kind: PrefixVerbatimDisk, Drive: upperDrive(name[0])}
		} else {
			p = PrefixComponent[S]{Kind: PrefixVerbatim, Name: name}
		}
		p.Raw = path[:len(verbatimMarker)+len(name)]
		return p, true
	case len(path) >= 4 && isWindowsSep(path[0]) && isWindowsSep(path[1]) && path[2] == '.' && isWindowsSep(path[3]):
		name, _, _ := nextSegment(path[4:], false)
		p = PrefixComponent[S]{Kind: PrefixDeviceNS, Name: name, Raw: path[:4+len(name)]}
		return p, true
	case len(path) >= 2 && isWindowsSep(path[0]) && isWindowsSep(path[1]):
		server, after, _ := nextSegment(path[2:], false)
		share, _, _ := nextSegment(after, false)
		if len(server) == 0 || len(share) == 0 {
			return p, false
		}
		p = PrefixComponent[S]{
			Kind:   PrefixUNC,
			Server: server,
			Share:  share,
			Raw:    path[:2+len(server)+1+len(share)],
		}
		return p, true
	case len(path) >= 2 && isDriveLetter(path[0]) && path[1] == ':':
		p = PrefixComponent[S]{Kind: PrefixDisk, Drive: upperDrive(path[0]), Raw: path[:2]}
		return p, true
	}
	return p, false
}
