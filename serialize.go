package url

import "strings"

// String renders u per spec.md §4.10's URL serializer, the href form
// used by Href and Stringer callers alike.
func (u *URL) String() string {
	var b strings.Builder
	b.WriteString(u.scheme)
	b.WriteByte(':')

	if u.hasHost {
		b.WriteString("//")
		if u.username != "" || u.password != "" {
			b.WriteString(u.username)
			if u.password != "" {
				b.WriteByte(':')
				b.WriteString(u.password)
			}
			b.WriteByte('@')
		}
		b.WriteString(u.host.String())
		if u.port != nil {
			b.WriteByte(':')
			b.WriteString(portString(*u.port))
		}
	} else if !u.cannotBeABaseURL && len(u.pathSegments) > 1 && u.pathSegments[0] == "" {
		// Opaque-path-less, hostless URLs whose first segment is empty
		// would otherwise collide with "//"; spec.md §4.10 inserts a
		// bare "/." marker to prevent that ambiguity.
		b.WriteString("/.")
	}

	b.WriteString(u.pathString())

	if u.query != nil {
		b.WriteByte('?')
		b.WriteString(*u.query)
	}
	if u.fragment != nil {
		b.WriteByte('#')
		b.WriteString(*u.fragment)
	}
	return b.String()
}

func portString(p uint16) string {
	if p == 0 {
		return "0"
	}
	var buf [5]byte
	i := len(buf)
	for p > 0 {
		i--
		buf[i] = byte('0' + p%10)
		p /= 10
	}
	return string(buf[i:])
}

// Origin renders u's origin per spec.md §6: "scheme://host[:port]" for
// special non-file schemes with a host (ftp, http, https, ws, wss), and
// the empty string otherwise (file URLs and non-special URLs get no
// origin string).
func (u *URL) Origin() string {
	if !u.IsSpecial() || u.scheme == "file" || !u.hasHost {
		return ""
	}
	var b strings.Builder
	b.WriteString(u.scheme)
	b.WriteString("://")
	b.WriteString(u.host.String())
	if u.port != nil {
		b.WriteByte(':')
		b.WriteString(portString(*u.port))
	}
	return b.String()
}
