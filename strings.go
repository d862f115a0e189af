package netmsg

import "strings"

// sanitize maps bytes old peers cannot print to '.'.
func sanitize(c byte, percent bool) byte {
	if c > 127 || (percent && c == '%') {
		return '.'
	}
	return c
}

// WriteString writes s as a NUL-terminated string bounded by
// Config.MaxStringChars. s is cut at its first NUL; a longer s is written as
// the empty string.
func (m *Message) WriteString(s string) error {
	return m.writeString(s, m.c().cfg.MaxStringChars)
}

// WriteBigString is WriteString bounded by Config.BigInfoString.
func (m *Message) WriteBigString(s string) error {
	return m.writeString(s, m.c().cfg.BigInfoString)
}

func (m *Message) writeString(s string, bound int) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	if len(s) >= bound {
		m.c().logger.Debug("string too long, sending empty", "len", len(s), "bound", bound)
		return m.WriteByte(0)
	}
	percent := m.c().cfg.Strings.FilterPercentOnWrite
	p := make([]byte, len(s)+1)
	for i := 0; i < len(s); i++ {
		p[i] = sanitize(s[i], percent)
	}
	return m.WriteData(p)
}

// ReadString reads a string written by WriteString. It stops at the
// terminator or the end of the message and returns at most
// Config.MaxStringChars-1 bytes.
func (m *Message) ReadString() string {
	cfg := &m.c().cfg
	return m.readString(cfg.MaxStringChars, false, cfg.Strings.FilterPercentString)
}

// ReadBigString reads a string written by WriteBigString.
func (m *Message) ReadBigString() string {
	cfg := &m.c().cfg
	return m.readString(cfg.BigInfoString, false, cfg.Strings.FilterPercentBigString)
}

// ReadStringLine is ReadString that also stops at a line feed, which is
// consumed.
func (m *Message) ReadStringLine() string {
	cfg := &m.c().cfg
	return m.readString(cfg.MaxStringChars, true, cfg.Strings.FilterPercentStringLine)
}

func (m *Message) readString(bound int, line, percent bool) string {
	var sb strings.Builder
	for sb.Len() < bound-1 {
		c := m.ReadUint8()
		if c <= 0 || (line && c == '\n') {
			break
		}
		sb.WriteByte(sanitize(byte(c), percent))
	}
	return sb.String()
}

// HashKey hashes at most maxLen bytes of s, stopping at a NUL. Bytes the
// string codec may rewrite to '.' hash as '.', so a string and its sanitized
// form share a key.
func HashKey(s string, maxLen int) int32 {
	var hash int32
	for i := 0; i < maxLen && i < len(s) && s[i] != 0; i++ {
		hash += int32(sanitize(s[i], true)) * int32(119+i)
	}
	return hash ^ hash>>10 ^ hash>>20
}
