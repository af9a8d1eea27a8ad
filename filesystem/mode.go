package filesystem

import (
	"fmt"
	"strings"
)

// Capability is one of read, write or execute. Values match the rwx bit
// positions inside a triad.
type Capability uint8

const (
	Exec  Capability = 1 << iota // x
	Write                        // w
	Read                         // r
)

// ParseCapability converts "r", "w" or "x" into a Capability.
func ParseCapability(s string) (Capability, error) {
	switch s {
	case "r":
		return Read, nil
	case "w":
		return Write, nil
	case "x":
		return Exec, nil
	}
	return 0, fmt.Errorf("unknown capability %q", s)
}

func (c Capability) String() string {
	switch c {
	case Read:
		return "r"
	case Write:
		return "w"
	case Exec:
		return "x"
	}
	return "?"
}

// Triad holds the three rwx bits of a single permission group.
type Triad uint8

const triadMask Triad = 0o7

// Has reports whether every bit of c is set in t.
func (t Triad) Has(c Capability) bool {
	return Triad(c)&t == Triad(c)
}

func (t Triad) String() string {
	var b [3]byte
	for i, c := range [3]Capability{Read, Write, Exec} {
		b[i] = '-'
		if t.Has(c) {
			b[i] = c.String()[0]
		}
	}
	return string(b[:])
}

// Mode is a node's type bit plus its owner and other triads.
//
//	bit 6    directory
//	bits 5-3 owner rwx
//	bits 2-0 other rwx
type Mode uint8

const (
	ModeDir Mode = 1 << 6

	ownerShift = 3
	modePerm   = Mode(0o77)
)

// Default modes at creation: files "-rw-r--", directories "drwxr-x".
const (
	DefaultFileMode = Mode(0o64)
	DefaultDirMode  = ModeDir | Mode(0o75)
)

// NewMode assembles a Mode from its parts.
func NewMode(dir bool, owner, other Triad) Mode {
	m := Mode(owner&triadMask)<<ownerShift | Mode(other&triadMask)
	if dir {
		m |= ModeDir
	}
	return m
}

// IsDir reports whether the type bit is set.
func (m Mode) IsDir() bool { return m&ModeDir != 0 }

// Owner returns the owner triad.
func (m Mode) Owner() Triad { return Triad(m>>ownerShift) & triadMask }

// Other returns the other triad.
func (m Mode) Other() Triad { return Triad(m) & triadMask }

// Perm strips the type bit.
func (m Mode) Perm() Mode { return m & modePerm }

// String renders the 7 character form, i.e. "drwxr-x" or "-rw-r--".
func (m Mode) String() string {
	typ := "-"
	if m.IsDir() {
		typ = "d"
	}
	return typ + m.Owner().String() + m.Other().String()
}

// ParseTriad parses a 3 character "rwx" form where each position is its
// letter or '-'.
func ParseTriad(s string) (Triad, error) {
	if len(s) != 3 {
		return 0, fmt.Errorf("invalid triad %q", s)
	}
	var t Triad
	for i, c := range [3]Capability{Read, Write, Exec} {
		switch s[i] {
		case c.String()[0]:
			t |= Triad(c)
		case '-':
		default:
			return 0, fmt.Errorf("invalid triad %q", s)
		}
	}
	return t, nil
}

// ParseMode parses the 7 character form produced by [Mode.String].
func ParseMode(s string) (Mode, error) {
	if len(s) != 7 {
		return 0, fmt.Errorf("invalid permission string %q", s)
	}
	var dir bool
	switch s[0] {
	case 'd':
		dir = true
	case '-':
	default:
		return 0, fmt.Errorf("invalid permission string %q", s)
	}
	owner, err := ParseTriad(s[1:4])
	if err != nil {
		return 0, fmt.Errorf("invalid permission string %q", s)
	}
	other, err := ParseTriad(s[4:])
	if err != nil {
		return 0, fmt.Errorf("invalid permission string %q", s)
	}
	return NewMode(dir, owner, other), nil
}

// ModeOp is the chmod operator character.
type ModeOp byte

const (
	OpRemove ModeOp = '-'
	OpAdd    ModeOp = '+'
	OpSet    ModeOp = '='
)

// ModeChange is a parsed chmod mode such as "u+x", "o-rw" or "=rx".
type ModeChange struct {
	Op    ModeOp
	Owner bool // applies to the owner triad ("u" or "a")
	Other bool // applies to the other triad ("o" or "a")
	Bits  Triad
}

// ParseModeChange parses "<subjects><op><bits>". Exactly one of '-', '+', '='
// must appear. Subjects are drawn from u, o, a; repeats are harmless and an
// empty subject list means "a". Bits are drawn from r, w, x and may be empty.
func ParseModeChange(s string) (ModeChange, error) {
	var mc ModeChange
	opIdx := -1
	for i := 0; i < len(s); i++ {
		switch ModeOp(s[i]) {
		case OpRemove, OpAdd, OpSet:
			if opIdx != -1 {
				return ModeChange{}, fmt.Errorf("invalid mode %q: more than one operator", s)
			}
			opIdx = i
		}
	}
	if opIdx == -1 {
		return ModeChange{}, fmt.Errorf("invalid mode %q: missing operator", s)
	}
	mc.Op = ModeOp(s[opIdx])

	subjects, bits := s[:opIdx], s[opIdx+1:]
	for _, r := range subjects {
		switch r {
		case 'u':
			mc.Owner = true
		case 'o':
			mc.Other = true
		case 'a':
			mc.Owner, mc.Other = true, true
		default:
			return ModeChange{}, fmt.Errorf("invalid mode %q: unknown subject %q", s, r)
		}
	}
	if subjects == "" {
		mc.Owner, mc.Other = true, true
	}
	for _, r := range bits {
		c, err := ParseCapability(string(r))
		if err != nil {
			return ModeChange{}, fmt.Errorf("invalid mode %q: unknown bit %q", s, r)
		}
		mc.Bits |= Triad(c)
	}
	return mc, nil
}

// Apply returns m with the change applied to the selected triads. The type
// bit is never touched.
func (mc ModeChange) Apply(m Mode) Mode {
	owner, other := m.Owner(), m.Other()
	if mc.Owner {
		owner = mc.applyTriad(owner)
	}
	if mc.Other {
		other = mc.applyTriad(other)
	}
	return NewMode(m.IsDir(), owner, other)
}

func (mc ModeChange) applyTriad(t Triad) Triad {
	switch mc.Op {
	case OpRemove:
		return t &^ mc.Bits
	case OpAdd:
		return t | mc.Bits
	case OpSet:
		return mc.Bits
	}
	return t
}

// String renders the change back into chmod syntax with explicit subjects.
func (mc ModeChange) String() string {
	var b strings.Builder
	switch {
	case mc.Owner && mc.Other:
		b.WriteByte('a')
	case mc.Owner:
		b.WriteByte('u')
	case mc.Other:
		b.WriteByte('o')
	}
	b.WriteByte(byte(mc.Op))
	for _, c := range [3]Capability{Read, Write, Exec} {
		if mc.Bits.Has(c) {
			b.WriteString(c.String())
		}
	}
	return b.String()
}
