package bitmask

import "testing"

// samples covers empty, single bits, composites, unknown high bits and full width.
var samples = []uint8{0x00, 0x01, 0x02, 0x04, 0x03, 0x05, 0x80, 0x7f, 0xa5, 0xff}

func TestBinaryOperatorsAgreeAcrossOperandKinds(t *testing.T) {
	type op struct {
		name     string
		raw      func(a, b uint8) uint8
		maskMask func(a, b accessMask) accessMask
		maskOpt  func(a accessMask, b access) accessMask
		optMask  func(a access, b accessMask) accessMask
		optOpt   func(a, b access) accessMask
	}
	ops := []op{
		{
			name:     "or",
			raw:      func(a, b uint8) uint8 { return a | b },
			maskMask: accessMask.Union,
			maskOpt:  accessMask.UnionOption,
			optMask:  OrMask[uint8, access],
			optOpt:   Or[uint8, access],
		},
		{
			name:     "and",
			raw:      func(a, b uint8) uint8 { return a & b },
			maskMask: accessMask.Intersect,
			maskOpt:  accessMask.IntersectOption,
			optMask:  AndMask[uint8, access],
			optOpt:   And[uint8, access],
		},
		{
			name:     "xor",
			raw:      func(a, b uint8) uint8 { return a ^ b },
			maskMask: accessMask.Xor,
			maskOpt:  accessMask.XorOption,
			optMask:  XorMask[uint8, access],
			optOpt:   Xor[uint8, access],
		},
	}

	for _, o := range ops {
		t.Run(o.name, func(t *testing.T) {
			for _, a := range samples {
				for _, b := range samples {
					want := o.raw(a, b)
					ma, mb := FromRaw[uint8, access](a), FromRaw[uint8, access](b)
					oa, ob := access(a), access(b)

					got := map[string]accessMask{
						"mask,mask":     o.maskMask(ma, mb),
						"mask,option":   o.maskOpt(ma, ob),
						"option,mask":   o.optMask(oa, mb),
						"option,option": o.optOpt(oa, ob),
					}
					for kind, m := range got {
						if m.Value() != want {
							t.Fatalf("%s(%#x, %#x) [%s] = %#x, want %#x", o.name, a, b, kind, m.Value(), want)
						}
					}
				}
			}
		})
	}
}

func TestOperatorsDoNotMutateOperands(t *testing.T) {
	m := Of[uint8](read)
	_ = m.Union(Of[uint8](write))
	_ = m.UnionOption(execute)
	_ = m.Intersect(New[uint8, access]())
	_ = m.Xor(Of[uint8](read))
	_ = m.Complement()
	if got := m.Value(); got != uint8(read) {
		t.Fatalf("operand changed to %#b", got)
	}
}

func TestCommutativeAndAssociative(t *testing.T) {
	laws := []struct {
		name string
		op   func(a, b accessMask) accessMask
	}{
		{name: "union", op: accessMask.Union},
		{name: "intersect", op: accessMask.Intersect},
		{name: "xor", op: accessMask.Xor},
	}

	for _, law := range laws {
		t.Run(law.name, func(t *testing.T) {
			for _, x := range samples {
				for _, y := range samples {
					a, b := FromRaw[uint8, access](x), FromRaw[uint8, access](y)
					if law.op(a, b) != law.op(b, a) {
						t.Fatalf("%s not commutative for %v, %v", law.name, a, b)
					}
					for _, z := range samples {
						c := FromRaw[uint8, access](z)
						if law.op(law.op(a, b), c) != law.op(a, law.op(b, c)) {
							t.Fatalf("%s not associative for %v, %v, %v", law.name, a, b, c)
						}
					}
				}
			}
		})
	}
}

func TestOptionOperandsCommute(t *testing.T) {
	opts := []access{read, write, execute, readWrite}
	for _, a := range opts {
		for _, b := range opts {
			if Or[uint8](a, b) != Or[uint8](b, a) {
				t.Errorf("Or(%#x, %#x) not commutative", a, b)
			}
			if And[uint8](a, b) != And[uint8](b, a) {
				t.Errorf("And(%#x, %#x) not commutative", a, b)
			}
			if Xor[uint8](a, b) != Xor[uint8](b, a) {
				t.Errorf("Xor(%#x, %#x) not commutative", a, b)
			}
			m := Of[uint8](b)
			if OrMask(a, m) != m.UnionOption(a) {
				t.Errorf("OrMask(%#x, m) != m.UnionOption(%#x)", a, a)
			}
		}
	}
}

func TestOptionOperandsAssociate(t *testing.T) {
	type law struct {
		name    string
		optOpt  func(a, b access) accessMask
		optMask func(a access, b accessMask) accessMask
		maskOpt func(a accessMask, b access) accessMask
	}
	laws := []law{
		{name: "or", optOpt: Or[uint8, access], optMask: OrMask[uint8, access], maskOpt: accessMask.UnionOption},
		{name: "and", optOpt: And[uint8, access], optMask: AndMask[uint8, access], maskOpt: accessMask.IntersectOption},
		{name: "xor", optOpt: Xor[uint8, access], optMask: XorMask[uint8, access], maskOpt: accessMask.XorOption},
	}
	opts := []access{0, read, write, execute, readWrite, access(0x80), access(0xa5), access(0xff)}

	for _, law := range laws {
		t.Run(law.name, func(t *testing.T) {
			for _, a := range opts {
				for _, b := range opts {
					for _, c := range opts {
						left := law.maskOpt(law.optOpt(a, b), c)
						right := law.optMask(a, law.optOpt(b, c))
						if left != right {
							t.Fatalf("(%#x %s %#x) %s %#x = %v, %#x %s (%#x %s %#x) = %v",
								a, law.name, b, law.name, c, left, a, law.name, b, law.name, c, right)
						}
					}
				}
			}
		})
	}
}

func TestComplement(t *testing.T) {
	for r := 0; r <= 0xff; r++ {
		m := FromRaw[uint8, access](uint8(r))
		if got := m.Complement().Complement(); got != m {
			t.Fatalf("~~%v = %v", m, got)
		}
		if got := m.Complement().Value(); got != ^uint8(r) {
			t.Fatalf("~%#x = %#x, want %#x", r, got, ^uint8(r))
		}
	}

	// Bits no option names are flipped too.
	if got := Not[uint8](read).Value(); got != 0xfe {
		t.Fatalf("Not(read) = %#x, want 0xfe", got)
	}
	if Not[uint8](execute) != Of[uint8](execute).Complement() {
		t.Fatal("Not(o) differs from Of(o).Complement()")
	}
	if got := FromRaw[int8, level](0).Complement().Value(); got != -1 {
		t.Fatalf("~0 over int8 = %d, want -1", got)
	}
}

func TestDeMorgan(t *testing.T) {
	for _, x := range samples {
		for _, y := range samples {
			a, b := FromRaw[uint8, access](x), FromRaw[uint8, access](y)
			if a.Union(b).Complement() != a.Complement().Intersect(b.Complement()) {
				t.Fatalf("~(a|b) != ~a & ~b for %v, %v", a, b)
			}
			if a.Intersect(b).Complement() != a.Complement().Union(b.Complement()) {
				t.Fatalf("~(a&b) != ~a | ~b for %v, %v", a, b)
			}
		}
	}
}

func TestMatches(t *testing.T) {
	rw := Of[uint8](read, write)

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{name: "mask pattern holds option", got: Matches(rw, read), want: true},
		{name: "mask pattern holds composite", got: Matches(rw, readWrite), want: true},
		{name: "mask pattern lacks option", got: Matches(rw, execute), want: false},
		{name: "empty pattern, empty option", got: Matches(New[uint8, access](), access(0)), want: true},
		{name: "option pattern covers mask", got: MatchesOption(readWrite, Of[uint8](write)), want: true},
		{name: "option pattern covers equal mask", got: MatchesOption(readWrite, rw), want: true},
		{name: "option pattern misses bits", got: MatchesOption(read, rw), want: false},
		{name: "option pattern covers empty mask", got: MatchesOption(execute, New[uint8, access]()), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestMatchesDispatch(t *testing.T) {
	describe := func(m accessMask) string {
		switch {
		case Matches(m, readWrite):
			return "read-write"
		case Matches(m, read):
			return "read-only"
		case MatchesOption(execute, m):
			return "execute-only"
		default:
			return "other"
		}
	}

	tests := map[string]accessMask{
		"read-write":   Of[uint8](read, write, execute),
		"read-only":    Of[uint8](read),
		"execute-only": Of[uint8](execute),
		"other":        Of[uint8](write, execute),
	}
	for want, m := range tests {
		if got := describe(m); got != want {
			t.Errorf("describe(%v) = %q, want %q", m, got, want)
		}
	}
}
