//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package masking

// And sets z to the masked AND a&b using the randomness matrix r and
// returns z. The matrix must be fresh for this call only. Every
// cross term between two distinct shares is combined with r[i][j]
// before it is folded into the output:
//
//	z[i]  = a[i]&b[i]
//	z[i] ^= r[i][j]
//	z[j] ^= (a[i]&b[j] ^ a[j]&b[i]) ^ r[i][j]   for all i < j
//
// The sequence of operations does not depend on the share values.
func (z *Value[S]) And(a, b *Value[S], r *Matrix[S]) *Value[S] {
	var out S

	switch o := any(&out).(type) {
	case *[1]uint64:
		o[0] = any(&a.Share).(*[1]uint64)[0] & any(&b.Share).(*[1]uint64)[0]
	case *[2]uint64:
		and2(o, any(&a.Share).(*[2]uint64), any(&b.Share).(*[2]uint64),
			any(r.r).([][2]uint64))
	case *[3]uint64:
		and3(o, any(&a.Share).(*[3]uint64), any(&b.Share).(*[3]uint64),
			any(r.r).([][3]uint64))
	case *[4]uint64:
		and4(o, any(&a.Share).(*[4]uint64), any(&b.Share).(*[4]uint64),
			any(r.r).([][4]uint64))
	case *[5]uint64:
		and5(o, any(&a.Share).(*[5]uint64), any(&b.Share).(*[5]uint64),
			any(r.r).([][5]uint64))
	default:
		andGeneric(&out, &a.Share, &b.Share, r.r)
	}
	z.Share = out

	return z
}

// andGeneric is the general form of the AND gadget. The fixed size
// variants must compute the same result.
func andGeneric[S Shares](out, a, b *S, r []S) {
	n := len(*out)

	for i := 0; i < n; i++ {
		(*out)[i] = (*a)[i] & (*b)[i]
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			cross := ((*a)[i] & (*b)[j]) ^ ((*a)[j] & (*b)[i])
			(*out)[i] ^= r[i][j]
			(*out)[j] ^= cross ^ r[i][j]
		}
	}
}

func and2(out, a, b *[2]uint64, r [][2]uint64) {
	out[0] = a[0] & b[0]
	out[1] = a[1] & b[1]

	t01 := (a[0] & b[1]) ^ (a[1] & b[0])
	out[0] ^= r[0][1]
	out[1] ^= t01 ^ r[0][1]
}

func and3(out, a, b *[3]uint64, r [][3]uint64) {
	out[0] = a[0] & b[0]
	out[1] = a[1] & b[1]
	out[2] = a[2] & b[2]

	t01 := (a[0] & b[1]) ^ (a[1] & b[0])
	out[0] ^= r[0][1]
	out[1] ^= t01 ^ r[0][1]

	t02 := (a[0] & b[2]) ^ (a[2] & b[0])
	out[0] ^= r[0][2]
	out[2] ^= t02 ^ r[0][2]

	t12 := (a[1] & b[2]) ^ (a[2] & b[1])
	out[1] ^= r[1][2]
	out[2] ^= t12 ^ r[1][2]
}

func and4(out, a, b *[4]uint64, r [][4]uint64) {
	out[0] = a[0] & b[0]
	out[1] = a[1] & b[1]
	out[2] = a[2] & b[2]
	out[3] = a[3] & b[3]

	t01 := (a[0] & b[1]) ^ (a[1] & b[0])
	out[0] ^= r[0][1]
	out[1] ^= t01 ^ r[0][1]

	t02 := (a[0] & b[2]) ^ (a[2] & b[0])
	out[0] ^= r[0][2]
	out[2] ^= t02 ^ r[0][2]

	t03 := (a[0] & b[3]) ^ (a[3] & b[0])
	out[0] ^= r[0][3]
	out[3] ^= t03 ^ r[0][3]

	t12 := (a[1] & b[2]) ^ (a[2] & b[1])
	out[1] ^= r[1][2]
	out[2] ^= t12 ^ r[1][2]

	t13 := (a[1] & b[3]) ^ (a[3] & b[1])
	out[1] ^= r[1][3]
	out[3] ^= t13 ^ r[1][3]

	t23 := (a[2] & b[3]) ^ (a[3] & b[2])
	out[2] ^= r[2][3]
	out[3] ^= t23 ^ r[2][3]
}

func and5(out, a, b *[5]uint64, r [][5]uint64) {
	for i := 0; i < 5; i++ {
		out[i] = a[i] & b[i]
	}

	t01 := (a[0] & b[1]) ^ (a[1] & b[0])
	out[0] ^= r[0][1]
	out[1] ^= t01 ^ r[0][1]

	t02 := (a[0] & b[2]) ^ (a[2] & b[0])
	out[0] ^= r[0][2]
	out[2] ^= t02 ^ r[0][2]

	t03 := (a[0] & b[3]) ^ (a[3] & b[0])
	out[0] ^= r[0][3]
	out[3] ^= t03 ^ r[0][3]

	t04 := (a[0] & b[4]) ^ (a[4] & b[0])
	out[0] ^= r[0][4]
	out[4] ^= t04 ^ r[0][4]

	t12 := (a[1] & b[2]) ^ (a[2] & b[1])
	out[1] ^= r[1][2]
	out[2] ^= t12 ^ r[1][2]

	t13 := (a[1] & b[3]) ^ (a[3] & b[1])
	out[1] ^= r[1][3]
	out[3] ^= t13 ^ r[1][3]

	t14 := (a[1] & b[4]) ^ (a[4] & b[1])
	out[1] ^= r[1][4]
	out[4] ^= t14 ^ r[1][4]

	t23 := (a[2] & b[3]) ^ (a[3] & b[2])
	out[2] ^= r[2][3]
	out[3] ^= t23 ^ r[2][3]

	t24 := (a[2] & b[4]) ^ (a[4] & b[2])
	out[2] ^= r[2][4]
	out[4] ^= t24 ^ r[2][4]

	t34 := (a[3] & b[4]) ^ (a[4] & b[3])
	out[3] ^= r[3][4]
	out[4] ^= t34 ^ r[3][4]
}
