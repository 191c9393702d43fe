package json

import "strconv"

// Stringify serializes v into canonical JSON text: no whitespace, shortest
// round-trip-capable numbers, unescaped '/', and object members emitted in
// their stored (insertion) order. It never fails for a Value produced by
// this package's own parser or constructors; the error return exists for
// forward compatibility and is always nil today.
func Stringify(v *Value) (string, error) {
	var buf scratch
	writeValue(&buf, v)
	return string(buf.data[:buf.top]), nil
}

func writeValue(buf *scratch, v *Value) {
	switch v.Tag() {
	case Null:
		buf.pushString("null")
	case Bool:
		if v.b {
			buf.pushString("true")
		} else {
			buf.pushString("false")
		}
	case Number:
		writeNumber(buf, v.n)
	case String:
		writeString(buf, v.s)
	case Array:
		buf.pushByte('[')
		for i := range v.arr {
			if i > 0 {
				buf.pushByte(',')
			}
			writeValue(buf, &v.arr[i])
		}
		buf.pushByte(']')
	case Object:
		buf.pushByte('{')
		for i := range v.obj {
			if i > 0 {
				buf.pushByte(',')
			}
			writeString(buf, v.obj[i].Key)
			buf.pushByte(':')
			writeValue(buf, &v.obj[i].Val)
		}
		buf.pushByte('}')
	}
}

// writeNumber formats n into a 32-byte stack buffer (room for any
// IEEE-754 double's shortest round-trip decimal form) using the shortest
// 'g'-style digits that parse back to the same double, then pushes exactly the bytes
// produced onto the scratch buffer, rather than formatting directly into
// scratch, so a rewound region can never alias the source of the copy.
func writeNumber(buf *scratch, n float64) {
	var tmp [32]byte
	formatted := strconv.AppendFloat(tmp[:0], n, 'g', -1, 64)
	copy(buf.push(len(formatted)), formatted)
}

var hexDigits = "0123456789ABCDEF"

// writeString emits s as a quoted JSON string: escape '"', '\\' and the
// five named control characters (\b \f \n \r \t), any other byte < 0x20 as \u00XX with uppercase
// hex, forward slash NOT escaped, everything else verbatim. Reservation is
// 6*len+2 worst case; unused tail is trimmed by rewinding.
func writeString(buf *scratch, s string) {
	worst := 6*len(s) + 2
	region := buf.push(worst)
	n := 0
	region[n] = '"'
	n++
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			region[n], region[n+1] = '\\', '"'
			n += 2
		case '\\':
			region[n], region[n+1] = '\\', '\\'
			n += 2
		case 0x08:
			region[n], region[n+1] = '\\', 'b'
			n += 2
		case 0x0C:
			region[n], region[n+1] = '\\', 'f'
			n += 2
		case 0x0A:
			region[n], region[n+1] = '\\', 'n'
			n += 2
		case 0x0D:
			region[n], region[n+1] = '\\', 'r'
			n += 2
		case 0x09:
			region[n], region[n+1] = '\\', 't'
			n += 2
		default:
			if c < 0x20 {
				region[n] = '\\'
				region[n+1] = 'u'
				region[n+2] = '0'
				region[n+3] = '0'
				region[n+4] = hexDigits[c>>4]
				region[n+5] = hexDigits[c&0xF]
				n += 6
			} else {
				region[n] = c
				n++
			}
		}
	}
	region[n] = '"'
	n++
	buf.rewind(buf.top - (worst - n))
}
