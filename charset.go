package vtcore

// NRCSVariant identifies one of the 128-entry code-point tables a
// G-set slot can be assigned, per §4.3.
type NRCSVariant uint8

const (
	NRCSUSASCII NRCSVariant = iota
	NRCSUK
	NRCSDECSpecialGraphics
	NRCSDutch
	NRCSFinnish
	NRCSFrench
	NRCSFrenchCanadian
	NRCSGerman
	NRCSItalian
	NRCSNorwegian
	NRCSSpanish
	NRCSSwedish
	NRCSSwiss
	NRCSDECSupplemental
	NRCSVT52SpecialGraphics
)

// charsetTable is a 128-entry mapping from a low-7-bit input byte to
// a display code point.
type charsetTable [128]rune

var nrcsTables = buildNRCSTables()

func identityTable() charsetTable {
	var t charsetTable
	for i := range t {
		t[i] = rune(i)
	}
	return t
}

// decSpecialGraphicsTable is the VT100 line-drawing set: 0x60-0x7E
// carry box-drawing and symbol glyphs, everything else is ASCII.
func decSpecialGraphicsTable() charsetTable {
	t := identityTable()
	overrides := map[byte]rune{
		0x60: '◆', 0x61: '▒',
		0x62: '␉', 0x63: '␌', 0x64: '␍', 0x65: '␊',
		0x66: '°', 0x67: '±',
		0x68: '␤', 0x69: '␋',
		0x6a: '┘', 0x6b: '┐', 0x6c: '┌', 0x6d: '└', 0x6e: '┼',
		0x6f: '⎺', 0x70: '⎻', 0x71: '─', 0x72: '⎼', 0x73: '⎽',
		0x74: '├', 0x75: '┤', 0x76: '┴', 0x77: '┬', 0x78: '│',
		0x79: '≤', 0x7a: '≥', 0x7b: 'π', 0x7c: '≠', 0x7d: '£', 0x7e: '·',
	}
	for b, r := range overrides {
		t[b] = r
	}
	return t
}

// nrcsOverride builds an NRCS variant starting from US-ASCII and
// replacing the positions the national replacement set redefines.
func nrcsOverride(overrides map[byte]rune) charsetTable {
	t := identityTable()
	for b, r := range overrides {
		t[b] = r
	}
	return t
}

// decSupplementalTable approximates the DEC Supplemental set, which
// tracks ISO Latin-1 closely for the GR range; positions 0x00-0x1F
// are unused (control range) and left as identity.
func decSupplementalTable() charsetTable {
	var t charsetTable
	for i := range t {
		if i < 0x20 {
			t[i] = rune(i)
		} else {
			t[i] = rune(i + 0x80)
		}
	}
	return t
}

func buildNRCSTables() map[NRCSVariant]charsetTable {
	m := map[NRCSVariant]charsetTable{
		NRCSUSASCII:             identityTable(),
		NRCSUK:                  nrcsOverride(map[byte]rune{0x23: '£'}),
		NRCSDECSpecialGraphics:  decSpecialGraphicsTable(),
		NRCSVT52SpecialGraphics: decSpecialGraphicsTable(),
		NRCSDutch: nrcsOverride(map[byte]rune{
			0x23: '£', 0x40: '¾', 0x5b: 'ĳ', 0x5c: '½', 0x5d: '|',
			0x7b: '¨', 0x7c: 'f', 0x7d: '¼', 0x7e: '´',
		}),
		NRCSFinnish: nrcsOverride(map[byte]rune{
			0x5b: 'Ä', 0x5c: 'Ö', 0x5d: 'Å', 0x5e: 'Ü',
			0x60: 'é', 0x7b: 'ä', 0x7c: 'ö', 0x7d: 'å', 0x7e: 'ü',
		}),
		NRCSFrench: nrcsOverride(map[byte]rune{
			0x23: '£', 0x40: 'à', 0x5b: '°', 0x5c: 'ç', 0x5d: '§',
			0x7b: 'é', 0x7c: 'ù', 0x7d: 'è', 0x7e: '¨',
		}),
		NRCSFrenchCanadian: nrcsOverride(map[byte]rune{
			0x40: 'à', 0x5b: 'â', 0x5c: 'ç', 0x5d: 'ê', 0x5e: 'î',
			0x60: 'ô', 0x7b: 'é', 0x7c: 'ù', 0x7d: 'è', 0x7e: 'û',
		}),
		NRCSGerman: nrcsOverride(map[byte]rune{
			0x40: '§', 0x5b: 'Ä', 0x5c: 'Ö', 0x5d: 'Ü',
			0x7b: 'ä', 0x7c: 'ö', 0x7d: 'ü', 0x7e: 'ß',
		}),
		NRCSItalian: nrcsOverride(map[byte]rune{
			0x23: '£', 0x40: '§', 0x5b: '°', 0x5c: 'ç', 0x5d: 'é',
			0x60: 'ù', 0x7b: 'à', 0x7c: 'ò', 0x7d: 'è', 0x7e: 'ì',
		}),
		NRCSNorwegian: nrcsOverride(map[byte]rune{
			0x40: 'É', 0x5b: 'Æ', 0x5c: 'Ø', 0x5d: 'Å', 0x5e: 'Ü',
			0x60: 'é', 0x7b: 'æ', 0x7c: 'ø', 0x7d: 'å', 0x7e: 'ü',
		}),
		NRCSSpanish: nrcsOverride(map[byte]rune{
			0x23: '£', 0x40: '§', 0x5b: '¡', 0x5c: 'Ñ', 0x5d: '¿',
			0x7b: '°', 0x7c: 'ñ', 0x7d: 'ç',
		}),
		NRCSSwedish: nrcsOverride(map[byte]rune{
			0x40: 'É', 0x5b: 'Ä', 0x5c: 'Ö', 0x5d: 'Å', 0x5e: 'Ü',
			0x60: 'é', 0x7b: 'ä', 0x7c: 'ö', 0x7d: 'å', 0x7e: 'ü',
		}),
		NRCSSwiss: nrcsOverride(map[byte]rune{
			0x23: 'ù', 0x40: 'à', 0x5b: 'é', 0x5c: 'ç', 0x5d: 'ê',
			0x5e: 'î', 0x5f: 'è', 0x60: 'ô', 0x7b: 'ä', 0x7c: 'ö',
			0x7d: 'ü', 0x7e: 'û',
		}),
		NRCSDECSupplemental: decSupplementalTable(),
	}
	return m
}

// mapCharset maps a byte (0x00-0xFF) through variant to a display
// code point. Bytes >= 0x80 use the low 7 bits, matching GR usage.
func mapCharset(variant NRCSVariant, b byte) rune {
	table := nrcsTables[variant]
	return table[b&0x7F]
}
