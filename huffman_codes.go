package hpack

// The canonical Huffman code from draft-07 Appendix C: 256 byte symbols plus
// the EOS sentinel. Code values are right-aligned in code and bits gives the
// code length. The table is static data; the decode tree is derived from it
// at first use.

type huffmanCode struct {
	code uint32
	bits uint8
}

// huffmanEOS is the symbol index of the end-of-string sentinel
const huffmanEOS = 256

var huffmanCodes = [257]huffmanCode{
	{0x3ffffba, 26}, // 0 0x00
	{0x3ffffbb, 26}, // 1 0x01
	{0x3ffffbc, 26}, // 2 0x02
	{0x3ffffbd, 26}, // 3 0x03
	{0x3ffffbe, 26}, // 4 0x04
	{0x3ffffbf, 26}, // 5 0x05
	{0x3ffffc0, 26}, // 6 0x06
	{0x3ffffc1, 26}, // 7 0x07
	{0x3ffffc2, 26}, // 8 0x08
	{0x3ffffc3, 26}, // 9 0x09
	{0x3ffffc4, 26}, // 10 0x0a
	{0x3ffffc5, 26}, // 11 0x0b
	{0x3ffffc6, 26}, // 12 0x0c
	{0x3ffffc7, 26}, // 13 0x0d
	{0x3ffffc8, 26}, // 14 0x0e
	{0x3ffffc9, 26}, // 15 0x0f
	{0x3ffffca, 26}, // 16 0x10
	{0x3ffffcb, 26}, // 17 0x11
	{0x3ffffcc, 26}, // 18 0x12
	{0x3ffffcd, 26}, // 19 0x13
	{0x3ffffce, 26}, // 20 0x14
	{0x3ffffcf, 26}, // 21 0x15
	{0x3ffffd0, 26}, // 22 0x16
	{0x3ffffd1, 26}, // 23 0x17
	{0x3ffffd2, 26}, // 24 0x18
	{0x3ffffd3, 26}, // 25 0x19
	{0x3ffffd4, 26}, // 26 0x1a
	{0x3ffffd5, 26}, // 27 0x1b
	{0x3ffffd6, 26}, // 28 0x1c
	{0x3ffffd7, 26}, // 29 0x1d
	{0x3ffffd8, 26}, // 30 0x1e
	{0x3ffffd9, 26}, // 31 0x1f
	{0x6, 5}, // 32 ' '
	{0x1ffc, 13}, // 33 '!'
	{0x1f0, 9}, // 34 '"'
	{0x3ffc, 14}, // 35 '#'
	{0x7ffc, 15}, // 36 '$'
	{0x1e, 6}, // 37 '%'
	{0x64, 7}, // 38 '&'
	{0x1ffd, 13}, // 39 '\''
	{0x3fa, 10}, // 40 '('
	{0x1f1, 9}, // 41 ')'
	{0x3fb, 10}, // 42 '*'
	{0x3fc, 10}, // 43 '+'
	{0x65, 7}, // 44 ','
	{0x66, 7}, // 45 '-'
	{0x1f, 6}, // 46 '.'
	{0x7, 5}, // 47 '/'
	{0x0, 4}, // 48 '0'
	{0x1, 4}, // 49 '1'
	{0x2, 4}, // 50 '2'
	{0x8, 5}, // 51 '3'
	{0x20, 6}, // 52 '4'
	{0x21, 6}, // 53 '5'
	{0x22, 6}, // 54 '6'
	{0x23, 6}, // 55 '7'
	{0x24, 6}, // 56 '8'
	{0x25, 6}, // 57 '9'
	{0x26, 6}, // 58 ':'
	{0xec, 8}, // 59 ';'
	{0x1fffc, 17}, // 60 '<'
	{0x27, 6}, // 61 '='
	{0x7ffd, 15}, // 62 '>'
	{0x3fd, 10}, // 63 '?'
	{0x7ffe, 15}, // 64 '@'
	{0x67, 7}, // 65 'A'
	{0xed, 8}, // 66 'B'
	{0xee, 8}, // 67 'C'
	{0x68, 7}, // 68 'D'
	{0xef, 8}, // 69 'E'
	{0x69, 7}, // 70 'F'
	{0x6a, 7}, // 71 'G'
	{0x1f2, 9}, // 72 'H'
	{0xf0, 8}, // 73 'I'
	{0x1f3, 9}, // 74 'J'
	{0x1f4, 9}, // 75 'K'
	{0x1f5, 9}, // 76 'L'
	{0x6b, 7}, // 77 'M'
	{0x6c, 7}, // 78 'N'
	{0xf1, 8}, // 79 'O'
	{0xf2, 8}, // 80 'P'
	{0x1f6, 9}, // 81 'Q'
	{0x1f7, 9}, // 82 'R'
	{0x6d, 7}, // 83 'S'
	{0x28, 6}, // 84 'T'
	{0xf3, 8}, // 85 'U'
	{0x1f8, 9}, // 86 'V'
	{0x1f9, 9}, // 87 'W'
	{0xf4, 8}, // 88 'X'
	{0x1fa, 9}, // 89 'Y'
	{0x1fb, 9}, // 90 'Z'
	{0x7fc, 11}, // 91 '['
	{0x3ffffda, 26}, // 92 '\\'
	{0x7fd, 11}, // 93 ']'
	{0x3ffd, 14}, // 94 '^'
	{0x6e, 7}, // 95 '_'
	{0x3fffe, 18}, // 96 '`'
	{0x9, 5}, // 97 'a'
	{0x6f, 7}, // 98 'b'
	{0xa, 5}, // 99 'c'
	{0x29, 6}, // 100 'd'
	{0xb, 5}, // 101 'e'
	{0x70, 7}, // 102 'f'
	{0x2a, 6}, // 103 'g'
	{0x2b, 6}, // 104 'h'
	{0xc, 5}, // 105 'i'
	{0xf5, 8}, // 106 'j'
	{0xf6, 8}, // 107 'k'
	{0x2c, 6}, // 108 'l'
	{0x2d, 6}, // 109 'm'
	{0x2e, 6}, // 110 'n'
	{0xd, 5}, // 111 'o'
	{0x2f, 6}, // 112 'p'
	{0x1fc, 9}, // 113 'q'
	{0x30, 6}, // 114 'r'
	{0x31, 6}, // 115 's'
	{0xe, 5}, // 116 't'
	{0x71, 7}, // 117 'u'
	{0x72, 7}, // 118 'v'
	{0x73, 7}, // 119 'w'
	{0x74, 7}, // 120 'x'
	{0x75, 7}, // 121 'y'
	{0xf7, 8}, // 122 'z'
	{0x1fffd, 17}, // 123 '{'
	{0xffc, 12}, // 124 '|'
	{0x1fffe, 17}, // 125 '}'
	{0xffd, 12}, // 126 '~'
	{0x3ffffdb, 26}, // 127 0x7f
	{0x3ffffdc, 26}, // 128 0x80
	{0x3ffffdd, 26}, // 129 0x81
	{0x3ffffde, 26}, // 130 0x82
	{0x3ffffdf, 26}, // 131 0x83
	{0x3ffffe0, 26}, // 132 0x84
	{0x3ffffe1, 26}, // 133 0x85
	{0x3ffffe2, 26}, // 134 0x86
	{0x3ffffe3, 26}, // 135 0x87
	{0x3ffffe4, 26}, // 136 0x88
	{0x3ffffe5, 26}, // 137 0x89
	{0x3ffffe6, 26}, // 138 0x8a
	{0x3ffffe7, 26}, // 139 0x8b
	{0x3ffffe8, 26}, // 140 0x8c
	{0x3ffffe9, 26}, // 141 0x8d
	{0x3ffffea, 26}, // 142 0x8e
	{0x3ffffeb, 26}, // 143 0x8f
	{0x3ffffec, 26}, // 144 0x90
	{0x3ffffed, 26}, // 145 0x91
	{0x3ffffee, 26}, // 146 0x92
	{0x3ffffef, 26}, // 147 0x93
	{0x3fffff0, 26}, // 148 0x94
	{0x3fffff1, 26}, // 149 0x95
	{0x3fffff2, 26}, // 150 0x96
	{0x3fffff3, 26}, // 151 0x97
	{0x3fffff4, 26}, // 152 0x98
	{0x3fffff5, 26}, // 153 0x99
	{0x3fffff6, 26}, // 154 0x9a
	{0x3fffff7, 26}, // 155 0x9b
	{0x3fffff8, 26}, // 156 0x9c
	{0x3fffff9, 26}, // 157 0x9d
	{0x3fffffa, 26}, // 158 0x9e
	{0x3fffffb, 26}, // 159 0x9f
	{0x3fffffc, 26}, // 160 0xa0
	{0x3fffffd, 26}, // 161 0xa1
	{0x3fffffe, 26}, // 162 0xa2
	{0x3ffffff, 26}, // 163 0xa3
	{0x1ffff80, 25}, // 164 0xa4
	{0x1ffff81, 25}, // 165 0xa5
	{0x1ffff82, 25}, // 166 0xa6
	{0x1ffff83, 25}, // 167 0xa7
	{0x1ffff84, 25}, // 168 0xa8
	{0x1ffff85, 25}, // 169 0xa9
	{0x1ffff86, 25}, // 170 0xaa
	{0x1ffff87, 25}, // 171 0xab
	{0x1ffff88, 25}, // 172 0xac
	{0x1ffff89, 25}, // 173 0xad
	{0x1ffff8a, 25}, // 174 0xae
	{0x1ffff8b, 25}, // 175 0xaf
	{0x1ffff8c, 25}, // 176 0xb0
	{0x1ffff8d, 25}, // 177 0xb1
	{0x1ffff8e, 25}, // 178 0xb2
	{0x1ffff8f, 25}, // 179 0xb3
	{0x1ffff90, 25}, // 180 0xb4
	{0x1ffff91, 25}, // 181 0xb5
	{0x1ffff92, 25}, // 182 0xb6
	{0x1ffff93, 25}, // 183 0xb7
	{0x1ffff94, 25}, // 184 0xb8
	{0x1ffff95, 25}, // 185 0xb9
	{0x1ffff96, 25}, // 186 0xba
	{0x1ffff97, 25}, // 187 0xbb
	{0x1ffff98, 25}, // 188 0xbc
	{0x1ffff99, 25}, // 189 0xbd
	{0x1ffff9a, 25}, // 190 0xbe
	{0x1ffff9b, 25}, // 191 0xbf
	{0x1ffff9c, 25}, // 192 0xc0
	{0x1ffff9d, 25}, // 193 0xc1
	{0x1ffff9e, 25}, // 194 0xc2
	{0x1ffff9f, 25}, // 195 0xc3
	{0x1ffffa0, 25}, // 196 0xc4
	{0x1ffffa1, 25}, // 197 0xc5
	{0x1ffffa2, 25}, // 198 0xc6
	{0x1ffffa3, 25}, // 199 0xc7
	{0x1ffffa4, 25}, // 200 0xc8
	{0x1ffffa5, 25}, // 201 0xc9
	{0x1ffffa6, 25}, // 202 0xca
	{0x1ffffa7, 25}, // 203 0xcb
	{0x1ffffa8, 25}, // 204 0xcc
	{0x1ffffa9, 25}, // 205 0xcd
	{0x1ffffaa, 25}, // 206 0xce
	{0x1ffffab, 25}, // 207 0xcf
	{0x1ffffac, 25}, // 208 0xd0
	{0x1ffffad, 25}, // 209 0xd1
	{0x1ffffae, 25}, // 210 0xd2
	{0x1ffffaf, 25}, // 211 0xd3
	{0x1ffffb0, 25}, // 212 0xd4
	{0x1ffffb1, 25}, // 213 0xd5
	{0x1ffffb2, 25}, // 214 0xd6
	{0x1ffffb3, 25}, // 215 0xd7
	{0x1ffffb4, 25}, // 216 0xd8
	{0x1ffffb5, 25}, // 217 0xd9
	{0x1ffffb6, 25}, // 218 0xda
	{0x1ffffb7, 25}, // 219 0xdb
	{0x1ffffb8, 25}, // 220 0xdc
	{0x1ffffb9, 25}, // 221 0xdd
	{0x1ffffba, 25}, // 222 0xde
	{0x1ffffbb, 25}, // 223 0xdf
	{0x1ffffbc, 25}, // 224 0xe0
	{0x1ffffbd, 25}, // 225 0xe1
	{0x1ffffbe, 25}, // 226 0xe2
	{0x1ffffbf, 25}, // 227 0xe3
	{0x1ffffc0, 25}, // 228 0xe4
	{0x1ffffc1, 25}, // 229 0xe5
	{0x1ffffc2, 25}, // 230 0xe6
	{0x1ffffc3, 25}, // 231 0xe7
	{0x1ffffc4, 25}, // 232 0xe8
	{0x1ffffc5, 25}, // 233 0xe9
	{0x1ffffc6, 25}, // 234 0xea
	{0x1ffffc7, 25}, // 235 0xeb
	{0x1ffffc8, 25}, // 236 0xec
	{0x1ffffc9, 25}, // 237 0xed
	{0x1ffffca, 25}, // 238 0xee
	{0x1ffffcb, 25}, // 239 0xef
	{0x1ffffcc, 25}, // 240 0xf0
	{0x1ffffcd, 25}, // 241 0xf1
	{0x1ffffce, 25}, // 242 0xf2
	{0x1ffffcf, 25}, // 243 0xf3
	{0x1ffffd0, 25}, // 244 0xf4
	{0x1ffffd1, 25}, // 245 0xf5
	{0x1ffffd2, 25}, // 246 0xf6
	{0x1ffffd3, 25}, // 247 0xf7
	{0x1ffffd4, 25}, // 248 0xf8
	{0x1ffffd5, 25}, // 249 0xf9
	{0x1ffffd6, 25}, // 250 0xfa
	{0x1ffffd7, 25}, // 251 0xfb
	{0x1ffffd8, 25}, // 252 0xfc
	{0x1ffffd9, 25}, // 253 0xfd
	{0x1ffffda, 25}, // 254 0xfe
	{0x1ffffdb, 25}, // 255 0xff
	{0x1ffffdc, 25}, // 256 EOS
}

