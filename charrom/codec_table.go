// codec_table.go - the character set of the built-in ROM.

package charrom

// decoding maps each character code to the rune it displays.  Codes the
// ROM leaves undefined map to zero.
var decoding = [256]rune{
	0xEFF80, 0xEFF81, 0xEFF82, 0xEFF83, 0xEFF84, 0xEFF85, 0xEFF86, 0xEFF87, // 0x00
	0x2190, 0x250C, 0x2510, 0x2514, 0x2518, 0x00B7, 0x00AE, 0x00A9, // 0x08
	0x2122, 0x2020, 0x00A7, 0x00B6, 0x0393, 0x0394, 0x0398, 0x039B, // 0x10
	0x039E, 0x03A0, 0x03A3, 0x03D2, 0x03A6, 0x03A8, 0x03A9, 0x03B1, // 0x18
	0x0020, 0x0021, 0x0022, 0x0023, 0x0024, 0x0025, 0x0026, 0x0027, // 0x20
	0x0028, 0x0029, 0x002A, 0x002B, 0x002C, 0x002D, 0x002E, 0x002F, // 0x28
	0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037, // 0x30
	0x0038, 0x0039, 0x003A, 0x003B, 0x003C, 0x003D, 0x003E, 0x003F, // 0x38
	0x0040, 0x0041, 0x0042, 0x0043, 0x0044, 0x0045, 0x0046, 0x0047, // 0x40
	0x0048, 0x0049, 0x004A, 0x004B, 0x004C, 0x004D, 0x004E, 0x004F, // 0x48
	0x0050, 0x0051, 0x0052, 0x0053, 0x0054, 0x0055, 0x0056, 0x0057, // 0x50
	0x0058, 0x0059, 0x005A, 0x005B, 0x005C, 0x005D, 0x005E, 0x005F, // 0x58
	0x0060, 0x0061, 0x0062, 0x0063, 0x0064, 0x0065, 0x0066, 0x0067, // 0x60
	0x0068, 0x0069, 0x006A, 0x006B, 0x006C, 0x006D, 0x006E, 0x006F, // 0x68
	0x0070, 0x0071, 0x0072, 0x0073, 0x0074, 0x0075, 0x0076, 0x0077, // 0x70
	0x0078, 0x0079, 0x007A, 0x007B, 0x007C, 0x007D, 0x2192, 0x2190, // 0x78
	0x00C7, 0x00FC, 0x00E9, 0x00E2, 0x00E4, 0x00E0, 0x00E5, 0x00E7, // 0x80
	0x00EA, 0x00EB, 0x00E8, 0x00EF, 0x00EE, 0x00EC, 0x00C4, 0x00C5, // 0x88
	0x00C9, 0x00E6, 0x00C6, 0x00F4, 0x00F6, 0x00F2, 0x00FB, 0x00F9, // 0x90
	0x00FF, 0x014E, 0x00DC, 0x00F1, 0x00D1, 0x00AA, 0x00BA, 0x00BF, // 0x98
	0x00A0, 0xFF61, 0xFF62, 0xFF63, 0xFF64, 0xFF65, 0xFF66, 0xFF67, // 0xA0
	0xFF68, 0xFF69, 0xFF6A, 0xFF6B, 0xFF6C, 0xFF6D, 0xFF6E, 0xFF6F, // 0xA8
	0xFF70, 0xFF71, 0xFF72, 0xFF73, 0xFF74, 0xFF75, 0xFF76, 0xFF77, // 0xB0
	0xFF78, 0xFF79, 0xFF7A, 0xFF7B, 0xFF7C, 0xFF7D, 0xFF7E, 0xFF7F, // 0xB8
	0xFF80, 0xFF81, 0xFF82, 0xFF83, 0xFF84, 0xFF85, 0xFF86, 0xFF87, // 0xC0
	0xFF88, 0xFF89, 0xFF8A, 0xFF8B, 0xFF8C, 0xFF8D, 0xFF8E, 0xFF8F, // 0xC8
	0xFF90, 0xFF91, 0xFF92, 0xFF93, 0xFF94, 0xFF95, 0xFF96, 0xFF97, // 0xD0
	0xFF98, 0xFF99, 0xFF9A, 0xFF9B, 0xFF9C, 0xFF9D, 0xFF9E, 0xFF9F, // 0xD8
	0x00E1, 0x00ED, 0x00F3, 0x00FA, 0x00A2, 0x00A3, 0x00A5, 0x20A8, // 0xE0
	0x0192, 0x00A1, 0x00C3, 0x00E3, 0x00D5, 0x00F5, 0x00D8, 0x00F8, // 0xE8
	0x02D9, 0x00A8, 0x02DA, 0x0060, 0x00B4, 0x00BD, 0x00BC, 0x00D7, // 0xF0
	0x00F7, 0x2266, 0x2267, 0x226A, 0x226B, 0x2260, 0x221A, 0x203E, // 0xF8
}
