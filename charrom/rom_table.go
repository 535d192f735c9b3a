// rom_table.go - bitmaps of the built-in character ROM.

package charrom

// rom holds the built-in glyphs, indexed by character code.
var rom = map[byte]Glyph{
	0x08: {0x00, 0x04, 0x08, 0x1F, 0x08, 0x04, 0x00, 0x00},
	0x0D: {0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00},
	0x12: {0x0F, 0x10, 0x0E, 0x11, 0x0E, 0x01, 0x1E, 0x00},
	0x1F: {0x00, 0x00, 0x0D, 0x12, 0x12, 0x12, 0x0D, 0x00},
	0x20: {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	0x21: {0x04, 0x04, 0x04, 0x04, 0x04, 0x00, 0x04, 0x00},
	0x22: {0x0A, 0x0A, 0x0A, 0x00, 0x00, 0x00, 0x00, 0x00},
	0x23: {0x0A, 0x0A, 0x1F, 0x0A, 0x1F, 0x0A, 0x0A, 0x00},
	0x24: {0x04, 0x0F, 0x14, 0x0E, 0x05, 0x1E, 0x04, 0x00},
	0x25: {0x18, 0x19, 0x02, 0x04, 0x08, 0x13, 0x03, 0x00},
	0x26: {0x0C, 0x12, 0x14, 0x08, 0x15, 0x12, 0x0D, 0x00},
	0x27: {0x0C, 0x04, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00},
	0x28: {0x02, 0x04, 0x08, 0x08, 0x08, 0x04, 0x02, 0x00},
	0x29: {0x08, 0x04, 0x02, 0x02, 0x02, 0x04, 0x08, 0x00},
	0x2A: {0x00, 0x04, 0x15, 0x0E, 0x15, 0x04, 0x00, 0x00},
	0x2B: {0x00, 0x04, 0x04, 0x1F, 0x04, 0x04, 0x00, 0x00},
	0x2C: {0x00, 0x00, 0x00, 0x00, 0x0C, 0x04, 0x08, 0x00},
	0x2D: {0x00, 0x00, 0x00, 0x1F, 0x00, 0x00, 0x00, 0x00},
	0x2E: {0x00, 0x00, 0x00, 0x00, 0x00, 0x0C, 0x0C, 0x00},
	0x2F: {0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x00, 0x00},
	0x30: {0x0E, 0x11, 0x13, 0x15, 0x19, 0x11, 0x0E, 0x00},
	0x31: {0x04, 0x0C, 0x04, 0x04, 0x04, 0x04, 0x0E, 0x00},
	0x32: {0x0E, 0x11, 0x01, 0x02, 0x04, 0x08, 0x1F, 0x00},
	0x33: {0x1F, 0x02, 0x04, 0x02, 0x01, 0x11, 0x0E, 0x00},
	0x34: {0x02, 0x06, 0x0A, 0x12, 0x1F, 0x02, 0x02, 0x00},
	0x35: {0x1F, 0x10, 0x1E, 0x01, 0x01, 0x11, 0x0E, 0x00},
	0x36: {0x06, 0x08, 0x10, 0x1E, 0x11, 0x11, 0x0E, 0x00},
	0x37: {0x1F, 0x01, 0x02, 0x04, 0x08, 0x08, 0x08, 0x00},
	0x38: {0x0E, 0x11, 0x11, 0x0E, 0x11, 0x11, 0x0E, 0x00},
	0x39: {0x0E, 0x11, 0x11, 0x0F, 0x01, 0x02, 0x0C, 0x00},
	0x3A: {0x00, 0x0C, 0x0C, 0x00, 0x0C, 0x0C, 0x00, 0x00},
	0x3B: {0x00, 0x0C, 0x0C, 0x00, 0x0C, 0x04, 0x08, 0x00},
	0x3C: {0x02, 0x04, 0x08, 0x10, 0x08, 0x04, 0x02, 0x00},
	0x3D: {0x00, 0x00, 0x1F, 0x00, 0x1F, 0x00, 0x00, 0x00},
	0x3E: {0x08, 0x04, 0x02, 0x01, 0x02, 0x04, 0x08, 0x00},
	0x3F: {0x0E, 0x11, 0x01, 0x02, 0x04, 0x00, 0x04, 0x00},
	0x40: {0x0E, 0x11, 0x01, 0x0D, 0x15, 0x15, 0x0E, 0x00},
	0x41: {0x0E, 0x11, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x00},
	0x42: {0x1E, 0x11, 0x11, 0x1E, 0x11, 0x11, 0x1E, 0x00},
	0x43: {0x0E, 0x11, 0x10, 0x10, 0x10, 0x11, 0x0E, 0x00},
	0x44: {0x1C, 0x12, 0x11, 0x11, 0x11, 0x12, 0x1C, 0x00},
	0x45: {0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x1F, 0x00},
	0x46: {0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x10, 0x00},
	0x47: {0x0E, 0x11, 0x10, 0x17, 0x11, 0x11, 0x0F, 0x00},
	0x48: {0x11, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11, 0x00},
	0x49: {0x0E, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0E, 0x00},
	0x4A: {0x07, 0x02, 0x02, 0x02, 0x02, 0x12, 0x0C, 0x00},
	0x4B: {0x11, 0x12, 0x14, 0x18, 0x14, 0x12, 0x11, 0x00},
	0x4C: {0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x1F, 0x00},
	0x4D: {0x11, 0x1B, 0x15, 0x15, 0x11, 0x11, 0x11, 0x00},
	0x4E: {0x11, 0x11, 0x19, 0x15, 0x13, 0x11, 0x11, 0x00},
	0x4F: {0x0E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E, 0x00},
	0x50: {0x1E, 0x11, 0x11, 0x1E, 0x10, 0x10, 0x10, 0x00},
	0x51: {0x0E, 0x11, 0x11, 0x11, 0x15, 0x12, 0x0D, 0x00},
	0x52: {0x1E, 0x11, 0x11, 0x1E, 0x14, 0x12, 0x11, 0x00},
	0x53: {0x0F, 0x10, 0x10, 0x0E, 0x01, 0x01, 0x1E, 0x00},
	0x54: {0x1F, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x00},
	0x55: {0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E, 0x00},
	0x56: {0x11, 0x11, 0x11, 0x11, 0x11, 0x0A, 0x04, 0x00},
	0x57: {0x11, 0x11, 0x11, 0x15, 0x15, 0x15, 0x0A, 0x00},
	0x58: {0x11, 0x11, 0x0A, 0x04, 0x0A, 0x11, 0x11, 0x00},
	0x59: {0x11, 0x11, 0x11, 0x0A, 0x04, 0x04, 0x04, 0x00},
	0x5A: {0x1F, 0x01, 0x02, 0x04, 0x08, 0x10, 0x1F, 0x00},
	0x5B: {0x0E, 0x08, 0x08, 0x08, 0x08, 0x08, 0x0E, 0x00},
	0x5C: {0x00, 0x10, 0x08, 0x04, 0x02, 0x01, 0x00, 0x00},
	0x5D: {0x0E, 0x02, 0x02, 0x02, 0x02, 0x02, 0x0E, 0x00},
	0x5E: {0x04, 0x0A, 0x11, 0x00, 0x00, 0x00, 0x00, 0x00},
	0x5F: {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1F, 0x00},
	0x60: {0x08, 0x04, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00},
	0x61: {0x00, 0x00, 0x0E, 0x01, 0x0F, 0x11, 0x0F, 0x00},
	0x62: {0x10, 0x10, 0x16, 0x19, 0x11, 0x11, 0x1E, 0x00},
	0x63: {0x00, 0x00, 0x0E, 0x10, 0x10, 0x11, 0x0E, 0x00},
	0x64: {0x01, 0x01, 0x0D, 0x13, 0x11, 0x11, 0x0F, 0x00},
	0x65: {0x00, 0x00, 0x0E, 0x11, 0x1F, 0x10, 0x0E, 0x00},
	0x66: {0x06, 0x09, 0x08, 0x1C, 0x08, 0x08, 0x08, 0x00},
	0x67: {0x00, 0x0F, 0x11, 0x11, 0x0F, 0x01, 0x0E, 0x00},
	0x68: {0x10, 0x10, 0x16, 0x19, 0x11, 0x11, 0x11, 0x00},
	0x69: {0x04, 0x00, 0x0C, 0x04, 0x04, 0x04, 0x0E, 0x00},
	0x6A: {0x02, 0x00, 0x06, 0x02, 0x02, 0x12, 0x0C, 0x00},
	0x6B: {0x10, 0x10, 0x12, 0x14, 0x18, 0x14, 0x12, 0x00},
	0x6C: {0x0C, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0E, 0x00},
	0x6D: {0x00, 0x00, 0x1A, 0x15, 0x15, 0x11, 0x11, 0x00},
	0x6E: {0x00, 0x00, 0x16, 0x19, 0x11, 0x11, 0x11, 0x00},
	0x6F: {0x00, 0x00, 0x0E, 0x11, 0x11, 0x11, 0x0E, 0x00},
	0x70: {0x00, 0x00, 0x1E, 0x11, 0x1E, 0x10, 0x10, 0x00},
	0x71: {0x00, 0x00, 0x0D, 0x13, 0x0F, 0x01, 0x01, 0x00},
	0x72: {0x00, 0x00, 0x16, 0x19, 0x10, 0x10, 0x10, 0x00},
	0x73: {0x00, 0x00, 0x0E, 0x10, 0x0E, 0x01, 0x1E, 0x00},
	0x74: {0x08, 0x08, 0x1C, 0x08, 0x08, 0x09, 0x06, 0x00},
	0x75: {0x00, 0x00, 0x11, 0x11, 0x11, 0x13, 0x0D, 0x00},
	0x76: {0x00, 0x00, 0x11, 0x11, 0x11, 0x0A, 0x04, 0x00},
	0x77: {0x00, 0x00, 0x11, 0x11, 0x15, 0x15, 0x0A, 0x00},
	0x78: {0x00, 0x00, 0x11, 0x0A, 0x04, 0x0A, 0x11, 0x00},
	0x79: {0x00, 0x00, 0x11, 0x11, 0x0F, 0x01, 0x0E, 0x00},
	0x7A: {0x00, 0x00, 0x1F, 0x02, 0x04, 0x08, 0x1F, 0x00},
	0x7B: {0x02, 0x04, 0x04, 0x08, 0x04, 0x04, 0x02, 0x00},
	0x7C: {0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x00},
	0x7D: {0x08, 0x04, 0x04, 0x02, 0x04, 0x04, 0x08, 0x00},
	0x7E: {0x00, 0x04, 0x02, 0x1F, 0x02, 0x04, 0x00, 0x00},
	0x7F: {0x00, 0x04, 0x08, 0x1F, 0x08, 0x04, 0x00, 0x00},
	0xA0: {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	0xF7: {0x00, 0x11, 0x0A, 0x04, 0x0A, 0x11, 0x00, 0x00},
	0xF8: {0x00, 0x04, 0x00, 0x1F, 0x00, 0x04, 0x00, 0x00},
	0xFD: {0x00, 0x01, 0x1F, 0x04, 0x1F, 0x10, 0x00, 0x00},
	0xFF: {0x1F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
}
