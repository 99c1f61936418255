package receipt

import "bytes"

// Raw ESC/POS command sequences. These are emitted as byte values so the
// consuming driver can hand the stream to the printer untouched.
var (
	cmdInit        = []byte{0x1b, 0x40}             // ESC @  initialize
	cmdAlignLeft   = []byte{0x1b, 0x61, 0x00}       // ESC a 0
	cmdAlignCenter = []byte{0x1b, 0x61, 0x01}       // ESC a 1
	cmdSizeNormal  = []byte{0x1d, 0x21, 0x00}       // GS ! 0
	cmdSizeDouble  = []byte{0x1d, 0x21, 0x01}       // GS ! double height
	cmdFeedCutPart = []byte{0x1d, 0x56, 0x42, 0x00} // GS V B 0  feed and partial cut
)

// encodeESCPOS serializes the laid-out lines into a thermal printer command
// stream: initialize, styled lines in order, then a partial cut.
func encodeESCPOS(lines []line) []byte {
	var buf bytes.Buffer
	buf.Write(cmdInit)

	for _, l := range lines {
		switch l.style {
		case styleCenter:
			buf.Write(cmdAlignCenter)
			buf.Write(cmdSizeNormal)
		case styleCenterDouble:
			buf.Write(cmdAlignCenter)
			buf.Write(cmdSizeDouble)
		case styleDoubleLeft:
			buf.Write(cmdAlignLeft)
			buf.Write(cmdSizeDouble)
		default:
			buf.Write(cmdAlignLeft)
			buf.Write(cmdSizeNormal)
		}
		buf.WriteString(l.text)
		buf.WriteByte('\n')
	}

	buf.Write(cmdAlignLeft)
	buf.Write(cmdSizeNormal)
	buf.Write(cmdFeedCutPart)
	return buf.Bytes()
}
