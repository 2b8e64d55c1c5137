package s377m

// Framing sweeps live apart from the convey suites so the gomega and
// convey dot imports do not clash.

import (
	"bytes"
	"testing"

	. "github.com/onsi/gomega"
)

func TestBERWidthSweep(t *testing.T) {
	g := NewWithT(t)

	lengths := []int{0, 1, 0x7f, 0x80, 0xff, 0x100, 0xffff, 0x10000, 1 << 24, 1<<31 - 1, 1 << 40, 1 << 62}

	for _, length := range lengths {
		for size := 0; size <= 9; size++ {
			if size == 1 && length > 0x7f {
				continue
			}
			if n := size - 1; size >= 2 && n < 8 && length>>(8*n) != 0 {
				continue
			}

			ber, err := BEREncode(length, size)
			g.Expect(err).NotTo(HaveOccurred(), "encoding %d into a width of %d", length, size)
			if size != 0 {
				g.Expect(ber).To(HaveLen(size), "encoding %d into a width of %d", length, size)
			}

			decoded, read, err := BERDecode(ber)
			g.Expect(err).NotTo(HaveOccurred(), "decoding %d back from a width of %d", length, size)
			g.Expect(decoded).To(Equal(length))
			g.Expect(read).To(Equal(len(ber)))

			// trailing bytes never leak into the decode
			decoded, read, err = BERDecode(append(ber, 0xde, 0xad))
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(decoded).To(Equal(length))
			g.Expect(read).To(Equal(len(ber)))
		}
	}
}

func TestFrameWidthSweep(t *testing.T) {
	g := NewWithT(t)

	key := mustUL("060e2b34.01020101.0d010301.15010500")
	payload := []byte{1, 2, 3, 4, 5}

	for width := 0; width <= 9; width++ {
		if width == 1 {
			// five bytes fit the short form, same bytes as width 0
			continue
		}

		var buf bytes.Buffer
		n, err := writeKLV(&buf, key, payload, width)
		g.Expect(err).NotTo(HaveOccurred(), "writing with a width of %d", width)
		g.Expect(n).To(Equal(int64(buf.Len())))

		f, err := ReadFrame(&buf, 77)
		g.Expect(err).NotTo(HaveOccurred(), "reading back a width of %d", width)
		g.Expect(f.Key).To(Equal(key))
		g.Expect(f.Length).To(Equal(len(payload)))
		g.Expect(f.Offset).To(Equal(int64(77)))
		if width != 0 {
			g.Expect(f.LenSize).To(Equal(width))
		}
		g.Expect(buf.Len()).To(Equal(len(payload)), "only the framing is consumed")
	}
}

func TestLabelRoundTrips(t *testing.T) {
	g := NewWithT(t)

	labels := []UL{
		mustUL("060e2b34.02050101.0d010201.01020400"),
		mustUL("060e2b34.01010102.03010210.01000000"),
		primerKey,
		ripKey,
		{},
	}
	for _, label := range labels {
		parsed, err := ParseUL(label.String())
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(parsed).To(Equal(label))

		parsed, err = ParseUL("urn:smpte:ul:" + label.String())
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(parsed).To(Equal(label))
	}

	for _, v := range []uint16{0, 0x3c0a, 0x7fff, 0x8000, 0xffff} {
		g.Expect(NewTag(v).Uint16()).To(Equal(v))
	}
}
