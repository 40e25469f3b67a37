package mapmeta

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // map images
	"io"
	"os"
	"strconv"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ErrPGM is returned for images which are not binary 8-bit PGM.
var ErrPGM = errors.New("only binary PGM (P5) with maxval ≤ 255 supported")

func init() {
	image.RegisterFormat("pgm", "P5", DecodePGM, DecodePGMConfig)
}

// DecodePGM reads a binary portable graymap, the usual format of map server
// images.
func DecodePGM(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	w, h, err := pgmHeader(br)
	if err != nil {
		return nil, err
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	if _, err := io.ReadFull(br, img.Pix); err != nil {
		return nil, fmt.Errorf("reading %d×%d PGM pixels: %w", w, h, err)
	}
	return img, nil
}

// DecodePGMConfig reads the dimensions of a binary PGM.
func DecodePGMConfig(r io.Reader) (image.Config, error) {
	w, h, err := pgmHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.GrayModel, Width: w, Height: h}, nil
}

func pgmHeader(br *bufio.Reader) (w, h int, err error) {
	magic, err := pgmToken(br)
	if err != nil {
		return 0, 0, err
	}
	if magic != "P5" {
		return 0, 0, ErrPGM
	}
	var v [3]int
	for i := range v {
		tok, err := pgmToken(br)
		if err != nil {
			return 0, 0, err
		}
		if v[i], err = strconv.Atoi(tok); err != nil || v[i] <= 0 {
			return 0, 0, fmt.Errorf("%w: bad header field %q", ErrPGM, tok)
		}
	}
	if v[2] > 255 {
		return 0, 0, ErrPGM
	}
	// a single whitespace separates the header from the pixels
	if _, err := br.ReadByte(); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrPGM, err)
	}
	return v[0], v[1], nil
}

// pgmToken reads a whitespace-delimited token, skipping comments.
func pgmToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		c, err := br.ReadByte()
		if err != nil {
			if len(tok) > 0 && err == io.EOF {
				return string(tok), nil
			}
			return "", fmt.Errorf("%w: truncated header", ErrPGM)
		}
		switch {
		case c == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", fmt.Errorf("%w: truncated header", ErrPGM)
			}
		case c <= ' ':
			if len(tok) > 0 {
				// leave the delimiter of the last header field for the caller
				return string(tok), br.UnreadByte()
			}
		default:
			tok = append(tok, c)
		}
	}
}

// LoadImage decodes a map image in PGM, PNG, BMP or TIFF format.
func LoadImage(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding map image %s: %w", name, err)
	}
	tracer().Infof("loaded %s map image %s, %v", format, name, img.Bounds().Size())
	return img, nil
}
