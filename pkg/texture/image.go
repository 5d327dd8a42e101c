package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"

	"github.com/trevday/rust-raytracer/pkg/core"
)

// Image wraps a shared, already-decoded bitmap sampled by nearest
// neighbor with u wrapped to width and (1-v) wrapped to height, byte
// values scaled by 1/255. Grounded on the teacher's
// pkg/loaders/image.go, which used the same image.Image-plus-blank-
// import-decoders approach; extended here with golang.org/x/image/bmp
// so Image textures can also load BMP maps.
type Image struct {
	width, height int
	pixels        []core.Vector3 // row-major, shared by every user of this texture
}

// LoadImage decodes any registered image format (PNG, JPEG, BMP) from
// disk into an Image texture.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open image %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode image %q: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vector3, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*w+x] = core.NewVector3(
				float32(r>>8)/255,
				float32(g>>8)/255,
				float32(b>>8)/255,
			)
		}
	}
	return &Image{width: w, height: h, pixels: pixels}, nil
}

func (img *Image) Value(u, v float32, p core.Point3) core.Vector3 {
	if img.width == 0 || img.height == 0 {
		return core.NewVector3(0, 1, 1) // debug cyan for an empty image
	}
	u = wrap01(u)
	v = 1 - wrap01(v)

	x := int(u * float32(img.width))
	y := int(v * float32(img.height))
	if x >= img.width {
		x = img.width - 1
	}
	if y >= img.height {
		y = img.height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return img.pixels[y*img.width+x]
}

func wrap01(x float32) float32 {
	x -= floorf(x)
	if x < 0 {
		x += 1
	}
	return x
}

func floorf(x float32) float32 {
	i := float32(int(x))
	if x < 0 && i != x {
		i--
	}
	return i
}
