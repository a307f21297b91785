package media

import (
	"embed"
	"errors"
	"image"
	"strings"

	"golang.org/x/image/bmp"
)

//go:embed media/*/*.bmp
var imgs embed.FS

var ErrUnknownType = errors.New("invalid media type")

// LoadImage loads the specified image of the specified type.
func LoadImage(typ Type, name string) (image.Image, error) {
	w, h := typ.Size()
	if w == 0 || h == 0 {
		return nil, ErrUnknownType
	}

	r, err := imgs.Open("media/" + string(typ) + "/" + name + ".bmp")
	if err != nil {
		return nil, err
	}
	defer r.Close()

	fi, err := r.Stat()
	if err != nil {
		return nil, err
	}

	if fi.IsDir() {
		return nil, errors.New("cannot open directory")
	}

	img, err := bmp.Decode(r)
	if err != nil {
		return nil, errors.New("decode " + name + ": " + err.Error())
	}

	b := img.Bounds()
	if int(w) != b.Dx() || int(h) != b.Dy() {
		return nil, errors.New("invalid image size for type " + string(typ))
	}

	return img, nil
}

// Cache decodes each asset once. Assets are named "<type>/<name>", e.g. "background/emf".
type Cache struct {
	imgs map[string]image.Image
}

func NewCache() *Cache {
	return &Cache{imgs: make(map[string]image.Image)}
}

func (c *Cache) Load(asset string) (image.Image, error) {
	if img, ok := c.imgs[asset]; ok {
		return img, nil
	}
	typ, name, ok := strings.Cut(asset, "/")
	if !ok {
		return nil, errors.New("asset must be type/name: " + asset)
	}
	img, err := LoadImage(Type(typ), name)
	if err != nil {
		return nil, err
	}
	c.imgs[asset] = img
	return img, nil
}

// Names lists the embedded images of a type.
func Names(typ Type) []string {
	entries, err := imgs.ReadDir("media/" + string(typ))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".bmp"))
	}
	return names
}
