package utils

import "crypto/rand"

const slugAlphabet = "useandom-26T198340PX75pxJACKVERYMINDBUSHWOLF_GQZbfghjklqvwyzrict"

const SlugLength = 10

// NewSlug returns a short random URL-safe identifier used as the
// public-facing portal token. Collisions are guarded by the unique
// slug index, not here.
func NewSlug() string {
	buf := make([]byte, SlugLength)
	if _, err := rand.Read(buf); err != nil {
		return ""
	}
	for i, b := range buf {
		buf[i] = slugAlphabet[int(b)&63]
	}
	return string(buf)
}
