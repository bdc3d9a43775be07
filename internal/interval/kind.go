//go:generate go run github.com/dmarkham/enumer -type=Kind -trimprefix=Kind
package interval

// Kind tells which point of the extended line an Ordinal stands for.
// The zero Kind is KindNaN so that zero Ordinals and zero Ranges are empty.
type Kind int

const (
	KindNaN Kind = iota
	KindReal
	KindPositiveInfinity
	KindNegativeInfinity
)
