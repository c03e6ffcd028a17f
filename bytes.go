package sigflag

import (
	"github.com/dustin/go-humanize"
)

// A nice builtin type that parses human readable byte quantities, for
// example 100GB. See https://godoc.org/github.com/dustin/go-humanize.
type Bytes int64

func (me Bytes) Int64() int64 {
	return int64(me)
}

func (me Bytes) String() string {
	return humanize.Bytes(uint64(me))
}

var BytesScalar = ScalarOf("bytes", func(s string) (interface{}, error) {
	ui64, err := humanize.ParseBytes(s)
	if err != nil {
		return nil, err
	}
	return Bytes(ui64), nil
})
