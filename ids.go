package lottie

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/xid"
)

// IDGenerator produces the suffixes used to make layer names and asset ids
// unique.
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func() string

func (f IDGeneratorFunc) NewID() string { return f() }

var (
	// UUIDGenerator produces random UUIDs. It is the default.
	UUIDGenerator IDGenerator = IDGeneratorFunc(func() string { return uuid.New().String() })

	// XIDGenerator produces short, sortable ids.
	XIDGenerator IDGenerator = IDGeneratorFunc(func() string { return xid.New().String() })
)

// SequenceGenerator returns a generator producing "1", "2", "3" and so on.
func SequenceGenerator() IDGenerator {
	var n atomic.Int64
	return IDGeneratorFunc(func() string {
		return strconv.FormatInt(n.Add(1), 10)
	})
}
