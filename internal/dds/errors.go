package dds

import "errors"

// Sentinel errors for ReadHeader, checked with errors.Is by callers that
// need to map them onto the codec's Kind taxonomy.
var (
	ErrEOF             = errors.New("dds: truncated header")
	ErrMagic           = errors.New("dds: invalid magic")
	ErrSize            = errors.New("dds: invalid header size")
	ErrPFSize          = errors.New("dds: invalid pixel format size")
	ErrDX10Unsupported = errors.New("dds: DX10 extended header is not supported")
)
