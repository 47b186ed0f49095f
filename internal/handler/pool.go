package handler

import (
	"bytes"
	"sync"
)

// Spin results with a full grid and five lines encode to roughly 2KB.
const pooledBufferSize = 2048

// bufferPool reuses encode buffers across responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, pooledBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer drops oversized buffers so one large simulation report does not pin memory.
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 16*pooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
