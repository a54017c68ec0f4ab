package helpers

// Joiner concatenates string and byte chunks into a single buffer that is
// allocated once, when the total length is known.
type Joiner struct {
	chunks []joinerChunk
	length int
}

type joinerChunk struct {
	text  string
	bytes []byte
}

func (j *Joiner) AddString(data string) {
	j.chunks = append(j.chunks, joinerChunk{text: data})
	j.length += len(data)
}

func (j *Joiner) AddBytes(data []byte) {
	j.chunks = append(j.chunks, joinerChunk{bytes: data})
	j.length += len(data)
}

func (j *Joiner) Length() int {
	return j.length
}

func (j *Joiner) Done() []byte {
	buffer := make([]byte, 0, j.length)
	for _, chunk := range j.chunks {
		if chunk.bytes != nil {
			buffer = append(buffer, chunk.bytes...)
		} else {
			buffer = append(buffer, chunk.text...)
		}
	}
	return buffer
}
