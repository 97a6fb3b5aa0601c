package client

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"
)

var pngSignature = []byte{137, 80, 78, 71, 13, 10, 26, 10}

// GetPngMetadata walks the chunk stream of a PNG and returns its textual
// metadata as keyword -> text. ComfyUI stores the serialized workflow in
// a tEXt chunk keyed "workflow"; some savers use iTXt instead.
// Compressed iTXt payloads are skipped.
func GetPngMetadata(r io.Reader) (map[string]string, error) {
	header := make([]byte, 8)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}
	if !bytes.Equal(header, pngSignature) {
		return nil, errors.New("not a valid PNG file")
	}

	txtChunks := make(map[string]string)
	for {
		var length uint32
		err := binary.Read(r, binary.BigEndian, &length)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		chunkType := make([]byte, 4)
		if _, err := io.ReadFull(r, chunkType); err != nil {
			return nil, err
		}

		switch string(chunkType) {
		case "tEXt":
			chunkData := make([]byte, length)
			if _, err := io.ReadFull(r, chunkData); err != nil {
				return nil, err
			}
			keyword, text, ok := splitTextChunk(chunkData)
			if !ok {
				return nil, errors.New("malformed tEXt chunk")
			}
			txtChunks[keyword] = text
		case "iTXt":
			chunkData := make([]byte, length)
			if _, err := io.ReadFull(r, chunkData); err != nil {
				return nil, err
			}
			if keyword, text, ok := splitInternationalTextChunk(chunkData); ok {
				txtChunks[keyword] = text
			}
		default:
			if _, err := io.CopyN(io.Discard, r, int64(length)); err != nil {
				return nil, err
			}
		}

		// Skip the CRC
		if _, err := io.CopyN(io.Discard, r, 4); err != nil {
			return nil, err
		}
	}

	return txtChunks, nil
}

// splitTextChunk splits a tEXt payload: keyword, NUL, text.
func splitTextChunk(data []byte) (string, string, bool) {
	i := bytes.IndexByte(data, 0)
	if i == -1 {
		return "", "", false
	}
	return string(data[:i]), string(data[i+1:]), true
}

// splitInternationalTextChunk splits an iTXt payload: keyword, NUL,
// compression flag, compression method, language tag, NUL, translated
// keyword, NUL, text. Only uncompressed payloads are returned.
func splitInternationalTextChunk(data []byte) (string, string, bool) {
	i := bytes.IndexByte(data, 0)
	if i == -1 || len(data) < i+3 {
		return "", "", false
	}
	keyword := string(data[:i])
	if data[i+1] != 0 {
		return "", "", false
	}

	// skip the language tag and the translated keyword
	rest := data[i+3:]
	j := bytes.IndexByte(rest, 0)
	if j == -1 {
		return "", "", false
	}
	rest = rest[j+1:]
	k := bytes.IndexByte(rest, 0)
	if k == -1 {
		return "", "", false
	}
	return keyword, string(rest[k+1:]), true
}

// WorkflowFromPNGFile reads the serialized workflow document embedded in
// a PNG's metadata. ok is false when the file carries no workflow field,
// which is a normal outcome for images from other tools.
func WorkflowFromPNGFile(path string) (workflow string, ok bool, err error) {
	file, err := os.Open(path)
	if err != nil {
		return "", false, err
	}
	defer file.Close()

	metadata, err := GetPngMetadata(file)
	if err != nil {
		return "", false, err
	}
	workflow, ok = metadata["workflow"]
	return workflow, ok, nil
}
