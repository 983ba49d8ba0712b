package reader

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

const maxEntitiesLump = 8 << 20

// BSPTitle returns the worldspawn "message" of a Quake, Hexen II, Half-Life
// or Quake II map. A map without a message has an empty title.
func BSPTitle(_ string, r io.ReadSeeker) (string, error) {
	ents, err := readEntitiesLump(r)
	if err != nil {
		return "", err
	}
	return worldspawnValue(ents, "message"), nil
}

func readEntitiesLump(r io.ReadSeeker) (string, error) {
	var ident [4]byte
	if _, err := io.ReadFull(r, ident[:]); err != nil {
		return "", fmt.Errorf("reading bsp header: %w", err)
	}
	switch string(ident[:]) {
	case "BSP2", "2PSB":
	case "IBSP":
		// Quake II and later carry a version after the ident.
		var version int32
		if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
			return "", fmt.Errorf("reading bsp version: %w", err)
		}
	default:
		switch binary.LittleEndian.Uint32(ident[:]) {
		case 29, 30:
		default:
			return "", errors.New("unsupported bsp format")
		}
	}

	var lump struct {
		Offset int32
		Length int32
	}
	if err := binary.Read(r, binary.LittleEndian, &lump); err != nil {
		return "", fmt.Errorf("reading entities lump: %w", err)
	}
	if lump.Offset < 0 || lump.Length < 0 || lump.Length > maxEntitiesLump {
		return "", errors.New("corrupt entities lump")
	}
	if _, err := r.Seek(int64(lump.Offset), io.SeekStart); err != nil {
		return "", err
	}
	buf := make([]byte, lump.Length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("reading entities: %w", err)
	}
	return strings.TrimRight(string(buf), "\x00"), nil
}

// worldspawnValue returns the value of key in the first entity block.
func worldspawnValue(ents, key string) string {
	start := strings.IndexByte(ents, '{')
	if start < 0 {
		return ""
	}
	var tokens []string
	s := ents[start+1:]
	for len(s) > 0 {
		switch s[0] {
		case '}':
			s = ""
			continue
		case '"':
			end := strings.IndexByte(s[1:], '"')
			if end < 0 {
				s = ""
				continue
			}
			tokens = append(tokens, s[1:end+1])
			s = s[end+2:]
			continue
		}
		s = s[1:]
	}
	for i := 0; i+1 < len(tokens); i += 2 {
		if strings.EqualFold(tokens[i], key) {
			return tokens[i+1]
		}
	}
	return ""
}
