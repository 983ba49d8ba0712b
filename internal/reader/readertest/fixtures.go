// Package readertest builds PAK, PK3, BSP and demo fixtures for tests.
package readertest

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// File is an archive member.
type File struct {
	Name string
	Data []byte
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// PAK returns a PAK archive holding files in order.
func PAK(files ...File) []byte {
	var body bytes.Buffer
	offsets := make([]int32, len(files))
	for i, f := range files {
		offsets[i] = int32(12 + body.Len())
		body.Write(f.Data)
	}

	var out bytes.Buffer
	out.WriteString("PACK")
	binary.Write(&out, binary.LittleEndian, int32(12+body.Len()))
	binary.Write(&out, binary.LittleEndian, int32(64*len(files)))
	out.Write(body.Bytes())
	for i, f := range files {
		var name [56]byte
		copy(name[:], f.Name)
		out.Write(name[:])
		binary.Write(&out, binary.LittleEndian, offsets[i])
		binary.Write(&out, binary.LittleEndian, int32(len(f.Data)))
	}
	return out.Bytes()
}

// PK3 returns a zip archive holding files in order.
func PK3(t testing.TB, files ...File) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.Create(f.Name)
		if err != nil {
			t.Fatalf("adding %s: %v", f.Name, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			t.Fatalf("writing %s: %v", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

// BSP returns a version 29 map whose worldspawn carries message.
func BSP(message string) []byte {
	ents := "{\n\"classname\" \"worldspawn\"\n"
	if message != "" {
		ents += "\"message\" \"" + message + "\"\n"
	}
	ents += "}\n{\n\"classname\" \"info_player_start\"\n}\n\x00"

	const lumps = 15
	headerLen := 4 + lumps*8
	var out bytes.Buffer
	binary.Write(&out, binary.LittleEndian, int32(29))
	binary.Write(&out, binary.LittleEndian, int32(headerLen))
	binary.Write(&out, binary.LittleEndian, int32(len(ents)))
	for i := 1; i < lumps; i++ {
		binary.Write(&out, binary.LittleEndian, int64(0))
	}
	out.WriteString(ents)
	return out.Bytes()
}

// QuakeDemo returns a .dem whose serverinfo names title and the world model mapPath.
func QuakeDemo(title, mapPath string) []byte {
	var msg bytes.Buffer
	msg.WriteByte(8) // svc_print
	msg.WriteString("recorded\x00")
	msg.WriteByte(11) // svc_serverinfo
	binary.Write(&msg, binary.LittleEndian, int32(15))
	msg.WriteByte(1) // maxclients
	msg.WriteByte(0) // coop
	msg.WriteString(title + "\x00")
	msg.WriteString(mapPath + "\x00")
	msg.WriteString("progs/player.mdl\x00")
	msg.WriteByte(0)

	var out bytes.Buffer
	out.WriteString("-1\n")
	binary.Write(&out, binary.LittleEndian, int32(msg.Len()))
	out.Write(make([]byte, 12))
	out.Write(msg.Bytes())
	return out.Bytes()
}

// Quake2Demo returns a .dm2 recorded in gameDir on mapPath.
func Quake2Demo(gameDir, title, mapPath string) []byte {
	var msg bytes.Buffer
	msg.WriteByte(12) // svc_serverdata
	binary.Write(&msg, binary.LittleEndian, int32(34))
	binary.Write(&msg, binary.LittleEndian, int32(1))
	msg.WriteByte(1)
	msg.WriteString(gameDir + "\x00")
	binary.Write(&msg, binary.LittleEndian, int16(0))
	msg.WriteString(title + "\x00")
	msg.WriteByte(13) // svc_configstring
	binary.Write(&msg, binary.LittleEndian, int16(33))
	msg.WriteString(mapPath + "\x00")

	var out bytes.Buffer
	binary.Write(&out, binary.LittleEndian, int32(msg.Len()))
	out.Write(msg.Bytes())
	binary.Write(&out, binary.LittleEndian, int32(-1))
	return out.Bytes()
}
