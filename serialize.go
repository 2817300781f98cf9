package main

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"io"
)

// Serialize writes data in a fixed binary layout. data must have a fixed size
// (numbers, bools, arrays and structs made of them, or slices of those).
func Serialize(w io.Writer, data any) {
	Check(binary.Write(w, binary.LittleEndian, data))
}

func Deserialize(r io.Reader, data any) {
	Check(binary.Read(r, binary.LittleEndian, data))
}

// SerializeSlice writes the length of the slice before its elements so that
// DeserializeSlice knows how much to read.
func SerializeSlice[T any](w io.Writer, s []T) {
	Serialize(w, int64(len(s)))
	Serialize(w, s)
}

func DeserializeSlice[T any](r io.Reader, s *[]T) {
	var n int64
	Deserialize(r, &n)
	*s = make([]T, n)
	Deserialize(r, *s)
}

// Zip compresses data as the single entry of a zip archive. Playthroughs are
// mostly repeated inputs, so they compress very well.
func Zip(data []byte) []byte {
	buf := new(bytes.Buffer)
	writer := zip.NewWriter(buf)
	f, err := writer.Create("data")
	Check(err)
	_, err = f.Write(data)
	Check(err)
	Check(writer.Close())
	return buf.Bytes()
}

func Unzip(data []byte) []byte {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	Check(err)
	if len(reader.File) == 0 {
		Check(io.ErrUnexpectedEOF)
		return nil
	}
	f, err := reader.File[0].Open()
	Check(err)
	defer func() { Check(f.Close()) }()
	unzipped, err := io.ReadAll(f)
	Check(err)
	return unzipped
}
