package frame

// RowSize returns the encoded byte count of one scanline of the layout's
// leading plane: interleaved rows carry two samples per column, plane rows
// one.
func RowSize(l Layout, columns, sampleWidth int) int {
	if l == LayoutNonInterlaced {
		return 2 * sampleWidth * columns
	}
	return sampleWidth * columns
}

// ChromaRowSize returns the encoded byte count of one subsampled chroma
// scanline.
func ChromaRowSize(chromaColumns, sampleWidth int) int {
	return sampleWidth * chromaColumns
}
