package sentry

import (
	"github.com/pkg/errors"
	"sampan/ds"
	"sampan/sef/lbytes"
	"sampan/sef/serr"
)

// CalculateFooterLength is the size of everything from the trailer header to
// the end of the file when the trailer holds numEntries descriptors.
func CalculateFooterLength(numEntries int64) int64 {
	return DefaultFixedSize + numEntries*DefaultEntrySize
}

// CalculateDescriptorDistance returns how far before the end of the file the
// n-th descriptor starts. Descriptors follow the trailer header in order.
func CalculateDescriptorDistance(n int64, numEntries int64) int64 {
	return CalculateFooterLength(numEntries) - DefaultEntrySize - n*DefaultEntrySize
}

func decodeDescriptor(reader *lbytes.Reader, n int64, numEntries int64) (*Entry, error) {
	distance := CalculateDescriptorDistance(n, numEntries)
	if err := reader.SeekEnd(distance, DefaultEntrySize); err != nil {
		return nil, err
	}

	read2Bytes := lbytes.CreateNBytesReadFunction(reader, 2)
	readUint16 := lbytes.CreateUint16ReadFunction(reader)
	readUint32 := lbytes.CreateUint32ReadFunction(reader)

	instructions := []lbytes.Instruction{
		{Key: "unused", ReadFunction: read2Bytes},
		{Key: "type", ReadFunction: readUint16},
		{Key: "data_offset", ReadFunction: readUint32},
		{Key: "data_length", ReadFunction: readUint32},
	}
	return lbytes.ExecuteInstructions[Entry](instructions)
}

func decodeDataPrefix(reader *lbytes.Reader, offsetFromEnd int64) (*DataPrefix, error) {
	if err := reader.SeekEnd(offsetFromEnd, DefaultDataPrefixSize); err != nil {
		return nil, err
	}

	instructions := []lbytes.Instruction{
		{Key: "unused", ReadFunction: lbytes.CreateNBytesReadFunction(reader, 2)},
		{Key: "type", ReadFunction: lbytes.CreateUint16ReadFunction(reader)},
	}
	return lbytes.ExecuteInstructions[DataPrefix](instructions)
}

// DecodeEntry reads the n-th of numEntries descriptors and follows it to the
// entry's data. Unless force is set, the type stored there has to match the
// descriptor's type.
func DecodeEntry(reader *lbytes.Reader, n int64, numEntries int64, force bool) (*Entry, error) {
	entry, err := decodeDescriptor(reader, n, numEntries)
	if err != nil {
		err := errors.Wrapf(err, "sentry.DecodeEntry error: read descriptor %d", n)
		return nil, err
	}

	offsetFromEnd := CalculateFooterLength(numEntries) + int64(entry.DataOffset)
	prefix, err := decodeDataPrefix(reader, offsetFromEnd)
	if err != nil {
		err := errors.Wrapf(err, "sentry.DecodeEntry error: read data of entry %d", n)
		return nil, err
	}
	if !force && prefix.Type != entry.Type {
		return nil, serr.ErrTypeMismatch{Found: prefix.Type, Expected: entry.Type}
	}

	entry.Inferences = Inferences{
		Index:         n,
		DataType:      prefix.Type,
		OffsetFromEnd: offsetFromEnd,
		Offset:        reader.Size() - offsetFromEnd,
	}

	return entry, nil
}

// ReadOffset returns the absolute offset of the n-th entry's data.
func ReadOffset(reader *lbytes.Reader, n int64, numEntries int64, force bool) (int64, error) {
	entry, err := DecodeEntry(reader, n, numEntries, force)
	if err != nil {
		return 0, err
	}
	return entry.Inferences.Offset, nil
}

func DecodeBlock(reader *lbytes.Reader, numEntries int64, force bool) ([]Entry, error) {
	// the count comes straight from the file; refuse it before allocating
	footerLength := CalculateFooterLength(numEntries)
	if footerLength > reader.Size() {
		return nil, serr.ErrOutOfBounds{
			Distance: footerLength,
			Length:   footerLength,
			Size:     reader.Size(),
		}
	}

	entries := make([]Entry, 0, numEntries)
	for _, n := range ds.MakeRange(0, numEntries, 1) {
		entry, err := DecodeEntry(reader, n, numEntries, force)
		if err != nil {
			return nil, errors.Wrap(err, "sentry.DecodeBlock error")
		}
		if entry == nil {
			return nil, ds.ErrUnreachableCode{Caller: "sentry.DecodeBlock"}
		}
		entries = append(entries, *entry)
	}

	return entries, nil
}
